// Package http provides HTTP-based implementations of ldharvest.Fetcher and
// ldharvest.SitemapService for pages that serve their structured data
// server-side.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/ldharvest"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout bounds each page download unless WithTimeout
// overrides it.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the harvester to origin servers.
const DefaultUserAgent = "ldharvest/1.0 (+https://github.com/fwojciec/ldharvest)"

// Ensure Fetcher implements ldharvest.Fetcher at compile time.
var _ ldharvest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript; JSON-LD injected client-side is invisible
// to it.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultFetchTimeout for each request.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
// Empty values are ignored.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page body for the given URL, decoded to UTF-8 using
// the response's declared character set. Any status outside the 2xx range
// is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("charset detection for %s: %w", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close is a no-op; the underlying http.Client needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
