package ldharvest

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a bounded download of the page at url and returns its
	// body decoded to UTF-8. Responses outside the 2xx range are errors; a
	// failed fetch yields no candidates for that page and never aborts the
	// run.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter paces requests per domain so harvesting stays polite even
// when many configured pages share a host.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context, domain string) error
}
