// Package mock provides mock implementations of the ldharvest interfaces
// for testing.
package mock

import (
	"context"

	"github.com/fwojciec/ldharvest"
)

var _ ldharvest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ldharvest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close invokes CloseFn when set, so tests that never close don't have to
// stub it.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
