package mock

import (
	"context"

	"github.com/fwojciec/ldharvest"
)

var _ ldharvest.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of ldharvest.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *ldharvest.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ldharvest.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
