package ldharvest

import (
	"context"
	"regexp"
)

// SitemapService discovers harvestable page URLs from a site's sitemaps.
// It backs the sitemap mode of the CLI, where configured URLs name site
// roots instead of individual pages.
type SitemapService interface {
	// DiscoverURLs finds page URLs for the site at baseURL. It consults
	// robots.txt Sitemap directives first, then falls back to /sitemap.xml,
	// resolving sitemap indexes recursively. When baseURL carries a path,
	// only URLs under that path prefix are returned.
	//
	// A nil filter passes every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter restricts discovered URLs by pattern.
type URLFilter struct {
	// Include patterns. When set, a URL must match at least one.
	Include []*regexp.Regexp

	// Exclude patterns, applied after Include. A URL matching any is
	// dropped.
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

// matchAny reports whether any of the patterns matches the URL.
func matchAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
