package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/ldharvest"
	"github.com/fwojciec/ldharvest/harvest"
	"github.com/fwojciec/ldharvest/jsonl"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	// Compile filters early so a bad pattern fails before any network work
	var urlFilter *ldharvest.URLFilter
	if len(c.Filters) > 0 {
		urlFilter = &ldharvest.URLFilter{}
		for _, pattern := range c.Filters {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	// Clear any previous run's output so the file reflects this run only
	removed, err := deps.Writer.Remove()
	if err != nil {
		return fmt.Errorf("clearing output file: %w", err)
	}
	if removed {
		fmt.Fprintf(deps.Stdout, "Cleared existing output file: %s\n", deps.Writer.Path())
	}

	pages := c.URLs
	if c.Sitemap {
		pages = c.discoverPages(deps, urlFilter)
	}

	result, err := deps.Harvester.Run(deps.Ctx, pages, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %v\n", err)
		return err
	}

	return renderReport(deps, result)
}

// discoverPages expands each configured URL into the page URLs listed by the
// site's sitemaps. A root whose discovery fails is skipped; the others still
// contribute their pages.
func (c *HarvestCmd) discoverPages(deps *Dependencies, filter *ldharvest.URLFilter) []string {
	var pages []string
	for _, root := range c.URLs {
		fmt.Fprintf(deps.Stdout, "Discovering pages from %s\n", root)

		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, root, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", root, err)
			continue
		}

		fmt.Fprintf(deps.Stdout, "  found %s\n", harvest.FormatCount(len(urls), "page"))
		pages = append(pages, urls...)
	}
	return pages
}

// progressPrinter renders harvest progress as it happens: per-page lines on
// stdout, failures on stderr.
func progressPrinter(deps *Dependencies) harvest.ProgressFunc {
	return func(event harvest.ProgressEvent) {
		switch event.Type {
		case harvest.ProgressFetching:
			fmt.Fprintf(deps.Stdout, "Processing %s\n", event.URL)
		case harvest.ProgressFetchFailed, harvest.ProgressExtractFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", harvest.TruncateURL(event.URL, 60), event.Error)
		case harvest.ProgressBlockInvalid:
			fmt.Fprintf(deps.Stderr, "  invalid JSON-LD block on %s: %v\n", harvest.TruncateURL(event.URL, 60), event.Error)
		case harvest.ProgressNoData:
			fmt.Fprintf(deps.Stderr, "  no JSON-LD data on %s\n", harvest.TruncateURL(event.URL, 60))
		case harvest.ProgressFound:
			fmt.Fprintf(deps.Stdout, "  found %s\n", harvest.FormatCount(event.Count, "JSON-LD object"))
		case harvest.ProgressExtracted:
			fmt.Fprintf(deps.Stdout, "  -> extracted %s: %s\n", event.RecordType, event.RecordName)
		case harvest.ProgressDuplicate:
			fmt.Fprintf(deps.Stdout, "  -> skipping duplicate %s: %s\n", event.RecordType, event.RecordName)
		case harvest.ProgressWriteFailed:
			fmt.Fprintf(deps.Stderr, "  error writing %q: %v\n", event.RecordName, event.Error)
		case harvest.ProgressURLDone:
			fmt.Fprintf(deps.Stdout, "  extracted %s from %s\n",
				harvest.FormatCount(event.Count, "unique record"), harvest.TruncateURL(event.URL, 60))
		}
	}
}

// renderReport prints run totals and a breakdown of the output file. The
// breakdown re-reads what was actually persisted rather than trusting the
// run counters.
func renderReport(deps *Dependencies, result *harvest.Result) error {
	fmt.Fprintf(deps.Stdout, "\nTotal JSON-LD objects found: %d\n", result.Found)
	fmt.Fprintf(deps.Stdout, "Total unique records extracted: %d\n", result.Extracted)

	records, err := jsonl.ReadFile(deps.Writer.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading output file: %w", err)
	}

	summary := ldharvest.Summarize(records)
	if summary.Records == 0 {
		fmt.Fprintln(deps.Stdout, "No records written")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Results written to %s (%s)\n",
		deps.Writer.Path(), harvest.FormatCount(summary.Records, "line"))

	types := make([]string, 0, len(summary.TypeCounts))
	for t := range summary.TypeCounts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintln(deps.Stdout, "\nContent type breakdown:")
	for _, t := range types {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", t, summary.TypeCounts[t])
	}

	if s := summary.Sample; s != nil {
		fmt.Fprintf(deps.Stdout, "\nSample record: %s - %s\n", s.Type, s.Name)
		fmt.Fprintf(deps.Stdout, "  %d fields, starting with %s\n", s.Total, strings.Join(s.Fields, ", "))
	}

	return nil
}
