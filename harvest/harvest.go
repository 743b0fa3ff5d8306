// Package harvest provides extraction run orchestration. It coordinates
// fetching, structured-data extraction, normalization, filtering,
// deduplication, enrichment, and persistence of JSON-LD records.
package harvest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/ldharvest"
	"github.com/google/uuid"
)

// Harvester runs the extraction pipeline over a list of page URLs.
// Pages are processed strictly in configuration order, one at a time, and
// records within a page in document order, so output order is reproducible
// for identical inputs. The only blocking operation is the bounded fetch.
type Harvester struct {
	Fetcher   ldharvest.Fetcher
	Extractor ldharvest.Extractor
	Writer    ldharvest.RecordWriter
	Limiter   ldharvest.DomainLimiter // optional; nil disables pacing
}

// Result holds the outcome of a harvest run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID string

	// Found counts every JSON-LD object discovered, including ones later
	// rejected or deduplicated.
	Found int

	// Extracted counts unique records actually written to the output.
	Extracted int

	// URLs holds the per-page breakdown in processing order.
	URLs []URLResult
}

// URLResult is the per-page slice of a Result.
type URLResult struct {
	URL       string
	Found     int
	Extracted int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressFetching marks the start of a page download.
	ProgressFetching ProgressType = iota
	// ProgressFetchFailed reports a failed download; the page yields nothing.
	ProgressFetchFailed
	// ProgressExtractFailed reports an unparseable page; it yields nothing.
	ProgressExtractFailed
	// ProgressBlockInvalid reports one undecodable structured-data block.
	ProgressBlockInvalid
	// ProgressNoData reports a page without any structured data.
	ProgressNoData
	// ProgressFound reports the number of objects discovered on a page.
	ProgressFound
	// ProgressExtracted reports a record accepted for output.
	ProgressExtracted
	// ProgressDuplicate reports a record suppressed by deduplication.
	ProgressDuplicate
	// ProgressWriteFailed reports a record dropped by a persistence failure.
	ProgressWriteFailed
	// ProgressURLDone reports the unique record count of a finished page.
	ProgressURLDone
)

// ProgressEvent reports progress during a harvest run.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Count int

	// RecordType and RecordName describe the record for ProgressExtracted
	// and ProgressDuplicate events.
	RecordType string
	RecordName string

	Error error
}

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every URL in order and returns the run totals. Page and
// record failures are reported through progress and never abort the run;
// the returned error is reserved for context cancellation. Deduplication
// state is scoped to this call, so repeating a run reproduces its output.
func (h *Harvester) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{RunID: uuid.New().String()}
	dedup := ldharvest.NewDeduper()

	for _, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res := h.processPage(ctx, pageURL, dedup, progress)
		result.Found += res.Found
		result.Extracted += res.Extracted
		result.URLs = append(result.URLs, res)
	}

	return result, nil
}

// processPage runs the pipeline for a single page.
func (h *Harvester) processPage(ctx context.Context, pageURL string, dedup *ldharvest.Deduper, progress ProgressFunc) URLResult {
	res := URLResult{URL: pageURL}
	emit := func(event ProgressEvent) {
		if progress != nil {
			event.URL = pageURL
			progress(event)
		}
	}

	emit(ProgressEvent{Type: ProgressFetching})

	if h.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := h.Limiter.Wait(ctx, u.Host); err != nil {
				emit(ProgressEvent{Type: ProgressFetchFailed, Error: err})
				return res
			}
		}
	}

	html, err := h.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		emit(ProgressEvent{Type: ProgressFetchFailed, Error: err})
		return res
	}

	extracted, err := h.Extractor.Extract(html)
	if err != nil {
		emit(ProgressEvent{Type: ProgressExtractFailed, Error: err})
		return res
	}
	for _, blockErr := range extracted.Malformed {
		emit(ProgressEvent{Type: ProgressBlockInvalid, Error: blockErr})
	}

	res.Found = len(extracted.Candidates)
	if res.Found == 0 {
		emit(ProgressEvent{Type: ProgressNoData})
		return res
	}
	emit(ProgressEvent{Type: ProgressFound, Count: res.Found})

	for _, candidate := range extracted.Candidates {
		rec, ok := ldharvest.Normalize(candidate, pageURL)
		if !ok {
			continue // non-mapping entries carry no fields to keep
		}
		if !ldharvest.Keep(rec) {
			continue
		}

		if !dedup.Admit(rec.Key()) {
			emit(ProgressEvent{
				Type:       ProgressDuplicate,
				RecordType: rec.DisplayType(),
				RecordName: rec.DisplayName(),
			})
			continue
		}

		emit(ProgressEvent{
			Type:       ProgressExtracted,
			RecordType: rec.DisplayType(),
			RecordName: rec.DisplayName(),
		})

		ldharvest.Enrich(rec)

		if err := h.Writer.Write(ctx, rec); err != nil {
			emit(ProgressEvent{Type: ProgressWriteFailed, RecordName: rec.DisplayName(), Error: err})
			continue
		}
		res.Extracted++
	}

	emit(ProgressEvent{Type: ProgressURLDone, Count: res.Extracted})
	return res
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatCount renders a count with its noun, pluralizing with a bare s.
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
