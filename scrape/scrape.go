// Package scrape orchestrates the offline build of the MARC datasets.
// It fetches the field range index pages, then each field's concise
// page with bounded concurrency, merges the parsed records into a
// single in-memory verbose dataset, and leaves persistence to the
// caller (one final write per file).
package scrape

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/mjanowski/marc"
	"golang.org/x/sync/errgroup"
)

// Scraper fetches and parses the MARC 21 bibliographic documentation.
type Scraper struct {
	Fetcher     marc.Fetcher
	Index       marc.IndexParser
	Fields      marc.FieldParser
	Limiter     marc.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scrape run.
type Result struct {
	Scraped     int // fields with a fully parsed concise page
	SummaryOnly int // fields kept with index data only (no concise page or unparsable)
	Failed      int // fields skipped entirely after fetch failures
	PagesFailed int // range index pages that could not be fetched or parsed
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressIndexPage ProgressType = iota
	ProgressFieldScraped
	ProgressFieldSummaryOnly
	ProgressFieldFailed
	ProgressFinished
)

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type      ProgressType
	Code      string // field code, where applicable
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// fieldResult holds the outcome of processing a single field.
type fieldResult struct {
	summary     marc.FieldSummary
	record      *marc.FieldRecord
	summaryOnly bool
	err         error
}

// Run scrapes all fields and returns the verbose dataset. Per-field
// failures are reported through progress and skipped; the run only
// fails as a whole when no field could be collected at all. The basic
// dataset is derived from the returned one via Dataset.Basic.
func (s *Scraper) Run(ctx context.Context, progress ProgressFunc) (*marc.Dataset, *Result, error) {
	host := baseHost()
	result := &Result{}

	summaries, err := s.collectSummaries(ctx, host, result, progress)
	if err != nil {
		return nil, nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(summaries)
	resultCh := make(chan fieldResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, summary := range summaries {
			summary := summary
			g.Go(func() error {
				resultCh <- s.processField(gctx, host, summary)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	fields := make(map[string]*marc.FieldRecord, total+1)
	for fr := range resultCh {
		done := int(completed.Add(1))

		switch {
		case fr.err != nil:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFieldFailed,
					Code:      fr.summary.Code,
					URL:       ConciseURL(fr.summary.Code),
					Completed: done,
					Total:     total,
					Err:       fr.err,
				})
			}
		case fr.summaryOnly:
			result.SummaryOnly++
			fields[fr.record.Code] = fr.record
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFieldSummaryOnly,
					Code:      fr.summary.Code,
					Completed: done,
					Total:     total,
				})
			}
		default:
			result.Scraped++
			fields[fr.record.Code] = fr.record
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFieldScraped,
					Code:      fr.summary.Code,
					Completed: done,
					Total:     total,
				})
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// Field 222 has a hand-maintained record; see source.go.
	fields["222"] = Field222()
	result.Scraped++

	if len(fields) == 1 {
		return nil, nil, marc.Errorf(marc.EUNAVAILABLE, "scrape produced no fields; is %s reachable?", BaseURL)
	}

	ds := &marc.Dataset{Tier: marc.TierVerbose, Fields: fields}
	if err := ds.Validate(); err != nil {
		return nil, nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return ds, result, nil
}

// collectSummaries fetches the range index pages sequentially and
// merges their field summaries with the hand-maintained linking entry
// fields. Duplicate codes keep their first occurrence; field 222 is
// excluded here because its record is maintained by hand.
func (s *Scraper) collectSummaries(ctx context.Context, host string, result *Result, progress ProgressFunc) ([]marc.FieldSummary, error) {
	seen := make(map[string]bool)
	var summaries []marc.FieldSummary

	add := func(sum marc.FieldSummary) {
		if seen[sum.Code] || sum.Code == "222" {
			return
		}
		seen[sum.Code] = true
		summaries = append(summaries, sum)
	}

	for _, page := range RangePages {
		pageURL := IndexURL(page)

		if err := s.Limiter.Wait(ctx, host); err != nil {
			return nil, err
		}
		html, err := s.fetch(ctx, pageURL)
		if err == nil {
			var pageSummaries []marc.FieldSummary
			pageSummaries, err = s.Index.ParseIndex(html)
			for _, sum := range pageSummaries {
				add(sum)
			}
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressIndexPage, URL: pageURL, Err: err})
		}
		if err != nil {
			result.PagesFailed++
		}
	}

	for _, sum := range LinkingEntryFields {
		add(sum)
	}

	if len(summaries) == 0 {
		return nil, marc.Errorf(marc.EUNAVAILABLE, "no field summaries collected from %s", BaseURL)
	}
	return summaries, nil
}

// processField fetches and parses one field's concise page. A missing
// page (control fields) or an unparsable one degrades to a
// summary-only record; a fetch failure after retries skips the field.
func (s *Scraper) processField(ctx context.Context, host string, summary marc.FieldSummary) fieldResult {
	fr := fieldResult{summary: summary}

	if err := s.Limiter.Wait(ctx, host); err != nil {
		fr.err = err
		return fr
	}

	html, err := s.fetch(ctx, ConciseURL(summary.Code))
	if marc.ErrorCode(err) == marc.ENOTFOUND {
		fr.record = summary.Record()
		fr.summaryOnly = true
		return fr
	} else if err != nil {
		fr.err = err
		return fr
	}

	record, err := s.Fields.ParseField(summary, html)
	if err != nil {
		fr.record = summary.Record()
		fr.summaryOnly = true
		return fr
	}

	fr.record = record
	return fr
}

func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, nil, delays)
}

func baseHost() string {
	u, err := url.Parse(BaseURL)
	if err != nil {
		return "www.loc.gov"
	}
	return u.Host
}
