package scrape_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mjanowski/marc"
	"github.com/mjanowski/marc/mock"
	"github.com/mjanowski/marc/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexSummaries is what the mock index parser reports for every range
// page. Field 222 is listed to verify the scraper excludes it in favor
// of its hand-maintained record.
func indexSummaries() []marc.FieldSummary {
	return []marc.FieldSummary{
		{Code: "020", Title: "International Standard Book Number (ISBN)", Repeat: "R"},
		{Code: "222", Title: "Key Title", Repeat: "R"},
		{Code: "245", Title: "Title Statement", Repeat: "NR"},
		{Code: "300", Title: "Physical Description", Repeat: "R"},
		{Code: "504", Title: "Bibliography, Etc. Note", Repeat: "R"},
	}
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("merges parsed, summary-only and hand-maintained fields", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var hosts []string

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				switch {
				case strings.Contains(url, "/concise/bd245.html"):
					return "", marc.Errorf(marc.ENOTFOUND, "page not found")
				case strings.Contains(url, "/concise/bd300.html"):
					return "", errors.New("connection reset")
				default:
					return "<html>page</html>", nil
				}
			},
		}
		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, host string) error {
				mu.Lock()
				hosts = append(hosts, host)
				mu.Unlock()
				return nil
			},
		}
		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Index: &mock.IndexParser{
				ParseIndexFn: func(html string) ([]marc.FieldSummary, error) {
					return indexSummaries(), nil
				},
			},
			Fields: &mock.FieldParser{
				ParseFieldFn: func(summary marc.FieldSummary, html string) (*marc.FieldRecord, error) {
					if summary.Code == "504" {
						return nil, marc.Errorf(marc.EINVALID, "no parseable content for field 504")
					}
					f := summary.Record()
					f.Description = "parsed from the concise page"
					return f, nil
				},
			},
			Limiter:     limiter,
			Concurrency: 2,
			RetryDelays: []time.Duration{},
		}

		var events []scrape.ProgressEvent
		ds, result, err := scraper.Run(context.Background(), func(event scrape.ProgressEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		assert.Equal(t, marc.TierVerbose, ds.Tier)

		// 4 index fields (300 skipped) + 16 linking entry fields + 222.
		assert.Len(t, ds.Fields, 20)
		assert.Equal(t, scrape.Field222(), ds.Fields["222"])
		assert.NotContains(t, ds.Fields, "300")

		assert.Equal(t, "parsed from the concise page", ds.Fields["020"].Description)
		assert.Equal(t, "parsed from the concise page", ds.Fields["773"].Description)

		// 245's concise page 404ed, 504's page did not parse; both keep
		// their index summary.
		assert.Equal(t, "Title Statement", ds.Fields["245"].Title)
		assert.Empty(t, ds.Fields["245"].Description)
		assert.Empty(t, ds.Fields["504"].Description)

		assert.Equal(t, 18, result.Scraped) // 020 + 16 linking + 222
		assert.Equal(t, 2, result.SummaryOnly)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 0, result.PagesFailed)

		for _, host := range hosts {
			assert.Equal(t, "www.loc.gov", host)
		}
	})

	t.Run("reports progress per index page and per field", func(t *testing.T) {
		t.Parallel()

		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					if strings.Contains(url, "/concise/bd300.html") {
						return "", errors.New("connection reset")
					}
					return "<html>page</html>", nil
				},
			},
			Index: &mock.IndexParser{
				ParseIndexFn: func(html string) ([]marc.FieldSummary, error) {
					return indexSummaries(), nil
				},
			},
			Fields: &mock.FieldParser{
				ParseFieldFn: func(summary marc.FieldSummary, html string) (*marc.FieldRecord, error) {
					return summary.Record(), nil
				},
			},
			Limiter:     &mock.DomainLimiter{},
			RetryDelays: []time.Duration{},
		}

		var events []scrape.ProgressEvent
		_, _, err := scraper.Run(context.Background(), func(event scrape.ProgressEvent) {
			events = append(events, event)
		})
		require.NoError(t, err)

		byType := make(map[scrape.ProgressType][]scrape.ProgressEvent)
		for _, event := range events {
			byType[event.Type] = append(byType[event.Type], event)
		}

		assert.Len(t, byType[scrape.ProgressIndexPage], len(scrape.RangePages))
		assert.Len(t, byType[scrape.ProgressFieldScraped], 19)
		assert.Len(t, byType[scrape.ProgressFieldFailed], 1)
		assert.Equal(t, "300", byType[scrape.ProgressFieldFailed][0].Code)
		assert.Error(t, byType[scrape.ProgressFieldFailed][0].Err)

		require.NotEmpty(t, events)
		assert.Equal(t, scrape.ProgressFinished, events[len(events)-1].Type)
	})

	t.Run("counts index pages that fail to fetch", func(t *testing.T) {
		t.Parallel()

		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					if strings.Contains(url, "bd5xx.html") {
						return "", errors.New("connection reset")
					}
					return "<html>page</html>", nil
				},
			},
			Index: &mock.IndexParser{
				ParseIndexFn: func(html string) ([]marc.FieldSummary, error) {
					return indexSummaries(), nil
				},
			},
			Fields: &mock.FieldParser{
				ParseFieldFn: func(summary marc.FieldSummary, html string) (*marc.FieldRecord, error) {
					return summary.Record(), nil
				},
			},
			Limiter:     &mock.DomainLimiter{},
			RetryDelays: []time.Duration{},
		}

		_, result, err := scraper.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.PagesFailed)
	})
}
