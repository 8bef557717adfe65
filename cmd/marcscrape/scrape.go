package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mjanowski/marc"
	"github.com/mjanowski/marc/scrape"
)

// ScrapeCmd runs a full scrape and writes both dataset files.
type ScrapeCmd struct {
	Dir string
}

// Run scrapes the documentation, writes the verbose dataset and the
// basic dataset derived from it, and prints a summary. Per-field
// failures are reported as they happen and do not fail the run.
func (c *ScrapeCmd) Run(ctx context.Context, scraper *scrape.Scraper, writer marc.DatasetWriter, stdout, stderr io.Writer) error {
	progress := func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressIndexPage:
			if e.Err != nil {
				fmt.Fprintf(stderr, "skip index page %s: %s\n", e.URL, errText(e.Err))
			}
		case scrape.ProgressFieldFailed:
			fmt.Fprintf(stderr, "skip field %s: %s\n", e.Code, errText(e.Err))
		case scrape.ProgressFieldScraped, scrape.ProgressFieldSummaryOnly:
			fmt.Fprintf(stdout, "\r[%d/%d] %s", e.Completed, e.Total, e.Code)
		case scrape.ProgressFinished:
			fmt.Fprintf(stdout, "\r%40s\r", "")
		}
	}

	verbose, result, err := scraper.Run(ctx, progress)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errText(err))
		return err
	}

	if err := writer.WriteDataset(ctx, verbose); err != nil {
		fmt.Fprintf(stderr, "error writing verbose dataset: %s\n", errText(err))
		return err
	}
	if err := writer.WriteDataset(ctx, verbose.Basic()); err != nil {
		fmt.Fprintf(stderr, "error writing basic dataset: %s\n", errText(err))
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d fields to %s (%d full, %d summary-only, %d skipped)\n",
		len(verbose.Fields), c.Dir, result.Scraped, result.SummaryOnly, result.Failed)
	return nil
}

func errText(err error) string {
	if marc.ErrorCode(err) != marc.EINTERNAL {
		if msg := marc.ErrorMessage(err); msg != "" && msg != "Internal error." {
			return msg
		}
	}
	return err.Error()
}
