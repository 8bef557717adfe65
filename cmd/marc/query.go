package main

import (
	"fmt"

	"github.com/mjanowski/marc"
)

// QueryCmd resolves a single query against the active dataset tier and
// renders the result to stdout.
type QueryCmd struct {
	Query   string
	Verbose bool
}

// Run classifies the query, loads the dataset for the requested tier,
// and dispatches to lookup or search. When the verbose dataset cannot
// be loaded but the basic one can, output degrades to basic rendering
// with a warning instead of failing.
func (c *QueryCmd) Run(deps *Dependencies) error {
	q, err := marc.Classify(c.Query)
	if err != nil {
		return err
	}

	verbose := c.Verbose
	tier := marc.TierBasic
	if verbose {
		tier = marc.TierVerbose
	}

	ds, err := deps.Datasets.LoadDataset(deps.Ctx, tier)
	if err != nil && verbose && marc.ErrorCode(err) == marc.EUNAVAILABLE {
		basic, basicErr := deps.Datasets.LoadDataset(deps.Ctx, marc.TierBasic)
		if basicErr != nil {
			return err
		}
		fmt.Fprintln(deps.Stderr, "warning: verbose dataset unavailable, showing basic output; run marcscrape to regenerate it")
		ds, verbose = basic, false
	} else if err != nil {
		return err
	}

	switch q := q.(type) {
	case marc.FieldCodeQuery:
		res, err := marc.Lookup(ds, q.Code, q.Subfield)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, marc.FormatResult(res, verbose))

	case marc.KeywordQuery:
		hits, err := marc.Search(ds, q.Keyword)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, marc.FormatSearchHits(hits, verbose))
	}

	return nil
}
