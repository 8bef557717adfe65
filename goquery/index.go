// Package goquery implements HTML parsers for the Library of Congress
// MARC 21 bibliographic documentation: field range index pages and
// per-field concise pages.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjanowski/marc"
)

// indexEntryRe matches entries like
// "020 - International Standard Book Number (R)" on range index pages.
var indexEntryRe = regexp.MustCompile(`(\d{3})\s*[-–]\s*([^(]+?)\s*\(([RN]{1,2})\)`)

// Ensure IndexParser implements marc.IndexParser at compile time.
var _ marc.IndexParser = (*IndexParser)(nil)

// IndexParser extracts field summaries from a field range index page.
type IndexParser struct{}

// NewIndexParser creates a new IndexParser.
func NewIndexParser() *IndexParser {
	return &IndexParser{}
}

// ParseIndex scans the page text for "NNN - Title (R)" entries.
// Obsolete fields and duplicate codes are skipped.
func (p *IndexParser) ParseIndex(html string) ([]marc.FieldSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, marc.Errorf(marc.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var summaries []marc.FieldSummary

	for _, m := range indexEntryRe.FindAllStringSubmatch(doc.Text(), -1) {
		code, title, repeat := m[1], squeeze(m[2]), strings.ToUpper(m[3])
		if seen[code] {
			continue
		}
		if strings.Contains(strings.ToUpper(title), "OBSOLETE") {
			continue
		}
		seen[code] = true
		summaries = append(summaries, marc.FieldSummary{
			Code:   code,
			Title:  title,
			Repeat: repeat,
		})
	}

	if len(summaries) == 0 {
		return nil, marc.Errorf(marc.EINVALID, "no field entries found on index page")
	}
	return summaries, nil
}

// squeeze collapses all whitespace runs in s to single spaces.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
