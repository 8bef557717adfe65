package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjanowski/marc"
)

// subfieldRe matches "$a - Title proper (NR)" style definition terms.
var subfieldRe = regexp.MustCompile(`(?i)\$([a-z0-9])\s*[-–]\s*([^(]+?)\s*\(([RN]{1,2})\)`)

// indicatorValueRe splits "0 - No nonfiling characters" into the value
// code and its meaning. The value code may be "#" (blank) or a range
// like "1-9"; it is everything before the first separator.
var indicatorValueRe = regexp.MustCompile(`^([^\s\-–]+(?:-[0-9#]+)?)\s*[-–]\s*(.+)$`)

// Ensure FieldParser implements marc.FieldParser at compile time.
var _ marc.FieldParser = (*FieldParser)(nil)

// FieldParser extracts a full field record from a concise field page.
// The concise pages have stable, named content sections:
// div.definition, div.indicators, div.subfields, table.examples.
type FieldParser struct {
	conv marc.Converter
}

// NewFieldParser creates a FieldParser. conv is used to convert
// long-form HTML (definition, extended subfield text) to Markdown;
// it may be nil, in which case plain text is used.
func NewFieldParser(conv marc.Converter) *FieldParser {
	return &FieldParser{conv: conv}
}

// ParseField extracts definition, indicators, subfields and examples
// from a concise field page. Returns EINVALID if the page yields no
// content at all, so the caller can fall back to the index summary.
func (p *FieldParser) ParseField(summary marc.FieldSummary, html string) (*marc.FieldRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, marc.Errorf(marc.EINVALID, "failed to parse HTML: %v", err)
	}

	f := summary.Record()

	if sel := doc.Find("div.definition p").First(); sel.Length() > 0 {
		f.Description = p.longText(sel)
	}

	p.parseIndicators(doc, f)
	p.parseSubfields(doc, f)
	p.parseExamples(doc, f)

	if f.Description == "" && len(f.Indicators) == 0 && len(f.Subfields) == 0 {
		return nil, marc.Errorf(marc.EINVALID, "no parseable content for field %s", summary.Code)
	}
	return f, nil
}

// parseIndicators reads the div.indicators definition list: each dt
// names an indicator position ("First - Nonfiling characters"), the
// dd siblings up to the next dt enumerate its values.
func (p *FieldParser) parseIndicators(doc *goquery.Document, f *marc.FieldRecord) {
	doc.Find("div.indicators dt").Each(func(_ int, dt *goquery.Selection) {
		pos, label := splitIndicatorName(squeeze(dt.Text()), len(f.Indicators))
		spec := marc.IndicatorSpec{
			Position: pos,
			Label:    label,
			Values:   make(map[string]string),
		}

		dt.NextUntil("dt").Each(func(_ int, sib *goquery.Selection) {
			if !sib.Is("dd") {
				return
			}
			if m := indicatorValueRe.FindStringSubmatch(squeeze(sib.Text())); m != nil {
				spec.Values[m[1]] = m[2]
			}
		})

		if len(spec.Values) > 0 {
			f.Indicators = append(f.Indicators, spec)
		}
	})
}

// parseSubfields reads the div.subfields definition lists. Each dt
// carries the "$a - Label (R)" line; the dd siblings up to the next dt
// carry the extended description, if any.
func (p *FieldParser) parseSubfields(doc *goquery.Document, f *marc.FieldRecord) {
	doc.Find("div.subfields dt").Each(func(_ int, dt *goquery.Selection) {
		m := subfieldRe.FindStringSubmatch(dt.Text())
		if m == nil {
			return
		}

		sf := &marc.SubfieldRecord{
			Code:   strings.ToLower(m[1]),
			Label:  squeeze(m[2]),
			Repeat: strings.ToUpper(m[3]),
		}

		if dd := dt.NextUntil("dt").Filter("dd").First(); dd.Length() > 0 {
			sf.Description = p.longText(dd)
		}

		if f.Subfields == nil {
			f.Subfields = make(map[string]*marc.SubfieldRecord)
		}
		f.Subfields[sf.Code] = sf
	})
}

// parseExamples reads table.examples rows. The first cell is the field
// tag; the remaining cells joined together form the example line.
func (p *FieldParser) parseExamples(doc *goquery.Document, f *marc.FieldRecord) {
	doc.Find("table.examples tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		var parts []string
		cells.Slice(1, cells.Length()).Each(func(_ int, td *goquery.Selection) {
			if text := squeeze(td.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if example := strings.Join(parts, " "); example != "" {
			f.Examples = append(f.Examples, example)
		}
	})
}

// longText extracts a selection's content as Markdown via the
// converter, falling back to whitespace-collapsed plain text.
func (p *FieldParser) longText(sel *goquery.Selection) string {
	if p.conv != nil {
		if inner, err := sel.Html(); err == nil {
			if md, err := p.conv.Convert(inner); err == nil {
				if md = strings.TrimSpace(md); md != "" {
					return md
				}
			}
		}
	}
	return squeeze(sel.Text())
}

// splitIndicatorName parses "First - Undefined" into position 1 and
// label "Undefined". Unrecognized prefixes fall back to document
// order (seen indicators so far).
func splitIndicatorName(name string, seen int) (int, string) {
	label := name
	if _, after, ok := strings.Cut(name, "-"); ok {
		label = squeeze(after)
	}

	switch {
	case strings.HasPrefix(name, "First"):
		return 1, label
	case strings.HasPrefix(name, "Second"):
		return 2, label
	case seen == 0:
		return 1, label
	default:
		return 2, label
	}
}
