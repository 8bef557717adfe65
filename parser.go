package marc

// FieldSummary is one entry on a field range index page: the code,
// title and repeatability marker, without any of the detail that lives
// on the per-field page.
type FieldSummary struct {
	Code   string
	Title  string
	Repeat string // "R" or "NR"
}

// Record converts the summary into a minimal field record, used when a
// field has no parseable detail page.
func (s FieldSummary) Record() *FieldRecord {
	return &FieldRecord{
		Code:   s.Code,
		Title:  s.Title,
		Repeat: s.Repeat,
	}
}

// IndexParser extracts field summaries from a field range index page
// (e.g. "Title and Title-Related Fields (20X-24X)"). Obsolete fields
// are skipped.
type IndexParser interface {
	ParseIndex(html string) ([]FieldSummary, error)
}

// FieldParser extracts a full field record from a field's concise
// documentation page: definition, indicators, subfields with extended
// descriptions, and examples. The summary supplies the code, title and
// repeatability, which the concise page does not restate in a stable
// form.
type FieldParser interface {
	ParseField(summary FieldSummary, html string) (*FieldRecord, error)
}

// Converter converts HTML fragments to Markdown. The scraper uses it
// for long-form definition and extended subfield text so that verbose
// descriptions keep their structure as plain text.
type Converter interface {
	Convert(html string) (string, error)
}
