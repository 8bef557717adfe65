package mock

import "github.com/mjanowski/marc"

var _ marc.IndexParser = (*IndexParser)(nil)

// IndexParser is a mock implementation of marc.IndexParser.
type IndexParser struct {
	ParseIndexFn func(html string) ([]marc.FieldSummary, error)
}

func (p *IndexParser) ParseIndex(html string) ([]marc.FieldSummary, error) {
	return p.ParseIndexFn(html)
}

var _ marc.FieldParser = (*FieldParser)(nil)

// FieldParser is a mock implementation of marc.FieldParser.
type FieldParser struct {
	ParseFieldFn func(summary marc.FieldSummary, html string) (*marc.FieldRecord, error)
}

func (p *FieldParser) ParseField(summary marc.FieldSummary, html string) (*marc.FieldRecord, error) {
	return p.ParseFieldFn(summary, html)
}

var _ marc.Converter = (*Converter)(nil)

// Converter is a mock implementation of marc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
