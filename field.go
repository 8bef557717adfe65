package marc

import (
	"regexp"
	"sort"
)

// Tier identifies the detail level of a dataset.
type Tier string

// Dataset tiers. The basic tier carries titles and subfield labels
// only; the verbose tier adds definitions, indicators, extended
// subfield descriptions, and examples.
const (
	TierBasic   Tier = "basic"
	TierVerbose Tier = "verbose"
)

var fieldCodeRe = regexp.MustCompile(`^[0-9]{3}$`)

// FieldRecord describes a single MARC 21 bibliographic field.
type FieldRecord struct {
	Code        string                     `json:"code"`
	Title       string                     `json:"title"`
	Repeat      string                     `json:"repeat,omitempty"` // "R" or "NR"
	Description string                     `json:"description,omitempty"`
	Indicators  []IndicatorSpec            `json:"indicators,omitempty"`
	Subfields   map[string]*SubfieldRecord `json:"subfields,omitempty"`
	Examples    []string                   `json:"examples,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (f *FieldRecord) Validate() error {
	if !fieldCodeRe.MatchString(f.Code) {
		return Errorf(EINVALID, "field code must be 3 digits, got %q", f.Code)
	}
	if f.Title == "" {
		return Errorf(EINVALID, "field %s title required", f.Code)
	}
	for code, sf := range f.Subfields {
		if !isSubfieldCode(code) {
			return Errorf(EINVALID, "field %s has invalid subfield code %q", f.Code, code)
		}
		if sf == nil || sf.Label == "" {
			return Errorf(EINVALID, "field %s subfield $%s label required", f.Code, code)
		}
	}
	for _, ind := range f.Indicators {
		if ind.Position != 1 && ind.Position != 2 {
			return Errorf(EINVALID, "field %s indicator position must be 1 or 2, got %d", f.Code, ind.Position)
		}
	}
	return nil
}

// SubfieldCodes returns the record's subfield codes in display order:
// letters a-z first, then numeric subfields 0-9, each group ascending.
// This matches the ordering used in the LOC documentation.
func (f *FieldRecord) SubfieldCodes() []string {
	codes := make([]string, 0, len(f.Subfields))
	for code := range f.Subfields {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		di, dj := isDigit(codes[i][0]), isDigit(codes[j][0])
		if di != dj {
			return !di // letters before digits
		}
		return codes[i] < codes[j]
	})
	return codes
}

// SubfieldRecord describes a lettered (or numeric) component of a field.
type SubfieldRecord struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Repeat      string `json:"repeat,omitempty"` // "R" or "NR"
	Description string `json:"description,omitempty"`
}

// IndicatorSpec describes one indicator position of a field and the
// meanings of its defined values. Verbose tier only.
type IndicatorSpec struct {
	Position int               `json:"position"` // 1 or 2
	Label    string            `json:"label"`
	Values   map[string]string `json:"values,omitempty"`
}

// ValueCodes returns the indicator's defined value codes in ascending
// order, for deterministic rendering.
func (i *IndicatorSpec) ValueCodes() []string {
	codes := make([]string, 0, len(i.Values))
	for code := range i.Values {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Dataset is a read-only collection of field records at one tier.
// It is loaded wholesale from a persisted file and never mutated at
// query time; the scraper is the sole writer.
type Dataset struct {
	Tier   Tier                    `json:"tier"`
	Fields map[string]*FieldRecord `json:"fields"`
}

// Validate returns an error if the dataset or any of its records is
// invalid.
func (d *Dataset) Validate() error {
	if d.Tier != TierBasic && d.Tier != TierVerbose {
		return Errorf(EINVALID, "unknown dataset tier %q", d.Tier)
	}
	for code, f := range d.Fields {
		if f == nil {
			return Errorf(EINVALID, "field %s is empty", code)
		}
		if f.Code != code {
			return Errorf(EINVALID, "field keyed %s has code %q", code, f.Code)
		}
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FieldCodes returns the dataset's field codes in ascending numeric
// order. Codes are fixed-width digit strings, so lexicographic order
// is numeric order.
func (d *Dataset) FieldCodes() []string {
	codes := make([]string, 0, len(d.Fields))
	for code := range d.Fields {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Basic derives the basic-tier dataset from a verbose one: titles and
// subfield labels survive, definitions, indicators, extended subfield
// descriptions and examples are stripped.
func (d *Dataset) Basic() *Dataset {
	fields := make(map[string]*FieldRecord, len(d.Fields))
	for code, f := range d.Fields {
		basic := &FieldRecord{
			Code:   f.Code,
			Title:  f.Title,
			Repeat: f.Repeat,
		}
		if len(f.Subfields) > 0 {
			basic.Subfields = make(map[string]*SubfieldRecord, len(f.Subfields))
			for sc, sf := range f.Subfields {
				basic.Subfields[sc] = &SubfieldRecord{
					Code:   sf.Code,
					Label:  sf.Label,
					Repeat: sf.Repeat,
				}
			}
		}
		fields[code] = basic
	}
	return &Dataset{Tier: TierBasic, Fields: fields}
}

func isSubfieldCode(code string) bool {
	if len(code) != 1 {
		return false
	}
	c := code[0]
	return (c >= 'a' && c <= 'z') || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
