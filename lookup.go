package marc

import "strings"

// Result is the outcome of a successful lookup: either a whole field,
// or a single subfield paired with its parent field for identification.
type Result struct {
	Field    *FieldRecord
	Subfield *SubfieldRecord // nil for whole-field lookups
}

// Lookup resolves a field code, optionally narrowed to one subfield,
// against the dataset. Subfield matching is case-insensitive.
// Returns ENOTFOUND if the field or subfield is absent.
func Lookup(ds *Dataset, code, subfield string) (*Result, error) {
	f, ok := ds.Fields[code]
	if !ok {
		return nil, Errorf(ENOTFOUND, "no such field: %s", code)
	}

	if subfield == "" {
		return &Result{Field: f}, nil
	}

	sc := strings.ToLower(subfield)
	sf, ok := f.Subfields[sc]
	if !ok {
		return nil, Errorf(ENOTFOUND, "no such subfield: %s$%s", code, sc)
	}

	return &Result{Field: f, Subfield: sf}, nil
}
