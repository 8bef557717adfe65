package marc

import "strings"

// SearchHit is a single search match: either a field-level hit
// (Subfield nil) or a subfield-level hit. A field matching at both
// levels produces one field-level hit plus one hit per matching
// subfield; subfield hits never suppress the parent field hit.
type SearchHit struct {
	Field    *FieldRecord
	Subfield *SubfieldRecord // nil for field-level hits
}

// Search performs a case-insensitive substring search over field
// titles/descriptions and subfield labels/descriptions. Hits are
// ordered ascending by field code, with a field-level hit preceding
// its subfield hits, and subfield hits ordered by subfield code
// (letters before digits). The ordering is deterministic so repeated
// runs of the same query produce byte-identical output.
//
// An empty keyword is EINVALID: matching everything on an empty
// substring would be an accident of strings.Contains, not a query.
func Search(ds *Dataset, keyword string) ([]SearchHit, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil, Errorf(EINVALID, "empty search keyword")
	}

	var hits []SearchHit
	for _, code := range ds.FieldCodes() {
		f := ds.Fields[code]
		if containsFold(f.Title, kw) || containsFold(f.Description, kw) {
			hits = append(hits, SearchHit{Field: f})
		}
		for _, sc := range f.SubfieldCodes() {
			sf := f.Subfields[sc]
			if containsFold(sf.Label, kw) || containsFold(sf.Description, kw) {
				hits = append(hits, SearchHit{Field: f, Subfield: sf})
			}
		}
	}
	return hits, nil
}

// containsFold reports whether s contains the already lower-cased
// substring kw, ignoring case in s.
func containsFold(s, kw string) bool {
	return strings.Contains(strings.ToLower(s), kw)
}
