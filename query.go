package marc

import (
	"strings"
	"unicode"
)

// Query is the classified form of a raw CLI query: either a field-code
// lookup or a free-text keyword search. The variants form a closed set
// so that dispatch is an exhaustive type switch; adding a query kind
// later is a non-breaking extension.
type Query interface {
	isQuery()
}

// FieldCodeQuery targets a field by its 3-digit code, optionally
// narrowed to a single subfield.
type FieldCodeQuery struct {
	Code     string // 3-digit field code
	Subfield string // optional subfield code, lower-cased; empty for whole-field lookups
}

func (FieldCodeQuery) isQuery() {}

// KeywordQuery is a case-insensitive substring search over field and
// subfield descriptions.
type KeywordQuery struct {
	Keyword string // trimmed, lower-cased
}

func (KeywordQuery) isQuery() {}

// Classify inspects a raw query string and decides between field-code
// lookup and keyword search. A query starting with a digit must have
// three leading digits (the field code) and may carry one trailing
// subfield code; a query starting with a letter is a keyword search.
// Anything else is EINVALID.
func Classify(raw string) (Query, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return nil, Errorf(EINVALID, "empty query")
	}

	first := []rune(q)[0]
	switch {
	case unicode.IsDigit(first):
		if len(q) < 3 || !allDigits(q[:3]) {
			return nil, Errorf(EINVALID, "field code must be 3 digits, got %q", q)
		}
		rest := strings.ToLower(strings.TrimSpace(q[3:]))
		if rest == "" {
			return FieldCodeQuery{Code: q[:3]}, nil
		}
		if !isSubfieldCode(rest) {
			return nil, Errorf(EINVALID, "subfield must be a single letter or digit, got %q", rest)
		}
		return FieldCodeQuery{Code: q[:3], Subfield: rest}, nil

	case unicode.IsLetter(first):
		return KeywordQuery{Keyword: strings.ToLower(q)}, nil

	default:
		return nil, Errorf(EINVALID, "query must start with a field code or a keyword, got %q", q)
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
