package marc

import (
	"fmt"
	"strings"
)

// FormatResult renders a lookup result as text. The basic rendering is
// the field header plus one line per subfield; the verbose rendering
// adds the definition, indicator specs, extended subfield descriptions
// and examples, in that fixed order. Every line of the basic rendering
// also appears in the verbose rendering of the same result.
func FormatResult(r *Result, verbose bool) string {
	if r.Subfield != nil {
		return formatSubfield(r.Field, r.Subfield, verbose)
	}
	if verbose {
		return formatFieldVerbose(r.Field)
	}
	return formatFieldBasic(r.Field)
}

// FormatSearchHits renders search results, one line per hit. Field
// hits show code and title; subfield hits show code, subfield and
// label, plus a description snippet in verbose mode. An empty result
// set renders a "no matches" notice; it is not an error.
func FormatSearchHits(hits []SearchHit, verbose bool) string {
	if len(hits) == 0 {
		return "No matches found."
	}

	var lines []string
	if len(hits) > 1 {
		lines = append(lines, fmt.Sprintf("Found %d matches:", len(hits)), "")
	}
	for _, hit := range hits {
		if hit.Subfield == nil {
			lines = append(lines, fieldHeader(hit.Field))
			continue
		}
		line := fmt.Sprintf("%s$%s  %s", hit.Field.Code, hit.Subfield.Code, withRepeat(hit.Subfield.Label, hit.Subfield.Repeat))
		if verbose && hit.Subfield.Description != "" {
			line += "  " + snippet(hit.Subfield.Description, 80)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatFieldBasic(f *FieldRecord) string {
	lines := []string{fieldHeader(f)}
	for _, sc := range f.SubfieldCodes() {
		lines = append(lines, subfieldLine(f.Subfields[sc]))
	}
	return strings.Join(lines, "\n")
}

func formatFieldVerbose(f *FieldRecord) string {
	lines := []string{fieldHeader(f)}

	if f.Description != "" {
		lines = append(lines, "", f.Description)
	}

	if len(f.Indicators) > 0 {
		lines = append(lines, "", "Indicators:")
		for _, ind := range f.Indicators {
			lines = append(lines, fmt.Sprintf("  %s - %s", positionName(ind.Position), ind.Label))
			for _, vc := range ind.ValueCodes() {
				lines = append(lines, fmt.Sprintf("    %s  %s", vc, ind.Values[vc]))
			}
		}
	}

	if len(f.Subfields) > 0 {
		lines = append(lines, "", "Subfields:")
		for _, sc := range f.SubfieldCodes() {
			sf := f.Subfields[sc]
			lines = append(lines, subfieldLine(sf))
			if sf.Description != "" {
				lines = append(lines, "      "+sf.Description)
			}
		}
	}

	if len(f.Examples) > 0 {
		lines = append(lines, "", "Examples:")
		for i, ex := range f.Examples {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, ex))
		}
	}

	return strings.Join(lines, "\n")
}

func formatSubfield(f *FieldRecord, sf *SubfieldRecord, verbose bool) string {
	lines := []string{fieldHeader(f), subfieldLine(sf)}
	if verbose && sf.Description != "" {
		lines = append(lines, "      "+sf.Description)
	}
	return strings.Join(lines, "\n")
}

func fieldHeader(f *FieldRecord) string {
	return fmt.Sprintf("%s  %s", f.Code, withRepeat(f.Title, f.Repeat))
}

func subfieldLine(sf *SubfieldRecord) string {
	return fmt.Sprintf("  $%s  %s", sf.Code, withRepeat(sf.Label, sf.Repeat))
}

func withRepeat(text, repeat string) string {
	if repeat == "" {
		return text
	}
	return fmt.Sprintf("%s (%s)", text, repeat)
}

// positionName maps an indicator position to its conventional name in
// the MARC documentation.
func positionName(pos int) string {
	switch pos {
	case 1:
		return "First"
	case 2:
		return "Second"
	default:
		return fmt.Sprintf("Indicator %d", pos)
	}
}

// snippet shortens a description for single-line display, collapsing
// whitespace and truncating on a rune boundary.
func snippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
