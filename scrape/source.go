package scrape

import "github.com/mjanowski/marc"

// BaseURL is the root of the MARC 21 bibliographic documentation.
const BaseURL = "https://www.loc.gov/marc/bibliographic/"

// RangePages are the field range index pages to scrape. The linking
// entry page (bd76x78x.html) uses a grouped layout the index parser
// cannot read; those fields are listed in LinkingEntryFields instead.
var RangePages = []string{
	"bd00x.html",     // Control Fields (001-008)
	"bd01x09x.html",  // Numbers and Code Fields (010-088)
	"bd1xx.html",     // Main Entry Fields (100-130)
	"bd20x24x.html",  // Title and Title-Related Fields (210-247)
	"bd25x28x.html",  // Edition, Imprint, etc. (250-270)
	"bd3xx.html",     // Physical Description, etc. (300-388)
	"bd4xx.html",     // Series Statement Fields (400-490)
	"bd5xx.html",     // Note Fields (500-588)
	"bd6xx.html",     // Subject Access Fields (600-688)
	"bd70x75x.html",  // Added Entry Fields (700-758)
	"bd80x83x.html",  // Series Added Entry Fields (800-830)
	"bd84188x.html",  // Holdings, Location, etc. (841-887)
}

// LinkingEntryFields are fields 760-788, maintained by hand because
// their shared index page has a grouped format. Their concise pages
// parse normally.
var LinkingEntryFields = []marc.FieldSummary{
	{Code: "760", Title: "Main Series Entry", Repeat: "R"},
	{Code: "762", Title: "Subseries Entry", Repeat: "R"},
	{Code: "765", Title: "Original Language Entry", Repeat: "R"},
	{Code: "767", Title: "Translation Entry", Repeat: "R"},
	{Code: "770", Title: "Supplement/Special Issue Entry", Repeat: "R"},
	{Code: "772", Title: "Supplement Parent Entry", Repeat: "R"},
	{Code: "773", Title: "Host Item Entry", Repeat: "R"},
	{Code: "774", Title: "Constituent Unit Entry", Repeat: "R"},
	{Code: "775", Title: "Other Edition Entry", Repeat: "R"},
	{Code: "776", Title: "Additional Physical Form Entry", Repeat: "R"},
	{Code: "777", Title: "Issued With Entry", Repeat: "R"},
	{Code: "780", Title: "Preceding Entry", Repeat: "R"},
	{Code: "785", Title: "Succeeding Entry", Repeat: "R"},
	{Code: "786", Title: "Data Source Entry", Repeat: "R"},
	{Code: "787", Title: "Other Relationship Entry", Repeat: "R"},
	{Code: "788", Title: "Parallel Description in Another Language of Cataloging", Repeat: "R"},
}

// Field222 is maintained by hand: its concise page uses a different
// HTML structure than every other field.
func Field222() *marc.FieldRecord {
	return &marc.FieldRecord{
		Code:        "222",
		Title:       "Key Title",
		Repeat:      "R",
		Description: "Unique title for a continuing resource that is assigned in conjunction with an ISSN recorded in field 022 by national centers under the auspices of the ISSN Network.",
		Indicators: []marc.IndicatorSpec{
			{
				Position: 1,
				Label:    "Undefined",
				Values:   map[string]string{"#": "Undefined"},
			},
			{
				Position: 2,
				Label:    "Nonfiling characters",
				Values: map[string]string{
					"0":   "No nonfiling characters",
					"1-9": "Number of nonfiling characters",
				},
			},
		},
		Subfields: map[string]*marc.SubfieldRecord{
			"a": {Code: "a", Label: "Key title", Repeat: "NR"},
			"b": {
				Code:        "b",
				Label:       "Qualifying information",
				Repeat:      "NR",
				Description: "Parenthetical information that qualifies the title to make it unique.",
			},
			"6": {
				Code:        "6",
				Label:       "Linkage",
				Repeat:      "NR",
				Description: "See description of this subfield in Appendix A: Control Subfields.",
			},
			"8": {
				Code:        "8",
				Label:       "Field link and sequence number",
				Repeat:      "R",
				Description: "See description of this subfield in Appendix A: Control Subfields.",
			},
		},
		Examples: []string{
			"#0$aViva$b(New York)",
			"#0$aCauses of death",
			"#4$aDer Öffentliche Dienst$b(Köln)",
			"#0$aJournal of polymer science. Part B. Polymer letters",
			"#0$aEconomic education bulletin$b(Great Barrington)",
		},
	}
}

// IndexURL returns the URL of a field range index page.
func IndexURL(page string) string {
	return BaseURL + page
}

// ConciseURL returns the URL of a field's concise documentation page.
func ConciseURL(code string) string {
	return BaseURL + "concise/bd" + code + ".html"
}
