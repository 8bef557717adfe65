package marc_test

import "github.com/mjanowski/marc"

// verboseDataset returns a small verbose-tier fixture with realistic
// MARC 21 content. The basic-tier fixture is derived via Basic().
func verboseDataset() *marc.Dataset {
	return &marc.Dataset{
		Tier: marc.TierVerbose,
		Fields: map[string]*marc.FieldRecord{
			"020": {
				Code:        "020",
				Title:       "International Standard Book Number (ISBN)",
				Repeat:      "R",
				Description: "International Standard Book Number (ISBN) and terms of availability.",
				Subfields: map[string]*marc.SubfieldRecord{
					"a": {Code: "a", Label: "International Standard Book Number", Repeat: "NR"},
					"c": {Code: "c", Label: "Terms of availability", Repeat: "NR"},
					"q": {Code: "q", Label: "Qualifying information", Repeat: "R"},
					"z": {Code: "z", Label: "Canceled/invalid ISBN", Repeat: "R"},
				},
			},
			"245": {
				Code:        "245",
				Title:       "Title Statement",
				Repeat:      "NR",
				Description: "Title and statement of responsibility area of the bibliographic description of a work.",
				Indicators: []marc.IndicatorSpec{
					{
						Position: 1,
						Label:    "Title added entry",
						Values: map[string]string{
							"0": "No added entry",
							"1": "Added entry",
						},
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
					"a": {
						Code:        "a",
						Label:       "Title",
						Repeat:      "NR",
						Description: "Title proper and alternative title, excluding the designation of the number or name of a part.",
					},
					"b": {Code: "b", Label: "Remainder of title", Repeat: "NR"},
					"c": {Code: "c", Label: "Statement of responsibility, etc.", Repeat: "NR"},
					"6": {Code: "6", Label: "Linkage", Repeat: "NR"},
				},
				Examples: []string{
					"10$aOrganic gardening.",
					"00$a[Portrait of Leonard Bernstein]",
				},
			},
			"500": {
				Code:        "500",
				Title:       "General Note",
				Repeat:      "R",
				Description: "General information for which a specialized note field has not been defined.",
				Subfields: map[string]*marc.SubfieldRecord{
					"a": {Code: "a", Label: "General note", Repeat: "NR"},
				},
			},
		},
	}
}

func basicDataset() *marc.Dataset {
	return verboseDataset().Basic()
}
