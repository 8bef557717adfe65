package marc_test

import (
	"strings"
	"testing"

	"github.com/mjanowski/marc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult_BasicField(t *testing.T) {
	t.Parallel()

	ds := basicDataset()
	res, err := marc.Lookup(ds, "020", "")
	require.NoError(t, err)

	got := marc.FormatResult(res, false)

	want := strings.Join([]string{
		"020  International Standard Book Number (ISBN) (R)",
		"  $a  International Standard Book Number (NR)",
		"  $c  Terms of availability (NR)",
		"  $q  Qualifying information (R)",
		"  $z  Canceled/invalid ISBN (R)",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatResult_VerboseField(t *testing.T) {
	t.Parallel()

	ds := verboseDataset()
	res, err := marc.Lookup(ds, "245", "")
	require.NoError(t, err)

	got := marc.FormatResult(res, true)

	want := strings.Join([]string{
		"245  Title Statement (NR)",
		"",
		"Title and statement of responsibility area of the bibliographic description of a work.",
		"",
		"Indicators:",
		"  First - Title added entry",
		"    0  No added entry",
		"    1  Added entry",
		"  Second - Nonfiling characters",
		"    0  No nonfiling characters",
		"    1-9  Number of nonfiling characters",
		"",
		"Subfields:",
		"  $a  Title (NR)",
		"      Title proper and alternative title, excluding the designation of the number or name of a part.",
		"  $b  Remainder of title (NR)",
		"  $c  Statement of responsibility, etc. (NR)",
		"  $6  Linkage (NR)",
		"",
		"Examples:",
		"  1. 10$aOrganic gardening.",
		"  2. 00$a[Portrait of Leonard Bernstein]",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatResult_VerboseIsSupersetOfBasic(t *testing.T) {
	t.Parallel()

	ds := verboseDataset()

	for code := range ds.Fields {
		res, err := marc.Lookup(ds, code, "")
		require.NoError(t, err)

		verboseLines := strings.Split(marc.FormatResult(res, true), "\n")
		seen := make(map[string]bool, len(verboseLines))
		for _, line := range verboseLines {
			seen[line] = true
		}

		basicRes, err := marc.Lookup(ds.Basic(), code, "")
		require.NoError(t, err)
		for _, line := range strings.Split(marc.FormatResult(basicRes, false), "\n") {
			assert.True(t, seen[line], "field %s: basic line %q missing from verbose output", code, line)
		}
	}
}

func TestFormatResult_Subfield(t *testing.T) {
	t.Parallel()

	ds := verboseDataset()
	res, err := marc.Lookup(ds, "245", "a")
	require.NoError(t, err)

	t.Run("basic shows field header and subfield line", func(t *testing.T) {
		t.Parallel()

		want := strings.Join([]string{
			"245  Title Statement (NR)",
			"  $a  Title (NR)",
		}, "\n")
		assert.Equal(t, want, marc.FormatResult(res, false))
	})

	t.Run("verbose adds the extended description", func(t *testing.T) {
		t.Parallel()

		want := strings.Join([]string{
			"245  Title Statement (NR)",
			"  $a  Title (NR)",
			"      Title proper and alternative title, excluding the designation of the number or name of a part.",
		}, "\n")
		assert.Equal(t, want, marc.FormatResult(res, true))
	})
}

func TestFormatSearchHits(t *testing.T) {
	t.Parallel()

	t.Run("renders one line per hit with a count header", func(t *testing.T) {
		t.Parallel()

		hits, err := marc.Search(verboseDataset(), "isbn")
		require.NoError(t, err)

		got := marc.FormatSearchHits(hits, false)

		want := strings.Join([]string{
			"Found 2 matches:",
			"",
			"020  International Standard Book Number (ISBN) (R)",
			"020$z  Canceled/invalid ISBN (R)",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("verbose appends subfield description snippets", func(t *testing.T) {
		t.Parallel()

		hits, err := marc.Search(verboseDataset(), "remainder")
		require.NoError(t, err)
		require.Len(t, hits, 1)

		// $b has no description, so verbose output matches basic.
		assert.Equal(t,
			"245$b  Remainder of title (NR)",
			marc.FormatSearchHits(hits, true))

		hits, err = marc.Search(verboseDataset(), "alternative title")
		require.NoError(t, err)
		require.Len(t, hits, 1)

		got := marc.FormatSearchHits(hits, true)
		assert.Contains(t, got, "245$a  Title (NR)  Title proper and alternative title,")
	})

	t.Run("empty result renders a notice", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No matches found.", marc.FormatSearchHits(nil, false))
	})
}
