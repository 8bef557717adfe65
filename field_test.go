package marc_test

import (
	"testing"

	"github.com/mjanowski/marc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed record", func(t *testing.T) {
		t.Parallel()

		f := verboseDataset().Fields["245"]
		assert.NoError(t, f.Validate())
	})

	t.Run("rejects a non-3-digit code", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{"", "24", "2456", "24a"} {
			f := &marc.FieldRecord{Code: code, Title: "Test"}
			err := f.Validate()
			require.Error(t, err, "code %q", code)
			assert.Equal(t, marc.EINVALID, marc.ErrorCode(err))
		}
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		t.Parallel()

		f := &marc.FieldRecord{Code: "245"}
		assert.Equal(t, marc.EINVALID, marc.ErrorCode(f.Validate()))
	})

	t.Run("rejects an invalid subfield code", func(t *testing.T) {
		t.Parallel()

		f := &marc.FieldRecord{
			Code:  "245",
			Title: "Title Statement",
			Subfields: map[string]*marc.SubfieldRecord{
				"ab": {Code: "ab", Label: "Bad"},
			},
		}
		assert.Equal(t, marc.EINVALID, marc.ErrorCode(f.Validate()))
	})

	t.Run("rejects an out-of-range indicator position", func(t *testing.T) {
		t.Parallel()

		f := &marc.FieldRecord{
			Code:       "245",
			Title:      "Title Statement",
			Indicators: []marc.IndicatorSpec{{Position: 3, Label: "Bad"}},
		}
		assert.Equal(t, marc.EINVALID, marc.ErrorCode(f.Validate()))
	})
}

func TestFieldRecord_SubfieldCodes(t *testing.T) {
	t.Parallel()

	f := &marc.FieldRecord{
		Code:  "245",
		Title: "Title Statement",
		Subfields: map[string]*marc.SubfieldRecord{
			"6": {Code: "6", Label: "Linkage"},
			"b": {Code: "b", Label: "Remainder of title"},
			"a": {Code: "a", Label: "Title"},
			"0": {Code: "0", Label: "Authority record control number or standard number"},
		},
	}

	assert.Equal(t, []string{"a", "b", "0", "6"}, f.SubfieldCodes())
}

func TestDataset_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts the fixture", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, verboseDataset().Validate())
		assert.NoError(t, basicDataset().Validate())
	})

	t.Run("rejects an unknown tier", func(t *testing.T) {
		t.Parallel()

		ds := &marc.Dataset{Tier: "extended"}
		assert.Equal(t, marc.EINVALID, marc.ErrorCode(ds.Validate()))
	})

	t.Run("rejects a record keyed under the wrong code", func(t *testing.T) {
		t.Parallel()

		ds := &marc.Dataset{
			Tier: marc.TierBasic,
			Fields: map[string]*marc.FieldRecord{
				"100": {Code: "110", Title: "Main Entry - Corporate Name"},
			},
		}
		assert.Equal(t, marc.EINVALID, marc.ErrorCode(ds.Validate()))
	})
}

func TestDataset_FieldCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"020", "245", "500"}, verboseDataset().FieldCodes())
}

func TestDataset_Basic(t *testing.T) {
	t.Parallel()

	basic := verboseDataset().Basic()

	assert.Equal(t, marc.TierBasic, basic.Tier)
	require.Contains(t, basic.Fields, "245")

	f := basic.Fields["245"]
	assert.Equal(t, "Title Statement", f.Title)
	assert.Equal(t, "NR", f.Repeat)
	assert.Empty(t, f.Description)
	assert.Empty(t, f.Indicators)
	assert.Empty(t, f.Examples)

	require.Contains(t, f.Subfields, "a")
	assert.Equal(t, "Title", f.Subfields["a"].Label)
	assert.Empty(t, f.Subfields["a"].Description)
}
