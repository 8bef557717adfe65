package marc_test

import (
	"testing"

	"github.com/mjanowski/marc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Field(t *testing.T) {
	t.Parallel()

	t.Run("returns the exact record for every stored code", func(t *testing.T) {
		t.Parallel()

		ds := verboseDataset()

		for code, want := range ds.Fields {
			res, err := marc.Lookup(ds, code, "")

			require.NoError(t, err)
			assert.Same(t, want, res.Field)
			assert.Nil(t, res.Subfield)
		}
	})

	t.Run("returns ENOTFOUND for an unassigned code", func(t *testing.T) {
		t.Parallel()

		_, err := marc.Lookup(verboseDataset(), "999", "")

		require.Error(t, err)
		assert.Equal(t, marc.ENOTFOUND, marc.ErrorCode(err))
		assert.Equal(t, "no such field: 999", marc.ErrorMessage(err))
	})
}

func TestLookup_Subfield(t *testing.T) {
	t.Parallel()

	t.Run("pairs the subfield with its parent field", func(t *testing.T) {
		t.Parallel()

		ds := verboseDataset()

		res, err := marc.Lookup(ds, "245", "a")

		require.NoError(t, err)
		assert.Same(t, ds.Fields["245"], res.Field)
		assert.Same(t, ds.Fields["245"].Subfields["a"], res.Subfield)
	})

	t.Run("matches subfields case-insensitively", func(t *testing.T) {
		t.Parallel()

		ds := verboseDataset()

		upper, err := marc.Lookup(ds, "245", "A")
		require.NoError(t, err)

		lower, err := marc.Lookup(ds, "245", "a")
		require.NoError(t, err)

		assert.Equal(t, lower, upper)
	})

	t.Run("returns ENOTFOUND for a missing subfield", func(t *testing.T) {
		t.Parallel()

		_, err := marc.Lookup(verboseDataset(), "245", "x")

		require.Error(t, err)
		assert.Equal(t, marc.ENOTFOUND, marc.ErrorCode(err))
		assert.Equal(t, "no such subfield: 245$x", marc.ErrorMessage(err))
	})
}
