package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutocompleter(t *testing.T) {
	vocabulary := map[string]struct{}{
		"cat": {}, "car": {}, "care": {}, "dog": {},
	}
	ac, err := NewAutocompleter(vocabulary)
	require.NoError(t, err)

	t.Run("prefix matches in lexicographic order", func(t *testing.T) {
		got, err := ac.Suggest("ca", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"car", "care", "cat"}, got)
	})

	t.Run("limit bounds results", func(t *testing.T) {
		got, err := ac.Suggest("ca", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"car", "care"}, got)
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		got, err := ac.Suggest("zebra", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty prefix returns the whole vocabulary", func(t *testing.T) {
		got, err := ac.Suggest("", 0)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})
}
