package spell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildErrorTables(t *testing.T) {
	t.Run("classifies all four operation kinds", func(t *testing.T) {
		corpus := strings.Join([]string{
			"raining: rainning, raning",
			"the: hte, tha",
		}, "\n")

		tables, err := BuildErrorTables(strings.NewReader(corpus))
		require.NoError(t, err)

		// "rainning" inserted an n after the first one
		assert.Equal(t, 1.0, tables.Insertion["in"])
		// "raning" dropped the first i
		assert.Equal(t, 1.0, tables.Deletion["ai"])
		// "hte" swapped the first two characters
		assert.Equal(t, 1.0, tables.Transposition["ht"])
		// "tha" typed a for e
		assert.Equal(t, 1.0, tables.Substitution["ae"])
	})

	t.Run("repeated errors accumulate weight", func(t *testing.T) {
		corpus := "the: tha\nthe: tha\nother: othir"
		tables, err := BuildErrorTables(strings.NewReader(corpus))
		require.NoError(t, err)

		assert.Equal(t, 2.0, tables.Substitution["ae"])
		assert.Equal(t, 1.0, tables.Substitution["ie"])
	})

	t.Run("skips malformed lines and distant typos", func(t *testing.T) {
		corpus := strings.Join([]string{
			"no colon here",
			"word: word",       // identical, no edit
			"word: completely", // more than one operation away
			"word: wrd, woord",
		}, "\n")

		tables, err := BuildErrorTables(strings.NewReader(corpus))
		require.NoError(t, err)

		assert.Equal(t, 1.0, tables.Deletion["wo"])
		assert.Equal(t, 1.0, tables.Insertion["wo"])
		assert.Empty(t, tables.Substitution)
		assert.Empty(t, tables.Transposition)
	})
}

func TestLoadErrorTablesJSON(t *testing.T) {
	t.Run("reads the fixed four table shape", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "confusion.json")
		payload := `{
			"insertion": {"ab": 2},
			"deletion": {"#a": 1},
			"substitution": {"ae": 5},
			"transposition": {"th": 3}
		}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		tables, err := LoadErrorTablesJSON(path)
		require.NoError(t, err)
		assert.Equal(t, 2.0, tables.Insertion["ab"])
		assert.Equal(t, 1.0, tables.Deletion["#a"])
		assert.Equal(t, 5.0, tables.Substitution["ae"])
		assert.Equal(t, 3.0, tables.Transposition["th"])
		assert.False(t, tables.Empty())
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadErrorTablesJSON("does-not-exist.json")
		assert.Error(t, err)
	})
}
