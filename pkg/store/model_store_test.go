package store

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/dlevanto/contextspell/pkg/spell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *ModelStore {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "model.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewModelStore(db)
	require.NoError(t, err)
	return store
}

func TestModelStore(t *testing.T) {
	t.Run("model round trip", func(t *testing.T) {
		store := newTestStore(t)

		model := lm.NewNGramLanguageModel(2, lm.WithRandSource(rand.New(rand.NewSource(4))))
		model.Build("the cat sat on the mat")
		require.NoError(t, store.SaveModel(model.Snapshot()))

		snap, err := store.LoadModel()
		require.NoError(t, err)
		restored := lm.FromSnapshot(snap)

		assert.Equal(t, 2, restored.WindowSize())
		assert.True(t, restored.InVocabulary("cat"))
		assert.Equal(t, model.Evaluate("the cat sat"), restored.Evaluate("the cat sat"))
		assert.Equal(t, model.CharPairCount("th"), restored.CharPairCount("th"))
	})

	t.Run("error tables round trip", func(t *testing.T) {
		store := newTestStore(t)

		tables := spell.NewErrorTables()
		tables.Substitution["ae"] = 5
		tables.Deletion["#t"] = 2
		require.NoError(t, store.SaveErrorTables(tables))

		loaded, err := store.LoadErrorTables()
		require.NoError(t, err)
		assert.Equal(t, 5.0, loaded.Substitution["ae"])
		assert.Equal(t, 2.0, loaded.Deletion["#t"])
	})

	t.Run("missing snapshot", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.LoadModel()
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
		_, err = store.LoadErrorTables()
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("save overwrites previous snapshot", func(t *testing.T) {
		store := newTestStore(t)

		first := lm.NewNGramLanguageModel(2)
		first.Build("the cat")
		require.NoError(t, store.SaveModel(first.Snapshot()))

		second := lm.NewNGramLanguageModel(3)
		second.Build("a dog barked")
		require.NoError(t, store.SaveModel(second.Snapshot()))

		snap, err := store.LoadModel()
		require.NoError(t, err)
		assert.Equal(t, 3, snap.Order)
	})
}
