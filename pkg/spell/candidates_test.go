package spell

import (
	"testing"

	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/stretchr/testify/assert"
)

func newTestCorrector(t *testing.T, corpus string, order int) *Corrector {
	t.Helper()
	model := lm.NewNGramLanguageModel(order)
	model.Build(corpus)
	corrector := NewCorrector()
	corrector.SetLanguageModel(model)
	return corrector
}

func TestEdits1(t *testing.T) {
	t.Run("contains all four operation families", func(t *testing.T) {
		edits := Edits1("word")

		assert.Contains(t, edits, "ord")   // delete
		assert.Contains(t, edits, "wrod")  // transpose
		assert.Contains(t, edits, "ward")  // substitute
		assert.Contains(t, edits, "sword") // insert
		assert.Contains(t, edits, "words") // insert at end
	})

	t.Run("unique variant count for distinct letters", func(t *testing.T) {
		// 4 deletes + 3 transposes + 101 substitutions (25 per position
		// plus the identity once) + 126 insertions after dedup
		assert.Len(t, Edits1("word"), 234)
	})

	t.Run("empty word only grows by insertion", func(t *testing.T) {
		edits := Edits1("")
		assert.Len(t, edits, 26)
		assert.Contains(t, edits, "a")
	})
}

func TestEdits2(t *testing.T) {
	t.Run("reaches distance two variants", func(t *testing.T) {
		found := false
		for variant := range Edits2("cat") {
			if variant == "coats" { // insert o, insert s
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := Edits2("ab")
		first, second := 0, 0
		for range seq {
			first++
			if first >= 50 {
				break
			}
		}
		for range seq {
			second++
			if second >= 50 {
				break
			}
		}
		assert.Equal(t, first, second)
	})
}

func TestCandidates(t *testing.T) {
	corrector := newTestCorrector(t, "the cat sat on the mat", 2)

	t.Run("known words return themselves", func(t *testing.T) {
		for _, word := range []string{"the", "cat", "sat", "on", "mat"} {
			assert.Equal(t, map[string]struct{}{word: {}}, corrector.Candidates(word))
		}
	})

	t.Run("distance one hit", func(t *testing.T) {
		got := corrector.Candidates("kat")
		assert.Contains(t, got, "cat")
		assert.NotContains(t, got, "kat")
	})

	t.Run("distance two reached only after distance one misses", func(t *testing.T) {
		// cvte -> cate -> cat: no single edit reaches the vocabulary
		got := corrector.Candidates("cvte")
		assert.Contains(t, got, "cat")
	})

	t.Run("no neighbor within two edits falls back to the word", func(t *testing.T) {
		got := corrector.Candidates("zzzzzzzz")
		assert.Equal(t, map[string]struct{}{"zzzzzzzz": {}}, got)
	})
}

func TestKnown(t *testing.T) {
	corrector := newTestCorrector(t, "the cat sat", 2)

	words := map[string]struct{}{"the": {}, "dog": {}, "sat": {}}
	got := corrector.Known(setSeq(words))
	assert.Equal(t, map[string]struct{}{"the": {}, "sat": {}}, got)
}

func TestCustomWords(t *testing.T) {
	corrector := newTestCorrector(t, "the cat sat", 2)
	corrector.AddCustomWords("grok")

	assert.Equal(t, map[string]struct{}{"grok": {}}, corrector.Candidates("grok"))
}
