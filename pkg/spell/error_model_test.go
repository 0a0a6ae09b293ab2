package spell

import (
	"testing"

	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/stretchr/testify/assert"
)

func TestPairLocators(t *testing.T) {
	t.Run("deletion pair", func(t *testing.T) {
		pair, ok := deletionPair("word", "ord")
		assert.True(t, ok)
		assert.Equal(t, "#w", pair)

		pair, ok = deletionPair("word", "wrd")
		assert.True(t, ok)
		assert.Equal(t, "wo", pair)

		_, ok = deletionPair("word", "word")
		assert.False(t, ok)
	})

	t.Run("insertion pair", func(t *testing.T) {
		pair, ok := insertionPair("word", "woard")
		assert.True(t, ok)
		assert.Equal(t, "oa", pair)

		pair, ok = insertionPair("ord", "word")
		assert.True(t, ok)
		assert.Equal(t, "#w", pair)
	})

	t.Run("substitution pair uses first difference", func(t *testing.T) {
		pair, ok := substitutionPair("the", "tha")
		assert.True(t, ok)
		assert.Equal(t, "ae", pair)

		// both positions differ, the first one wins
		pair, ok = substitutionPair("ab", "ba")
		assert.True(t, ok)
		assert.Equal(t, "ba", pair)
	})

	t.Run("transposition pair", func(t *testing.T) {
		pair, ok := transpositionPair("the", "hte")
		assert.True(t, ok)
		assert.Equal(t, "ht", pair)

		_, ok = transpositionPair("the", "tha")
		assert.False(t, ok)
	})
}

func TestDirectEditProb(t *testing.T) {
	model := lm.NewNGramLanguageModel(2)
	model.Build("the the the")

	corrector := NewCorrector()
	corrector.SetLanguageModel(model)

	t.Run("no tables collapses to alpha", func(t *testing.T) {
		assert.Equal(t, 0.4, corrector.directEditProb("the", "tha", 0.4))
	})

	t.Run("unchanged word collapses to alpha", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Substitution: map[string]float64{"ae": 0.6}})
		assert.Equal(t, 0.4, corrector.directEditProb("the", "the", 0.4))
	})

	t.Run("substitution normalized by char frequency", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Substitution: map[string]float64{"ae": 0.6}})
		// char 'e' occurs 3 times in the training text
		assert.InDelta(t, 0.6/3.0, corrector.directEditProb("the", "tha", 0.4), 1e-12)
	})

	t.Run("deletion normalized by char pair frequency", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Deletion: map[string]float64{"th": 0.9}})
		// typo "te" dropped the h of "the"; pair "th" occurs 3 times
		assert.InDelta(t, 0.9/3.0, corrector.directEditProb("the", "te", 0.4), 1e-12)
	})

	t.Run("insertion normalized by preceding char frequency", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Insertion: map[string]float64{"hx": 0.3}})
		// typo "thxe" inserted x after h
		assert.InDelta(t, 0.3/3.0, corrector.directEditProb("the", "thxe", 0.4), 1e-12)
	})

	t.Run("zero denominator recovers as floor", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Substitution: map[string]float64{"zq": 0.5}})
		// replacement char q never occurs in training text
		assert.Equal(t, editProbFloor, corrector.directEditProb("q", "z", 0.4))
	})

	t.Run("missing weight falls to floor", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Substitution: map[string]float64{"ae": 0.6}})
		assert.Equal(t, editProbFloor, corrector.directEditProb("the", "thx", 0.4))
	})

	t.Run("transposition uses floor when no pair found", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Transposition: map[string]float64{"th": 0.7}})
		got := corrector.transpositionProb("the", "tha")
		assert.Equal(t, editProbFloor, got)
	})

	t.Run("transposition normalized by char pair frequency", func(t *testing.T) {
		corrector.SetErrorTables(&ErrorTables{Transposition: map[string]float64{"ht": 0.7}})
		// typed "hte" for "the"; typed-word pair "ht" is absent from the
		// training text, so the denominator is zero
		assert.Equal(t, 0.0, corrector.transpositionProb("the", "hte"))

		corrector.SetErrorTables(&ErrorTables{Transposition: map[string]float64{"te": 0.7}})
		// typed "teh" for "the": swapped typed pair is "te"? first-match
		// scan finds the swap at index 1 with pair "eh"
		got := corrector.transpositionProb("the", "teh")
		assert.Equal(t, 0.0, got)
	})
}

func TestTwoEditProb(t *testing.T) {
	model := lm.NewNGramLanguageModel(2)
	model.Build("abc abc abc")

	corrector := NewCorrector()
	corrector.SetLanguageModel(model)
	corrector.SetErrorTables(&ErrorTables{
		Deletion: map[string]float64{"ab": 2.0, "bc": 1.5},
	})

	t.Run("never below the direct estimate", func(t *testing.T) {
		direct := corrector.directEditProb("ab", "a", 0.4)
		twoEdit := corrector.twoEditProb("ab", "a", 0.4)
		assert.GreaterOrEqual(t, twoEdit, direct)
	})

	t.Run("routes through an intermediate word", func(t *testing.T) {
		// typo "a" -> intermediate "ab" -> candidate "abc": two dropped
		// characters, each hop scored as a direct edit
		twoEdit := corrector.twoEditProb("abc", "a", 0.4)
		direct := corrector.directEditProb("abc", "a", 0.4)
		assert.Greater(t, twoEdit, direct)
		// (2.0 / 3) for dropping b after a, (1.5 / 3) for dropping c after b
		assert.InDelta(t, (2.0/3.0)*(1.5/3.0), twoEdit, 1e-12)
	})

	t.Run("error prob is the max of both", func(t *testing.T) {
		got := corrector.errorProb("abc", "a", 0.4)
		assert.Equal(t, corrector.twoEditProb("abc", "a", 0.4), got)
	})
}
