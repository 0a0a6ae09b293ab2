package usecases

import (
	"context"
	"testing"

	"github.com/dlevanto/contextspell/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSpeller struct {
	lastAlpha float64
	custom    []string
}

func (f *fakeSpeller) SpellCheck(text string, alpha float64) (string, error) {
	f.lastAlpha = alpha
	return text, nil
}

func (f *fakeSpeller) Correction(word, context string, alpha float64) (string, error) {
	f.lastAlpha = alpha
	return word, nil
}

func (f *fakeSpeller) EvaluateText(text string) (float64, error) {
	return -1.5, nil
}

func (f *fakeSpeller) AddCustomWords(words ...string) {
	f.custom = append(f.custom, words...)
}

func TestSpellerService(t *testing.T) {
	log := zap.NewNop()

	t.Run("zero alpha falls back to the service default", func(t *testing.T) {
		speller := &fakeSpeller{}
		service := New(log, speller, nil, nil, nil, 0.95)

		_, err := service.Correct("some text", 0)
		require.NoError(t, err)
		assert.Equal(t, 0.95, speller.lastAlpha)

		_, err = service.CorrectWord("word", "", 0.5)
		require.NoError(t, err)
		assert.Equal(t, 0.5, speller.lastAlpha)
	})

	t.Run("generate without a model reports no language model", func(t *testing.T) {
		service := New(log, &fakeSpeller{}, nil, nil, nil, 0.95)

		_, err := service.Generate("", 10)
		assert.ErrorIs(t, err, pkg.ErrNoLanguageModel)
	})

	t.Run("add word normalizes and rejects empty input", func(t *testing.T) {
		speller := &fakeSpeller{}
		service := New(log, speller, nil, nil, nil, 0.95)

		err := service.AddWord(context.Background(), "  Kubectl ")
		require.NoError(t, err)
		assert.Equal(t, []string{"kubectl"}, speller.custom)

		err = service.AddWord(context.Background(), "   ")
		assert.Error(t, err)
	})
}
