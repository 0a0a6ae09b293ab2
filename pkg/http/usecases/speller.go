package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/dlevanto/contextspell/pkg"

	"go.uber.org/zap"
)

type SpellerService struct {
	log       *zap.Logger
	speller   Speller
	generator Generator
	completer Completer
	wordStore WordStore
	alpha     float64
}

func New(log *zap.Logger, speller Speller, generator Generator, completer Completer,
	wordStore WordStore, alpha float64) *SpellerService {
	return &SpellerService{
		log:       log,
		speller:   speller,
		generator: generator,
		completer: completer,
		wordStore: wordStore,
		alpha:     alpha,
	}
}

func (s *SpellerService) Correct(text string, alpha float64) (string, error) {
	if alpha <= 0 {
		alpha = s.alpha
	}
	return s.speller.SpellCheck(text, alpha)
}

func (s *SpellerService) CorrectWord(word, context string, alpha float64) (string, error) {
	if alpha <= 0 {
		alpha = s.alpha
	}
	return s.speller.Correction(word, context, alpha)
}

func (s *SpellerService) Evaluate(text string) (float64, error) {
	return s.speller.EvaluateText(text)
}

func (s *SpellerService) Generate(context string, length int) (string, error) {
	if s.generator == nil {
		return "", pkg.ErrNoLanguageModel
	}
	if strings.TrimSpace(context) == "" {
		return s.generator.Generate(length), nil
	}
	return s.generator.GenerateFrom(context, length), nil
}

func (s *SpellerService) Autocomplete(prefix string, limit int) ([]string, error) {
	if s.completer == nil {
		return nil, pkg.ErrNoLanguageModel
	}
	return s.completer.Suggest(prefix, limit)
}

func (s *SpellerService) AddWord(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return pkg.WrapErrorf(fmt.Errorf("empty word"), pkg.ErrBadParamInput, "AddWord")
	}
	if s.wordStore != nil {
		if err := s.wordStore.Add(ctx, word); err != nil {
			s.log.Error("failed to persist custom word", zap.String("word", word), zap.Error(err))
			return err
		}
	}
	s.speller.AddCustomWords(word)
	return nil
}
