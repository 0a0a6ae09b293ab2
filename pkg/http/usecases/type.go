package usecases

import "context"

// Speller is the noisy-channel corrector consumed by the HTTP service.
type Speller interface {
	SpellCheck(text string, alpha float64) (string, error)
	Correction(word, context string, alpha float64) (string, error)
	EvaluateText(text string) (float64, error)
	AddCustomWords(words ...string)
}

// Generator produces text from a trained language model.
type Generator interface {
	Generate(length int) string
	GenerateFrom(context string, length int) string
}

// Completer suggests vocabulary words for a prefix.
type Completer interface {
	Suggest(prefix string, limit int) ([]string, error)
}

// WordStore persists user-supplied dictionary words across restarts.
type WordStore interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}
