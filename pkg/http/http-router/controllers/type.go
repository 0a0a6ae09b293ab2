package controllers

import "context"

type SpellService interface {
	Correct(text string, alpha float64) (string, error)
	CorrectWord(word, context string, alpha float64) (string, error)
	Evaluate(text string) (float64, error)
	Generate(context string, length int) (string, error)
	Autocomplete(prefix string, limit int) ([]string, error)
	AddWord(ctx context.Context, word string) error
}
