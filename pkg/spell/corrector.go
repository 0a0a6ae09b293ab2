package spell

import (
	"math"
	"sort"
	"strings"

	"github.com/dlevanto/contextspell/pkg"
	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/dlevanto/contextspell/pkg/textnorm"
)

// scoreScale keeps composite candidate scores away from underflow collapse
// when comparing via max.
const scoreScale = 1e-8

// Corrector selects corrections in the noisy-channel framework: candidate
// language-model probability times the error-model probability of the typo.
// It holds a reference to a language model attached via SetLanguageModel;
// swapping the model at runtime is supported.
type Corrector struct {
	lm     *lm.NGramLanguageModel
	tables *ErrorTables

	// extra vocabulary merged into known-word checks, e.g. from a custom
	// dictionary.
	extra map[string]struct{}
}

func NewCorrector() *Corrector {
	return &Corrector{
		extra: make(map[string]struct{}),
	}
}

// SetLanguageModel attaches (or replaces) the language model in use.
func (c *Corrector) SetLanguageModel(model *lm.NGramLanguageModel) {
	c.lm = model
}

// SetErrorTables attaches (or replaces) the confusion-matrix tables.
func (c *Corrector) SetErrorTables(tables *ErrorTables) {
	c.tables = tables
}

// AddCustomWords extends the known-word set beyond the language model's
// vocabulary.
func (c *Corrector) AddCustomWords(words ...string) {
	for _, word := range words {
		c.extra[word] = struct{}{}
	}
}

func (c *Corrector) known(word string) bool {
	if c.lm != nil && c.lm.InVocabulary(word) {
		return true
	}
	_, ok := c.extra[word]
	return ok
}

// EvaluateText delegates to the attached language model.
func (c *Corrector) EvaluateText(text string) (float64, error) {
	if c.lm == nil {
		return 0, pkg.ErrNoLanguageModel
	}
	return c.lm.Evaluate(text), nil
}

// candidateScore combines the language-model probability of the candidate in
// context with the error-model probability of the observed word.
func (c *Corrector) candidateScore(candidate, original, context string, alpha float64) float64 {
	logLikelihood := c.lm.Evaluate(context + " " + candidate)
	return scoreScale * math.Exp(logLikelihood) * c.errorProb(candidate, original, alpha)
}

// Correction returns the most probable correction for word given its
// preceding context. Alpha is the prior probability of keeping word as is.
func (c *Corrector) Correction(word, context string, alpha float64) (string, error) {
	if c.lm == nil {
		return "", pkg.ErrNoLanguageModel
	}
	candidates := sortedWords(c.Candidates(word))
	if len(candidates) == 0 {
		return word, nil
	}

	best := candidates[0]
	bestScore := math.Inf(-1)
	for _, candidate := range candidates {
		if score := c.candidateScore(candidate, word, context, alpha); score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, nil
}

// SpellCheck returns the most probable fix for text. It is a layered decision
// procedure with three terminal paths:
//
//  1. fewer tokens than the model order: correct each token in isolation;
//  2. an out-of-vocabulary token whose correction differs: substitute it and
//     return immediately (one replacement per call);
//  3. otherwise: whole-sentence hypothesis search over single-token
//     replacements, weighting the unchanged sentence by alpha and every
//     altered one by 1-alpha.
func (c *Corrector) SpellCheck(text string, alpha float64) (string, error) {
	if c.lm == nil {
		return "", pkg.ErrNoLanguageModel
	}

	normalized := textnorm.Normalize(text)
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return normalized, nil
	}

	order := c.lm.WindowSize()
	if len(tokens) < order {
		corrected := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if c.known(token) {
				corrected = append(corrected, token)
				continue
			}
			fixed, err := c.Correction(token, "", alpha)
			if err != nil {
				return "", err
			}
			corrected = append(corrected, fixed)
		}
		return strings.Join(corrected, " "), nil
	}

	for i, token := range tokens {
		if c.known(token) {
			continue
		}
		start := i - order + 1
		if start < 0 {
			start = 0
		}
		context := strings.Join(tokens[start:i], " ")
		corrected, err := c.Correction(token, context, alpha)
		if err != nil {
			return "", err
		}
		if corrected != token {
			fixed := append([]string(nil), tokens...)
			fixed[i] = corrected
			return strings.Join(fixed, " "), nil
		}
	}

	return c.bestSentence(tokens, alpha), nil
}

// bestSentence scores the original sentence against every single-token
// candidate replacement and returns the winner. Ties keep the earliest
// hypothesis, the original sentence first among them.
func (c *Corrector) bestSentence(tokens []string, alpha float64) string {
	original := strings.Join(tokens, " ")
	hypotheses := []string{original}

	for i, token := range tokens {
		for _, candidate := range sortedWords(c.Candidates(token)) {
			if candidate == token {
				continue
			}
			altered := append([]string(nil), tokens...)
			altered[i] = candidate
			hypotheses = append(hypotheses, strings.Join(altered, " "))
		}
	}

	best := original
	bestScore := math.Inf(-1)
	for _, hypothesis := range hypotheses {
		score := math.Exp(c.lm.Evaluate(hypothesis))
		if hypothesis == original {
			score *= alpha
		} else {
			score *= 1 - alpha
		}
		if score > bestScore {
			bestScore = score
			best = hypothesis
		}
	}
	return best
}

func sortedWords(set map[string]struct{}) []string {
	words := make([]string, 0, len(set))
	for word := range set {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
