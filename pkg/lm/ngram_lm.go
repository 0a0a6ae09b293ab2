// Package lm implements a Markov n-gram language model over word or character
// tokens. It supports incremental training, log-likelihood evaluation with
// Laplace smoothing, and stochastic text generation.
package lm

import (
	"math"
	"math/rand"
	"strings"

	"github.com/dlevanto/contextspell/pkg/textnorm"
)

const (
	StartToken = "<s>"
	EndToken   = "</s>"

	// probFloor keeps the log-likelihood sum finite when a probability
	// collapses to zero.
	probFloor = 1e-8
)

type NGramLanguageModel struct {
	order    int
	charMode bool

	ngramCounts map[string]int
	contextNext map[string]*FreqTable
	contextKeys []string

	tokenFreq   map[string]int
	vocabulary  map[string]struct{}
	totalTokens int

	// adjacent-character statistics over the raw normalized text, consumed
	// by the noisy-channel error model. Independent of the n-gram order.
	charCounts     map[string]int
	charPairCounts map[string]int

	rng *rand.Rand
}

type Option func(*NGramLanguageModel)

// CharMode makes the model operate on character tokens instead of
// whitespace-delimited words.
func CharMode() Option {
	return func(lm *NGramLanguageModel) { lm.charMode = true }
}

// WithRandSource injects the random source used by Generate, so tests can fix
// a seed and assert exact output.
func WithRandSource(rng *rand.Rand) Option {
	return func(lm *NGramLanguageModel) { lm.rng = rng }
}

func NewNGramLanguageModel(order int, opts ...Option) *NGramLanguageModel {
	lm := &NGramLanguageModel{
		order:          order,
		ngramCounts:    make(map[string]int),
		contextNext:    make(map[string]*FreqTable),
		tokenFreq:      make(map[string]int),
		vocabulary:     make(map[string]struct{}),
		charCounts:     make(map[string]int),
		charPairCounts: make(map[string]int),
	}
	for _, opt := range opts {
		opt(lm)
	}
	if lm.rng == nil {
		lm.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return lm
}

func (lm *NGramLanguageModel) WindowSize() int {
	return lm.order
}

func (lm *NGramLanguageModel) IsCharMode() bool {
	return lm.charMode
}

func (lm *NGramLanguageModel) Vocabulary() map[string]struct{} {
	return lm.vocabulary
}

func (lm *NGramLanguageModel) InVocabulary(token string) bool {
	_, ok := lm.vocabulary[token]
	return ok
}

func (lm *NGramLanguageModel) TokenFrequency(token string) int {
	return lm.tokenFreq[token]
}

func (lm *NGramLanguageModel) TotalTokens() int {
	return lm.totalTokens
}

func (lm *NGramLanguageModel) NgramCount(ngram []string) int {
	return lm.ngramCounts[joinKey(ngram)]
}

// ContextTable returns the next-token frequency table recorded after the
// given context, nil if the context was never observed.
func (lm *NGramLanguageModel) ContextTable(context []string) *FreqTable {
	return lm.contextNext[joinKey(context)]
}

// CharCount returns how often the single character c occurred in the
// normalized training text.
func (lm *NGramLanguageModel) CharCount(c string) int {
	return lm.charCounts[c]
}

// CharPairCount returns how often the adjacent character pair occurred in the
// normalized training text.
func (lm *NGramLanguageModel) CharPairCount(pair string) int {
	return lm.charPairCounts[pair]
}

func (lm *NGramLanguageModel) tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	if lm.charMode {
		runes := []rune(normalized)
		tokens := make([]string, len(runes))
		for i, r := range runes {
			tokens[i] = string(r)
		}
		return tokens
	}
	return strings.Fields(normalized)
}

func (lm *NGramLanguageModel) join(tokens []string) string {
	if lm.charMode {
		return strings.Join(tokens, "")
	}
	return strings.Join(tokens, " ")
}

// pad surrounds tokens with order-1 leading start sentinels and one trailing
// end sentinel.
func (lm *NGramLanguageModel) pad(tokens []string) []string {
	padded := make([]string, 0, lm.order-1+len(tokens)+1)
	for i := 0; i < lm.order-1; i++ {
		padded = append(padded, StartToken)
	}
	padded = append(padded, tokens...)
	return append(padded, EndToken)
}

// Build trains the model on text, accumulating statistics on top of any
// earlier Build calls. Each call pads its own token sequence with fresh
// sentinels.
func (lm *NGramLanguageModel) Build(text string) {
	normalized := textnorm.Normalize(text)
	tokens := lm.tokenize(normalized)

	runes := []rune(normalized)
	for i := 0; i+1 < len(runes); i++ {
		lm.charCounts[string(runes[i])]++
		lm.charPairCounts[string(runes[i:i+2])]++
	}
	if len(runes) > 0 {
		lm.charCounts[string(runes[len(runes)-1])]++
	}

	for _, token := range tokens {
		lm.tokenFreq[token]++
		lm.vocabulary[token] = struct{}{}
	}
	lm.totalTokens += len(tokens)

	padded := lm.pad(tokens)
	for i := lm.order - 1; i < len(padded); i++ {
		gram := padded[i-lm.order+1 : i+1]
		lm.ngramCounts[joinKey(gram)]++

		contextKey := joinKey(gram[:len(gram)-1])
		table, ok := lm.contextNext[contextKey]
		if !ok {
			table = NewFreqTable()
			lm.contextNext[contextKey] = table
			lm.contextKeys = append(lm.contextKeys, contextKey)
		}
		table.Add(padded[i], 1)
	}
}

// Evaluate returns the natural-log likelihood of text under the model, -Inf
// if the text normalizes to nothing.
//
// The smoothing decision is made once for the whole input: if any token is
// out of vocabulary, every n-gram of this call is scored with the Laplace
// estimate; otherwise every n-gram uses the raw relative frequency. This
// text-level (rather than per-n-gram) switch is intentional.
func (lm *NGramLanguageModel) Evaluate(text string) float64 {
	tokens := lm.tokenize(textnorm.Normalize(text))
	if len(tokens) == 0 {
		return math.Inf(-1)
	}

	smooth := false
	for _, token := range tokens {
		if lm.tokenFreq[token] == 0 {
			smooth = true
			break
		}
	}

	padded := lm.pad(tokens)
	logProb := 0.0
	for i := 0; i+lm.order <= len(padded); i++ {
		gram := padded[i : i+lm.order]

		var prob float64
		if smooth {
			prob = lm.Smooth(gram)
		} else {
			table := lm.contextNext[joinKey(gram[:lm.order-1])]
			if table != nil && table.Total() > 0 {
				prob = float64(table.Get(gram[lm.order-1])) / float64(table.Total())
			}
		}

		if prob > 0 {
			logProb += math.Log(prob)
		} else {
			logProb += math.Log(probFloor)
		}
	}
	return logProb
}

// Smooth returns the Laplace estimate (count+1)/(contextTotal+|V|) for the
// given n-gram.
func (lm *NGramLanguageModel) Smooth(ngram []string) float64 {
	contextTotal := 0
	if table, ok := lm.contextNext[joinKey(ngram[:len(ngram)-1])]; ok {
		contextTotal = table.Total()
	}
	count := lm.ngramCounts[joinKey(ngram)]
	return float64(count+1) / float64(contextTotal+len(lm.vocabulary))
}

func joinKey(tokens []string) string {
	return strings.Join(tokens, " ")
}

func splitKey(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, " ")
}
