package lm

import "github.com/dlevanto/contextspell/pkg/textnorm"

// Generate produces up to length tokens starting from a context sampled
// uniformly from the observed contexts. Generation stops early when a context
// has no recorded continuation. Sentinel tokens are stripped from the result.
func (lm *NGramLanguageModel) Generate(length int) string {
	if len(lm.contextKeys) == 0 {
		return ""
	}
	seed := splitKey(lm.contextKeys[lm.rng.Intn(len(lm.contextKeys))])
	return lm.generateFrom(seed, length)
}

// GenerateFrom seeds generation with the given context. If the normalized
// context already holds length tokens or more, its first length tokens are
// returned verbatim.
func (lm *NGramLanguageModel) GenerateFrom(context string, length int) string {
	seed := lm.tokenize(textnorm.Normalize(context))
	if len(seed) >= length {
		return lm.join(seed[:length])
	}
	return lm.generateFrom(seed, length)
}

func (lm *NGramLanguageModel) generateFrom(seed []string, length int) string {
	generated := append([]string(nil), seed...)

	for len(generated) < length {
		start := len(generated) - (lm.order - 1)
		if start < 0 {
			start = 0
		}
		table, ok := lm.contextNext[joinKey(generated[start:])]
		if !ok || table.Total() == 0 {
			break
		}
		generated = append(generated, table.Sample(lm.rng))
	}

	kept := make([]string, 0, len(generated))
	for _, token := range generated {
		if token != StartToken && token != EndToken {
			kept = append(kept, token)
		}
	}
	return lm.join(kept)
}
