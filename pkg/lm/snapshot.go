package lm

// Snapshot is the serializable form of a trained model. Context tables keep
// their token insertion order so a restored model samples identically to the
// one that was saved.
type Snapshot struct {
	Order    int  `msgpack:"order"`
	CharMode bool `msgpack:"char_mode"`

	NgramCounts map[string]int          `msgpack:"ngram_counts"`
	ContextNext map[string][]TokenCount `msgpack:"context_next"`
	ContextKeys []string                `msgpack:"context_keys"`

	TokenFreq   map[string]int `msgpack:"token_freq"`
	Vocabulary  []string       `msgpack:"vocabulary"`
	TotalTokens int            `msgpack:"total_tokens"`

	CharCounts     map[string]int `msgpack:"char_counts"`
	CharPairCounts map[string]int `msgpack:"char_pair_counts"`
}

type TokenCount struct {
	Token string `msgpack:"token"`
	Count int    `msgpack:"count"`
}

func (lm *NGramLanguageModel) Snapshot() *Snapshot {
	snap := &Snapshot{
		Order:          lm.order,
		CharMode:       lm.charMode,
		NgramCounts:    lm.ngramCounts,
		ContextNext:    make(map[string][]TokenCount, len(lm.contextNext)),
		ContextKeys:    lm.contextKeys,
		TokenFreq:      lm.tokenFreq,
		Vocabulary:     make([]string, 0, len(lm.vocabulary)),
		TotalTokens:    lm.totalTokens,
		CharCounts:     lm.charCounts,
		CharPairCounts: lm.charPairCounts,
	}
	for contextKey, table := range lm.contextNext {
		pairs := make([]TokenCount, 0, table.Len())
		for _, token := range table.Keys() {
			pairs = append(pairs, TokenCount{Token: token, Count: table.Get(token)})
		}
		snap.ContextNext[contextKey] = pairs
	}
	for token := range lm.vocabulary {
		snap.Vocabulary = append(snap.Vocabulary, token)
	}
	return snap
}

// FromSnapshot rebuilds a model from its serialized form.
func FromSnapshot(snap *Snapshot, opts ...Option) *NGramLanguageModel {
	restoreOpts := opts
	if snap.CharMode {
		restoreOpts = append([]Option{CharMode()}, opts...)
	}
	lm := NewNGramLanguageModel(snap.Order, restoreOpts...)

	lm.ngramCounts = snap.NgramCounts
	lm.contextKeys = snap.ContextKeys
	lm.tokenFreq = snap.TokenFreq
	lm.totalTokens = snap.TotalTokens
	lm.charCounts = snap.CharCounts
	lm.charPairCounts = snap.CharPairCounts

	for contextKey, pairs := range snap.ContextNext {
		table := NewFreqTable()
		for _, pair := range pairs {
			table.Add(pair.Token, pair.Count)
		}
		lm.contextNext[contextKey] = table
	}
	for _, token := range snap.Vocabulary {
		lm.vocabulary[token] = struct{}{}
	}
	return lm
}
