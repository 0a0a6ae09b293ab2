package lm

import "math/rand"

// FreqTable is a frequency table with zero-default lookup. Keys keep their
// insertion order so that weighted sampling is deterministic for a fixed
// random source.
type FreqTable struct {
	counts map[string]int
	keys   []string
	total  int
}

func NewFreqTable() *FreqTable {
	return &FreqTable{
		counts: make(map[string]int),
	}
}

func (t *FreqTable) Add(token string, n int) {
	if _, ok := t.counts[token]; !ok {
		t.keys = append(t.keys, token)
	}
	t.counts[token] += n
	t.total += n
}

// Get returns the count for token, zero if unseen.
func (t *FreqTable) Get(token string) int {
	return t.counts[token]
}

func (t *FreqTable) Total() int {
	return t.total
}

func (t *FreqTable) Len() int {
	return len(t.counts)
}

// Keys returns the tokens in insertion order. The returned slice is shared,
// callers must not mutate it.
func (t *FreqTable) Keys() []string {
	return t.keys
}

// Sample draws one token with probability proportional to its count, using a
// cumulative walk over a uniform integer in [1, total].
func (t *FreqTable) Sample(rng *rand.Rand) string {
	if t.total == 0 {
		return ""
	}
	target := rng.Intn(t.total) + 1
	cumulative := 0
	for _, key := range t.keys {
		cumulative += t.counts[key]
		if cumulative >= target {
			return key
		}
	}
	return t.keys[len(t.keys)-1]
}
