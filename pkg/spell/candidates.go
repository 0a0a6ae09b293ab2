// Package spell implements a noisy-channel spelling corrector on top of an
// n-gram language model: edit-distance candidate generation, an error model
// calibrated from confusion matrices, and whole-sentence correction.
package spell

import "iter"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Edits1 returns every word one edit operation away: deletions,
// transpositions of adjacent characters, substitutions and insertions over
// every split point.
func Edits1(word string) map[string]struct{} {
	edits := make(map[string]struct{})
	for i := 0; i <= len(word); i++ {
		left, right := word[:i], word[i:]
		if len(right) > 0 {
			edits[left+right[1:]] = struct{}{}
		}
		if len(right) > 1 {
			edits[left+string(right[1])+string(right[0])+right[2:]] = struct{}{}
		}
		for j := 0; j < len(alphabet); j++ {
			c := string(alphabet[j])
			if len(right) > 0 {
				edits[left+c+right[1:]] = struct{}{}
			}
			edits[left+c+right] = struct{}{}
		}
	}
	return edits
}

// Edits2 yields every word two edit operations away. The sequence is lazy and
// restartable; it may repeat words and is never materialized here.
func Edits2(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for e1 := range Edits1(word) {
			for e2 := range Edits1(e1) {
				if !yield(e2) {
					return
				}
			}
		}
	}
}

// Known filters words down to those the corrector's vocabulary contains.
func (c *Corrector) Known(words iter.Seq[string]) map[string]struct{} {
	known := make(map[string]struct{})
	for word := range words {
		if c.known(word) {
			known[word] = struct{}{}
		}
	}
	return known
}

// Candidates returns correction candidates for word with a cascading
// fallback: the word itself if known, else known edit-distance-1 variants,
// else known edit-distance-2 variants, else the word unchanged.
func (c *Corrector) Candidates(word string) map[string]struct{} {
	if c.known(word) {
		return map[string]struct{}{word: {}}
	}
	if found := c.Known(setSeq(Edits1(word))); len(found) > 0 {
		return found
	}
	if found := c.Known(Edits2(word)); len(found) > 0 {
		return found
	}
	return map[string]struct{}{word: {}}
}

func setSeq(set map[string]struct{}) iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range set {
			if !yield(word) {
				return
			}
		}
	}
}
