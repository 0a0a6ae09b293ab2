package spell

// The error model estimates P(typo | intended word) from confusion-matrix
// weights normalized by the language model's character statistics. Alignment
// uses a first-difference heuristic, not optimal edit alignment: the first
// index consistent with the operation wins. Correction behavior depends on
// that tie-break, keep it.

const (
	// startMarker stands in for the left neighbor of an edit at index 0.
	startMarker = "#"

	editProbFloor = 1e-8
)

// ErrorTables holds the four confusion matrices, each keyed by a
// 2-character string. Supplied fully built; the corrector never mutates them.
type ErrorTables struct {
	Insertion     map[string]float64 `json:"insertion" msgpack:"insertion"`
	Deletion      map[string]float64 `json:"deletion" msgpack:"deletion"`
	Substitution  map[string]float64 `json:"substitution" msgpack:"substitution"`
	Transposition map[string]float64 `json:"transposition" msgpack:"transposition"`
}

func NewErrorTables() *ErrorTables {
	return &ErrorTables{
		Insertion:     make(map[string]float64),
		Deletion:      make(map[string]float64),
		Substitution:  make(map[string]float64),
		Transposition: make(map[string]float64),
	}
}

func (t *ErrorTables) Empty() bool {
	if t == nil {
		return true
	}
	return len(t.Insertion) == 0 && len(t.Deletion) == 0 &&
		len(t.Substitution) == 0 && len(t.Transposition) == 0
}

// deletionPair locates the first index where dropping a character from
// modified yields original and returns the (left neighbor, dropped char) key.
func deletionPair(modified, original string) (string, bool) {
	if len(modified) != len(original)+1 {
		return "", false
	}
	for i := 0; i < len(modified); i++ {
		if modified[:i]+modified[i+1:] == original {
			if i == 0 {
				return startMarker + string(modified[i]), true
			}
			return string(modified[i-1]) + string(modified[i]), true
		}
	}
	return "", false
}

// insertionPair locates the first index where dropping a character from
// original yields modified.
func insertionPair(modified, original string) (string, bool) {
	if len(modified) != len(original)-1 {
		return "", false
	}
	for i := 0; i < len(original); i++ {
		if original[:i]+original[i+1:] == modified {
			if i == 0 {
				return startMarker + string(original[i]), true
			}
			return string(original[i-1]) + string(original[i]), true
		}
	}
	return "", false
}

// substitutionPair returns the (original char, modified char) key at the
// first position where the equal-length words differ.
func substitutionPair(modified, original string) (string, bool) {
	if len(modified) != len(original) {
		return "", false
	}
	for i := 0; i < len(modified); i++ {
		if modified[i] != original[i] {
			return string(original[i]) + string(modified[i]), true
		}
	}
	return "", false
}

// transpositionPair returns the swapped adjacent pair of original at the
// first position where swapping it yields modified.
func transpositionPair(modified, original string) (string, bool) {
	if len(modified) != len(original) {
		return "", false
	}
	for i := 0; i+1 < len(original); i++ {
		if original[i] == modified[i+1] && original[i+1] == modified[i] &&
			original[:i]+original[i+2:] == modified[:i]+modified[i+2:] {
			return original[i : i+2], true
		}
	}
	return "", false
}

// deletionProb scores a typo that dropped one character of the candidate:
// modified is the (longer) candidate, original the typed word.
func (c *Corrector) deletionProb(modified, original string) float64 {
	pair, ok := deletionPair(modified, original)
	if !ok {
		return 0
	}
	freq := c.lm.CharPairCount(pair)
	if freq == 0 {
		return 0
	}
	return c.tables.Deletion[pair] / float64(freq)
}

// insertionProb scores a typo that inserted one extra character: modified is
// the (shorter) candidate, original the typed word.
func (c *Corrector) insertionProb(modified, original string) float64 {
	pair, ok := insertionPair(modified, original)
	if !ok {
		return 0
	}
	freq := c.lm.CharCount(pair[:1])
	if freq == 0 {
		return 0
	}
	return c.tables.Insertion[pair] / float64(freq)
}

func (c *Corrector) substitutionProb(modified, original string) float64 {
	pair, ok := substitutionPair(modified, original)
	if !ok {
		return 0
	}
	freq := c.lm.CharCount(pair[1:])
	if freq == 0 {
		return 0
	}
	return c.tables.Substitution[pair] / float64(freq)
}

// transpositionProb falls back to the floor, not zero, when no transposable
// pair exists. The asymmetry with the other operations is intentional.
func (c *Corrector) transpositionProb(modified, original string) float64 {
	pair, ok := transpositionPair(modified, original)
	if !ok {
		return editProbFloor
	}
	freq := c.lm.CharPairCount(pair)
	if freq == 0 {
		return 0
	}
	return c.tables.Transposition[pair] / float64(freq)
}

// directEditProb estimates the probability of a single edit turning original
// into candidate. Without error tables, or when nothing changed, it collapses
// to the keep-as-is prior alpha.
func (c *Corrector) directEditProb(candidate, original string, alpha float64) float64 {
	if c.tables.Empty() || candidate == original {
		return alpha
	}

	best := editProbFloor
	switch {
	case len(candidate) == len(original)-1:
		if p := c.insertionProb(candidate, original); p > best {
			best = p
		}
	case len(candidate) == len(original)+1:
		if p := c.deletionProb(candidate, original); p > best {
			best = p
		}
	case len(candidate) == len(original):
		if p := c.substitutionProb(candidate, original); p > best {
			best = p
		}
		if p := c.transpositionProb(candidate, original); p > best {
			best = p
		}
	}
	return best
}

// twoEditProb additionally routes through every edits1 intermediate whose own
// edits1 set reaches candidate, taking the best product of the two hops.
func (c *Corrector) twoEditProb(candidate, original string, alpha float64) float64 {
	best := c.directEditProb(candidate, original, alpha)
	for intermediate := range Edits1(original) {
		if _, ok := Edits1(intermediate)[candidate]; !ok {
			continue
		}
		p := c.directEditProb(intermediate, original, alpha) *
			c.directEditProb(candidate, intermediate, alpha)
		if p > best {
			best = p
		}
	}
	return best
}

func (c *Corrector) errorProb(candidate, original string, alpha float64) float64 {
	direct := c.directEditProb(candidate, original, alpha)
	twoEdit := c.twoEditProb(candidate, original, alpha)
	if twoEdit > direct {
		return twoEdit
	}
	return direct
}
