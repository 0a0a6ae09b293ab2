package spell

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	rege "regexp"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/regexp"
)

// Autocompleter answers prefix queries against a trained vocabulary through a
// finite state transducer. Rebuild it after further training, the FST is a
// point-in-time view of the vocabulary.
type Autocompleter struct {
	vocabFST *vellum.FST
}

func NewAutocompleter(vocabulary map[string]struct{}) (*Autocompleter, error) {
	terms := make([]string, 0, len(vocabulary))
	for term := range vocabulary {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("error when initializing fst builder: %w", err)
	}
	for _, term := range terms {
		if err := builder.Insert([]byte(term), 0); err != nil {
			return nil, fmt.Errorf("error when inserting term %q into fst: %w", term, err)
		}
	}
	if err := builder.Close(); err != nil {
		return nil, fmt.Errorf("error when closing fst builder: %w", err)
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error when loading fst: %w", err)
	}
	return &Autocompleter{vocabFST: fst}, nil
}

// Suggest returns up to limit vocabulary words starting with prefix, in
// lexicographic order. limit <= 0 means no bound.
func (a *Autocompleter) Suggest(prefix string, limit int) ([]string, error) {
	prefixReg := fmt.Sprintf(`%s.*`, rege.QuoteMeta(prefix))
	automaton, err := regexp.New(prefixReg)
	if err != nil {
		return nil, fmt.Errorf("error when initializing regex automaton: %w", err)
	}

	matches := []string{}
	it, err := a.vocabFST.Search(automaton, nil, nil)
	for err == nil {
		key, _ := it.Current()
		matches = append(matches, string(key))
		if limit > 0 && len(matches) >= limit {
			return matches, nil
		}
		err = it.Next()
	}
	if !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, fmt.Errorf("error when executing regex automaton: %w", err)
	}
	return matches, nil
}
