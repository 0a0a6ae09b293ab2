package spell

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// BuildErrorTables calibrates the four confusion matrices from a spelling
// errors corpus. Each line pairs a correct word with observed misspellings:
//
//	raining: rainning, raning
//	because: becouse, becasue
//
// Every misspelling is classified with the same first-difference pair
// locators the probability estimators use, so the learned keys line up with
// the lookups at correction time. Misspellings more than one operation away
// from the correct word are skipped.
func BuildErrorTables(r io.Reader) (*ErrorTables, error) {
	tables := NewErrorTables()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}

		correct := strings.ToLower(strings.TrimSpace(parts[0]))
		if correct == "" {
			continue
		}
		for _, typo := range strings.Split(parts[1], ",") {
			typo = strings.ToLower(strings.TrimSpace(typo))
			if typo == "" || typo == correct {
				continue
			}
			tables.record(typo, correct)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error when reading spelling errors corpus: %w", err)
	}
	return tables, nil
}

// BuildErrorTablesFromFile is BuildErrorTables over a file path.
func BuildErrorTablesFromFile(path string) (*ErrorTables, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error when opening file %s: %w", path, err)
	}
	defer file.Close()
	return BuildErrorTables(file)
}

// record classifies one (typo, correct) pair and bumps the matching table.
func (t *ErrorTables) record(typo, correct string) {
	switch {
	case len(correct) == len(typo)+1:
		// the typo dropped a character of the correct word
		if pair, ok := deletionPair(correct, typo); ok {
			t.Deletion[pair]++
		}
	case len(correct) == len(typo)-1:
		// the typo inserted an extra character
		if pair, ok := insertionPair(correct, typo); ok {
			t.Insertion[pair]++
		}
	case len(correct) == len(typo):
		if pair, ok := transpositionPair(correct, typo); ok {
			t.Transposition[pair]++
			return
		}
		if pair, ok := substitutionPair(correct, typo); ok {
			t.Substitution[pair]++
		}
	}
}

// LoadErrorTablesJSON reads externally supplied confusion matrices in their
// fixed four-table shape.
func LoadErrorTablesJSON(path string) (*ErrorTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error when reading error tables %s: %w", path, err)
	}
	tables := NewErrorTables()
	if err := json.Unmarshal(data, tables); err != nil {
		return nil, fmt.Errorf("error when unmarshalling error tables %s: %w", path, err)
	}
	return tables, nil
}
