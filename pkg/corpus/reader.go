// Package corpus reads training text. Files are memory-mapped so multi-
// hundred-megabyte corpora do not get double-buffered through the heap.
package corpus

import (
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Load returns the whole corpus file as a string.
func Load(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error when opening corpus %s: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("error when getting corpus stat %s: %w", path, err)
	}
	if stat.Size() == 0 {
		return "", nil
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("error when mapping corpus %s: %w", path, err)
	}
	defer mapped.Unmap()

	return string(mapped), nil
}

// LoadLines returns the corpus split into non-empty lines, each line one
// training document.
func LoadLines(path string) ([]string, error) {
	text, err := Load(path)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, 128)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
