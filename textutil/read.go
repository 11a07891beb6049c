package textutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines returns the trimmed non-empty lines of r, without duplicates, in their original order.
func ReadLines(r io.Reader) ([]string, error) {
	var (
		seen    = make(map[string]struct{})
		lines   []string
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, exists := seen[line]; !exists {
			seen[line] = struct{}{}

			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadLinesFromFile applies ReadLines to the file at path.
func ReadLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	return ReadLines(file)
}
