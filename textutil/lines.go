package textutil

import (
	"errors"
	"fmt"
	"strings"
)

// MatchMode selects how FindFirstLine compares a line with the keyword.
type MatchMode uint8

const (
	// MatchPrefix matches lines starting with the keyword.
	MatchPrefix MatchMode = iota
	// MatchSuffix matches lines ending with the keyword.
	MatchSuffix
	// MatchContains matches lines containing the keyword anywhere.
	MatchContains
)

// Static error definitions for better error handling.
var (
	// ErrInvalidLineRange indicates a negative start or a start past the end of the range.
	ErrInvalidLineRange = errors.New("invalid line range")
	// ErrUnknownMatchMode indicates an unsupported MatchMode value.
	ErrUnknownMatchMode = errors.New("unknown match mode")
)

// String returns the name of the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchPrefix:
		return "startswith"
	case MatchSuffix:
		return "endswith"
	case MatchContains:
		return "contains"
	default:
		return fmt.Sprintf("MatchMode(%d)", uint8(m))
	}
}

// IsMultiline reports whether text spans more than one line.
func IsMultiline(text string) bool {
	return strings.ContainsAny(text, "\r\n")
}

// FindFirstLine returns the index of the first line in [start, end) that matches keyword,
// or -1 if no line does. A negative end searches to the last line.
func FindFirstLine(lines []string, keyword string, mode MatchMode, start, end int) (int, error) {
	if start < 0 || (end >= 0 && start > end) {
		return -1, fmt.Errorf("%w: [%d, %d)", ErrInvalidLineRange, start, end)
	}

	var match func(string, string) bool

	switch mode {
	case MatchPrefix:
		match = strings.HasPrefix
	case MatchSuffix:
		match = strings.HasSuffix
	case MatchContains:
		match = strings.Contains
	default:
		return -1, fmt.Errorf("%w: %s", ErrUnknownMatchMode, mode)
	}

	if end < 0 || end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		if match(lines[i], keyword) {
			return i, nil
		}
	}

	return -1, nil
}
