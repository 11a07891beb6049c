package textutil

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Static error definitions for better error handling.
var (
	// ErrMissingKeyword indicates that the text references a keyword absent from the map.
	ErrMissingKeyword = errors.New("missing keyword")
)

// keywordPattern matches "%(name)s" references and "%%" escapes.
//
//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
var keywordPattern = regexp.MustCompile(`%\((\w+)\)s|%%`)

// SubstituteKeywords replaces every "%(name)s" in text with keywords[name] and every "%%" with "%".
// A reference to a keyword missing from the map is an error.
func SubstituteKeywords(text string, keywords map[string]string) (string, error) {
	var missing []string

	result := keywordPattern.ReplaceAllStringFunc(text, func(match string) string {
		if match == "%%" {
			return "%"
		}

		name := match[2 : len(match)-2]

		value, ok := keywords[name]
		if !ok {
			missing = append(missing, name)

			return match
		}

		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingKeyword, strings.Join(missing, ", "))
	}

	return result, nil
}

// SubstituteLiterals replaces every occurrence of each key of replacements with its value.
// Longer keys win over their prefixes, and replaced text is never scanned again.
func SubstituteLiterals(text string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return text
	}

	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		if key != "" {
			keys = append(keys, key)
		}
	}

	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, key, replacements[key])
	}

	return strings.NewReplacer(pairs...).Replace(text)
}
