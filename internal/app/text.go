package app

import (
	"fmt"
	"io"

	"github.com/oshokin/utilkit/textutil"
)

// SubstOptions holds the flags of the subst command.
type SubstOptions struct {
	// Keywords maps "%(name)s" references to their values.
	Keywords map[string]string
	// Literals maps plain substrings to their replacements, applied after the keywords.
	Literals map[string]string
}

// ExecuteSubstCommand reads a template from r, substitutes keywords and literals and writes the result to w.
func ExecuteSubstCommand(w io.Writer, r io.Reader, opts SubstOptions) error {
	template, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	text, err := textutil.SubstituteKeywords(string(template), opts.Keywords)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, textutil.SubstituteLiterals(text, opts.Literals))

	return err
}
