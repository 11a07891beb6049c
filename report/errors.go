package report

import "strings"

// DiagnosticError is an error carrying a detail section and an advice section for people to read.
// It unwraps to Kind, so callers can still match it with errors.Is.
type DiagnosticError struct {
	// Kind classifies the error, e.g. a package sentinel.
	Kind error
	// Detail explains what happened.
	Detail string
	// Advice tells how to fix it.
	Advice string
}

// NewDiagnosticError creates and returns a new DiagnosticError.
func NewDiagnosticError(kind error, detail, advice string) error {
	return &DiagnosticError{
		Kind:   kind,
		Detail: detail,
		Advice: advice,
	}
}

// Error renders the detail and advice sections.
func (e *DiagnosticError) Error() string {
	var b strings.Builder

	writeSection(&b, "Detail", e.Detail)
	b.WriteString("\n\n")
	writeSection(&b, "Advice", e.Advice)

	return b.String()
}

// Unwrap returns Kind.
func (e *DiagnosticError) Unwrap() error {
	return e.Kind
}
