package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/utilkit/ids"
)

// ErrInvalidID indicates that a value is neither a UUID nor a GUID.
var ErrInvalidID = errors.New("not a UUID or GUID")

// ExecuteUUIDCommand prints count new identifiers, in GUID notation when guid is set.
func ExecuteUUIDCommand(w io.Writer, count int, guid bool) error {
	for range max(count, 1) {
		id := ids.NewUUID()
		if guid {
			id = ids.NewGUID()
		}

		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}

	return nil
}

// ExecuteCheckIDCommand prints which notation value is written in.
// It returns ErrInvalidID when value is neither.
func ExecuteCheckIDCommand(w io.Writer, value string) error {
	value = strings.TrimSpace(value)

	var kind string

	switch {
	case ids.IsUUID(value):
		kind = "uuid"
	case ids.IsGUID(value):
		kind = "guid"
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidID, value)
	}

	_, err := fmt.Fprintf(w, "%s\t%s\n", kind, value)

	return err
}
