package ids

import (
	"strings"

	"github.com/google/uuid"
)

// canonicalLength is the length of the hyphenated "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
const canonicalLength = 36

// IsUUID reports whether s is a UUID in the canonical hyphenated form.
// The urn:uuid: and braced spellings accepted by uuid.Parse are rejected.
func IsUUID(s string) bool {
	if len(s) != canonicalLength {
		return false
	}

	_, err := uuid.Parse(s)

	return err == nil
}

// IsGUID reports whether s is a UUID in the canonical form, optionally wrapped in braces.
func IsGUID(s string) bool {
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}

	return IsUUID(s)
}

// NewUUID returns a random (version 4) UUID in the canonical lower-case form.
func NewUUID() string {
	return uuid.New().String()
}

// NewGUID returns a random UUID in the Windows GUID spelling.
func NewGUID() string {
	return FormatGUID(uuid.New())
}

// FormatGUID renders id as an upper-case, braced GUID, e.g. {C9BF9E57-1685-4C89-BAFB-FF5AF830BE8A}.
func FormatGUID(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}

// ParseGUID parses a UUID or GUID in any case, with or without braces.
func ParseGUID(s string) (uuid.UUID, error) {
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}

	return uuid.Parse(s)
}
