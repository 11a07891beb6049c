package platform

import (
	"runtime"
	"strings"
	"sync"
)

// Operating system names as reported by runtime.GOOS.
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Platform holds every platform-dependent path constant.
type Platform struct {
	// Name is a short human-readable identifier of the profile.
	Name string
	// Separator is the native path separator.
	Separator byte
	// AltSeparator is an additional accepted separator, or 0 if there is none.
	AltSeparator byte
	// CaseInsensitive reports whether path segments compare without regard to case.
	CaseInsensitive bool
	// DriveLetters reports whether "X:" drive prefixes are recognized.
	DriveLetters bool
	// UNC reports whether "\\server\share" prefixes are recognized.
	UNC bool
}

var (
	// POSIX is the profile of Unix-like systems: a single '/' root, case-sensitive segments.
	//nolint:gochecknoglobals // Immutable profile used as a constant.
	POSIX = Platform{
		Name:      "posix",
		Separator: '/',
	}

	// Windows is the profile of Windows systems: drive letters, UNC shares, case-insensitive segments.
	//nolint:gochecknoglobals // Immutable profile used as a constant.
	Windows = Platform{
		Name:            "windows",
		Separator:       '\\',
		AltSeparator:    '/',
		CaseInsensitive: true,
		DriveLetters:    true,
		UNC:             true,
	}

	//nolint:gochecknoglobals // The host profile never changes during the process lifetime.
	currentPlatform = sync.OnceValue(func() Platform {
		return ForOS(runtime.GOOS)
	})
)

// Current returns the profile of the host operating system.
func Current() Platform {
	return currentPlatform()
}

// ForOS returns the profile for the given runtime.GOOS value.
// Every OS other than Windows uses the POSIX profile.
func ForOS(goos string) Platform {
	if strings.EqualFold(goos, OSWindows) {
		return Windows
	}

	return POSIX
}

// ByName returns the profile with the given name ("posix" or "windows").
// The second result is false if the name is unknown.
func ByName(name string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case POSIX.Name:
		return POSIX, true
	case Windows.Name:
		return Windows, true
	default:
		return Platform{}, false
	}
}

// IsSeparator reports whether c separates path segments on this platform.
func (p Platform) IsSeparator(c byte) bool {
	return c == p.Separator || (p.AltSeparator != 0 && c == p.AltSeparator)
}

// SeparatorString returns the native separator as a string.
func (p Platform) SeparatorString() string {
	return string(p.Separator)
}

// Join concatenates the elements with the native separator.
// Empty elements are skipped, no cleaning is applied.
func (p Platform) Join(elems ...string) string {
	parts := make([]string, 0, len(elems))

	for _, elem := range elems {
		if elem != "" {
			parts = append(parts, elem)
		}
	}

	return strings.Join(parts, p.SeparatorString())
}
