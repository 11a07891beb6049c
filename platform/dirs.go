package platform

import (
	"errors"
	"fmt"
	"strings"
)

// windowsUsersRoot is the parent of all user profiles on the system drive.
const windowsUsersRoot = `C:\Users`

// Static error definitions for better error handling.
var (
	// ErrUnsupportedPlatform indicates that the operation is not defined for the host OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrUnknownUser indicates that the current user name could not be determined.
	ErrUnknownUser = errors.New("unknown user")
)

// HomeDir returns the home directory of the current user.
func HomeDir(env Environment) (string, error) {
	username := env.Username()
	if username == "" {
		return "", ErrUnknownUser
	}

	switch env.OS() {
	case OSWindows:
		return Windows.Join(windowsUsersRoot, username), nil
	case OSDarwin:
		return POSIX.Join("/Users", username), nil
	case OSLinux:
		return POSIX.Join("/home", username), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, env.OS())
	}
}

// AppDataDir returns the directory where applications keep per-user data.
// On Windows roaming selects AppData\Roaming instead of AppData\Local; other systems ignore it.
// Linux has no single convention and is reported as unsupported.
func AppDataDir(env Environment, roaming bool) (string, error) {
	switch env.OS() {
	case OSWindows:
		home, err := HomeDir(env)
		if err != nil {
			return "", err
		}

		if roaming {
			return Windows.Join(home, "AppData", "Roaming"), nil
		}

		return Windows.Join(home, "AppData", "Local"), nil
	case OSDarwin:
		home, err := HomeDir(env)
		if err != nil {
			return "", err
		}

		return POSIX.Join(home, "Library", "Application Support"), nil
	default:
		return "", fmt.Errorf("%w: no application data directory on %s", ErrUnsupportedPlatform, env.OS())
	}
}

// TempDir returns the per-user temporary directory.
func TempDir(env Environment) (string, error) {
	switch env.OS() {
	case OSWindows:
		appData, err := AppDataDir(env, false)
		if err != nil {
			return "", err
		}

		return Windows.Join(appData, "Temp"), nil
	case OSDarwin:
		home, err := HomeDir(env)
		if err != nil {
			return "", err
		}

		return POSIX.Join(home, "Library", "Caches"), nil
	case OSLinux:
		return "/tmp", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, env.OS())
	}
}

// Validate returns ErrUnsupportedPlatform unless the host OS is one of supported.
// Names are compared without regard to case, so both "Linux" and "linux" match.
func Validate(env Environment, supported ...string) error {
	current := env.OS()

	for _, name := range supported {
		if strings.EqualFold(strings.TrimSpace(name), current) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s, expected one of [%s]",
		ErrUnsupportedPlatform, current, strings.Join(supported, ", "))
}
