package platform

import (
	"os"
	"os/user"
	"runtime"
)

//go:generate $MOCKGEN -source=environment.go -destination=mocks/environment_mock.go

// Environment exposes the facts about the host needed to resolve per-user directories.
type Environment interface {
	// OS returns the operating system name in runtime.GOOS form.
	OS() string
	// Username returns the login name of the current user.
	Username() string
	// HomeDir returns the actual home directory of the current user.
	HomeDir() (string, error)
}

// SystemEnvironment reads the facts from the running process.
type SystemEnvironment struct{}

// NewSystemEnvironment creates and returns a new instance of SystemEnvironment.
func NewSystemEnvironment() Environment {
	return &SystemEnvironment{}
}

// OS returns runtime.GOOS.
func (*SystemEnvironment) OS() string {
	return runtime.GOOS
}

// Username returns the current user's login name.
// It falls back to the USER and USERNAME variables when the user database is unavailable.
func (*SystemEnvironment) Username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return baseUsername(u.Username)
	}

	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}

	return ""
}

// HomeDir returns the home directory reported by the operating system.
func (*SystemEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// baseUsername strips the "DOMAIN\" prefix that Windows adds to account names.
func baseUsername(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '\\' {
			return name[i+1:]
		}
	}

	return name
}
