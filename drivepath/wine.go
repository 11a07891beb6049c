package drivepath

import (
	"strings"

	"github.com/oshokin/utilkit/platform"
)

// Wine maps the host file system onto virtual drives.
const (
	// DefaultWineRootDrive is the Wine drive mapped to the host root directory.
	DefaultWineRootDrive = "Z:"
	// DefaultWineHomeDrive is the Wine drive mapped to the host home directory.
	DefaultWineHomeDrive = "Y:"
)

// homePrefix marks a path relative to the user's home directory.
const homePrefix = "~"

// ToWinePath converts a POSIX path into the Windows path Wine programs see.
// Paths under "~" go to DefaultWineHomeDrive, everything else to DefaultWineRootDrive;
// a non-empty drive overrides either default.
func ToWinePath(path, drive string) string {
	rest := path

	if rest == homePrefix || strings.HasPrefix(rest, homePrefix+"/") {
		rest = strings.TrimPrefix(rest, homePrefix)

		if drive == "" {
			drive = DefaultWineHomeDrive
		}
	} else if drive == "" {
		drive = DefaultWineRootDrive
	}

	rest = strings.TrimLeft(rest, "/")

	return drive + platform.Windows.SeparatorString() +
		strings.ReplaceAll(rest, "/", platform.Windows.SeparatorString())
}

// FromWinePath converts a Wine path back into a host path using the default drive mapping.
// The root drive maps to "/", the home drive maps to home ("~" when home is empty);
// paths on any other drive are returned trimmed but otherwise unchanged.
func FromWinePath(path, home string) string {
	return FromWinePathWith(path, home, DefaultWineRootDrive, DefaultWineHomeDrive)
}

// FromWinePathWith is FromWinePath for a prefix whose root and home drives were remapped.
func FromWinePathWith(path, home, rootDrive, homeDrive string) string {
	path = strings.TrimSpace(path)

	drive, rest := SplitDrive(path, platform.Windows)
	if drive == "" {
		return path
	}

	rest = strings.ReplaceAll(rest, platform.Windows.SeparatorString(), "/")

	switch drive {
	case strings.ToLower(rootDrive):
		return "/" + strings.TrimLeft(rest, "/")
	case strings.ToLower(homeDrive):
		if home == "" {
			home = homePrefix
		}

		return strings.TrimRight(home, "/") + "/" + strings.TrimLeft(rest, "/")
	default:
		return path
	}
}
