package drivepath

import (
	"strings"

	"github.com/oshokin/utilkit/platform"
)

// SplitDrive returns the normalized drive key of path and the path with that prefix stripped.
// One separator following the drive is part of the root and is stripped too,
// so `C:\dir` and `/dir` both leave "dir".
// It never fails: anything that is not a well-formed root yields the "" drive and the path unchanged.
func SplitDrive(path string, plat platform.Platform) (drive, rest string) {
	if plat.UNC {
		if root, ok := uncRoot(path, plat); ok {
			return normalizeDrive(root, plat), trimRootSeparator(path[len(root):], plat)
		}
	}

	if plat.DriveLetters && len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0]) {
		return strings.ToLower(path[:2]), trimRootSeparator(path[2:], plat)
	}

	// Without a drive grammar a single leading separator is the root.
	if !plat.DriveLetters && !plat.UNC && path != "" && plat.IsSeparator(path[0]) {
		return plat.SeparatorString(), path[1:]
	}

	return "", path
}

func trimRootSeparator(rest string, plat platform.Platform) string {
	if rest != "" && plat.IsSeparator(rest[0]) {
		return rest[1:]
	}

	return rest
}

// uncRoot returns the `\\server\share` prefix of path if it has one.
// Device paths such as `\\.\pipe` and `\\?\C:` are not shares, neither are "." and ".." as share names.
func uncRoot(path string, plat platform.Platform) (string, bool) {
	if len(path) < 5 || !plat.IsSeparator(path[0]) || !plat.IsSeparator(path[1]) {
		return "", false
	}

	serverEnd := indexSeparator(path, 2, plat)
	if serverEnd < 0 {
		return "", false
	}

	switch path[2:serverEnd] {
	case "", ".", "?":
		return "", false
	}

	shareEnd := indexSeparator(path, serverEnd+1, plat)
	if shareEnd < 0 {
		shareEnd = len(path)
	}

	switch path[serverEnd+1 : shareEnd] {
	case "", ".", "..":
		return "", false
	}

	return path[:shareEnd], true
}

// indexSeparator returns the index of the first separator in path at or after from, or -1.
func indexSeparator(path string, from int, plat platform.Platform) int {
	for i := from; i < len(path); i++ {
		if plat.IsSeparator(path[i]) {
			return i
		}
	}

	return -1
}

// normalizeDrive lower-cases a drive prefix and rewrites alternative separators to the native one.
func normalizeDrive(drive string, plat platform.Platform) string {
	if plat.AltSeparator != 0 {
		drive = strings.ReplaceAll(drive, string(plat.AltSeparator), plat.SeparatorString())
	}

	return strings.ToLower(drive)
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
