package drivepath

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/oshokin/utilkit/platform"
)

// wildcardMarkers are the glob characters that keep a last segment in place.
const wildcardMarkers = "*?["

// Option configures CommonDirs.
type Option func(*options)

type options struct {
	allDirectories bool
}

// AllDirectories makes CommonDirs treat every input as a directory,
// so the last segment is kept even without a trailing separator.
func AllDirectories() Option {
	return func(o *options) {
		o.allDirectories = true
	}
}

// segment is a path element with its comparison key and the spelling to report.
type segment struct {
	key     string
	display string
}

// driveGroup accumulates the common leading segments of the paths on one drive.
type driveGroup struct {
	drive  string
	common []segment
}

// CommonDirs groups paths by drive and returns, for every drive, the deepest directory
// shared by all paths on it.
//
// A path ending in a separator is a directory. Otherwise its last segment is taken as a file name
// and dropped, unless it contains a wildcard marker (*, ? or [) or AllDirectories is set.
// On case-insensitive platforms segments are compared with Unicode case folding and the result keeps
// the spelling of the first path seen on the drive.
func CommonDirs(paths []string, plat platform.Platform, opts ...Option) map[string]string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		groups = make(map[string]*driveGroup, len(paths))
		caser  = cases.Fold()
	)

	for _, path := range paths {
		drive, segments := dirSegments(path, plat, o.allDirectories)

		current := make([]segment, len(segments))
		for i, s := range segments {
			current[i] = segment{key: s, display: s}
			if plat.CaseInsensitive {
				current[i].key = caser.String(s)
			}
		}

		group, ok := groups[drive]
		if !ok {
			groups[drive] = &driveGroup{drive: drive, common: current}

			continue
		}

		group.common = group.common[:commonPrefixLen(group.common, current)]
	}

	result := make(map[string]string, len(groups))
	for drive, group := range groups {
		result[drive] = joinDir(group.drive, group.common, plat)
	}

	return result
}

// dirSegments returns the drive key of path and its directory segments.
func dirSegments(path string, plat platform.Platform, allDirectories bool) (string, []string) {
	drive, rest := SplitDrive(path, plat)

	segments := strings.FieldsFunc(rest, func(r rune) bool {
		return r < utf8.RuneSelf && plat.IsSeparator(byte(r))
	})

	if allDirectories || len(segments) == 0 || plat.IsSeparator(path[len(path)-1]) {
		return drive, segments
	}

	if last := segments[len(segments)-1]; strings.ContainsAny(last, wildcardMarkers) {
		return drive, segments
	}

	return drive, segments[:len(segments)-1]
}

func commonPrefixLen(a, b []segment) int {
	n := min(len(a), len(b))

	for i := range n {
		if a[i].key != b[i].key {
			return i
		}
	}

	return n
}

// joinDir rebuilds a directory string from a drive key and segments using the native separator.
func joinDir(drive string, segments []segment, plat platform.Platform) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.display
	}

	body := strings.Join(parts, plat.SeparatorString())

	switch {
	case body == "":
		return drive
	case drive == "":
		return body
	case plat.IsSeparator(drive[len(drive)-1]):
		return drive + body
	default:
		return drive + plat.SeparatorString() + body
	}
}
