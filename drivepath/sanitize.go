package drivepath

import (
	"regexp"
	"strings"
)

// segmentReplacement stands in for every character a segment cannot hold.
const segmentReplacement = "_"

var (
	// invalidSegmentChars includes ASCII control characters (0-31) and the characters Windows forbids: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	invalidSegmentChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// reservedDeviceNames are the names Windows keeps for devices, whatever their case or extension.
	//nolint:gochecknoglobals // This is an immutable set used as a constant.
	reservedDeviceNames = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}
)

// SanitizeSegment turns name into a single path segment that is valid on both Windows and POSIX systems.
// Separators and other forbidden characters become "_", device names such as "CON" or "nul.txt"
// get a "_" prefix, and trailing dots and spaces are removed. A name with nothing left becomes "_".
func SanitizeSegment(name string) string {
	if name == "" {
		return ""
	}

	result := invalidSegmentChars.ReplaceAllString(name, segmentReplacement)

	// Windows ignores everything after the first dot when matching device names.
	stem, _, _ := strings.Cut(result, ".")
	if _, ok := reservedDeviceNames[strings.ToUpper(strings.TrimRight(stem, " "))]; ok {
		result = segmentReplacement + result
	}

	result = strings.TrimRight(result, ". ")

	if result == "" {
		result = segmentReplacement
	}

	return result
}
