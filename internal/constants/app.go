package constants

// ApplicationName is the name of the command-line tool.
const ApplicationName = "utilkit"

// Platform profile names accepted in configuration and flags.
const (
	PlatformAuto    = "auto"
	PlatformPOSIX   = "posix"
	PlatformWindows = "windows"
)
