// Package app implements the bodies of the utilkit commands.
// Each command reads its settings from the validated configuration,
// calls into the library packages and writes its results to the given writer,
// so the cobra layer stays responsible only for flags and exit codes.
package app
