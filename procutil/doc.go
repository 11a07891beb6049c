// Package procutil runs external processes and captures what they print.
package procutil
