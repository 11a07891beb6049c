// Package report renders the plain-text messages shown to people at the end of a task
// or when something goes wrong, and wraps objects into tagged JSON envelopes
// that can be fished out of mixed process output.
package report
