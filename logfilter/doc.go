// Package logfilter provides level filters for zap cores and a logger builder
// that splits records between stdout, stderr and an optional log file.
package logfilter
