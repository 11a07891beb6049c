// Package checksum computes hexadecimal digests of files.
package checksum
