package checksum

import (
	"crypto/md5"  //nolint:gosec // MD5 is used for file fingerprints, not for security.
	"crypto/sha1" //nolint:gosec // SHA-1 is used for file fingerprints, not for security.
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Algorithm names a supported digest.
type Algorithm string

// Supported algorithms.
const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// Static error definitions for better error handling.
var (
	// ErrUnsupportedAlgorithm indicates that the requested digest is not implemented.
	ErrUnsupportedAlgorithm = errors.New("unsupported checksum algorithm")
)

// ParseAlgorithm converts a case-insensitive name such as "SHA256" into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, err := algo.newHash(); err != nil {
		return "", err
	}

	return algo, nil
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil //nolint:gosec // See import comment.
	case SHA1:
		return sha1.New(), nil //nolint:gosec // See import comment.
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// Reader returns the lower-case hex digest of everything read from r.
func Reader(r io.Reader, algo Algorithm) (string, error) {
	hasher, err := algo.newHash()
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(hasher, r); err != nil {
		return "", fmt.Errorf("failed to read data: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// File returns the lower-case hex digest of the file at path.
// If progress is not nil every byte read is also written to it.
// A missing file yields an error matching fs.ErrNotExist.
func File(path string, algo Algorithm, progress io.Writer) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}

	defer f.Close() //nolint:errcheck // Error on close is not critical for a read-only file.

	var r io.Reader = f
	if progress != nil {
		r = io.TeeReader(f, progress)
	}

	sum, err := Reader(r, algo)
	if err != nil {
		return "", fmt.Errorf("failed to calculate checksum for %s: %w", path, err)
	}

	return sum, nil
}

// FileWithProgress is File with a progress bar drawn on stderr.
func FileWithProgress(path string, algo Algorithm) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "Hashing "+filepath.Base(path))

	defer bar.Close() //nolint:errcheck // Rendering errors are not critical.

	return File(path, algo, bar)
}

// MD5File returns the MD5 digest of the file at path.
func MD5File(path string) (string, error) {
	return File(path, MD5, nil)
}
