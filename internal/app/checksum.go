package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/utilkit/checksum"
	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/logger"
)

// ChecksumOptions holds the flags of the checksum command.
type ChecksumOptions struct {
	// Algorithm overrides the configured digest when not empty.
	Algorithm string
	// Progress draws a progress bar on stderr while hashing.
	Progress bool
}

// ExecuteChecksumCommand prints the digest of every file in the "<digest>  <file>" format of md5sum.
func ExecuteChecksumCommand(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	files []string,
	opts ChecksumOptions,
) error {
	if len(files) == 0 {
		return ErrNoPaths
	}

	algo := cfg.ParsedChecksumAlgorithm
	if opts.Algorithm != "" {
		var err error

		algo, err = checksum.ParseAlgorithm(opts.Algorithm)
		if err != nil {
			return err
		}
	}

	for _, file := range files {
		if info, err := os.Stat(file); err == nil {
			logger.Debugf(ctx, "Hashing %s (%s) with %s", file, humanize.IBytes(uint64(max(info.Size(), 0))), algo)
		}

		var (
			sum string
			err error
		)

		if opts.Progress {
			sum, err = checksum.FileWithProgress(file, algo)
		} else {
			sum, err = checksum.File(file, algo, nil)
		}

		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(w, "%s  %s\n", sum, file); err != nil {
			return err
		}
	}

	return nil
}
