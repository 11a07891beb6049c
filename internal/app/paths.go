package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/oshokin/utilkit/drivepath"
	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/platform"
	"github.com/oshokin/utilkit/textutil"
)

// Wine conversion directions accepted by ExecuteWineCommand.
const (
	WineToWindows = "to"
	WineFromWine  = "from"
)

// Static error definitions for better error handling.
var (
	// ErrNoPaths indicates that a command needing paths received none.
	ErrNoPaths = errors.New("no paths given")
	// ErrUnknownDirection indicates an unsupported Wine conversion direction.
	ErrUnknownDirection = errors.New("unknown conversion direction")
)

// CommonDirsOptions holds the flags of the commondirs command.
type CommonDirsOptions struct {
	// AllDirectories treats every path as a directory.
	AllDirectories bool
	// FromFile names a file with one path per line, read in addition to the arguments.
	FromFile string
	// JSON prints the mapping as a JSON object instead of one line per drive.
	JSON bool
}

// ExecuteCommonDirsCommand prints the deepest common directory of paths for every drive.
func ExecuteCommonDirsCommand(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	paths []string,
	opts CommonDirsOptions,
) error {
	if opts.FromFile != "" {
		fromFile, err := textutil.ReadLinesFromFile(opts.FromFile)
		if err != nil {
			return fmt.Errorf("failed to read paths from file: %w", err)
		}

		paths = textutil.Deduplicate(append(paths, fromFile...))
	}

	if len(paths) == 0 {
		return ErrNoPaths
	}

	var resolverOpts []drivepath.Option
	if opts.AllDirectories {
		resolverOpts = append(resolverOpts, drivepath.AllDirectories())
	}

	logger.DebugKV(ctx, "Resolving common directories",
		"platform", cfg.ParsedPlatform.Name,
		"paths", len(paths),
		"all_directories", opts.AllDirectories)

	common := drivepath.CommonDirs(paths, cfg.ParsedPlatform, resolverOpts...)

	if opts.JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(common)
	}

	drives := make([]string, 0, len(common))
	for drive := range common {
		drives = append(drives, drive)
	}

	slices.Sort(drives)

	for _, drive := range drives {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", displayDrive(drive), common[drive]); err != nil {
			return err
		}
	}

	return nil
}

// ExecuteDriveCommand prints the drive and the remainder of each path.
func ExecuteDriveCommand(w io.Writer, cfg *config.Config, paths []string) error {
	if len(paths) == 0 {
		return ErrNoPaths
	}

	for _, path := range paths {
		drive, rest := drivepath.SplitDrive(path, cfg.ParsedPlatform)
		if _, err := fmt.Fprintf(w, "%s\t%s\n", displayDrive(drive), rest); err != nil {
			return err
		}
	}

	return nil
}

// ExecuteWineCommand converts paths between the host and the Wine prefix
// using the drives from the configuration.
func ExecuteWineCommand(
	w io.Writer,
	cfg *config.Config,
	env platform.Environment,
	direction string,
	paths []string,
) error {
	if len(paths) == 0 {
		return ErrNoPaths
	}

	var convert func(string) string

	switch strings.ToLower(direction) {
	case WineToWindows:
		convert = func(path string) string {
			drive := cfg.WineRootDrive
			if path == "~" || strings.HasPrefix(path, "~/") {
				drive = cfg.WineHomeDrive
			}

			return drivepath.ToWinePath(path, drive)
		}
	case WineFromWine:
		home, err := env.HomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}

		convert = func(path string) string {
			return drivepath.FromWinePathWith(path, home, cfg.WineRootDrive, cfg.WineHomeDrive)
		}
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownDirection, direction)
	}

	for _, path := range paths {
		if _, err := fmt.Fprintln(w, convert(path)); err != nil {
			return err
		}
	}

	return nil
}

// displayDrive makes an empty drive visible in line-oriented output.
func displayDrive(drive string) string {
	if drive == "" {
		return "-"
	}

	return drive
}

// ExecuteSanitizeCommand prints every name made safe for use as a path segment on any platform.
func ExecuteSanitizeCommand(w io.Writer, names []string) error {
	if len(names) == 0 {
		return ErrNoPaths
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(w, drivepath.SanitizeSegment(name)); err != nil {
			return err
		}
	}

	return nil
}
