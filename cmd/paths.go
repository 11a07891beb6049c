package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/platform"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	commonDirsOptions app.CommonDirsOptions

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	commonDirsCmd = &cobra.Command{
		Use:   "commondirs [flags] {paths}",
		Short: "Print the deepest common directory of the paths on every drive.",
		Long: `Groups the paths by drive (a drive letter, a UNC share, the POSIX root or
no drive at all for relative paths) and prints, for every drive, the deepest
directory all of its paths share.

A path ending with a separator is a directory. Otherwise its last segment is a
file name and is ignored, unless it contains a wildcard (*, ? or [) or
--all-dirs is given.`,
		Example: `  utilkit commondirs /var/log/app/a.log /var/log/app/old/b.log
  utilkit commondirs --windows 'C:\work\a.txt' 'c:\Work\b.txt' '\\server\share\x\y'
  utilkit commondirs --from-file paths.txt --json`,
		Run: func(cmd *cobra.Command, paths []string) {
			err := app.ExecuteCommonDirsCommand(cmd.Context(), cmd.OutOrStdout(), appConfig, paths, commonDirsOptions)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to resolve common directories: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	driveCmd = &cobra.Command{
		Use:   "drive {paths}",
		Short: "Split paths into drive and remainder.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, paths []string) {
			if err := app.ExecuteDriveCommand(cmd.OutOrStdout(), appConfig, paths); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to split paths: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	sanitizeCmd = &cobra.Command{
		Use:   "sanitize {names}",
		Short: "Make names safe to use as file or folder names on any platform.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, names []string) {
			if err := app.ExecuteSanitizeCommand(cmd.OutOrStdout(), names); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to sanitize names: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	wineCmd = &cobra.Command{
		Use:   "wine {to|from} {paths}",
		Short: "Convert paths between the host and a Wine prefix.",
		Long: `Converts host paths into the Windows paths Wine programs see ("to"),
or Wine paths back into host paths ("from").

The root directory is mapped to wine_root_drive and the home directory to
wine_home_drive, Z: and Y: unless configured otherwise.`,
		Example: `  utilkit wine to /usr/share/fonts '~/Documents/report.txt'
  utilkit wine from 'Z:\etc\hosts' 'Y:\Documents'`,
		Args:      cobra.MinimumNArgs(2), //nolint:mnd // Direction and at least one path.
		ValidArgs: []string{app.WineToWindows, app.WineFromWine},
		Run: func(cmd *cobra.Command, args []string) {
			err := app.ExecuteWineCommand(cmd.OutOrStdout(), appConfig,
				platform.NewSystemEnvironment(), args[0], args[1:])
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to convert paths: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	commonDirsFlags := commonDirsCmd.Flags()

	commonDirsFlags.Bool("windows", false, "use Windows path conventions (same as --platform windows).")
	commonDirsFlags.Bool("posix", false, "use POSIX path conventions (same as --platform posix).")
	commonDirsCmd.MarkFlagsMutuallyExclusive("windows", "posix")

	commonDirsFlags.BoolVarP(
		&commonDirsOptions.AllDirectories,
		"all-dirs",
		"a",
		false,
		"treat every path as a directory.")

	commonDirsFlags.StringVarP(
		&commonDirsOptions.FromFile,
		"from-file",
		"f",
		"",
		"read additional paths from a file, one per line.")

	commonDirsFlags.BoolVar(
		&commonDirsOptions.JSON,
		"json",
		false,
		"print a JSON object mapping drives to directories.")

	rootCmd.AddCommand(commonDirsCmd, driveCmd, sanitizeCmd, wineCmd)
}
