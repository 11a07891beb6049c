package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/platform"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	checksumOptions app.ChecksumOptions

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	checksumCmd = &cobra.Command{
		Use:   "checksum [flags] {files}",
		Short: "Print file checksums in the md5sum format.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, files []string) {
			err := app.ExecuteChecksumCommand(cmd.Context(), cmd.OutOrStdout(), appConfig, files, checksumOptions)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to calculate checksum: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	uuidCmd = &cobra.Command{
		Use:   "uuid",
		Short: "Generate or check UUIDs and GUIDs.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			if value, _ := flags.GetString("check"); value != "" {
				if err := app.ExecuteCheckIDCommand(cmd.OutOrStdout(), value); err != nil {
					logger.Fatalf(cmd.Context(), "Invalid identifier: %v", err)
				}

				return
			}

			count, _ := flags.GetInt("count")
			guid, _ := flags.GetBool("guid")

			if err := app.ExecuteUUIDCommand(cmd.OutOrStdout(), count, guid); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to generate identifiers: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	dirsCmd = &cobra.Command{
		Use:   "dirs",
		Short: "Print the per-user home, application data and temporary directories.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := app.ExecuteDirsCommand(cmd.OutOrStdout(), platform.NewSystemEnvironment()); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to resolve directories: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	runOptions app.RunOptions

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	runCmd = &cobra.Command{
		Use:   "run [flags] -- {command} [args]",
		Short: "Run a command and replay its captured output.",
		Long: `Runs the command, captures its stdout and stderr up to max_output_size
bytes each and replays them. The exit code of the command becomes the exit
code of utilkit.`,
		Example: `  utilkit run --report -- make test
  utilkit run --envelope --max-output 64KB -- git status --short`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			code, err := app.ExecuteRunCommand(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				appConfig, args, runOptions)
			if err != nil && code < 0 {
				logger.Fatalf(cmd.Context(), "Failed to run command: %v", err)
			}

			if err != nil {
				logger.Error(cmd.Context(), err)
			}

			exitCode = code
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	substCmd = &cobra.Command{
		Use:   "subst [flags] [file]",
		Short: "Fill %(name)s keywords and literal placeholders in a template.",
		Long: `Reads a template from the file, or from stdin when no file is given,
replaces every %(name)s with the value given by --set name=value and every
%% with %, then replaces the literal placeholders given by --replace.`,
		Example: `  utilkit subst --set version=1.2.3 --replace @YEAR@=2026 template.txt`,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			keywords, _ := flags.GetStringToString("set")
			literals, _ := flags.GetStringToString("replace")

			input := cmd.InOrStdin()

			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					logger.Fatalf(cmd.Context(), "Failed to open template: %v", err)
				}

				defer file.Close() //nolint:errcheck // Error on close is not critical for a read-only file.

				input = file
			}

			err := app.ExecuteSubstCommand(cmd.OutOrStdout(), input, app.SubstOptions{
				Keywords: keywords,
				Literals: literals,
			})
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to substitute template: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	checksumFlags := checksumCmd.Flags()
	checksumFlags.String("algo", "", "digest algorithm: md5, sha1 or sha256 (default from configuration).")
	checksumFlags.BoolVar(&checksumOptions.Progress, "progress", false, "draw a progress bar on stderr.")

	uuidFlags := uuidCmd.Flags()
	uuidFlags.BoolP("guid", "g", false, "print GUIDs: upper-case and wrapped in braces.")
	uuidFlags.IntP("count", "n", 1, "number of identifiers to generate.")
	uuidFlags.String("check", "", "print whether the value is a UUID or a GUID instead of generating.")

	runFlags := runCmd.Flags()
	runFlags.SetInterspersed(false)
	runFlags.StringVarP(&runOptions.Dir, "dir", "d", "", "working directory of the command.")
	runFlags.StringArrayVarP(&runOptions.Env, "env", "e", nil, "extra KEY=VALUE environment variable, repeatable.")
	runFlags.BoolVar(&runOptions.Check, "check", false, "treat a non-zero exit code as a failure.")
	runFlags.BoolVar(&runOptions.Report, "report", false, "print a result summary after the output.")
	runFlags.BoolVar(&runOptions.Envelope, "envelope", false, "print the result as an enveloped JSON document.")
	runFlags.String("max-output", "", "cap each captured stream, for example: 64KB, 1MiB; 0 disables the cap.")

	substFlags := substCmd.Flags()
	substFlags.StringToString("set", nil, "keyword value as name=value, repeatable.")
	substFlags.StringToString("replace", nil, "literal replacement as text=value, repeatable.")

	rootCmd.AddCommand(checksumCmd, uuidCmd, dirsCmd, runCmd, substCmd)
}
