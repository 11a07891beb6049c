package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals // Closes the log file configured in initConfig.
	closeLogger = func() error { return nil }

	//nolint:gochecknoglobals // Exit code reported by the run command, applied once the command finishes.
	exitCode int

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   constants.ApplicationName,
		Short: "Path, checksum, identifier and process helpers for scripts.",
		Long: `utilkit is a CLI toolbox for build and deployment scripts.
It can:
- Find the deepest common directory of many paths, drive by drive
- Split Windows and POSIX paths into drive and remainder
- Convert paths between the host and a Wine prefix
- Calculate file checksums
- Generate and validate UUIDs and GUIDs
- Run commands with captured, size-limited output

Path handling follows the host platform unless --platform says otherwise.`,
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
		_ = closeLogger()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()

	if exitCode != 0 {
		_ = logger.Logger().Sync()
		_ = closeLogger()

		os.Exit(exitCode) //nolint:gocritic // Deferred calls were run by hand above.
	}
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmdFlags := rootCmd.PersistentFlags()

	rootCmdFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")

	rootCmdFlags.StringP(
		"platform",
		"p",
		"",
		fmt.Sprintf("path conventions: %s, %s or %s.",
			constants.PlatformAuto, constants.PlatformPOSIX, constants.PlatformWindows))
}

// initConfig loads the configuration, applies flag overrides and sets up logging.
func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	closeLogger, err = app.SetupLogger(appConfig)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to set up logging: %v", err)
	}

	if appConfig.Filename != "" {
		logger.Debugf(cmd.Context(), "Configuration loaded from %s", appConfig.Filename)
	}
}

// skipConfig replaces initConfig for commands that must work without a valid configuration.
func skipConfig(*cobra.Command, []string) {}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("platform"); flag != nil && flag.Changed {
		cfg.Platform, _ = flags.GetString("platform")
	}

	if flag := flags.Lookup("windows"); flag != nil && flag.Changed {
		if windows, _ := flags.GetBool("windows"); windows {
			cfg.Platform = constants.PlatformWindows
		}
	}

	if flag := flags.Lookup("posix"); flag != nil && flag.Changed {
		if posix, _ := flags.GetBool("posix"); posix {
			cfg.Platform = constants.PlatformPOSIX
		}
	}

	if flag := flags.Lookup("algo"); flag != nil && flag.Changed {
		cfg.ChecksumAlgorithm, _ = flags.GetString("algo")
	}

	if flag := flags.Lookup("max-output"); flag != nil && flag.Changed {
		cfg.MaxOutputSize, _ = flags.GetString("max-output")
	}

	return config.ValidateConfig(cfg)
}
