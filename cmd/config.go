package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configSetCmd = &cobra.Command{
		Use:   "set {key} {value}",
		Short: "Set a value in the configuration file",
		Long: `Sets a key in the configuration file, keeping its comments and key order.
The file is created if it does not exist.`,
		Example:          `  utilkit config set wine_home_drive H:`,
		Args:             cobra.ExactArgs(2), //nolint:mnd // Key and value.
		PersistentPreRun: skipConfig,
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.ExecuteConfigSetCommand(cmd.Context(), configFilenameFromFlag, args[0], args[1]); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to update configuration: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	versionCmd = &cobra.Command{
		Use:              "version",
		Short:            "Print the version",
		Args:             cobra.NoArgs,
		PersistentPreRun: skipConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			full, _ := cmd.Flags().GetBool("full")

			if err := app.ExecuteVersionCommand(cmd.OutOrStdout(), full); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to print version: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	versionCmd.Flags().Bool("full", false, "include the commit and build time.")

	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(configCmd, versionCmd)
}
