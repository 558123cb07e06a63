// Package cli provides the Cobra command structure for sqlfluff.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hiracky16/sqlfluff/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sqlfluff command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "sqlfluff",
		Short: "A SQL linter for templated SQL projects",
		Long: `sqlfluff lints SQL files, including templated SQL such as Dataform
SQLX models. Templated files are expanded before linting and every
diagnostic is mapped back to a position in the original source, so
issues are reported where you would edit them.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newTemplatersCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
