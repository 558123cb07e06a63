package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hiracky16/sqlfluff/internal/configloader"
	"github.com/hiracky16/sqlfluff/internal/logging"
	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/lint"
	"github.com/hiracky16/sqlfluff/pkg/lint/rules"
	"github.com/hiracky16/sqlfluff/pkg/runner"
	"github.com/hiracky16/sqlfluff/pkg/templater"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	templaterName string
	format        string
	ignore        []string
	enable        []string
	disable       []string
	jobs          int
	strict        bool
	noContext     bool
	ruleFormat    string
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint SQL files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint SQL files for style issues.

By default, lints all .sql and .sqlx files in the current directory
and subdirectories. Specify paths to lint specific files or directories.

Templated files (such as Dataform SQLX) are expanded before linting,
and diagnostics are mapped back to positions in the original source.
Positions that can only be mapped approximately are marked with "~".

Examples:
  sqlfluff lint                         # Lint current directory
  sqlfluff lint definitions/            # Lint a directory
  sqlfluff lint model.sqlx              # Lint single file
  sqlfluff lint --templater dataform    # Expand Dataform SQLX syntax
  sqlfluff lint --format json           # Output as JSON for CI
  sqlfluff lint --strict                # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()

	// Map flags to a CLI-level config. Zero values mean "not set" so
	// the loader can tell flags apart from file config.
	cliCfg := &config.Config{
		Templater:    flags.templaterName,
		Format:       config.OutputFormat(flags.format),
		RuleFormat:   config.RuleFormat(flags.ruleFormat),
		Jobs:         flags.jobs,
		Strict:       flags.strict,
		Ignore:       flags.ignore,
		EnableRules:  flags.enable,
		DisableRules: flags.disable,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldTemplater, finalCfg.Templater,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine := lint.NewEngine(templater.Builtin(), rules.Builtin())
	lintRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	writer := newResultWriter(cmd.OutOrStdout(), resultWriterOptions{
		Format:      finalCfg.Format,
		RuleFormat:  finalCfg.RuleFormat,
		ColorMode:   colorMode,
		ShowContext: !flags.noContext,
	})

	if err := writer.Write(result); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.templaterName, "templater", "",
		"templater to expand files with: raw, dataform")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "",
		"rule identifier format in output: name, id, or combined")
}
