// Package configloader provides configuration loading and resolution.
// It discovers a project configuration file, applies environment
// variables, and merges CLI flags with defined precedence.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/hiracky16/sqlfluff/internal/logging"
	"github.com/hiracky16/sqlfluff/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (SQLFLUFF_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.sqlfluff.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	result := &LoadResult{
		Config: config.NewConfig(),
	}

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded config file", logging.FieldPath, path)
		mergeConfig(result.Config, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		applyEnv(result.Config, os.Getenv)
	}

	if opts.CLIConfig != nil {
		mergeCLI(result.Config, opts.CLIConfig)
	}

	if err := validate(result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveConfigPath decides which config file to load, if any.
func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	return discoverProjectConfig(workDir), nil
}

// loadFile reads and parses one YAML config file.
func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects configurations the rest of the system cannot honor.
func validate(cfg *config.Config) error {
	switch cfg.SeverityDefault {
	case "", string(config.SeverityError), string(config.SeverityWarning), string(config.SeverityInfo):
	default:
		return fmt.Errorf("invalid severity_default %q", cfg.SeverityDefault)
	}

	for id, rule := range cfg.Rules {
		if rule.Severity == nil {
			continue
		}
		switch config.Severity(*rule.Severity) {
		case config.SeverityError, config.SeverityWarning, config.SeverityInfo:
		default:
			return fmt.Errorf("rule %s: invalid severity %q", id, *rule.Severity)
		}
	}

	return nil
}
