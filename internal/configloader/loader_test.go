package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiracky16/sqlfluff/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTemplater, result.Config.Templater)
	assert.Empty(t, result.Config.SeverityDefault)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".sqlfluff.yml", `
templater: dataform
templaters:
  dataform:
    project_id: analytics
    dataset_id: staging
`)

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "dataform", result.Config.Templater)
	assert.Equal(t, "analytics", result.Config.TemplaterSection("dataform").ProjectID)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoadUpwardDiscovery(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, ".sqlfluff.yml", "templater: dataform\n")

	nested := filepath.Join(root, "definitions", "staging")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "dataform", result.Config.Templater)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	// Project config that should be ignored in favor of the explicit one.
	writeConfig(t, dir, ".sqlfluff.yml", "templater: dataform\n")
	explicit := writeConfig(t, dir, "other.yml", "severity_default: error\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(config.SeverityError), result.Config.SeverityDefault)
	// Explicit path skips project discovery entirely.
	assert.Equal(t, config.DefaultTemplater, result.Config.Templater)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: filepath.Join(dir, "nope.yml"),
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoadCLIOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".sqlfluff.yml", "templater: dataform\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
		CLIConfig: &config.Config{
			Templater:    "raw",
			Strict:       true,
			Jobs:         4,
			EnableRules:  []string{"L001"},
			DisableRules: []string{"L010"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "raw", result.Config.Templater)
	assert.True(t, result.Config.Strict)
	assert.Equal(t, 4, result.Config.Jobs)
	assert.Equal(t, []string{"L001"}, result.Config.EnableRules)
	assert.Equal(t, []string{"L010"}, result.Config.DisableRules)
}

func TestLoadInvalidSeverity(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".sqlfluff.yml", "severity_default: fatal\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.ErrorContains(t, err, "invalid severity_default")
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".sqlfluff.yml", "templater: [unclosed\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.NewConfig()

	env := map[string]string{
		EnvTemplater: "dataform",
		EnvProjectID: "prod-project",
		EnvDatasetID: "marts",
	}
	applyEnv(cfg, func(key string) string { return env[key] })

	assert.Equal(t, "dataform", cfg.Templater)
	section := cfg.TemplaterSection("dataform")
	assert.Equal(t, "prod-project", section.ProjectID)
	assert.Equal(t, "marts", section.DatasetID)
}

func TestApplyEnvPreservesExistingSection(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Templaters["dataform"] = config.TemplaterConfig{
		ProjectID: "from-file",
		DatasetID: "from-file",
	}

	env := map[string]string{EnvDatasetID: "from-env"}
	applyEnv(cfg, func(key string) string { return env[key] })

	section := cfg.TemplaterSection("dataform")
	assert.Equal(t, "from-file", section.ProjectID)
	assert.Equal(t, "from-env", section.DatasetID)
}

func TestDiscoverProjectConfigNone(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, discoverProjectConfig(dir))
}

func TestMergeRuleConfigs(t *testing.T) {
	dst := config.NewConfig()
	enabled := false
	src := &config.Config{
		Rules: map[string]config.RuleConfig{
			"L001": {Enabled: &enabled},
		},
		Ignore: []string{"node_modules/**"},
	}

	mergeConfig(dst, src)

	require.Contains(t, dst.Rules, "L001")
	assert.False(t, *dst.Rules["L001"].Enabled)
	assert.Equal(t, []string{"node_modules/**"}, dst.Ignore)
}
