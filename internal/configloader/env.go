package configloader

import "github.com/hiracky16/sqlfluff/pkg/config"

// Environment variable names recognized by the loader.
const (
	EnvTemplater       = "SQLFLUFF_TEMPLATER"
	EnvSeverityDefault = "SQLFLUFF_SEVERITY_DEFAULT"
	EnvProjectID       = "SQLFLUFF_DATAFORM_PROJECT_ID"
	EnvDatasetID       = "SQLFLUFF_DATAFORM_DATASET_ID"
)

// applyEnv overlays environment variables onto cfg. getenv is injected
// so tests can run without mutating the process environment.
func applyEnv(cfg *config.Config, getenv func(string) string) {
	if v := getenv(EnvTemplater); v != "" {
		cfg.Templater = v
	}
	if v := getenv(EnvSeverityDefault); v != "" {
		cfg.SeverityDefault = v
	}

	project := getenv(EnvProjectID)
	dataset := getenv(EnvDatasetID)
	if project == "" && dataset == "" {
		return
	}

	if cfg.Templaters == nil {
		cfg.Templaters = make(map[string]config.TemplaterConfig)
	}
	section := cfg.Templaters["dataform"]
	if project != "" {
		section.ProjectID = project
	}
	if dataset != "" {
		section.DatasetID = dataset
	}
	cfg.Templaters["dataform"] = section
}
