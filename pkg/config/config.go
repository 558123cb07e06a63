// Package config defines core configuration types for sqlfluff.
// These types are pure data structures with no dependency on any
// particular config loader.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// TemplaterConfig holds per-templater configuration. ProjectID and
// DatasetID are used by the dataform templater to resolve ref() calls;
// Options carries any further engine-specific parameters.
type TemplaterConfig struct {
	ProjectID string         `yaml:"project_id"`
	DatasetID string         `yaml:"dataset_id"`
	Options   map[string]any `yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "trailing-whitespace"
	RuleFormatID       RuleFormat = "id"       // "L001"
	RuleFormatCombined RuleFormat = "combined" // "L001/trailing-whitespace"
)

// DefaultTemplater is the templater used when none is configured.
const DefaultTemplater = "raw"

// Config is the root configuration structure for sqlfluff.
type Config struct {
	// Templater names the template engine used to expand files before
	// linting ("raw" or "dataform").
	Templater string `yaml:"templater"`

	// Templaters contains per-templater configuration keyed by name.
	Templaters map[string]TemplaterConfig `yaml:"templaters"`

	// SeverityDefault overrides the built-in default severity of every
	// rule when set. Per-rule severity config still takes precedence.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Strict treats warnings as errors for exit-code purposes.
	Strict bool `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Templater:  DefaultTemplater,
		Templaters: make(map[string]TemplaterConfig),
		Rules:      make(map[string]RuleConfig),
		Format:     FormatText,
		RuleFormat: RuleFormatCombined,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// TemplaterSection returns the configuration section for the named
// templater, or a zero value when none is configured.
func (c *Config) TemplaterSection(name string) TemplaterConfig {
	if c == nil || c.Templaters == nil {
		return TemplaterConfig{}
	}
	return c.Templaters[name]
}

// FormatRuleID formats a rule identifier based on the given format.
// Falls back to ID if name is empty.
func FormatRuleID(format RuleFormat, ruleID, ruleName string) string {
	if ruleName == "" {
		return ruleID
	}

	switch format {
	case RuleFormatID:
		return ruleID
	case RuleFormatCombined:
		return ruleID + "/" + ruleName
	case RuleFormatName:
		return ruleName
	default:
		return ruleName
	}
}
