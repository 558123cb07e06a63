package lint

import "github.com/hiracky16/sqlfluff/pkg/config"

// BaseRule provides common metadata handling for rules. Embed it and
// implement Check.
type BaseRule struct {
	id          string
	name        string
	description string
	enabled     bool
	severity    config.Severity
}

// NewBaseRule creates rule metadata.
func NewBaseRule(id, name, description string, enabled bool, severity config.Severity) BaseRule {
	return BaseRule{
		id:          id,
		name:        name,
		description: description,
		enabled:     enabled,
		severity:    severity,
	}
}

// ID returns the rule identifier.
func (b BaseRule) ID() string { return b.id }

// Name returns the human-readable rule name.
func (b BaseRule) Name() string { return b.name }

// Description returns the rule description.
func (b BaseRule) Description() string { return b.description }

// DefaultEnabled returns whether the rule runs unless configured otherwise.
func (b BaseRule) DefaultEnabled() bool { return b.enabled }

// DefaultSeverity returns the rule's default severity.
func (b BaseRule) DefaultSeverity() config.Severity { return b.severity }
