// Package lint provides the rule engine, diagnostics, and registry for
// sqlfluff. Rules inspect the templated (expanded) SQL; the engine maps
// every finding back to the source file through the position mapper so
// diagnostics point at the line the user wrote.
package lint

import (
	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

// Violation is a single finding reported by a rule, located by a span of
// the templated text. The engine translates it into a source-positioned
// Diagnostic.
type Violation struct {
	// Span locates the finding in the templated text.
	Span position.Span

	// Message is the human-readable description of the issue.
	Message string

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string
}

// Diagnostic represents a single lint issue, positioned in the source file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "trailing-whitespace").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine is the 1-based line number in the source file.
	StartLine int

	// StartColumn is the 1-based column number in the source file.
	StartColumn int

	// EndLine is the 1-based end line number in the source file.
	EndLine int

	// EndColumn is the 1-based end column number in the source file.
	EndColumn int

	// Approximate is true when the source location is a best-effort
	// enclosing region rather than an exact byte-for-byte match,
	// which happens when the finding overlaps templated material.
	Approximate bool

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "L001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Check executes the rule against the templated SQL and returns
	// violations located by templated-text spans.
	//
	// Rules must:
	//   - Report violations, not fail on them.
	//   - Return error only for internal failures.
	//   - Respect context cancellation via ctx.Cancelled().
	Check(ctx *RuleContext) ([]Violation, error)
}
