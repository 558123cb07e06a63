// Package rules provides the built-in lint rules for sqlfluff.
//
// All rules operate on the templated SQL text and locate findings with
// byte spans; the engine maps those spans back into the source file.
//
//   - L001: trailing-whitespace - lines should not end with whitespace
//   - L002: no-tab-indent - indentation should not contain tabs
//   - L010: keyword-capitalisation - SQL keywords should be upper case
//   - L050: no-leading-blank - files should not begin with blank lines
package rules

import "github.com/hiracky16/sqlfluff/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewTrailingWhitespaceRule())    // L001
	registry.Register(NewTabIndentRule())             // L002
	registry.Register(NewKeywordCapitalisationRule()) // L010
	registry.Register(NewLeadingBlankRule())          // L050
}

// Builtin returns a registry populated with all built-in rules.
func Builtin() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return registry
}
