package rules

import (
	"fmt"
	"strings"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/lint"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

// TrailingWhitespaceRule checks for unnecessary trailing whitespace.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"L001",
			"trailing-whitespace",
			"Lines should not end with whitespace",
			true,
			config.SeverityWarning,
		),
	}
}

// Check reports a violation for each line with trailing spaces or tabs.
func (r *TrailingWhitespaceRule) Check(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for _, line := range scanLines(ctx.SQL) {
		if ctx.Cancelled() {
			return violations, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		text := ctx.SQL[line.Start:line.End]
		trimmed := strings.TrimRight(text, " \t")
		if len(trimmed) == len(text) {
			continue
		}

		violations = append(violations, lint.Violation{
			Span:       position.NewSpan(line.Start+len(trimmed), line.End),
			Message:    "Unnecessary trailing whitespace",
			Suggestion: "Remove trailing whitespace",
		})
	}

	return violations, nil
}

// TabIndentRule checks for tab characters in indentation.
type TabIndentRule struct {
	lint.BaseRule
}

// NewTabIndentRule creates a new tab indentation rule.
func NewTabIndentRule() *TabIndentRule {
	return &TabIndentRule{
		BaseRule: lint.NewBaseRule(
			"L002",
			"no-tab-indent",
			"Indentation should use spaces, not tabs",
			true,
			config.SeverityWarning,
		),
	}
}

// Check reports a violation for each line whose indentation contains tabs.
func (r *TabIndentRule) Check(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for _, line := range scanLines(ctx.SQL) {
		if ctx.Cancelled() {
			return violations, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		text := ctx.SQL[line.Start:line.End]
		indentLen := len(text) - len(strings.TrimLeft(text, " \t"))
		indent := text[:indentLen]

		tab := strings.IndexByte(indent, '\t')
		if tab < 0 {
			continue
		}

		violations = append(violations, lint.Violation{
			Span:       position.NewSpan(line.Start+tab, line.Start+indentLen),
			Message:    "Tab characters in indentation",
			Suggestion: "Replace tabs with spaces",
		})
	}

	return violations, nil
}

// LeadingBlankRule checks that files do not begin with blank lines.
type LeadingBlankRule struct {
	lint.BaseRule
}

// NewLeadingBlankRule creates a new leading blank rule.
func NewLeadingBlankRule() *LeadingBlankRule {
	return &LeadingBlankRule{
		BaseRule: lint.NewBaseRule(
			"L050",
			"no-leading-blank",
			"Files should not begin with newlines or whitespace",
			true,
			config.SeverityInfo,
		),
	}
}

// Check reports a violation when the file starts with whitespace.
func (r *LeadingBlankRule) Check(ctx *lint.RuleContext) ([]lint.Violation, error) {
	trimmed := strings.TrimLeft(ctx.SQL, " \t\r\n")
	leading := len(ctx.SQL) - len(trimmed)
	if leading == 0 || trimmed == "" {
		return nil, nil
	}

	return []lint.Violation{{
		Span:       position.NewSpan(0, leading),
		Message:    "File begins with blank content",
		Suggestion: "Remove leading whitespace",
	}}, nil
}

// lineSpan is a [Start, End) byte range of one line's content, excluding
// the line terminator.
type lineSpan struct {
	Start int
	End   int
}

// scanLines splits text into per-line content spans. Carriage returns
// before a newline are treated as part of the terminator.
func scanLines(text string) []lineSpan {
	var lines []lineSpan

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		end := i
		if end > start && text[end-1] == '\r' {
			end--
		}
		lines = append(lines, lineSpan{Start: start, End: end})
		start = i + 1
	}

	if start < len(text) {
		lines = append(lines, lineSpan{Start: start, End: len(text)})
	}

	return lines
}
