package rules

import (
	"fmt"
	"strings"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/lint"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

// sqlKeywords is the set of keywords L010 checks, keyed by upper-case form.
var sqlKeywords = func() map[string]struct{} {
	words := []string{
		"SELECT", "FROM", "WHERE", "GROUP", "ORDER", "BY", "HAVING",
		"LIMIT", "OFFSET", "JOIN", "INNER", "LEFT", "RIGHT", "FULL",
		"OUTER", "CROSS", "ON", "USING", "AS", "AND", "OR", "NOT",
		"IN", "IS", "NULL", "LIKE", "BETWEEN", "CASE", "WHEN", "THEN",
		"ELSE", "END", "UNION", "ALL", "DISTINCT", "WITH", "INSERT",
		"INTO", "VALUES", "UPDATE", "SET", "DELETE", "CREATE", "TABLE",
		"VIEW", "PARTITION", "OVER", "QUALIFY",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// KeywordCapitalisationRule checks that SQL keywords are written in
// upper case.
type KeywordCapitalisationRule struct {
	lint.BaseRule
}

// NewKeywordCapitalisationRule creates a new keyword capitalisation rule.
func NewKeywordCapitalisationRule() *KeywordCapitalisationRule {
	return &KeywordCapitalisationRule{
		BaseRule: lint.NewBaseRule(
			"L010",
			"keyword-capitalisation",
			"SQL keywords should be upper case",
			true,
			config.SeverityWarning,
		),
	}
}

// Check reports a violation for each keyword not written in upper case.
// Quoted strings, backticked identifiers, and comments are skipped.
func (r *KeywordCapitalisationRule) Check(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for _, word := range scanWords(ctx.SQL) {
		if ctx.Cancelled() {
			return violations, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		text := ctx.SQL[word.Start:word.End]
		upper := strings.ToUpper(text)
		if _, ok := sqlKeywords[upper]; !ok {
			continue
		}
		if text == upper {
			continue
		}

		violations = append(violations, lint.Violation{
			Span:       position.NewSpan(word.Start, word.End),
			Message:    fmt.Sprintf("Keyword %q should be upper case", text),
			Suggestion: fmt.Sprintf("Write %q", upper),
		})
	}

	return violations, nil
}

// scanWords returns the spans of bare words in the SQL text, skipping
// single-quoted strings, double-quoted and backticked identifiers, and
// line comments.
func scanWords(text string) []lineSpan {
	var words []lineSpan

	i := 0
	for i < len(text) {
		c := text[i]

		switch {
		case c == '\'' || c == '"' || c == '`':
			i = skipQuoted(text, i, c)

		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			// Line comment runs to end of line.
			for i < len(text) && text[i] != '\n' {
				i++
			}

		case isWordByte(c):
			start := i
			for i < len(text) && isWordByte(text[i]) {
				i++
			}
			words = append(words, lineSpan{Start: start, End: i})

		default:
			i++
		}
	}

	return words
}

// skipQuoted advances past a quoted region opened at index i by quote.
// An unterminated quote consumes the rest of the text.
func skipQuoted(text string, i int, quote byte) int {
	i++
	for i < len(text) {
		if text[i] == quote {
			return i + 1
		}
		if text[i] == '\\' {
			i++
		}
		i++
	}
	return i
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
