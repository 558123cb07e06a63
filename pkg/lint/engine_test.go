package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
	"github.com/hiracky16/sqlfluff/pkg/templater"
)

func dataformConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Templater = templater.NameDataform
	cfg.Templaters[templater.NameDataform] = config.TemplaterConfig{
		ProjectID: "p",
		DatasetID: "d",
	}
	return cfg
}

func engineWith(rules ...Rule) *Engine {
	registry := NewRegistry()
	for _, r := range rules {
		registry.Register(r)
	}
	return NewEngine(templater.Builtin(), registry)
}

func TestEngine_LintFile_RawTemplater(t *testing.T) {
	rule := newMockRule("L999", "always-fires")
	rule.violations = []Violation{{
		Span:    position.NewSpan(0, 6),
		Message: "found it",
	}}

	engine := engineWith(rule)

	result, err := engine.LintFile(context.Background(), "q.sql",
		[]byte("SELECT 1\n"), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, "L999", diag.RuleID)
	assert.Equal(t, "q.sql", diag.FilePath)
	assert.Equal(t, 1, diag.StartLine)
	assert.Equal(t, 1, diag.StartColumn)
	assert.Equal(t, 1, diag.EndLine)
	assert.Equal(t, 7, diag.EndColumn)
	// Raw templating has no correspondence table, so positions are
	// best-effort by contract.
	assert.True(t, diag.Approximate)
}

func TestEngine_LintFile_TranslatesThroughDataform(t *testing.T) {
	// The finding sits after a removed config block; its source line
	// must account for the block that was replaced by newlines.
	source := "config {\n  type: \"table\"\n}\nselect 1\n"

	rule := &spanRule{}
	engine := engineWith(rule)

	result, err := engine.LintFile(context.Background(), "model.sqlx",
		[]byte(source), dataformConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, 4, diag.StartLine)
	assert.Equal(t, 1, diag.StartColumn)
	assert.False(t, diag.Approximate, "the select line is literal material")
}

// spanRule flags the word "select" wherever it appears in the templated SQL.
type spanRule struct{}

func (r *spanRule) ID() string                              { return "L900" }
func (r *spanRule) Name() string                            { return "span-rule" }
func (r *spanRule) Description() string                     { return "test rule" }
func (r *spanRule) DefaultEnabled() bool                    { return true }
func (r *spanRule) DefaultSeverity() config.Severity        { return config.SeverityError }
func (r *spanRule) Check(ctx *RuleContext) ([]Violation, error) {
	idx := indexOf(ctx.SQL, "select")
	if idx < 0 {
		return nil, nil
	}
	return []Violation{{
		Span:    position.NewSpan(idx, idx+6),
		Message: "lower case select",
	}}, nil
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestEngine_LintFile_EmptyFileShortCircuits(t *testing.T) {
	rule := newMockRule("L999", "always-fires")
	rule.violations = []Violation{{Span: position.NewSpan(0, 0), Message: "x"}}

	engine := engineWith(rule)

	result, err := engine.LintFile(context.Background(), "empty.sql",
		nil, config.NewConfig())
	require.NoError(t, err)
	assert.False(t, result.HasIssues())
}

func TestEngine_LintFile_RuleErrorIsolated(t *testing.T) {
	failing := newMockRule("L100", "broken")
	failing.err = errors.New("boom")

	working := newMockRule("L200", "working")
	working.violations = []Violation{{Span: position.NewSpan(0, 1), Message: "ok"}}

	engine := engineWith(failing, working)

	result, err := engine.LintFile(context.Background(), "q.sql",
		[]byte("SELECT 1"), config.NewConfig())
	require.NoError(t, err)

	assert.Len(t, result.Diagnostics, 1)
	require.Contains(t, result.RuleErrors, "L100")
	assert.ErrorContains(t, result.RuleErrors["L100"], "boom")
}

func TestEngine_LintFile_InvalidViolationSpanRecorded(t *testing.T) {
	rule := newMockRule("L300", "bad-span")
	rule.violations = []Violation{{Span: position.NewSpan(0, 9999), Message: "x"}}

	engine := engineWith(rule)

	result, err := engine.LintFile(context.Background(), "q.sql",
		[]byte("SELECT 1"), config.NewConfig())
	require.NoError(t, err)

	assert.Empty(t, result.Diagnostics)
	require.Contains(t, result.RuleErrors, "L300")
	assert.ErrorIs(t, result.RuleErrors["L300"], position.ErrInvalidSpan)
}

func TestEngine_LintFile_UnknownTemplater(t *testing.T) {
	engine := engineWith()

	cfg := config.NewConfig()
	cfg.Templater = "jinja"

	_, err := engine.LintFile(context.Background(), "q.sql", []byte("SELECT 1"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jinja")
}

func TestEngine_LintFile_DiagnosticsSorted(t *testing.T) {
	rule := newMockRule("L400", "multi")
	rule.violations = []Violation{
		{Span: position.NewSpan(9, 10), Message: "second line"},
		{Span: position.NewSpan(0, 1), Message: "first line"},
	}

	engine := engineWith(rule)

	result, err := engine.LintFile(context.Background(), "q.sql",
		[]byte("SELECT 1\nFROM t\n"), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, "first line", result.Diagnostics[0].Message)
	assert.Equal(t, "second line", result.Diagnostics[1].Message)
}

func TestFileResult_Counters(t *testing.T) {
	fr := &FileResult{Diagnostics: []Diagnostic{
		{Approximate: true},
		{Approximate: false},
	}}

	assert.True(t, fr.HasIssues())
	assert.Equal(t, 2, fr.IssueCount())
	assert.Equal(t, 1, fr.ApproximateCount())
}
