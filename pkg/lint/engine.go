package lint

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
	"github.com/hiracky16/sqlfluff/pkg/templater"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Path is the file that was linted.
	Path string

	// Diagnostics contains all issues found, ordered by source position.
	Diagnostics []Diagnostic

	// TemplaterWarnings contains non-fatal issues from template expansion.
	TemplaterWarnings []string

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// ApproximateCount returns the number of diagnostics whose source
// location is a best-effort region rather than an exact match.
func (fr *FileResult) ApproximateCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.Approximate {
			count++
		}
	}
	return count
}

// Engine coordinates template expansion and rule execution for linting.
type Engine struct {
	// Templaters holds the available template engines.
	Templaters *templater.Registry

	// Rules holds all available rules.
	Rules *Registry
}

// NewEngine creates a new Engine with the given templater and rule registries.
func NewEngine(templaters *templater.Registry, rules *Registry) *Engine {
	return &Engine{
		Templaters: templaters,
		Rules:      rules,
	}
}

// LintFile expands and lints a single file.
//
// The templater is selected by cfg.Templater. Rules run against the
// templated SQL; every violation span is translated back through the
// mapper into a source position before it becomes a Diagnostic. A
// malformed correspondence region fails only the diagnostics that touch
// it (recorded in RuleErrors), not the whole file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	var templaterName string
	if cfg != nil {
		templaterName = cfg.Templater
	}

	tpl, err := e.Templaters.New(templaterName)
	if err != nil {
		return nil, err
	}

	processed, err := tpl.Process(ctx, templater.Request{
		Path:   path,
		Source: string(content),
		Config: cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("templating error: %w", err)
	}

	result := &FileResult{
		Path:              path,
		TemplaterWarnings: processed.Warnings,
		RuleErrors:        make(map[string]error),
	}

	mapper := processed.Mapper
	if !mapper.HasContent() {
		// Nothing to analyze.
		return result, nil
	}

	resolved := ResolveRules(e.Rules, cfg)

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, mapper, cfg, rr.Config)

		violations, err := rr.Rule.Check(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for _, v := range violations {
			diag, err := e.toDiagnostic(path, mapper, rr, v)
			if err != nil {
				result.RuleErrors[rr.Rule.ID()] = err
				continue
			}
			result.Diagnostics = append(result.Diagnostics, diag)
		}
	}

	slices.SortFunc(result.Diagnostics, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.StartLine, b.StartLine); c != 0 {
			return c
		}
		if c := cmp.Compare(a.StartColumn, b.StartColumn); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})

	return result, nil
}

// toDiagnostic translates a templated-text violation into a
// source-positioned diagnostic.
func (e *Engine) toDiagnostic(
	path string,
	mapper *position.Mapper,
	rr ResolvedRule,
	v Violation,
) (Diagnostic, error) {
	srcSpan, exact, err := mapper.TranslateSpan(v.Span)
	if err != nil {
		return Diagnostic{}, fmt.Errorf("translate span %v: %w", v.Span, err)
	}

	start, err := mapper.SourcePosition(srcSpan.Start)
	if err != nil {
		return Diagnostic{}, fmt.Errorf("resolve span start: %w", err)
	}
	end, err := mapper.SourcePosition(srcSpan.End)
	if err != nil {
		return Diagnostic{}, fmt.Errorf("resolve span end: %w", err)
	}

	return Diagnostic{
		RuleID:      rr.Rule.ID(),
		RuleName:    rr.Rule.Name(),
		Message:     v.Message,
		Severity:    rr.Severity,
		FilePath:    path,
		StartLine:   start.Line,
		StartColumn: start.Column,
		EndLine:     end.Line,
		EndColumn:   end.Column,
		Approximate: !exact,
		Suggestion:  v.Suggestion,
	}, nil
}
