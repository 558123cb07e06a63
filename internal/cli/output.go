package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hiracky16/sqlfluff/internal/ui/pretty"
	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/lint"
	"github.com/hiracky16/sqlfluff/pkg/runner"
)

type resultWriterOptions struct {
	Format      config.OutputFormat
	RuleFormat  config.RuleFormat
	ColorMode   string
	ShowContext bool
}

// resultWriter renders a runner result to a writer in the configured format.
type resultWriter struct {
	out     io.Writer
	opts    resultWriterOptions
	styles  *pretty.Styles
	width   int
	sources map[string][]string
}

func newResultWriter(out io.Writer, opts resultWriterOptions) *resultWriter {
	if opts.Format == "" {
		opts.Format = config.FormatText
	}
	if opts.RuleFormat == "" {
		opts.RuleFormat = config.RuleFormatCombined
	}

	return &resultWriter{
		out:     out,
		opts:    opts,
		styles:  pretty.NewStyles(pretty.IsColorEnabled(opts.ColorMode, out)),
		width:   pretty.DetectWidth(out),
		sources: make(map[string][]string),
	}
}

func (w *resultWriter) Write(result *runner.Result) error {
	switch w.opts.Format {
	case config.FormatJSON:
		return w.writeJSON(result)
	case config.FormatSummary:
		_, err := io.WriteString(w.out, w.styles.FormatSummary(result.Stats))
		return err
	case config.FormatText:
		return w.writeText(result)
	default:
		return fmt.Errorf("unknown output format %q", w.opts.Format)
	}
}

func (w *resultWriter) writeText(result *runner.Result) error {
	var builder strings.Builder

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			builder.WriteString("  " + w.styles.FilePath.Render(outcome.Path) + "  " +
				w.styles.Failure.Render("error") + "  " + outcome.Error.Error() + "\n")
			continue
		}
		if outcome.Result == nil {
			continue
		}

		for _, warning := range outcome.Result.TemplaterWarnings {
			builder.WriteString(w.styles.FormatTemplaterWarning(outcome.Path, warning))
		}

		if len(outcome.Result.Diagnostics) == 0 && len(outcome.Result.RuleErrors) == 0 {
			continue
		}

		builder.WriteString(w.styles.FormatFileHeader(outcome.Path, len(outcome.Result.Diagnostics)))
		builder.WriteString("\n")

		for i := range outcome.Result.Diagnostics {
			diag := &outcome.Result.Diagnostics[i]
			sourceLine := ""
			if w.opts.ShowContext {
				sourceLine = w.clip(w.sourceLine(diag.FilePath, diag.StartLine))
			}
			builder.WriteString(w.styles.FormatDiagnosticWithFormat(
				diag, w.opts.ShowContext, sourceLine, w.opts.RuleFormat))
		}

		ruleIDs := make([]string, 0, len(outcome.Result.RuleErrors))
		for ruleID := range outcome.Result.RuleErrors {
			ruleIDs = append(ruleIDs, ruleID)
		}
		slices.Sort(ruleIDs)
		for _, ruleID := range ruleIDs {
			builder.WriteString("    " + w.styles.Dim.Render(
				fmt.Sprintf("rule %s failed: %v", ruleID, outcome.Result.RuleErrors[ruleID])) + "\n")
		}

		builder.WriteString("\n")
	}

	builder.WriteString(w.styles.FormatSummaryOneLine(result.Stats))

	_, err := io.WriteString(w.out, builder.String())
	return err
}

// jsonDiagnostic is the JSON wire form of a diagnostic.
type jsonDiagnostic struct {
	RuleID      string `json:"rule_id"`
	RuleName    string `json:"rule_name"`
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	Path        string `json:"path"`
	StartLine   int    `json:"start_line"`
	StartColumn int    `json:"start_column"`
	EndLine     int    `json:"end_line"`
	EndColumn   int    `json:"end_column"`
	Approximate bool   `json:"approximate"`
	Suggestion  string `json:"suggestion,omitempty"`
}

type jsonOutput struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Stats       runner.Stats     `json:"stats"`
}

func (w *resultWriter) writeJSON(result *runner.Result) error {
	output := jsonOutput{
		Diagnostics: make([]jsonDiagnostic, 0),
		Stats:       result.Stats,
	}

	for _, outcome := range result.Files {
		if outcome.Result == nil {
			continue
		}
		for _, diag := range outcome.Result.Diagnostics {
			output.Diagnostics = append(output.Diagnostics, toJSONDiagnostic(diag))
		}
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func toJSONDiagnostic(diag lint.Diagnostic) jsonDiagnostic {
	return jsonDiagnostic{
		RuleID:      diag.RuleID,
		RuleName:    diag.RuleName,
		Message:     diag.Message,
		Severity:    string(diag.Severity),
		Path:        diag.FilePath,
		StartLine:   diag.StartLine,
		StartColumn: diag.StartColumn,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
		Approximate: diag.Approximate,
		Suggestion:  diag.Suggestion,
	}
}

// clip truncates a context line so the indented output fits the terminal.
func (w *resultWriter) clip(line string) string {
	// Context lines are rendered with an 8-column indent.
	limit := w.width - 8
	if limit < 16 {
		limit = 16
	}
	if len(line) <= limit {
		return line
	}

	// Back off to a rune boundary so a multibyte character is never
	// split mid-sequence.
	for limit > 0 && !utf8.RuneStart(line[limit]) {
		limit--
	}
	return line[:limit]
}

// sourceLine returns the 1-based line of a file, or "" on any failure.
// File contents are cached per writer so each file is read at most once.
func (w *resultWriter) sourceLine(path string, line int) string {
	lines, ok := w.sources[path]
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			w.sources[path] = nil
			return ""
		}
		lines = strings.Split(string(data), "\n")
		w.sources[path] = lines
	}

	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}
