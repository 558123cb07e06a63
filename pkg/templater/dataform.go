package templater

import (
	"context"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/position"
)

// NameDataform is the registry name of the dataform templater.
const NameDataform = "dataform"

// expansionPattern matches the two SQLX constructs the templater
// rewrites: config/js blocks and ${ref(...)} calls. The body of a block
// is captured so its newlines can be preserved; ref captures one or two
// quoted arguments.
const expansionPattern = `(?<block>(?:config|js)\s*\{(?<body>[^}]*)\})` +
	`|\$\{ref\('(?<first>[^']+)'(?:\s*,\s*'(?<second>[^']+)')?\)\}`

// DataformTemplater expands dataform SQLX files.
//
// It removes config { ... } and js { ... } blocks, substituting one
// newline per newline in the block body so line numbering is preserved,
// and rewrites ${ref('table')} and ${ref('dataset', 'table')} calls into
// fully-qualified backticked identifiers using the project and dataset
// configured under templaters.dataform.
//
// Each rewrite is recorded in the mapper's correspondence table: runs of
// untouched SQL become literal segments and every substitution becomes a
// transformed segment, so spans in the expanded SQL translate back to
// the SQLX the user wrote.
type DataformTemplater struct {
	pattern *regexp2.Regexp
}

// NewDataformTemplater creates a dataform templater.
func NewDataformTemplater() *DataformTemplater {
	return &DataformTemplater{
		pattern: regexp2.MustCompile(expansionPattern, 0),
	}
}

// Name implements Templater.
func (t *DataformTemplater) Name() string {
	return NameDataform
}

// Process implements Templater.
func (t *DataformTemplater) Process(_ context.Context, req Request) (*Result, error) {
	section := req.Config.TemplaterSection(NameDataform)

	exp := newExpansion(req.Source)

	match, err := t.pattern.FindStringMatch(req.Source)
	if err != nil {
		return nil, fmt.Errorf("dataform templater: match %s: %w", req.Path, err)
	}

	for match != nil {
		start, end := exp.byteRange(match)

		if blockBody, ok := groupValue(match, "body"); ok || groupMatched(match, "block") {
			// Replace the block with its own newlines only.
			exp.emitTransformed(start, end, strings.Repeat("\n", strings.Count(blockBody, "\n")))
		} else {
			table, warning := t.resolveRef(match, section)
			if warning != "" {
				exp.warn(warning)
			}
			exp.emitTransformed(start, end, table)
		}

		match, err = t.pattern.FindNextMatch(match)
		if err != nil {
			return nil, fmt.Errorf("dataform templater: match %s: %w", req.Path, err)
		}
	}

	templated, segments := exp.finish()

	return &Result{
		Mapper:   position.NewMapper(req.Source, templated, segments),
		Warnings: exp.warnings,
	}, nil
}

// resolveRef builds the backticked project.dataset.table identifier for
// a matched ref() call.
func (t *DataformTemplater) resolveRef(match *regexp2.Match, section config.TemplaterConfig) (string, string) {
	first, _ := groupValue(match, "first")
	second, hasSecond := groupValue(match, "second")

	dataset := section.DatasetID
	table := first
	if hasSecond {
		dataset = first
		table = second
	}

	var warning string
	switch {
	case section.ProjectID == "":
		warning = "dataform templater: templaters.dataform.project_id is not configured"
	case dataset == "":
		warning = "dataform templater: templaters.dataform.dataset_id is not configured"
	}

	return fmt.Sprintf("`%s.%s.%s`", section.ProjectID, dataset, table), warning
}

// groupValue returns the text captured by the named group and whether
// the group participated in the match.
func groupValue(match *regexp2.Match, name string) (string, bool) {
	group := match.GroupByName(name)
	if group == nil || len(group.Captures) == 0 {
		return "", false
	}
	return group.String(), true
}

// groupMatched reports whether the named group participated in the match.
func groupMatched(match *regexp2.Match, name string) bool {
	_, ok := groupValue(match, name)
	return ok
}

// expansion accumulates the templated output and its correspondence
// table during a single left-to-right pass over the source.
type expansion struct {
	source   string
	out      strings.Builder
	segments []position.Segment
	warnings []string

	// runeToByte maps rune index to byte offset; regexp2 reports match
	// positions in runes, while the mapper works in bytes.
	runeToByte []int

	// lastByte is the end of the source region consumed so far.
	lastByte int
}

func newExpansion(source string) *expansion {
	offsets := make([]int, 0, len(source)+1)
	for i := range source {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(source))

	return &expansion{source: source, runeToByte: offsets}
}

// byteRange converts a match's rune-based extent into byte offsets.
func (e *expansion) byteRange(match *regexp2.Match) (int, int) {
	return e.runeToByte[match.Index], e.runeToByte[match.Index+match.Length]
}

// emitTransformed first flushes any pending literal run up to start,
// then appends the replacement text as a transformed segment covering
// source [start, end).
func (e *expansion) emitTransformed(start, end int, replacement string) {
	e.flushLiteral(start)

	tplStart := e.out.Len()
	e.out.WriteString(replacement)
	e.segments = append(e.segments, position.Transformed(
		position.NewSpan(start, end),
		position.NewSpan(tplStart, e.out.Len()),
	))
	e.lastByte = end
}

// flushLiteral copies the untouched source run [lastByte, until) into
// the output as a literal segment.
func (e *expansion) flushLiteral(until int) {
	if until <= e.lastByte {
		return
	}

	tplStart := e.out.Len()
	e.out.WriteString(e.source[e.lastByte:until])
	e.segments = append(e.segments, position.Literal(
		position.NewSpan(e.lastByte, until),
		position.NewSpan(tplStart, e.out.Len()),
	))
	e.lastByte = until
}

// finish flushes the trailing literal and returns the templated text
// with its segment table.
func (e *expansion) finish() (string, []position.Segment) {
	e.flushLiteral(len(e.source))
	return e.out.String(), e.segments
}

func (e *expansion) warn(msg string) {
	e.warnings = append(e.warnings, msg)
}
