package position

import "fmt"

// Mapper relates a source SQL text to its templated form. It is built
// once per file by the collaborator that ran the templater, then queried
// read-only by the analyzer.
//
// A Mapper is immutable after construction: the two newline indexes are
// computed up front and no method mutates state, so a single Mapper may
// be shared across goroutines without synchronization.
type Mapper struct {
	source    string
	templated string
	table     []Segment

	sourceNewlines    *NewlineIndex
	templatedNewlines *NewlineIndex
}

// NewMapper builds a Mapper for the given source text.
//
// An empty templated text means the file was not templated and the
// templated view equals the source view. A nil or empty table means no
// correspondence information is available; span translation then falls
// back to an inexact identity mapping.
func NewMapper(source, templated string, table []Segment) *Mapper {
	if templated == "" {
		templated = source
	}

	return &Mapper{
		source:            source,
		templated:         templated,
		table:             table,
		sourceNewlines:    NewNewlineIndex(source),
		templatedNewlines: NewNewlineIndex(templated),
	}
}

// Source returns the original, user-authored text.
func (m *Mapper) Source() string {
	return m.source
}

// Templated returns the text after template expansion.
func (m *Mapper) Templated() string {
	return m.templated
}

// HasContent reports whether there is any templated content to analyze.
// Callers use this for early-exit before running rules.
func (m *Mapper) HasContent() bool {
	return m != nil && len(m.templated) > 0
}

// IsTemplated reports whether a correspondence table is present, i.e.
// whether the templated text may differ from the source.
func (m *Mapper) IsTemplated() bool {
	return len(m.table) > 0
}

// SourcePosition resolves a byte offset in the source text to a 1-based
// line and column.
func (m *Mapper) SourcePosition(offset int) (Position, error) {
	return m.sourceNewlines.LineCol(offset)
}

// TemplatedPosition resolves a byte offset in the templated text to a
// 1-based line and column.
func (m *Mapper) TemplatedPosition(offset int) (Position, error) {
	return m.templatedNewlines.LineCol(offset)
}

// TranslateSpan converts a span of the templated text into the
// best-matching span of the source text.
//
// The second return value reports exactness: true means the source span
// corresponds byte-for-byte to the requested templated span; false means
// the result is a best-effort enclosing region. Without a correspondence
// table the span is returned unchanged and marked inexact.
func (m *Mapper) TranslateSpan(tpl Span) (Span, bool, error) {
	if tpl.Start < 0 || tpl.Start > tpl.End || tpl.End > len(m.templated) {
		return Span{}, false, fmt.Errorf("templated span %v in text of length %d: %w",
			tpl, len(m.templated), ErrInvalidSpan)
	}

	// No table: the texts are assumed identical, but without the table's
	// authority no exactness claim is made.
	if len(m.table) == 0 {
		return tpl, false, nil
	}

	// Locate the window of segments the span touches. The start segment
	// is the first whose templated span ends strictly past the span
	// start; the stop segment is the first at or after it whose
	// templated span end reaches the span end. Either search falls back
	// to the final segment, which handles zero-width spans at
	// end-of-file.
	startIdx := len(m.table) - 1
	for i, seg := range m.table {
		if seg.Templated.End > tpl.Start {
			startIdx = i
			break
		}
	}

	stopIdx := len(m.table) - 1
	for i := startIdx; i < len(m.table); i++ {
		if m.table[i].Templated.End >= tpl.End {
			stopIdx = i
			break
		}
	}

	window := m.table[startIdx : stopIdx+1]
	if err := m.checkWindow(startIdx, window); err != nil {
		return Span{}, false, err
	}

	// Exact only if every segment in the window is literal.
	exact := true
	for _, seg := range window {
		if seg.Kind != KindLiteral {
			exact = false
			break
		}
	}

	first := window[0]
	last := window[len(window)-1]

	var start int
	if first.Kind == KindLiteral {
		start = first.Source.Start + (tpl.Start - first.Templated.Start)
	} else {
		// Coarse anchor: the whole segment's source start.
		start = first.Source.Start
	}

	var end int
	if last.Kind == KindLiteral {
		end = last.Source.End - (last.Templated.End - tpl.End)
	} else {
		end = last.Source.End
	}

	// A reversed result means the window mixes reordered or repeated
	// segments (loop bodies), so source position does not move
	// monotonically with templated position. Fall back to the widest
	// enclosing source span, which is never exact.
	if start > end {
		start = window[0].Source.Start
		end = window[0].Source.End
		for _, seg := range window[1:] {
			if seg.Source.Start < start {
				start = seg.Source.Start
			}
			if seg.Source.End > end {
				end = seg.Source.End
			}
		}
		return NewSpan(start, end), false, nil
	}

	return NewSpan(start, end), exact, nil
}

// checkWindow validates the table invariants over the segments a query
// actually depends on. Validation is deliberately scoped to the window so
// that a localized defect in the table only fails the queries that touch
// it.
func (m *Mapper) checkWindow(startIdx int, window []Segment) error {
	for i, seg := range window {
		if seg.Templated.Start > seg.Templated.End {
			return &MalformedTableError{Index: startIdx + i, Reason: "templated span reversed"}
		}
		if seg.Templated.Start < 0 || seg.Templated.End > len(m.templated) {
			return &MalformedTableError{Index: startIdx + i, Reason: "templated span out of bounds"}
		}
		if seg.Source.Start > seg.Source.End {
			return &MalformedTableError{Index: startIdx + i, Reason: "source span reversed"}
		}
		if seg.Source.Start < 0 || seg.Source.End > len(m.source) {
			return &MalformedTableError{Index: startIdx + i, Reason: "source span out of bounds"}
		}
		if i > 0 && seg.Templated.Start != window[i-1].Templated.End {
			return &MalformedTableError{
				Index:  startIdx + i,
				Reason: "templated spans not contiguous",
			}
		}
	}
	return nil
}
