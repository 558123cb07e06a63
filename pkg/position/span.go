// Package position maps byte positions between a source SQL file and its
// templated (expanded) form. A Mapper owns both texts plus an optional
// correspondence table produced by a templater, and answers line/column
// and span-translation queries so that diagnostics raised against the
// templated text can point at the line the user actually wrote.
package position

import "fmt"

// Span is a half-open [Start, End) byte range within one specific text.
// Offsets in a Span are never meaningful across texts without translation.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty returns true if the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// String renders the span in slice notation.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// SegmentKind classifies how a templated region relates to its source region.
type SegmentKind uint8

const (
	// KindLiteral marks a region copied byte-for-byte from the source.
	// Only literal segments permit exact position translation.
	KindLiteral SegmentKind = iota

	// KindTransformed marks a region whose content was changed by
	// template expansion (substituted, removed, or generated).
	KindTransformed
)

// String returns the kind as a short lowercase tag.
func (k SegmentKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindTransformed:
		return "transformed"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Segment records the correspondence between one span of the source text
// and one span of the templated text.
//
// Across an ordered segment table the templated spans must be contiguous,
// non-overlapping, and together cover the whole templated text. Source
// spans carry no ordering guarantee: templates may loop, reorder, or drop
// source material, so consecutive segments can point backwards into the
// source.
type Segment struct {
	Kind      SegmentKind
	Source    Span
	Templated Span
}

// Literal builds a literal segment for the given source and templated spans.
func Literal(source, templated Span) Segment {
	return Segment{Kind: KindLiteral, Source: source, Templated: templated}
}

// Transformed builds a transformed segment for the given source and
// templated spans.
func Transformed(source, templated Span) Segment {
	return Segment{Kind: KindTransformed, Source: source, Templated: templated}
}
