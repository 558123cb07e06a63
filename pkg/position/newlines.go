package position

import (
	"sort"
	"strings"
)

// NewlineIndex holds the precomputed offsets of every newline character in
// a text, enabling line/column lookups without re-scanning the text on
// each query.
type NewlineIndex struct {
	offsets []int
	textLen int
}

// NewNewlineIndex scans text once and records the byte offset of each '\n'.
func NewNewlineIndex(text string) *NewlineIndex {
	idx := &NewlineIndex{textLen: len(text)}

	from := 0
	for {
		rel := strings.IndexByte(text[from:], '\n')
		if rel < 0 {
			break
		}
		idx.offsets = append(idx.offsets, from+rel)
		from += rel + 1
	}

	return idx
}

// Position is a 1-based line and column pair. Column counts bytes since
// (and excluding) the preceding newline.
type Position struct {
	Line   int
	Column int
}

// LineCol resolves a byte offset to its 1-based line and column.
//
// Offsets up to and including the text length are valid; len(text) is the
// end-of-file position immediately after the last byte. Negative offsets
// and offsets past end-of-file return ErrInvalidOffset.
func (ix *NewlineIndex) LineCol(offset int) (Position, error) {
	if offset < 0 || offset > ix.textLen {
		return Position{}, ErrInvalidOffset
	}

	// Number of newlines strictly before the offset.
	n := sort.SearchInts(ix.offsets, offset)

	if n == 0 {
		return Position{Line: 1, Column: offset + 1}, nil
	}
	return Position{Line: n + 1, Column: offset - ix.offsets[n-1]}, nil
}

// Count returns the number of newlines recorded in the index.
func (ix *NewlineIndex) Count() int {
	return len(ix.offsets)
}
