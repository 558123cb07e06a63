package position

import (
	"errors"
	"fmt"
)

// ErrInvalidOffset indicates an offset outside [0, len(text)]. Offsets are
// never clamped: a silently adjusted offset would mis-report diagnostic
// locations.
var ErrInvalidOffset = errors.New("offset out of range")

// ErrInvalidSpan indicates a span with start > end or a bound outside the
// text it refers to.
var ErrInvalidSpan = errors.New("invalid span")

// MalformedTableError reports a correspondence table that violates the
// contiguity or bounds invariants over the region a query touched.
// Detection is lazy: only queries that depend on the broken region fail,
// so unrelated queries against the same table still succeed.
type MalformedTableError struct {
	// Index is the position of the offending segment in the table.
	Index int

	// Reason describes the violated invariant.
	Reason string
}

// Error implements the error interface.
func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("malformed correspondence table at segment %d: %s", e.Index, e.Reason)
}
