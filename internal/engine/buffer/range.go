package buffer

import "fmt"

// Range represents a half-open byte range [Start, End) in the buffer.
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange creates a range, normalizing so that Start <= End.
func NewRange(start, end ByteOffset) Range {
	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains returns true if the offset is within [Start, End).
func (r Range) Contains(offset ByteOffset) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Overlaps returns true if the ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
