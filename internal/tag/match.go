package tag

import (
	"fmt"

	"github.com/dshills/tagnav/internal/engine/buffer"
)

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Direction selects which way a scan walks the text.
type Direction uint8

const (
	// Forward scans toward the end of the buffer.
	Forward Direction = iota
	// Backward scans toward the start of the buffer.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Phase is the state of a match's bracket-matching machine.
type Phase uint8

const (
	// PhaseScanning means delimiters have been seen but the region
	// has not balanced yet.
	PhaseScanning Phase = iota
	// PhaseResolved means the region balanced; bounds and content are final.
	PhaseResolved
	// PhaseFailed means the scan exhausted the buffer without balancing.
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseScanning:
		return "scanning"
	case PhaseResolved:
		return "resolved"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Match holds the locator's current best-known region plus the
// in-progress bracket-matching bookkeeping. Offsets are -1 until the
// scan determines them. Once the phase is PhaseResolved,
//
//	ParentStart < InnerStart <= InnerEnd < ParentEnd
//
// holds, Content carries the text between the delimiters, and both
// offset stacks are empty.
type Match struct {
	// ParentStart and ParentEnd bound the full region including delimiters.
	ParentStart int
	ParentEnd   int

	// InnerStart and InnerEnd bound the content between the delimiters.
	InnerStart int
	InnerEnd   int

	// Content is the text between InnerStart and InnerEnd, populated
	// only once the region balances.
	Content string

	// openings and closings hold offsets of delimiters seen but not
	// yet paired off. Used only while scanning.
	openings []int
	closings []int

	phase Phase
}

// newMatch creates a match with all bounds undetermined.
func newMatch() *Match {
	return &Match{
		ParentStart: -1,
		ParentEnd:   -1,
		InnerStart:  -1,
		InnerEnd:    -1,
		phase:       PhaseScanning,
	}
}

// Phase returns the match's current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// IsResolved returns true if the region balanced.
func (m *Match) IsResolved() bool {
	return m.phase == PhaseResolved
}

// Outer returns the region bounds including delimiters.
func (m *Match) Outer() Range {
	return Range{Start: m.ParentStart, End: m.ParentEnd}
}

// Inner returns the content bounds excluding delimiters.
func (m *Match) Inner() Range {
	return Range{Start: m.InnerStart, End: m.InnerEnd}
}

// Depth returns the current unmatched nesting depth.
// Zero once the match resolves.
func (m *Match) Depth() int {
	return len(m.openings)
}

// pairOff pops one offset from each stack, treating the most recent
// unmatched opening as paired with the most recent unmatched closing.
// Reports whether both stacks are empty afterwards.
func (m *Match) pairOff() bool {
	if len(m.openings) > 0 && len(m.closings) > 0 {
		m.openings = m.openings[:len(m.openings)-1]
		m.closings = m.closings[:len(m.closings)-1]
	}
	return len(m.openings) == 0 && len(m.closings) == 0
}

// resolve finalizes the match against the scanned text.
func (m *Match) resolve(text string) {
	m.Content = text[m.InnerStart:m.InnerEnd]
	m.phase = PhaseResolved
}

// String returns a human-readable representation of the match.
func (m *Match) String() string {
	return fmt.Sprintf("Match(%s outer=[%d,%d) inner=[%d,%d))",
		m.phase, m.ParentStart, m.ParentEnd, m.InnerStart, m.InnerEnd)
}
