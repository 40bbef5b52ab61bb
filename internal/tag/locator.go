package tag

import "strings"

// Locator finds tag regions relative to a cursor offset and owns the
// single live Match describing the most recent result.
//
// The delimiter pair is assumed valid (non-empty, open != close);
// enforcement belongs to the configuration boundary, not the scanner.
// A Locator is not safe for concurrent use; a single logical owner
// must serialize calls.
type Locator struct {
	open  string
	close string
	wrap  bool
	match *Match
}

// NewLocator creates a locator for the given delimiter pair.
func NewLocator(open, close string, wrap bool) *Locator {
	return &Locator{open: open, close: close, wrap: wrap}
}

// Delimiters returns the current delimiter pair.
func (l *Locator) Delimiters() (open, close string) {
	return l.open, l.close
}

// SetDelimiters replaces the delimiter pair and clears any resolved
// match, since its offsets were computed against the old pair.
func (l *Locator) SetDelimiters(open, close string) {
	l.open = open
	l.close = close
	l.Reset()
}

// Wrap reports whether wrap-around retry is enabled.
func (l *Locator) Wrap() bool {
	return l.wrap
}

// SetWrap enables or disables wrap-around retry.
func (l *Locator) SetWrap(wrap bool) {
	l.wrap = wrap
}

// Locate scans text from the cursor offset in the given direction and
// updates the locator's Match. It returns true if a balanced region
// was found.
//
// The wrapped argument is the wrap guard: callers pass false, and
// Locate passes true on its own single retry from the opposite buffer
// boundary. Tracking the guard as a parameter means a wrapped scan can
// never wrap again, regardless of what happened to the match state in
// between.
func (l *Locator) Locate(text string, cursor int, dir Direction, wrapped bool) bool {
	var m *Match
	switch dir {
	case Forward:
		m = scanForward(text, cursor, l.open, l.close)
	case Backward:
		m = scanBackward(text, cursor, l.open, l.close)
	}

	if m != nil {
		l.match = m
		return true
	}

	if l.wrap && !wrapped {
		origin := 0
		if dir == Backward {
			origin = len(text) - 1
		}
		return l.Locate(text, origin, dir, true)
	}

	l.match = nil
	return false
}

// scanForward walks text from cursor toward the end. The first opening
// delimiter initializes the match; every closing delimiter afterwards
// updates the running region end, and one entry is popped from each
// stack per close so that the region completes exactly when nesting
// balances. Closing delimiters seen before any opening are ignored.
func scanForward(text string, cursor int, open, close string) *Match {
	if cursor < 0 {
		cursor = 0
	}

	var m *Match
	for i := cursor; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], open):
			if m == nil {
				m = newMatch()
				m.ParentStart = i
				m.InnerStart = i + len(open)
			}
			m.openings = append(m.openings, i)
			i += len(open)

		case m != nil && strings.HasPrefix(text[i:], close):
			m.closings = append(m.closings, i)
			// Last closing seen wins; once nesting balances this is
			// the outermost close.
			m.InnerEnd = i
			m.ParentEnd = i + len(close)
			if m.pairOff() {
				m.resolve(text)
				return m
			}
			i += len(close)

		default:
			i++
		}
	}

	if m != nil {
		m.phase = PhaseFailed
	}
	return nil
}

// scanBackward is the mirror image: the first closing delimiter found
// scanning backward initializes the match, opening delimiters update
// the running region start, and pairing pops one entry from each stack
// per open. Opening delimiters seen before any closing are ignored.
//
// limit is the start offset of the most recently matched delimiter;
// a candidate match must end at or before it so that delimiter
// occurrences never overlap.
func scanBackward(text string, cursor int, open, close string) *Match {
	if cursor >= len(text) {
		cursor = len(text) - 1
	}

	var m *Match
	limit := len(text)
	for i := cursor; i >= 0; i-- {
		switch {
		case i+len(close) <= limit && strings.HasPrefix(text[i:], close):
			if m == nil {
				m = newMatch()
				m.ParentEnd = i + len(close)
				m.InnerEnd = i
			}
			m.closings = append(m.closings, i)
			limit = i

		case m != nil && i+len(open) <= limit && strings.HasPrefix(text[i:], open):
			m.openings = append(m.openings, i)
			// Last opening seen wins; once nesting balances this is
			// the outermost open.
			m.InnerStart = i + len(open)
			m.ParentStart = i
			limit = i
			if m.pairOff() {
				m.resolve(text)
				return m
			}
		}
	}

	if m != nil {
		m.phase = PhaseFailed
	}
	return nil
}

// Current returns the live Match, or nil if none.
func (l *Locator) Current() *Match {
	return l.match
}

// HasMatch returns true if a resolved match is live.
func (l *Locator) HasMatch() bool {
	return l.match != nil && l.match.IsResolved()
}

// Outer returns the bounds of the current region including delimiters.
func (l *Locator) Outer() (Range, bool) {
	if !l.HasMatch() {
		return Range{}, false
	}
	return l.match.Outer(), true
}

// Inner returns the bounds of the current region's content.
func (l *Locator) Inner() (Range, bool) {
	if !l.HasMatch() {
		return Range{}, false
	}
	return l.match.Inner(), true
}

// Content returns the current region's content.
func (l *Locator) Content() (string, bool) {
	if !l.HasMatch() {
		return "", false
	}
	return l.match.Content, true
}

// Reset discards the current match. Callers invoke this on file
// switches and after structural edits invalidate offsets.
func (l *Locator) Reset() {
	l.match = nil
}

// IsSelectionTag reports whether the given selection text itself spans
// a delimiter pair: it starts with the opening delimiter and ends with
// the closing delimiter. No scan is required.
func (l *Locator) IsSelectionTag(selText string) bool {
	if len(selText) < len(l.open)+len(l.close) {
		return false
	}
	return strings.HasPrefix(selText, l.open) && strings.HasSuffix(selText, l.close)
}

// Removal returns the outer span to replace and the content to replace
// it with, implementing content-preserving tag removal. The caller
// applies the edit and then calls Reset, since the edit shifts every
// offset after the region.
func (l *Locator) Removal() (Range, string, bool) {
	if !l.HasMatch() {
		return Range{}, "", false
	}
	return l.match.Outer(), l.match.Content, true
}

// RemoveTag replaces the current region's outer span with its content
// and clears the match, whose offsets no longer describe the returned
// text. The removed range refers to the input text.
func (l *Locator) RemoveTag(text string) (string, Range, bool) {
	r, content, ok := l.Removal()
	if !ok {
		return text, Range{}, false
	}
	l.Reset()
	return text[:r.Start] + content + text[r.End:], r, true
}

// StripAll removes every tag region from text, innermost content
// preserved, by repeatedly locating from the start of the buffer.
// Nested regions are handled because removing an outer region exposes
// the regions inside its content to the next pass.
func StripAll(text, open, close string) string {
	loc := NewLocator(open, close, false)
	for loc.Locate(text, 0, Forward, true) {
		text, _, _ = loc.RemoveTag(text)
	}
	return text
}
