package buffer

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is a mutable text store with line-aware offset addressing.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []int
	documentID string
	revisionID RevisionID
	path       string
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return NewBufferFromString("")
}

// NewBufferFromString creates a buffer with initial content.
// Line endings are normalized to LF.
func NewBufferFromString(s string) *Buffer {
	s = normalizeLineEndings(s)
	return &Buffer{
		text:       s,
		lineStarts: indexLines(s),
		documentID: uuid.NewString(),
		revisionID: NewRevisionID(),
	}
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data)), nil
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// indexLines computes the offsets of all line starts.
// The first line always starts at offset 0.
func indexLines(s string) []int {
	starts := make([]int, 1, 16)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextRange returns text in the given byte range, clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end = clampRange(start, end, len(b.text))
	return b.text[start:end]
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// LineCount returns the number of lines.
// A trailing newline starts a final empty line.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lineStarts))
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end := b.lineBounds(line)
	return b.text[start:end]
}

// LineStartOffset returns the byte offset of the start of a line.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, _ := b.lineBounds(line)
	return start
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, end := b.lineBounds(line)
	return end
}

// lineBounds returns the [start, end) byte range of a line, excluding
// the trailing newline. Out-of-range lines clamp to the last line.
// Callers must hold b.mu.
func (b *Buffer) lineBounds(line uint32) (int, int) {
	return lineBounds(b.text, b.lineStarts, line)
}

func lineBounds(text string, lineStarts []int, line uint32) (int, int) {
	if int(line) >= len(lineStarts) {
		line = uint32(len(lineStarts) - 1)
	}
	start := lineStarts[line]
	end := len(text)
	if int(line)+1 < len(lineStarts) {
		end = lineStarts[line+1] - 1
	}
	return start, end
}

// Coordinate Conversion

// OffsetToPoint converts a byte offset to line/column.
// Offsets outside the buffer clamp to the nearest valid position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return offsetToPoint(b.text, b.lineStarts, offset)
}

// PointToOffset converts line/column to byte offset.
// Columns past the end of a line clamp to the line end.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pointToOffset(b.text, b.lineStarts, point)
}

func offsetToPoint(text string, lineStarts []int, offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	// Find the last line start at or before offset.
	line := sort.Search(len(lineStarts), func(i int) bool {
		return lineStarts[i] > offset
	}) - 1
	return Point{Line: uint32(line), Column: uint32(offset - lineStarts[line])}
}

func pointToOffset(text string, lineStarts []int, point Point) ByteOffset {
	line := int(point.Line)
	if line >= len(lineStarts) {
		line = len(lineStarts) - 1
	}
	start := lineStarts[line]
	end := len(text)
	if line+1 < len(lineStarts) {
		end = lineStarts[line+1] - 1
	}
	offset := start + int(point.Column)
	if offset > end {
		offset = end
	}
	return offset
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.text) {
		return 0, ErrOffsetOutOfRange
	}
	b.apply(offset, offset, text)
	return offset + len(normalizeLineEndings(text)), nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > len(b.text) {
		return ErrRangeInvalid
	}
	b.apply(start, end, "")
	return nil
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > len(b.text) {
		return 0, ErrRangeInvalid
	}
	b.apply(start, end, text)
	return start + len(normalizeLineEndings(text)), nil
}

// apply performs a validated splice and re-indexes the buffer.
// Callers must hold b.mu.
func (b *Buffer) apply(start, end int, text string) {
	text = normalizeLineEndings(text)
	b.text = b.text[:start] + text + b.text[end:]
	b.lineStarts = indexLines(b.text)
	b.revisionID = NewRevisionID()
}

// Buffer State

// DocumentID returns the stable identity of this buffer.
func (b *Buffer) DocumentID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.documentID
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Path returns the file path associated with this buffer, if any.
func (b *Buffer) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// SetPath associates a file path with this buffer.
func (b *Buffer) SetPath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.path = path
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{
		text:       b.text,
		lineStarts: b.lineStarts, // rebuilt on every edit, safe to share
		documentID: b.documentID,
		revisionID: b.revisionID,
	}
}

// clampRange clamps a byte range to [0, max] with start <= end.
func clampRange(start, end, max int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > max {
		end = max
	}
	if start > end {
		start = end
	}
	return start, end
}
