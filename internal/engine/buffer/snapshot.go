package buffer

// Snapshot is an immutable view of a buffer at a single revision.
// Scans operate on a snapshot so that the text cannot shift underneath
// them; offsets computed from a snapshot are valid against the buffer
// only while the buffer's RevisionID still matches.
type Snapshot struct {
	text       string
	lineStarts []int
	documentID string
	revisionID RevisionID
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the given byte range, clamped to the snapshot.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	start, end = clampRange(start, end, len(s.text))
	return s.text[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return len(s.text)
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() uint32 {
	return uint32(len(s.lineStarts))
}

// LineText returns the text of a specific line (without newline).
func (s *Snapshot) LineText(line uint32) string {
	start, end := lineBounds(s.text, s.lineStarts, line)
	return s.text[start:end]
}

// LineStartOffset returns the byte offset of the start of a line.
func (s *Snapshot) LineStartOffset(line uint32) ByteOffset {
	start, _ := lineBounds(s.text, s.lineStarts, line)
	return start
}

// OffsetToPoint converts a byte offset to line/column.
func (s *Snapshot) OffsetToPoint(offset ByteOffset) Point {
	return offsetToPoint(s.text, s.lineStarts, offset)
}

// PointToOffset converts line/column to byte offset.
func (s *Snapshot) PointToOffset(point Point) ByteOffset {
	return pointToOffset(s.text, s.lineStarts, point)
}

// DocumentID returns the identity of the buffer this snapshot came from.
func (s *Snapshot) DocumentID() string {
	return s.documentID
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}
