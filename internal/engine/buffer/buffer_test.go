package buffer

import (
	"strings"
	"testing"
)

func TestNewBufferFromString(t *testing.T) {
	b := NewBufferFromString("hello\nworld")

	if got := b.Text(); got != "hello\nworld" {
		t.Errorf("Text() = %q, want %q", got, "hello\nworld")
	}
	if got := b.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}
	if got := b.LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
	if b.DocumentID() == "" {
		t.Error("DocumentID() should not be empty")
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("NewBufferFromReader: %v", err)
	}
	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
}

func TestLineEndingNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"lf untouched", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	tests := []struct {
		line uint32
		want string
	}{
		{0, "one"},
		{1, "two"},
		{2, "three"},
		{99, "three"}, // out of range clamps to last line
	}

	for _, tt := range tests {
		if got := b.LineText(tt.line); got != tt.want {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestTrailingNewline(t *testing.T) {
	b := NewBufferFromString("one\n")

	if got := b.LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
	if got := b.LineText(1); got != "" {
		t.Errorf("LineText(1) = %q, want empty", got)
	}
}

func TestOffsetToPoint(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	tests := []struct {
		offset ByteOffset
		want   Point
	}{
		{0, Point{Line: 0, Column: 0}},
		{2, Point{Line: 0, Column: 2}},
		{3, Point{Line: 0, Column: 3}}, // on the newline
		{4, Point{Line: 1, Column: 0}},
		{7, Point{Line: 1, Column: 3}},
		{8, Point{Line: 2, Column: 0}},
		{13, Point{Line: 2, Column: 5}},
		{-5, Point{Line: 0, Column: 0}},  // clamps
		{100, Point{Line: 2, Column: 5}}, // clamps
	}

	for _, tt := range tests {
		if got := b.OffsetToPoint(tt.offset); got != tt.want {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestPointToOffset(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	tests := []struct {
		point Point
		want  ByteOffset
	}{
		{Point{Line: 0, Column: 0}, 0},
		{Point{Line: 1, Column: 0}, 4},
		{Point{Line: 1, Column: 3}, 7},
		{Point{Line: 2, Column: 5}, 13},
		{Point{Line: 0, Column: 99}, 3},  // clamps to line end
		{Point{Line: 99, Column: 0}, 8},  // clamps to last line
	}

	for _, tt := range tests {
		if got := b.PointToOffset(tt.point); got != tt.want {
			t.Errorf("PointToOffset(%v) = %d, want %d", tt.point, got, tt.want)
		}
	}
}

func TestRoundTripConversion(t *testing.T) {
	b := NewBufferFromString("alpha\nbeta gamma\n\ndelta")

	for off := 0; off <= b.Len(); off++ {
		p := b.OffsetToPoint(off)
		if got := b.PointToOffset(p); got != off {
			t.Errorf("round trip for offset %d: got %d via %v", off, got, p)
		}
	}
}

func TestReplace(t *testing.T) {
	b := NewBufferFromString("before |<X>| after")

	end, err := b.Replace(7, 12, "X")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if end != 8 {
		t.Errorf("Replace end = %d, want 8", end)
	}
	if got := b.Text(); got != "before X after" {
		t.Errorf("Text() = %q, want %q", got, "before X after")
	}
}

func TestReplaceInvalidRange(t *testing.T) {
	b := NewBufferFromString("abc")

	tests := []struct {
		name       string
		start, end ByteOffset
	}{
		{"negative start", -1, 2},
		{"start after end", 2, 1},
		{"end past buffer", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Replace(tt.start, tt.end, "x"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestInsertDelete(t *testing.T) {
	b := NewBufferFromString("ad")

	if _, err := b.Insert(1, "bc"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.Text(); got != "abcd" {
		t.Errorf("after insert: %q, want %q", got, "abcd")
	}

	if err := b.Delete(1, 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := b.Text(); got != "ad" {
		t.Errorf("after delete: %q, want %q", got, "ad")
	}
}

func TestRevisionChangesOnEdit(t *testing.T) {
	b := NewBufferFromString("abc")
	rev := b.RevisionID()

	if _, err := b.Insert(0, "x"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.RevisionID() == rev {
		t.Error("RevisionID should change after edit")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	b := NewBufferFromString("one\ntwo")
	snap := b.Snapshot()

	if _, err := b.Replace(0, 3, "ONE-LONGER"); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if got := snap.Text(); got != "one\ntwo" {
		t.Errorf("snapshot text = %q, want original", got)
	}
	if snap.RevisionID() == b.RevisionID() {
		t.Error("snapshot revision should differ from edited buffer")
	}
	if snap.DocumentID() != b.DocumentID() {
		t.Error("snapshot document ID should match buffer")
	}
	if got := snap.OffsetToPoint(4); (got != Point{Line: 1, Column: 0}) {
		t.Errorf("snapshot OffsetToPoint(4) = %v, want (1:0)", got)
	}
}

func TestTextRangeClamps(t *testing.T) {
	b := NewBufferFromString("abcdef")

	if got := b.TextRange(-2, 3); got != "abc" {
		t.Errorf("TextRange(-2,3) = %q, want %q", got, "abc")
	}
	if got := b.TextRange(4, 100); got != "ef" {
		t.Errorf("TextRange(4,100) = %q, want %q", got, "ef")
	}
	if got := b.TextRange(5, 2); got != "" {
		t.Errorf("TextRange(5,2) = %q, want empty", got)
	}
}
