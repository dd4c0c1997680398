package token

import (
	"fmt"
	"sort"
)

// Position represents a human-readable position in source code.
type Position struct {
	// Filename is the name of the source file (optional).
	Filename string
	// Line number (1-indexed).
	Line int
	// Column is the byte offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of source (0-indexed).
	Offset int
}

// String returns a string representation of the position.
// Format: "filename:line:column" or "line:column" if filename is empty.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// DummySpan marks synthetic nodes that have no source location.
var DummySpan = Span{Start: -1, End: -1}

// MakeSpan returns the span [start, end).
func MakeSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// IsDummy reports whether s is the dummy span.
func (s Span) IsDummy() bool {
	return s == DummySpan
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.IsDummy() || s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// To returns the span from the start of s to the end of other.
// If either span is the dummy span, the result is the dummy span.
func (s Span) To(other Span) Span {
	if s.IsDummy() || other.IsDummy() {
		return DummySpan
	}
	return Span{Start: s.Start, End: other.End}
}

// String returns the span as "start..end".
func (s Span) String() string {
	if s.IsDummy() {
		return "<dummy>"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// File maps byte offsets of a source text to line and column positions.
type File struct {
	name  string
	src   string
	lines []int // offset of the first byte of each line
}

// NewFile indexes src for position lookups.
func NewFile(name, src string) *File {
	f := &File{name: name, src: src, lines: []int{0}}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Name returns the file name given to NewFile.
func (f *File) Name() string { return f.name }

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int { return len(f.lines) }

// Position converts a byte offset into a Position.
// Offsets past the end of the source are clamped to the end.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		return Position{Filename: f.name}
	}
	if offset > len(f.src) {
		offset = len(f.src)
	}
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	return Position{
		Filename: f.name,
		Line:     i + 1,
		Column:   offset - f.lines[i] + 1,
		Offset:   offset,
	}
}

// Line returns the text of the 1-indexed line n without its newline.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := len(f.src)
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}
	if end > start && f.src[end-1] == '\r' {
		end--
	}
	return f.src[start:end]
}
