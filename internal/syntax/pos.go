package syntax

import "fmt"

// Pos represents a position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	offs     int    // 0-based byte offset
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (in characters)
}

// NewPos creates a new Pos with the given filename, byte offset, line and column.
// Line and column numbers are 1-based; the offset is 0-based.
func NewPos(filename string, offs int, line, col uint32) Pos {
	return Pos{filename: filename, offs: offs, line: line, col: col}
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number, counted in characters.
func (p Pos) Col() uint32 {
	return p.col
}

// Offset returns the 0-based byte offset of the position.
func (p Pos) Offset() int {
	return p.offs
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}

// Before reports whether p comes strictly before q in the same file.
func (p Pos) Before(q Pos) bool {
	return p.offs < q.offs
}

// Span is a half-open range of source text [Start, End).
type Span struct {
	Start Pos
	End   Pos
}

// IsValid reports whether both ends are valid and Start does not follow End.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.offs <= s.End.offs
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End.offs - s.Start.offs
}

// Contains reports whether p lies within s.
func (s Span) Contains(p Pos) bool {
	return s.Start.offs <= p.offs && p.offs < s.End.offs
}

// String returns "file:line:col-col" for single-line spans and
// "file:line:col-line:col" otherwise.
func (s Span) String() string {
	prefix := ""
	if s.Start.filename != "" {
		prefix = s.Start.filename + ":"
	}
	if s.Start.line == s.End.line {
		return fmt.Sprintf("%s%d:%d-%d", prefix, s.Start.line, s.Start.col, s.End.col)
	}
	return fmt.Sprintf("%s%d:%d-%d:%d", prefix, s.Start.line, s.Start.col, s.End.line, s.End.col)
}

// Join returns the smallest span covering both a and b.
// An invalid span is ignored.
func Join(a, b Span) Span {
	if !a.IsValid() {
		return b
	}
	if !b.IsValid() {
		return a
	}
	out := a
	if b.Start.offs < out.Start.offs {
		out.Start = b.Start
	}
	if b.End.offs > out.End.offs {
		out.End = b.End
	}
	return out
}
