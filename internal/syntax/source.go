package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with position tracking.
// It reads UTF-8 encoded source files and provides character-by-character access.
type source struct {
	// Input
	buf []byte // source buffer (entire file read into memory)

	// Position tracking
	filename string // source file name
	line     uint32 // current line number (1-based)
	col      uint32 // current column number (1-based, counted in runes)

	// Current state
	ch    rune // current character, -1 for EOF
	offs  int  // byte offset of ch in buf
	width int  // byte width of ch (0 at EOF)

	// Error handling
	errh func(d *Diagnostic)
}

// newSource creates a new source from an io.Reader.
// The entire content is read into memory.
// The errh function is called for each error; if nil, errors are silently ignored.
func newSource(filename string, src io.Reader, errh func(d *Diagnostic)) *source {
	buf, err := io.ReadAll(src)
	s := newSourceBytes(filename, buf, errh)
	if err != nil {
		s.error(Span{Start: s.pos(), End: s.pos()}, "error reading source: "+err.Error())
	}
	return s
}

// newSourceBytes creates a new source over buf. buf is not copied and must
// not be modified while the source is in use.
func newSourceBytes(filename string, buf []byte, errh func(d *Diagnostic)) *source {
	s := &source{
		buf:      buf,
		filename: filename,
		errh:     errh,
	}
	s.seek(0)
	return s
}

// seek repositions the reader so that ch is the character starting at byte
// offset offs. offs is clamped to [0, len(buf)] and should fall on a rune
// boundary.
func (s *source) seek(offs int) {
	if offs < 0 {
		offs = 0
	}
	if offs > len(s.buf) {
		offs = len(s.buf)
	}

	line, col := uint32(1), uint32(1)
	for _, r := range string(s.buf[:offs]) {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	// nextch increments col for anything but a newline, so back off by one.
	s.line = line
	s.col = col - 1
	s.ch = -1
	s.offs = offs
	s.width = 0
	s.nextch()
}

// nextch reads the next character from the source and updates position.
// Sets s.ch to -1 at EOF.
//
// Position tracking: (line, col, offs) always refer to s.ch after nextch() returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.offs += s.width
	if s.offs >= len(s.buf) {
		s.ch = -1
		s.width = 0
		return
	}

	// An invalid byte decodes as (RuneError, 1); the scanner reports it.
	s.ch, s.width = utf8.DecodeRune(s.buf[s.offs:])
}

// peek returns the character following ch without consuming anything.
// Only ASCII lookahead is needed, so it reads a single byte; 0 at EOF.
func (s *source) peek() rune {
	if i := s.offs + s.width; i < len(s.buf) {
		return rune(s.buf[i])
	}
	return 0
}

// invalidByte reports whether ch is an undecodable byte rather than a real U+FFFD.
func (s *source) invalidByte() bool {
	return s.ch == utf8.RuneError && s.width == 1
}

// pos returns the current position (position of current character).
func (s *source) pos() Pos {
	return NewPos(s.filename, s.offs, s.line, s.col)
}

// segment returns the source text between byte offsets from and to.
func (s *source) segment(from, to int) string {
	return string(s.buf[from:to])
}

// error reports a lexical error covering span.
func (s *source) error(span Span, msg string) {
	if s.errh != nil {
		s.errh(&Diagnostic{Kind: LexicalError, Msg: msg, Span: span})
	}
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isHexDigit reports whether r is a hexadecimal digit (0-9, a-f, A-F).
func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

// isBinaryDigit reports whether r is a binary digit (0 or 1).
func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// lower returns the lowercase version of r if r is an ASCII letter.
// ('a' - 'A') is 0x20; OR-ing it in lowercases ASCII letters and leaves digits alone.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// isWhitespace reports whether r is a whitespace character.
// Newlines carry no meaning in alna and are skipped like any other blank.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}

// isOperatorStart reports whether r can start an operator or delimiter.
func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '&', '|', '<', '>', '=', '!',
		'(', ')', '{', '}', ',', ';':
		return true
	}
	return false
}
