package syntax

import (
	"fmt"
	"io"
)

// Item is one scanned token: its type, its exact source text and its span.
// Kind is only meaningful when Tok is _Number.
type Item struct {
	Tok  Token
	Lit  string
	Kind LitKind
	Span Span
}

func (it Item) String() string {
	switch it.Tok {
	case _Name, _Number, _LineComment, _BlockComment:
		return fmt.Sprintf("%s %q", it.Tok, it.Lit)
	}
	return it.Tok.String()
}

// Scanner performs lexical analysis on alna source code.
// Tokens are produced lazily, one per call to Next.
// Comments are returned as _LineComment and _BlockComment tokens;
// whitespace is skipped.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // exact source text of the token
	kind   LitKind // literal kind (only valid when tok == _Number)
	tokPos Pos     // token start position
	tokEnd Pos     // position just past the token
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(d *Diagnostic)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// newScannerBytes creates a Scanner over an in-memory buffer.
func newScannerBytes(filename string, src []byte, errh func(d *Diagnostic)) *Scanner {
	return &Scanner{source: *newSourceBytes(filename, src, errh)}
}

// Seek restarts scanning at byte offset offs. The next call to Next
// scans the token starting at or after offs.
func (s *Scanner) Seek(offs int) {
	s.seek(offs)
	s.tok = _EOF
	s.lit = ""
	s.kind = DecimalLit
	s.tokPos = s.pos()
	s.tokEnd = s.tokPos
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	// 1. Skip whitespace, including newlines
	s.skipWhitespace()

	// 2. Record token start position
	s.tokPos = s.pos()
	start := s.offs
	s.kind = DecimalLit

	// 3. Scan token based on current character
	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""
		s.tokEnd = s.tokPos
		return

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case isOperatorStart(s.ch):
		if !s.scanOperator() {
			goto redo
		}

	default:
		s.illegal()
		goto redo
	}

	// 4. Record the exact lexeme
	s.tokEnd = s.pos()
	s.lit = s.segment(start, s.offs)
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the exact source text of the current token.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Number).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Span returns the source range of the current token.
func (s *Scanner) Span() Span {
	return Span{Start: s.tokPos, End: s.tokEnd}
}

// Item returns the current token as an immutable value.
func (s *Scanner) Item() Item {
	return Item{Tok: s.tok, Lit: s.lit, Kind: s.kind, Span: s.Span()}
}

// errorf reports a lexical error from the current token start to the
// current character.
func (s *Scanner) errorf(format string, args ...any) {
	s.error(Span{Start: s.tokPos, End: s.pos()}, fmt.Sprintf(format, args...))
}

// skipWhitespace skips blanks and newlines.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// illegal reports the current character and skips it.
func (s *Scanner) illegal() {
	start := s.pos()
	invalid := s.invalidByte()
	ch := s.ch
	s.nextch()
	span := Span{Start: start, End: s.pos()}
	if invalid {
		s.error(span, "invalid UTF-8 encoding")
		return
	}
	s.error(span, fmt.Sprintf("unexpected character %q", ch))
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	start := s.offs
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextch()
	}

	// Reclassify reserved words
	s.tok = LookupKeyword(s.segment(start, s.offs))
}

// scanNumber scans a number literal.
// Hex and binary prefixes are tried first, then a float (digits '.' digits
// with an optional exponent), then a plain decimal.
func (s *Scanner) scanNumber() {
	s.tok = _Number
	s.kind = DecimalLit

	if s.ch == '0' {
		switch lower(s.peek()) {
		case 'x':
			// Hexadecimal: 0x or 0X
			s.kind = HexLit
			s.nextch()
			s.nextch()
			s.scanHexDigits()
			return
		case 'b':
			// Binary: 0b or 0B
			s.kind = BinaryLit
			s.nextch()
			s.nextch()
			s.scanBinaryDigits()
			return
		}
	}

	s.scanDecimalDigits()

	// A fraction needs at least one digit after the point, so "1." is the
	// integer 1 followed by a stray '.'.
	if s.ch == '.' && isDigit(s.peek()) {
		s.scanFraction()
	}
}

// scanDecimalDigits scans decimal digits.
func (s *Scanner) scanDecimalDigits() {
	for isDigit(s.ch) {
		s.nextch()
	}
}

// scanHexDigits scans hexadecimal digits.
func (s *Scanner) scanHexDigits() {
	if !isHexDigit(s.ch) {
		s.errorf("hexadecimal literal has no digits")
		return
	}
	for isHexDigit(s.ch) {
		s.nextch()
	}
}

// scanBinaryDigits scans binary digits.
func (s *Scanner) scanBinaryDigits() {
	if !isDigit(s.ch) {
		s.errorf("binary literal has no digits")
		return
	}
	for isBinaryDigit(s.ch) {
		s.nextch()
	}
	// Check for invalid trailing digits (e.g., 0b123)
	if isDigit(s.ch) {
		ch := s.ch
		s.scanDecimalDigits()
		s.errorf("invalid digit %q in binary literal", ch)
	}
}

// scanFraction scans the fractional part of a float and an optional exponent.
func (s *Scanner) scanFraction() {
	s.kind = FloatLit
	s.nextch() // skip '.'
	s.scanDecimalDigits()

	// Exponent
	if lower(s.ch) == 'e' {
		s.nextch()

		// Optional sign
		if s.ch == '+' || s.ch == '-' {
			s.nextch()
		}

		if !isDigit(s.ch) {
			s.errorf("exponent has no digits")
			return
		}
		s.scanDecimalDigits()
	}
}

// scanOperator scans an operator, delimiter or comment.
// Returns false if no token was produced (a lone '&' or '|'); the caller
// should rescan.
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
	case '-':
		s.tok = _Sub
	case '*':
		s.tok = _Mul
	case '/':
		switch s.ch {
		case '/':
			s.lineComment()
		case '*':
			s.blockComment()
		default:
			s.tok = _Div
		}
	case '%':
		s.tok = _Rem
	case '&':
		if s.ch != '&' {
			s.errorf("unexpected character %q", ch)
			return false
		}
		s.nextch()
		s.tok = _AndAnd
	case '|':
		if s.ch != '|' {
			s.errorf("unexpected character %q", ch)
			return false
		}
		s.nextch()
		s.tok = _OrOr
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
		} else {
			s.tok = _Lss
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
		} else {
			s.tok = _Gtr
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
		} else {
			s.tok = _Assign
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
		} else {
			s.tok = _Not
		}
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	}

	return true
}

// lineComment scans a line comment (from // to end of line).
// The newline is not part of the comment.
func (s *Scanner) lineComment() {
	// Already consumed the first /
	s.tok = _LineComment
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// blockComment scans a block comment. Block comments do not nest.
func (s *Scanner) blockComment() {
	// Already consumed the /
	s.tok = _BlockComment
	s.nextch()
	for s.ch >= 0 {
		if s.ch == '*' {
			s.nextch()
			if s.ch == '/' {
				s.nextch()
				return
			}
			continue
		}
		s.nextch()
	}
	s.error(Span{Start: s.tokPos, End: NewPos(s.filename, s.tokPos.offs+2, s.tokPos.line, s.tokPos.col+2)},
		"comment not terminated")
}
