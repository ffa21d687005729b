package syntax

import (
	"strings"
	"testing"
)

// scanAll returns every token of src up to and including EOF, together
// with the diagnostics reported on the way.
func scanAll(src string) ([]Item, []*Diagnostic) {
	var diags []*Diagnostic
	s := NewScanner("test.alna", strings.NewReader(src), func(d *Diagnostic) {
		diags = append(diags, d)
	})
	var items []Item
	for i := 0; i < 10000; i++ {
		s.Next()
		items = append(items, s.Item())
		if s.Token().IsEOF() {
			break
		}
	}
	return items, diags
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers
		{"ident", "foo", []Token{_Name, _EOF}, []string{"foo", ""}},
		{"ident_underscore", "_bar", []Token{_Name, _EOF}, []string{"_bar", ""}},
		{"ident_mixed", "foo123", []Token{_Name, _EOF}, []string{"foo123", ""}},
		{"ident_caps", "FooBar", []Token{_Name, _EOF}, []string{"FooBar", ""}},
		{"ident_keyword_prefix", "iffy", []Token{_Name, _EOF}, []string{"iffy", ""}},
		{"ident_type_prefix", "int8", []Token{_Name, _EOF}, []string{"int8", ""}},

		// Reserved words
		{"kw_true", "true", []Token{_True, _EOF}, []string{"true", ""}},
		{"kw_false", "false", []Token{_False, _EOF}, []string{"false", ""}},
		{"kw_int", "int", []Token{_Int, _EOF}, []string{"int", ""}},
		{"kw_f32", "f32", []Token{_F32, _EOF}, []string{"f32", ""}},
		{"kw_void", "void", []Token{_Void, _EOF}, []string{"void", ""}},
		{"kw_while", "while", []Token{_While, _EOF}, []string{"while", ""}},
		{"kw_continue", "continue", []Token{_Continue, _EOF}, []string{"continue", ""}},

		// Numbers
		{"int_dec", "123", []Token{_Number, _EOF}, []string{"123", ""}},
		{"int_zero", "0", []Token{_Number, _EOF}, []string{"0", ""}},
		{"int_leading_zero", "007", []Token{_Number, _EOF}, []string{"007", ""}},
		{"hex_lower", "0x1f", []Token{_Number, _EOF}, []string{"0x1f", ""}},
		{"hex_upper", "0X1F", []Token{_Number, _EOF}, []string{"0X1F", ""}},
		{"bin_lower", "0b1010", []Token{_Number, _EOF}, []string{"0b1010", ""}},
		{"bin_upper", "0B1", []Token{_Number, _EOF}, []string{"0B1", ""}},
		{"float", "10.5", []Token{_Number, _EOF}, []string{"10.5", ""}},
		{"float_exp", "1.5e10", []Token{_Number, _EOF}, []string{"1.5e10", ""}},
		{"float_exp_sign", "2.0E-3", []Token{_Number, _EOF}, []string{"2.0E-3", ""}},

		// Number boundaries
		{"exp_without_fraction", "1e10", []Token{_Number, _Name, _EOF}, []string{"1", "e10", ""}},
		{"number_then_ident", "12abc", []Token{_Number, _Name, _EOF}, []string{"12", "abc", ""}},
		{"hex_then_ident", "0x1Fg", []Token{_Number, _Name, _EOF}, []string{"0x1F", "g", ""}},

		// Operators
		{"ops_arith", "+ - * / %", []Token{_Add, _Sub, _Mul, _Div, _Rem, _EOF}, []string{"+", "-", "*", "/", "%", ""}},
		{"ops_cmp", "< <= > >= == !=", []Token{_Lss, _Leq, _Gtr, _Geq, _Eql, _Neq, _EOF}, []string{"<", "<=", ">", ">=", "==", "!=", ""}},
		{"ops_logic", "&& || !", []Token{_AndAnd, _OrOr, _Not, _EOF}, []string{"&&", "||", "!", ""}},
		{"assign", "=", []Token{_Assign, _EOF}, []string{"=", ""}},
		{"no_space", "a=b==c", []Token{_Name, _Assign, _Name, _Eql, _Name, _EOF}, []string{"a", "=", "b", "==", "c", ""}},
		{"not_not", "!!x", []Token{_Not, _Not, _Name, _EOF}, []string{"!", "!", "x", ""}},
		{"minus_minus", "--x", []Token{_Sub, _Sub, _Name, _EOF}, []string{"-", "-", "x", ""}},

		// Punctuation
		{"punct", "( ) { } , ;", []Token{_Lparen, _Rparen, _Lbrace, _Rbrace, _Comma, _Semi, _EOF}, []string{"(", ")", "{", "}", ",", ";", ""}},

		// Comments
		{"line_comment", "// hi\nx", []Token{_LineComment, _Name, _EOF}, []string{"// hi", "x", ""}},
		{"line_comment_eof", "x // tail", []Token{_Name, _LineComment, _EOF}, []string{"x", "// tail", ""}},
		{"block_comment", "/* a\nb */x", []Token{_BlockComment, _Name, _EOF}, []string{"/* a\nb */", "x", ""}},
		{"block_comment_stars", "/***/", []Token{_BlockComment, _EOF}, []string{"/***/", ""}},
		{"block_not_nested", "/* /* */ */", []Token{_BlockComment, _Mul, _Div, _EOF}, []string{"/* /* */", "*", "/", ""}},

		// Whitespace and newlines are insignificant
		{"whitespace", " \t\r\n x \n\n", []Token{_Name, _EOF}, []string{"x", ""}},
		{"empty", "", []Token{_EOF}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, diags := scanAll(tt.src)
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
			if len(items) != len(tt.tokens) {
				t.Fatalf("got %d tokens %v, want %d", len(items), items, len(tt.tokens))
			}
			for i, it := range items {
				if it.Tok != tt.tokens[i] {
					t.Errorf("token %d: got %v, want %v", i, it.Tok, tt.tokens[i])
				}
				if it.Lit != tt.lits[i] {
					t.Errorf("token %d: lit = %q, want %q", i, it.Lit, tt.lits[i])
				}
			}
		})
	}
}

func TestScanLitKind(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"10", DecimalLit},
		{"0", DecimalLit},
		{"10.5", FloatLit},
		{"3.14e2", FloatLit},
		{"0x1A", HexLit},
		{"0b101", BinaryLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			s.Next()
			if s.Token() != _Number {
				t.Fatalf("token = %v, want NUMBER", s.Token())
			}
			if s.LitKind() != tt.kind {
				t.Errorf("LitKind() = %v, want %v", s.LitKind(), tt.kind)
			}
			if s.Literal() != tt.src {
				t.Errorf("Literal() = %q, want %q", s.Literal(), tt.src)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	src := `int add(int a) {
    return a
}`
	expected := []struct {
		tok       Token
		line, col uint32
		offs      int
		endCol    uint32
	}{
		{_Int, 1, 1, 0, 4},
		{_Name, 1, 5, 4, 8},
		{_Lparen, 1, 8, 7, 9},
		{_Int, 1, 9, 8, 12},
		{_Name, 1, 13, 12, 14},
		{_Rparen, 1, 14, 13, 15},
		{_Lbrace, 1, 16, 15, 17},
		{_Return, 2, 5, 21, 11},
		{_Name, 2, 12, 28, 13},
		{_Rbrace, 3, 1, 30, 2},
		{_EOF, 3, 2, 31, 2},
	}

	s := NewScanner("test.alna", strings.NewReader(src), nil)
	for i, want := range expected {
		s.Next()
		sp := s.Span()
		if s.Token() != want.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), want.tok)
		}
		if s.Pos().Line() != want.line || s.Pos().Col() != want.col || s.Pos().Offset() != want.offs {
			t.Errorf("token %d (%v): pos = %d:%d@%d, want %d:%d@%d", i, s.Token(),
				s.Pos().Line(), s.Pos().Col(), s.Pos().Offset(), want.line, want.col, want.offs)
		}
		if sp.End.Col() != want.endCol {
			t.Errorf("token %d (%v): end col = %d, want %d", i, s.Token(), sp.End.Col(), want.endCol)
		}
		if sp.Len() != len(s.Literal()) {
			t.Errorf("token %d: span length %d != lexeme length %d", i, sp.Len(), len(s.Literal()))
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantErr  string
		wantToks []Token
	}{
		{"bad_char", "@", "unexpected character '@'", []Token{_EOF}},
		{"bad_char_hash", "a # b", "unexpected character '#'", []Token{_Name, _Name, _EOF}},
		{"bad_char_dollar", "$", "unexpected character '$'", []Token{_EOF}},
		{"bad_char_dot", "1.", "unexpected character '.'", []Token{_Number, _EOF}},
		{"lone_amp", "a & b", "unexpected character '&'", []Token{_Name, _Name, _EOF}},
		{"lone_pipe", "a | b", "unexpected character '|'", []Token{_Name, _Name, _EOF}},
		{"invalid_utf8", "a\xffb", "invalid UTF-8 encoding", []Token{_Name, _Name, _EOF}},
		{"non_ascii_letter", "é", "unexpected character 'é'", []Token{_EOF}},
		{"hex_no_digits", "0x", "hexadecimal literal has no digits", []Token{_Number, _EOF}},
		{"hex_bad_digit", "0xGG", "hexadecimal literal has no digits", []Token{_Number, _Name, _EOF}},
		{"bin_no_digits", "0b", "binary literal has no digits", []Token{_Number, _EOF}},
		{"bin_bad_digit", "0b123", "invalid digit '2' in binary literal", []Token{_Number, _EOF}},
		{"empty_exponent", "1.5e", "exponent has no digits", []Token{_Number, _EOF}},
		{"empty_exponent_sign", "1.5e+", "exponent has no digits", []Token{_Number, _EOF}},
		{"unterminated_comment", "x /* never closed", "comment not terminated", []Token{_Name, _BlockComment, _EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, diags := scanAll(tt.src)
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics %v, want exactly 1", len(diags), diags)
			}
			d := diags[0]
			if d.Kind != LexicalError {
				t.Errorf("kind = %v, want LexicalError", d.Kind)
			}
			if !strings.Contains(d.Msg, tt.wantErr) {
				t.Errorf("message = %q, want it to contain %q", d.Msg, tt.wantErr)
			}
			if !d.Span.IsValid() {
				t.Errorf("span %v is not valid", d.Span)
			}
			var toks []Token
			for _, it := range items {
				toks = append(toks, it.Tok)
			}
			if len(toks) != len(tt.wantToks) {
				t.Fatalf("tokens = %v, want %v", toks, tt.wantToks)
			}
			for i := range toks {
				if toks[i] != tt.wantToks[i] {
					t.Errorf("token %d = %v, want %v", i, toks[i], tt.wantToks[i])
				}
			}
		})
	}
}

func TestScanErrorSpans(t *testing.T) {
	_, diags := scanAll("ab @ cd")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	sp := diags[0].Span
	if sp.Start.Col() != 4 || sp.End.Col() != 5 || sp.Len() != 1 {
		t.Errorf("illegal char span = %v, want columns 4-5", sp)
	}

	_, diags = scanAll("x\n  /* open")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	sp = diags[0].Span
	if sp.Start.Line() != 2 || sp.Start.Col() != 3 || sp.Len() != 2 {
		t.Errorf("unterminated comment span = %v, want 2:3 covering /*", sp)
	}
}

func TestScanMultipleIllegal(t *testing.T) {
	// Each occurrence is reported once.
	_, diags := scanAll("@ # $")
	if len(diags) != 3 {
		t.Errorf("got %d diagnostics, want 3", len(diags))
	}
}

func TestSeek(t *testing.T) {
	src := "int x = 10\nx = x + 1"
	s := NewScanner("test.alna", strings.NewReader(src), nil)

	// Scan everything once.
	var first []Item
	for {
		s.Next()
		first = append(first, s.Item())
		if s.Token() == _EOF {
			break
		}
	}

	// Restart from the start of the second line.
	s.Seek(11)
	s.Next()
	if s.Token() != _Name || s.Literal() != "x" {
		t.Fatalf("after Seek(11): %v %q, want NAME x", s.Token(), s.Literal())
	}
	if s.Pos().Line() != 2 || s.Pos().Col() != 1 {
		t.Errorf("after Seek(11): pos = %v, want 2:1", s.Pos())
	}

	// The rescanned tokens match the original run.
	var rest []Item
	for {
		rest = append(rest, s.Item())
		if s.Token() == _EOF {
			break
		}
		s.Next()
	}
	tail := first[len(first)-len(rest):]
	for i := range rest {
		if rest[i] != tail[i] {
			t.Errorf("item %d: rescanned %v at %v, originally %v at %v", i, rest[i], rest[i].Span, tail[i], tail[i].Span)
		}
	}

	// Seeking into whitespace skips to the next token.
	s.Seek(3)
	s.Next()
	if s.Token() != _Name || s.Pos().Offset() != 4 {
		t.Errorf("after Seek(3): %v at %d, want NAME at 4", s.Token(), s.Pos().Offset())
	}

	// Back to the beginning.
	s.Seek(0)
	s.Next()
	if s.Token() != _Int {
		t.Errorf("after Seek(0): %v, want int", s.Token())
	}
}

func TestItemString(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Tok: _Name, Lit: "foo"}, `NAME "foo"`},
		{Item{Tok: _Number, Lit: "0x1A", Kind: HexLit}, `NUMBER "0x1A"`},
		{Item{Tok: _Lbrace, Lit: "{"}, "{"},
		{Item{Tok: _EOF}, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.item.String(); got != tt.want {
			t.Errorf("Item.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompleteProgram(t *testing.T) {
	src := `// compute things
int add(int a, int b) {
    return a + b;
}

int total = 0
for int i = 0; i < 10; i = i + 1 {
    if i % 2 == 0 && !false {
        total = total + add(i, 0x1F)
    } else {
        continue
    }
}
/* done */
f64 ratio = 2.5e-1
`

	items, diags := scanAll(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(items) < 60 {
		t.Errorf("expected at least 60 tokens, got %d", len(items))
	}
	comments := 0
	for _, it := range items {
		if it.Tok.IsComment() {
			comments++
		}
	}
	if comments != 2 {
		t.Errorf("got %d comments, want 2", comments)
	}
}

func FuzzScanner(f *testing.F) {
	// Seed corpus
	seeds := []string{
		"int x = 10",
		"int add(int a, int b) { return a + b; }",
		"x = 0x1F + 0b1010 * 2.5e-3",
		"if a && b || c { } else { }",
		"for int i = 0; i < 10; i = i + 1 { }",
		"/* unterminated",
		"// comment\nfoo",
		"0b12 0x 1.e5 @#$",
		"\xff\xfe",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		s := NewScanner("fuzz", strings.NewReader(src), func(*Diagnostic) {})
		for i := 0; i <= len(src)+1; i++ { // every token consumes input
			s.Next()
			if s.Token().IsEOF() {
				return
			}
			if !s.Span().IsValid() {
				t.Fatalf("invalid span %v for %v", s.Span(), s.Item())
			}
		}
		t.Fatalf("scanner did not reach EOF")
	})
}
