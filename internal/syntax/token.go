// Package syntax implements lexical analysis and parsing for the alna
// programming language.
package syntax

import (
	"fmt"

	"github.com/you-not-fish/alna/internal/types"
)

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name   // identifier: foo, bar, add
	_Number // number literal (refined by LitKind)
	_True   // true
	_False  // false

	// Type keywords (same order as types.Kind)
	_Int
	_I8
	_I16
	_I32
	_I64
	_U8
	_U16
	_U32
	_U64
	_Float
	_F32
	_F64
	_Bool
	_String
	_Void

	// Control keywords
	_If
	_Else
	_While
	_For
	_Return
	_Break
	_Continue

	// Operators
	_Assign // =

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /
	_Rem // %

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Trivia
	_LineComment  // // ...
	_BlockComment // /* ... */

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:   "NAME",
	_Number: "NUMBER",
	_True:   "true",
	_False:  "false",

	_Int:    "int",
	_I8:     "i8",
	_I16:    "i16",
	_I32:    "i32",
	_I64:    "i64",
	_U8:     "u8",
	_U16:    "u16",
	_U32:    "u32",
	_U64:    "u64",
	_Float:  "float",
	_F32:    "f32",
	_F64:    "f64",
	_Bool:   "bool",
	_String: "string",
	_Void:   "void",

	_If:       "if",
	_Else:     "else",
	_While:    "while",
	_For:      "for",
	_Return:   "return",
	_Break:    "break",
	_Continue: "continue",

	_Assign: "=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_LineComment:  "LINE_COMMENT",
	_BlockComment: "BLOCK_COMMENT",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Exported tokens for consumers outside the package (printers, checkers).
const (
	EOF      Token = _EOF
	OrOr     Token = _OrOr
	AndAnd   Token = _AndAnd
	Eql      Token = _Eql
	Neq      Token = _Neq
	Lss      Token = _Lss
	Leq      Token = _Leq
	Gtr      Token = _Gtr
	Geq      Token = _Geq
	Add      Token = _Add
	Sub      Token = _Sub
	Mul      Token = _Mul
	Div      Token = _Div
	Rem      Token = _Rem
	Not      Token = _Not
	Break    Token = _Break
	Continue Token = _Continue
)

// ----------------------------------------------------------------------------
// Token classes

// Class is the coarse category of a token.
type Class uint8

const (
	ClassIdentifier Class = iota
	ClassKeyword
	ClassNumber
	ClassBoolean
	ClassOperator
	ClassPunctuation
	ClassComment
	ClassEOF
)

var classNames = [...]string{
	ClassIdentifier:  "identifier",
	ClassKeyword:     "keyword",
	ClassNumber:      "number",
	ClassBoolean:     "boolean",
	ClassOperator:    "operator",
	ClassPunctuation: "punctuation",
	ClassComment:     "comment",
	ClassEOF:         "eof",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", c)
}

// Class returns the category of t.
func (t Token) Class() Class {
	switch {
	case t == _Name:
		return ClassIdentifier
	case t == _Number:
		return ClassNumber
	case t == _True || t == _False:
		return ClassBoolean
	case t.IsKeyword():
		return ClassKeyword
	case t.IsOperator():
		return ClassOperator
	case t >= _Lparen && t <= _Semi:
		return ClassPunctuation
	case t.IsComment():
		return ClassComment
	}
	return ClassEOF
}

// IsKeyword reports whether t is a type or control keyword.
// true and false are reserved words but classify as booleans.
func (t Token) IsKeyword() bool {
	return t >= _Int && t <= _Continue
}

// IsTypeKeyword reports whether t names one of the primitive types.
func (t Token) IsTypeKeyword() bool {
	return t >= _Int && t <= _Void
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not
}

// IsComment reports whether t is a comment (trivia) token.
func (t Token) IsComment() bool {
	return t == _LineComment || t == _BlockComment
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// CanStartExpr reports whether an expression may begin with t.
func (t Token) CanStartExpr() bool {
	switch t {
	case _Name, _Number, _True, _False, _Lparen, _Not, _Sub:
		return true
	}
	return false
}

// StartsStmt reports whether t is a keyword or delimiter that always begins
// a new statement. Identifiers and other expression starters are excluded.
// These tokens are the synchronization points of error recovery.
func (t Token) StartsStmt() bool {
	return t.IsTypeKeyword() || (t >= _If && t <= _Continue && t != _Else) || t == _Lbrace
}

// TypeKind returns the primitive type named by a type keyword,
// or types.Invalid for any other token.
func (t Token) TypeKind() types.Kind {
	if !t.IsTypeKeyword() {
		return types.Invalid
	}
	return types.Int + types.Kind(t-_Int)
}

// ----------------------------------------------------------------------------
// Precedence table

// Assoc is the associativity of a binary operator.
type Assoc uint8

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

// UnaryPrec is the binding power of the prefix operators ! and -.
// It is higher than that of any binary operator.
const UnaryPrec = 8

type opInfo struct {
	prec  int
	assoc Assoc
}

// binaryOps is the single source of truth for binary operator parsing.
// Precedence levels (higher = binds tighter):
//
//	7: * / %
//	6: + -
//	5: < <= > >=
//	4: == !=
//	3: &&
//	2: ||
var binaryOps = [tokenCount]opInfo{
	_Mul: {7, LeftAssoc},
	_Div: {7, LeftAssoc},
	_Rem: {7, LeftAssoc},

	_Add: {6, LeftAssoc},
	_Sub: {6, LeftAssoc},

	_Lss: {5, LeftAssoc},
	_Leq: {5, LeftAssoc},
	_Gtr: {5, LeftAssoc},
	_Geq: {5, LeftAssoc},

	_Eql: {4, LeftAssoc},
	_Neq: {4, LeftAssoc},

	_AndAnd: {3, LeftAssoc},

	_OrOr: {2, LeftAssoc},
}

// Precedence returns the binding power of t as a binary operator,
// or 0 if t is not a binary operator.
func (t Token) Precedence() int {
	if t < tokenCount {
		return binaryOps[t].prec
	}
	return 0
}

// Assoc returns the associativity of t as a binary operator.
func (t Token) Assoc() Assoc {
	if t < tokenCount {
		return binaryOps[t].assoc
	}
	return LeftAssoc
}

// ----------------------------------------------------------------------------
// Literal kinds

// LitKind represents the shape of a number literal.
type LitKind uint8

const (
	DecimalLit LitKind = iota // 10, 007
	FloatLit                  // 10.5, 1.5e-3
	HexLit                    // 0x1A
	BinaryLit                 // 0b101
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	DecimalLit: "decimal",
	FloatLit:   "float",
	HexLit:     "hex",
	BinaryLit:  "binary",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BinaryLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// ----------------------------------------------------------------------------
// Keywords

// keywords maps reserved words to their token type.
// The scanner matches the identifier pattern first and then reclassifies
// through this table.
var keywords = map[string]Token{
	"true":  _True,
	"false": _False,

	"int":    _Int,
	"i8":     _I8,
	"i16":    _I16,
	"i32":    _I32,
	"i64":    _I64,
	"u8":     _U8,
	"u16":    _U16,
	"u32":    _U32,
	"u64":    _U64,
	"float":  _Float,
	"f32":    _F32,
	"f64":    _F64,
	"bool":   _Bool,
	"string": _String,
	"void":   _Void,

	"if":       _If,
	"else":     _Else,
	"while":    _While,
	"for":      _For,
	"return":   _Return,
	"break":    _Break,
	"continue": _Continue,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a reserved word, returns its token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
