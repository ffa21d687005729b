package syntax

import (
	"fmt"
	"sort"
)

// ErrorKind classifies a diagnostic.
type ErrorKind uint8

const (
	LexicalError    ErrorKind = iota // illegal character, unterminated comment, malformed number
	ExpectedToken                    // a specific token was required
	UnexpectedEOF                    // input ended inside a construct
	UnexpectedToken                  // the token cannot start the required construct
)

var errorKindNames = [...]string{
	LexicalError:    "lexical error",
	ExpectedToken:   "expected token",
	UnexpectedEOF:   "unexpected end of input",
	UnexpectedToken: "unexpected token",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Diagnostic is a single problem found in the source.
// Expected and Found are only meaningful for ExpectedToken diagnostics.
type Diagnostic struct {
	Kind     ErrorKind
	Msg      string
	Span     Span
	Expected Token
	Found    Token
}

// Pos returns the start of the offending span.
func (d *Diagnostic) Pos() Pos {
	return d.Span.Start
}

func (d *Diagnostic) Error() string {
	return d.Span.Start.String() + ": " + d.Msg
}

// ErrorList is an ordered list of diagnostics.
type ErrorList []*Diagnostic

// Add appends d to the list.
func (l *ErrorList) Add(d *Diagnostic) {
	*l = append(*l, d)
}

// Len returns the number of diagnostics.
func (l ErrorList) Len() int {
	return len(l)
}

// Sort orders the list by source position. Diagnostics at the same
// position keep their reporting order.
func (l ErrorList) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Span.Start, l[j].Span.Start
		if a.filename != b.filename {
			return a.filename < b.filename
		}
		return a.offs < b.offs
	})
}

// Filter returns the diagnostics of the given kind.
func (l ErrorList) Filter(kind ErrorKind) ErrorList {
	var out ErrorList
	for _, d := range l {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Err returns l as an error, or nil if the list is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}
