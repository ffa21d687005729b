// Package report renders diagnostics against the source text they refer
// to, with surrounding lines and a caret underline.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/you-not-fish/alna/internal/syntax"
)

// ANSI escape sequences.
const (
	ansiReset = "\033[0m"
	ansiError = "\033[1;31m"
	ansiLoc   = "\033[36m"
)

// DefaultContext is the number of source lines shown before and after
// the offending line.
const DefaultContext = 2

// Renderer writes diagnostics with source excerpts.
type Renderer struct {
	Color   bool
	Context int // lines of context; negative means none
}

// New returns a Renderer with the default context.
func New(color bool) *Renderer {
	return &Renderer{Color: color, Context: DefaultContext}
}

// Source is the text a set of diagnostics refers to, split into lines.
type Source struct {
	lines []string
}

// NewSource splits src into lines. A trailing \r is dropped from each line.
func NewSource(src []byte) *Source {
	raw := bytes.Split(src, []byte("\n"))
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(bytes.TrimSuffix(l, []byte("\r")))
	}
	return &Source{lines: lines}
}

// Line returns the 1-based line n, and false if it does not exist.
func (s *Source) Line(n int) (string, bool) {
	if n < 1 || n > len(s.lines) {
		return "", false
	}
	return s.lines[n-1], true
}

// NumLines returns the number of lines, counting a final empty line after
// a trailing newline.
func (s *Source) NumLines() int {
	return len(s.lines)
}

func (r *Renderer) paint(code, text string) string {
	if !r.Color {
		return text
	}
	return code + text + ansiReset
}

// Render writes one diagnostic:
//
//	file.alna:3:9: error: expected ), found identifier c
//	  2 | int x = 1
//	  3 | y = (a + b c
//	    |           ^
//	  4 | z = 2
func (r *Renderer) Render(w io.Writer, src *Source, d *syntax.Diagnostic) error {
	var b strings.Builder

	start := d.Span.Start
	b.WriteString(r.paint(ansiLoc, start.String()))
	b.WriteString(": ")
	b.WriteString(r.paint(ansiError, "error:"))
	b.WriteString(" " + d.Msg + "\n")

	line := int(start.Line())
	text, ok := src.Line(line)
	if !ok {
		_, err := io.WriteString(w, b.String())
		return err
	}

	ctx := r.Context
	if ctx < 0 {
		ctx = 0
	}
	first := max(1, line-ctx)
	last := min(src.NumLines(), line+ctx)
	// A final empty line is only shown when it holds the diagnostic.
	if last > line {
		if l, _ := src.Line(last); l == "" && last == src.NumLines() {
			last--
		}
	}
	width := len(fmt.Sprint(last))

	for n := first; n < line; n++ {
		l, _ := src.Line(n)
		fmt.Fprintf(&b, "  %*d | %s\n", width, n, l)
	}
	fmt.Fprintf(&b, "  %*d | %s\n", width, line, text)

	fmt.Fprintf(&b, "  %s | %s", strings.Repeat(" ", width), padding(text, int(start.Col())-1))
	b.WriteString(r.paint(ansiError, strings.Repeat("^", caretWidth(d.Span, text))))
	if d.Kind == syntax.UnexpectedEOF {
		b.WriteString(" " + r.paint(ansiError, "expected more input here"))
	}
	b.WriteString("\n")

	for n := line + 1; n <= last; n++ {
		l, _ := src.Line(n)
		fmt.Fprintf(&b, "  %*d | %s\n", width, n, l)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderAll writes every diagnostic in errs, separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, src []byte, errs syntax.ErrorList) error {
	s := NewSource(src)
	for i, d := range errs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, s, d); err != nil {
			return err
		}
	}
	return nil
}

// padding returns the whitespace that puts a caret under column col
// (0-based, in characters) of line. Tabs are kept so the caret lines up.
func padding(line string, col int) string {
	var b strings.Builder
	for _, r := range line {
		if col <= 0 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		col--
	}
	b.WriteString(strings.Repeat(" ", max(col, 0)))
	return b.String()
}

// caretWidth is the number of characters of span on its first line,
// at least one.
func caretWidth(span syntax.Span, line string) int {
	start, end := span.Start, span.End
	var n int
	if end.Line() == start.Line() {
		n = int(end.Col()) - int(start.Col())
	} else {
		// Underline to the end of the first line.
		n = utf8.RuneCountInString(line) - int(start.Col()) + 1
	}
	return max(n, 1)
}

// Summary returns a one-line count such as "3 errors".
func Summary(errs syntax.ErrorList) string {
	switch n := errs.Len(); n {
	case 0:
		return "no errors"
	case 1:
		return "1 error"
	default:
		return fmt.Sprintf("%d errors", n)
	}
}
