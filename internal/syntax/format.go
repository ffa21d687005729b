package syntax

import (
	"errors"
	"io"
	"strings"
)

// ErrBadSyntax is returned by Format for trees that contain BadExpr or
// BadStmt placeholders.
var ErrBadSyntax = errors.New("cannot format a file with syntax errors")

// Format writes file as canonical alna source: one statement per line,
// four-space indentation and a semicolon after every simple statement.
// Comments are not reproduced.
//
// Parsing the output yields a tree with the same structure as file.
func Format(w io.Writer, file *File) error {
	bad := false
	Inspect(file, func(n Node) bool {
		switch n.(type) {
		case *BadExpr, *BadStmt:
			bad = true
		}
		return !bad
	})
	if bad {
		return ErrBadSyntax
	}

	f := &formatter{w: w}
	for _, s := range file.Stmts {
		f.stmt(s)
		f.write("\n")
	}
	return f.err
}

// FormatString is like Format but returns the text.
func FormatString(file *File) (string, error) {
	var b strings.Builder
	if err := Format(&b, file); err != nil {
		return "", err
	}
	return b.String(), nil
}

type formatter struct {
	w      io.Writer
	indent int
	err    error // first write error
}

func (f *formatter) write(s string) {
	if f.err == nil {
		_, f.err = io.WriteString(f.w, s)
	}
}

func (f *formatter) newline() {
	f.write("\n" + strings.Repeat("    ", f.indent))
}

// stmt writes a statement starting at the current column.
func (f *formatter) stmt(s Stmt) {
	switch s := s.(type) {
	case *VarDecl, *AssignStmt, *ExprStmt:
		f.simple(s)
		f.write(";")

	case *ReturnStmt:
		f.write("return")
		if s.Result != nil {
			f.write(" ")
			f.expr(s.Result)
		}
		f.write(";")

	case *BranchStmt:
		f.write(s.Tok.String() + ";")

	case *BlockStmt:
		f.block(s)

	case *IfStmt:
		f.write("if ")
		f.expr(s.Cond)
		f.body(s.Then)
		switch e := s.Else.(type) {
		case *IfStmt:
			f.write(" else ")
			f.stmt(e)
		case *BlockStmt:
			f.write(" else ")
			f.block(e)
		}

	case *WhileStmt:
		f.write("while ")
		f.expr(s.Cond)
		f.body(s.Body)

	case *ForStmt:
		f.write("for ")
		if s.Init != nil {
			f.simple(s.Init)
		}
		f.write(";")
		if s.Cond != nil {
			f.write(" ")
			f.expr(s.Cond)
		}
		f.write(";")
		if s.Post != nil {
			f.write(" ")
			f.simple(s.Post)
		}
		f.body(s.Body)

	case *FuncDecl:
		f.write(typeString(s.Result) + " " + s.Name.Value + "(")
		for i, par := range s.Params {
			if i > 0 {
				f.write(", ")
			}
			f.write(typeString(par.Type) + " " + par.Name.Value)
		}
		f.write(") ")
		f.block(s.Body)
	}
}

// simple writes a declaration, assignment or expression statement
// without its terminator.
func (f *formatter) simple(s Stmt) {
	switch s := s.(type) {
	case *VarDecl:
		f.write(typeString(s.Type) + " " + s.Name.Value + " = ")
		f.expr(s.Value)
	case *AssignStmt:
		f.write(s.Target.Value + " = ")
		f.expr(s.Value)
	case *ExprStmt:
		f.expr(s.X)
	}
}

func (f *formatter) block(b *BlockStmt) {
	if len(b.Stmts) == 0 {
		f.write("{}")
		return
	}
	f.write("{")
	f.indent++
	for _, s := range b.Stmts {
		f.newline()
		f.stmt(s)
	}
	f.indent--
	f.newline()
	f.write("}")
}

// body writes the body of an if, while or for. An implicit block is
// written as its single statement on the same line, or as a lone
// semicolon when empty.
func (f *formatter) body(b *BlockStmt) {
	f.write(" ")
	switch {
	case !b.Implicit:
		f.block(b)
	case len(b.Stmts) == 0:
		f.write(";")
	default:
		f.stmt(b.Stmts[0])
	}
}

func (f *formatter) expr(x Expr) {
	switch x := x.(type) {
	case *Name:
		f.write(x.Value)
	case *NumberLit:
		f.write(x.Value)
	case *BoolLit:
		if x.Value {
			f.write("true")
		} else {
			f.write("false")
		}
	case *UnaryExpr:
		f.write(x.Op.String())
		f.expr(x.X)
	case *BinaryExpr:
		f.expr(x.X)
		f.write(" " + x.Op.String() + " ")
		f.expr(x.Y)
	case *ParenExpr:
		f.write("(")
		f.expr(x.X)
		f.write(")")
	case *CallExpr:
		f.write(x.Fun.Value + "(")
		for i, arg := range x.Args {
			if i > 0 {
				f.write(", ")
			}
			f.expr(arg)
		}
		f.write(")")
	}
}
