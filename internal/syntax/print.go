package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labelled child one level deeper.
func (p *printer) field(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) print(node Node) {
	if isNil(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s\n", n.pos)
		p.indent++
		p.printf("Type: %s\n", typeString(n.Type))
		p.printf("Name: %s\n", n.Name.Value)
		p.field("Value", n.Value)
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, par := range n.Params {
				p.printf("%s %s\n", typeString(par.Type), par.Name.Value)
			}
			p.indent--
		}
		p.printf("Result: %s\n", typeString(n.Result))
		if n.Body != nil {
			p.field("Body", n.Body)
		}
		p.indent--

	case *BlockStmt:
		if n.Implicit {
			p.printf("BlockStmt %s implicit\n", n.pos)
		} else {
			p.printf("BlockStmt %s\n", n.pos)
		}
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Then", n.Then)
		if n.Else != nil {
			p.field("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Body", n.Body)
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.field("Init", n.Init)
		}
		if n.Cond != nil {
			p.field("Cond", n.Cond)
		}
		if n.Post != nil {
			p.field("Post", n.Post)
		}
		p.field("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *BranchStmt:
		p.printf("BranchStmt %s %s\n", n.pos, n.Tok)

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("Target: %s\n", n.Target.Value)
		p.field("Value", n.Value)
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BadStmt:
		p.printf("BadStmt %s\n", n.pos)

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *NumberLit:
		p.printf("NumberLit %s %s %q\n", n.pos, n.Kind, n.Value)

	case *BoolLit:
		p.printf("BoolLit %s %t\n", n.pos, n.Value)

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.field("X", n.X)
		p.field("Y", n.Y)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.printf("Fun: %s\n", n.Fun.Value)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BadExpr:
		p.printf("BadExpr %s\n", n.pos)

	case *TypeName:
		p.printf("TypeName %s %s\n", n.pos, n.Kind)

	case *Param:
		p.printf("Param %s %s %s\n", n.pos, typeString(n.Type), n.Name.Value)

	default:
		p.printf("<%T>\n", node)
	}
}

// isNil reports whether node is nil or a typed nil pointer.
func isNil(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *BlockStmt:
		return n == nil
	case *Name:
		return n == nil
	case *TypeName:
		return n == nil
	}
	return false
}

// typeString returns the keyword of a type name.
func typeString(t *TypeName) string {
	if t == nil {
		return "<nil>"
	}
	return t.Kind.String()
}
