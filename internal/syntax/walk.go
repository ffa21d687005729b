package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, visiting children in
// source order. If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		walkStmts(n.Stmts, v)

	// Statements
	case *VarDecl:
		walkType(n.Type, v)
		walkName(n.Name, v)
		walkExpr(n.Value, v)

	case *AssignStmt:
		walkName(n.Target, v)
		walkExpr(n.Value, v)

	case *IfStmt:
		walkExpr(n.Cond, v)
		walkBlock(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		walkExpr(n.Cond, v)
		walkBlock(n.Body, v)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		walkExpr(n.Cond, v)
		if n.Post != nil {
			Walk(n.Post, v)
		}
		walkBlock(n.Body, v)

	case *ReturnStmt:
		walkExpr(n.Result, v)

	case *ExprStmt:
		walkExpr(n.X, v)

	case *BlockStmt:
		walkStmts(n.Stmts, v)

	case *FuncDecl:
		walkType(n.Result, v)
		walkName(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		walkBlock(n.Body, v)

	case *Param:
		walkType(n.Type, v)
		walkName(n.Name, v)

	// Expressions
	case *BinaryExpr:
		walkExpr(n.X, v)
		walkExpr(n.Y, v)

	case *UnaryExpr:
		walkExpr(n.X, v)

	case *ParenExpr:
		walkExpr(n.X, v)

	case *CallExpr:
		walkName(n.Fun, v)
		for _, arg := range n.Args {
			walkExpr(arg, v)
		}

	// Leaf nodes: no children
	case *Name, *NumberLit, *BoolLit, *TypeName, *BadExpr, *BadStmt, *BranchStmt:
	}
}

// The helpers below skip nil children so that a typed nil pointer is
// never handed to the visitor.

func walkStmts(list []Stmt, v Visitor) {
	for _, s := range list {
		if s != nil {
			Walk(s, v)
		}
	}
}

func walkExpr(x Expr, v Visitor) {
	if x != nil {
		Walk(x, v)
	}
}

func walkName(n *Name, v Visitor) {
	if n != nil {
		Walk(n, v)
	}
}

func walkType(t *TypeName, v Visitor) {
	if t != nil {
		Walk(t, v)
	}
}

func walkBlock(b *BlockStmt, v Visitor) {
	if b != nil {
		Walk(b, v)
	}
}

// Inspect traverses an AST in depth-first order.
// It is a convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, f)
}
