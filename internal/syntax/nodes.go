package syntax

import "github.com/you-not-fish/alna/internal/types"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Statements.
// Declarations are statements in alna. All nodes implement the Node
// interface; expression and statement nodes further implement their
// respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos   // position of first character belonging to the node
	End() Pos   // position of first character immediately after the node
	Span() Span // [Pos(), End())
	aNode()     // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Alternative is the else branch of an IfStmt.
// It is implemented only by *BlockStmt and *IfStmt.
type Alternative interface {
	Stmt
	aAlt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
// Both ends are set once by the parser from the node's first and last token.
type node struct {
	pos Pos
	end Pos
}

func (n *node) Pos() Pos   { return n.pos }
func (n *node) End() Pos   { return n.end }
func (n *node) Span() Span { return Span{Start: n.pos, End: n.end} }
func (n *node) aNode()     {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// File

// File represents a complete source file: the ordered top-level statements.
type File struct {
	node
	Stmts    []Stmt
	Comments []*Comment // only populated when parsing WithComments
}

// Comment is a line or block comment. Comments never appear in the tree;
// they are collected out of band.
type Comment struct {
	Text  string // exact source text including the delimiters
	Block bool   // /* */ style
	Span  Span
}

// ----------------------------------------------------------------------------
// Types

// TypeName is a primitive type keyword in a declaration.
type TypeName struct {
	node
	Kind types.Kind
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// NumberLit represents a number literal; Value is the unmodified source text.
type NumberLit struct {
	expr
	Value string
	Kind  LitKind
}

// BoolLit represents true or false.
type BoolLit struct {
	expr
	Value bool
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr represents Op X, where Op is ! or -.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// ParenExpr represents (X). Parentheses are kept so that the tree
// reflects the source.
type ParenExpr struct {
	expr
	X Expr
}

// CallExpr represents Fun(Args...). Only named functions can be called.
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// BadExpr is a placeholder for an expression that could not be parsed.
type BadExpr struct {
	expr
}

// ----------------------------------------------------------------------------
// Statements

// VarDecl represents Type Name = Value.
type VarDecl struct {
	stmt
	Type  *TypeName
	Name  *Name
	Value Expr
}

// AssignStmt represents Target = Value.
type AssignStmt struct {
	stmt
	Target *Name
	Value  Expr
}

// IfStmt represents if Cond Then [else Else].
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else Alternative // nil, *BlockStmt or *IfStmt
}

func (*IfStmt) aAlt() {}

// WhileStmt represents while Cond Body.
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// ForStmt represents for [Init]; [Cond]; [Post] Body.
// Absent header parts are nil.
type ForStmt struct {
	stmt
	Init Stmt // *VarDecl, *AssignStmt or *ExprStmt
	Cond Expr
	Post Stmt // *AssignStmt or *ExprStmt
	Body *BlockStmt
}

// ReturnStmt represents return [Result].
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}

// BranchStmt represents break or continue.
type BranchStmt struct {
	stmt
	Tok Token // Break or Continue
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// BlockStmt represents { Stmts... }.
// An Implicit block wraps the single unbraced statement used as the body
// of an if, while or for.
type BlockStmt struct {
	stmt
	Stmts    []Stmt
	Implicit bool
}

func (*BlockStmt) aAlt() {}

// FuncDecl represents Result Name(Params) Body.
type FuncDecl struct {
	stmt
	Result *TypeName
	Name   *Name
	Params []*Param
	Body   *BlockStmt
}

// Param is a single function parameter: Type Name.
type Param struct {
	node
	Type *TypeName
	Name *Name
}

// BadStmt is a placeholder for a statement that could not be parsed.
type BadStmt struct {
	stmt
}
