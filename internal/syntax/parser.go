package syntax

import (
	"bytes"
	"fmt"
	"io"
)

// Option configures a Parser.
type Option func(*Parser)

// WithComments keeps comments in File.Comments.
func WithComments() Option {
	return func(p *Parser) { p.keepComments = true }
}

// WithMaxErrors stops parsing after n diagnostics. 0 means no limit.
func WithMaxErrors(n int) Option {
	return func(p *Parser) { p.maxErrors = n }
}

// Parser performs syntax analysis on alna source code.
// A Parser is used for a single input and is not safe for concurrent use.
type Parser struct {
	stream *stream

	// Current token info (cached from stream)
	tok     Token
	lit     string
	kind    LitKind
	span    Span
	prevEnd Pos // end of the previously consumed token

	// Error handling
	errh        func(d *Diagnostic)
	diags       ErrorList
	maxErrors   int  // 0 = unlimited
	abort       bool // set to true when the error limit is reached
	eofReported bool // an unexpected-EOF diagnostic has been issued
	lastErr     int  // offset of the last syntax error, -1 if none

	// Context tracking
	keepComments bool
	depth        int // block nesting depth (0 = top-level)
}

// NewParser creates a new Parser for the given source.
// The errh function is called for each diagnostic as it is found; it may be nil.
func NewParser(filename string, src io.Reader, errh func(d *Diagnostic), opts ...Option) *Parser {
	p := &Parser{
		errh:    errh,
		lastErr: -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.stream = newStream(NewScanner(filename, src, p.report), p.keepComments)
	p.next() // prime the parser with first token
	p.prevEnd = p.span.Start
	return p
}

// Parse parses src and returns the tree together with all diagnostics.
// It never fails: malformed input yields a partial tree containing
// BadExpr and BadStmt placeholders.
func Parse(filename string, src []byte, opts ...Option) (*File, ErrorList) {
	p := NewParser(filename, bytes.NewReader(src), nil, opts...)
	f := p.Parse()
	return f, p.Diagnostics()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.prevEnd = p.span.End
	it := p.stream.next()
	p.tok = it.Tok
	p.lit = it.Lit
	p.kind = it.Kind
	p.span = it.Span
	if p.abort {
		p.tok = _EOF
	}
}

// peek returns the token following the current one.
func (p *Parser) peek() Token {
	return p.stream.peek(0).Tok
}

// atAssign reports whether the current token begins an assignment.
// There are no assignment expressions, so an identifier followed by =
// can only start a statement.
func (p *Parser) atAssign() bool {
	return p.tok == _Name && p.peek() == _Assign
}

// pos returns the start of the current token.
func (p *Parser) pos() Pos {
	return p.span.Start
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, it reports an error and assumes tok was present.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.errorExpected(tok)
	}
}

// closeParen consumes a closing parenthesis. A missing one is reported
// and assumed at the current position; the current token is not consumed.
func (p *Parser) closeParen() {
	p.want(_Rparen)
}

// ----------------------------------------------------------------------------
// Error handling

// report records a diagnostic from the scanner or the parser.
func (p *Parser) report(d *Diagnostic) {
	if p.abort {
		return
	}
	p.diags.Add(d)
	if p.errh != nil {
		p.errh(d)
	}
	p.errorLimitCheck(d)
}

// errorLimitCheck aborts parsing if too many errors have occurred.
func (p *Parser) errorLimitCheck(last *Diagnostic) {
	if p.maxErrors <= 0 || len(p.diags) < p.maxErrors {
		return
	}
	p.abort = true
	d := &Diagnostic{Kind: last.Kind, Msg: "too many errors", Span: last.Span}
	p.diags.Add(d)
	if p.errh != nil {
		p.errh(d)
	}
	p.tok = _EOF
}

// syntaxError reports a syntax error at the current token.
// At most one error is reported per token position, and at most one
// unexpected-EOF error per parse.
func (p *Parser) syntaxError(kind ErrorKind, expected Token, msg string) {
	if p.abort {
		return
	}
	if p.tok == _EOF {
		if p.eofReported {
			return
		}
		p.eofReported = true
		kind = UnexpectedEOF
	}
	if p.span.Start.offs == p.lastErr {
		return
	}
	p.lastErr = p.span.Start.offs

	p.report(&Diagnostic{
		Kind:     kind,
		Msg:      msg,
		Span:     p.span,
		Expected: expected,
		Found:    p.tok,
	})
}

// errorExpected reports that tok was required at the current position.
func (p *Parser) errorExpected(tok Token) {
	p.expectedError(tok, tokstring(tok))
}

// expectedError reports a missing token; what describes the acceptable
// alternatives for the message.
func (p *Parser) expectedError(tok Token, what string) {
	if p.tok == _EOF {
		p.syntaxError(ExpectedToken, tok, "unexpected end of input, expected "+what)
		return
	}
	p.syntaxError(ExpectedToken, tok, fmt.Sprintf("expected %s, found %s", what, p.found()))
}

// errorUnexpected reports that the current token cannot start what.
func (p *Parser) errorUnexpected(what string) {
	if p.tok == _EOF {
		p.syntaxError(UnexpectedToken, _EOF, "unexpected end of input, expected "+what)
		return
	}
	p.syntaxError(UnexpectedToken, _EOF, fmt.Sprintf("unexpected %s, expected %s", p.found(), what))
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	switch p.tok {
	case _Name:
		return "identifier " + p.lit
	case _Number:
		return "number " + p.lit
	}
	return tokstring(p.tok)
}

// tokstring returns a description of tok suitable for error messages.
func tokstring(tok Token) string {
	switch tok {
	case _Name:
		return "identifier"
	case _Number:
		return "number"
	case _EOF:
		return "end of input"
	}
	return tok.String()
}

// advance skips tokens until it finds a synchronization point:
// a token that starts a statement, the start of an assignment, a closing
// brace inside a block, a semicolon (which is consumed) or EOF.
func (p *Parser) advance() {
	for p.tok != _EOF {
		if p.tok.StartsStmt() || p.atAssign() || p.tok == _Rbrace && p.depth > 0 {
			return
		}
		if p.tok == _Semi {
			p.next()
			return
		}
		p.next()
	}
}

// skipUntil skips tokens until one of the stop tokens or EOF is current.
func (p *Parser) skipUntil(stop ...Token) {
	for p.tok != _EOF {
		for _, t := range stop {
			if p.tok == t {
				return
			}
		}
		p.next()
	}
}

// Diagnostics returns all diagnostics in the order they were found.
func (p *Parser) Diagnostics() ErrorList {
	return p.diags
}

// Errors returns the number of diagnostics encountered during parsing.
func (p *Parser) Errors() int {
	return len(p.diags)
}

// FirstError returns the first diagnostic encountered, or nil if none.
func (p *Parser) FirstError() error {
	if len(p.diags) == 0 {
		return nil
	}
	return p.diags[0]
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete source file and returns the AST.
func (p *Parser) Parse() *File {
	f := &File{}
	f.pos = p.pos()

	for p.tok != _EOF {
		if s := p.stmtOrNil(); s != nil {
			f.Stmts = append(f.Stmts, s)
		}
	}

	f.end = p.span.End
	if p.keepComments {
		f.Comments = p.stream.comments
	}
	return f
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{}
	n.pos = p.pos()
	if p.tok != _Name {
		p.errorExpected(_Name)
		// Return a placeholder for error recovery
		n.Value = "_"
		n.end = n.pos
		return n
	}
	n.Value = p.lit
	p.next()
	n.end = p.prevEnd
	return n
}

// typeName parses a type keyword. The caller has checked p.tok.
func (p *Parser) typeName() *TypeName {
	t := &TypeName{Kind: p.tok.TypeKind()}
	t.pos = p.pos()
	p.next()
	t.end = p.prevEnd
	return t
}

// badExpr returns an empty placeholder expression at the current position.
func (p *Parser) badExpr() *BadExpr {
	x := &BadExpr{}
	x.pos = p.pos()
	x.end = x.pos
	return x
}

// ----------------------------------------------------------------------------
// Statements

// stmtOrNil parses a statement. It returns nil for a stray semicolon.
//
// Statements need no terminator. A semicolon directly after a simple
// statement belongs to it and is consumed.
func (p *Parser) stmtOrNil() Stmt {
	switch p.tok {
	case _Semi:
		p.next()
		return nil

	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	case _While:
		return p.whileStmt()

	case _For:
		return p.forStmt()

	case _Return:
		s := p.returnStmt()
		p.got(_Semi)
		return s

	case _Break, _Continue:
		s := p.branchStmt()
		p.got(_Semi)
		return s
	}

	if p.tok.IsTypeKeyword() {
		s := p.declStmt()
		p.got(_Semi)
		return s
	}

	if p.tok.CanStartExpr() {
		s := p.simpleStmt()
		p.got(_Semi)
		return s
	}

	s := &BadStmt{}
	s.pos = p.pos()
	p.errorUnexpected("statement")
	p.next() // always make progress
	p.advance()
	s.end = p.prevEnd
	return s
}

// simpleStmt parses an assignment or an expression statement.
// An identifier followed by = is an assignment; anything else is an
// expression, which may itself resolve to a call.
func (p *Parser) simpleStmt() Stmt {
	if p.atAssign() {
		return p.assignStmt()
	}
	return p.exprStmt()
}

// assignStmt parses: Name = Expr
func (p *Parser) assignStmt() *AssignStmt {
	s := &AssignStmt{}
	s.pos = p.pos()
	s.Target = p.name()
	p.want(_Assign)
	s.Value = p.expr()
	s.end = p.prevEnd
	return s
}

// exprStmt parses an expression used as a statement.
func (p *Parser) exprStmt() *ExprStmt {
	s := &ExprStmt{}
	s.pos = p.pos()
	s.X = p.expr()
	s.end = p.prevEnd
	return s
}

// declStmt parses a statement starting with a type keyword:
//
//	Type Name = Expr               (variable declaration)
//	Type Name ( Params ) Block     (function declaration)
func (p *Parser) declStmt() Stmt {
	typ := p.typeName()
	name := p.name()
	if p.tok == _Lparen {
		return p.funcDecl(typ, name)
	}
	return p.varDecl(typ, name)
}

// varDecl parses the rest of a variable declaration: = Expr
func (p *Parser) varDecl(typ *TypeName, name *Name) *VarDecl {
	d := &VarDecl{Type: typ, Name: name}
	d.pos = typ.pos

	if p.got(_Assign) {
		d.Value = p.expr()
	} else {
		// Every declaration has an initializer.
		p.expectedError(_Assign, "= or (")
		d.Value = p.badExpr()
	}

	d.end = p.prevEnd
	return d
}

// funcDecl parses the rest of a function declaration: ( Params ) Block
func (p *Parser) funcDecl(result *TypeName, name *Name) *FuncDecl {
	d := &FuncDecl{Result: result, Name: name}
	d.pos = result.pos

	d.Params = p.paramList()

	if p.tok == _Lbrace {
		d.Body = p.blockStmt()
	} else {
		p.errorExpected(_Lbrace)
		d.Body = &BlockStmt{}
		d.Body.pos = p.pos()
		d.Body.end = d.Body.pos
	}

	d.end = p.prevEnd
	return d
}

// paramList parses (T1 p1, T2 p2, ...)
func (p *Parser) paramList() []*Param {
	p.next() // consume (

	var params []*Param
	for p.tok != _Rparen && p.tok != _EOF {
		if !p.tok.IsTypeKeyword() {
			p.errorUnexpected("parameter type")
			p.skipUntil(_Rparen, _Lbrace)
			break
		}

		par := &Param{}
		par.pos = p.pos()
		par.Type = p.typeName()
		par.Name = p.name()
		par.end = p.prevEnd
		params = append(params, par)

		if !p.got(_Comma) {
			break
		}
		if p.tok == _Rparen {
			p.syntaxError(UnexpectedToken, _EOF, "trailing comma in parameter list")
		}
	}

	p.closeParen()
	return params
}

// blockStmt parses { stmts... }
// A block left open at EOF is closed implicitly after the error is reported.
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos()

	p.want(_Lbrace)

	p.depth++
	for p.tok != _Rbrace && p.tok != _EOF {
		if s := p.stmtOrNil(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}
	p.depth--

	p.want(_Rbrace)

	b.end = p.prevEnd
	return b
}

// body parses the body of an if, while or for: a block, or a single
// statement wrapped in an implicit block.
func (p *Parser) body(context string) *BlockStmt {
	if p.tok == _Lbrace {
		return p.blockStmt()
	}

	b := &BlockStmt{Implicit: true}
	b.pos = p.pos()

	switch p.tok {
	case _EOF, _Rbrace, _Else:
		p.errorUnexpected(context + " body")
		b.end = b.pos
		return b
	}

	if s := p.stmtOrNil(); s != nil {
		b.Stmts = []Stmt{s}
	}
	b.end = p.prevEnd
	return b
}

// ifStmt parses: if Cond Body [else (IfStmt | Block)]
// An else always belongs to the innermost if.
func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos()

	p.want(_If)
	s.Cond = p.expr()
	s.Then = p.body("if")

	if p.got(_Else) {
		switch p.tok {
		case _If:
			s.Else = p.ifStmt() // else if
		case _Lbrace:
			s.Else = p.blockStmt() // else
		default:
			p.expectedError(_Lbrace, "if or {")
		}
	}

	s.end = p.prevEnd
	return s
}

// whileStmt parses: while Cond Body
func (p *Parser) whileStmt() *WhileStmt {
	s := &WhileStmt{}
	s.pos = p.pos()

	p.want(_While)
	s.Cond = p.expr()
	s.Body = p.body("while")

	s.end = p.prevEnd
	return s
}

// forStmt parses: for [Init] ; [Cond] ; [Post] Body
func (p *Parser) forStmt() *ForStmt {
	s := &ForStmt{}
	s.pos = p.pos()

	p.want(_For)

	if p.tok != _Semi {
		s.Init = p.forInit()
	}
	p.want(_Semi)

	if p.tok != _Semi {
		s.Cond = p.expr()
	}
	p.want(_Semi)

	// Without a post statement the body must start with a keyword or {.
	if p.tok.CanStartExpr() {
		s.Post = p.simpleStmt()
	}

	s.Body = p.body("for")

	s.end = p.prevEnd
	return s
}

// forInit parses the initializer of a for header: a variable
// declaration, an assignment or an expression.
func (p *Parser) forInit() Stmt {
	switch {
	case p.tok.IsTypeKeyword():
		typ := p.typeName()
		return p.varDecl(typ, p.name())
	case p.tok.CanStartExpr():
		return p.simpleStmt()
	}
	p.errorUnexpected("for initializer")
	p.skipUntil(_Semi, _Lbrace)
	return nil
}

// returnStmt parses: return [Expr]
// The result is taken whenever the next token can start an expression,
// unless that token begins an assignment.
func (p *Parser) returnStmt() *ReturnStmt {
	s := &ReturnStmt{}
	s.pos = p.pos()

	p.want(_Return)
	if p.tok.CanStartExpr() && !p.atAssign() {
		s.Result = p.expr()
	}

	s.end = p.prevEnd
	return s
}

// branchStmt parses: break or continue
func (p *Parser) branchStmt() *BranchStmt {
	s := &BranchStmt{Tok: p.tok}
	s.pos = p.pos()
	p.next()
	s.end = p.prevEnd
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(1)
}

// binaryExpr parses a binary expression whose operators bind at least
// as tightly as minPrec (precedence climbing).
func (p *Parser) binaryExpr(minPrec int) Expr {
	x := p.unaryExpr()

	for {
		tok := p.tok
		prec := tok.Precedence()
		if prec == 0 || prec < minPrec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &BinaryExpr{Op: tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		// Left-associative operators require the right operand to bind
		// strictly tighter, which groups equal-precedence chains to the left.
		next := prec + 1
		if tok.Assoc() == RightAssoc {
			next = prec
		}
		op.Y = p.binaryExpr(next)
		op.end = p.prevEnd
		x = op
	}
}

// unaryExpr parses a unary expression. Prefix operators apply to the
// immediately following unary expression, so they bind tighter than any
// binary operator (UnaryPrec) and nest to the right.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Not, _Sub:
		x := &UnaryExpr{Op: p.tok}
		x.pos = p.pos()
		p.next()
		x.X = p.unaryExpr()
		x.end = p.prevEnd
		return x
	}
	return p.operand()
}

// operand parses a primary expression.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		n := p.name()
		// One token of lookahead separates a call from a bare name.
		if p.tok == _Lparen {
			return p.callExpr(n)
		}
		return n

	case _Number:
		x := &NumberLit{Value: p.lit, Kind: p.kind}
		x.pos = p.pos()
		p.next()
		x.end = p.prevEnd
		return x

	case _True, _False:
		x := &BoolLit{Value: p.tok == _True}
		x.pos = p.pos()
		p.next()
		x.end = p.prevEnd
		return x

	case _Lparen: // parenthesized expression
		x := &ParenExpr{}
		x.pos = p.pos()
		p.next()
		x.X = p.expr()
		p.closeParen()
		x.end = p.prevEnd
		return x
	}

	x := p.badExpr()
	p.errorUnexpected("expression")
	// Closers are left for the enclosing construct.
	if p.tok != _Rparen && p.tok != _Comma {
		p.advance()
		if p.prevEnd.offs > x.pos.offs {
			x.end = p.prevEnd
		}
	}
	return x
}

// callExpr parses Fun(args...)
func (p *Parser) callExpr(fun *Name) *CallExpr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	p.closeParen()

	call.end = p.prevEnd
	return call
}

// exprList parses a comma-separated list of expressions.
// A trailing comma is an error.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		if p.tok == _Rparen {
			p.syntaxError(UnexpectedToken, _EOF, "trailing comma in argument list")
			break
		}
		list = append(list, p.expr())
	}
	return list
}
