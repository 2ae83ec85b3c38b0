package compiler

// The syntax tree is internal to the package: the build step goes straight
// from parsed functions to a compiled Unit.

type position struct {
	line   int
	column int
}

// funcDecl is one `pub fn name(params) { body }` declaration.
type funcDecl struct {
	name   string
	public bool
	params []string
	body   *blockExpr
	pos    position
}

// blockExpr is a braced sequence of statements. When tail is non-nil the
// block evaluates to it; otherwise the block evaluates to the unit value.
type blockExpr struct {
	stmts []stmt
	tail  expr
	pos   position
}

type stmt interface {
	stmtNode()
}

// letStmt binds the value of an expression to a new local.
type letStmt struct {
	name  string
	value expr
	pos   position
}

// exprStmt evaluates an expression for its effects and drops the result.
type exprStmt struct {
	value expr
	pos   position
}

func (*letStmt) stmtNode()  {}
func (*exprStmt) stmtNode() {}

type expr interface {
	exprNode()
	position() position
}

type intLit struct {
	value int64
	pos   position
}

type floatLit struct {
	value float64
	pos   position
}

type boolLit struct {
	value bool
	pos   position
}

type charLit struct {
	value rune
	pos   position
}

type stringLit struct {
	value string
	pos   position
}

type unitLit struct {
	pos position
}

// identExpr references a local binding or parameter.
type identExpr struct {
	name string
	pos  position
}

// binaryExpr is a left-associative arithmetic expression.
type binaryExpr struct {
	op    tokenKind
	left  expr
	right expr
	pos   position
}

// callExpr calls a function by name. Resolution to a compiled function or a
// native registration happens at run time, by hash.
type callExpr struct {
	name string
	args []expr
	pos  position
}

// tupleExpr builds a tuple from its elements, first element deepest.
type tupleExpr struct {
	elems []expr
	pos   position
}

// vecExpr builds a vector from its elements, first element deepest.
type vecExpr struct {
	elems []expr
	pos   position
}

func (*intLit) exprNode()     {}
func (*floatLit) exprNode()   {}
func (*boolLit) exprNode()    {}
func (*charLit) exprNode()    {}
func (*stringLit) exprNode()  {}
func (*unitLit) exprNode()    {}
func (*identExpr) exprNode()  {}
func (*binaryExpr) exprNode() {}
func (*callExpr) exprNode()   {}
func (*tupleExpr) exprNode()  {}
func (*vecExpr) exprNode()    {}

func (e *intLit) position() position     { return e.pos }
func (e *floatLit) position() position   { return e.pos }
func (e *boolLit) position() position    { return e.pos }
func (e *charLit) position() position    { return e.pos }
func (e *stringLit) position() position  { return e.pos }
func (e *unitLit) position() position    { return e.pos }
func (e *identExpr) position() position  { return e.pos }
func (e *binaryExpr) position() position { return e.pos }
func (e *callExpr) position() position   { return e.pos }
func (e *tupleExpr) position() position  { return e.pos }
func (e *vecExpr) position() position    { return e.pos }
