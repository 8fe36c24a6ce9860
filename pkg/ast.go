package matl

// Node is one of the seven tree variants below. The set is closed by the
// unexported marker method, and Accept dispatches to the matching Visitor
// method so every walker handles all of them.
type Node interface {
	Accept(v Visitor) (Number, error)
	node()
}

type Visitor interface {
	VisitCompound(*Compound) (Number, error)
	VisitAssign(*Assign) (Number, error)
	VisitBinaryExpr(*BinaryExpr) (Number, error)
	VisitUnaryExpr(*UnaryExpr) (Number, error)
	VisitIdentifier(*Identifier) (Number, error)
	VisitLiteralExpr(*LiteralExpr) (Number, error)
	VisitEmpty(*Empty) (Number, error)
}

// Compound is the root of a parsed script.
type Compound struct {
	Statements []Node
}

type Assign struct {
	Name  string
	Value Node
	Loc   *Location
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Node
	Op2       Node
}

type UnaryOp string

const (
	UnaryPositive UnaryOp = "+"
	UnaryNegative UnaryOp = "-"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Node
}

// Identifier is a variable reference, resolved only when evaluated.
type Identifier struct {
	Name string
	Loc  *Location
}

type LiteralExpr struct {
	Value Number
}

// Empty is the statement parsed where nothing was written, e.g. between
// two semicolons.
type Empty struct{}

func (n *Compound) Accept(v Visitor) (Number, error)    { return v.VisitCompound(n) }
func (n *Assign) Accept(v Visitor) (Number, error)      { return v.VisitAssign(n) }
func (n *BinaryExpr) Accept(v Visitor) (Number, error)  { return v.VisitBinaryExpr(n) }
func (n *UnaryExpr) Accept(v Visitor) (Number, error)   { return v.VisitUnaryExpr(n) }
func (n *Identifier) Accept(v Visitor) (Number, error)  { return v.VisitIdentifier(n) }
func (n *LiteralExpr) Accept(v Visitor) (Number, error) { return v.VisitLiteralExpr(n) }
func (n *Empty) Accept(v Visitor) (Number, error)       { return v.VisitEmpty(n) }

func (*Compound) node()    {}
func (*Assign) node()      {}
func (*BinaryExpr) node()  {}
func (*UnaryExpr) node()   {}
func (*Identifier) node()  {}
func (*LiteralExpr) node() {}
func (*Empty) node()       {}
