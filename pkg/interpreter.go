package matl

import "fmt"

// Interpreter evaluates a parsed script by walking its tree. One Interpreter
// may run several scripts in sequence, but never concurrently.
type Interpreter struct {
	env *Environment

	// OnAssign, when set, is called after every successful assignment.
	OnAssign func(name string, v Number)
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Run executes root against env, or against a fresh environment when env is
// nil, and returns the environment. On error the bindings made by earlier
// statements stay in place.
func (in *Interpreter) Run(root *Compound, env *Environment) (*Environment, error) {
	if env == nil {
		env = NewEnvironment()
	}

	if root == nil {
		return env, &EvaluationError{Reason: "nothing to evaluate"}
	}

	in.env = env
	defer func() { in.env = nil }()

	_, err := in.VisitCompound(root)
	return env, err
}

func (in *Interpreter) visit(n Node) (Number, error) {
	if n == nil {
		return Number{}, &EvaluationError{Reason: "malformed tree: missing node"}
	}

	return n.Accept(in)
}

func (in *Interpreter) VisitCompound(n *Compound) (Number, error) {
	for _, stmt := range n.Statements {
		if _, err := in.visit(stmt); err != nil {
			return Number{}, err
		}
	}

	return Number{}, nil
}

func (in *Interpreter) VisitAssign(n *Assign) (Number, error) {
	v, err := in.visit(n.Value)
	if err != nil {
		return Number{}, err
	}

	in.env.Set(n.Name, v)
	if in.OnAssign != nil {
		in.OnAssign(n.Name, v)
	}

	return v, nil
}

func (in *Interpreter) VisitBinaryExpr(n *BinaryExpr) (Number, error) {
	lhs, err := in.visit(n.Op1)
	if err != nil {
		return Number{}, err
	}

	rhs, err := in.visit(n.Op2)
	if err != nil {
		return Number{}, err
	}

	switch n.Operation {
	case BinaryAddition:
		return lhs.add(rhs)
	case BinarySubtraction:
		return lhs.sub(rhs)
	case BinaryMultiplication:
		return lhs.mul(rhs)
	case BinaryDivision:
		return lhs.div(rhs)
	default:
		return Number{}, &EvaluationError{Reason: fmt.Sprintf("unexpected binary operator '%s'", n.Operation)}
	}
}

func (in *Interpreter) VisitUnaryExpr(n *UnaryExpr) (Number, error) {
	v, err := in.visit(n.Operand)
	if err != nil {
		return Number{}, err
	}

	switch n.Operation {
	case UnaryPositive:
		return v, nil
	case UnaryNegative:
		return v.neg()
	default:
		return Number{}, &EvaluationError{Reason: fmt.Sprintf("unexpected unary operator '%s'", n.Operation)}
	}
}

func (in *Interpreter) VisitIdentifier(n *Identifier) (Number, error) {
	v, ok := in.env.Get(n.Name)
	if !ok {
		return Number{}, &NameError{Loc: n.Loc, Name: n.Name}
	}

	return v, nil
}

func (in *Interpreter) VisitLiteralExpr(n *LiteralExpr) (Number, error) {
	return n.Value, nil
}

func (in *Interpreter) VisitEmpty(*Empty) (Number, error) {
	return Number{}, nil
}
