package matl

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ValueLookup tracks the SSA value currently bound to each variable, in
// first-assignment order.
type ValueLookup struct {
	vals  map[string]value.Value
	names []string
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	if _, ok := l.vals[id]; !ok {
		l.names = append(l.names, id)
	}

	l.vals[id] = val
}

func (l *ValueLookup) Names() []string {
	return l.names
}

// LLVMIRBuilder lowers a script into an LLVM module whose main function
// computes every assignment and prints the final bindings. Integers are i64
// and reals are double, following the interpreter's typing rules.
type LLVMIRBuilder struct {
	mod      *ir.Module
	block    *ir.Block
	values   *ValueLookup
	builtins map[string]*ir.Func
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:      ir.NewModule(),
		values:   NewValueLookup(),
		builtins: make(map[string]*ir.Func),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) Build(root *Compound) (*ir.Module, error) {
	if root == nil {
		return nil, &EvaluationError{Reason: "nothing to compile"}
	}

	// Scripts take no input, so division by zero, overflow and undefined
	// names are all known before any code is emitted.
	if _, err := NewInterpreter().Run(root, nil); err != nil {
		return nil, err
	}

	f := b.mod.NewFunc("main", types.I32)
	b.block = f.NewBlock("entry")

	for _, stmt := range root.Statements {
		if err := b.statement(stmt); err != nil {
			return nil, err
		}
	}

	for _, name := range b.values.Names() {
		v, _ := b.values.Get(name)
		b.printBinding(name, v)
	}

	b.block.NewRet(constant.NewInt(types.I32, 0))
	return b.mod, nil
}

func (b *LLVMIRBuilder) statement(n Node) error {
	switch e := n.(type) {
	case *Assign:
		v, err := b.recursiveLoad(e.Value)
		if err != nil {
			return err
		}

		b.values.Set(e.Name, v)
		return nil
	case *Empty:
		return nil
	default:
		return &EvaluationError{Reason: fmt.Sprintf("unexpected statement %T", n)}
	}
}

func (b *LLVMIRBuilder) recursiveLoad(n Node) (value.Value, error) {
	switch e := n.(type) {
	case *LiteralExpr:
		return loadLiteral(e.Value), nil
	case *BinaryExpr:
		return b.binaryExpression(e)
	case *UnaryExpr:
		return b.unaryExpression(e)
	case *Identifier:
		v, ok := b.values.Get(e.Name)
		if !ok {
			return nil, &NameError{Loc: e.Loc, Name: e.Name}
		}

		return v, nil
	default:
		return nil, &EvaluationError{Reason: fmt.Sprintf("unexpected expression %T", n)}
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, error) {
	v1, err := b.recursiveLoad(expr.Op1)
	if err != nil {
		return nil, err
	}

	v2, err := b.recursiveLoad(expr.Op2)
	if err != nil {
		return nil, err
	}

	if expr.Operation == BinaryDivision {
		return b.block.NewFDiv(b.toReal(v1), b.toReal(v2)), nil
	}

	if !isReal(v1) && !isReal(v2) {
		switch expr.Operation {
		case BinaryAddition:
			return b.block.NewAdd(v1, v2), nil
		case BinarySubtraction:
			return b.block.NewSub(v1, v2), nil
		case BinaryMultiplication:
			return b.block.NewMul(v1, v2), nil
		}
	} else {
		v1, v2 = b.toReal(v1), b.toReal(v2)
		switch expr.Operation {
		case BinaryAddition:
			return b.block.NewFAdd(v1, v2), nil
		case BinarySubtraction:
			return b.block.NewFSub(v1, v2), nil
		case BinaryMultiplication:
			return b.block.NewFMul(v1, v2), nil
		}
	}

	return nil, &EvaluationError{Reason: fmt.Sprintf("unexpected binary operator '%s'", expr.Operation)}
}

func (b *LLVMIRBuilder) unaryExpression(expr *UnaryExpr) (value.Value, error) {
	v, err := b.recursiveLoad(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Operation {
	case UnaryPositive:
		return v, nil
	case UnaryNegative:
		if isReal(v) {
			return b.block.NewFNeg(v), nil
		}

		return b.block.NewSub(constant.NewInt(types.I64, 0), v), nil
	default:
		return nil, &EvaluationError{Reason: fmt.Sprintf("unexpected unary operator '%s'", expr.Operation)}
	}
}

func (b *LLVMIRBuilder) toReal(v value.Value) value.Value {
	if isReal(v) {
		return v
	}

	if c, ok := v.(*constant.Int); ok {
		return constant.NewFloat(types.Double, float64(c.X.Int64()))
	}

	return b.block.NewSIToFP(v, types.Double)
}

func (b *LLVMIRBuilder) printBinding(name string, v value.Value) {
	fn := b.builtins[builtinPrintInt]
	if isReal(v) {
		fn = b.builtins[builtinPrintReal]
	}

	b.block.NewCall(fn, b.stringConstant(".name."+name, name), v)
}

func (b *LLVMIRBuilder) stringConstant(global, s string) constant.Constant {
	return stringConstant(b.mod, global, s)
}

func loadLiteral(n Number) value.Value {
	if n.IsInteger() {
		return constant.NewInt(types.I64, n.Int)
	}

	return constant.NewFloat(types.Double, n.Real)
}

func isReal(v value.Value) bool {
	return v.Type().Equal(types.Double)
}
