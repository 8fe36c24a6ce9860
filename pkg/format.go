package matl

import (
	"strconv"
	"strings"
)

const (
	precAdditive = iota + 1
	precMultiplicative
	precUnary
	precAtom
)

// Format renders a tree back into source text, e.g. "x=2+5;y=(x-1)*2".
// Parentheses are only emitted where precedence or left-associativity needs
// them, so parsing the output yields the same tree again.
func Format(n Node) string {
	var sb strings.Builder
	format(&sb, n)
	return sb.String()
}

func format(sb *strings.Builder, n Node) {
	switch e := n.(type) {
	case *Compound:
		for i, stmt := range e.Statements {
			if i > 0 {
				sb.WriteByte(';')
			}
			format(sb, stmt)
		}
	case *Assign:
		sb.WriteString(e.Name)
		sb.WriteByte('=')
		format(sb, e.Value)
	case *BinaryExpr:
		prec := precedence(e)
		formatOperand(sb, e.Op1, prec > precedence(e.Op1))
		sb.WriteString(string(e.Operation))
		formatOperand(sb, e.Op2, prec >= precedence(e.Op2))
	case *UnaryExpr:
		sb.WriteString(string(e.Operation))
		formatOperand(sb, e.Operand, precUnary > precedence(e.Operand))
	case *Identifier:
		sb.WriteString(e.Name)
	case *LiteralExpr:
		sb.WriteString(formatLiteral(e.Value))
	case *Empty:
	}
}

func formatOperand(sb *strings.Builder, n Node, parens bool) {
	if parens {
		sb.WriteByte('(')
	}

	format(sb, n)

	if parens {
		sb.WriteByte(')')
	}
}

func precedence(n Node) int {
	switch e := n.(type) {
	case *BinaryExpr:
		if e.Operation == BinaryMultiplication || e.Operation == BinaryDivision {
			return precMultiplicative
		}

		return precAdditive
	case *UnaryExpr:
		return precUnary
	case *LiteralExpr:
		if e.Value.Float() < 0 {
			return precUnary
		}

		return precAtom
	default:
		return precAtom
	}
}

// Real literals are written in plain decimal notation so the scanner, which
// has no exponent syntax, can read them back.
func formatLiteral(n Number) string {
	if n.IsInteger() {
		return strconv.FormatInt(n.Int, 10)
	}

	s := strconv.FormatFloat(n.Real, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
