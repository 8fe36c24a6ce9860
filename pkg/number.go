package matl

import (
	"math"
	"strconv"
	"strings"
)

type NumberKind int

const (
	NumberInteger NumberKind = iota
	NumberReal
)

func (k NumberKind) String() string {
	if k == NumberInteger {
		return "int"
	}

	return "real"
}

// Number is a tagged numeric value. Only the field matching Kind is
// meaningful.
type Number struct {
	Kind NumberKind
	Int  int64
	Real float64
}

func Int(v int64) Number {
	return Number{Kind: NumberInteger, Int: v}
}

func Real(v float64) Number {
	return Number{Kind: NumberReal, Real: v}
}

// ParseNumber converts a numeric lexeme. A lexeme containing a '.' is real,
// anything else must be an exact integer.
func ParseNumber(lexeme string) (Number, error) {
	if strings.ContainsRune(lexeme, '.') {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Number{}, err
		}

		return Real(f), nil
	}

	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Number{}, err
	}

	return Int(i), nil
}

func (n Number) IsInteger() bool {
	return n.Kind == NumberInteger
}

func (n Number) Float() float64 {
	if n.Kind == NumberInteger {
		return float64(n.Int)
	}

	return n.Real
}

// String renders integers without a decimal point and reals always with one,
// switching to exponent notation outside [1e-4, 1e16).
func (n Number) String() string {
	if n.Kind == NumberInteger {
		return strconv.FormatInt(n.Int, 10)
	}

	f := n.Real
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

func (n Number) add(m Number) (Number, error) {
	if n.IsInteger() && m.IsInteger() {
		r := n.Int + m.Int
		if (r > n.Int) != (m.Int > 0) {
			return Number{}, errIntegerOverflow
		}

		return Int(r), nil
	}

	return Real(n.Float() + m.Float()), nil
}

func (n Number) sub(m Number) (Number, error) {
	if n.IsInteger() && m.IsInteger() {
		r := n.Int - m.Int
		if (r < n.Int) != (m.Int > 0) {
			return Number{}, errIntegerOverflow
		}

		return Int(r), nil
	}

	return Real(n.Float() - m.Float()), nil
}

func (n Number) mul(m Number) (Number, error) {
	if n.IsInteger() && m.IsInteger() {
		if n.Int == 0 || m.Int == 0 {
			return Int(0), nil
		}

		r := n.Int * m.Int
		if r/m.Int != n.Int || (n.Int == -1 && m.Int == math.MinInt64) || (m.Int == -1 && n.Int == math.MinInt64) {
			return Number{}, errIntegerOverflow
		}

		return Int(r), nil
	}

	return Real(n.Float() * m.Float()), nil
}

// div always yields a real, even when both operands are integers and the
// quotient is exact.
func (n Number) div(m Number) (Number, error) {
	if m.Float() == 0 {
		return Number{}, errDivisionByZero
	}

	return Real(n.Float() / m.Float()), nil
}

func (n Number) neg() (Number, error) {
	if n.IsInteger() {
		if n.Int == math.MinInt64 {
			return Number{}, errIntegerOverflow
		}

		return Int(-n.Int), nil
	}

	return Real(-n.Real), nil
}

var (
	errIntegerOverflow = &EvaluationError{Reason: "integer overflow"}
	errDivisionByZero  = &EvaluationError{Reason: "division by zero"}
)
