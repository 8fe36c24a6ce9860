package matl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.matl.dev/internal/test"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		src    string
		expect string
	}{
		{"x = 2 + 5", "x=2+5"},
		{"x = (2 + 5)", "x=2+5"},
		{"a = (1 + 2) * 3", "a=(1+2)*3"},
		{"a = 1 - (2 - 3)", "a=1-(2-3)"},
		{"a = (1 - 2) - 3", "a=1-2-3"},
		{"a = 8 / (4 * 2)", "a=8/(4*2)"},
		{"a = -(1 + 2)", "a=-(1+2)"},
		{"a = -+-1", "a=-+-1"},
		{"a = 2 * -b", "a=2*-b"},
		{"x = 10 / 2.0; ; y = x", "x=10/2.0;;y=x"},
		{"z = 5.", "z=5.0"},
		{"", ""},
	}

	for _, c := range cases {
		root, err := Read(c.src).Parse()
		require.NoError(t, err, c.src)
		assert.Equal(t, c.expect, Format(root), c.src)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		src := test.GetRandomScript(10)

		root, err := Read(src).Parse()
		require.NoError(t, err, src)

		text := Format(root)
		again, err := Read(text).Parse()
		require.NoError(t, err, text)

		assert.Equal(t, text, Format(again))
		assert.Equal(t, stripLocations(root), stripLocations(again), text)
	}
}

func stripLocations(n Node) Node {
	switch e := n.(type) {
	case *Compound:
		stmts := make([]Node, len(e.Statements))
		for i, s := range e.Statements {
			stmts[i] = stripLocations(s)
		}
		return &Compound{Statements: stmts}
	case *Assign:
		return &Assign{Name: e.Name, Value: stripLocations(e.Value)}
	case *BinaryExpr:
		return &BinaryExpr{Operation: e.Operation, Op1: stripLocations(e.Op1), Op2: stripLocations(e.Op2)}
	case *UnaryExpr:
		return &UnaryExpr{Operation: e.Operation, Operand: stripLocations(e.Operand)}
	case *Identifier:
		return &Identifier{Name: e.Name}
	default:
		return n
	}
}
