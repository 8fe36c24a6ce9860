package matl

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type BufferedTokenizerMocker struct {
	buf []Token
	pos int
}

func NewBufferedTokenizerMocker(toks []Token) *BufferedTokenizerMocker {
	return &BufferedTokenizerMocker{
		buf: toks,
		pos: 0,
	}
}

func (b *BufferedTokenizerMocker) NextToken() (Token, error) {
	if len(b.buf) <= b.pos {
		return Token{Typ: TokenEOF}, nil
	}

	tok := b.buf[b.pos]
	b.pos++

	return tok, nil
}

func num(lexeme string) Token {
	if strings.ContainsRune(lexeme, '.') {
		return Token{Typ: TokenFloat, Value: lexeme}
	}

	return Token{Typ: TokenInteger, Value: lexeme}
}

func id(name string) Token {
	return Token{Typ: TokenID, Value: name}
}

var (
	tokAssign = Token{Typ: TokenAssign, Value: "="}
	tokPlus   = Token{Typ: TokenPlus, Value: "+"}
	tokMinus  = Token{Typ: TokenMinus, Value: "-"}
	tokMul    = Token{Typ: TokenMul, Value: "*"}
	tokDiv    = Token{Typ: TokenDiv, Value: "/"}
	tokOpen   = Token{Typ: TokenOpenParentheses, Value: "("}
	tokClose  = Token{Typ: TokenCloseParentheses, Value: ")"}
	tokSemi   = Token{Typ: TokenSemi, Value: ";"}
)

func intLit(v int64) *LiteralExpr {
	return &LiteralExpr{Value: Int(v)}
}

func TestParser(t *testing.T) {
	cases := []struct {
		data   []Token
		fail   bool
		expect []Node
	}{
		{
			nil,
			false,
			[]Node{&Empty{}},
		},
		{
			[]Token{id("x"), tokAssign, num("1"), tokPlus, num("2"), tokMul, num("3")},
			false,
			[]Node{
				&Assign{
					Name: "x",
					Value: &BinaryExpr{
						Operation: BinaryAddition,
						Op1:       intLit(1),
						Op2: &BinaryExpr{
							Operation: BinaryMultiplication,
							Op1:       intLit(2),
							Op2:       intLit(3),
						},
					},
				},
			},
		},
		{
			// Left associativity: (1 - 2) - 3
			[]Token{id("x"), tokAssign, num("1"), tokMinus, num("2"), tokMinus, num("3")},
			false,
			[]Node{
				&Assign{
					Name: "x",
					Value: &BinaryExpr{
						Operation: BinarySubtraction,
						Op1: &BinaryExpr{
							Operation: BinarySubtraction,
							Op1:       intLit(1),
							Op2:       intLit(2),
						},
						Op2: intLit(3),
					},
				},
			},
		},
		{
			// (8 / 4) * 2
			[]Token{id("x"), tokAssign, num("8"), tokDiv, num("4"), tokMul, num("2")},
			false,
			[]Node{
				&Assign{
					Name: "x",
					Value: &BinaryExpr{
						Operation: BinaryMultiplication,
						Op1: &BinaryExpr{
							Operation: BinaryDivision,
							Op1:       intLit(8),
							Op2:       intLit(4),
						},
						Op2: intLit(2),
					},
				},
			},
		},
		{
			[]Token{id("x"), tokAssign, tokOpen, num("1"), tokPlus, num("3"), tokClose, tokMul, num("2.5")},
			false,
			[]Node{
				&Assign{
					Name: "x",
					Value: &BinaryExpr{
						Operation: BinaryMultiplication,
						Op1: &BinaryExpr{
							Operation: BinaryAddition,
							Op1:       intLit(1),
							Op2:       intLit(3),
						},
						Op2: &LiteralExpr{Value: Real(2.5)},
					},
				},
			},
		},
		{
			[]Token{id("x"), tokAssign, tokMinus, tokPlus, tokMinus, num("1")},
			false,
			[]Node{
				&Assign{
					Name: "x",
					Value: &UnaryExpr{
						Operation: UnaryNegative,
						Operand: &UnaryExpr{
							Operation: UnaryPositive,
							Operand: &UnaryExpr{
								Operation: UnaryNegative,
								Operand:   intLit(1),
							},
						},
					},
				},
			},
		},
		{
			[]Token{id("a"), tokAssign, num("1"), tokSemi, tokSemi, id("b"), tokAssign, id("a"), tokSemi},
			false,
			[]Node{
				&Assign{Name: "a", Value: intLit(1)},
				&Empty{},
				&Assign{Name: "b", Value: &Identifier{Name: "a"}},
				&Empty{},
			},
		},
		{
			[]Token{id("var")},
			true,
			nil,
		},
		{
			[]Token{id("x"), tokAssign, num("1"), id("y")},
			true,
			nil,
		},
		{
			[]Token{id("x"), tokAssign},
			true,
			nil,
		},
		{
			[]Token{id("x"), tokAssign, tokOpen, num("1")},
			true,
			nil,
		},
		{
			[]Token{num("1"), tokAssign, num("2")},
			true,
			nil,
		},
		{
			[]Token{id("x"), tokAssign, num("1"), tokClose},
			true,
			nil,
		},
	}

	for _, c := range cases {
		tokenizer := NewBufferedTokenizerMocker(c.data)
		p := NewParser(tokenizer)

		got, err := p.Parse()
		if c.fail {
			var synErr *SyntaxError
			if assert.Error(t, err) {
				assert.True(t, errors.As(err, &synErr))
				assert.Equal(t, KindSyntax, synErr.Kind())
			}

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, &Compound{Statements: c.expect}, got)
	}
}

func TestParserSyntaxErrorDetail(t *testing.T) {
	_, err := Read("x 5").Parse()

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "invalid syntax", synErr.Reason)
	assert.Equal(t, TokenAssign, synErr.Expected)
	assert.Equal(t, "expected Assign, got Integer '5'", synErr.Detail())
	assert.Equal(t, "1:3: invalid syntax", synErr.Error())

	_, err = Read("x = 1 )").Parse()
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "unexpected CloseParentheses ')'", synErr.Detail())
}

func TestParserPropagatesLexErrors(t *testing.T) {
	_, err := Read("x = 3~2").Parse()

	var lexErr *LexError
	assert.True(t, errors.As(err, &lexErr))
}

func TestParserMaxDepth(t *testing.T) {
	deep := "x = " + strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)

	p := Read(deep)
	p.MaxDepth = 10
	_, err := p.Parse()

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "expression nested too deeply", synErr.Reason)

	p = Read(deep)
	_, err = p.Parse()
	assert.NoError(t, err)

	p = Read("x = " + strings.Repeat("-", DefaultMaxDepth+1) + "1")
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestParserLocations(t *testing.T) {
	root, err := Read("a = 1;\nb = a").Parse()
	require.NoError(t, err)
	require.Len(t, root.Statements, 2)

	assign := root.Statements[1].(*Assign)
	assert.Equal(t, &Location{Line: 2, Col: 1}, assign.Loc)
	assert.Equal(t, &Location{Line: 2, Col: 5}, assign.Value.(*Identifier).Loc)
}
