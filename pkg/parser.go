package matl

// Tokenizer is the token source a Parser pulls from. *Lexer implements it.
type Tokenizer interface {
	NextToken() (Token, error)
}

// DefaultMaxDepth bounds how deeply parentheses and unary operators may
// nest before the parser gives up, which keeps recursion on hostile input
// from exhausting the stack.
const DefaultMaxDepth = 512

type Parser struct {
	tokenizer Tokenizer
	current   Token
	started   bool
	depth     int

	MaxDepth int
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
		MaxDepth:  DefaultMaxDepth,
	}
}

// Parse consumes the whole token stream and returns the script's root. The
// first lexical or grammatical error stops parsing.
func (p *Parser) Parse() (*Compound, error) {
	if !p.started {
		p.started = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	root, err := p.script()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenEOF) {
		return nil, p.errorf(TokenError, "invalid syntax")
	}

	return root, nil
}

func (p *Parser) advance() error {
	tok, err := p.tokenizer.NextToken()
	if err != nil {
		return err
	}

	p.current = tok
	return nil
}

func (p *Parser) check(typ TokenType) bool {
	return p.current.Typ == typ
}

// eat consumes the current token if it has the expected type. It is the
// only place a grammar mismatch is reported.
func (p *Parser) eat(typ TokenType) (Token, error) {
	tok := p.current
	if tok.Typ != typ {
		return tok, p.errorf(typ, "invalid syntax")
	}

	return tok, p.advance()
}

func (p *Parser) errorf(expected TokenType, reason string) error {
	return &SyntaxError{
		Loc:      p.current.Loc,
		Token:    p.current,
		Expected: expected,
		Reason:   reason,
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.MaxDepth > 0 && p.depth > p.MaxDepth {
		return p.errorf(TokenError, "expression nested too deeply")
	}

	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) script() (*Compound, error) {
	stmts, err := p.statementList()
	if err != nil {
		return nil, err
	}

	return &Compound{Statements: stmts}, nil
}

func (p *Parser) statementList() ([]Node, error) {
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}

	stmts := []Node{stmt}
	for p.check(TokenSemi) {
		if _, err := p.eat(TokenSemi); err != nil {
			return nil, err
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *Parser) statement() (Node, error) {
	if p.check(TokenID) {
		return p.assignment()
	}

	return &Empty{}, nil
}

func (p *Parser) assignment() (Node, error) {
	name, err := p.eat(TokenID)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &Assign{
		Name:  name.Value,
		Value: value,
		Loc:   name.Loc,
	}, nil
}

func (p *Parser) expr() (Node, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.current
		if _, err := p.eat(op.Typ); err != nil {
			return nil, err
		}

		rhs, err := p.term()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) term() (Node, error) {
	lhs, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.check(TokenMul) || p.check(TokenDiv) {
		op := p.current
		if _, err := p.eat(op.Typ); err != nil {
			return nil, err
		}

		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) factor() (Node, error) {
	switch tok := p.current; tok.Typ {
	case TokenPlus, TokenMinus:
		return p.unaryExpr()
	case TokenInteger, TokenFloat:
		return p.literal()
	case TokenOpenParentheses:
		return p.parenthesisedExpression()
	default:
		return p.identifier()
	}
}

func (p *Parser) unaryExpr() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op := p.current
	if _, err := p.eat(op.Typ); err != nil {
		return nil, err
	}

	operand, err := p.factor()
	if err != nil {
		return nil, err
	}

	return &UnaryExpr{
		Operation: UnaryOp(op.Value),
		Operand:   operand,
	}, nil
}

func (p *Parser) parenthesisedExpression() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if _, err := p.eat(TokenOpenParentheses); err != nil {
		return nil, err
	}

	exp, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return exp, nil
}

func (p *Parser) literal() (Node, error) {
	tok := p.current
	n, err := ParseNumber(tok.Value)
	if err != nil {
		return nil, p.errorf(TokenError, "invalid number literal")
	}

	if _, err := p.eat(tok.Typ); err != nil {
		return nil, err
	}

	return &LiteralExpr{Value: n}, nil
}

func (p *Parser) identifier() (Node, error) {
	tok, err := p.eat(TokenID)
	if err != nil {
		return nil, err
	}

	return &Identifier{
		Name: tok.Value,
		Loc:  tok.Loc,
	}, nil
}
