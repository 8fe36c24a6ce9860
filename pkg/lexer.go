package matl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const EOF rune = -1

const (
	TokenError TokenType = iota
	TokenEOF
	TokenInteger
	TokenFloat

	TokenID

	TokenAssign
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenOpenParentheses
	TokenCloseParentheses
	TokenSemi
)

var tokenNames = map[TokenType]string{
	TokenError:            "Error",
	TokenEOF:              "EOF",
	TokenInteger:          "Integer",
	TokenFloat:            "Float",
	TokenID:               "ID",
	TokenAssign:           "Assign",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenMul:              "Mul",
	TokenDiv:              "Div",
	TokenOpenParentheses:  "OpenParentheses",
	TokenCloseParentheses: "CloseParentheses",
	TokenSemi:             "Semi",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// Reserved words would map to their own token types here. The language has
// none yet, so every identifier scans as TokenID.
var keywordTable = map[string]TokenType{}

var operatorTable = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMul,
	'/': TokenDiv,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
	'=': TokenAssign,
	';': TokenSemi,
}

const commentRune = '%'

type Token struct {
	Typ   TokenType
	Value string
	Loc   *Location
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %s)", t.Typ, t.Value)
}

// Lexer turns source text into tokens on demand. It is single use and must
// not be shared between goroutines.
type Lexer struct {
	reader *bufio.Reader

	line, col int
	start     *Location

	tok Token
	err error
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		line:   1,
	}
}

func NewLexerFromString(src string) *Lexer {
	return NewLexer(strings.NewReader(src))
}

// NextToken scans and returns the next token. Once the input is exhausted
// it keeps returning TokenEOF; once it has failed it keeps returning the
// same error.
func (l *Lexer) NextToken() (Token, error) {
	if l.err != nil {
		return Token{Typ: TokenError, Loc: l.start}, l.err
	}

	for state := defaultState; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return Token{Typ: TokenError, Loc: l.start}, l.err
	}

	return l.tok, nil
}

// RunBlocking scans the whole input and returns every token before EOF.
func (l *Lexer) RunBlocking() ([]Token, error) {
	var tokens []Token
	for {
		t, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		if t.Typ == TokenEOF {
			return tokens, nil
		}

		tokens = append(tokens, t)
	}
}

func defaultState(l *Lexer) stateFunc {
	for {
		l.start = &Location{Line: l.line, Col: l.col + 1}

		switch r := l.peek(); {
		case r == EOF:
			return l.emitValue(TokenEOF, "")
		case unicode.IsSpace(r):
			l.next()
			continue
		case r == commentRune:
			return lineCommentState
		case isDigit(r):
			return numberState
		case isLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

// Literals are unsigned; a leading '-' is a separate token, so
// 9223372036854775808 fails here even when written as -9223372036854775808.
func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	dots := 0
	for r := l.peek(); isDigit(r) || r == '.'; r = l.peek() {
		if r == '.' {
			dots++
		}

		num.WriteRune(l.next())
	}

	lexeme := num.String()
	switch {
	case dots > 1:
		return l.errorf("invalid number '%s'", lexeme)
	case dots == 1:
		if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
			return l.errorf("invalid number '%s'", lexeme)
		}

		return l.emitValue(TokenFloat, lexeme)
	default:
		if _, err := strconv.ParseInt(lexeme, 10, 64); err != nil {
			return l.errorf("invalid number '%s'", lexeme)
		}

		return l.emitValue(TokenInteger, lexeme)
	}
}

// Identifiers must begin with a letter: defaultState only enters this state
// on one, and digit-initial runs are claimed by numberState first.
func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); isLetter(r) || isDigit(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emitValue(t, id.String())
	}

	return l.emitValue(TokenID, id.String())
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()
	if tok, ok := operatorTable[r]; ok {
		return l.emitValue(tok, string(r))
	}

	if r == utf8.RuneError {
		return l.errorf("invalid character")
	}

	return l.errorf("invalid character '%c'", r)
}

func lineCommentState(l *Lexer) stateFunc {
	for r := l.peek(); r != '\n' && r != EOF; r = l.peek() {
		l.next()
	}

	return defaultState
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.err = &LexError{
		Loc:    l.start,
		Reason: fmt.Sprintf(format, args...),
	}

	return nil
}

func (l *Lexer) emitValue(t TokenType, val string) stateFunc {
	l.tok = Token{
		Typ:   t,
		Value: val,
		Loc:   l.start,
	}

	return nil
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
