package matl

import "fmt"

type Location struct {
	Line int
	Col  int
}

func (l *Location) String() string {
	if l == nil {
		return "-"
	}

	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

type ErrorKind int

const (
	KindLex ErrorKind = iota
	KindSyntax
	KindName
	KindEvaluation
)

func (k ErrorKind) String() string {
	switch k {
	case KindLex:
		return "LexError"
	case KindSyntax:
		return "SyntaxError"
	case KindName:
		return "NameError"
	case KindEvaluation:
		return "EvaluationError"
	default:
		return "UnknownError"
	}
}

// ScriptError is implemented by every error the pipeline produces, so callers
// can switch on the stage that failed without inspecting concrete types.
type ScriptError interface {
	error
	Kind() ErrorKind
	Location() *Location
}

// LexError reports an invalid character or a malformed numeric literal.
type LexError struct {
	Loc    *Location
	Reason string
}

func (e *LexError) Error() string {
	return withLocation(e.Loc, e.Reason)
}

func (e *LexError) Kind() ErrorKind {
	return KindLex
}

func (e *LexError) Location() *Location {
	return e.Loc
}

// SyntaxError reports a token that does not fit the grammar at the current
// parser position. Expected is TokenError when no single kind was expected.
type SyntaxError struct {
	Loc      *Location
	Token    Token
	Expected TokenType
	Reason   string
}

func (e *SyntaxError) Error() string {
	return withLocation(e.Loc, e.Reason)
}

func (e *SyntaxError) Kind() ErrorKind {
	return KindSyntax
}

func (e *SyntaxError) Location() *Location {
	return e.Loc
}

// Detail describes the offending token, for diagnostics that want more than
// the bare reason.
func (e *SyntaxError) Detail() string {
	got := e.Token.Typ.String()
	if e.Token.Value != "" {
		got = fmt.Sprintf("%s '%s'", got, e.Token.Value)
	}

	if e.Expected == TokenError {
		return fmt.Sprintf("unexpected %s", got)
	}

	return fmt.Sprintf("expected %s, got %s", e.Expected, got)
}

type NameError struct {
	Loc  *Location
	Name string
}

func (e *NameError) Error() string {
	return withLocation(e.Loc, fmt.Sprintf("undefined variable '%s'", e.Name))
}

func (e *NameError) Kind() ErrorKind {
	return KindName
}

func (e *NameError) Location() *Location {
	return e.Loc
}

// EvaluationError covers failures of the arithmetic itself (division by
// zero, integer overflow) and trees the interpreter cannot dispatch.
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return e.Reason
}

func (e *EvaluationError) Kind() ErrorKind {
	return KindEvaluation
}

func (e *EvaluationError) Location() *Location {
	return nil
}

func withLocation(l *Location, msg string) string {
	if l == nil {
		return msg
	}

	return fmt.Sprintf("%s: %s", l, msg)
}
