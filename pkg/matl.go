// Package matl scans, parses and evaluates scripts of semicolon-separated
// assignments over integer and real arithmetic:
//
//	a = 1; b = a + 2;   % comments run to the end of the line
//	c = b * (a - 3);
//
// The pipeline is Lexer -> Parser -> Interpreter. Read, Evaluate and Print
// expose it to front ends one stage at a time; Solve runs a whole script in
// batch mode.
package matl

import (
	"fmt"
	"io"
	"strings"
)

// Read prepares a parser over text. Nothing is scanned until the parser is
// used.
func Read(text string) *Parser {
	return NewParser(NewLexerFromString(text))
}

// Evaluate parses the script behind p and runs it against env, or against a
// fresh environment when env is nil.
func Evaluate(p *Parser, env *Environment) (*Environment, error) {
	root, err := p.Parse()
	if err != nil {
		if env == nil {
			env = NewEnvironment()
		}

		return env, err
	}

	return NewInterpreter().Run(root, env)
}

// Print writes one "name=value" line per binding in assignment order.
func Print(w io.Writer, env *Environment) error {
	for _, b := range env.Bindings() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", b.Name, b.Value); err != nil {
			return err
		}
	}

	return nil
}

// Solve reads a whole script from r, evaluates it once and prints the
// resulting bindings to w. Nothing is printed when the script fails.
//
// Solve is the entry point for programs embedding the package. The matl
// command goes through Compiler instead, since it also dumps trees, emits IR
// and encodes bindings in other formats.
func Solve(r io.Reader, w io.Writer) error {
	var src strings.Builder
	if _, err := io.Copy(&src, r); err != nil {
		return err
	}

	env, err := Evaluate(Read(src.String()), nil)
	if err != nil {
		return err
	}

	return Print(w, env)
}
