package matl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	shellBanner = "matl interactive shell. Type 'who' to list variables, 'clear' to reset, 'exit' to quit.\n"
	shellPrompt = ">> "
)

// Shell is an interactive front end: every input line is evaluated against
// one environment that persists until cleared. Errors are reported and the
// shell keeps reading.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	env      *Environment
	errColor *color.Color
	MaxDepth int
}

func NewShell(in io.Reader, out, errOut io.Writer) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		errOut:   errOut,
		env:      NewEnvironment(),
		errColor: color.New(color.FgRed, color.Bold),
		MaxDepth: DefaultMaxDepth,
	}
}

// SetColor forces colored diagnostics on or off regardless of the terminal.
func (s *Shell) SetColor(enabled bool) {
	if enabled {
		s.errColor.EnableColor()
	} else {
		s.errColor.DisableColor()
	}
}

func (s *Shell) Environment() *Environment {
	return s.env
}

// Run reads lines until the input ends, an exit command is given or ctx is
// cancelled between two lines.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprint(s.out, shellBanner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, shellPrompt)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		if stop := s.Eval(s.in.Text()); stop {
			return nil
		}
	}
}

// Eval handles one line of input and reports whether the shell should stop.
func (s *Shell) Eval(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	// A line with '=' is always a script, so variables may be named after
	// the commands.
	if !strings.ContainsRune(line, '=') {
		switch fields[0] {
		case "exit", "quit":
			return true
		case "who":
			if err := Print(s.out, s.env); err != nil {
				s.report(err)
			}

			return false
		case "clear":
			s.clear(fields[1:])
			return false
		}
	}

	p := Read(line)
	p.MaxDepth = s.MaxDepth

	root, err := p.Parse()
	if err != nil {
		s.report(err)
		return false
	}

	in := NewInterpreter()
	in.OnAssign = func(name string, v Number) {
		fmt.Fprintf(s.out, "%s=%s\n", name, v)
	}

	if _, err := in.Run(root, s.env); err != nil {
		s.report(err)
	}

	return false
}

func (s *Shell) clear(names []string) {
	if len(names) == 0 {
		s.env = NewEnvironment()
		return
	}

	for _, name := range names {
		s.env.Delete(name)
	}
}

func (s *Shell) report(err error) {
	var se ScriptError
	if errors.As(err, &se) {
		s.errColor.Fprintf(s.errOut, "%s: %s\n", se.Kind(), err)
		return
	}

	s.errColor.Fprintf(s.errOut, "error: %s\n", err)
}
