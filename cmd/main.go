package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"go.matl.dev/pkg"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	exitOK     = 0
	exitScript = 1
	exitUsage  = 2
)

const usage = `usage: matl [-i] [-d] [-l] [-f text|yaml] [file]

  -i  start the interactive shell
  -d  dump the parsed tree to stderr
  -l  print LLVM IR instead of evaluating
  -f  output format for bindings (text or yaml)
  -h  show this help

Without a file the script is read from standard input.
`

type options struct {
	interactive bool
	dump        bool
	emitIR      bool
	format      string
	file        string
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "matl: ", 0)

	opts, err := parseFlags(args)
	if err != nil {
		logger.Println(err)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	if opts == nil {
		fmt.Fprint(stdout, usage)
		return exitOK
	}

	if opts.interactive {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		if err := matl.NewShell(stdin, stdout, stderr).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Println(err)
			return exitScript
		}

		return exitOK
	}

	enc, err := matl.EncoderFor(opts.format)
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	input, name, closeInput, err := openInput(opts.file, stdin)
	if err != nil {
		logger.Println(err)
		return exitScript
	}
	defer closeInput()

	c := matl.NewCompiler()
	if opts.dump {
		c.Dump = stderr
	}

	if opts.emitIR {
		mod, err := c.CompileFromReader(input)
		if err != nil {
			return reportError(stderr, errors.Wrapf(err, "compiling %s", name))
		}

		fmt.Fprint(stdout, mod)
		return exitOK
	}

	env, err := c.EvaluateFromReader(input)
	if err != nil {
		return reportError(stderr, errors.Wrapf(err, "evaluating %s", name))
	}

	if err := enc.Encode(stdout, env); err != nil {
		logger.Println(err)
		return exitScript
	}

	return exitOK
}

// parseFlags returns nil options when only help was requested.
func parseFlags(args []string) (*options, error) {
	opts, optind, err := getopt.Getopts(args, "idlf:h")
	if err != nil {
		return nil, err
	}

	o := &options{format: "text"}
	for _, opt := range opts {
		switch opt.Option {
		case 'i':
			o.interactive = true
		case 'd':
			o.dump = true
		case 'l':
			o.emitIR = true
		case 'f':
			o.format = opt.Value
		case 'h':
			return nil, nil
		}
	}

	rest := args[optind:]
	switch len(rest) {
	case 0:
	case 1:
		o.file = rest[0]
	default:
		return nil, fmt.Errorf("too many arguments")
	}

	return o, nil
}

// openInput decodes the script as UTF-8 unless it starts with a UTF-16 byte
// order mark.
func openInput(file string, stdin io.Reader) (io.Reader, string, func(), error) {
	r, name, closer := stdin, "<stdin>", func() {}
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, "", nil, err
		}

		r, name, closer = f, file, func() { _ = f.Close() }
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(r, decoder), name, closer, nil
}

func reportError(stderr io.Writer, err error) int {
	red := color.New(color.FgRed)

	var se matl.ScriptError
	if errors.As(err, &se) {
		red.Fprintf(stderr, "%s: %s\n", se.Kind(), err)
	} else {
		red.Fprintf(stderr, "error: %s\n", err)
	}

	return exitScript
}
