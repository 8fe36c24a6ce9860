package matl

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/llir/llvm/ir"
)

// Compiler runs the front end over a reader and hands the tree either to the
// interpreter or to the LLVM IR builder.
type Compiler struct {
	MaxDepth int

	// Dump, when set, receives a dump of every parsed tree.
	Dump io.Writer
}

func NewCompiler() *Compiler {
	return &Compiler{MaxDepth: DefaultMaxDepth}
}

// CompileFromReader lowers the script read from reader to an LLVM module.
func (c *Compiler) CompileFromReader(reader io.Reader) (*ir.Module, error) {
	root, err := c.parse(reader)
	if err != nil {
		return nil, err
	}

	return NewLLVMIRBuilder().Build(root)
}

// EvaluateFromReader interprets the script read from reader in a fresh
// environment.
func (c *Compiler) EvaluateFromReader(reader io.Reader) (*Environment, error) {
	root, err := c.parse(reader)
	if err != nil {
		return nil, err
	}

	return NewInterpreter().Run(root, nil)
}

func (c *Compiler) parse(reader io.Reader) (*Compound, error) {
	parser := NewParser(NewLexer(reader))
	parser.MaxDepth = c.MaxDepth

	root, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if c.Dump != nil {
		spew.Fdump(c.Dump, root)
	}

	return root, nil
}
