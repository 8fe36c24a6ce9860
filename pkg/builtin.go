package matl

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

const (
	builtinPrintInt  = "print_int"
	builtinPrintReal = "print_real"
)

// Large enough for "%.15g" of any double plus the ".0" suffix.
const realBufSize = 32

type libc struct {
	printf, snprintf, strpbrk, strcat *ir.Func
}

func declareLibc(mod *ir.Module) *libc {
	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	snprintf := mod.NewFunc("snprintf", types.I32,
		ir.NewParam("buf", types.I8Ptr), ir.NewParam("size", types.I64), ir.NewParam("format", types.I8Ptr))
	snprintf.Sig.Variadic = true

	return &libc{
		printf:   printf,
		snprintf: snprintf,
		strpbrk:  mod.NewFunc("strpbrk", types.I8Ptr, ir.NewParam("s", types.I8Ptr), ir.NewParam("accept", types.I8Ptr)),
		strcat:   mod.NewFunc("strcat", types.I8Ptr, ir.NewParam("dst", types.I8Ptr), ir.NewParam("src", types.I8Ptr)),
	}
}

func defineBuiltins(b *LLVMIRBuilder) {
	c := declareLibc(b.mod)

	defineBuiltinFunc(b, builtinPrintInt, builtinPrint(c, types.I64, "%s=%ld\n"))
	defineBuiltinFunc(b, builtinPrintReal, builtinPrintRealFunc(c))
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.builtins[name] = f
}

// builtinPrint defines a function printing "name=value" for one value type.
func builtinPrint(c *libc, typ types.Type, format string) funcDefinition {
	return func(mod *ir.Module) *ir.Func {
		f := mod.NewFunc("", types.Void, ir.NewParam("name", types.I8Ptr), ir.NewParam("v", typ))
		b := f.NewBlock("")

		fmtAddr := stringConstant(mod, "._printf_fmt_"+typ.String(), format)
		b.NewCall(c.printf, fmtAddr, f.Params[0], f.Params[1])

		b.NewRet(nil)

		return f
	}
}

// builtinPrintRealFunc prints a double so that it never reads as an integer:
// when the "%.15g" rendering has no '.', exponent, "inf" or "nan" in it, ".0"
// is appended.
func builtinPrintRealFunc(c *libc) funcDefinition {
	return func(mod *ir.Module) *ir.Func {
		f := mod.NewFunc("", types.Void, ir.NewParam("name", types.I8Ptr), ir.NewParam("v", types.Double))
		entry := f.NewBlock("entry")
		suffix := f.NewBlock("suffix")
		done := f.NewBlock("done")

		bufType := types.NewArray(realBufSize, types.I8)
		zero := constant.NewInt(types.I32, 0)

		buf := entry.NewAlloca(bufType)
		str := entry.NewGetElementPtr(bufType, buf, zero, zero)

		realFmt := stringConstant(mod, "._fmt_real", "%.15g")
		entry.NewCall(c.snprintf, str, constant.NewInt(types.I64, realBufSize), realFmt, f.Params[1])

		marks := stringConstant(mod, "._real_marks", ".en")
		found := entry.NewCall(c.strpbrk, str, marks)
		missing := entry.NewICmp(enum.IPredEQ, found, constant.NewNull(types.I8Ptr))
		entry.NewCondBr(missing, suffix, done)

		suffix.NewCall(c.strcat, str, stringConstant(mod, "._real_suffix", ".0"))
		suffix.NewBr(done)

		lineFmt := stringConstant(mod, "._printf_fmt_binding", "%s=%s\n")
		done.NewCall(c.printf, lineFmt, f.Params[0], str)
		done.NewRet(nil)

		return f
	}
}

// stringConstant defines a NUL-terminated global and returns an i8* to its
// first byte.
func stringConstant(mod *ir.Module, name, s string) constant.Constant {
	zero := constant.NewInt(types.I32, 0)

	data := constant.NewCharArrayFromString(s + "\x00")
	glob := mod.NewGlobalDef(name, data)

	return constant.NewGetElementPtr(types.NewArray(uint64(len(s)+1), types.I8), glob, zero, zero)
}
