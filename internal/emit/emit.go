// Package emit is the final pipeline stage: it serializes a generate.Target
// to the bit-exact textual IR format pinned by the end-to-end examples —
// an LLVM-compatible dialect that a downstream assembler (clang -x ir -)
// can consume directly.
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"sxc/internal/generate"
	"sxc/internal/symtab"
)

// Emit serializes every definition in target, in order, concatenating each
// definition's text.
func Emit(target generate.Target) string {
	var sb strings.Builder
	for _, def := range target.Defs {
		emitDef(&sb, def)
	}
	return sb.String()
}

func emitDef(sb *strings.Builder, def generate.Def) {
	fmt.Fprintf(sb, "define %s @%s(%s) {\n", typeName(def.Ret), calleeName(def.Name, def.OverloadID), emitParams(def.Params))
	for _, instr := range def.Instructions {
		emitInstruction(sb, instr)
	}
	sb.WriteString("}\n")
}

// calleeName appends the overload id as a decimal suffix, omitted when it
// is the first (zero) overload.
func calleeName(name string, overloadID int) string {
	if overloadID == 0 {
		return name
	}
	return name + strconv.Itoa(overloadID)
}

func emitParams(params []generate.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %%%d", typeName(p.Type), p.ID)
	}
	return strings.Join(parts, ", ")
}

func emitArgs(args []generate.Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s %s", typeName(a.Type), emitVal(a.Val))
	}
	return strings.Join(parts, ", ")
}

func emitVal(v generate.Val) string {
	if v.IsLiteral {
		return v.Literal
	}
	return fmt.Sprintf("%%%d", v.ID)
}

func emitInstruction(sb *strings.Builder, instr generate.Instruction) {
	switch instr.Kind {
	case generate.InstrRet:
		if instr.RetVal == nil {
			fmt.Fprintf(sb, "ret %s\n", typeName(instr.RetType))
		} else {
			fmt.Fprintf(sb, "ret %s %s\n", typeName(instr.RetType), emitVal(*instr.RetVal))
		}
	case generate.InstrCall:
		callee := fmt.Sprintf("@%s", calleeName(instr.CalleeName, instr.CalleeID))
		if instr.ID == nil {
			fmt.Fprintf(sb, "call %s %s(%s)\n", typeName(instr.CallRetType), callee, emitArgs(instr.Args))
		} else {
			fmt.Fprintf(sb, "%%%d = call %s %s(%s)\n", *instr.ID, typeName(instr.CallRetType), callee, emitArgs(instr.Args))
		}
	case generate.InstrUnary:
		emitUnary(sb, instr)
	case generate.InstrBinary:
		emitBinary(sb, instr)
	}
}

func emitUnary(sb *strings.Builder, instr generate.Instruction) {
	switch instr.Op.Lexeme {
	case "!":
		fmt.Fprintf(sb, "%%%d = xor i1 %s, true\n", *instr.ID, emitVal(instr.Arg1))
	case "~":
		fmt.Fprintf(sb, "%%%d = xor %s %s, -1\n", *instr.ID, typeName(instr.OpType), emitVal(instr.Arg1))
	}
}

func emitBinary(sb *strings.Builder, instr generate.Instruction) {
	mnemonic := binaryMnemonic(instr.Op.Lexeme, instr.OpType)
	fmt.Fprintf(sb, "%%%d = %s %s %s, %s\n", *instr.ID, mnemonic, typeName(instr.OpType), emitVal(instr.Arg1), emitVal(instr.Arg2))
}

// binaryMnemonic picks the instruction mnemonic per §4.8's table: it
// depends on the operator lexeme and, for the arithmetic/comparison
// families, on whether typ is unsigned, signed, or floating point.
func binaryMnemonic(lexeme string, typ symtab.Terminal) string {
	isFloat := typ.IsFloat()
	isSigned := typ.IsSigned()

	switch lexeme {
	case "+":
		return pick(isFloat, "fadd", "add")
	case "-":
		return pick(isFloat, "fsub", "sub")
	case "*":
		return pick(isFloat, "fmul", "mul")
	case "/":
		if isFloat {
			return "fdiv"
		}
		return pick(isSigned, "sdiv", "udiv")
	case "%":
		if isFloat {
			return "frem"
		}
		return pick(isSigned, "srem", "urem")
	case "&", "&&":
		return "and"
	case "|", "||":
		return "or"
	case "^", "^^":
		return "xor"
	case "<<":
		return "shl"
	case ">>":
		return "lshr"
	case "==":
		return pick(isFloat, "fcmp oeq", "icmp eq")
	case "!=":
		return pick(isFloat, "fcmp une", "icmp ne")
	case "<=":
		if isFloat {
			return "fcmp ole"
		}
		return pick(isSigned, "icmp sle", "icmp ule")
	case ">=":
		if isFloat {
			return "fcmp oge"
		}
		return pick(isSigned, "icmp sge", "icmp uge")
	case "<":
		if isFloat {
			return "fcmp olt"
		}
		return pick(isSigned, "icmp slt", "icmp ult")
	case ">":
		if isFloat {
			return "fcmp ogt"
		}
		return pick(isSigned, "icmp sgt", "icmp ugt")
	}
	return lexeme
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// terminalSpellings holds the emitted-text spelling of each terminal, which
// diverges from its source-level spelling for bool and the float widths.
var terminalSpellings = [...]string{
	symtab.Void: "void",
	symtab.Bool: "i1",
	symtab.U8:   "u8",
	symtab.U16:  "u16",
	symtab.U32:  "u32",
	symtab.U64:  "u64",
	symtab.I8:   "i8",
	symtab.I16:  "i16",
	symtab.I32:  "i32",
	symtab.I64:  "i64",
	symtab.F16:  "half",
	symtab.F32:  "float",
	symtab.F64:  "double",
}

func typeName(t symtab.Terminal) string {
	if int(t) < 0 || int(t) >= len(terminalSpellings) {
		return t.String()
	}
	return terminalSpellings[t]
}
