// Package generate is the sixth pipeline stage: it walks a resolved,
// type-checked Program and lowers each definition's body to a flat
// instruction list over a fresh per-definition virtual-register numbering.
// The result, a Target, is handed to package emit for textual
// serialization; nothing in this package touches source text.
package generate

import "sxc/internal/symtab"

// Target is the whole compiled program: one Def per source definition, in
// program order.
type Target struct {
	Defs []Def
}

// Def is one lowered function definition.
type Def struct {
	Name         string
	OverloadID   int
	Params       []Param
	Ret          symtab.Terminal
	Instructions []Instruction
}

// Param is one lowered parameter: its terminal type and the virtual
// register id reserved for it (bound or not, every parameter consumes one).
type Param struct {
	Type symtab.Terminal
	ID   int
}

// Val is a value used as an instruction operand: either a previously
// computed or bound virtual register, or a literal token's text passed
// through verbatim.
type Val struct {
	IsLiteral bool
	ID        int
	Literal   string
}

// IDVal builds a Val referencing virtual register id.
func IDVal(id int) Val { return Val{ID: id} }

// LiteralVal builds a Val carrying literal text.
func LiteralVal(text string) Val { return Val{IsLiteral: true, Literal: text} }

// InstrKind selects which of Instruction's field-sets applies.
type InstrKind int

const (
	InstrRet InstrKind = iota
	InstrCall
	InstrUnary
	InstrBinary
)

// Instruction is one lowered instruction. Exactly the fields relevant to
// Kind are meaningful; ID is the produced virtual register for Unary and
// Binary, and the (possibly absent) result register for Call.
type Instruction struct {
	Kind InstrKind
	ID   *int // result register: always set for Unary/Binary, nil iff Call is void, unused for Ret.

	// Ret
	RetType symtab.Terminal
	RetVal  *Val // nil iff RetType is void.

	// Call
	CallRetType symtab.Terminal
	CalleeName  string
	CalleeID    int
	Args        []Arg

	// Unary
	Op      symtab.OpEntry // shared by Unary and Binary.
	OpType  symtab.Terminal
	Arg1    Val
	Arg2    Val // unused for Unary.
}

// Arg is one call argument: its declared (not inferred) parameter terminal
// and the value passed.
type Arg struct {
	Type symtab.Terminal
	Val  Val
}
