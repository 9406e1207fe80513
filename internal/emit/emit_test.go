package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sxc/internal/emit"
	"sxc/internal/generate"
	"sxc/internal/symtab"
)

func TestEmitVoidDef(t *testing.T) {
	target := generate.Target{Defs: []generate.Def{{
		Name: "f",
		Ret:  symtab.Void,
		Instructions: []generate.Instruction{
			{Kind: generate.InstrRet, RetType: symtab.Void},
		},
	}}}
	assert.Equal(t, "define void @f() {\nret void\n}\n", emit.Emit(target))
}

func TestEmitOverloadSuffix(t *testing.T) {
	target := generate.Target{Defs: []generate.Def{{
		Name: "f", OverloadID: 1, Ret: symtab.I32,
		Instructions: []generate.Instruction{
			{Kind: generate.InstrRet, RetType: symtab.I32, RetVal: literalPtr("0")},
		},
	}}}
	assert.Equal(t, "define i32 @f1() {\nret i32 0\n}\n", emit.Emit(target))
}

func TestEmitParamsAndCall(t *testing.T) {
	id := 1
	target := generate.Target{Defs: []generate.Def{{
		Name: "main",
		Ret:  symtab.I32,
		Instructions: []generate.Instruction{
			{
				Kind: generate.InstrCall, ID: &id,
				CallRetType: symtab.I32, CalleeName: "f", CalleeID: 1,
				Args: []generate.Arg{{Type: symtab.I32, Val: generate.IDVal(0)}},
			},
			{Kind: generate.InstrRet, RetType: symtab.I32, RetVal: idPtr(1)},
		},
	}}}
	want := "define i32 @main() {\n%1 = call i32 @f1(i32 %0)\nret i32 %1\n}\n"
	assert.Equal(t, want, emit.Emit(target))
}

func TestEmitVoidCallHasNoResult(t *testing.T) {
	target := generate.Target{Defs: []generate.Def{{
		Name: "main",
		Ret:  symtab.Void,
		Instructions: []generate.Instruction{
			{Kind: generate.InstrCall, CallRetType: symtab.Void, CalleeName: "g"},
			{Kind: generate.InstrRet, RetType: symtab.Void},
		},
	}}}
	want := "define void @main() {\ncall void @g()\nret void\n}\n"
	assert.Equal(t, want, emit.Emit(target))
}

func TestEmitUnaryLogicalNot(t *testing.T) {
	op, _ := symtab.LookupOp("!")
	id := 1
	target := generate.Target{Defs: []generate.Def{{
		Name: "main", Ret: symtab.Bool,
		Instructions: []generate.Instruction{
			{Kind: generate.InstrUnary, ID: &id, Op: op, OpType: symtab.Bool, Arg1: generate.LiteralVal("true")},
			{Kind: generate.InstrRet, RetType: symtab.Bool, RetVal: idPtr(1)},
		},
	}}}
	want := "define i1 @main() {\n%1 = xor i1 true, true\nret i1 %1\n}\n"
	assert.Equal(t, want, emit.Emit(target))
}

func TestEmitBinaryMnemonicsBySignedness(t *testing.T) {
	plus, _ := symtab.LookupOp("+")
	div, _ := symtab.LookupOp("/")

	cases := []struct {
		name string
		op   symtab.OpEntry
		typ  symtab.Terminal
		want string
	}{
		{"unsigned add", plus, symtab.U32, "add"},
		{"float add", plus, symtab.F32, "fadd"},
		{"signed div", div, symtab.I32, "sdiv"},
		{"unsigned div", div, symtab.U32, "udiv"},
		{"float div", div, symtab.F64, "fdiv"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id := 1
			target := generate.Target{Defs: []generate.Def{{
				Name: "f", Ret: c.typ,
				Instructions: []generate.Instruction{
					{Kind: generate.InstrBinary, ID: &id, Op: c.op, OpType: c.typ, Arg1: generate.IDVal(0), Arg2: generate.IDVal(0)},
				},
			}}}
			got := emit.Emit(target)
			assert.Contains(t, got, c.want+" "+typeNameFor(c.typ))
		})
	}
}

func TestEmitComparisonMnemonics(t *testing.T) {
	lt, _ := symtab.LookupOp("<")
	id := 1
	target := generate.Target{Defs: []generate.Def{{
		Name: "f", Ret: symtab.Bool,
		Instructions: []generate.Instruction{
			{Kind: generate.InstrBinary, ID: &id, Op: lt, OpType: symtab.U8, Arg1: generate.IDVal(0), Arg2: generate.IDVal(0)},
		},
	}}}
	assert.Contains(t, emit.Emit(target), "icmp ult u8")
}

func literalPtr(s string) *generate.Val {
	v := generate.LiteralVal(s)
	return &v
}

func idPtr(id int) *generate.Val {
	v := generate.IDVal(id)
	return &v
}

func typeNameFor(t symtab.Terminal) string {
	switch t {
	case symtab.U32:
		return "u32"
	case symtab.F32:
		return "float"
	case symtab.I32:
		return "i32"
	case symtab.F64:
		return "double"
	case symtab.U8:
		return "u8"
	}
	return t.String()
}
