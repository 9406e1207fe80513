package generate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sxc/internal/compiler"
	"sxc/internal/generate"
	"sxc/internal/symtab"
)

func generateOK(t *testing.T, src string) generate.Target {
	t.Helper()
	target, err := compiler.Generate(src)
	require.Nil(t, err, "Generate(%q)", src)
	return target
}

func TestGenerateNamedParamsBoundInOrder(t *testing.T) {
	target := generateOK(t, "(main ((x i32) (y i32) i32) (+ x y))")
	def := target.Defs[0]
	require.Len(t, def.Params, 2)
	require.Equal(t, 0, def.Params[0].ID)
	require.Equal(t, 1, def.Params[1].ID)

	require.Len(t, def.Instructions, 2)
	add := def.Instructions[0]
	require.Equal(t, generate.InstrBinary, add.Kind)
	require.NotNil(t, add.ID)
	require.Equal(t, 3, *add.ID) // id 2 is skipped for the entry label.
	require.Equal(t, "+", add.Op.Lexeme)
	require.False(t, add.Arg1.IsLiteral)
	require.Equal(t, 0, add.Arg1.ID)
	require.Equal(t, 1, add.Arg2.ID)

	ret := def.Instructions[1]
	require.Equal(t, generate.InstrRet, ret.Kind)
	require.NotNil(t, ret.RetVal)
	require.Equal(t, 3, ret.RetVal.ID)
}

func TestGenerateAnonymousParamStillConsumesID(t *testing.T) {
	target := generateOK(t, "(f (i32 i32) 0) (main (i32) (f 1))")
	f := target.Defs[0]
	require.Len(t, f.Params, 1)
	require.Equal(t, 0, f.Params[0].ID)
}

func TestGenerateOverloadSuffixCarried(t *testing.T) {
	target := generateOK(t, "(f ((x i32) i32) x) (f (i32) 0) (main (i32) (f))")
	require.Equal(t, "f", target.Defs[0].Name)
	require.Equal(t, 0, target.Defs[0].OverloadID)
	require.Equal(t, "f", target.Defs[1].Name)
	require.Equal(t, 1, target.Defs[1].OverloadID)

	main := target.Defs[2]
	call := main.Instructions[0]
	require.Equal(t, generate.InstrCall, call.Kind)
	require.Equal(t, "f", call.CalleeName)
	require.Equal(t, 1, call.CalleeID)
}

func TestGenerateVoidReturnHasNoValue(t *testing.T) {
	target := generateOK(t, "(f (void) ()) (main (i32) 0)")
	f := target.Defs[0]
	require.Len(t, f.Instructions, 1)
	require.Equal(t, generate.InstrRet, f.Instructions[0].Kind)
	require.Nil(t, f.Instructions[0].RetVal)
}

func TestGenerateLiteralArgumentPassedVerbatim(t *testing.T) {
	target := generateOK(t, "(main (i32) (~ 5))")
	main := target.Defs[0]
	unary := main.Instructions[0]
	require.Equal(t, generate.InstrUnary, unary.Kind)
	require.Equal(t, symtab.I32, unary.OpType)
	require.True(t, unary.Arg1.IsLiteral)
	require.Equal(t, "5", unary.Arg1.Literal)
}
