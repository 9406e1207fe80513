package frontend

import (
	"testing"

	"sxc/internal/ast"
	"sxc/internal/diag"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	top := Treeify(Lex(src))
	prog, err := Parse(top)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return prog
}

func TestParseSimpleDef(t *testing.T) {
	prog := parseSource(t, "(main (i32) (+ 1 2))")
	if len(prog.Defs) != 1 {
		t.Fatalf("defs = %d, want 1", len(prog.Defs))
	}
	def := prog.Defs[0]
	if def.Name.Text != "main" {
		t.Errorf("name = %q, want main", def.Name.Text)
	}
	if len(def.Func.Params) != 0 {
		t.Errorf("params = %v, want none", def.Func.Params)
	}
	if def.Func.Ret.Text != "i32" {
		t.Errorf("ret = %q, want i32", def.Func.Ret.Text)
	}
	call, ok := def.Body.(ast.Call)
	if !ok {
		t.Fatalf("body = %T, want ast.Call", def.Body)
	}
	if len(call.Items) != 3 {
		t.Fatalf("call items = %d, want 3", len(call.Items))
	}
}

func TestParseNamedAndAnonParams(t *testing.T) {
	prog := parseSource(t, "(add ((x i32) i32 i32) (+ x 1))")
	params := prog.Defs[0].Func.Params
	if len(params) != 2 {
		t.Fatalf("params = %d, want 2", len(params))
	}
	if params[0].IsAnon() || params[0].Decl.Name.Text != "x" {
		t.Errorf("param 0 = %+v, want named x", params[0])
	}
	if !params[1].IsAnon() || params[1].Anon.Text != "i32" {
		t.Errorf("param 1 = %+v, want anonymous i32", params[1])
	}
}

func TestParseTopLevelLeafIsExpectedDef(t *testing.T) {
	_, err := Parse(Treeify(Lex("bare")))
	if err == nil || err.Kind != diag.KindExpectedDef {
		t.Fatalf("err = %v, want expected_def", err)
	}
}

func TestParseMissingBodyIsExpectedFuncExpr(t *testing.T) {
	_, err := Parse(Treeify(Lex("(main (i32))")))
	if err == nil || err.Kind != diag.KindExpectedFuncExpr {
		t.Fatalf("err = %v, want expected_func_expr", err)
	}
}

func TestParseExtraTopLevelItemIsUnexpectedToken(t *testing.T) {
	_, err := Parse(Treeify(Lex("(main (i32) 1 extra)")))
	if err == nil || err.Kind != diag.KindUnexpectedToken {
		t.Fatalf("err = %v, want unexpected_token", err)
	}
}

func TestParseBadParamArityIsExpectedParam(t *testing.T) {
	_, err := Parse(Treeify(Lex("(main ((x i32 extra) i32) 1)")))
	if err == nil || err.Kind != diag.KindExpectedParam {
		t.Fatalf("err = %v, want expected_param", err)
	}
}
