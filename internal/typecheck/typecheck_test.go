package typecheck

import (
	"testing"

	"sxc/internal/diag"
	"sxc/internal/frontend"
	"sxc/internal/resolve"
	"sxc/internal/symtab"
	"sxc/internal/token"
)

func checkSource(t *testing.T, src string) *diag.Error {
	t.Helper()
	tokens := frontend.Lex(src)
	prog, err := frontend.Parse(frontend.Treeify(tokens))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	module := symtab.NewModule()
	symtab.Seed(module)
	seedLiterals(tokens, module)
	if err := resolve.Resolve(prog, module); err != nil {
		t.Fatalf("Resolve(%q) failed: %v", src, err)
	}
	return Check(prog, module)
}

// seedLiterals mirrors package compiler's literal-token seeding, duplicated
// here rather than imported to avoid a test-only import cycle (compiler
// imports typecheck).
func seedLiterals(tokens []token.Token, module *symtab.Namespace) {
	for _, tok := range tokens {
		if tok.Kind != token.Other {
			continue
		}
		if module.Has(tok.Text) {
			continue
		}
		terminal, ok := frontend.ClassifyLiteral(tok.Text)
		if !ok {
			continue
		}
		module.DeclareOne(tok.Text, symtab.LiteralSymbol(terminal))
	}
}

func TestCheckMainRequired(t *testing.T) {
	if err := checkSource(t, "(f (i32) 0)"); err == nil || err.Kind != diag.KindExpectedMain {
		t.Fatalf("err = %v, want expected_main", err)
	}
}

func TestCheckMainSignature(t *testing.T) {
	if err := checkSource(t, "(main (void) 0)"); err == nil || err.Kind != diag.KindExpectedMainType {
		t.Fatalf("err = %v, want expected_main_type", err)
	}
}

func TestCheckReverseOverloadTieBreak(t *testing.T) {
	err := checkSource(t, "(f ((x i32) i32) x) (f (i32) 0) (main (i32) (f))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
