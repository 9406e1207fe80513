package frontend

import (
	"testing"

	"sxc/internal/token"
)

// TestLex verifies the lexer against a hand-built expected token slice,
// following the same whole-input comparison style as the pack's VSL lexer
// tests: scan the whole input once, then check the length and every token
// of the result against the expected slice.
func TestLex(t *testing.T) {
	src := "(main (i32) (+ 1 2))"
	exp := []token.Token{
		{Kind: token.OpenParen, Pos: 0},
		{Kind: token.Other, Text: "main", Pos: 1},
		{Kind: token.OpenParen, Pos: 6},
		{Kind: token.Other, Text: "i32", Pos: 7},
		{Kind: token.CloseParen, Pos: 10},
		{Kind: token.OpenParen, Pos: 12},
		{Kind: token.Other, Text: "+", Pos: 13},
		{Kind: token.Other, Text: "1", Pos: 15},
		{Kind: token.Other, Text: "2", Pos: 17},
		{Kind: token.CloseParen, Pos: 18},
		{Kind: token.CloseParen, Pos: 19},
	}

	got := Lex(src)
	if len(got) != len(exp) {
		t.Fatalf("Lex(%q) produced %d tokens, want %d\ngot:  %v\nwant: %v", src, len(got), len(exp), got, exp)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], exp[i])
		}
	}
}

func TestLexWhitespaceRuns(t *testing.T) {
	got := Lex("  a   b\tc\n")
	exp := []token.Token{
		{Kind: token.Other, Text: "a", Pos: 2},
		{Kind: token.Other, Text: "b", Pos: 6},
		{Kind: token.Other, Text: "c", Pos: 8},
	}
	if len(got) != len(exp) {
		t.Fatalf("got %v, want %v", got, exp)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], exp[i])
		}
	}
}

func TestLexEmpty(t *testing.T) {
	if got := Lex(""); len(got) != 0 {
		t.Errorf("Lex(\"\") = %v, want empty", got)
	}
}

func TestLexAdjacentParens(t *testing.T) {
	got := Lex("(())")
	exp := []token.Kind{token.OpenParen, token.OpenParen, token.CloseParen, token.CloseParen}
	if len(got) != len(exp) {
		t.Fatalf("got %v, want kinds %v", got, exp)
	}
	for i, k := range exp {
		if got[i].Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}
}
