package frontend

import "testing"

func TestTreeifySimple(t *testing.T) {
	top := Treeify(Lex("(main (i32) (+ 1 2))"))
	if len(top.Children) != 1 {
		t.Fatalf("top-level children = %d, want 1", len(top.Children))
	}
	def := top.Children[0]
	if def.IsLeaf() || len(def.Children) != 3 {
		t.Fatalf("def = %+v, want a 3-child node", def)
	}
	if def.Children[0].Leaf != "main" {
		t.Errorf("name = %q, want main", def.Children[0].Leaf)
	}
	sig := def.Children[1]
	if len(sig.Children) != 1 || sig.Children[0].Leaf != "i32" {
		t.Errorf("sig = %+v, want [i32]", sig)
	}
	body := def.Children[2]
	if len(body.Children) != 3 || body.Children[0].Leaf != "+" {
		t.Errorf("body = %+v, want (+ 1 2)", body)
	}
}

func TestTreeifyMissingCloserStaysOpen(t *testing.T) {
	top := Treeify(Lex("(main (i32"))
	if len(top.Children) != 1 {
		t.Fatalf("top-level children = %d, want 1", len(top.Children))
	}
	def := top.Children[0]
	if len(def.Children) != 2 {
		t.Fatalf("unterminated def = %+v, want 2 children collected through EOF", def)
	}
}

func TestTreeifyLeafToken(t *testing.T) {
	top := Treeify(Lex("bare"))
	if len(top.Children) != 1 || !top.Children[0].IsLeaf() {
		t.Fatalf("top = %+v, want single leaf child", top)
	}
}

func TestTreeifyEmptyNodeIsNotALeaf(t *testing.T) {
	top := Treeify(Lex("(f (void) ())"))
	def := top.Children[0]
	body := def.Children[2]
	if body.IsLeaf() {
		t.Fatalf("body = %+v, want an empty Node, not a Leaf", body)
	}
	if len(body.Children) != 0 {
		t.Errorf("body.Children = %v, want empty", body.Children)
	}
}
