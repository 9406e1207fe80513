package main

import (
	"fmt"
	"strings"

	"sxc/internal/ast"
	"sxc/internal/frontend"
	"sxc/internal/generate"
	"sxc/internal/symtab"
	"sxc/internal/token"
)

type plainString string

func (s plainString) String() string { return string(s) }

type tokenList []token.Token

func (ts tokenList) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, "\n")
}

type treeString struct{ t frontend.Tree }

func (s treeString) String() string {
	var sb strings.Builder
	writeTree(&sb, s.t, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, t frontend.Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	if t.IsLeaf() {
		fmt.Fprintf(sb, "%s%q @%d\n", indent, t.Leaf, t.Pos)
		return
	}
	fmt.Fprintf(sb, "%s(@%d\n", indent, t.Pos)
	for _, c := range t.Children {
		writeTree(sb, c, depth+1)
	}
	fmt.Fprintf(sb, "%s)\n", indent)
}

type namespaceString struct{ n *symtab.Namespace }

func (s namespaceString) String() string {
	return "module namespace seeded with built-ins and literals (see --resolve/--typecheck for per-definition detail)"
}

type programString struct{ p *ast.Program }

func (s programString) String() string {
	if s.p == nil {
		return "<nil program>"
	}
	var sb strings.Builder
	for _, def := range s.p.Defs {
		fmt.Fprintf(&sb, "def %s#%d\n", def.Name.Text, def.Name.OverloadID)
	}
	return sb.String()
}

type targetString struct{ t generate.Target }

func (s targetString) String() string {
	var sb strings.Builder
	for _, def := range s.t.Defs {
		fmt.Fprintf(&sb, "%s#%d: %d params, %d instructions\n", def.Name, def.OverloadID, len(def.Params), len(def.Instructions))
	}
	return sb.String()
}
