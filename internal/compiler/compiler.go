// Package compiler orchestrates the full lex → treeify → literalise →
// parse → resolve → typecheck → generate → emit pipeline and exposes each
// stage individually for debug dumps, alongside the single primary
// Compile entry point. The whole pipeline is a pure function of its input
// source text: no I/O, no shared mutable state, no concurrency.
package compiler

import (
	"sxc/internal/ast"
	"sxc/internal/diag"
	"sxc/internal/emit"
	"sxc/internal/frontend"
	"sxc/internal/generate"
	"sxc/internal/resolve"
	"sxc/internal/symtab"
	"sxc/internal/token"
	"sxc/internal/typecheck"
)

// Compile runs the full pipeline over source and returns the emitted IR
// text, or the first diagnostic raised.
func Compile(source string) (string, *diag.Error) {
	prog, module, err := typecheckedProgram(source)
	if err != nil {
		return "", err
	}
	target := generate.Generate(prog, module)
	return emit.Emit(target), nil
}

// Lex exposes the lexer stage standalone, for the --lex CLI flag.
func Lex(source string) []token.Token {
	return frontend.Lex(source)
}

// Treeify exposes the lexer+treeifier stages standalone.
func Treeify(source string) frontend.Tree {
	return frontend.Treeify(frontend.Lex(source))
}

// Literalise exposes the literaliser stage standalone, returning the fresh
// module namespace it seeds with built-ins and literal tokens.
func Literalise(source string) *symtab.Namespace {
	module := symtab.NewModule()
	symtab.Seed(module)
	seedLiterals(frontend.Lex(source), module)
	return module
}

// Parse exposes the parser stage standalone.
func Parse(source string) (*ast.Program, *diag.Error) {
	return frontend.Parse(frontend.Treeify(frontend.Lex(source)))
}

// Resolve exposes lex through resolve, returning the mutated program and
// the namespace it was resolved against.
func Resolve(source string) (*ast.Program, *symtab.Namespace, *diag.Error) {
	return parseAndResolve(source)
}

// Typecheck exposes lex through typecheck.
func Typecheck(source string) (*ast.Program, *symtab.Namespace, *diag.Error) {
	prog, module, err := parseAndResolve(source)
	if err != nil {
		return nil, nil, err
	}
	if err := typecheck.Check(prog, module); err != nil {
		return nil, nil, err
	}
	return prog, module, nil
}

// Generate exposes lex through generate, returning the lowered Target.
func Generate(source string) (generate.Target, *diag.Error) {
	prog, module, err := typecheckedProgram(source)
	if err != nil {
		return generate.Target{}, err
	}
	return generate.Generate(prog, module), nil
}

func parseAndResolve(source string) (*ast.Program, *symtab.Namespace, *diag.Error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, nil, err
	}
	module := Literalise(source)
	if err := resolve.Resolve(prog, module); err != nil {
		return nil, nil, err
	}
	return prog, module, nil
}

func typecheckedProgram(source string) (*ast.Program, *symtab.Namespace, *diag.Error) {
	prog, module, err := parseAndResolve(source)
	if err != nil {
		return nil, nil, err
	}
	if err := typecheck.Check(prog, module); err != nil {
		return nil, nil, err
	}
	return prog, module, nil
}

func seedLiterals(tokens []token.Token, module *symtab.Namespace) {
	seen := make(map[string]bool)
	for _, t := range tokens {
		if t.Kind != token.Other {
			continue
		}
		if seen[t.Text] {
			continue
		}
		terminal, ok := frontend.ClassifyLiteral(t.Text)
		if !ok {
			continue
		}
		if module.Has(t.Text) {
			continue
		}
		module.DeclareOne(t.Text, symtab.LiteralSymbol(terminal))
		seen[t.Text] = true
	}
}
