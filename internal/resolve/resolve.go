// Package resolve is the fourth pipeline stage: it walks a parsed Program
// in definition order, building each definition's child namespace and
// appending it under the definition's name in the module namespace. The
// overload id each append returns is written back onto the AST so that
// later stages (specifically the type checker, at call sites) can address
// the exact definition meant.
package resolve

import (
	"sxc/internal/ast"
	"sxc/internal/diag"
	"sxc/internal/symtab"
)

// Resolve appends every definition to module as a new overload of its name
// and writes the resulting id to prog.Defs[i].Name.OverloadID. It returns
// the first diagnostic raised, or nil.
func Resolve(prog *ast.Program, module *symtab.Namespace) *diag.Error {
	for _, def := range prog.Defs {
		defNS, err := resolveDef(def, module)
		if err != nil {
			return err
		}
		def.Name.OverloadID = module.Declare(def.Name.Text, defNS)
	}
	return nil
}

// resolveDef builds a definition's own namespace: its parameters bound by
// name (where named) to Var(Terminal(t)), wrapped in a Var(Func{...})
// symbol describing the whole definition's callable type.
func resolveDef(def *ast.Def, module *symtab.Namespace) (*symtab.Namespace, *diag.Error) {
	params := make([]symtab.Terminal, 0, len(def.Func.Params))
	defNS := symtab.New(symtab.Symbol{}) // placeholder symbol, replaced once params are known.

	for _, p := range def.Func.Params {
		if p.IsAnon() {
			t, err := getTerminal(module, p.Anon.Text, int(p.Anon.Pos))
			if err != nil {
				return nil, err
			}
			params = append(params, t)
			continue
		}
		t, err := getTerminal(module, p.Decl.Type.Text, int(p.Decl.Type.Pos))
		if err != nil {
			return nil, err
		}
		params = append(params, t)
		defNS.DeclareOne(p.Decl.Name.Text, symtab.VarSymbol(symtab.TerminalType(t)))
	}

	ret, err := getTerminal(module, def.Func.Ret.Text, int(def.Func.Ret.Pos))
	if err != nil {
		return nil, err
	}

	defNS.Symbol = symtab.VarSymbol(symtab.FuncType(params, ret))
	return defNS, nil
}

// getTerminal resolves a type-reference's text to a terminal: the name
// must be declared in the namespace with a single overload at index 0 that
// is a TypeSym.
func getTerminal(module *symtab.Namespace, text string, pos int) (symtab.Terminal, *diag.Error) {
	ns, ok := module.Get(text)
	if !ok {
		return 0, diag.ExpectedDefinedType(pos, text)
	}
	if ns.Symbol.Kind != symtab.SymTypeSym {
		return 0, diag.ExpectedTerminalType(pos)
	}
	return ns.Symbol.Type.Terminal, nil
}
