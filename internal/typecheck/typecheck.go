// Package typecheck is the fifth pipeline stage. It first enforces the
// main-function contract, then checks every definition's body against its
// declared return terminal, resolving call-site overloads by the
// reverse-insertion-order tie-break and writing the winning overload id
// back onto the AST.
package typecheck

import (
	"sxc/internal/ast"
	"sxc/internal/diag"
	"sxc/internal/symtab"
)

// Check runs the main contract then per-definition body checks against the
// already-resolved module namespace.
func Check(prog *ast.Program, module *symtab.Namespace) *diag.Error {
	if err := checkMain(module); err != nil {
		return err
	}
	for _, def := range prog.Defs {
		defNS, _ := module.GetOverload(def.Name.Text, def.Name.OverloadID)
		scope := []*symtab.Namespace{defNS, module}
		if err := check(def.Body, defNS.Symbol.Type.Func.Ret, scope); err != nil {
			return err
		}
	}
	return nil
}

// checkMain enforces that main exists exactly once with signature
// () -> i32 or (i32) -> i32.
func checkMain(module *symtab.Namespace) *diag.Error {
	overloads := module.Overloads("main")
	if len(overloads) == 0 {
		return diag.ExpectedMain()
	}
	if len(overloads) > 1 {
		return diag.UnexpectedMultiMain()
	}
	fn := overloads[0].Symbol.Type.Func
	if fn == nil || fn.Ret != symtab.I32 {
		return diag.ExpectedMainType()
	}
	switch len(fn.Params) {
	case 0:
		return nil
	case 1:
		if fn.Params[0] == symtab.I32 {
			return nil
		}
	}
	return diag.ExpectedMainType()
}

// lookup searches scope (definition namespace first, then module) for
// name's overload list.
func lookup(name string, scope []*symtab.Namespace) []*symtab.Namespace {
	for _, ns := range scope {
		if ovs := ns.Overloads(name); ovs != nil {
			return ovs
		}
	}
	return nil
}

// check validates expr against expected, writing back call-site overload
// ids as it resolves them.
func check(expr ast.Expr, expected symtab.Terminal, scope []*symtab.Namespace) *diag.Error {
	switch e := expr.(type) {
	case ast.Val:
		return checkVal(e, expected, scope)
	case ast.Call:
		return checkCallExpr(e, expected, scope)
	default:
		return diag.ExpectedLiteralOrVar(int(expr.Position()))
	}
}

func checkVal(v ast.Val, expected symtab.Terminal, scope []*symtab.Namespace) *diag.Error {
	ovs := lookup(v.Name.Text, scope)
	if ovs == nil {
		return diag.ExpectedDefinedSymbol(int(v.Name.Pos), v.Name.Text)
	}
	sawLiteralOrVar := false
	for _, ov := range ovs {
		var t symtab.Terminal
		switch ov.Symbol.Kind {
		case symtab.SymLiteral:
			t = ov.Symbol.Literal
		case symtab.SymVar:
			if ov.Symbol.Type.IsFunc() {
				continue
			}
			t = ov.Symbol.Type.Terminal
		default:
			continue
		}
		sawLiteralOrVar = true
		if t == expected {
			return nil
		}
	}
	if !sawLiteralOrVar {
		return diag.ExpectedLiteralOrVar(int(v.Name.Pos))
	}
	return diag.TypeMismatch(int(v.Name.Pos), expected.String(), mismatchedGot(ovs))
}

// mismatchedGot reports the terminal spelling of the first literal/var
// overload, for type_mismatch's "got" field.
func mismatchedGot(ovs []*symtab.Namespace) string {
	for _, ov := range ovs {
		switch ov.Symbol.Kind {
		case symtab.SymLiteral:
			return ov.Symbol.Literal.String()
		case symtab.SymVar:
			if !ov.Symbol.Type.IsFunc() {
				return ov.Symbol.Type.Terminal.String()
			}
		}
	}
	return "?"
}

func checkCallExpr(c ast.Call, expected symtab.Terminal, scope []*symtab.Namespace) *diag.Error {
	if len(c.Items) == 0 {
		if expected == symtab.Void {
			return nil
		}
		return diag.TypeMismatch(int(c.Pos), expected.String(), symtab.Void.String())
	}

	callee, ok := c.Callee()
	if !ok {
		return diag.ExpectedFunc(int(c.Items[0].Position()))
	}

	ovs := lookup(callee.Text, scope)
	if ovs == nil {
		return diag.ExpectedDefinedSymbol(int(callee.Pos), callee.Text)
	}

	if len(ovs) == 1 {
		fn := ovs[0].Symbol.Type.Func
		if fn == nil {
			return diag.ExpectedFunc(int(callee.Pos))
		}
		callee.OverloadID = 0
		return checkCall(fn, expected, c, scope)
	}

	for i := len(ovs) - 1; i >= 0; i-- {
		fn := ovs[i].Symbol.Type.Func
		if fn == nil {
			continue
		}
		if checkCall(fn, expected, c, scope) == nil {
			callee.OverloadID = i
			return nil
		}
	}
	return diag.NoTypeMatch(int(callee.Pos))
}

// checkCall validates a resolved callee's signature against the call's
// expected return type and argument expressions.
func checkCall(fn *symtab.Func, expected symtab.Terminal, c ast.Call, scope []*symtab.Namespace) *diag.Error {
	if fn.Ret != expected {
		return diag.FuncTypeMismatch(int(c.Pos), expected.String(), fn.Ret.String())
	}
	args := c.Items[1:]
	if len(args) > len(fn.Params) {
		return diag.UnexpectedArgument(int(args[len(fn.Params)].Position()))
	}
	if len(args) < len(fn.Params) {
		return diag.ExpectedArgument(int(c.Pos))
	}
	for i, arg := range args {
		if err := check(arg, fn.Params[i], scope); err != nil {
			return err
		}
	}
	return nil
}
