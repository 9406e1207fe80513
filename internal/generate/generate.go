package generate

import (
	"sxc/internal/ast"
	"sxc/internal/symtab"
)

// Generate lowers every definition in prog to a Target. module must be the
// same namespace already populated by resolve and typecheck; no further
// diagnostics are possible here; generation always succeeds on a
// well-typed program.
func Generate(prog *ast.Program, module *symtab.Namespace) Target {
	var target Target
	for _, def := range prog.Defs {
		target.Defs = append(target.Defs, generateDef(def, module))
	}
	return target
}

func generateDef(def *ast.Def, module *symtab.Namespace) Def {
	defNS, _ := module.GetOverload(def.Name.Text, def.Name.OverloadID)
	fn := defNS.Symbol.Type.Func

	ids := newIDAllocator()
	params := make([]Param, 0, len(def.Func.Params))
	for i, p := range def.Func.Params {
		var id int
		if p.IsAnon() {
			id = ids.skip()
		} else {
			id = ids.bind(p.Decl.Name.Text)
		}
		params = append(params, Param{Type: fn.Params[i], ID: id})
	}

	ids.skip() // the implicit entry-label id, reserved after all parameters.

	scope := &genScope{def: defNS, module: module, ids: ids}
	var instrs []Instruction
	retVal := generateExpr(def.Body, scope, &instrs)

	instrs = append(instrs, Instruction{Kind: InstrRet, RetType: fn.Ret, RetVal: retVal})

	return Def{
		Name:         def.Name.Text,
		OverloadID:   def.Name.OverloadID,
		Params:       params,
		Ret:          fn.Ret,
		Instructions: instrs,
	}
}

// genScope bundles the per-definition lookup context generateExpr and its
// helpers thread through recursive calls.
type genScope struct {
	def    *symtab.Namespace
	module *symtab.Namespace
	ids    *idAllocator
}

// lookup finds name's single overload, trying the definition namespace
// before the module namespace (the same two-level fallback the type
// checker used to validate this name already resolves).
func (s *genScope) lookup(name string) (*symtab.Namespace, bool) {
	if ns, ok := s.def.Get(name); ok {
		return ns, true
	}
	return s.module.Get(name)
}

// generateExpr lowers expr, appending any instructions it requires to
// *instrs, and returns the Val representing its result. A nil return means
// expr produced no value: an empty call, or a call to a void function.
func generateExpr(expr ast.Expr, s *genScope, instrs *[]Instruction) *Val {
	switch e := expr.(type) {
	case ast.Val:
		v := generateVal(e, s)
		return &v
	case ast.Call:
		return generateCall(e, s, instrs)
	default:
		return nil
	}
}

func generateVal(v ast.Val, s *genScope) Val {
	ns, _ := s.lookup(v.Name.Text)
	if ns.Symbol.Kind == symtab.SymLiteral {
		return LiteralVal(v.Name.Text)
	}
	return IDVal(s.ids.get(v.Name.Text))
}

func generateCall(c ast.Call, s *genScope, instrs *[]Instruction) *Val {
	if len(c.Items) == 0 {
		return nil
	}
	callee, _ := c.Callee()
	args := c.Items[1:]

	// The type checker already wrote callee.OverloadID for this exact call
	// site, whether the resolved symbol is a built-in operator or a
	// user-defined function; both live as plain Var(Func) overloads under
	// the module namespace, so a single lookup serves either case.
	calleeNS, _ := s.module.GetOverload(callee.Text, callee.OverloadID)
	fn := calleeNS.Symbol.Type.Func

	if op, ok := symtab.LookupOp(callee.Text); ok {
		if op.Kind == symtab.OpUnary {
			return generateUnary(op, fn.Ret, args[0], s, instrs)
		}
		return generateBinary(op, fn.Ret, args[0], args[1], s, instrs)
	}
	return generateFuncCall(callee, fn, args, s, instrs)
}

func generateUnary(op symtab.OpEntry, typ symtab.Terminal, arg ast.Expr, s *genScope, instrs *[]Instruction) *Val {
	argVal := generateExpr(arg, s, instrs)
	id := s.ids.skip()
	*instrs = append(*instrs, Instruction{
		Kind: InstrUnary, ID: &id,
		Op: op, OpType: typ, Arg1: *argVal,
	})
	return idPtr(id)
}

func generateBinary(op symtab.OpEntry, typ symtab.Terminal, arg1, arg2 ast.Expr, s *genScope, instrs *[]Instruction) *Val {
	v1 := generateExpr(arg1, s, instrs)
	v2 := generateExpr(arg2, s, instrs)
	id := s.ids.skip()
	*instrs = append(*instrs, Instruction{
		Kind: InstrBinary, ID: &id,
		Op: op, OpType: typ, Arg1: *v1, Arg2: *v2,
	})
	return idPtr(id)
}

func generateFuncCall(callee *ast.NameRef, fn *symtab.Func, args []ast.Expr, s *genScope, instrs *[]Instruction) *Val {
	callArgs := make([]Arg, 0, len(args))
	for i, a := range args {
		v := generateExpr(a, s, instrs)
		callArgs = append(callArgs, Arg{Type: fn.Params[i], Val: *v})
	}

	var resultID *int
	if fn.Ret != symtab.Void {
		id := s.ids.skip()
		resultID = &id
	}

	*instrs = append(*instrs, Instruction{
		Kind: InstrCall, ID: resultID,
		CallRetType: fn.Ret, CalleeName: callee.Text, CalleeID: callee.OverloadID,
		Args: callArgs,
	})
	if resultID == nil {
		return nil
	}
	return idPtr(*resultID)
}

func idPtr(id int) *Val {
	v := IDVal(id)
	return &v
}
