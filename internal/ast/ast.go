// Package ast defines the typed syntax tree produced by the parser and
// mutated (only at NameRef.OverloadID) by the resolver and type checker.
package ast

import "sxc/internal/token"

// Program is an ordered list of top-level definitions.
type Program struct {
	Defs []*Def
}

// Def is a single top-level function definition.
type Def struct {
	Name *NameRef
	Func *FuncSig
	Body Expr
	Pos  token.Pos
}

// NameRef is a leaf reference to an identifier: a definition name, a
// parameter/variable reference, a literal token, or a call-site callee.
// OverloadID starts at 0 and is overwritten exactly once, by the resolver
// for definition names or by the type checker for call-site names.
type NameRef struct {
	Text       string
	OverloadID int
	Pos        token.Pos
}

// FuncSig is a function's parameter list and terminal return type.
type FuncSig struct {
	Params []Param
	Ret    *TypeRef
	Pos    token.Pos
}

// Param is either a named, typed declaration or an anonymous type
// reference. Anonymous parameters are legal only in function signatures:
// they consume a virtual register id during generation but bind no name
// and can never be referenced from the body.
type Param struct {
	// Decl is non-nil for a named parameter ("(x i32)"); Anon is non-nil
	// for an anonymous one ("i32"). Exactly one is set.
	Decl *ParamDecl
	Anon *TypeRef
}

// ParamDecl is a named, typed parameter.
type ParamDecl struct {
	Name *NameRef
	Type *TypeRef
	Pos  token.Pos
}

// IsAnon reports whether this Param is an anonymous-type parameter.
func (p Param) IsAnon() bool { return p.Anon != nil }

// TypeRef is a symbolic type name, resolved to a terminal type later.
type TypeRef struct {
	Text string
	Pos  token.Pos
}

// Expr is either a leaf reference (Val) or a call (Call); the first item
// of a Call is the callee name expression.
type Expr interface {
	exprNode()
	Position() token.Pos
}

// Val is a leaf reference to a variable or literal token.
type Val struct {
	Name *NameRef
}

func (Val) exprNode() {}

// Position returns the source position of the referenced name.
func (v Val) Position() token.Pos { return v.Name.Pos }

// Call is a function or operator application; Items[0] is the callee
// expression (a Val wrapping a NameRef in a well-formed program; the
// parser does not check this), Items[1:] are the arguments.
type Call struct {
	Items []Expr
	Pos   token.Pos
}

func (Call) exprNode() {}

func (c Call) Position() token.Pos { return c.Pos }

// Callee returns the NameRef of a non-empty Call's first item. It reports
// false when the Call is empty or Items[0] is not a Val; parsing does not
// rule the latter out (the type checker raises expected_func for it), so
// only stages after type checking may assume it holds.
func (c Call) Callee() (*NameRef, bool) {
	if len(c.Items) == 0 {
		return nil, false
	}
	v, ok := c.Items[0].(Val)
	if !ok {
		return nil, false
	}
	return v.Name, true
}
