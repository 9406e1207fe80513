package frontend

import (
	"sxc/internal/ast"
	"sxc/internal/diag"
)

// Parse transforms a treeified top-level Node into a Program. It performs
// only structural validation (arities and leaf/node shapes); name
// resolution and type checking happen in later stages.
func Parse(top Tree) (*ast.Program, *diag.Error) {
	if top.IsLeaf() {
		return nil, diag.ExpectedParen(int(top.Pos), top.Leaf)
	}

	defs := make([]*ast.Def, 0, len(top.Children))
	for _, child := range top.Children {
		if child.IsLeaf() {
			return nil, diag.ExpectedDef(int(child.Pos), child.Leaf)
		}
		def, err := parseDef(child)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return &ast.Program{Defs: defs}, nil
}

// parseDef parses one top-level "(name signature body)" node.
func parseDef(n Tree) (*ast.Def, *diag.Error) {
	if len(n.Children) < 1 {
		return nil, diag.ExpectedName(int(n.Pos))
	}
	if len(n.Children) < 2 {
		return nil, diag.ExpectedFuncTypeAfterName(int(n.Pos))
	}
	if len(n.Children) < 3 {
		return nil, diag.ExpectedFuncExpr(int(n.Pos))
	}
	if len(n.Children) > 3 {
		return nil, diag.UnexpectedToken(int(n.Children[3].Pos))
	}

	nameNode, sigNode, bodyNode := n.Children[0], n.Children[1], n.Children[2]

	if !nameNode.IsLeaf() {
		return nil, diag.ExpectedName(int(nameNode.Pos))
	}
	name := &ast.NameRef{Text: nameNode.Leaf, Pos: nameNode.Pos}

	if sigNode.IsLeaf() {
		return nil, diag.ExpectedFuncType(int(sigNode.Pos))
	}
	if len(sigNode.Children) == 0 {
		return nil, diag.ExpectedType(int(sigNode.Pos))
	}
	sig, err := parseFuncSig(sigNode)
	if err != nil {
		return nil, err
	}

	body, err := parseExpr(bodyNode)
	if err != nil {
		return nil, err
	}

	return &ast.Def{Name: name, Func: sig, Body: body, Pos: n.Pos}, nil
}

// parseFuncSig parses a signature node: zero or more parameters followed by
// a single return-type leaf.
func parseFuncSig(n Tree) (*ast.FuncSig, *diag.Error) {
	retNode := n.Children[len(n.Children)-1]
	if !retNode.IsLeaf() {
		return nil, diag.ExpectedFuncRetTerminalType(int(retNode.Pos))
	}
	ret := &ast.TypeRef{Text: retNode.Leaf, Pos: retNode.Pos}

	paramNodes := n.Children[:len(n.Children)-1]
	params := make([]ast.Param, 0, len(paramNodes))
	for _, pn := range paramNodes {
		p, err := parseParam(pn)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return &ast.FuncSig{Params: params, Ret: ret, Pos: n.Pos}, nil
}

// parseParam parses a single parameter: a bare Leaf is an anonymous type
// reference, a two-Leaf Node is a named declaration.
func parseParam(n Tree) (ast.Param, *diag.Error) {
	if n.IsLeaf() {
		return ast.Param{Anon: &ast.TypeRef{Text: n.Leaf, Pos: n.Pos}}, nil
	}
	if len(n.Children) != 2 {
		return ast.Param{}, diag.ExpectedParam(int(n.Pos))
	}
	nameNode, typeNode := n.Children[0], n.Children[1]
	if !nameNode.IsLeaf() {
		return ast.Param{}, diag.ExpectedParamName(int(nameNode.Pos))
	}
	if !typeNode.IsLeaf() {
		return ast.Param{}, diag.ExpectedParamType(int(typeNode.Pos))
	}
	return ast.Param{Decl: &ast.ParamDecl{
		Name: &ast.NameRef{Text: nameNode.Leaf, Pos: nameNode.Pos},
		Type: &ast.TypeRef{Text: typeNode.Leaf, Pos: typeNode.Pos},
		Pos:  n.Pos,
	}}, nil
}

// parseExpr parses a body expression: a Leaf is a Val, a Node is a Call
// whose items are its recursively parsed children. No callee/argument
// shape is validated here.
func parseExpr(n Tree) (ast.Expr, *diag.Error) {
	if n.IsLeaf() {
		return ast.Val{Name: &ast.NameRef{Text: n.Leaf, Pos: n.Pos}}, nil
	}
	items := make([]ast.Expr, 0, len(n.Children))
	for _, c := range n.Children {
		item, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return ast.Call{Items: items, Pos: n.Pos}, nil
}
