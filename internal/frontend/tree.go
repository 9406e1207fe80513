package frontend

import (
	"sxc/internal/token"
	"sxc/internal/util"
)

// Tree is the token stream folded by parenthesis nesting: either a Leaf
// carrying one Other token's text, or a Node holding an ordered list of
// children opened by a paren pair (or, at the top level, the implicit
// virtual node wrapping every top-level definition).
type Tree struct {
	// node is true for a Node (even an empty one, "()"), false for a Leaf.
	// Children being nil does not by itself mean Leaf: an empty Node's
	// Children is nil too, so node carries the distinction instead.
	node     bool
	Leaf     string
	Children []Tree
	Pos      token.Pos
}

// NodeTree builds a Node-kind Tree, empty or not.
func NodeTree(children []Tree, pos token.Pos) Tree {
	return Tree{node: true, Children: children, Pos: pos}
}

// LeafTree builds a Leaf-kind Tree carrying one token's text.
func LeafTree(text string, pos token.Pos) Tree {
	return Tree{Leaf: text, Pos: pos}
}

// IsLeaf reports whether t is a Leaf rather than a Node.
func (t Tree) IsLeaf() bool { return !t.node }

// openNode tracks one not-yet-closed node while treeifying: its start
// position and the children accumulated so far.
type openNode struct {
	pos      token.Pos
	children []Tree
}

// Treeify folds a flat token list into a tree by parenthesis nesting.
// OpenParen starts a new child node; CloseParen closes the innermost open
// node; Other becomes a Leaf. Unbalanced parentheses are tolerated here: a
// superfluous CloseParen ends whichever node is innermost (including,
// since the top level is just the outermost node on this same work-stack,
// the top level itself — any tokens after a stray top-level closer are
// never reached); a missing CloseParen leaves its node open through end of
// input, collected as-is once the stack unwinds.
//
// Recursion depth is bounded by parenthesis nesting depth; rather than
// recurse on the Go call stack, the open-node chain is kept on an explicit
// work-stack (see util.Stack), per the pipeline's allowance to do either.
func Treeify(tokens []token.Token) Tree {
	var stack util.Stack
	stack.Push(&openNode{})

	for _, tok := range tokens {
		switch tok.Kind {
		case token.OpenParen:
			stack.Push(&openNode{pos: tok.Pos})
		case token.CloseParen:
			closed := stack.Pop().(*openNode)
			if stack.Size() == 0 {
				// Stray top-level closer: nothing left to attach to, and
				// nothing further in the input is ever treeified.
				return NodeTree(closed.children, closed.pos)
			}
			parent := stack.Peek().(*openNode)
			parent.children = append(parent.children, NodeTree(closed.children, closed.pos))
		default:
			top := stack.Peek().(*openNode)
			top.children = append(top.children, LeafTree(tok.Text, tok.Pos))
		}
	}

	// Unwind whatever is left open (missing closers): each stays open
	// through EOF, nested into its parent in the same order it would have
	// closed in.
	var last *openNode
	for stack.Size() > 0 {
		node := stack.Pop().(*openNode)
		if last != nil {
			node.children = append(node.children, NodeTree(last.children, last.pos))
		}
		last = node
	}
	return NodeTree(last.children, last.pos)
}
