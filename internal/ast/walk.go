package ast

// WalkFunc rewrites a single node. It may return n unchanged, or a
// replacement; Walk keeps re-applying it to a node (and re-descending
// into the result) until a fixpoint is reached, so a WalkFunc need not
// handle multi-step rewrites itself (e.g. collapsing "!!!!A" happens
// one "!!" at a time, across repeated calls).
type WalkFunc func(n *Node, ctx *WalkContext) *Node

// WalkContext carries the two kinds of state a rewrite pass needs
// while threading through Walk's recursion:
//
//   - Global is shared, mutable, whole-walk state (e.g. accumulating a
//     substitution, or a "seen" memo) — every node sees the same map.
//   - Scope is a stack that is cloned whenever Walk descends into a
//     sibling in a children list, so that path-local bookkeeping (e.g.
//     the quantifier scope currently in force) does not leak sideways
//     between branches, while still being visible to the node's own
//     subtree.
type WalkContext struct {
	Global map[string]any
	Scope  []any
}

// NewWalkContext returns a fresh context with an empty Global map and
// no Scope, the state every CNF pass starts a walk from.
func NewWalkContext() *WalkContext {
	return &WalkContext{Global: map[string]any{}}
}

func (c *WalkContext) cloneForChild() *WalkContext {
	var scope []any
	if len(c.Scope) > 0 {
		scope = make([]any, len(c.Scope))
		copy(scope, c.Scope)
	}
	return &WalkContext{Global: c.Global, Scope: scope}
}

// Walk applies f to n, then recurses into the result's embedded
// quantifier (if any, using the same ctx — mirroring how a quantified
// formula's bound-variable node shares its parent's path-local scope)
// and its children (each via a ctx cloned for that branch). The whole
// apply-then-descend step repeats on a node until it stops changing.
func Walk(n *Node, f WalkFunc, ctx *WalkContext) *Node {
	for {
		prev := n
		n = f(n, ctx)

		var quant *Node
		if n.Quant != nil {
			quant = Walk(n.Quant, f, ctx)
		}
		children := walkChildren(n.Children, f, ctx)

		n = &Node{Kind: n.Kind, Head: n.Head, Quant: quant, Children: children}
		if Equal(n, prev) {
			return prev
		}
	}
}

func walkChildren(children []*Node, f WalkFunc, ctx *WalkContext) []*Node {
	if len(children) == 0 {
		return children
	}
	rv := make([]*Node, len(children))
	for i, c := range children {
		rv[i] = Walk(c, f, ctx.cloneForChild())
	}
	return rv
}
