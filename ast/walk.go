package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// children returns the direct, non-nil children of n in source order.
func children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch node := n.(type) {
	case *Program:
		out = append(out, node.Nodes...)
	case *Block:
		out = append(out, node.Items...)
	case *TermExpr:
		add(node.Term)
	case *BinaryOp:
		if node.X != nil {
			add(node.X)
		}
		if node.Y != nil {
			add(node.Y)
		}
		if node.Op != nil {
			add(node.Op)
		}
	case *StackOp:
		if node.Op != nil {
			add(node.Op)
		}
	case *Iff:
		if node.Cond != nil {
			add(node.Cond)
		}
		if node.Body != nil {
			add(node.Body)
		}
	case *Switch:
		for _, c := range node.Cases {
			add(c)
		}
	case *Case:
		if node.Body != nil {
			add(node.Body)
		}
	case *ProcedureDef:
		if node.Body != nil {
			add(node.Body)
		}
	}
	return out
}
