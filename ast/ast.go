// Package ast defines the abstract syntax tree representation of sl code.
//
// The tree is built bottom-up by the parse-stack engine in package parser.
// Every node is owned by exactly one parent and is never modified after it
// is created.
package ast

import "github.com/sl-lang/sl/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an expression node. Evaluating an expression acts on the
// runtime stack.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Term represents a typed literal value.
type Term interface {
	Node
	termNode()
}

// IsStatementExpression reports whether n is an Expr or a Stmt, the only
// kinds of node allowed inside a Block.
func IsStatementExpression(n Node) bool {
	switch n.(type) {
	case Expr, Stmt:
		return true
	}
	return false
}

// Program is the root of a parsed source file. Nodes are in the order they
// appeared on the parse stack, bottom to top.
type Program struct {
	Nodes []Node
}

func (p *Program) Pos() token.Position {
	if len(p.Nodes) == 0 {
		return token.NoPos
	}
	return p.Nodes[0].Pos()
}

func (p *Program) End() token.Position {
	if len(p.Nodes) == 0 {
		return token.NoPos
	}
	return p.Nodes[len(p.Nodes)-1].End()
}

func (p *Program) String() string {
	return joinNodes(p.Nodes, "\n")
}
