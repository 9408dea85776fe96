package ast

import (
	"bytes"
	"strings"

	"github.com/sl-lang/sl/internal/token"
)

// Block is a brace-delimited sequence of expressions and statements.
// Items are in execution order.
type Block struct {
	Lbrace token.Position // position of "{"
	Items  []Node         // each item is an Expr or a Stmt
	Rbrace token.Position // position of "}"
}

func (x *Block) Pos() token.Position { return x.Lbrace }
func (x *Block) End() token.Position { return x.Rbrace.Advance(1) }

func (x *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, item := range x.Items {
		out.WriteString(item.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// Iff runs Body when Cond leaves a non-zero integer on the stack.
type Iff struct {
	If   token.Position // position of "if" keyword
	Cond Expr           // condition
	Body *Block         // executed when the condition holds
}

func (x *Iff) stmtNode() {}

func (x *Iff) Pos() token.Position { return x.If }
func (x *Iff) End() token.Position { return x.Body.End() }

func (x *Iff) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(x.Cond.String())
	out.WriteString(" ")
	out.WriteString(x.Body.String())
	return out.String()
}

// Switch is a placeholder for the switch construct. It has no evaluation
// rules and the parser never produces it.
type Switch struct {
	Switch token.Position // position of "switch" keyword
	Cases  []*Case
}

func (x *Switch) stmtNode() {}

func (x *Switch) Pos() token.Position { return x.Switch }
func (x *Switch) End() token.Position { return x.Switch.Advance(len("switch")) }

func (x *Switch) String() string { return "switch" }

// Case is a placeholder for a switch case.
type Case struct {
	Case token.Position // position of the case
	Body *Block
}

func (x *Case) stmtNode() {}

func (x *Case) Pos() token.Position { return x.Case }
func (x *Case) End() token.Position {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.Case
}

func (x *Case) String() string { return "case" }

// ProcedureDef is a placeholder for a named procedure definition.
type ProcedureDef struct {
	Fn     token.Position // position of "fn" keyword
	Name   string
	Params []string
	Body   *Block
}

func (x *ProcedureDef) stmtNode() {}

func (x *ProcedureDef) Pos() token.Position { return x.Fn }
func (x *ProcedureDef) End() token.Position {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.Fn
}

func (x *ProcedureDef) String() string {
	var out bytes.Buffer
	out.WriteString("fn ")
	out.WriteString(x.Name)
	if len(x.Params) > 0 {
		out.WriteString(" ")
		out.WriteString(strings.Join(x.Params, " "))
	}
	if x.Body != nil {
		out.WriteString(" ")
		out.WriteString(x.Body.String())
	}
	return out.String()
}

func joinNodes(nodes []Node, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, sep)
}
