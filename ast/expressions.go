package ast

import (
	"bytes"

	"github.com/sl-lang/sl/internal/token"
)

// TermExpr is an expression that pushes a literal value.
type TermExpr struct {
	Term Term
}

func (x *TermExpr) exprNode() {}

func (x *TermExpr) Pos() token.Position { return x.Term.Pos() }
func (x *TermExpr) End() token.Position { return x.Term.End() }

func (x *TermExpr) String() string { return x.Term.String() }

// BinaryOp is a postfix operator expression such as "3 4 +". X is the older
// operand and Y the newer one; both are always present.
type BinaryOp struct {
	X  Expr      // left operand
	Y  Expr      // right operand
	Op *Operator // arithmetic or logical operator
}

func (x *BinaryOp) exprNode() {}

func (x *BinaryOp) Pos() token.Position { return x.X.Pos() }
func (x *BinaryOp) End() token.Position { return x.Op.End() }

func (x *BinaryOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" ")
	out.WriteString(x.Y.String())
	out.WriteString(" ")
	out.WriteString(x.Op.Literal)
	out.WriteString(")")
	return out.String()
}

// ProcedureCall invokes a named procedure against the runtime stack.
type ProcedureCall struct {
	NamePos token.Position // position of the name
	Name    string         // procedure name
}

func (x *ProcedureCall) exprNode() {}

func (x *ProcedureCall) Pos() token.Position { return x.NamePos }
func (x *ProcedureCall) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *ProcedureCall) String() string { return x.Name }

// StackOp applies a stack operator (",", "." or ";") to the runtime stack.
type StackOp struct {
	Op *Operator
}

func (x *StackOp) exprNode() {}

func (x *StackOp) Pos() token.Position { return x.Op.Pos() }
func (x *StackOp) End() token.Position { return x.Op.End() }

func (x *StackOp) String() string { return x.Op.Literal }
