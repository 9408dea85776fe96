package ast

import (
	"github.com/sl-lang/sl/internal/token"
	"github.com/sl-lang/sl/op"
)

// Terminal is a raw literal or identifier token shifted onto the parse stack
// and not yet reduced.
type Terminal struct {
	Token token.Token
}

func (x *Terminal) Pos() token.Position { return x.Token.StartPosition }
func (x *Terminal) End() token.Position { return x.Token.EndPosition }
func (x *Terminal) String() string      { return x.Token.Literal }

// IsLiteral reports whether the terminal holds a literal token.
func (x *Terminal) IsLiteral() bool {
	return x.Token.Type.Class() == token.ClassLiteral
}

// IsIdent reports whether the terminal holds an identifier token.
func (x *Terminal) IsIdent() bool {
	return x.Token.Type == token.IDENT
}

// Reserved is a keyword or punctuation token shifted onto the parse stack.
type Reserved struct {
	Token token.Token
}

func (x *Reserved) Pos() token.Position { return x.Token.StartPosition }
func (x *Reserved) End() token.Position { return x.Token.EndPosition }
func (x *Reserved) String() string      { return x.Token.Literal }

// Is reports whether the reserved token has the given type.
func (x *Reserved) Is(typ token.Type) bool {
	return x.Token.Type == typ
}

// Operator is an arithmetic, logical or stack operator.
type Operator struct {
	OpPos    token.Position // position of the operator
	Category op.Category    // arithmetic, logical or stack
	Literal  string         // operator text, e.g. "+" or "&&"
}

func (x *Operator) Pos() token.Position { return x.OpPos }
func (x *Operator) End() token.Position { return x.OpPos.Advance(len(x.Literal)) }
func (x *Operator) String() string      { return x.Literal }

// IsStack reports whether the operator acts on the runtime stack.
func (x *Operator) IsStack() bool {
	return x.Category == op.Stack
}
