package ast

import "github.com/sl-lang/sl/internal/token"

// Int is a term that holds an integer literal, written in decimal or hex.
type Int struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "42", "0x2a")
	Value    int64          // the parsed value
}

func (x *Int) termNode() {}

func (x *Int) Pos() token.Position { return x.ValuePos }
func (x *Int) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Int) String() string { return x.Literal }

// Double is a term that holds a floating point literal.
type Double struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text
	Value    float64        // the parsed value
}

func (x *Double) termNode() {}

func (x *Double) Pos() token.Position { return x.ValuePos }
func (x *Double) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Double) String() string { return x.Literal }

// String is a term that holds a string literal. Value keeps the surrounding
// double quotes.
type String struct {
	ValuePos token.Position // position of the opening quote
	EndPos   token.Position // position after the closing quote
	Value    string         // the literal text, quotes included
}

func (x *String) termNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }
func (x *String) End() token.Position { return x.EndPos }

func (x *String) String() string { return x.Value }

// Char is a term that holds a character literal exactly as written.
type Char struct {
	ValuePos token.Position // position of the opening quote
	Value    string         // the literal text, quotes included
}

func (x *Char) termNode() {}

func (x *Char) Pos() token.Position { return x.ValuePos }
func (x *Char) End() token.Position { return x.ValuePos.Advance(len(x.Value)) }

func (x *Char) String() string { return x.Value }
