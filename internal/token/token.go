// Package token defines language keywords and tokens used when lexing source code.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	// Literals
	INT    Type = "INT"
	HEX    Type = "HEX"
	FLOAT  Type = "FLOAT"
	STRING Type = "STRING"
	CHAR   Type = "CHAR"

	IDENT Type = "IDENT"

	// Reserved words and punctuation
	FUNCTION Type = "FN"
	IF       Type = "IF"
	ELSE     Type = "ELSE"
	SWITCH   Type = "SWITCH"
	BREAK    Type = "BREAK"
	DEFAULT  Type = "DEFAULT"
	ARROW    Type = "->"
	LPAREN   Type = "("
	RPAREN   Type = ")"
	LBRACKET Type = "["
	RBRACKET Type = "]"
	LBRACE   Type = "{"
	RBRACE   Type = "}"
	COLON    Type = ":"
	ASSIGN   Type = "="
	SQUOTE   Type = "'"
	DQUOTE   Type = "\""

	// Logical operators
	EQ        Type = "=="
	GT        Type = ">"
	LT        Type = "<"
	GT_EQUALS Type = ">="
	LT_EQUALS Type = "<="
	OR        Type = "||"
	AND       Type = "&&"

	// Stack operators
	COMMA     Type = ","
	PERIOD    Type = "."
	SEMICOLON Type = ";"

	// Arithmetic operators
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	MOD      Type = "%"

	// Bitwise operators
	BITOR     Type = "|"
	AMPERSAND Type = "&"

	EOF     Type = "EOF"
	UNKNOWN Type = "UNKNOWN"
)

// Class partitions token types into the groups the parser cares about.
type Class int

const (
	ClassUnknown Class = iota
	ClassLiteral
	ClassIdentifier
	ClassReserved
	ClassArithmetic
	ClassLogical
	ClassStack
	ClassBitwise
	ClassEOF
)

var classes = map[Type]Class{
	INT:       ClassLiteral,
	HEX:       ClassLiteral,
	FLOAT:     ClassLiteral,
	STRING:    ClassLiteral,
	CHAR:      ClassLiteral,
	IDENT:     ClassIdentifier,
	FUNCTION:  ClassReserved,
	IF:        ClassReserved,
	ELSE:      ClassReserved,
	SWITCH:    ClassReserved,
	BREAK:     ClassReserved,
	DEFAULT:   ClassReserved,
	ARROW:     ClassReserved,
	LPAREN:    ClassReserved,
	RPAREN:    ClassReserved,
	LBRACKET:  ClassReserved,
	RBRACKET:  ClassReserved,
	LBRACE:    ClassReserved,
	RBRACE:    ClassReserved,
	COLON:     ClassReserved,
	ASSIGN:    ClassReserved,
	SQUOTE:    ClassReserved,
	DQUOTE:    ClassReserved,
	EQ:        ClassLogical,
	GT:        ClassLogical,
	LT:        ClassLogical,
	GT_EQUALS: ClassLogical,
	LT_EQUALS: ClassLogical,
	OR:        ClassLogical,
	AND:       ClassLogical,
	COMMA:     ClassStack,
	PERIOD:    ClassStack,
	SEMICOLON: ClassStack,
	PLUS:      ClassArithmetic,
	MINUS:     ClassArithmetic,
	ASTERISK:  ClassArithmetic,
	SLASH:     ClassArithmetic,
	MOD:       ClassArithmetic,
	BITOR:     ClassBitwise,
	AMPERSAND: ClassBitwise,
	EOF:       ClassEOF,
}

// Class returns the group this token type belongs to.
func (t Type) Class() Class {
	if c, ok := classes[t]; ok {
		return c
	}
	return ClassUnknown
}

// IsOperator reports whether the type is an arithmetic, logical or stack operator.
func (t Type) IsOperator() bool {
	switch t.Class() {
	case ClassArithmetic, ClassLogical, ClassStack:
		return true
	}
	return false
}

// Reserved keywords
var keywords = map[string]Type{
	"fn":      FUNCTION,
	"if":      IF,
	"else":    ELSE,
	"switch":  SWITCH,
	"break":   BREAK,
	"default": DEFAULT,
}

// Keywords returns the reserved words in their lexer matching order.
func Keywords() []string {
	return []string{"fn", "if", "else", "switch", "break", "default"}
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}
