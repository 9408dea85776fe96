package parser

import (
	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/internal/convert"
	"github.com/sl-lang/sl/internal/token"
	"github.com/sl-lang/sl/op"
)

// rule inspects the top of the parse stack. On a match it returns the new
// node and how many entries it replaces; otherwise it returns a nil node.
type rule struct {
	name string
	fn   func(p *Parser) (ast.Node, int, error)
}

// rules is the reduction table. Order matters: the first match wins.
var rules = []rule{
	{"term", reduceTerm},
	{"term-expr", reduceTermExpr},
	{"binary-op", reduceBinaryOp},
	{"procedure-call", reduceProcedureCall},
	{"stack-op", reduceStackOp},
	{"block", reduceBlock},
	{"iff", reduceIff},
}

// reduceTerm decodes a literal terminal into a typed Term.
func reduceTerm(p *Parser) (ast.Node, int, error) {
	t, ok := p.peek(0).(*ast.Terminal)
	if !ok || !t.IsLiteral() {
		return nil, 0, nil
	}
	tok := t.Token
	switch tok.Type {
	case token.INT:
		v, err := convert.DecodeDecimal(tok.Literal)
		if err != nil {
			return nil, 0, p.literalError(tok, err)
		}
		return &ast.Int{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: v}, 1, nil
	case token.HEX:
		v, err := convert.DecodeHex(tok.Literal)
		if err != nil {
			return nil, 0, p.literalError(tok, err)
		}
		return &ast.Int{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: v}, 1, nil
	case token.FLOAT:
		v, err := convert.DecodeDouble(tok.Literal)
		if err != nil {
			return nil, 0, p.literalError(tok, err)
		}
		return &ast.Double{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: v}, 1, nil
	case token.STRING:
		return &ast.String{ValuePos: tok.StartPosition, EndPos: tok.EndPosition, Value: tok.Literal}, 1, nil
	case token.CHAR:
		return &ast.Char{ValuePos: tok.StartPosition, Value: tok.Literal}, 1, nil
	}
	return nil, 0, nil
}

func reduceTermExpr(p *Parser) (ast.Node, int, error) {
	term, ok := p.peek(0).(ast.Term)
	if !ok {
		return nil, 0, nil
	}
	return &ast.TermExpr{Term: term}, 1, nil
}

// reduceBinaryOp matches Expr Expr Operator, where the operator is
// arithmetic or logical. The older operand becomes X.
func reduceBinaryOp(p *Parser) (ast.Node, int, error) {
	operator, ok := p.peek(0).(*ast.Operator)
	if !ok || operator.IsStack() {
		return nil, 0, nil
	}
	y, ok := p.peek(1).(ast.Expr)
	if !ok {
		return nil, 0, nil
	}
	x, ok := p.peek(2).(ast.Expr)
	if !ok {
		return nil, 0, nil
	}
	return &ast.BinaryOp{X: x, Y: y, Op: operator}, 3, nil
}

// reduceProcedureCall turns an identifier into a call. Only the identifier
// is replaced; any expression below it stays on the stack as its own node.
func reduceProcedureCall(p *Parser) (ast.Node, int, error) {
	t, ok := p.peek(0).(*ast.Terminal)
	if !ok || !t.IsIdent() {
		return nil, 0, nil
	}
	return &ast.ProcedureCall{NamePos: t.Token.StartPosition, Name: t.Token.Literal}, 1, nil
}

func reduceStackOp(p *Parser) (ast.Node, int, error) {
	operator, ok := p.peek(0).(*ast.Operator)
	if !ok || !operator.IsStack() {
		return nil, 0, nil
	}
	return &ast.StackOp{Op: operator}, 1, nil
}

// reduceBlock collects everything between a "}" on top of the stack and the
// nearest "{" below it. Every collected entry must already be an expression
// or statement.
func reduceBlock(p *Parser) (ast.Node, int, error) {
	rbrace, ok := p.peek(0).(*ast.Reserved)
	if !ok || !rbrace.Is(token.RBRACE) {
		return nil, 0, nil
	}
	for i := 1; i < p.stack.Len(); i++ {
		entry := p.peek(i)
		if lbrace, ok := entry.(*ast.Reserved); ok && lbrace.Is(token.LBRACE) {
			items := make([]ast.Node, 0, i-1)
			for j := i - 1; j >= 1; j-- {
				items = append(items, p.peek(j))
			}
			return &ast.Block{
				Lbrace: lbrace.Pos(),
				Items:  items,
				Rbrace: rbrace.Pos(),
			}, i + 1, nil
		}
		if !ast.IsStatementExpression(entry) {
			return nil, 0, p.syntaxError(entry.Pos(),
				"unexpected %s %q inside block", describe(entry), entry.String())
		}
	}
	return nil, 0, p.syntaxError(rbrace.Pos(), "unmatched %q", "}")
}

func reduceIff(p *Parser) (ast.Node, int, error) {
	body, ok := p.peek(0).(*ast.Block)
	if !ok {
		return nil, 0, nil
	}
	cond, ok := p.peek(1).(ast.Expr)
	if !ok {
		return nil, 0, nil
	}
	kw, ok := p.peek(2).(*ast.Reserved)
	if !ok || !kw.Is(token.IF) {
		return nil, 0, nil
	}
	return &ast.Iff{If: kw.Pos(), Cond: cond, Body: body}, 3, nil
}

// categoryOf maps an operator token type to its operator category.
func categoryOf(typ token.Type) op.Category {
	switch typ.Class() {
	case token.ClassArithmetic:
		return op.Arithmetic
	case token.ClassLogical:
		return op.Logical
	case token.ClassStack:
		return op.Stack
	}
	return 0
}
