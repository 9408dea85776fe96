package parser

import (
	"fmt"

	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/errz"
	"github.com/sl-lang/sl/internal/token"
)

func (p *Parser) location(pos token.Position) errz.SourceLocation {
	filename := pos.File
	if filename == "" {
		filename = p.filename
	}
	return errz.SourceLocation{
		Filename: filename,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   p.l.LineText(pos.LineNumber()),
	}
}

func (p *Parser) syntaxError(pos token.Position, format string, args ...any) *errz.StructuredError {
	return errz.Newf(errz.ErrSyntax, p.location(pos), format, args...)
}

func (p *Parser) unsupportedError(pos token.Position, format string, args ...any) *errz.StructuredError {
	return errz.Newf(errz.ErrUnsupported, p.location(pos), format, args...)
}

func (p *Parser) literalError(tok token.Token, cause error) *errz.StructuredError {
	return p.syntaxError(tok.StartPosition, "invalid literal %q", tok.Literal).WithCause(cause)
}

// describe names a parse stack entry for error messages.
func describe(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Reserved:
		if n.Is(token.LBRACE) || n.Is(token.RBRACE) {
			return "brace"
		}
		return "keyword"
	case *ast.Operator:
		return fmt.Sprintf("%s operator", n.Category)
	case *ast.Block:
		return "block"
	case *ast.Terminal:
		return "token"
	}
	return "node"
}
