// Package parser builds the abstract syntax tree (AST) for an sl program.
//
// Parsing is bottom-up. Each token from the lexer is converted to a node and
// shifted onto a parse stack, then a fixed, ordered table of reduction rules
// is applied to the top of the stack until no rule matches. When the input is
// exhausted every remaining stack entry becomes a top-level Program node.
//
// A Parser is created by calling New() with a lexer as input and should be
// used only once, by calling Parse() to produce the AST.
package parser

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/internal/lexer"
	"github.com/sl-lang/sl/internal/stack"
	"github.com/sl-lang/sl/internal/token"
)

// Parse the provided input as sl source code and return the AST. This is
// shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	return New(lexer.New(input), options...).Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in token positions and errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithLogger sets the logger used to report diagnostics and reductions.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithStackDump causes the final parse stack to be written to w once the
// input has been consumed.
func WithStackDump(w io.Writer) Option {
	return func(p *Parser) {
		p.stackDump = w
	}
}

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// l is our lexer
	l *lexer.Lexer

	// stack holds shifted tokens and the nodes reduced from them
	stack *stack.Stack[ast.Node]

	// recoverable problems found while shifting tokens
	diagnostics *multierror.Error

	filename  string
	logger    zerolog.Logger
	stackDump io.Writer
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:      l,
		stack:  stack.New[ast.Node](),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.filename != "" {
		l.SetFilename(p.filename)
	} else {
		p.filename = l.Filename()
	}
	return p
}

// Parse the program that is provided via the lexer. A structural error
// aborts parsing and no Program is returned. Unrecognized tokens are skipped
// and reported through Diagnostics.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	for {
		if err := p.ctx.Err(); err != nil {
			return nil, err
		}
		tok := p.l.Peek()
		if tok.Type == token.EOF {
			break
		}
		p.l.Commit()
		node, ok := p.convert(tok)
		if !ok {
			continue
		}
		p.stack.Push(node)
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}
	if p.stackDump != nil {
		if err := p.dumpStack(p.stackDump); err != nil {
			return nil, fmt.Errorf("writing parse stack: %w", err)
		}
	}
	return &ast.Program{Nodes: p.stack.Values()}, nil
}

// Diagnostics returns the recoverable problems found during parsing, in the
// order they were found.
func (p *Parser) Diagnostics() []error {
	if p.diagnostics == nil {
		return nil
	}
	return p.diagnostics.Errors
}

// convert turns a token into the node shifted onto the parse stack. Tokens
// with no stack representation are reported and dropped.
func (p *Parser) convert(tok token.Token) (ast.Node, bool) {
	if tok.Type.IsOperator() {
		return &ast.Operator{
			OpPos:    tok.StartPosition,
			Category: categoryOf(tok.Type),
			Literal:  tok.Literal,
		}, true
	}
	switch tok.Type.Class() {
	case token.ClassLiteral, token.ClassIdentifier:
		return &ast.Terminal{Token: tok}, true
	case token.ClassReserved:
		return &ast.Reserved{Token: tok}, true
	case token.ClassBitwise:
		p.diagnose(tok, p.unsupportedError(tok.StartPosition, "bitwise operator %q is not supported", tok.Literal))
	default:
		p.diagnose(tok, p.syntaxError(tok.StartPosition, "unrecognized token %q", tok.Literal))
	}
	return nil, false
}

func (p *Parser) diagnose(tok token.Token, err error) {
	p.diagnostics = multierror.Append(p.diagnostics, err)
	p.logger.Debug().
		Str("token", tok.Literal).
		Int("line", tok.StartPosition.LineNumber()).
		Int("column", tok.StartPosition.ColumnNumber()).
		Msg("skipping token")
}

// reduce applies the rule table until no rule matches the top of the stack.
// Matching always restarts from the first rule.
func (p *Parser) reduce() error {
	for {
		node, pops, err := p.tryReduce()
		if err != nil {
			return err
		}
		if node == nil {
			return nil
		}
		p.stack.PopN(pops)
		p.stack.Push(node)
	}
}

// tryReduce returns the node produced by the first matching rule and the
// number of stack entries it replaces. A nil node means nothing matched.
func (p *Parser) tryReduce() (ast.Node, int, error) {
	for _, r := range rules {
		node, pops, err := r.fn(p)
		if err != nil {
			return nil, 0, err
		}
		if node != nil {
			p.logger.Trace().
				Str("rule", r.name).
				Int("pops", pops).
				Str("node", node.String()).
				Msg("reduce")
			return node, pops, nil
		}
	}
	return nil, 0, nil
}

// peek returns the stack entry n positions below the top, or nil.
func (p *Parser) peek(n int) ast.Node {
	node, _ := p.stack.Peek(n)
	return node
}

func (p *Parser) dumpStack(w io.Writer) error {
	values := p.stack.Values()
	if _, err := fmt.Fprintf(w, "parse stack (%d entries, bottom to top)\n", len(values)); err != nil {
		return err
	}
	for i, node := range values {
		pos := node.Pos()
		if _, err := fmt.Fprintf(w, "%4d  %-14s %d:%d  %s\n", i, nodeKind(node),
			pos.LineNumber(), pos.ColumnNumber(), node.String()); err != nil {
			return err
		}
	}
	return nil
}

func nodeKind(node ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}
