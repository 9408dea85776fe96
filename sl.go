// Package sl parses and evaluates programs written in sl, a small postfix
// stack language.
//
//	stack, err := sl.Eval(ctx, `3 4 + println`)
package sl

import (
	"context"
	"fmt"

	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/internal/lexer"
	"github.com/sl-lang/sl/object"
	"github.com/sl-lang/sl/parser"
	"github.com/sl-lang/sl/vm"
)

// Parse source code into a Program. Recoverable diagnostics are passed to the
// function registered with WithDiagnostics.
func Parse(ctx context.Context, source string, opts ...Option) (*ast.Program, error) {
	o := collectOptions(opts...)
	p := parser.New(lexer.New(source, lexer.WithFilename(o.filename)), o.parserOpts()...)
	program, err := p.Parse(ctx)
	if o.diagnostics != nil {
		for _, d := range p.Diagnostics() {
			o.diagnostics(d)
		}
	}
	if err != nil {
		return nil, err
	}
	if o.astDump != nil {
		if err := ast.Fprint(o.astDump, program); err != nil {
			return nil, fmt.Errorf("writing ast: %w", err)
		}
	}
	return program, nil
}

// Run evaluates a parsed program and returns the final runtime stack,
// bottom to top. On error the stack as it stood at the failure is returned
// alongside the error.
func Run(ctx context.Context, program *ast.Program, opts ...Option) ([]object.Object, error) {
	o := collectOptions(opts...)
	machine := vm.New(o.vmOpts()...)
	err := machine.Run(ctx, program)
	return machine.Stack(), err
}

// Eval is a convenience function that parses and runs source code.
// It is equivalent to Parse() followed by Run().
func Eval(ctx context.Context, source string, opts ...Option) ([]object.Object, error) {
	program, err := Parse(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	return Run(ctx, program, append(opts, WithSource(source))...)
}
