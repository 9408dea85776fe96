// Package syntax provides static checks over a parsed sl program.
//
// A Validator inspects a Program without evaluating it and reports every
// problem it finds, so that a caller can show all of them at once instead of
// stopping at the first runtime error.
package syntax

import (
	"fmt"
	"strings"

	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/internal/token"
)

// Severity distinguishes problems that would abort a run from those that
// only mean some source is ignored.
type Severity int

const (
	// Warning marks source that is parsed but never evaluated.
	Warning Severity = iota
	// Error marks source that would abort evaluation.
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ValidationError represents a single problem found in a program.
type ValidationError struct {
	Rule     string         // short identifier, e.g. "unknown-procedure"
	Message  string         // description of the problem
	Severity Severity       // whether evaluation would fail
	Hint     string         // optional suggestion
	Node     ast.Node       // the offending node
	Position token.Position // source location
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	pos := e.Position
	if pos.File != "" {
		return fmt.Sprintf("%s: %s at %s:%d:%d", e.Severity, e.Message, pos.File, pos.LineNumber(), pos.ColumnNumber())
	}
	return fmt.Sprintf("%s: %s at line %d, column %d", e.Severity, e.Message, pos.LineNumber(), pos.ColumnNumber())
}

// ValidationErrors wraps multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// NewValidationErrors creates a ValidationErrors from a slice of errors.
func NewValidationErrors(errs []ValidationError) *ValidationErrors {
	return &ValidationErrors{Errors: errs}
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d problems:\n", len(e.Errors))
		for _, err := range e.Errors {
			fmt.Fprintf(&b, "  - %s\n", err.Error())
		}
		return b.String()
	}
}

// Unwrap returns the first error for errors.Is/As compatibility.
func (e *ValidationErrors) Unwrap() error {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}
	return nil
}

// HasErrors reports whether any problem has Error severity.
func (e *ValidationErrors) HasErrors() bool {
	for _, err := range e.Errors {
		if err.Severity == Error {
			return true
		}
	}
	return false
}

// Validator inspects a program and returns the problems it finds.
// Validators must not modify the program.
type Validator interface {
	Validate(program *ast.Program) []ValidationError
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func(*ast.Program) []ValidationError

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(p *ast.Program) []ValidationError {
	return f(p)
}

// Run applies each validator in order and collects the results. It returns
// nil when no validator reported anything.
func Run(program *ast.Program, validators ...Validator) *ValidationErrors {
	var all []ValidationError
	for _, v := range validators {
		all = append(all, v.Validate(program)...)
	}
	if len(all) == 0 {
		return nil
	}
	return NewValidationErrors(all)
}
