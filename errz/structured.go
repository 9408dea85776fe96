// Package errz defines the structured errors returned by the sl parser and
// evaluator.
//
// Every error that aborts a run is a *StructuredError carrying an ErrorKind
// and, where known, the source location that triggered it.
package errz

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrSyntax indicates a structural parse error.
	ErrSyntax ErrorKind = iota
	// ErrType indicates operand types not covered by an operator.
	ErrType
	// ErrName indicates an unknown procedure name.
	ErrName
	// ErrValue indicates an invalid value for an operation.
	ErrValue
	// ErrRuntime indicates a general runtime error, such as popping an
	// empty stack.
	ErrRuntime
	// ErrUnsupported indicates a language construct with no evaluation rules.
	ErrUnsupported
	// ErrIO indicates a failure reading input or writing output.
	ErrIO
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrType:
		return "type error"
	case ErrName:
		return "name error"
	case ErrValue:
		return "value error"
	case ErrRuntime:
		return "runtime error"
	case ErrUnsupported:
		return "unsupported feature"
	case ErrIO:
		return "io error"
	default:
		return "error"
	}
}

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// StructuredError is an error with a kind and an optional source location.
type StructuredError struct {
	Message  string
	Kind     ErrorKind
	Location SourceLocation
	Cause    error
	Hint     string // e.g. "did you mean 'print'?"
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	}
	return fmt.Sprintf("%s: %s (%d:%d)", e.Kind.String(), e.Message, e.Location.Line, e.Location.Column)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage returns a human-friendly error message including the
// offending source line and a caret under the reported column.
func (e *StructuredError) FriendlyErrorMessage() string {
	var msg bytes.Buffer
	msg.WriteString(e.Error())
	msg.WriteString("\n")
	if e.Location.Source != "" {
		msg.WriteString(" | ")
		msg.WriteString(e.Location.Source)
		msg.WriteString("\n")
		if e.Location.Column > 0 {
			msg.WriteString(" | ")
			msg.WriteString(strings.Repeat(" ", e.Location.Column-1))
			msg.WriteString("^\n")
		}
	}
	if e.Hint != "" {
		msg.WriteString("hint: ")
		msg.WriteString(e.Hint)
		msg.WriteString("\n")
	}
	return msg.String()
}

// New creates a new StructuredError.
func New(kind ErrorKind, message string, loc SourceLocation) *StructuredError {
	return &StructuredError{
		Message:  message,
		Kind:     kind,
		Location: loc,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(kind ErrorKind, loc SourceLocation, format string, args ...any) *StructuredError {
	return &StructuredError{
		Message:  fmt.Sprintf(format, args...),
		Kind:     kind,
		Location: loc,
	}
}

// WithCause wraps the error with a cause.
func (e *StructuredError) WithCause(cause error) *StructuredError {
	e.Cause = cause
	return e
}

// WithHint attaches a hint shown below the source excerpt.
func (e *StructuredError) WithHint(hint string) *StructuredError {
	e.Hint = hint
	return e
}

// KindOf returns the kind of the first StructuredError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
