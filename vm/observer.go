package vm

import (
	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/internal/token"
)

// Observer is an interface for observing VM execution events. It can be used
// for tracing or debugging without modifying the evaluator.
//
// Implementations can embed NoOpObserver to provide default no-op
// implementations for methods they don't need.
//
// Observer methods are called synchronously during evaluation.
type Observer interface {
	// OnStep is called before each expression or statement is evaluated.
	// Returns false to halt execution immediately.
	OnStep(event StepEvent) bool

	// OnCall is called when a procedure is invoked.
	// Returns false to halt execution immediately.
	OnCall(event CallEvent) bool
}

// StepEvent contains information about a single evaluation step.
type StepEvent struct {
	// Node is the expression or statement about to be evaluated.
	Node ast.Node

	// Position is the source position of the node.
	Position token.Position

	// StackDepth is the current depth of the runtime stack.
	StackDepth int
}

// CallEvent contains information about a procedure call.
type CallEvent struct {
	// Name of the procedure being called.
	Name string

	// Position is the source position of the call site.
	Position token.Position

	// StackDepth is the depth of the runtime stack before the call.
	StackDepth int
}

// NoOpObserver is an Observer implementation that does nothing.
type NoOpObserver struct{}

func (NoOpObserver) OnStep(StepEvent) bool { return true }
func (NoOpObserver) OnCall(CallEvent) bool { return true }

// Ensure NoOpObserver implements Observer.
var _ Observer = NoOpObserver{}
