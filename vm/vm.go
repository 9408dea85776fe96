// Package vm provides a VirtualMachine that evaluates a parsed sl program.
//
// Evaluation walks the tree depth-first against a single runtime stack that
// is shared by the whole program. Blocks do not introduce a new scope.
package vm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/builtins"
	"github.com/sl-lang/sl/errz"
	"github.com/sl-lang/sl/internal/stack"
	"github.com/sl-lang/sl/internal/token"
	"github.com/sl-lang/sl/object"
	"github.com/sl-lang/sl/op"
)

var (
	// ErrHalted is returned when an observer stops execution.
	ErrHalted = errors.New("execution halted by observer")

	// ErrRunning is returned when Run is called on a VM that is already running.
	ErrRunning = errors.New("vm is already running")
)

type VirtualMachine struct {
	stack    *stack.Stack[object.Object]
	stdin    *bufio.Reader
	stdout   io.Writer
	logger   zerolog.Logger
	observer Observer
	filename string
	source   string
	lines    []string

	// position of the node being evaluated, used for error locations
	pos token.Position

	running  bool
	runMutex sync.Mutex
}

// New creates a new Virtual Machine. By default it reads from os.Stdin and
// writes to os.Stdout.
func New(options ...Option) *VirtualMachine {
	vm := &VirtualMachine{
		stack:  stack.New[object.Object](),
		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(vm)
	}
	return vm
}

// Run evaluates the top-level nodes of the program in order. The runtime
// stack is kept after Run returns and can be inspected with TOS and Stack.
// Nodes that are neither expressions nor statements are skipped.
func (vm *VirtualMachine) Run(ctx context.Context, program *ast.Program) error {
	vm.runMutex.Lock()
	if vm.running {
		vm.runMutex.Unlock()
		return ErrRunning
	}
	vm.running = true
	vm.runMutex.Unlock()

	defer func() {
		vm.runMutex.Lock()
		vm.running = false
		vm.runMutex.Unlock()
	}()

	for _, node := range program.Nodes {
		if !ast.IsStatementExpression(node) {
			vm.logger.Debug().
				Str("node", node.String()).
				Int("line", node.Pos().LineNumber()).
				Int("column", node.Pos().ColumnNumber()).
				Msg("skipping unreduced node")
			continue
		}
		if err := vm.eval(ctx, node); err != nil {
			return err
		}
	}
	return nil
}

// TOS returns the top-of-stack object if there is one, without modifying the
// stack. The returned bool value indicates whether there was a valid TOS. This
// only works on a stopped VM. If the VM is running, (nil, false) is returned.
func (vm *VirtualMachine) TOS() (object.Object, bool) {
	vm.runMutex.Lock()
	defer vm.runMutex.Unlock()
	if vm.running {
		return nil, false
	}
	return vm.stack.Peek(0)
}

// Stack returns a copy of the runtime stack, bottom to top.
func (vm *VirtualMachine) Stack() []object.Object {
	return vm.stack.Values()
}

// Push a value onto the runtime stack.
func (vm *VirtualMachine) Push(obj object.Object) {
	vm.stack.Push(obj)
}

// Pop the top value from the runtime stack.
func (vm *VirtualMachine) Pop() (object.Object, error) {
	obj, ok := vm.stack.Pop()
	if !ok {
		return nil, vm.runtimeError(errz.ErrRuntime, "pop from empty stack")
	}
	return obj, nil
}

// Values returns the runtime stack, bottom to top.
func (vm *VirtualMachine) Values() []object.Object {
	return vm.stack.Values()
}

// Stdin returns the reader consumed by the input procedure.
func (vm *VirtualMachine) Stdin() *bufio.Reader {
	return vm.stdin
}

// Stdout returns the writer used by the print procedures.
func (vm *VirtualMachine) Stdout() io.Writer {
	return vm.stdout
}

func (vm *VirtualMachine) eval(ctx context.Context, node ast.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	vm.pos = node.Pos()
	if vm.observer != nil {
		event := StepEvent{Node: node, Position: vm.pos, StackDepth: vm.stack.Len()}
		if !vm.observer.OnStep(event) {
			return ErrHalted
		}
	}
	switch node := node.(type) {
	case *ast.TermExpr:
		vm.stack.Push(termValue(node.Term))
		return nil
	case *ast.StackOp:
		return vm.evalStackOp(node)
	case *ast.ProcedureCall:
		return vm.evalCall(ctx, node)
	case *ast.BinaryOp:
		return vm.evalBinaryOp(ctx, node)
	case *ast.Iff:
		return vm.evalIff(ctx, node)
	case *ast.Switch:
		return vm.unsupported("switch statements")
	case *ast.Case:
		return vm.unsupported("case statements")
	case *ast.ProcedureDef:
		return vm.unsupported("procedure definitions")
	default:
		return vm.unsupported(fmt.Sprintf("%T nodes", node))
	}
}

func (vm *VirtualMachine) evalStackOp(node *ast.StackOp) error {
	sop, ok := op.LookupStackOp(node.Op.Literal)
	if !ok {
		return vm.runtimeError(errz.ErrRuntime, "unknown stack operator %q", node.Op.Literal)
	}
	top, ok := vm.stack.Peek(0)
	if !ok {
		return vm.runtimeError(errz.ErrRuntime, "stack operator %q on empty stack", node.Op.Literal)
	}
	switch sop {
	case op.Pop:
		vm.stack.Pop()
	case op.Duplicate:
		vm.stack.Push(top)
	}
	vm.logger.Trace().Str("op", node.Op.Literal).Int("depth", vm.stack.Len()).Msg("stack op")
	return nil
}

func (vm *VirtualMachine) evalCall(ctx context.Context, node *ast.ProcedureCall) error {
	entry, ok := builtins.Lookup(node.Name)
	if !ok {
		return vm.runtimeError(errz.ErrName, "unknown procedure %q", node.Name).
			WithHint(errz.FormatSuggestions(errz.SuggestSimilar(node.Name, builtins.Names())))
	}
	if vm.observer != nil {
		event := CallEvent{Name: node.Name, Position: node.Pos(), StackDepth: vm.stack.Len()}
		if !vm.observer.OnCall(event) {
			return ErrHalted
		}
	}
	vm.logger.Trace().Str("procedure", node.Name).Int("depth", vm.stack.Len()).Msg("call")
	if err := entry.Fn(ctx, vm); err != nil {
		var se *errz.StructuredError
		if errors.As(err, &se) {
			return err
		}
		return vm.runtimeError(errz.ErrIO, "%s: %s", node.Name, err).WithCause(err)
	}
	return nil
}

func (vm *VirtualMachine) evalBinaryOp(ctx context.Context, node *ast.BinaryOp) error {
	if err := vm.eval(ctx, node.X); err != nil {
		return err
	}
	if err := vm.eval(ctx, node.Y); err != nil {
		return err
	}
	vm.pos = node.Op.Pos()
	right, err := vm.Pop()
	if err != nil {
		return err
	}
	left, err := vm.Pop()
	if err != nil {
		return err
	}
	result, err := binaryOp(node.Op.Literal, left, right)
	if err != nil {
		if errors.Is(err, object.ErrDivisionByZero) {
			return vm.runtimeError(errz.ErrValue, "%s %s %s: %s",
				left.Type(), node.Op.Literal, right.Type(), err).WithCause(err)
		}
		return vm.runtimeError(errz.ErrRuntime, "%s", err).WithCause(err)
	}
	if object.IsUndefined(result) {
		return vm.runtimeError(errz.ErrType, "unsupported operand types for %s: %s and %s",
			node.Op.Literal, left.Type(), right.Type())
	}
	vm.stack.Push(result)
	return nil
}

func (vm *VirtualMachine) evalIff(ctx context.Context, node *ast.Iff) error {
	if err := vm.eval(ctx, node.Cond); err != nil {
		return err
	}
	vm.pos = node.Pos()
	cond, err := vm.Pop()
	if err != nil {
		return err
	}
	if i, ok := cond.(*object.Int); !ok || !i.IsTruthy() {
		return nil
	}
	for _, item := range node.Body.Items {
		if err := vm.eval(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// binaryOp applies the operator spelled by literal. Operand combinations the
// operator does not cover yield Undefined.
func binaryOp(literal string, left, right object.Object) (object.Object, error) {
	if bop, ok := op.LookupBinaryOp(literal); ok {
		return object.BinaryOp(bop, left, right)
	}
	if cop, ok := op.LookupCompareOp(literal); ok {
		return object.Compare(cop, left, right)
	}
	return object.Undefined, nil
}

func termValue(term ast.Term) object.Object {
	switch t := term.(type) {
	case *ast.Int:
		return object.NewInt(t.Value)
	case *ast.Double:
		return object.NewDouble(t.Value)
	case *ast.String:
		return object.NewString(t.Value)
	case *ast.Char:
		return object.NewChar(t.Value)
	}
	return object.Undefined
}
