package vm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/builtins"
	"github.com/sl-lang/sl/errz"
	"github.com/sl-lang/sl/object"
	"github.com/sl-lang/sl/parser"
	"github.com/stretchr/testify/require"
)

type result struct {
	vm     *VirtualMachine
	stdout string
	err    error
}

func run(t *testing.T, source string, stdin string, opts ...Option) result {
	t.Helper()
	program, err := parser.Parse(context.Background(), source)
	require.NoError(t, err)
	var out bytes.Buffer
	opts = append([]Option{
		WithStdin(strings.NewReader(stdin)),
		WithStdout(&out),
		WithSource(source),
	}, opts...)
	vm := New(opts...)
	err = vm.Run(context.Background(), program)
	return result{vm: vm, stdout: out.String(), err: err}
}

func requireKind(t *testing.T, err error, kind errz.ErrorKind) *errz.StructuredError {
	t.Helper()
	require.Error(t, err)
	var se *errz.StructuredError
	require.True(t, errors.As(err, &se), "expected a structured error, got %T: %v", err, err)
	require.Equal(t, kind, se.Kind, se.Error())
	return se
}

func TestBinaryOps(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Object
	}{
		{"3 4 +", object.NewInt(7)},
		{"3 4.0 +", object.NewDouble(7)},
		{"10 4 -", object.NewInt(6)},
		{"2.5 2 *", object.NewDouble(5)},
		{"7 2 /", object.NewInt(3)},
		{"7 2.0 /", object.NewDouble(3.5)},
		{"7 4 %", object.NewInt(3)},
		{"3 4 <", object.NewInt(1)},
		{"3 4 >", object.NewInt(0)},
		{"4 3.5 >", object.NewInt(1)},
		{"3 3.0 ==", object.NewInt(1)},
		{"0 1 &&", object.NewInt(0)},
		{"0 1 ||", object.NewInt(1)},
		{`"abc" "abc" ==`, object.NewInt(1)},
		{`"abc" "abd" ==`, object.NewInt(0)},
		{"1 2 3 + *", object.NewInt(5)},
		{"1 2 + 3 *", object.NewInt(9)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := run(t, tt.input, "")
			require.NoError(t, res.err)
			tos, ok := res.vm.TOS()
			require.True(t, ok)
			require.Equal(t, tt.expected, tos)
			require.Len(t, res.vm.Stack(), 1)
		})
	}
}

func TestPrinting(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3 4 + println", "7\n"},
		{"3 4.0 + println", "7.0000\n"},
		{`"hello" print " world" println`, "hello world\n"},
		{"'c' println", "'c'\n"},
		{"0x31942ff8 println", "831795192\n"},
		{"5423.864213 println", "5423.8642\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := run(t, tt.input, "")
			require.NoError(t, res.err)
			require.Equal(t, tt.expected, res.stdout)
		})
	}
}

func TestIff(t *testing.T) {
	res := run(t, "if 1 { 5 println }", "")
	require.NoError(t, res.err)
	require.Equal(t, "5\n", res.stdout)
	require.Empty(t, res.vm.Stack())

	res = run(t, "if 0 { 5 println }", "")
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
	require.Empty(t, res.vm.Stack())

	res = run(t, `if "yes" { 5 println }`, "")
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)

	res = run(t, `if 1 2 < { "less" println }`, "")
	require.NoError(t, res.err)
	require.Equal(t, "less\n", res.stdout)
}

func TestIffSharesStack(t *testing.T) {
	res := run(t, "7 if 1 { ; println } println", "")
	require.NoError(t, res.err)
	require.Equal(t, "7\n7\n", res.stdout)
	require.Empty(t, res.vm.Stack())
}

func TestNestedIff(t *testing.T) {
	res := run(t, `
if 1 {
	if 0 { "no" println }
	if 2 { "yes" println }
}`, "")
	require.NoError(t, res.err)
	require.Equal(t, "yes\n", res.stdout)
}

func TestStackOps(t *testing.T) {
	res := run(t, "3 ,", "")
	require.NoError(t, res.err)
	require.Equal(t, []object.Object{object.NewInt(3)}, res.vm.Stack())

	res = run(t, "3 4 .", "")
	require.NoError(t, res.err)
	require.Equal(t, []object.Object{object.NewInt(3)}, res.vm.Stack())

	res = run(t, "3 ;", "")
	require.NoError(t, res.err)
	require.Equal(t, []object.Object{object.NewInt(3), object.NewInt(3)}, res.vm.Stack())

	for _, input := range []string{",", ".", ";"} {
		res = run(t, input, "")
		se := requireKind(t, res.err, errz.ErrRuntime)
		require.Contains(t, se.Message, "on empty stack")
	}
}

func TestTypeError(t *testing.T) {
	res := run(t, `"a" 1 +`, "", WithFilename("main.sl"))
	se := requireKind(t, res.err, errz.ErrType)
	require.Equal(t, "unsupported operand types for +: string and int", se.Message)
	require.Equal(t, 1, se.Location.Line)
	require.Equal(t, 7, se.Location.Column)
	require.Equal(t, "main.sl", se.Location.Filename)
	require.Equal(t, `"a" 1 +`, se.Location.Source)

	for _, input := range []string{"1 2 >=", "1 2 <=", "1.5 2 %", "1.0 1 &&", `"a" 1 ==`, "'c' 1 -"} {
		res = run(t, input, "")
		requireKind(t, res.err, errz.ErrType)
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, input := range []string{"1 0 /", "1 0 %"} {
		res := run(t, input, "")
		requireKind(t, res.err, errz.ErrValue)
		require.True(t, errors.Is(res.err, object.ErrDivisionByZero))
	}
}

func TestUnknownProcedure(t *testing.T) {
	res := run(t, "1 printf", "")
	se := requireKind(t, res.err, errz.ErrName)
	require.Equal(t, `unknown procedure "printf"`, se.Message)
	require.Equal(t, 3, se.Location.Column)
	require.Equal(t, "did you mean one of: 'print', 'println'?", se.Hint)

	res = run(t, "1 frobnicate", "")
	se = requireKind(t, res.err, errz.ErrName)
	require.Empty(t, se.Hint)
}

func TestPopEmptyStack(t *testing.T) {
	res := run(t, "println", "")
	se := requireKind(t, res.err, errz.ErrRuntime)
	require.Equal(t, "pop from empty stack", se.Message)
}

func TestInput(t *testing.T) {
	res := run(t, "input input + println", "3\n4\n")
	require.NoError(t, res.err)
	require.Equal(t, "7\n", res.stdout)

	res = run(t, "input println input println input println", "0x10\n1.5\nhello\n")
	require.NoError(t, res.err)
	require.Equal(t, "16\n1.5000\nhello\n", res.stdout)
}

func TestInputEOF(t *testing.T) {
	res := run(t, "input", "")
	requireKind(t, res.err, errz.ErrIO)
	require.True(t, errors.Is(res.err, builtins.ErrEndOfInput))
}

func TestShowStack(t *testing.T) {
	res := run(t, "1 2.5 showstack", "")
	require.NoError(t, res.err)
	require.Equal(t, "1: double    2.5000\n0: int       1\n", res.stdout)
	require.Len(t, res.vm.Stack(), 2)
}

func TestLeftoversSkipped(t *testing.T) {
	res := run(t, "else 1 2 + println", "")
	require.NoError(t, res.err)
	require.Equal(t, "3\n", res.stdout)
}

func TestUnsupportedStatements(t *testing.T) {
	for _, node := range []ast.Node{&ast.Switch{}, &ast.Case{}, &ast.ProcedureDef{Name: "f"}} {
		vm := New()
		err := vm.Run(context.Background(), &ast.Program{Nodes: []ast.Node{node}})
		se := requireKind(t, err, errz.ErrUnsupported)
		require.Contains(t, se.Message, "not supported")
	}
}

type recordingObserver struct {
	NoOpObserver
	steps []StepEvent
	calls []CallEvent
	halt  bool
}

func (o *recordingObserver) OnStep(event StepEvent) bool {
	o.steps = append(o.steps, event)
	return true
}

func (o *recordingObserver) OnCall(event CallEvent) bool {
	o.calls = append(o.calls, event)
	return !o.halt
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	res := run(t, "3 4 + println", "", WithObserver(obs))
	require.NoError(t, res.err)
	// BinaryOp, its two operands, then the call
	require.Len(t, obs.steps, 4)
	require.Equal(t, 0, obs.steps[0].StackDepth)
	require.Len(t, obs.calls, 1)
	require.Equal(t, "println", obs.calls[0].Name)
	require.Equal(t, 1, obs.calls[0].StackDepth)

	obs = &recordingObserver{halt: true}
	res = run(t, "1 println 2 println", "", WithObserver(obs))
	require.ErrorIs(t, res.err, ErrHalted)
	require.Empty(t, res.stdout)
}

func TestContextCancelled(t *testing.T) {
	program, err := parser.Parse(context.Background(), "1 2 +")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = New().Run(ctx, program)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTOSEmpty(t *testing.T) {
	vm := New()
	_, ok := vm.TOS()
	require.False(t, ok)
}
