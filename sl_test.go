package sl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sl-lang/sl/errz"
	"github.com/sl-lang/sl/object"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		input    string
		expected object.Object
	}{
		{"3 4 +", object.NewInt(7)},
		{"3 4.0 +", object.NewDouble(7)},
		{"7 4 %", object.NewInt(3)},
		{"3 4 <", object.NewInt(1)},
		{"0 1 &&", object.NewInt(0)},
		{`"abc" "abc" ==`, object.NewInt(1)},
		{"0x31942ff8", object.NewInt(831795192)},
		{"8637645", object.NewInt(8637645)},
		{"624517357", object.NewInt(624517357)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stack, err := Eval(ctx, tt.input)
			require.NoError(t, err)
			require.Equal(t, []object.Object{tt.expected}, stack)
		})
	}
}

func TestEvalDoubles(t *testing.T) {
	for input, expected := range map[string]float64{
		"5423.864213":      5423.864213,
		"46843134.9753947": 46843134.9753947,
	} {
		stack, err := Eval(context.Background(), input)
		require.NoError(t, err)
		require.Len(t, stack, 1)
		d, ok := stack[0].(*object.Double)
		require.True(t, ok)
		require.InDelta(t, expected, d.Value(), 1e-9)
	}
}

func TestEvalOutput(t *testing.T) {
	var out bytes.Buffer
	_, err := Eval(context.Background(), "if 1 { 5 println }", WithStdout(&out))
	require.NoError(t, err)
	require.Equal(t, "5\n", out.String())

	out.Reset()
	_, err = Eval(context.Background(), "if 0 { 5 println }", WithStdout(&out))
	require.NoError(t, err)
	require.Empty(t, out.String())
}

func TestEvalInput(t *testing.T) {
	var out bytes.Buffer
	stack, err := Eval(context.Background(), `input 2 * println "done" println`,
		WithStdin(strings.NewReader("21\n")),
		WithStdout(&out))
	require.NoError(t, err)
	require.Empty(t, stack)
	require.Equal(t, "42\ndone\n", out.String())
}

func TestDiagnostics(t *testing.T) {
	var diags []error
	stack, err := Eval(context.Background(), "1 @ 2 +", WithDiagnostics(func(err error) {
		diags = append(diags, err)
	}))
	require.NoError(t, err)
	require.Equal(t, []object.Object{object.NewInt(3)}, stack)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Error(), `"@"`)
}

func TestParseError(t *testing.T) {
	var out bytes.Buffer
	stack, err := Eval(context.Background(), `"unreached" println }`,
		WithStdout(&out), WithFilename("bad.sl"))
	require.Nil(t, stack)
	require.Empty(t, out.String())
	var se *errz.StructuredError
	require.True(t, errors.As(err, &se))
	require.Equal(t, errz.ErrSyntax, se.Kind)
	require.Equal(t, "bad.sl", se.Location.Filename)
	require.Equal(t, 21, se.Location.Column)
}

func TestRuntimeErrorKeepsStack(t *testing.T) {
	stack, err := Eval(context.Background(), `1 "a" 2 +`)
	require.Error(t, err)
	kind, ok := errz.KindOf(err)
	require.True(t, ok)
	require.Equal(t, errz.ErrType, kind)
	require.Equal(t, []object.Object{object.NewInt(1)}, stack)

	var se *errz.StructuredError
	require.True(t, errors.As(err, &se))
	require.Equal(t, `1 "a" 2 +`, se.Location.Source)
}

func TestDumps(t *testing.T) {
	var stackDump, astDump bytes.Buffer
	_, err := Eval(context.Background(), "3 4 + else",
		WithStackDump(&stackDump), WithASTDump(&astDump), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.Contains(t, stackDump.String(), "parse stack (2 entries")
	require.Equal(t, "Program\n  BinaryOp +\n    Term Int 3\n    Term Int 4\n  Reserved else\n", astDump.String())
}

func TestParseThenRun(t *testing.T) {
	ctx := context.Background()
	program, err := Parse(ctx, "2 ; *")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		stack, err := Run(ctx, program)
		require.NoError(t, err)
		require.Equal(t, []object.Object{object.NewInt(4)}, stack)
	}
}
