package builtins

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sl-lang/sl/object"
	"github.com/stretchr/testify/require"
)

var errEmpty = errors.New("empty stack")

type fakeMachine struct {
	stack  []object.Object
	stdin  *bufio.Reader
	stdout bytes.Buffer
}

func newFakeMachine(input string, values ...object.Object) *fakeMachine {
	return &fakeMachine{
		stack: values,
		stdin: bufio.NewReader(strings.NewReader(input)),
	}
}

func (m *fakeMachine) Push(obj object.Object) { m.stack = append(m.stack, obj) }

func (m *fakeMachine) Pop() (object.Object, error) {
	if len(m.stack) == 0 {
		return nil, errEmpty
	}
	obj := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return obj, nil
}

func (m *fakeMachine) Values() []object.Object { return m.stack }
func (m *fakeMachine) Stdin() *bufio.Reader    { return m.stdin }
func (m *fakeMachine) Stdout() io.Writer       { return &m.stdout }

func TestBuiltins(t *testing.T) {
	require.Len(t, Names(), 4)
	for _, name := range []string{"print", "println", "input", "showstack"} {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, name, e.Name)
		require.NotNil(t, e.Fn)
		require.NotEmpty(t, e.Doc)
	}
	_, ok := Lookup("printf")
	require.False(t, ok)
}

func TestDocsSorted(t *testing.T) {
	docs := Docs()
	require.Len(t, docs, 4)
	require.Equal(t, "input", docs[0].Name)
	require.Equal(t, "showstack", docs[3].Name)
	require.Equal(t, []string{"input", "print", "println", "showstack"}, Names())
}

func TestPrint(t *testing.T) {
	tests := []struct {
		value    object.Object
		expected string
	}{
		{object.NewInt(7), "7"},
		{object.NewInt(-12), "-12"},
		{object.NewDouble(7), "7.0000"},
		{object.NewDouble(2.5), "2.5000"},
		{object.NewString(`"hello"`), "hello"},
		{object.NewString("raw text"), "raw text"},
		{object.NewChar("'c'"), "'c'"},
	}
	for _, tt := range tests {
		m := newFakeMachine("", tt.value)
		require.NoError(t, Print(context.Background(), m))
		require.Equal(t, tt.expected, m.stdout.String())
		require.Empty(t, m.stack)
	}
}

func TestPrintln(t *testing.T) {
	m := newFakeMachine("", object.NewInt(1), object.NewInt(5))
	require.NoError(t, Println(context.Background(), m))
	require.Equal(t, "5\n", m.stdout.String())
	require.Len(t, m.stack, 1)
}

func TestPrintEmptyStack(t *testing.T) {
	m := newFakeMachine("")
	require.ErrorIs(t, Print(context.Background(), m), errEmpty)
	require.ErrorIs(t, Println(context.Background(), m), errEmpty)
	require.Empty(t, m.stdout.String())
}

func TestInput(t *testing.T) {
	m := newFakeMachine("42\n0x1f\r\n2.50\nhello there\nlast")
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, Input(ctx, m))
	}
	require.Len(t, m.stack, 5)
	require.Equal(t, object.NewInt(42), m.stack[0])
	require.Equal(t, object.NewInt(31), m.stack[1])
	require.Equal(t, object.NewDouble(2.5), m.stack[2])
	require.Equal(t, object.NewString("hello there"), m.stack[3])
	require.Equal(t, object.NewString("last"), m.stack[4])

	require.ErrorIs(t, Input(ctx, m), ErrEndOfInput)
}

func TestInputEmptyLine(t *testing.T) {
	m := newFakeMachine("\n")
	require.NoError(t, Input(context.Background(), m))
	require.Equal(t, object.NewString(""), m.stack[0])
}

func TestShowStack(t *testing.T) {
	m := newFakeMachine("", object.NewInt(1), object.NewDouble(2), object.NewString(`"x"`))
	require.NoError(t, ShowStack(context.Background(), m))
	expected := "2: string    \"x\"\n" +
		"1: double    2.0000\n" +
		"0: int       1\n"
	require.Equal(t, expected, m.stdout.String())
	require.Len(t, m.stack, 3)
}
