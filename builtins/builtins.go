// Package builtins defines the built-in procedures available to sl programs.
//
// A procedure takes no explicit arguments. It works directly on the runtime
// stack of the Machine it is called with.
package builtins

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sl-lang/sl/object"
)

// ErrEndOfInput is returned by input when stdin has no more data.
var ErrEndOfInput = errors.New("end of input")

// Machine is the view of the interpreter that procedures operate on.
type Machine interface {
	// Push a value onto the runtime stack.
	Push(obj object.Object)

	// Pop the top value from the runtime stack. An error is returned if the
	// stack is empty.
	Pop() (object.Object, error)

	// Values returns the runtime stack, bottom to top.
	Values() []object.Object

	// Stdin returns the reader used by input.
	Stdin() *bufio.Reader

	// Stdout returns the writer used by print and println.
	Stdout() io.Writer
}

// Func is the signature of a built-in procedure.
type Func func(ctx context.Context, m Machine) error

// Entry describes a built-in procedure.
type Entry struct {
	Name    string
	Fn      Func
	Doc     string
	Pops    int
	Pushes  int
	Example string
}

// Print pops the top value and writes its textual form.
func Print(ctx context.Context, m Machine) error {
	obj, err := m.Pop()
	if err != nil {
		return err
	}
	_, err = io.WriteString(m.Stdout(), obj.String())
	return err
}

// Println pops the top value and writes its textual form and a newline.
func Println(ctx context.Context, m Machine) error {
	obj, err := m.Pop()
	if err != nil {
		return err
	}
	_, err = io.WriteString(m.Stdout(), obj.String()+"\n")
	return err
}

// Input reads one line from stdin and pushes it, classified as an int,
// a double or a string by its shape.
func Input(ctx context.Context, m Machine) error {
	line, err := m.Stdin().ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return ErrEndOfInput
		}
		return err
	}
	line = strings.TrimRight(line, "\r\n")
	m.Push(object.Classify(line))
	return nil
}

// ShowStack writes the runtime stack, top first, without modifying it.
func ShowStack(ctx context.Context, m Machine) error {
	values := m.Values()
	w := m.Stdout()
	for i := len(values) - 1; i >= 0; i-- {
		obj := values[i]
		if _, err := fmt.Fprintf(w, "%d: %-9s %s\n", i, obj.Type(), obj.Inspect()); err != nil {
			return err
		}
	}
	return nil
}

var builtins = map[string]Entry{
	"print": {
		Name:    "print",
		Fn:      Print,
		Doc:     "Pop a value and write it to stdout",
		Pops:    1,
		Example: `"hello" print`,
	},
	"println": {
		Name:    "println",
		Fn:      Println,
		Doc:     "Pop a value and write it to stdout followed by a newline",
		Pops:    1,
		Example: `3 4 + println`,
	},
	"input": {
		Name:    "input",
		Fn:      Input,
		Doc:     "Read a line from stdin and push it as an int, double or string",
		Pushes:  1,
		Example: `input println`,
	},
	"showstack": {
		Name:    "showstack",
		Fn:      ShowStack,
		Doc:     "Write the runtime stack to stdout, top first",
		Example: `1 2 showstack`,
	},
}

// Lookup returns the procedure with the given name.
func Lookup(name string) (Entry, bool) {
	e, ok := builtins[name]
	return e, ok
}

// Docs returns documentation for all builtin procedures, sorted by name.
func Docs() []Entry {
	entries := make([]Entry, 0, len(builtins))
	for _, e := range builtins {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Names returns the names of all builtin procedures, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
