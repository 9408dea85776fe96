package vm

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"
)

// Option is a configuration function for a Virtual Machine.
type Option func(*VirtualMachine)

// WithStdin sets the reader consumed by the input procedure.
func WithStdin(r io.Reader) Option {
	return func(vm *VirtualMachine) {
		if br, ok := r.(*bufio.Reader); ok {
			vm.stdin = br
		} else {
			vm.stdin = bufio.NewReader(r)
		}
	}
}

// WithStdout sets the writer used by the print procedures.
func WithStdout(w io.Writer) Option {
	return func(vm *VirtualMachine) {
		vm.stdout = w
	}
}

// WithLogger sets the logger used to trace evaluation.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VirtualMachine) {
		vm.logger = logger
	}
}

// WithObserver sets an observer for VM execution events.
// Returning false from any observer method halts execution immediately.
func WithObserver(observer Observer) Option {
	return func(vm *VirtualMachine) {
		vm.observer = observer
	}
}

// WithFilename sets the file name reported in runtime errors.
func WithFilename(filename string) Option {
	return func(vm *VirtualMachine) {
		vm.filename = filename
	}
}

// WithSource sets the program text used to show the offending line in
// runtime errors.
func WithSource(source string) Option {
	return func(vm *VirtualMachine) {
		vm.source = source
	}
}
