package vm

import (
	"strings"

	"github.com/sl-lang/sl/errz"
)

// location returns the source location of the node being evaluated.
func (vm *VirtualMachine) location() errz.SourceLocation {
	filename := vm.pos.File
	if filename == "" {
		filename = vm.filename
	}
	return errz.SourceLocation{
		Filename: filename,
		Line:     vm.pos.LineNumber(),
		Column:   vm.pos.ColumnNumber(),
		Source:   vm.lineText(vm.pos.LineNumber()),
	}
}

func (vm *VirtualMachine) lineText(line int) string {
	if vm.source == "" {
		return ""
	}
	if vm.lines == nil {
		vm.lines = strings.Split(vm.source, "\n")
	}
	if line < 1 || line > len(vm.lines) {
		return ""
	}
	return strings.TrimRight(vm.lines[line-1], "\r")
}

// runtimeError creates a StructuredError at the current source location.
func (vm *VirtualMachine) runtimeError(kind errz.ErrorKind, format string, args ...any) *errz.StructuredError {
	return errz.Newf(kind, vm.location(), format, args...)
}

func (vm *VirtualMachine) unsupported(what string) *errz.StructuredError {
	return vm.runtimeError(errz.ErrUnsupported, "%s are not supported", what)
}
