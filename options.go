package sl

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/sl-lang/sl/parser"
	"github.com/sl-lang/sl/vm"
)

// Option configures an sl parse or evaluation.
type Option func(*options)

type options struct {
	filename    string
	source      string
	stdin       io.Reader
	stdout      io.Writer
	logger      *zerolog.Logger
	stackDump   io.Writer
	astDump     io.Writer
	observer    vm.Observer
	diagnostics func(error)
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.logger != nil {
		opts = append(opts, parser.WithLogger(*o.logger))
	}
	if o.stackDump != nil {
		opts = append(opts, parser.WithStackDump(o.stackDump))
	}
	return opts
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.filename != "" {
		opts = append(opts, vm.WithFilename(o.filename))
	}
	if o.source != "" {
		opts = append(opts, vm.WithSource(o.source))
	}
	if o.stdin != nil {
		opts = append(opts, vm.WithStdin(o.stdin))
	}
	if o.stdout != nil {
		opts = append(opts, vm.WithStdout(o.stdout))
	}
	if o.logger != nil {
		opts = append(opts, vm.WithLogger(*o.logger))
	}
	if o.observer != nil {
		opts = append(opts, vm.WithObserver(o.observer))
	}
	return opts
}

// WithFilename sets the filename for the source code being evaluated.
// This is used for error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithStdin sets the reader consumed by the input procedure.
// The default is os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithStdout sets the writer used by print and println.
// The default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithLogger sets the logger passed to the parser and the VM.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithStackDump writes the final parse stack to w after parsing.
func WithStackDump(w io.Writer) Option {
	return func(o *options) {
		o.stackDump = w
	}
}

// WithASTDump writes an outline of the parsed program to w.
func WithASTDump(w io.Writer) Option {
	return func(o *options) {
		o.astDump = w
	}
}

// WithObserver sets an observer for VM execution events.
func WithObserver(observer vm.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithDiagnostics registers fn to receive each recoverable problem found
// while parsing, such as an unrecognized token.
func WithDiagnostics(fn func(error)) Option {
	return func(o *options) {
		o.diagnostics = fn
	}
}

// WithSource sets the program text shown alongside runtime errors. Eval sets
// it automatically.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}
