package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/sl-lang/sl"
	"github.com/sl-lang/sl/errz"
	"github.com/spf13/cobra"
)

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	code, filename, err := getCode(cmd, args)
	if errors.Is(err, errNoInput) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	logger, err := a.newLogger(stderr)
	if err != nil {
		return err
	}
	opts := a.slOptions(filename, stdout, stderr, logger)
	opts = append(opts, sl.WithStdin(cmd.InOrStdin()), sl.WithStdout(stdout))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	program, err := sl.Parse(ctx, code, opts...)
	if err != nil {
		return a.report(stderr, err)
	}
	if a.v.GetBool("no-interpret") {
		return nil
	}
	if a.v.GetBool("trace") {
		opts = append(opts, sl.WithObserver(&traceObserver{
			logger: logger.Level(zerolog.DebugLevel),
		}))
	}
	if _, err := sl.Run(ctx, program, append(opts, sl.WithSource(code))...); err != nil {
		return a.report(stderr, err)
	}
	return nil
}

// slOptions returns the options shared by every command that parses code.
func (a *app) slOptions(filename string, stdout, stderr io.Writer, logger zerolog.Logger) []sl.Option {
	opts := []sl.Option{
		sl.WithLogger(logger),
		sl.WithDiagnostics(func(err error) {
			a.warn(stderr, err)
		}),
	}
	if filename != "" {
		opts = append(opts, sl.WithFilename(filename))
	}
	if a.v.GetBool("verbose") {
		opts = append(opts, sl.WithStackDump(stdout))
	}
	if a.v.GetBool("ptree") {
		opts = append(opts, sl.WithASTDump(stdout))
	}
	return opts
}

// report writes a formatted error to w and returns errFailed.
func (a *app) report(w io.Writer, err error) error {
	formatter := errz.NewFormatter(a.useColor(w))
	fmt.Fprint(w, formatter.Format(err))
	return errFailed
}

func (a *app) warn(w io.Writer, err error) {
	label := color.New(color.FgYellow, color.Bold)
	if a.useColor(w) {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	fmt.Fprintf(w, "%s %s\n", label.Sprint("warning:"), err)
}
