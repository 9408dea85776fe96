package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sl-lang/sl"
	"github.com/sl-lang/sl/ast"
	"github.com/spf13/cobra"
)

func (a *app) astCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the syntax tree for sl code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runAST,
	}
	cmd.Flags().StringP("code", "c", "", "Code to parse")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (a *app) runAST(cmd *cobra.Command, args []string) error {
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
	program, err := sl.Parse(cmd.Context(), code, a.slOptions(filename, stdout, stderr, logger)...)
	if err != nil {
		return a.report(stderr, err)
	}
	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "json":
		return a.outputJSON(stdout, ast.ToMap(program))
	case "text", "":
		return ast.Fprint(stdout, program)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
