package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sl-lang/sl/internal/lexer"
	"github.com/sl-lang/sl/internal/token"
	"github.com/spf13/cobra"
)

func (a *app) tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Display the token stream for sl code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTokens,
	}
	cmd.Flags().StringP("code", "c", "", "Code to tokenize")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

type tokenEntry struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	code, filename, err := getCode(cmd, args)
	if errors.Is(err, errNoInput) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}
	tokens := lexer.New(code, lexer.WithFilename(filename)).Tokens()
	out := cmd.OutOrStdout()

	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "json":
		entries := make([]tokenEntry, 0, len(tokens))
		for _, tok := range tokens {
			entries = append(entries, tokenEntry{
				Type:    string(tok.Type),
				Literal: tok.Literal,
				Line:    tok.StartPosition.LineNumber(),
				Column:  tok.StartPosition.ColumnNumber(),
			})
		}
		return a.outputJSON(out, entries)
	case "text", "":
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	unknown := color.New(color.FgRed)
	if a.useColor(out) {
		unknown.EnableColor()
	} else {
		unknown.DisableColor()
	}
	for _, tok := range tokens {
		typ := string(tok.Type)
		if tok.Type == token.UNKNOWN {
			typ = unknown.Sprint(typ)
		}
		fmt.Fprintf(out, "%d:%d\t%-10s %q\n",
			tok.StartPosition.LineNumber(), tok.StartPosition.ColumnNumber(), typ, tok.Literal)
	}
	return nil
}
