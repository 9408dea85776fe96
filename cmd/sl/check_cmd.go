package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sl-lang/sl"
	"github.com/sl-lang/sl/syntax"
	"github.com/spf13/cobra"
)

// checkIssue is one problem reported by the check command.
type checkIssue struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	Level   string `json:"level"` // "warning" or "error"
}

type checkResult struct {
	File     string       `json:"file"`
	Issues   []checkIssue `json:"issues"`
	Errors   int          `json:"errors"`
	Warnings int          `json:"warnings"`
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report problems in sl code without running it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runCheck,
	}
	cmd.Flags().StringP("code", "c", "", "Code to check")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
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

	err = sl.Check(cmd.Context(), code, a.slOptions(filename, stdout, stderr, logger)...)
	var verrs *syntax.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		return a.report(stderr, err)
	}

	if filename == "" {
		filename = "<stdin>"
	}
	result := checkResult{File: filename, Issues: []checkIssue{}}
	if verrs != nil {
		for _, v := range verrs.Errors {
			result.Issues = append(result.Issues, checkIssue{
				Line:    v.Position.LineNumber(),
				Column:  v.Position.ColumnNumber(),
				Rule:    v.Rule,
				Message: v.Message,
				Hint:    v.Hint,
				Level:   v.Severity.String(),
			})
			if v.Severity == syntax.Error {
				result.Errors++
			} else {
				result.Warnings++
			}
		}
	}

	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "json":
		if err := a.outputJSON(stdout, result); err != nil {
			return err
		}
	case "text", "":
		a.printCheckResult(stdout, result)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	if result.Errors > 0 {
		return errFailed
	}
	return nil
}

func (a *app) printCheckResult(w io.Writer, result checkResult) {
	style := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if a.useColor(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	var (
		fileStyle  = style(color.FgCyan)
		warnStyle  = style(color.FgYellow)
		errorStyle = style(color.FgHiRed)
		ruleStyle  = style(color.FgMagenta)
		okStyle    = style(color.FgGreen)
	)

	if len(result.Issues) == 0 {
		fmt.Fprintf(w, "%s%s\n", fileStyle(result.File+": "), okStyle("OK"))
		return
	}
	for _, issue := range result.Issues {
		levelStyle := warnStyle
		if issue.Level == "error" {
			levelStyle = errorStyle
		}
		fmt.Fprintf(w, "%s%s%s %s\n",
			fileStyle(fmt.Sprintf("%s:%d:%d: ", result.File, issue.Line, issue.Column)),
			levelStyle(issue.Level),
			ruleStyle(" ["+issue.Rule+"]"),
			issue.Message)
		if issue.Hint != "" {
			fmt.Fprintf(w, "    hint: %s\n", issue.Hint)
		}
	}

	fmt.Fprintln(w)
	if result.Errors > 0 {
		fmt.Fprintln(w, errorStyle(fmt.Sprintf("%d error(s), %d warning(s)", result.Errors, result.Warnings)))
	} else {
		fmt.Fprintln(w, warnStyle(fmt.Sprintf("%d warning(s)", result.Warnings)))
	}
}
