package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sl-lang/sl/builtins"
	"github.com/spf13/cobra"
)

func (a *app) docCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doc [procedure]",
		Aliases: []string{"d"},
		Short:   "Describe the built-in procedures",
		Args:    cobra.MaximumNArgs(1),
		RunE:    a.runDoc,
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

type docEntry struct {
	Name    string `json:"name"`
	Doc     string `json:"doc"`
	Pops    int    `json:"pops"`
	Pushes  int    `json:"pushes"`
	Example string `json:"example"`
}

func (a *app) runDoc(cmd *cobra.Command, args []string) error {
	entries := builtins.Docs()
	if len(args) > 0 {
		e, ok := builtins.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown procedure: %s", args[0])
		}
		entries = []builtins.Entry{e}
	}
	docs := make([]docEntry, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, docEntry{
			Name:    e.Name,
			Doc:     e.Doc,
			Pops:    e.Pops,
			Pushes:  e.Pushes,
			Example: e.Example,
		})
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "json":
		return a.outputJSON(out, docs)
	case "text", "":
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	name := color.New(color.FgCyan, color.Bold)
	if a.useColor(out) {
		name.EnableColor()
	} else {
		name.DisableColor()
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t( %d -> %d )\t%s\t%s\n", name.Sprint(d.Name), d.Pops, d.Pushes, d.Doc, d.Example)
	}
	return tw.Flush()
}
