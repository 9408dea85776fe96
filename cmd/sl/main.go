package main

import (
	"errors"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errFailed signals that a failure was already reported to the user.
var errFailed = errors.New("sl: run failed")

type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "sl [file]",
		Short: "Run programs written in sl, a small postfix stack language",
		Long: `Run programs written in sl, a small postfix stack language.

Source is read from a file argument, from --code or from stdin with --stdin.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runRoot,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.sl.yaml)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")

	f := root.Flags()
	f.StringP("code", "c", "", "Code to run")
	f.Bool("stdin", false, "Read code from stdin")
	f.BoolP("verbose", "v", false, "Dump the parse stack after parsing")
	f.BoolP("ptree", "p", false, "Dump the syntax tree after parsing")
	f.Bool("no-interpret", false, "Parse only; do not run the program")
	f.Bool("trace", false, "Log every evaluation step")

	for _, name := range []string{"no-color", "log-level"} {
		a.v.BindPFlag(name, pf.Lookup(name))
	}
	for _, name := range []string{"verbose", "ptree", "no-interpret", "trace"} {
		a.v.BindPFlag(name, f.Lookup(name))
	}

	root.AddCommand(
		a.astCmd(),
		a.checkCmd(),
		a.tokensCmd(),
		a.docCmd(),
		a.versionCmd(),
	)
	return root
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".sl")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("sl")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}
	a.processGlobalFlags()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		fatal(err)
	}
}

var red = color.New(color.FgRed).SprintFunc()
