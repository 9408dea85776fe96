package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output written to w should be colored.
func (a *app) useColor(w io.Writer) bool {
	return !a.v.GetBool("no-color") && isTerminal(w)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func (a *app) processGlobalFlags() {
	if a.v.GetBool("no-color") {
		color.NoColor = true
	}
}

func (a *app) newLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !a.useColor(w)}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func (a *app) outputJSON(w io.Writer, value any) error {
	var (
		data []byte
		err  error
	)
	if a.useColor(w) {
		data, err = prettyjson.Marshal(value)
	} else {
		data, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

var outputFormatsCompletion = []string{"json", "text"}
