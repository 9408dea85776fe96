package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// errNoInput is returned when no source was supplied.
var errNoInput = errors.New("no input: supply a file, --code or --stdin")

// getCode determines the source to process. There are three possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. path as args[0]
//
// The returned filename is empty unless the code came from a file.
func getCode(cmd *cobra.Command, args []string) (code string, filename string, err error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet, _ = cmd.Flags().GetBool("stdin")
	}
	pathSupplied := len(args) > 0
	// Error if multiple input sources are specified
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	case codeFlagSet:
		code, _ := cmd.Flags().GetString("code")
		return code, "", nil
	}
	return "", "", errNoInput
}
