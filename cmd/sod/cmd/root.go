/*
File    : sod/cmd/sod/cmd/root.go
Package   : cmd
*/

// Package cmd wires the sod executable's command-line surface: no
// arguments starts the interactive REPL, a path argument runs that
// script, and anything after the path becomes process.argv inside it.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ricoveitch/sod/eval"
	"github.com/ricoveitch/sod/parser"
	"github.com/ricoveitch/sod/repl"
)

// Version is overwritten at build time via -ldflags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "sod [script] [args...]",
	Short:   "sod is a small dynamically-typed scripting language",
	Version: Version,
	// ArbitraryArgs so a script's own trailing arguments are never
	// mistaken for flags belonging to this command.
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	// Stop flag parsing at the first positional argument (the script
	// path), so flag-shaped arguments after it reach process.argv.
	rootCmd.Flags().SetInterspersed(false)
}

// Execute runs the root command and returns any error it produced.
func Execute() error {
	return rootCmd.Execute()
}

func run(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return repl.New().Start(os.Stdout, os.Stderr)
	}

	return runScript(args[0], args[1:])
}

func runScript(path string, scriptArgs []string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	par := parser.New(string(src))
	prog := par.Parse()

	if errs := par.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	evaluator := eval.NewWithArgv(scriptArgs)
	if _, err := evaluator.Eval(prog); err != nil {
		return err
	}
	return nil
}
