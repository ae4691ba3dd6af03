/*
File    : sod/repl/repl.go
Package   : repl
*/

// Package repl implements the interactive read-eval-print loop: read
// one line, parse and evaluate it as its own tiny program, print
// whatever values it produced, and keep going on error rather than
// exiting. One Evaluator lives for the whole session, so names bound on
// one line are visible on the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ricoveitch/sod/eval"
	"github.com/ricoveitch/sod/parser"
)

var (
	errColor    = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
)

// Repl is a configured interactive session. The zero value is not
// usable; construct one with New.
type Repl struct {
	Prompt string
}

// New returns a Repl with the standard "> " prompt.
func New() *Repl {
	return &Repl{Prompt: "> "}
}

// Start runs the loop until stdin closes (Ctrl-D) or the user presses
// Ctrl-C, writing results to out and errors to errOut.
func (r *Repl) Start(out, errOut io.Writer) error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C: both end
			// the session cleanly, not as a failure.
			return nil
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		r.evalLine(line, out, errOut, evaluator)
	}
}

func (r *Repl) evalLine(line string, out, errOut io.Writer, evaluator *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			errColor.Fprintln(errOut, rec)
		}
	}()

	par := parser.New(line)
	prog := par.Parse()

	if errs := par.Errors(); len(errs) > 0 {
		for _, e := range errs {
			errColor.Fprintln(errOut, e)
		}
		return
	}

	results, err := evaluator.Eval(prog)
	if err != nil {
		errColor.Fprintln(errOut, err.Error())
		return
	}

	for _, v := range results {
		resultColor.Fprintln(out, v.String())
	}
}
