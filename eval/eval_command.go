/*
File    : sod/eval/eval_command.go
Package   : eval
*/

package eval

import (
	"fmt"
	"strings"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
	"github.com/ricoveitch/sod/shellexec"
)

// evalCommand concatenates every fragment's stringified value into one
// command line and runs it through the shell bridge. Whitespace between
// fragments is itself a fragment (literal " "), so no separator is
// added here — adding one would double up the spacing the parser
// already preserved. Escaped-identifier fragments resolve through the
// current scope exactly like a template string's '$name' segment —
// both share this same evaluation-time resolution, not a parse-time
// one.
func (e *Evaluator) evalCommand(node *ast.Command) (object.Value, bool, error) {
	parts := make([]string, len(node.Fragments))
	for i, frag := range node.Fragments {
		if ident, ok := frag.(*ast.Identifier); ok {
			v, err := e.table.Get(ident.Name)
			if err != nil {
				return nil, false, err
			}
			parts[i] = v.String()
			continue
		}

		v, isReturn, err := e.evalNode(frag)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
		parts[i] = v.String()
	}

	line := strings.Join(parts, "")
	out, err := shellexec.Run(line)
	if err != nil {
		return nil, false, err
	}
	fmt.Print(out)
	return object.NewString(out), false, nil
}
