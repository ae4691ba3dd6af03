/*
File    : sod/eval/eval_assign.go
Package   : eval
*/

package eval

import (
	"fmt"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
)

// evalVariableExpression evaluates the right side, then writes it
// through the shape of the left side. Identifier targets bind in the
// symbol table directly; IndexExpression targets mutate the owning
// List in place (String indexing is not supported as an assignment
// target); Member/Call targets are rejected — neither is implemented.
func (e *Evaluator) evalVariableExpression(node *ast.VariableExpression) (object.Value, bool, error) {
	rhs, isReturn, err := e.evalNode(node.Right)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return rhs, true, nil
	}

	switch lhs := node.Left.(type) {
	case *ast.Identifier:
		e.table.Set(lhs.Name, rhs)
	case *ast.IndexExpression:
		base, err := e.evalReference(lhs.Base)
		if err != nil {
			return nil, false, err
		}
		idxVal, _, err := e.evalNode(lhs.Index)
		if err != nil {
			return nil, false, err
		}
		idx, err := requireIndex(idxVal)
		if err != nil {
			return nil, false, err
		}
		list, ok := base.(*object.List)
		if !ok {
			return nil, false, fmt.Errorf("unsupported l-value: cannot index-assign into %s", base.Type())
		}
		if err := list.Set(idx, rhs); err != nil {
			return nil, false, err
		}
	case *ast.MemberExpression:
		return nil, false, fmt.Errorf("unsupported l-value: member assignment is not implemented")
	case *ast.CallExpression:
		return nil, false, fmt.Errorf("unsupported l-value: call assignment is not implemented")
	default:
		return nil, false, fmt.Errorf("unsupported l-value: %T is not assignable", node.Left)
	}

	return object.Nil, false, nil
}
