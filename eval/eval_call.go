/*
File    : sod/eval/eval_call.go
Package   : eval
*/

package eval

import (
	"fmt"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
)

// evalCallExpression dispatches on the callee's shape: an identifier
// base calls a user-defined function; a member base dispatches to the
// receiver's built-in method table.
func (e *Evaluator) evalCallExpression(node *ast.CallExpression) (object.Value, bool, error) {
	switch callee := node.Callee.(type) {
	case *ast.Identifier:
		return e.evalFunctionCall(callee, node.Arguments)
	case *ast.MemberExpression:
		return e.evalMethodCall(callee, node.Arguments)
	default:
		return nil, false, fmt.Errorf("type error: %s is not callable", node.Callee.String())
	}
}

func (e *Evaluator) evalFunctionCall(callee *ast.Identifier, argNodes []ast.Node) (object.Value, bool, error) {
	bound, err := e.table.Get(callee.Name)
	if err != nil {
		return nil, false, err
	}
	fn, ok := bound.(*object.Function)
	if !ok {
		return nil, false, fmt.Errorf("type error: %s is not a function", callee.Name)
	}

	if len(argNodes) < len(fn.Node.Parameters) {
		return nil, false, fmt.Errorf("arity error: %s expects at least %d argument(s), got %d", callee.Name, len(fn.Node.Parameters), len(argNodes))
	}

	args := make([]object.Value, len(argNodes))
	for i, a := range argNodes {
		v, isReturn, err := e.evalNode(a)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
		args[i] = v
	}

	e.table.PushScope(object.FunctionBlock)
	defer e.table.PopScope()

	for i, param := range fn.Node.Parameters {
		e.table.Set(param, args[i])
	}

	result, _, err := e.evalBlockStatement(fn.Node.Body)
	if err != nil {
		return nil, false, err
	}
	return result, false, nil
}

func (e *Evaluator) evalMethodCall(callee *ast.MemberExpression, argNodes []ast.Node) (object.Value, bool, error) {
	receiver, err := e.evalReference(callee.Base)
	if err != nil {
		return nil, false, err
	}

	args := make([]object.Value, len(argNodes))
	for i, a := range argNodes {
		v, isReturn, err := e.evalNode(a)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
		args[i] = v
	}

	v, err := object.CallMethod(receiver, callee.Property, args)
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}
