/*
File    : sod/eval/eval_binary.go
Package   : eval
*/

package eval

import (
	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
	"github.com/ricoveitch/sod/token"
)

// evalBinaryExpression handles && and || itself, since both must skip
// evaluating their right operand when the left already decides the
// result; every other operator evaluates both sides and delegates to
// object.BinaryOp.
func (e *Evaluator) evalBinaryExpression(node *ast.BinaryExpression) (object.Value, bool, error) {
	left, isReturn, err := e.evalNode(node.Left)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return left, true, nil
	}

	switch node.Operator {
	case token.AND:
		if !left.Truthy() {
			return left, false, nil
		}
		return e.evalSide(node.Right)
	case token.OR:
		if left.Truthy() {
			return left, false, nil
		}
		return e.evalSide(node.Right)
	}

	right, isReturn, err := e.evalNode(node.Right)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return right, true, nil
	}

	v, err := object.BinaryOp(node.Operator, left, right)
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

func (e *Evaluator) evalSide(n ast.Node) (object.Value, bool, error) {
	v, isReturn, err := e.evalNode(n)
	if err != nil {
		return nil, false, err
	}
	return v, isReturn, nil
}
