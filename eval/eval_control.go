/*
File    : sod/eval/eval_control.go
Package   : eval
*/

package eval

import (
	"fmt"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
)

func (e *Evaluator) evalIfStatement(node *ast.IfStatement) (object.Value, bool, error) {
	cond, isReturn, err := e.evalNode(node.Condition)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return cond, true, nil
	}

	if cond.Truthy() {
		e.table.PushScope(object.ConditionalBlock)
		defer e.table.PopScope()
		return e.evalBlockStatement(node.Consequence)
	}

	switch alt := node.Alternative.(type) {
	case nil:
		return object.Nil, false, nil
	case *ast.IfStatement:
		return e.evalIfStatement(alt)
	case *ast.BlockStatement:
		e.table.PushScope(object.ConditionalBlock)
		defer e.table.PopScope()
		return e.evalBlockStatement(alt)
	default:
		return nil, false, fmt.Errorf("internal error: unexpected else-branch type %T", alt)
	}
}

// evalBlockStatement runs each child in order. A ReturnStatement (direct
// or propagated up from a nested construct) stops the block immediately
// and its value/flag bubble to the caller.
func (e *Evaluator) evalBlockStatement(node *ast.BlockStatement) (object.Value, bool, error) {
	for _, stmt := range node.Body {
		v, isReturn, err := e.evalNode(stmt)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
	}
	return object.Nil, false, nil
}

// evalForStatement evaluates the iterable once, pushes a single
// ForBlock frame for the whole loop (not per iteration), and rebinds
// the loop variable on each pass.
func (e *Evaluator) evalForStatement(node *ast.ForStatement) (object.Value, bool, error) {
	iterable, isReturn, err := e.evalIterable(node.Iterable)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return iterable, true, nil
	}

	items, err := iterationItems(iterable)
	if err != nil {
		return nil, false, err
	}

	e.table.PushScope(object.ForBlock)
	defer e.table.PopScope()

	for {
		item, ok := items()
		if !ok {
			break
		}
		e.table.Set(node.Var, item)
		v, isReturn, err := e.evalBlockStatement(node.Body)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
	}

	return object.Nil, false, nil
}

// evalIterable evaluates a for-loop's iterable expression, special-
// casing RangeExpression so a fresh Range is built directly rather
// than round-tripped through evalNode.
func (e *Evaluator) evalIterable(n ast.Node) (object.Value, bool, error) {
	if r, ok := n.(*ast.RangeExpression); ok {
		return e.evalRangeExpression(r)
	}
	return e.evalNode(n)
}

// iterationItems returns a pull-based cursor over v's elements: each
// call yields the next item, or ok=false once exhausted.
func iterationItems(v object.Value) (func() (object.Value, bool), error) {
	switch val := v.(type) {
	case *object.Range:
		return func() (object.Value, bool) {
			n, ok := val.Next()
			return n, ok
		}, nil
	case *object.List:
		i := 0
		return func() (object.Value, bool) {
			if i >= val.Len() {
				return nil, false
			}
			item := val.Elements[i]
			i++
			return item, true
		}, nil
	case *object.String:
		chars := val.Chars()
		i := 0
		return func() (object.Value, bool) {
			if i >= len(chars) {
				return nil, false
			}
			c := chars[i]
			i++
			return object.NewString(c), true
		}, nil
	default:
		return nil, fmt.Errorf("type error: %s is not iterable", v.Type())
	}
}

func (e *Evaluator) evalRangeExpression(node *ast.RangeExpression) (object.Value, bool, error) {
	start, isReturn, err := e.evalNode(node.Start)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return start, true, nil
	}
	end, isReturn, err := e.evalNode(node.End)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return end, true, nil
	}

	increment := object.Number(1)
	if node.Increment != nil {
		incVal, isReturn, err := e.evalNode(node.Increment)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return incVal, true, nil
		}
		n, ok := incVal.(object.Number)
		if !ok {
			return nil, false, fmt.Errorf("type error: range increment must be a number, got %s", incVal.Type())
		}
		increment = n
	}

	startN, ok := start.(object.Number)
	if !ok {
		return nil, false, fmt.Errorf("type error: range start must be a number, got %s", start.Type())
	}
	endN, ok := end.(object.Number)
	if !ok {
		return nil, false, fmt.Errorf("type error: range end must be a number, got %s", end.Type())
	}

	r, err := object.NewRange(float64(startN), float64(endN), float64(increment))
	if err != nil {
		return nil, false, err
	}
	return r, false, nil
}
