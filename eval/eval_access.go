/*
File    : sod/eval/eval_access.go
Package   : eval
*/

package eval

import (
	"fmt"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
)

// evalIndexExpression reads base[index] as a plain expression — the
// returned element is handed back as-is, not cloned, since only
// identifier reads clone (see the object.String doc comment).
func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression) (object.Value, bool, error) {
	base, isReturn, err := e.evalNode(node.Base)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return base, true, nil
	}
	idxVal, isReturn, err := e.evalNode(node.Index)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return idxVal, true, nil
	}
	idx, err := requireIndex(idxVal)
	if err != nil {
		return nil, false, err
	}

	switch b := base.(type) {
	case *object.List:
		v, err := b.Get(idx)
		return v, false, err
	case *object.String:
		s, err := b.ByteAt(idx)
		if err != nil {
			return nil, false, err
		}
		return object.NewString(s), false, nil
	default:
		return nil, false, fmt.Errorf("type error: %s is not indexable", base.Type())
	}
}

// evalMemberExpression reads base.property. Only Object exposes
// readable properties; anything else is a type error.
func (e *Evaluator) evalMemberExpression(node *ast.MemberExpression) (object.Value, bool, error) {
	base, isReturn, err := e.evalNode(node.Base)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return base, true, nil
	}
	obj, ok := base.(*object.Object)
	if !ok {
		return nil, false, fmt.Errorf("type error: %s has no properties", base.Type())
	}
	return obj.Get(node.Property), false, nil
}

func requireIndex(v object.Value) (int, error) {
	n, ok := v.(object.Number)
	if !ok {
		return 0, fmt.Errorf("type error: index must be a number, got %s", v.Type())
	}
	return int(n), nil
}

// evalReference resolves node to its live, shared-storage Value rather
// than a clone — the handle an assignment writes through, or a method
// call mutates in place. Only Identifier, IndexExpression, and
// MemberExpression bases participate; anything else (a literal, a call
// result) is evaluated normally, since it owns no storage for a later
// read to alias.
func (e *Evaluator) evalReference(n ast.Node) (object.Value, error) {
	switch node := n.(type) {
	case *ast.Identifier:
		return e.table.Get(node.Name)
	case *ast.IndexExpression:
		base, err := e.evalReference(node.Base)
		if err != nil {
			return nil, err
		}
		idxVal, _, err := e.evalNode(node.Index)
		if err != nil {
			return nil, err
		}
		idx, err := requireIndex(idxVal)
		if err != nil {
			return nil, err
		}
		list, ok := base.(*object.List)
		if !ok {
			return nil, fmt.Errorf("type error: %s is not indexable", base.Type())
		}
		return list.Get(idx)
	case *ast.MemberExpression:
		base, err := e.evalReference(node.Base)
		if err != nil {
			return nil, err
		}
		obj, ok := base.(*object.Object)
		if !ok {
			return nil, fmt.Errorf("type error: %s has no properties", base.Type())
		}
		return obj.Get(node.Property), nil
	default:
		v, _, err := e.evalNode(n)
		return v, err
	}
}
