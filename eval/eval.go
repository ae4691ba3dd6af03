/*
File    : sod/eval/eval.go
Package   : eval
*/

// Package eval is the tree-walking evaluator: it consumes an
// ast.Program and an object.SymbolTable and produces, per top-level
// statement, a runtime object.Value (object.Nil standing in for "no
// value produced", since this implementation does not distinguish that
// from the language's own None literal — both print and behave
// identically, and nothing in this interpreter observes the
// difference).
package eval

import (
	"fmt"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/object"
)

// Evaluator holds the one symbol table a program runs against. A REPL
// keeps a single Evaluator alive across lines so bindings persist;
// running a file constructs one and discards it.
type Evaluator struct {
	table *object.SymbolTable
}

// New returns an Evaluator with an empty global scope and an empty
// process.argv.
func New() *Evaluator {
	return NewWithArgv(nil)
}

// NewWithArgv is New, except process.argv is seeded from argv.
func NewWithArgv(argv []string) *Evaluator {
	e := &Evaluator{table: object.NewSymbolTable()}

	elems := make([]object.Value, len(argv))
	for i, a := range argv {
		elems[i] = object.NewString(a)
	}
	process := object.NewObject(map[string]object.Value{
		"argv": object.NewList(elems),
	})
	e.table.Set("process", process)

	return e
}

// Eval evaluates every top-level statement in order and returns one
// result per statement. Evaluation stops at the first error, returning
// whatever results were produced before it.
func (e *Evaluator) Eval(prog *ast.Program) ([]object.Value, error) {
	results := make([]object.Value, 0, len(prog.Body))
	for _, stmt := range prog.Body {
		v, _, err := e.evalNode(stmt)
		if err != nil {
			return results, err
		}
		if v == nil {
			v = object.Nil
		}
		results = append(results, v)
	}
	return results, nil
}

// evalNode dispatches on n's dynamic type. The returned bool reports
// whether a ReturnStatement fired during evaluation (directly, or by
// propagation from a nested block/if/for) — callers that represent a
// function body or loop body check it to stop iterating early and
// bubble the return value further up.
func (e *Evaluator) evalNode(n ast.Node) (object.Value, bool, error) {
	switch node := n.(type) {
	case *ast.Number:
		return object.Number(node.Value), false, nil
	case *ast.Boolean:
		return object.Boolean(node.Value), false, nil
	case *ast.None:
		return object.Nil, false, nil
	case *ast.String:
		return object.NewString(node.Value), false, nil
	case *ast.TemplateString:
		return e.evalTemplateString(node)
	case *ast.Identifier:
		v, err := e.table.Get(node.Name)
		if err != nil {
			return nil, false, err
		}
		return object.Clone(v), false, nil
	case *ast.List:
		return e.evalList(node)
	case *ast.RangeExpression:
		return e.evalRangeExpression(node)
	case *ast.UnaryExpression:
		return e.evalUnaryExpression(node)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(node)
	case *ast.VariableExpression:
		return e.evalVariableExpression(node)
	case *ast.IfStatement:
		return e.evalIfStatement(node)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node)
	case *ast.ForStatement:
		return e.evalForStatement(node)
	case *ast.FunctionStatement:
		e.table.Set(node.Name, &object.Function{Node: node})
		return object.Nil, false, nil
	case *ast.ReturnStatement:
		v, _, err := e.evalNode(node.Expression)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	case *ast.CallExpression:
		return e.evalCallExpression(node)
	case *ast.MemberExpression:
		return e.evalMemberExpression(node)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node)
	case *ast.Command:
		return e.evalCommand(node)
	default:
		return nil, false, fmt.Errorf("internal error: unhandled node type %T", n)
	}
}

func (e *Evaluator) evalList(node *ast.List) (object.Value, bool, error) {
	elems := make([]object.Value, len(node.Elements))
	for i, el := range node.Elements {
		v, isReturn, err := e.evalNode(el)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
		elems[i] = v
	}
	return object.NewList(elems), false, nil
}

func (e *Evaluator) evalUnaryExpression(node *ast.UnaryExpression) (object.Value, bool, error) {
	v, isReturn, err := e.evalNode(node.Right)
	if err != nil {
		return nil, false, err
	}
	if isReturn {
		return v, true, nil
	}
	neg, err := object.Negate(v)
	if err != nil {
		return nil, false, err
	}
	return neg, false, nil
}

func (e *Evaluator) evalTemplateString(node *ast.TemplateString) (object.Value, bool, error) {
	var out string
	for _, seg := range node.Segments {
		if !seg.IsExpr {
			out += seg.Literal
			continue
		}
		v, err := e.table.Get(seg.Name)
		if err != nil {
			return nil, false, err
		}
		out += v.String()
	}
	return object.NewString(out), false, nil
}
