/*
File    : sod/object/operators.go
Package   : object
*/

package object

import (
	"fmt"
	"math"

	"github.com/ricoveitch/sod/token"
)

// Clone returns an independent copy of v for variants with single-owner
// storage (String, List, Range); every other variant is returned as-is,
// since Number/Boolean/None are copied by value already and Function/
// Object identity must survive a read.
func Clone(v Value) Value {
	switch val := v.(type) {
	case *String:
		return val.Clone()
	case *List:
		return val.Clone()
	case *Range:
		cp := *val
		return &cp
	default:
		return v
	}
}

// Equal reports structural equality. Values of different variants are
// never equal. Function values compare by identity (pointer equality)
// only, never structurally.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case Number:
		return av == b.(Number)
	case Boolean:
		return av == b.(Boolean)
	case *String:
		return av.Value == b.(*String).Value
	case *List:
		bl := b.(*List)
		if len(av.Elements) != len(bl.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bl.Elements[i]) {
				return false
			}
		}
		return true
	case *Function:
		return av == b.(*Function)
	case noneValue:
		return true
	default:
		return a == b
	}
}

// compare returns -1, 0, or 1 for a relative to b. Only Number and
// String support ordering; any other pairing is a type error.
func compare(a, b Value) (int, error) {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return 0, typeError(a, b)
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		default:
			return 0, nil
		}
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return 0, typeError(a, b)
		}
		switch {
		case av.Value < bv.Value:
			return -1, nil
		case av.Value > bv.Value:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, typeError(a, b)
	}
}

func typeError(a, b Value) error {
	return fmt.Errorf("type error: cannot compare %s and %s", a.Type(), b.Type())
}

// BinaryOp evaluates a non-short-circuiting binary operator over two
// already-evaluated operands. && and || are handled by the evaluator
// directly, since they must not evaluate their right operand eagerly.
func BinaryOp(op token.Type, left, right Value) (Value, error) {
	switch op {
	case token.EQ:
		return Boolean(Equal(left, right)), nil
	case token.NOT_EQ:
		return Boolean(!Equal(left, right)), nil
	case token.LT, token.GT, token.LE, token.GE:
		c, err := compare(left, right)
		if err != nil {
			return nil, err
		}
		switch op {
		case token.LT:
			return Boolean(c < 0), nil
		case token.GT:
			return Boolean(c > 0), nil
		case token.LE:
			return Boolean(c <= 0), nil
		default:
			return Boolean(c >= 0), nil
		}
	}

	// Arithmetic: + additionally supports string concatenation and
	// list concatenation; the rest are numeric only.
	if op == token.PLUS {
		if ls, ok := left.(*String); ok {
			if rs, ok := right.(*String); ok {
				return NewString(ls.Value + rs.Value), nil
			}
			return nil, fmt.Errorf("type error: cannot add %s to string", right.Type())
		}
		if ll, ok := left.(*List); ok {
			if rl, ok := right.(*List); ok {
				combined := make([]Value, 0, len(ll.Elements)+len(rl.Elements))
				combined = append(combined, ll.Elements...)
				combined = append(combined, rl.Elements...)
				return NewList(combined), nil
			}
			return nil, fmt.Errorf("type error: cannot add %s to list", right.Type())
		}
	}

	ln, ok := left.(Number)
	if !ok {
		return nil, fmt.Errorf("type error: %s is not a number", left.Type())
	}
	rn, ok := right.(Number)
	if !ok {
		return nil, fmt.Errorf("type error: %s is not a number", right.Type())
	}

	switch op {
	case token.PLUS:
		return ln + rn, nil
	case token.MINUS:
		return ln - rn, nil
	case token.ASTERISK:
		return ln * rn, nil
	case token.SLASH:
		if rn == 0 {
			return nil, fmt.Errorf("math error: division by zero")
		}
		return ln / rn, nil
	case token.CARAT:
		return Number(math.Pow(float64(ln), float64(rn))), nil
	default:
		return nil, fmt.Errorf("internal error: unknown binary operator %s", op)
	}
}

// Negate implements unary minus: numeric negation only.
func Negate(v Value) (Value, error) {
	n, ok := v.(Number)
	if !ok {
		return nil, fmt.Errorf("type error: cannot negate %s", v.Type())
	}
	return -n, nil
}
