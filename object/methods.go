/*
File    : sod/object/methods.go
Package   : object
*/

package object

import "fmt"

// CallMethod dispatches a method call against receiver. Method sets are
// a hard-coded per-variant table: List and String each expose their own
// set, every other variant rejects any method name.
func CallMethod(receiver Value, name string, args []Value) (Value, error) {
	switch r := receiver.(type) {
	case *List:
		return callListMethod(r, name, args)
	case *String:
		return callStringMethod(r, name, args)
	default:
		return nil, fmt.Errorf("type error: %s has no methods", receiver.Type())
	}
}

func arity(name string, args []Value, want int) error {
	if len(args) != want {
		return fmt.Errorf("arity error: %s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func numberArg(name string, args []Value, i int) (int, error) {
	n, ok := args[i].(Number)
	if !ok {
		return 0, fmt.Errorf("type error: %s expects a number argument, got %s", name, args[i].Type())
	}
	return int(n), nil
}

func callListMethod(l *List, name string, args []Value) (Value, error) {
	switch name {
	case "len":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return Number(l.Len()), nil
	case "push":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		l.Push(args[0])
		return Nil, nil
	case "pop":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return l.Pop()
	case "insert":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		idx, err := numberArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		if err := l.Insert(idx, args[1]); err != nil {
			return nil, err
		}
		return Nil, nil
	case "remove":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		idx, err := numberArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return l.Remove(idx)
	case "contains":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		return Boolean(l.Contains(args[0])), nil
	default:
		return nil, fmt.Errorf("name error: list has no method %q", name)
	}
}

func stringArg(name string, args []Value, i int) (string, error) {
	s, ok := args[i].(*String)
	if !ok {
		return "", fmt.Errorf("type error: %s expects a string argument, got %s", name, args[i].Type())
	}
	return s.Value, nil
}

func callStringMethod(s *String, name string, args []Value) (Value, error) {
	switch name {
	case "len":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return Number(s.Len()), nil
	case "push":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		c, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		s.Push(c)
		return Nil, nil
	case "pop":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		c, err := s.Pop()
		if err != nil {
			return nil, err
		}
		return NewString(c), nil
	case "insert":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		idx, err := numberArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		c, err := stringArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		if err := s.Insert(idx, c); err != nil {
			return nil, err
		}
		return Nil, nil
	case "remove":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		idx, err := numberArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		c, err := s.Remove(idx)
		if err != nil {
			return nil, err
		}
		return NewString(c), nil
	case "trim":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		s.Trim()
		return Nil, nil
	case "contains":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		sub, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return Boolean(s.Contains(sub)), nil
	default:
		return nil, fmt.Errorf("name error: string has no method %q", name)
	}
}
