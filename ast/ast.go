/*
File    : sod/ast/ast.go
Package   : ast
*/

// Package ast defines the node shapes that make up a parsed sod
// program. Statements and expressions share one Node
// interface; the evaluator tells them apart with a type switch rather
// than a visitor, since sod's grammar is small enough that double
// dispatch buys nothing a switch doesn't already give cleanly.
package ast

import (
	"strings"

	"github.com/ricoveitch/sod/token"
)

// Node is satisfied by every AST node, statement or expression alike.
type Node interface {
	TokenLiteral() string
	String() string
}

// LValue is satisfied by node shapes the parser accepts on the left of
// an assignment: Identifier, IndexExpression, MemberExpression, and
// CallExpression. The evaluator assigns only into Identifier and List
// IndexExpression targets; the others are rejected as unsupported
// l-values.
type LValue interface {
	Node
	lvalue()
}

// Program is the root node: an ordered sequence of top-level
// statements.
type Program struct {
	Body []Node
}

func (p *Program) TokenLiteral() string { return "" }
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Body {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Number is a numeric literal; all numbers are stored as f64.
type Number struct {
	Token token.Token
	Value float64
}

func (n *Number) TokenLiteral() string { return n.Token.Literal }
func (n *Number) String() string       { return n.Token.Literal }

// Boolean is a `true`/`false` literal.
type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) String() string       { return b.Token.Literal }

// String is a raw ('...') string literal.
type String struct {
	Token token.Token
	Value string
}

func (s *String) TokenLiteral() string { return s.Token.Literal }
func (s *String) String() string       { return "'" + s.Value + "'" }

// TemplateSegment is one piece of a TemplateString: either literal text
// or the name of a `$name` interpolation to resolve at evaluation time.
type TemplateSegment struct {
	Literal string
	IsExpr  bool
	Name    string
}

// TemplateString is a double-quoted literal, pre-split at parse time
// into literal/interpolation segments.
type TemplateString struct {
	Token    token.Token
	Segments []TemplateSegment
}

func (t *TemplateString) TokenLiteral() string { return t.Token.Literal }
func (t *TemplateString) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, seg := range t.Segments {
		if seg.IsExpr {
			b.WriteByte('$')
			b.WriteString(seg.Name)
		} else {
			b.WriteString(seg.Literal)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Identifier names a binding. It is also an LValue.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Name }
func (i *Identifier) lvalue()              {}

// None is the singleton absence literal.
type None struct {
	Token token.Token
}

func (n *None) TokenLiteral() string { return n.Token.Literal }
func (n *None) String() string       { return "none" }

// List is a list literal: `[e1, e2, ...]`.
type List struct {
	Token    token.Token
	Elements []Node
}

func (l *List) TokenLiteral() string { return l.Token.Literal }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RangeExpression is `start..end` or `start..end..increment`.
type RangeExpression struct {
	Token     token.Token
	Start     Node
	End       Node
	Increment Node // nil if not specified (defaults to 1 at evaluation)
}

func (r *RangeExpression) TokenLiteral() string { return r.Token.Literal }
func (r *RangeExpression) String() string {
	s := r.Start.String() + ".." + r.End.String()
	if r.Increment != nil {
		s += ".." + r.Increment.String()
	}
	return s
}

// UnaryExpression is always numeric negation (`-expr`).
type UnaryExpression struct {
	Token token.Token
	Right Node
}

func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) String() string        { return "(-" + u.Right.String() + ")" }

// BinaryExpression is `left OP right` for the arithmetic, comparison,
// and logical operator set.
type BinaryExpression struct {
	Token    token.Token
	Left     Node
	Operator token.Type
	Right    Node
}

func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + string(b.Operator) + " " + b.Right.String() + ")"
}

// VariableExpression is `lhs = rhs`, where lhs is one of the legal
// LValue shapes.
type VariableExpression struct {
	Token token.Token
	Left  LValue
	Right Node
}

func (v *VariableExpression) TokenLiteral() string { return v.Token.Literal }
func (v *VariableExpression) String() string {
	return v.Left.String() + " = " + v.Right.String()
}

// IfStatement is `if cond { ... } (else (if ... | { ... }))?`.
type IfStatement struct {
	Token       token.Token
	Condition   Node
	Consequence *BlockStatement
	Alternative Node // *BlockStatement, *IfStatement, or nil
}

func (i *IfStatement) TokenLiteral() string { return i.Token.Literal }
func (i *IfStatement) String() string {
	s := "if " + i.Condition.String() + " " + i.Consequence.String()
	if i.Alternative != nil {
		s += " else " + i.Alternative.String()
	}
	return s
}

// BlockStatement is `{ stmt* }`.
type BlockStatement struct {
	Token token.Token
	Body  []Node
}

func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.Body {
		sb.WriteString(s.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}

// ForStatement is `for ident in iterable { ... }`. Iterable is either a
// RangeExpression or an expression evaluating to an iterable container.
type ForStatement struct {
	Token    token.Token
	Var      string
	Iterable Node
	Body     *BlockStatement
}

func (f *ForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForStatement) String() string {
	return "for " + f.Var + " in " + f.Iterable.String() + " " + f.Body.String()
}

// FunctionStatement is `func name(params) { ... }`.
type FunctionStatement struct {
	Token      token.Token
	Name       string
	Parameters []string
	Body       *BlockStatement
}

func (f *FunctionStatement) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionStatement) String() string {
	return "func " + f.Name + "(" + strings.Join(f.Parameters, ", ") + ") " + f.Body.String()
}

// CallExpression is `callee(args...)`. The parser accepts it as an
// LValue, but the evaluator rejects any assignment into it.
type CallExpression struct {
	Token     token.Token
	Callee    Node
	Arguments []Node
}

func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
func (c *CallExpression) lvalue() {}

// MemberExpression is `base.property`.
type MemberExpression struct {
	Token    token.Token
	Base     Node
	Property string
}

func (m *MemberExpression) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpression) String() string        { return m.Base.String() + "." + m.Property }
func (m *MemberExpression) lvalue()               {}

// IndexExpression is `base[index]`.
type IndexExpression struct {
	Token token.Token
	Base  Node
	Index Node
}

func (ix *IndexExpression) TokenLiteral() string { return ix.Token.Literal }
func (ix *IndexExpression) String() string {
	return ix.Base.String() + "[" + ix.Index.String() + "]"
}
func (ix *IndexExpression) lvalue() {}

// ReturnStatement is `return expr`.
type ReturnStatement struct {
	Token      token.Token
	Expression Node
}

func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) String() string        { return "return " + r.Expression.String() }

// Command is the external-process invocation form: a leading command
// name plus one fragment per following token (whitespace runs become a
// literal " " fragment), concatenated with no added separator at
// evaluation time into one shell command line. Each fragment is either literal
// text (a String) or an escaped identifier to resolve at evaluation
// time (an Identifier) — Command reuses Node directly for its
// fragments rather than inventing a parallel segment type, since both
// shapes already exist as expression nodes.
type Command struct {
	Token     token.Token
	Fragments []Node
}

func (c *Command) TokenLiteral() string { return c.Token.Literal }
func (c *Command) String() string {
	parts := make([]string, len(c.Fragments))
	for i, f := range c.Fragments {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}
