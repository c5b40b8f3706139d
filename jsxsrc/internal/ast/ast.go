// Package ast defines the expression nodes of the s-expression JSX source
// language. Every node implements jsx.Expr.
package ast

import (
	"github.com/wippyai/jsx-luau/jsx"
)

// Ident is a name or a dotted property chain such as props.items.
type Ident struct {
	Name string
	At   jsx.Pos
}

type Number struct {
	Raw   string
	Value float64
	At    jsx.Pos
}

type String struct {
	Value string
	At    jsx.Pos
}

type Bool struct {
	Value bool
	At    jsx.Pos
}

type Nil struct {
	At jsx.Pos
}

type Call struct {
	Callee jsx.Expr
	Args   []jsx.Expr
	At     jsx.Pos
}

// Logical operators.
const (
	OpAnd      = "and"
	OpOr       = "or"
	OpCoalesce = "coalesce"
)

// Logical is a short-circuiting binary expression.
type Logical struct {
	Left  jsx.Expr
	Right jsx.Expr
	Op    string
	At    jsx.Pos
}

// Increment is a pre-increment of a name; its value is the new value.
type Increment struct {
	Target *Ident
	At     jsx.Pos
}

// Object is an object literal with named properties in source order.
type Object struct {
	Props []jsx.Property
	At    jsx.Pos
}

// JSX is an element used as an expression.
type JSX struct {
	Element *jsx.Element
	At      jsx.Pos
}

func (e *Ident) Pos() jsx.Pos     { return e.At }
func (e *Number) Pos() jsx.Pos    { return e.At }
func (e *String) Pos() jsx.Pos    { return e.At }
func (e *Bool) Pos() jsx.Pos      { return e.At }
func (e *Nil) Pos() jsx.Pos       { return e.At }
func (e *Call) Pos() jsx.Pos      { return e.At }
func (e *Logical) Pos() jsx.Pos   { return e.At }
func (e *Increment) Pos() jsx.Pos { return e.At }
func (e *Object) Pos() jsx.Pos    { return e.At }
func (e *JSX) Pos() jsx.Pos       { return e.At }

// StringValue makes String a jsx.StringLiteral.
func (e *String) StringValue() string { return e.Value }

// Properties makes Object a jsx.ObjectLiteral.
func (e *Object) Properties() []jsx.Property { return e.Props }

// Declaration binds a name to a static type class.
type Declaration struct {
	Name  string
	Class jsx.TypeClass
	At    jsx.Pos
}

// Document is a parsed source file.
type Document struct {
	Declarations []Declaration
	Roots        []*jsx.Element
}
