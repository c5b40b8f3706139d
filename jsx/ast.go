package jsx

import (
	"strconv"
	"strings"
)

// Pos is a source position. The zero value means unknown.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Expr is a source expression. Its structure belongs to the front end;
// the lowering core only hands it to the ExpressionCompiler and TypeOracle.
type Expr interface {
	Pos() Pos
}

// StringLiteral is implemented by expressions whose string value is known
// at compile time.
type StringLiteral interface {
	Expr
	StringValue() string
}

// ObjectLiteral is implemented by object constructor expressions.
type ObjectLiteral interface {
	Expr
	Properties() []Property
}

// Property is one named entry of an ObjectLiteral.
type Property struct {
	Value Expr
	Name  string
}

// Child is a node in an element's children list.
type Child interface {
	Pos() Pos
	child()
}

// Text is literal text between tags.
type Text struct {
	Value string
	At    Pos
}

// ExpressionChild is a braced child: {expr}, {...expr} or the empty {}.
type ExpressionChild struct {
	Expr   Expr // nil for {}
	At     Pos
	Spread bool
}

// Element is a JSX element. It is both a child and the unit of lowering.
type Element struct {
	Tag        string
	Attributes []AttributeLike
	Children   []Child
	At         Pos
}

// Fragment is <>...</>. It is never valid in a children list handed to the
// lowering core.
type Fragment struct {
	Children []Child
	At       Pos
}

func (t *Text) Pos() Pos            { return t.At }
func (e *ExpressionChild) Pos() Pos { return e.At }
func (e *Element) Pos() Pos         { return e.At }
func (f *Fragment) Pos() Pos        { return f.At }

func (*Text) child()            {}
func (*ExpressionChild) child() {}
func (*Element) child()         {}
func (*Fragment) child()        {}

// OnlyWhitespace reports whether the text is empty or contains only
// whitespace, which JSX treats as formatting.
func (t *Text) OnlyWhitespace() bool {
	return strings.TrimSpace(t.Value) == ""
}

// AttributeLike is an Attribute or a SpreadAttribute.
type AttributeLike interface {
	attribute()
}

// Attribute is name={value}, name="value" or the shorthand name.
type Attribute struct {
	Value Expr // nil for shorthand
	Name  string
	At    Pos
}

// SpreadAttribute is {...expr} in attribute position.
type SpreadAttribute struct {
	Expr Expr
	At   Pos
}

func (*Attribute) attribute()       {}
func (*SpreadAttribute) attribute() {}
