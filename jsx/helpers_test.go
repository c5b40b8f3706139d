package jsx

import (
	"strings"
	"testing"

	"github.com/wippyai/jsx-luau/luau"
)

// ref is a test expression compiling to an identifier of a fixed class.
type ref struct {
	name  string
	class TypeClass
	at    Pos
}

// effect compiles to a temporary bound by a prerequisite call `name()`.
type effect struct {
	name  string
	class TypeClass
}

type str struct {
	value string
}

type object struct {
	props []Property
}

// broken fails to compile.
type broken struct{}

func (r *ref) Pos() Pos    { return r.at }
func (e *effect) Pos() Pos { return Pos{} }
func (s *str) Pos() Pos    { return Pos{} }
func (o *object) Pos() Pos { return Pos{} }
func (b *broken) Pos() Pos { return Pos{} }

func (s *str) StringValue() string       { return s.value }
func (o *object) Properties() []Property { return o.props }

type testCompiler struct{}

func (testCompiler) CompileExpression(s *State, e Expr) (luau.Expression, error) {
	switch e := e.(type) {
	case *ref:
		return luau.QualifiedName(e.name), nil
	case *effect:
		return s.PushToVar(luau.Call(luau.ID(e.name)), "value"), nil
	case *str:
		return luau.String(e.value), nil
	case *object:
		return &luau.Table{}, nil
	}
	return nil, errBroken
}

var errBroken = &brokenError{}

type brokenError struct{}

func (*brokenError) Error() string { return "broken expression" }

func testOracle(e Expr) TypeClass {
	switch e := e.(type) {
	case *ref:
		return e.class
	case *effect:
		return e.class
	}
	return TypeUnknown
}

func newTestState(diags *Diagnostics) *State {
	cfg := Config{
		Compiler: testCompiler{},
		Oracle:   TypeOracleFunc(testOracle),
		Options:  DefaultOptions(),
	}
	if diags != nil {
		cfg.Diagnostics = diags
	}
	return NewState(cfg)
}

func elem(name string) *ExpressionChild {
	return &ExpressionChild{Expr: &ref{name: name, class: TypeElement}}
}

func exprOf(name string, class TypeClass) *ExpressionChild {
	return &ExpressionChild{Expr: &ref{name: name, class: class}}
}

func spread(name string) *ExpressionChild {
	return &ExpressionChild{Expr: &ref{name: name, class: TypeArray}, Spread: true}
}

func keyed(tag, key string) *Element {
	return &Element{
		Tag:        tag,
		Attributes: []AttributeLike{&Attribute{Name: "Key", Value: &str{value: key}}},
	}
}

// render prints prerequisites followed by `return <value>`.
func render(stmts []luau.Statement, value luau.Expression) string {
	out := append(append([]luau.Statement{}, stmts...), luau.Return(value))
	return luau.Print(out)
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func assertCode(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("generated code mismatch\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}
