package jsx

import (
	"fmt"

	"github.com/wippyai/jsx-luau/luau"
)

// A tiny evaluator for the generated subset of Luau, used to check what the
// emitted code does at runtime rather than how it looks.

type ltable struct {
	entries map[any]any
	order   []any // non-array keys in insertion order
}

func newTable() *ltable {
	return &ltable{entries: make(map[any]any)}
}

func (t *ltable) get(k any) any {
	return t.entries[k]
}

func (t *ltable) set(k, v any) {
	if _, ok := t.entries[k]; !ok {
		t.order = append(t.order, k)
	}
	if v == nil {
		delete(t.entries, k)
		return
	}
	t.entries[k] = v
}

// length is the border starting at 1.
func (t *ltable) length() float64 {
	n := 0.0
	for t.entries[n+1] != nil {
		n++
	}
	return n
}

// pairs visits the array part in order, then other keys in insertion order.
func (t *ltable) pairs() [][2]any {
	var out [][2]any
	n := t.length()
	for i := 1.0; i <= n; i++ {
		out = append(out, [2]any{i, t.entries[i]})
	}
	for _, k := range t.order {
		if f, ok := k.(float64); ok && f >= 1 && f <= n && f == float64(int(f)) {
			continue
		}
		if v, ok := t.entries[k]; ok {
			out = append(out, [2]any{k, v})
		}
	}
	return out
}

type gofunc func(args []any) any

type interp struct {
	globals map[string]any
	temps   map[*luau.TemporaryIdentifier]any
	calls   []string
}

func newInterp(globals map[string]any) *interp {
	in := &interp{globals: globals, temps: make(map[*luau.TemporaryIdentifier]any)}
	if in.globals == nil {
		in.globals = make(map[string]any)
	}
	return in
}

func (in *interp) run(stmts []luau.Statement) {
	for _, s := range stmts {
		in.exec(s)
	}
}

func (in *interp) exec(s luau.Statement) {
	switch n := s.(type) {
	case *luau.VariableDeclaration:
		var v any
		if n.Right != nil {
			v = in.eval(n.Right)
		}
		in.bind(n.Left, v)
	case *luau.Assignment:
		v := in.eval(n.Right)
		if n.Operator != "=" {
			v = arith(n.Operator[:len(n.Operator)-1], in.eval(n.Left), v)
		}
		in.store(n.Left, v)
	case *luau.ForIn:
		call, ok := n.Expression.(*luau.CallExpression)
		if !ok || call.Callee != luau.Globals.Pairs {
			panic("interp: only pairs loops are supported")
		}
		t := in.eval(call.Args[0]).(*ltable)
		for _, kv := range t.pairs() {
			in.bind(n.IDs[0], kv[0])
			in.bind(n.IDs[1], kv[1])
			in.run(n.Body)
		}
	case *luau.If:
		if truthy(in.eval(n.Condition)) {
			in.run(n.Then)
		} else {
			in.run(n.Else)
		}
	case *luau.ReturnStatement:
	default:
		panic(fmt.Sprintf("interp: statement %T", s))
	}
}

func (in *interp) bind(id luau.AnyIdentifier, v any) {
	switch id := id.(type) {
	case *luau.TemporaryIdentifier:
		in.temps[id] = v
	case *luau.Identifier:
		in.globals[id.Name] = v
	}
}

func (in *interp) store(target luau.Expression, v any) {
	switch t := target.(type) {
	case luau.AnyIdentifier:
		in.bind(t, v)
	case *luau.ComputedIndex:
		in.eval(t.Expression).(*ltable).set(in.eval(t.Index), v)
	case *luau.PropertyAccess:
		in.eval(t.Expression).(*ltable).set(t.Name, v)
	default:
		panic(fmt.Sprintf("interp: assignment target %T", target))
	}
}

func (in *interp) eval(e luau.Expression) any {
	switch n := e.(type) {
	case *luau.Identifier:
		return in.globals[n.Name]
	case *luau.TemporaryIdentifier:
		v, ok := in.temps[n]
		if !ok {
			panic(fmt.Sprintf("interp: temporary %q read before declaration", n.Hint))
		}
		return v
	case *luau.NumberLiteral:
		return n.Value
	case *luau.StringLiteral:
		return n.Value
	case *luau.BoolLiteral:
		return n.Value
	case *luau.NilLiteral:
		return nil
	case *luau.BinaryExpression:
		switch n.Operator {
		case "and":
			l := in.eval(n.Left)
			if !truthy(l) {
				return l
			}
			return in.eval(n.Right)
		case "or":
			l := in.eval(n.Left)
			if truthy(l) {
				return l
			}
			return in.eval(n.Right)
		case "==":
			return in.eval(n.Left) == in.eval(n.Right)
		case "~=":
			return in.eval(n.Left) != in.eval(n.Right)
		}
		return arith(n.Operator, in.eval(n.Left), in.eval(n.Right))
	case *luau.UnaryExpression:
		v := in.eval(n.Expression)
		switch n.Operator {
		case "#":
			return v.(*ltable).length()
		case "not":
			return !truthy(v)
		case "-":
			return -v.(float64)
		}
	case *luau.CallExpression:
		f, ok := in.eval(n.Callee).(gofunc)
		if !ok {
			panic(fmt.Sprintf("interp: call of non-function %s", luau.PrintExpression(n.Callee)))
		}
		args := make([]any, len(n.Args))
		for i, a := range n.Args {
			args[i] = in.eval(a)
		}
		in.calls = append(in.calls, luau.PrintExpression(n.Callee))
		return f(args)
	case *luau.PropertyAccess:
		return in.eval(n.Expression).(*ltable).get(n.Name)
	case *luau.ComputedIndex:
		return in.eval(n.Expression).(*ltable).get(in.eval(n.Index))
	case *luau.Table:
		t := newTable()
		pos := 0.0
		for _, f := range n.Fields {
			v := in.eval(f.Value)
			if f.Key == nil {
				pos++
				t.set(pos, v)
				continue
			}
			t.set(in.eval(f.Key), v)
		}
		return t
	case *luau.KindTest:
		return kindOf(in.eval(n.Value)) == n.Kind
	}
	panic(fmt.Sprintf("interp: expression %T", e))
}

func arith(op string, l, r any) any {
	a, b := l.(float64), r.(float64)
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	panic("interp: operator " + op)
}

func truthy(v any) bool {
	return v != nil && v != false
}

func kindOf(v any) luau.Kind {
	switch v.(type) {
	case nil:
		return luau.KindNil
	case bool:
		return luau.KindBoolean
	case float64:
		return luau.KindNumber
	case string:
		return luau.KindString
	case *ltable:
		return luau.KindTable
	case gofunc:
		return luau.KindFunction
	}
	panic(fmt.Sprintf("interp: value %T", v))
}

// element builds a runtime value shaped like a created element.
func element(name string) *ltable {
	t := newTable()
	t.set("component", name)
	t.set("props", newTable())
	return t
}

func array(values ...any) *ltable {
	t := newTable()
	for i, v := range values {
		t.set(float64(i+1), v)
	}
	return t
}

// elementName returns the component name of an element value, or "".
func elementName(v any) string {
	t, ok := v.(*ltable)
	if !ok {
		return ""
	}
	name, _ := t.get("component").(string)
	return name
}

// roact is a runtime for createElement calls.
func roact() *ltable {
	r := newTable()
	r.set("createElement", gofunc(func(args []any) any {
		el := newTable()
		el.set("component", args[0])
		props := newTable()
		if len(args) > 1 {
			props = args[1].(*ltable)
		}
		el.set("props", props)
		if len(args) > 2 {
			props.set("children", args[2])
		}
		return el
	}))
	r.set("Ref", "Roact.Ref")
	events := newTable()
	events.set("Activated", "Roact.Event.Activated")
	r.set("Event", events)
	return r
}
