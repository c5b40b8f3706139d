package jsxsrc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/ast"
	"github.com/wippyai/jsx-luau/luau"
)

// Compiler is the jsx.ExpressionCompiler for source expressions.
//
// Expressions that need statements before their value is usable emit them
// through State.Prereq:
//
//	(coalesce a b)    local _value = a
//	                  if _value == nil then
//	                  	_value = b
//	                  end
//	(inc count)       count += 1
//
// Operands keep their left to right evaluation order. When a later operand
// emits statements, earlier operands that could observe them are bound to
// locals first.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

func (c *Compiler) CompileExpression(s *jsx.State, e jsx.Expr) (luau.Expression, error) {
	switch e := e.(type) {
	case *ast.Ident:
		return luau.QualifiedName(e.Name), nil
	case *ast.Number:
		return luau.Number(e.Value), nil
	case *ast.String:
		return luau.String(e.Value), nil
	case *ast.Bool:
		return luau.Bool(e.Value), nil
	case *ast.Nil:
		return luau.Nil(), nil
	case *ast.Call:
		values, err := c.compileOrdered(s, append([]jsx.Expr{e.Callee}, e.Args...))
		if err != nil {
			return nil, err
		}
		return luau.Call(values[0], values[1:]...), nil
	case *ast.Logical:
		return c.compileLogical(s, e)
	case *ast.Increment:
		target := luau.QualifiedName(e.Target.Name)
		s.Prereq(luau.CompoundAssign(target, "+=", luau.Number(1)))
		return target, nil
	case *ast.Object:
		return c.compileObject(s, e)
	case *ast.JSX:
		return jsx.CompileElement(s, e.Element)
	}
	return nil, errors.Unsupported(errors.PhaseCompile, e.Pos().Line, fmt.Sprintf("expression %T", e))
}

// compileOrdered compiles exprs left to right, hoisting earlier values
// into locals whenever a later expression emits statements.
func (c *Compiler) compileOrdered(s *jsx.State, exprs []jsx.Expr) ([]luau.Expression, error) {
	values := make([]luau.Expression, len(exprs))
	for i, e := range exprs {
		value, prereqs, err := s.Capture(func() (luau.Expression, error) {
			return c.CompileExpression(s, e)
		})
		if err != nil {
			return nil, err
		}
		if len(prereqs) > 0 {
			for j := range values[:i] {
				if !isStable(values[j]) {
					s.Logger().Debug("hoist operand", zap.Int("index", j), zap.Int("line", exprs[j].Pos().Line))
					values[j] = s.PushToVar(values[j], "arg")
				}
			}
			s.PrereqList(prereqs)
		}
		values[i] = value
	}
	return values, nil
}

// isStable reports whether no statement can change the value of e.
// Temporaries are assigned only by the code that introduced them.
func isStable(e luau.Expression) bool {
	switch e.(type) {
	case *luau.TemporaryIdentifier, *luau.NumberLiteral, *luau.StringLiteral, *luau.BoolLiteral, *luau.NilLiteral:
		return true
	}
	return false
}

func (c *Compiler) compileLogical(s *jsx.State, e *ast.Logical) (luau.Expression, error) {
	left, err := c.CompileExpression(s, e.Left)
	if err != nil {
		return nil, err
	}
	right, prereqs, err := s.Capture(func() (luau.Expression, error) {
		return c.CompileExpression(s, e.Right)
	})
	if err != nil {
		return nil, err
	}

	if len(prereqs) == 0 && e.Op != ast.OpCoalesce {
		return luau.Binary(left, e.Op, right), nil
	}

	// The right operand runs only when the left one does not decide.
	id := s.PushToVar(left, "value")
	var cond luau.Expression
	switch e.Op {
	case ast.OpAnd:
		cond = id
	case ast.OpOr:
		cond = luau.Not(id)
	default:
		cond = luau.Binary(id, "==", luau.Nil())
	}
	body := append(prereqs, luau.Assign(id, right))
	s.Prereq(luau.IfThen(cond, body, nil))
	return id, nil
}

func (c *Compiler) compileObject(s *jsx.State, e *ast.Object) (luau.Expression, error) {
	exprs := make([]jsx.Expr, len(e.Props))
	for i, prop := range e.Props {
		exprs[i] = prop.Value
	}
	values, err := c.compileOrdered(s, exprs)
	if err != nil {
		return nil, err
	}
	t := &luau.Table{}
	for i, prop := range e.Props {
		t.Fields = append(t.Fields, luau.Field{Key: luau.String(prop.Name), Value: values[i]})
	}
	return t, nil
}
