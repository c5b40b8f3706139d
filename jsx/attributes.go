package jsx

import (
	"strconv"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/luau"
)

// CompileAttributes lowers attrs into tables.Attributes.
//
// The key attribute is skipped; it is read by ResolveKey. The ref
// attribute and the properties of object-valued event and change
// attributes are keyed by the factory's symbols:
//
//	Ref={r}                  [Roact.Ref] = r
//	Event={{Activated: f}}   [Roact.Event.Activated] = f
//
// An attribute value with prerequisites, or a spread, materializes the
// attributes table so earlier attributes are still evaluated first.
func CompileAttributes(s *State, attrs []AttributeLike, tables *Tables) error {
	for i, a := range attrs {
		var err error
		switch a := a.(type) {
		case *Attribute:
			err = compileAttribute(s, a, tables.Attributes)
		case *SpreadAttribute:
			err = compileSpreadAttribute(s, a, tables.Attributes)
		default:
			err = errors.New(errors.PhaseCompile, errors.KindInvariant).
				Path("attributes", strconv.Itoa(i)).
				Value(a).
				Detail("unknown attribute node %T", a).
				Build()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func compileAttribute(s *State, a *Attribute, p *Pointer) error {
	opts := s.opts
	if a.Name == opts.KeyAttribute {
		return nil
	}
	if a.Value == nil {
		p.Assign(s, luau.String(a.Name), luau.Bool(true))
		return nil
	}

	if a.Name == opts.EventAttribute || a.Name == opts.ChangeAttribute {
		if obj, ok := a.Value.(ObjectLiteral); ok {
			group := luau.Property(luau.ID(opts.Factory), a.Name)
			for _, prop := range obj.Properties() {
				value, err := compileAttributeValue(s, prop.Value, p)
				if err != nil {
					return err
				}
				p.Assign(s, luau.Property(group, prop.Name), value)
			}
			return nil
		}
	}

	value, err := compileAttributeValue(s, a.Value, p)
	if err != nil {
		return err
	}
	var key luau.Expression = luau.String(a.Name)
	if a.Name == opts.RefAttribute {
		key = luau.Property(luau.ID(opts.Factory), a.Name)
	}
	p.Assign(s, key, value)
	return nil
}

func compileAttributeValue(s *State, e Expr, p *Pointer) (luau.Expression, error) {
	value, prereqs, err := s.Capture(func() (luau.Expression, error) {
		return s.CompileExpression(e)
	})
	if err != nil {
		return nil, err
	}
	if len(prereqs) > 0 {
		p.Materialize(s)
		s.PrereqList(prereqs)
	}
	return value, nil
}

func compileSpreadAttribute(s *State, a *SpreadAttribute, p *Pointer) error {
	value, prereqs, err := s.Capture(func() (luau.Expression, error) {
		return s.CompileExpression(a.Expr)
	})
	if err != nil {
		return err
	}
	t := p.Materialize(s)
	s.PrereqList(prereqs)
	k := s.TempID("k")
	v := s.TempID("v")
	s.Prereq(luau.ForPairs(k, v, value, addKeyChild(t, k, v)))
	return nil
}
