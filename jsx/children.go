package jsx

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/luau"
)

// childrenWalker lowers one children list. It lives for exactly one call
// of CompileChildren.
type childrenWalker struct {
	s      *State
	tables *Tables
	length lengthTracker
}

// CompileChildren lowers children into tables.Children in source order.
//
// While every child is a statically known element without prerequisites
// the children table stays inline. The first child that needs runtime code
// materializes it (and a non-empty inline attributes table before it) and
// every later child is appended with generated statements.
//
// Non-whitespace text is reported through the State's diagnostics sink and
// skipped. Fragments are rejected with an invariant error.
func CompileChildren(s *State, children []Child, tables *Tables) error {
	w := &childrenWalker{s: s, tables: tables}
	for i, child := range children {
		last := i == len(children)-1
		var err error
		switch c := child.(type) {
		case *Text:
			w.text(c)
		case *ExpressionChild:
			err = w.expression(c, last)
		case *Element:
			err = w.element(c)
		case *Fragment:
			err = errors.New(errors.PhaseCompile, errors.KindInvariant).
				Path("children", strconv.Itoa(i)).
				Node("fragment").
				Line(c.At.Line).
				Detail("fragments cannot appear in a children list").
				Build()
		default:
			err = errors.New(errors.PhaseCompile, errors.KindInvariant).
				Path("children", strconv.Itoa(i)).
				Value(child).
				Detail("unknown child node %T", child).
				Build()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *childrenWalker) text(t *Text) {
	if t.OnlyWhitespace() {
		return
	}
	w.s.Report(noJsxText(t))
}

func (w *childrenWalker) expression(c *ExpressionChild, last bool) error {
	if c.Expr == nil {
		return nil
	}
	s := w.s
	value, prereqs, err := s.Capture(func() (luau.Expression, error) {
		return s.CompileExpression(c.Expr)
	})
	if err != nil {
		return err
	}
	if len(prereqs) > 0 {
		w.forceRuntime()
		s.PrereqList(prereqs)
	}

	if c.Spread {
		s.log.Debug("child", zap.Stringer("pos", c.At), zap.String("class", "spread"))
		if err := w.appendCollection(value, addAmbiguousChildren); err != nil {
			return err
		}
	} else {
		class := s.ClassifyType(c.Expr)
		s.log.Debug("child", zap.Stringer("pos", c.At), zap.Stringer("class", class))
		switch class {
		case TypeElement:
			err = w.pushNumeric(value)
		case TypeArray:
			err = w.appendCollection(value, addNumericChildren)
		case TypeMap:
			err = w.appendCollection(value, addAmbiguousChildren)
		default:
			err = w.appendAmbiguous(value)
		}
		if err != nil {
			return err
		}
	}

	if !last && !w.tables.Children.IsInline() {
		t, err := w.runtimeTable()
		if err != nil {
			return err
		}
		w.length.ensureSynced(s, t)
	}
	return nil
}

func (w *childrenWalker) element(el *Element) error {
	s := w.s
	value, prereqs, err := s.Capture(func() (luau.Expression, error) {
		return CompileElement(s, el)
	})
	if err != nil {
		return err
	}
	if len(prereqs) > 0 {
		w.forceRuntime()
		s.PrereqList(prereqs)
	}
	if key, ok := ResolveKey(el, s.opts.KeyAttribute); ok {
		s.log.Debug("child", zap.Stringer("pos", el.At), zap.String("key", key))
		w.tables.Children.Assign(s, luau.String(key), value)
		return nil
	}
	s.log.Debug("child", zap.Stringer("pos", el.At), zap.Stringer("class", TypeElement))
	return w.pushNumeric(value)
}

func (w *childrenWalker) forceRuntime() {
	w.tables.MaterializeChildren(w.s)
}

func (w *childrenWalker) runtimeTable() (*luau.TemporaryIdentifier, error) {
	return w.tables.Children.Binding()
}

// pushNumeric appends one value at the next numeric index.
func (w *childrenWalker) pushNumeric(value luau.Expression) error {
	if w.tables.Children.IsInline() {
		return w.tables.Children.Push(value)
	}
	t, err := w.runtimeTable()
	if err != nil {
		return err
	}
	l := w.length.current(w.s, t)
	offset := w.length.next()
	w.s.Prereq(addNumericChild(t, l, luau.Number(float64(offset)), value))
	return nil
}

type collectionAppender func(s *State, table, length luau.AnyIdentifier, e luau.Expression) luau.Statement

// appendCollection emits a loop appending every entry of value. The number
// of entries is unknown afterwards.
func (w *childrenWalker) appendCollection(value luau.Expression, emit collectionAppender) error {
	w.forceRuntime()
	t, err := w.runtimeTable()
	if err != nil {
		return err
	}
	w.length.ensureSynced(w.s, t)
	w.s.Prereq(emit(w.s, t, w.length.current(w.s, t), value))
	w.length.invalidate()
	return nil
}

// appendAmbiguous emits the runtime shape test for a value of unknown type.
func (w *childrenWalker) appendAmbiguous(value luau.Expression) error {
	w.forceRuntime()
	t, err := w.runtimeTable()
	if err != nil {
		return err
	}
	x := w.s.PushToVarIfNonID(value, "child")
	w.length.ensureSynced(w.s, t)
	l := w.length.current(w.s, t)
	w.s.Prereq(addAmbiguousChild(w.s, t, l, w.length.next(), x))
	w.length.invalidate()
	return nil
}
