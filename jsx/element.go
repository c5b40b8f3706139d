package jsx

import (
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/luau"
)

// CompileElement lowers el to a factory call:
//
//	Roact.createElement(tag)
//	Roact.createElement(tag, attributes)
//	Roact.createElement(tag, attributes, children)
//
// Trailing empty inline tables are omitted. Statements the element needs
// are emitted as prerequisites on s.
func CompileElement(s *State, el *Element) (luau.Expression, error) {
	tag, err := compileTag(s.opts, el)
	if err != nil {
		return nil, err
	}
	tables := NewTables()
	if err := CompileAttributes(s, el.Attributes, tables); err != nil {
		return nil, err
	}
	if err := CompileChildren(s, el.Children, tables); err != nil {
		return nil, err
	}

	args := []luau.Expression{tag}
	withChildren := !tables.Children.IsEmpty()
	if withChildren || !tables.Attributes.IsEmpty() {
		args = append(args, tables.Attributes.Expression())
	}
	if withChildren {
		args = append(args, tables.Children.Expression())
	}
	factory := luau.Property(luau.ID(s.opts.Factory), s.opts.CreateElement)
	return luau.Call(factory, args...), nil
}

// compileTag resolves lowercase tags to intrinsic class names and
// everything else to a component reference.
func compileTag(opts Options, el *Element) (luau.Expression, error) {
	first, _ := utf8.DecodeRuneInString(el.Tag)
	if el.Tag == "" || first == utf8.RuneError {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvariant).
			Node("element").
			Line(el.At.Line).
			Detail("element without a tag").
			Build()
	}
	if unicode.IsLower(first) {
		return luau.String(opts.intrinsicName(el.Tag)), nil
	}
	return luau.QualifiedName(el.Tag), nil
}
