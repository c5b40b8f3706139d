// Package jsx lowers JSX elements to Luau table construction code.
//
// The heart of the package is CompileChildren. For every child it decides
// whether the child can be folded into the inline children table literal or
// whether it needs runtime code because its cardinality or key kind is not
// known statically:
//
//	<frame>{a}{b}</frame>        children a and b are elements
//	Roact.createElement("Frame", {}, {
//		a,
//		b,
//	})
//
//	<frame>{a}{...rest}</frame>  rest is a collection of unknown shape
//	local _children = {
//		a,
//	}
//	local _length = #_children
//	for _k, _v in pairs(rest) do
//		if type(_k) == "number" then
//			_children[_length + _k] = _v
//		else
//			_children[_k] = _v
//		end
//	end
//
// Table pointers move one way, from inline to materialized. Once the
// children table lives in a local, every later child is appended with
// generated statements offset by a length local that is resynchronized
// whenever the number of appended entries is unknown.
//
// Expression compilation and static typing are collaborators supplied
// through ExpressionCompiler and TypeOracle. Statements an expression needs
// before its value is used are emitted with State.Prereq; the walker
// captures them to decide whether a child forces runtime mode.
package jsx
