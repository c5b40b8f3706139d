// Package luau provides the target syntax tree for JSX lowering.
//
// The tree is a small subset of Luau: identifiers and compiler temporaries,
// literals, operators, calls, property and computed indexing, table
// constructors, and the statements needed to mutate tables at runtime
// (local declarations, assignments, generic for loops, if/else, return).
//
// # Runtime kind tests
//
// KindTest is the one node used for runtime type checks. It prints as
//
//	type(value) == "table"
//
// so every code path that needs to recover erased type information shares
// the same abstraction instead of assembling call/compare nodes by hand.
//
// # Temporaries
//
// Temps hands out TemporaryIdentifier values for one compilation. The
// Printer names them from their hint when it first meets them:
//
//	local _children = {}
//	local _length = #_children
//	for _k, _v in pairs(items) do
//		_children[_length + _k] = _v
//	end
package luau
