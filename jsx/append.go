package jsx

import (
	"github.com/wippyai/jsx-luau/luau"
)

// addNumericChild is `T[L + key] = value`.
func addNumericChild(table, length luau.AnyIdentifier, key, value luau.Expression) luau.Statement {
	return luau.Assign(luau.Index(table, luau.Binary(length, "+", key)), value)
}

// addKeyChild is `T[key] = value`.
func addKeyChild(table luau.AnyIdentifier, key, value luau.Expression) luau.Statement {
	return luau.Assign(luau.Index(table, key), value)
}

// addNumericChildren appends every entry of an array at the iterated index:
//
//	for _k, _v in pairs(e) do
//		T[L + _k] = _v
//	end
func addNumericChildren(s *State, table, length luau.AnyIdentifier, e luau.Expression) luau.Statement {
	k := s.TempID("k")
	v := s.TempID("v")
	return luau.ForPairs(k, v, e, addNumericChild(table, length, k, v))
}

// addAmbiguousChildren appends a collection whose key kind is only known
// at runtime. Numeric keys are positional, anything else keeps its key:
//
//	for _k, _v in pairs(e) do
//		if type(_k) == "number" then
//			T[L + _k] = _v
//		else
//			T[_k] = _v
//		end
//	end
func addAmbiguousChildren(s *State, table, length luau.AnyIdentifier, e luau.Expression) luau.Statement {
	k := s.TempID("k")
	v := s.TempID("v")
	return luau.ForPairs(k, v, e,
		luau.IfThen(luau.IsKind(k, luau.KindNumber),
			[]luau.Statement{addNumericChild(table, length, k, v)},
			[]luau.Statement{addKeyChild(table, k, v)},
		),
	)
}

// addAmbiguousChild appends a value of unknown type. A table carrying every
// element sentinel is one child at offset; any other table is treated as a
// collection; non-table values add nothing.
//
//	if type(x) == "table" then
//		if x.props ~= nil and x.component ~= nil then
//			T[L + offset] = x
//		else
//			<addAmbiguousChildren over x>
//		end
//	end
//
// x must be a bare identifier because it is read more than once.
func addAmbiguousChild(s *State, table, length luau.AnyIdentifier, offset int, x luau.AnyIdentifier) luau.Statement {
	var isElement luau.Expression
	for _, field := range s.opts.ElementSentinels {
		test := luau.Binary(luau.Property(x, field), "~=", luau.Nil())
		if isElement == nil {
			isElement = test
		} else {
			isElement = luau.Binary(isElement, "and", test)
		}
	}
	single := addNumericChild(table, length, luau.Number(float64(offset)), x)
	if isElement == nil {
		return luau.IfThen(luau.IsKind(x, luau.KindTable), []luau.Statement{single}, nil)
	}
	return luau.IfThen(luau.IsKind(x, luau.KindTable),
		[]luau.Statement{
			luau.IfThen(isElement,
				[]luau.Statement{single},
				[]luau.Statement{addAmbiguousChildren(s, table, length, x)},
			),
		},
		nil,
	)
}
