package jsxsrc

import (
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/ast"
)

// Oracle classifies expressions from declared names.
type Oracle struct {
	types map[string]jsx.TypeClass
}

// NewOracle returns an oracle over types. Undeclared names are unknown.
func NewOracle(types map[string]jsx.TypeClass) *Oracle {
	return &Oracle{types: types}
}

func (o *Oracle) ClassifyType(e jsx.Expr) jsx.TypeClass {
	switch e := e.(type) {
	case *ast.Ident:
		return o.types[e.Name]
	case *ast.Call:
		// a declared name used as a function yields its declared class
		if callee, ok := e.Callee.(*ast.Ident); ok {
			return o.types[callee.Name]
		}
	case *ast.JSX:
		return jsx.TypeElement
	case *ast.Logical:
		if e.Op == ast.OpAnd {
			return jsx.TypeUnknown
		}
		if left := o.ClassifyType(e.Left); left == o.ClassifyType(e.Right) {
			return left
		}
	}
	return jsx.TypeUnknown
}
