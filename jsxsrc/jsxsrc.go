package jsxsrc

import (
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/ast"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/parser"
	"github.com/wippyai/jsx-luau/jsxsrc/internal/token"
)

// Declaration is a (declare NAME TYPE) form.
type Declaration struct {
	Name  string
	Class jsx.TypeClass
	Pos   jsx.Pos
}

// Document is a parsed source file.
type Document struct {
	Declarations []Declaration
	Roots        []*jsx.Element
}

// Parse parses a source file.
func Parse(source string) (*Document, error) {
	parsed, err := parser.New(token.Tokenize(source)).Parse()
	if err != nil {
		return nil, err
	}
	doc := &Document{Roots: parsed.Roots}
	for _, d := range parsed.Declarations {
		doc.Declarations = append(doc.Declarations, Declaration{Name: d.Name, Class: d.Class, Pos: d.At})
	}
	return doc, nil
}

// ParseElement parses a single element with nothing after it.
func ParseElement(source string) (*jsx.Element, error) {
	return parser.New(token.Tokenize(source)).ParseElement()
}

// Types maps every declared name to its class.
func (d *Document) Types() map[string]jsx.TypeClass {
	types := make(map[string]jsx.TypeClass, len(d.Declarations))
	for _, decl := range d.Declarations {
		types[decl.Name] = decl.Class
	}
	return types
}

// Oracle returns a TypeOracle answering from the document's declarations.
func (d *Document) Oracle() jsx.TypeOracle {
	return NewOracle(d.Types())
}

var _ jsx.StringLiteral = (*ast.String)(nil)
var _ jsx.ObjectLiteral = (*ast.Object)(nil)
