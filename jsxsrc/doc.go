// Package jsxsrc is a small s-expression front end for JSX lowering.
//
// It supplies the collaborators the jsx package consumes: a parser
// producing jsx elements, a reference ExpressionCompiler and a TypeOracle
// driven by declarations.
//
// Basic usage:
//
//	doc, err := jsxsrc.Parse(`
//		(declare items array)
//		(frame
//			(attr Size (call UDim2.fromScale 1 1))
//			(textlabel (attr Text "title"))
//			(expr items))
//	`)
//
// Grammar:
//
//	document := form*
//	form     := (declare NAME TYPE) | element
//	element  := (TAG item*)
//	item     := STRING | (text STRING) | (expr [expr]) | (spread expr)
//	          | (attr NAME [expr]) | (attrs expr) | (fragment item*) | element
//	expr     := IDENT | NUMBER | STRING | true | false | nil
//	          | (call expr expr*) | (and expr expr) | (or expr expr)
//	          | (coalesce expr expr) | (inc IDENT)
//	          | (object (prop NAME expr)*) | (jsx element)
//	TYPE     := element | array | map | unknown
//
// Identifiers may be dotted (props.items). Comments start with ";;".
// The item heads text, expr, spread, attr, attrs and fragment cannot be
// used as tags.
package jsxsrc
