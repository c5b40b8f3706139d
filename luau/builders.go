package luau

import "strings"

// Globals are the runtime builtins referenced by generated code.
var Globals = struct {
	Pairs *Identifier
	Type  *Identifier
}{
	Pairs: &Identifier{Name: "pairs"},
	Type:  &Identifier{Name: "type"},
}

// ID references a variable or global by name.
func ID(name string) *Identifier {
	return &Identifier{Name: name}
}

// Number builds a numeric literal.
func Number(v float64) *NumberLiteral {
	return &NumberLiteral{Value: v}
}

// String builds a string literal.
func String(s string) *StringLiteral {
	return &StringLiteral{Value: s}
}

// Bool builds true or false.
func Bool(v bool) *BoolLiteral {
	return &BoolLiteral{Value: v}
}

// Nil builds the nil literal.
func Nil() *NilLiteral {
	return &NilLiteral{}
}

// Binary builds `left op right`.
func Binary(left Expression, op string, right Expression) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: op, Right: right}
}

// Not builds `not e`.
func Not(e Expression) *UnaryExpression {
	return &UnaryExpression{Operator: "not", Expression: e}
}

// Len is the length operator `#e`.
func Len(e Expression) *UnaryExpression {
	return &UnaryExpression{Operator: "#", Expression: e}
}

// Call builds `callee(args...)`.
func Call(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Args: args}
}

// Property builds `e.name`.
func Property(e Expression, name string) *PropertyAccess {
	return &PropertyAccess{Expression: e, Name: name}
}

// Index builds `e[index]`.
func Index(e, index Expression) *ComputedIndex {
	return &ComputedIndex{Expression: e, Index: index}
}

// QualifiedName turns "a.b.c" into nested property accesses on identifier a.
func QualifiedName(name string) Expression {
	parts := strings.Split(name, ".")
	var e Expression = ID(parts[0])
	for _, p := range parts[1:] {
		e = Property(e, p)
	}
	return e
}

// Assign builds `left = right`.
func Assign(left, right Expression) *Assignment {
	return &Assignment{Left: left, Operator: "=", Right: right}
}

// CompoundAssign builds `left op right` for operators such as "+=".
func CompoundAssign(left Expression, op string, right Expression) *Assignment {
	return &Assignment{Left: left, Operator: op, Right: right}
}

// Declare builds `local left = right`. A nil right declares without a value.
func Declare(left AnyIdentifier, right Expression) *VariableDeclaration {
	return &VariableDeclaration{Left: left, Right: right}
}

// ForPairs builds `for k, v in pairs(e) do body end`.
func ForPairs(k, v AnyIdentifier, e Expression, body ...Statement) *ForIn {
	return &ForIn{
		IDs:        []AnyIdentifier{k, v},
		Expression: Call(Globals.Pairs, e),
		Body:       body,
	}
}

// IfThen builds an if statement. An els holding a single If prints as elseif.
func IfThen(cond Expression, then []Statement, els []Statement) *If {
	return &If{Condition: cond, Then: then, Else: els}
}

// Return builds `return values...`.
func Return(values ...Expression) *ReturnStatement {
	return &ReturnStatement{Values: values}
}
