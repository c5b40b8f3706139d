package luau

// Node represents a node in the Luau syntax tree.
type Node interface {
	node()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expression()
}

// Statement is a node that can appear in a statement list.
type Statement interface {
	Node
	statement()
}

// AnyIdentifier is an Identifier or a TemporaryIdentifier.
type AnyIdentifier interface {
	Expression
	identifier()
}

// Identifier is a named reference written as-is.
type Identifier struct {
	Name string
}

// TemporaryIdentifier is a compiler-generated local. Its printed name is
// derived from Hint at print time; ID orders allocation within one
// compilation.
type TemporaryIdentifier struct {
	Hint string
	ID   int
}

// NumberLiteral is a numeric constant.
type NumberLiteral struct {
	Value float64
}

// StringLiteral is a string constant, quoted and escaped by the printer.
type StringLiteral struct {
	Value string
}

// BoolLiteral is true or false.
type BoolLiteral struct {
	Value bool
}

// NilLiteral is nil.
type NilLiteral struct{}

// BinaryExpression is `left operator right`. The printer adds parentheses
// from operator precedence.
type BinaryExpression struct {
	Left     Expression
	Right    Expression
	Operator string
}

// UnaryExpression is `not e`, `#e` or `-e`.
type UnaryExpression struct {
	Expression Expression
	Operator   string
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Callee Expression
	Args   []Expression
}

// PropertyAccess is `expression.name`.
type PropertyAccess struct {
	Expression Expression
	Name       string
}

// ComputedIndex is `expression[index]`.
type ComputedIndex struct {
	Expression Expression
	Index      Expression
}

// Field is one table constructor entry. A nil Key is a positional entry.
type Field struct {
	Key   Expression
	Value Expression
}

// Table is a table constructor holding positional and keyed fields.
type Table struct {
	Fields []Field
}

// KindTest tests the runtime kind of Value: `type(value) == "kind"`.
type KindTest struct {
	Value Expression
	Kind  Kind
}

// VariableDeclaration is `local left = right`.
type VariableDeclaration struct {
	Left  AnyIdentifier
	Right Expression // nil declares without a value
}

// Assignment is `left = right` or a compound assignment such as `+=`.
type Assignment struct {
	Left     Expression
	Right    Expression
	Operator string // "=", "+=", ...
}

// ForIn is a generic for loop: `for ids in expression do body end`.
type ForIn struct {
	Expression Expression
	IDs        []AnyIdentifier
	Body       []Statement
}

// If is `if condition then ... else ... end`.
type If struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
}

// ReturnStatement is `return values...`.
type ReturnStatement struct {
	Values []Expression
}

func (*Identifier) node()          {}
func (*TemporaryIdentifier) node() {}
func (*NumberLiteral) node()       {}
func (*StringLiteral) node()       {}
func (*BoolLiteral) node()         {}
func (*NilLiteral) node()          {}
func (*BinaryExpression) node()    {}
func (*UnaryExpression) node()     {}
func (*CallExpression) node()      {}
func (*PropertyAccess) node()      {}
func (*ComputedIndex) node()       {}
func (*Table) node()               {}
func (*KindTest) node()            {}
func (*VariableDeclaration) node() {}
func (*Assignment) node()          {}
func (*ForIn) node()               {}
func (*If) node()                  {}
func (*ReturnStatement) node()     {}

func (*Identifier) expression()          {}
func (*TemporaryIdentifier) expression() {}
func (*NumberLiteral) expression()       {}
func (*StringLiteral) expression()       {}
func (*BoolLiteral) expression()         {}
func (*NilLiteral) expression()          {}
func (*BinaryExpression) expression()    {}
func (*UnaryExpression) expression()     {}
func (*CallExpression) expression()      {}
func (*PropertyAccess) expression()      {}
func (*ComputedIndex) expression()       {}
func (*Table) expression()               {}
func (*KindTest) expression()            {}

func (*Identifier) identifier()          {}
func (*TemporaryIdentifier) identifier() {}

func (*VariableDeclaration) statement() {}
func (*Assignment) statement()          {}
func (*ForIn) statement()               {}
func (*If) statement()                  {}
func (*ReturnStatement) statement()     {}
