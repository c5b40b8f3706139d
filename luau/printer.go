package luau

import (
	"fmt"
	"strconv"
	"strings"
)

var keywords = make(map[string]bool)

func init() {
	for _, k := range strings.Fields(`and break continue do else elseif end false for
		function if in local nil not or repeat return then true until while`) {
		keywords[k] = true
	}
}

// binary operator precedence, higher binds tighter
var precedence = map[string]int{
	"or":  1,
	"and": 2,
	"<":   3,
	">":   3,
	"<=":  3,
	">=":  3,
	"~=":  3,
	"==":  3,
	"..":  4,
	"+":   5,
	"-":   5,
	"*":   6,
	"/":   6,
	"//":  6,
	"%":   6,
	"^":   8,
}

const unaryPrecedence = 7

// Printer renders Luau syntax trees as source text.
//
// Temporary identifiers are named from their hint the first time the
// printer meets them ("_children", "_length", ...). Clashing hints get a
// numeric suffix in first-use order, so the same tree always prints the
// same way. Names of plain identifiers in the printed tree are never
// given to a temporary.
type Printer struct {
	names  map[*TemporaryIdentifier]string
	used   map[string]bool
	indent string
	b      strings.Builder
	depth  int
}

// NewPrinter creates a printer using indent for each nesting level.
// An empty indent selects a tab.
func NewPrinter(indent string) *Printer {
	if indent == "" {
		indent = "\t"
	}
	return &Printer{
		indent: indent,
		names:  make(map[*TemporaryIdentifier]string),
		used:   make(map[string]bool),
	}
}

// Print renders a statement list with default settings.
func Print(stmts []Statement) string {
	p := NewPrinter("")
	p.Statements(stmts)
	return p.String()
}

// PrintExpression renders a single expression with default settings.
func PrintExpression(e Expression) string {
	p := NewPrinter("")
	p.reserve(e)
	return p.Expression(e)
}

// String returns everything written by Statements so far.
func (p *Printer) String() string {
	return p.b.String()
}

// Statements writes each statement on its own line.
func (p *Printer) Statements(stmts []Statement) {
	for _, s := range stmts {
		p.reserve(s)
	}
	p.statements(stmts)
}

func (p *Printer) statements(stmts []Statement) {
	for _, s := range stmts {
		p.statement(s)
	}
}

// reserve marks every plain identifier name under n as taken.
func (p *Printer) reserve(n Node) {
	switch n := n.(type) {
	case *Identifier:
		p.used[n.Name] = true
	case *BinaryExpression:
		p.reserve(n.Left)
		p.reserve(n.Right)
	case *UnaryExpression:
		p.reserve(n.Expression)
	case *CallExpression:
		p.reserve(n.Callee)
		for _, a := range n.Args {
			p.reserve(a)
		}
	case *PropertyAccess:
		p.reserve(n.Expression)
	case *ComputedIndex:
		p.reserve(n.Expression)
		p.reserve(n.Index)
	case *Table:
		for _, f := range n.Fields {
			if f.Key != nil {
				p.reserve(f.Key)
			}
			p.reserve(f.Value)
		}
	case *KindTest:
		p.reserve(n.Value)
	case *VariableDeclaration:
		p.reserve(n.Left)
		if n.Right != nil {
			p.reserve(n.Right)
		}
	case *Assignment:
		p.reserve(n.Left)
		p.reserve(n.Right)
	case *ForIn:
		p.reserve(n.Expression)
		for _, id := range n.IDs {
			p.reserve(id)
		}
		for _, s := range n.Body {
			p.reserve(s)
		}
	case *If:
		p.reserve(n.Condition)
		for _, s := range n.Then {
			p.reserve(s)
		}
		for _, s := range n.Else {
			p.reserve(s)
		}
	case *ReturnStatement:
		for _, v := range n.Values {
			p.reserve(v)
		}
	}
}

func (p *Printer) line(s string) {
	p.b.WriteString(strings.Repeat(p.indent, p.depth))
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *Printer) block(stmts []Statement) {
	p.depth++
	p.statements(stmts)
	p.depth--
}

func (p *Printer) statement(s Statement) {
	switch n := s.(type) {
	case *VariableDeclaration:
		if n.Right == nil {
			p.line("local " + p.Expression(n.Left))
			return
		}
		p.line("local " + p.Expression(n.Left) + " = " + p.Expression(n.Right))
	case *Assignment:
		p.line(p.Expression(n.Left) + " " + n.Operator + " " + p.Expression(n.Right))
	case *ForIn:
		ids := make([]string, len(n.IDs))
		for i, id := range n.IDs {
			ids[i] = p.Expression(id)
		}
		p.line("for " + strings.Join(ids, ", ") + " in " + p.Expression(n.Expression) + " do")
		p.block(n.Body)
		p.line("end")
	case *If:
		p.line("if " + p.Expression(n.Condition) + " then")
		p.block(n.Then)
		els := n.Else
		for len(els) == 1 {
			nested, ok := els[0].(*If)
			if !ok {
				break
			}
			p.line("elseif " + p.Expression(nested.Condition) + " then")
			p.block(nested.Then)
			els = nested.Else
		}
		if len(els) > 0 {
			p.line("else")
			p.block(els)
		}
		p.line("end")
	case *ReturnStatement:
		if len(n.Values) == 0 {
			p.line("return")
			return
		}
		p.line("return " + p.list(n.Values))
	}
}

// Expression renders e at the printer's current nesting depth.
func (p *Printer) Expression(e Expression) string {
	switch n := e.(type) {
	case *Identifier:
		return n.Name
	case *TemporaryIdentifier:
		return p.tempName(n)
	case *NumberLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *StringLiteral:
		return quote(n.Value)
	case *BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *NilLiteral:
		return "nil"
	case *BinaryExpression:
		prec := precedence[n.Operator]
		left := p.operand(n.Left, prec, n.Operator == ".." || n.Operator == "^")
		right := p.operand(n.Right, prec, n.Operator != ".." && n.Operator != "^")
		return left + " " + n.Operator + " " + right
	case *UnaryExpression:
		operand := p.operand(n.Expression, unaryPrecedence, false)
		if n.Operator == "not" {
			return "not " + operand
		}
		// "--" starts a comment
		if n.Operator == "-" && strings.HasPrefix(operand, "-") {
			return "- " + operand
		}
		return n.Operator + operand
	case *CallExpression:
		return p.prefix(n.Callee) + "(" + p.list(n.Args) + ")"
	case *PropertyAccess:
		return p.prefix(n.Expression) + "." + n.Name
	case *ComputedIndex:
		return p.prefix(n.Expression) + "[" + p.Expression(n.Index) + "]"
	case *Table:
		return p.table(n)
	case *KindTest:
		return p.Expression(n.Lower())
	}
	return ""
}

// operand renders a binary or unary operand, parenthesizing it when it binds
// looser than the parent (or equally, on the side that associativity forbids).
func (p *Printer) operand(e Expression, parent int, strictSide bool) string {
	s := p.Expression(e)
	var child int
	switch n := e.(type) {
	case *BinaryExpression:
		child = precedence[n.Operator]
	case *KindTest:
		child = precedence["=="]
	case *UnaryExpression:
		child = unaryPrecedence
	default:
		return s
	}
	if child < parent || (child == parent && strictSide) {
		return "(" + s + ")"
	}
	return s
}

// prefix renders an expression used as call target or index base.
func (p *Printer) prefix(e Expression) string {
	switch e.(type) {
	case *Identifier, *TemporaryIdentifier, *PropertyAccess, *ComputedIndex, *CallExpression:
		return p.Expression(e)
	}
	return "(" + p.Expression(e) + ")"
}

func (p *Printer) list(es []Expression) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = p.Expression(e)
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) table(t *Table) string {
	if len(t.Fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	p.depth++
	pad := strings.Repeat(p.indent, p.depth)
	for _, f := range t.Fields {
		b.WriteString(pad)
		switch k := f.Key.(type) {
		case nil:
		case *StringLiteral:
			if isName(k.Value) {
				b.WriteString(k.Value)
			} else {
				b.WriteString("[" + quote(k.Value) + "]")
			}
			b.WriteString(" = ")
		default:
			b.WriteString("[" + p.Expression(k) + "] = ")
		}
		b.WriteString(p.Expression(f.Value))
		b.WriteString(",\n")
	}
	p.depth--
	b.WriteString(strings.Repeat(p.indent, p.depth))
	b.WriteByte('}')
	return b.String()
}

func (p *Printer) tempName(id *TemporaryIdentifier) string {
	if name, ok := p.names[id]; ok {
		return name
	}
	base := "_" + id.Hint
	if id.Hint == "" {
		base = "_" + strconv.Itoa(id.ID)
	}
	name := base
	for n := 1; p.used[name]; n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	p.used[name] = true
	p.names[id] = name
	return name
}

func isName(s string) bool {
	if s == "" || keywords[s] {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				// always three digits so a following digit ends the escape
				fmt.Fprintf(&b, "\\%03d", c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
