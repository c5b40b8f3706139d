package jsx

import (
	"go.uber.org/zap"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/luau"
)

// Table is the compile-time representation of a table under construction:
// either *InlineTable or *MaterializedTable.
type Table interface {
	table()
}

// InlineTable is still a table constructor owned by the compiler; fields
// are appended without generating code.
type InlineTable struct {
	Fields []luau.Field
}

// MaterializedTable lives in a runtime local. Every further mutation is a
// generated statement.
type MaterializedTable struct {
	Binding *luau.TemporaryIdentifier
}

func (*InlineTable) table()       {}
func (*MaterializedTable) table() {}

// materialize is the only transition between the two representations.
// It never goes back to inline.
func materialize(s *State, t Table, hint string) *MaterializedTable {
	switch t := t.(type) {
	case *MaterializedTable:
		return t
	case *InlineTable:
		id := s.PushToVar(&luau.Table{Fields: t.Fields}, hint)
		s.log.Debug("materialize table",
			zap.String("table", hint),
			zap.Int("fields", len(t.Fields)),
		)
		return &MaterializedTable{Binding: id}
	}
	panic("jsx: unknown table representation")
}

// Pointer tracks one table being built for an element.
type Pointer struct {
	Table Table
	Name  string
}

// NewPointer returns an empty inline table pointer. Name is the hint for
// the runtime local created on materialization.
func NewPointer(name string) *Pointer {
	return &Pointer{Name: name, Table: &InlineTable{}}
}

// IsInline reports whether the table is still a compile-time constructor.
func (p *Pointer) IsInline() bool {
	_, ok := p.Table.(*InlineTable)
	return ok
}

// IsEmpty reports whether the table is inline without fields.
func (p *Pointer) IsEmpty() bool {
	t, ok := p.Table.(*InlineTable)
	return ok && len(t.Fields) == 0
}

// Expression is the value to pass on: the constructor or the local.
func (p *Pointer) Expression() luau.Expression {
	switch t := p.Table.(type) {
	case *InlineTable:
		return &luau.Table{Fields: t.Fields}
	case *MaterializedTable:
		return t.Binding
	}
	return nil
}

// Binding returns the runtime local of a materialized table. Asking for
// the binding of an inline table is an invariant violation.
func (p *Pointer) Binding() (*luau.TemporaryIdentifier, error) {
	if t, ok := p.Table.(*MaterializedTable); ok {
		return t.Binding, nil
	}
	err := errors.Invariant(errors.PhaseCompile, "runtime mutation of table %q while it is still inline", p.Name)
	err.Path = []string{p.Name}
	return nil, err
}

// Materialize moves the table to a runtime local, emitting
// `local _<name> = {...}`. It is a no-op once materialized.
func (p *Pointer) Materialize(s *State) *luau.TemporaryIdentifier {
	m := materialize(s, p.Table, p.Name)
	p.Table = m
	return m.Binding
}

// Push appends a positional field to an inline table.
func (p *Pointer) Push(value luau.Expression) error {
	t, ok := p.Table.(*InlineTable)
	if !ok {
		err := errors.Invariant(errors.PhaseCompile, "positional push to materialized table %q", p.Name)
		err.Path = []string{p.Name}
		return err
	}
	t.Fields = append(t.Fields, luau.Field{Value: value})
	return nil
}

// Assign sets key to value: a keyed field while inline, a generated
// `T[key] = value` afterwards.
func (p *Pointer) Assign(s *State, key, value luau.Expression) {
	switch t := p.Table.(type) {
	case *InlineTable:
		t.Fields = append(t.Fields, luau.Field{Key: key, Value: value})
	case *MaterializedTable:
		s.Prereq(addKeyChild(t.Binding, key, value))
	}
}

// Tables holds the two tables built for one element.
type Tables struct {
	Attributes *Pointer
	Children   *Pointer
}

// NewTables returns inline attribute and children tables.
func NewTables() *Tables {
	return &Tables{
		Attributes: NewPointer("attributes"),
		Children:   NewPointer("children"),
	}
}

// MaterializeChildren materializes the children table. A non-empty inline
// attributes table is materialized first so attribute values are still
// evaluated before any child.
func (t *Tables) MaterializeChildren(s *State) *luau.TemporaryIdentifier {
	if t.Children.IsInline() && t.Attributes.IsInline() && !t.Attributes.IsEmpty() {
		t.Attributes.Materialize(s)
	}
	return t.Children.Materialize(s)
}
