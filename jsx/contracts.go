package jsx

import (
	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/luau"
)

// TypeClass is the static shape of an expression as far as children
// lowering is concerned.
type TypeClass uint8

const (
	TypeUnknown TypeClass = iota
	TypeElement
	TypeArray
	TypeMap
)

func (c TypeClass) String() string {
	switch c {
	case TypeElement:
		return "element"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	}
	return "unknown"
}

// ParseTypeClass is the inverse of TypeClass.String.
func ParseTypeClass(s string) (TypeClass, bool) {
	switch s {
	case "element":
		return TypeElement, true
	case "array":
		return TypeArray, true
	case "map":
		return TypeMap, true
	case "unknown":
		return TypeUnknown, true
	}
	return TypeUnknown, false
}

// TypeOracle classifies source expressions by their static type.
// It must be deterministic for a given expression.
type TypeOracle interface {
	ClassifyType(e Expr) TypeClass
}

// TypeOracleFunc adapts a function to TypeOracle.
type TypeOracleFunc func(e Expr) TypeClass

func (f TypeOracleFunc) ClassifyType(e Expr) TypeClass { return f(e) }

// ExpressionCompiler lowers source expressions.
//
// Statements that must run before the returned value is used are emitted
// with State.Prereq, in evaluation order. Callers that need to know whether
// an expression had such prerequisites wrap the call in State.Capture.
type ExpressionCompiler interface {
	CompileExpression(s *State, e Expr) (luau.Expression, error)
}

// DiagnosticKind identifies a user-facing diagnostic.
type DiagnosticKind string

const (
	DiagNoJsxText DiagnosticKind = "noJsxText"
)

// Diagnostic is a non-fatal problem found in user input.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Pos     Pos
}

// DiagnosticSink accumulates diagnostics. Report never fails.
type DiagnosticSink interface {
	Report(d Diagnostic)
}

// Diagnostics is a DiagnosticSink collecting into a slice.
type Diagnostics []Diagnostic

func (d *Diagnostics) Report(diag Diagnostic) {
	*d = append(*d, diag)
}

// Err returns nil when nothing was reported, otherwise an
// *errors.DiagnosticsError listing every diagnostic.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	out := make([]errors.Diagnostic, len(d))
	for i, diag := range d {
		out[i] = errors.Diagnostic{
			Kind:    string(diag.Kind),
			Message: diag.Message,
			Line:    diag.Pos.Line,
			Col:     diag.Pos.Col,
		}
	}
	return errors.NewDiagnosticsError(out)
}

func noJsxText(t *Text) Diagnostic {
	return Diagnostic{
		Kind:    DiagNoJsxText,
		Message: "JSX text is not supported",
		Pos:     t.At,
	}
}
