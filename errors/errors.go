package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // source text to JSX tree
	PhaseCompile Phase = "compile" // JSX tree to Luau IR
	PhaseRender  Phase = "render"  // Luau IR to source text
	PhaseConfig  Phase = "config"  // configuration loading
	PhaseLoad    Phase = "load"    // input loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvariant    Kind = "invariant"
	KindUnsupported  Kind = "unsupported"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidData  Kind = "invalid_data"
	KindNotFound     Kind = "not_found"
	KindSyntax       Kind = "syntax"
)

// Error is the structured error type used throughout the compiler
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Node   string
	Detail string
	Path   []string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Line > 0 {
		b.WriteString(" (line ")
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteByte(')')
	}

	if e.Node != "" {
		b.WriteString(": ")
		b.WriteString(e.Node)
	}

	if e.Detail != "" {
		if e.Node != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the tree path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Node sets the description of the offending node
func (b *Builder) Node(n string) *Builder {
	b.err.Node = n
	return b
}

// Line sets the source line
func (b *Builder) Line(line int) *Builder {
	b.err.Line = line
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Invariant creates an internal invariant violation error.
// These signal a broken contract between compiler stages, never user error.
func Invariant(phase Phase, msg string, args ...any) *Error {
	return New(phase, KindInvariant).Detail(msg, args...).Build()
}

// Unsupported creates an unsupported construct error at a source line
func Unsupported(phase Phase, line int, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Line:   line,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Cause:  cause,
	}
}

// Syntax creates a parse error at the given source line
func Syntax(line int, msg string, args ...any) *Error {
	return New(PhaseParse, KindSyntax).Line(line).Detail(msg, args...).Build()
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates an input loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Diagnostic is a single user-facing problem reported during compilation
type Diagnostic struct {
	Kind    string // e.g., "noJsxText"
	Message string
	Line    int
	Col     int
}

// DiagnosticsError is returned when compilation finished but reported diagnostics
type DiagnosticsError struct {
	Diagnostics []Diagnostic
}

// NewDiagnosticsError creates an error from a list of diagnostics
func NewDiagnosticsError(diags []Diagnostic) *DiagnosticsError {
	return &DiagnosticsError{Diagnostics: diags}
}

func (e *DiagnosticsError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "[compile] diagnostics: none reported"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d diagnostic(s):\n", len(e.Diagnostics)))

	// Group by kind for cleaner output
	byKind := make(map[string][]Diagnostic)
	var kindOrder []string
	for _, d := range e.Diagnostics {
		if _, exists := byKind[d.Kind]; !exists {
			kindOrder = append(kindOrder, d.Kind)
		}
		byKind[d.Kind] = append(byKind[d.Kind], d)
	}

	for _, kind := range kindOrder {
		b.WriteString("\n  ")
		b.WriteString(kind)
		b.WriteString(":\n")
		for _, d := range byKind[kind] {
			b.WriteString("    - ")
			if d.Line > 0 {
				b.WriteString(fmt.Sprintf("%d:%d: ", d.Line, d.Col))
			}
			b.WriteString(d.Message)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *DiagnosticsError) Is(target error) bool {
	_, ok := target.(*DiagnosticsError)
	return ok
}
