// Package errors provides structured error types for the jsx-luau compiler.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: tree path, node description, source line and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCompile, errors.KindInvariant).
//		Path("frame", "children", "2").
//		Node("fragment").
//		Detail("fragments cannot appear in a children list").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Invariant(errors.PhaseCompile, "table %q is still inline", name)
//	err := errors.Syntax(12, "expected %v, got %q", want, got)
//
// Invariant errors report broken contracts between compiler stages. User
// problems that do not stop compilation are collected as diagnostics and
// surfaced together through DiagnosticsError.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
