package jsxluau

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc"
	"github.com/wippyai/jsx-luau/luau"
)

// Options configures a compilation.
type Options struct {
	Logger *zap.Logger // nil uses jsx.Logger()
	Indent string      // printer indent, empty for a tab
	JSX    jsx.Options
}

// DefaultOptions returns Roact conventions with tab indentation.
func DefaultOptions() Options {
	return Options{JSX: jsx.DefaultOptions()}
}

// Unit is one compiled root element.
type Unit struct {
	Value      luau.Expression
	Name       string // tag:line
	Code       string // statements followed by `return <value>`
	Statements []luau.Statement
}

// Result holds every compiled unit and the diagnostics reported on the way.
type Result struct {
	Units       []Unit
	Diagnostics jsx.Diagnostics
}

// Err returns the diagnostics as an error, or nil when there are none.
func (r *Result) Err() error {
	return r.Diagnostics.Err()
}

// Compile parses source and compiles every root element.
func Compile(source string, opts Options) (*Result, error) {
	doc, err := jsxsrc.Parse(source)
	if err != nil {
		return nil, err
	}
	return CompileDocument(doc, opts)
}

// CompileDocument compiles every root element of doc. Each root gets its
// own compilation state.
func CompileDocument(doc *jsxsrc.Document, opts Options) (*Result, error) {
	if err := opts.JSX.Validate(); err != nil {
		return nil, err
	}
	res := &Result{}
	oracle := doc.Oracle()
	for _, el := range doc.Roots {
		unit, err := compileUnit(el, oracle, &res.Diagnostics, opts)
		if err != nil {
			return nil, err
		}
		res.Units = append(res.Units, unit)
	}
	return res, nil
}

// CompileElement compiles a single element with the given type oracle.
func CompileElement(el *jsx.Element, oracle jsx.TypeOracle, opts Options) (Unit, jsx.Diagnostics, error) {
	if err := opts.JSX.Validate(); err != nil {
		return Unit{}, nil, err
	}
	var diags jsx.Diagnostics
	unit, err := compileUnit(el, oracle, &diags, opts)
	return unit, diags, err
}

func compileUnit(el *jsx.Element, oracle jsx.TypeOracle, sink jsx.DiagnosticSink, opts Options) (Unit, error) {
	log := opts.Logger
	if log == nil {
		log = jsx.Logger()
	}
	name := el.Tag + ":" + strconv.Itoa(el.At.Line)

	s := jsx.NewState(jsx.Config{
		Compiler:    jsxsrc.NewCompiler(),
		Oracle:      oracle,
		Diagnostics: sink,
		Logger:      log.With(zap.String("unit", name)),
		Options:     opts.JSX,
	})
	value, err := jsx.CompileElement(s, el)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Path = append([]string{name}, e.Path...)
		}
		return Unit{}, err
	}

	stmts := s.Statements()
	p := luau.NewPrinter(opts.Indent)
	p.Statements(append(append([]luau.Statement{}, stmts...), luau.Return(value)))

	log.Debug("compiled unit",
		zap.String("unit", name),
		zap.Int("statements", len(stmts)),
	)
	return Unit{
		Name:       name,
		Code:       p.String(),
		Statements: stmts,
		Value:      value,
	}, nil
}
