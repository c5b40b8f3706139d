package jsx

import (
	"go.uber.org/zap"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/luau"
)

// Config wires the collaborators of one compilation.
type Config struct {
	Compiler    ExpressionCompiler
	Oracle      TypeOracle
	Diagnostics DiagnosticSink
	Logger      *zap.Logger // nil uses Logger()
	Options     Options
}

// State is the context of one compilation unit.
//
// It owns the temporary identifier counter and the stack of prerequisite
// statement lists. Nested element lowering shares the State of the
// enclosing unit so temporaries never collide. A State is not safe for
// concurrent use.
type State struct {
	compiler ExpressionCompiler
	oracle   TypeOracle
	diags    DiagnosticSink
	log      *zap.Logger
	temps    luau.Temps
	prereqs  [][]luau.Statement
	opts     Options
}

// NewState creates a compilation context. Missing collaborators fall back
// to an oracle that knows nothing and a sink that discards.
func NewState(cfg Config) *State {
	s := &State{
		compiler: cfg.Compiler,
		oracle:   cfg.Oracle,
		diags:    cfg.Diagnostics,
		log:      cfg.Logger,
		opts:     cfg.Options,
		prereqs:  [][]luau.Statement{nil},
	}
	if s.oracle == nil {
		s.oracle = TypeOracleFunc(func(Expr) TypeClass { return TypeUnknown })
	}
	if s.diags == nil {
		s.diags = &Diagnostics{}
	}
	if s.log == nil {
		s.log = Logger()
	}
	return s
}

// Prereq appends a statement to the innermost prerequisite list.
func (s *State) Prereq(stmt luau.Statement) {
	top := len(s.prereqs) - 1
	s.prereqs[top] = append(s.prereqs[top], stmt)
}

// PrereqList appends statements in order.
func (s *State) PrereqList(stmts []luau.Statement) {
	for _, stmt := range stmts {
		s.Prereq(stmt)
	}
}

// Capture runs fn with a fresh prerequisite list and returns fn's value
// together with the statements it emitted. The statements are not
// forwarded; the caller decides where they go.
func (s *State) Capture(fn func() (luau.Expression, error)) (luau.Expression, []luau.Statement, error) {
	s.prereqs = append(s.prereqs, nil)
	value, err := fn()
	top := len(s.prereqs) - 1
	captured := s.prereqs[top]
	s.prereqs = s.prereqs[:top]
	return value, captured, err
}

// Statements returns the top-level statements emitted so far.
func (s *State) Statements() []luau.Statement {
	return s.prereqs[0]
}

// TempID allocates a temporary identifier.
func (s *State) TempID(hint string) *luau.TemporaryIdentifier {
	return s.temps.New(hint)
}

// PushToVar binds e to a fresh local and returns it.
func (s *State) PushToVar(e luau.Expression, hint string) *luau.TemporaryIdentifier {
	id := s.TempID(hint)
	s.Prereq(luau.Declare(id, e))
	return id
}

// PushToVarIfNonID returns e when it is already a bare identifier,
// otherwise binds it to a fresh local.
func (s *State) PushToVarIfNonID(e luau.Expression, hint string) luau.AnyIdentifier {
	if id, ok := e.(luau.AnyIdentifier); ok {
		return id
	}
	return s.PushToVar(e, hint)
}

// CompileExpression lowers e through the configured ExpressionCompiler.
func (s *State) CompileExpression(e Expr) (luau.Expression, error) {
	if s.compiler == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvariant).
			Line(e.Pos().Line).
			Detail("no expression compiler configured").
			Build()
	}
	return s.compiler.CompileExpression(s, e)
}

// ClassifyType asks the TypeOracle for the static shape of e.
func (s *State) ClassifyType(e Expr) TypeClass {
	return s.oracle.ClassifyType(e)
}

// Report forwards a diagnostic to the sink.
func (s *State) Report(d Diagnostic) {
	s.log.Debug("diagnostic",
		zap.String("kind", string(d.Kind)),
		zap.Stringer("pos", d.Pos),
	)
	s.diags.Report(d)
}

// Logger returns the logger of this compilation, for expression compilers
// that log their own decisions.
func (s *State) Logger() *zap.Logger {
	return s.log
}
