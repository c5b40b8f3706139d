package jsxsrc

import (
	"strings"
	"testing"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/luau"
)

// compileRoot lowers the first root of src and prints it as a chunk.
func compileRoot(t *testing.T, src string) (string, jsx.Diagnostics) {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var diags jsx.Diagnostics
	s := jsx.NewState(jsx.Config{
		Compiler:    NewCompiler(),
		Oracle:      doc.Oracle(),
		Diagnostics: &diags,
		Options:     jsx.DefaultOptions(),
	})
	value, err := jsx.CompileElement(s, doc.Roots[0])
	if err != nil {
		t.Fatalf("CompileElement: %v", err)
	}
	return luau.Print(append(s.Statements(), luau.Return(value))), diags
}

func code(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestCompiler_Expressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "literals",
			src:  `(frame (attr A 1.5) (attr B "s") (attr C false) (attr D nil) (attr E props.value))`,
			want: code(
				`return Roact.createElement("Frame", {`,
				`	A = 1.5,`,
				`	B = "s",`,
				`	C = false,`,
				`	D = nil,`,
				`	E = props.value,`,
				`})`,
			),
		},
		{
			name: "plain logical operators",
			src:  `(frame (attr Visible (and shown (or a b))))`,
			want: code(
				`return Roact.createElement("Frame", {`,
				`	Visible = shown and (a or b),`,
				`})`,
			),
		},
		{
			name: "coalesce",
			src:  `(frame (attr Text (coalesce label "none")))`,
			want: code(
				`local _attributes = {}`,
				`local _value = label`,
				`if _value == nil then`,
				`	_value = "none"`,
				`end`,
				`_attributes["Text"] = _value`,
				`return Roact.createElement("Frame", _attributes)`,
			),
		},
		{
			name: "or with prerequisites on the right",
			src:  `(frame (attr Text (or label (inc count))))`,
			want: code(
				`local _attributes = {}`,
				`local _value = label`,
				`if not _value then`,
				`	count += 1`,
				`	_value = count`,
				`end`,
				`_attributes["Text"] = _value`,
				`return Roact.createElement("Frame", _attributes)`,
			),
		},
		{
			name: "and with prerequisites on the right",
			src:  `(frame (attr Text (and ready (inc count))))`,
			want: code(
				`local _attributes = {}`,
				`local _value = ready`,
				`if _value then`,
				`	count += 1`,
				`	_value = count`,
				`end`,
				`_attributes["Text"] = _value`,
				`return Roact.createElement("Frame", _attributes)`,
			),
		},
		{
			name: "call arguments keep evaluation order",
			src:  `(frame (attr Text (call format count (inc count))))`,
			want: code(
				`local _attributes = {}`,
				`local _arg = format`,
				`local _arg_1 = count`,
				`count += 1`,
				`_attributes["Text"] = _arg(_arg_1, count)`,
				`return Roact.createElement("Frame", _attributes)`,
			),
		},
		{
			name: "object literal attribute",
			src:  `(frame (attr Style (object (prop Color red) (prop Size 2))))`,
			want: code(
				`return Roact.createElement("Frame", {`,
				`	Style = {`,
				`		Color = red,`,
				`		Size = 2,`,
				`	},`,
				`})`,
			),
		},
		{
			name: "event handlers",
			src:  `(textbutton (attr Event (object (prop Activated onClick))))`,
			want: code(
				`return Roact.createElement("TextButton", {`,
				`	[Roact.Event.Activated] = onClick,`,
				`})`,
			),
		},
		{
			name: "jsx expression child",
			src:  `(frame (expr (jsx (textlabel (attr Text "a")))))`,
			want: code(
				`return Roact.createElement("Frame", {}, {`,
				`	Roact.createElement("TextLabel", {`,
				`		Text = "a",`,
				`	}),`,
				`})`,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := compileRoot(t, tt.src)
			if got != tt.want {
				t.Errorf("generated code mismatch\n--- got ---\n%s--- want ---\n%s", got, tt.want)
			}
		})
	}
}

func TestCompiler_Children(t *testing.T) {
	src := `
		(declare header element)
		(declare rows array)
		(declare slots map)
		(declare extra unknown)
		(frame
			(expr header)
			(expr rows)
			(textlabel (attr Key "footer"))
			(expr slots)
			(expr extra))`
	want := code(
		`local _children = {`,
		`	header,`,
		`}`,
		`local _length = #_children`,
		`for _k, _v in pairs(rows) do`,
		`	_children[_length + _k] = _v`,
		`end`,
		`_length = #_children`,
		`_children["footer"] = Roact.createElement("TextLabel")`,
		`for _k_1, _v_1 in pairs(slots) do`,
		`	if type(_k_1) == "number" then`,
		`		_children[_length + _k_1] = _v_1`,
		`	else`,
		`		_children[_k_1] = _v_1`,
		`	end`,
		`end`,
		`_length = #_children`,
		`if type(extra) == "table" then`,
		`	if extra.props ~= nil and extra.component ~= nil then`,
		`		_children[_length + 1] = extra`,
		`	else`,
		`		for _k_2, _v_2 in pairs(extra) do`,
		`			if type(_k_2) == "number" then`,
		`				_children[_length + _k_2] = _v_2`,
		`			else`,
		`				_children[_k_2] = _v_2`,
		`			end`,
		`		end`,
		`	end`,
		`end`,
		`return Roact.createElement("Frame", {}, _children)`,
	)
	got, diags := compileRoot(t, src)
	if got != want {
		t.Errorf("generated code mismatch\n--- got ---\n%s--- want ---\n%s", got, want)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
}

func TestCompiler_TextDiagnostic(t *testing.T) {
	got, diags := compileRoot(t, "(frame\n  \"Hello\"\n  (text \"   \"))")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Pos != (jsx.Pos{Line: 2, Col: 3}) {
		t.Errorf("diagnostic at %v", diags[0].Pos)
	}
	if got != code(`return Roact.createElement("Frame")`) {
		t.Errorf("unexpected code %q", got)
	}
}

func TestOracle(t *testing.T) {
	doc, err := Parse(`
		(declare items array)
		(declare other array)
		(declare head element)
		(declare makeRows array)
		(frame
			(expr items)
			(expr (call makeRows 3))
			(expr (jsx (frame)))
			(expr (or items other))
			(expr (coalesce items head))
			(expr (and head head))
			(expr missing)
			(expr (call (or a b))))`)
	if err != nil {
		t.Fatal(err)
	}
	want := []jsx.TypeClass{
		jsx.TypeArray,
		jsx.TypeArray,
		jsx.TypeElement,
		jsx.TypeArray,
		jsx.TypeUnknown,
		jsx.TypeUnknown,
		jsx.TypeUnknown,
		jsx.TypeUnknown,
	}
	oracle := doc.Oracle()
	for i, c := range doc.Roots[0].Children {
		got := oracle.ClassifyType(c.(*jsx.ExpressionChild).Expr)
		if got != want[i] {
			t.Errorf("child %d classified %v, want %v", i, got, want[i])
		}
	}
	if types := doc.Types(); len(types) != 4 || types["head"] != jsx.TypeElement {
		t.Errorf("Types() = %v", types)
	}
}

type foreignExpr struct{}

func (foreignExpr) Pos() jsx.Pos { return jsx.Pos{Line: 4, Col: 2} }

func TestCompiler_UnsupportedExpression(t *testing.T) {
	s := jsx.NewState(jsx.Config{Compiler: NewCompiler(), Options: jsx.DefaultOptions()})
	_, err := NewCompiler().CompileExpression(s, foreignExpr{})
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Kind != errors.KindUnsupported || e.Line != 4 {
		t.Errorf("got %s at line %d", e.Kind, e.Line)
	}
	if !strings.Contains(e.Error(), "foreignExpr") {
		t.Errorf("error %q does not name the expression type", e.Error())
	}
}

func TestParseElement(t *testing.T) {
	el, err := ParseElement(`(frame (expr a))`)
	if err != nil {
		t.Fatal(err)
	}
	if el.Tag != "frame" || len(el.Children) != 1 {
		t.Errorf("unexpected element %+v", el)
	}
	if _, err := ParseElement(`(frame`); err == nil {
		t.Error("expected error for unclosed element")
	}
}
