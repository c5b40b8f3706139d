package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	jsxluau "github.com/wippyai/jsx-luau"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	declStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	doc      *jsxsrc.Document
	filename string
	title    string
	code     string
	units    []jsxluau.Unit
	unitDiag []jsx.Diagnostics
	diags    jsx.Diagnostics
	input    textinput.Model
	opts     jsxluau.Options
	selected int
	loaded   bool
	state    modelState
}

type modelState int

const (
	stateSelectRoot modelState = iota
	stateInputSnippet
	stateShowCode
)

func newInteractiveModel(filename string, doc *jsxsrc.Document, opts jsxluau.Options) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		doc:      doc,
		opts:     opts,
		state:    stateSelectRoot,
	}
}

func runInteractive(filename string, doc *jsxsrc.Document, opts jsxluau.Options) error {
	p := tea.NewProgram(newInteractiveModel(filename, doc, opts))
	_, err := p.Run()
	return err
}

type compiledMsg struct {
	err   error
	units []jsxluau.Unit
	diags []jsx.Diagnostics
}

type snippetMsg struct {
	err   error
	unit  jsxluau.Unit
	diags jsx.Diagnostics
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.compileDocument
}

func (m *interactiveModel) compileDocument() tea.Msg {
	var msg compiledMsg
	oracle := m.doc.Oracle()
	for _, el := range m.doc.Roots {
		unit, diags, err := jsxluau.CompileElement(el, oracle, m.opts)
		if err != nil {
			return compiledMsg{err: err}
		}
		msg.units = append(msg.units, unit)
		msg.diags = append(msg.diags, diags)
	}
	return msg
}

// compileSnippet compiles the input against the document's declarations.
func (m *interactiveModel) compileSnippet() tea.Msg {
	el, err := jsxsrc.ParseElement(m.input.Value())
	if err != nil {
		return snippetMsg{err: err}
	}
	unit, diags, err := jsxluau.CompileElement(el, m.doc.Oracle(), m.opts)
	if err != nil {
		return snippetMsg{err: err}
	}
	return snippetMsg{unit: unit, diags: diags}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateInputSnippet {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				return m, m.compileSnippet
			case "esc":
				m.state = stateSelectRoot
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectRoot && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectRoot && m.selected < len(m.units)-1 {
				m.selected++
			}

		case "e":
			if m.state == stateSelectRoot && m.loaded {
				m.prepareInput()
				m.state = stateInputSnippet
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateSelectRoot:
				if len(m.units) > 0 {
					u := m.units[m.selected]
					m.showCode(u.Name, u.Code, nil, m.unitDiag[m.selected])
				}
			case stateShowCode:
				m.reset()
			}

		case "esc":
			if m.state == stateShowCode {
				m.reset()
			}
		}

	case compiledMsg:
		m.loaded = true
		m.err = msg.err
		m.units = msg.units
		m.unitDiag = msg.diags

	case snippetMsg:
		m.showCode("snippet", msg.unit.Code, msg.err, msg.diags)
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "(frame (expr items))"
	ti.Prompt = "element: "
	ti.Width = 60
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) showCode(title, code string, err error, diags jsx.Diagnostics) {
	m.title = title
	m.code = code
	m.err = err
	m.diags = diags
	m.state = stateShowCode
}

func (m *interactiveModel) reset() {
	m.state = stateSelectRoot
	m.title = ""
	m.code = ""
	m.err = nil
	m.diags = nil
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowCode {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded {
		return "Compiling..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("JSX to Luau"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectRoot:
		if len(m.doc.Declarations) > 0 {
			var decls []string
			for _, d := range m.doc.Declarations {
				decls = append(decls, d.Name+": "+declStyle.Render(d.Class.String()))
			}
			b.WriteString("Declared: " + strings.Join(decls, ", ") + "\n\n")
		}
		if len(m.units) == 0 {
			b.WriteString("No root elements.\n")
		} else {
			b.WriteString("Select an element:\n\n")
		}
		for i, u := range m.units {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + u.Name))
			} else {
				b.WriteString("  " + nameStyle.Render(u.Name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter compile • e snippet • q quit"))

	case stateInputSnippet:
		b.WriteString("Compile an element against the declarations above\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter compile • esc back"))

	case stateShowCode:
		b.WriteString(fmt.Sprintf("Output of %s:\n\n", nameStyle.Render(m.title)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(codeStyle.Render(indentLines(m.code, "  ")))
		}
		for _, d := range m.diags {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render(fmt.Sprintf("%d:%d: %s", d.Pos.Line, d.Pos.Col, d.Message)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}
