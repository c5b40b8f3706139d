package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	jsxluau "github.com/wippyai/jsx-luau"
	"github.com/wippyai/jsx-luau/config"
	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
	"github.com/wippyai/jsx-luau/jsxsrc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	inFile      string
	configFile  string
	color       string
	interactive bool
	debug       bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsxc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.inFile, "in", "", "Path to the JSX source file")
	fs.StringVar(&o.configFile, "config", "", "Path to a YAML config file (optional)")
	fs.StringVar(&o.color, "color", "auto", "Colorize diagnostics: auto, always or never")
	fs.BoolVar(&o.interactive, "i", false, "Interactive mode with TUI")
	fs.BoolVar(&o.debug, "debug", false, "Log lowering decisions to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if o.inFile == "" {
		fmt.Fprintln(stderr, "Usage: jsxc -in <file> [-config jsxc.yaml] [-debug] [-color auto|always|never]")
		fmt.Fprintln(stderr, "       jsxc -in <file> -i  (interactive mode)")
		return 2
	}

	r, err := newRenderer(stderr, o.color)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	st := newStyles(r)

	cfg := config.Default()
	if o.configFile != "" {
		if cfg, err = config.Load(o.configFile); err != nil {
			fmt.Fprintln(stderr, st.err.Render("Error: "+err.Error()))
			return 1
		}
	}

	opts := jsxluau.Options{Indent: cfg.Indent, JSX: cfg.JSXOptions()}
	if o.debug || cfg.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer func() { _ = logger.Sync() }()
		jsx.SetLogger(logger)
		opts.Logger = logger
	}

	data, err := os.ReadFile(o.inFile)
	if err != nil {
		fmt.Fprintln(stderr, st.err.Render("Error: "+errors.Load("read "+o.inFile, err).Error()))
		return 1
	}
	doc, err := jsxsrc.Parse(string(data))
	if err != nil {
		fmt.Fprintln(stderr, st.err.Render(o.inFile+": "+err.Error()))
		return 1
	}

	if o.interactive {
		if err := runInteractive(o.inFile, doc, opts); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	return compileBatch(doc, opts, o.inFile, stdout, stderr, st)
}

func compileBatch(doc *jsxsrc.Document, opts jsxluau.Options, name string, stdout, stderr io.Writer, st styles) int {
	res, err := jsxluau.CompileDocument(doc, opts)
	if err != nil {
		fmt.Fprintln(stderr, st.err.Render(name+": "+err.Error()))
		return 1
	}

	for i, unit := range res.Units {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "-- %s\n", unit.Name)
		fmt.Fprint(stdout, unit.Code)
	}

	if len(res.Diagnostics) > 0 {
		printDiagnostics(stderr, name, res.Diagnostics, st)
		return 1
	}
	return 0
}

func printDiagnostics(w io.Writer, name string, diags jsx.Diagnostics, st styles) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n",
			st.pos.Render(fmt.Sprintf("%s:%d:%d:", name, d.Pos.Line, d.Pos.Col)),
			st.diag.Render(fmt.Sprintf("%s (%s)", d.Message, d.Kind)))
	}
	fmt.Fprintln(w, st.err.Render(summary(len(diags))))
}

func summary(n int) string {
	if n == 1 {
		return "1 diagnostic"
	}
	return fmt.Sprintf("%d diagnostics", n)
}

type styles struct {
	err  lipgloss.Style
	diag lipgloss.Style
	pos  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		err:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		diag: r.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
		pos:  r.NewStyle().Bold(true),
	}
}

// indentLines prefixes every non-empty line of s.
func indentLines(s, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
