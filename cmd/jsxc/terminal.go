package main

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/wippyai/jsx-luau/errors"
)

var stderrIsTerminal int32 = -1 // -1 = unchecked, 0 = no, 1 = yes

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// writerIsTerminal reports whether w is the process's terminal stderr.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f != os.Stderr {
		return false
	}
	return isTerminal(int(f.Fd()), &stderrIsTerminal)
}

// newRenderer returns a lipgloss renderer for w honoring the -color mode.
func newRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "auto":
		if !writerIsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	default:
		return nil, errors.InvalidInput(errors.PhaseConfig, "color must be auto, always or never, got "+mode)
	}
	return r, nil
}
