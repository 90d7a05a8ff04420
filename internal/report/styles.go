package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls whether the text report is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type styles struct {
	header  lipgloss.Style
	muted   lipgloss.Style
	errors  lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

func newStyles(w io.Writer, mode ColorMode) styles {
	r := lipgloss.NewRenderer(w)
	switch {
	case mode == ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case mode == ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case !isTerminal(w):
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#565f89")),
		errors:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f7768e")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0af68")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ece6a")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
