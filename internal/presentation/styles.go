package presentation

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#89B4FA"}
	titleColor   = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}
	successColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
)

// Styles renders the decorated parts of text output. The zero value, and
// any Styles built with styling off, returns text unchanged.
type Styles struct {
	enabled bool
	heading lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// NewStyles binds the styles to w's terminal. With enabled false, or when w
// is not a colour terminal, output stays plain.
func NewStyles(w io.Writer, enabled bool, opts ...termenv.OutputOption) Styles {
	r := lipgloss.NewRenderer(w, opts...)
	if !enabled {
		r.SetColorProfile(termenv.Ascii)
	}
	return newStyles(r, enabled && r.ColorProfile() != termenv.Ascii)
}

// NewStylesWithProfile forces a colour profile regardless of the terminal.
func NewStylesWithProfile(w io.Writer, profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return newStyles(r, profile != termenv.Ascii)
}

func newStyles(r *lipgloss.Renderer, enabled bool) Styles {
	return Styles{
		enabled: enabled,
		heading: r.NewStyle().Bold(true).Foreground(headingColor),
		title:   r.NewStyle().Bold(true).Foreground(titleColor),
		success: r.NewStyle().Foreground(successColor),
		failure: r.NewStyle().Bold(true).Foreground(errorColor),
		muted:   r.NewStyle().Foreground(mutedColor),
	}
}

// Enabled reports whether styling is applied.
func (s Styles) Enabled() bool { return s.enabled }

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return style.Render(text)
}

// Heading styles a "=== ... ===" banner.
func (s Styles) Heading(text string) string { return s.render(s.heading, text) }

// Title styles a schedule or list title.
func (s Styles) Title(text string) string { return s.render(s.title, text) }

// Success styles a confirmation mark.
func (s Styles) Success(text string) string { return s.render(s.success, text) }

// Failure styles an error line.
func (s Styles) Failure(text string) string { return s.render(s.failure, text) }

// Muted styles secondary text.
func (s Styles) Muted(text string) string { return s.render(s.muted, text) }
