// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pikbatch/pikbatch/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Heading renders a section title such as the failure list header.
var Heading = func(s string) string {
	return New().Bold(true).Foreground(color.HiPurple).Render(s)
}
