// Package style holds the palette and small lipgloss rendering helpers.
package style

import (
	"github.com/statepane/statepane/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with both colors set. Empty colors are left unset.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a renderer applying the background color c.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Truncate returns a renderer constraining output to max cells.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a header badge.
var Title = func(s string) string {
	return Colored(color.BadgeText, color.BadgeBg).Padding(0, 1).Render(s)
}

// ErrorTitle renders a header badge in error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.BadgeText, color.Red).Padding(0, 1).Render(s)
}

// Tag returns a renderer for padded, colored tags.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
