package style

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade mixes c toward the Base background. Opacity 1 returns c unchanged, 0 returns Base.
// Colors that are not hex values, such as ANSI indexes, are returned as is.
func Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return c
	case opacity <= 0:
		if _, err := colorful.Hex(string(c)); err == nil {
			return Base
		}
		return c
	}

	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}

	bg, err := colorful.Hex(string(Base))
	if err != nil {
		return c
	}

	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// FadeFg returns a renderer applying c faded to opacity.
func FadeFg(c lipgloss.Color, opacity float64) func(string) string {
	return Fg(Fade(c, opacity))
}
