// Package color holds the terminal palette indices shared by commands and styles.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI indices, so output follows the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiBlue   = New("12")
	HiPurple = New("13")
)

// Badge colors for titles.
var (
	BadgeText = New("230")
	BadgeBg   = New("62")
)
