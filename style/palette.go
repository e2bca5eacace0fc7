package style

import "github.com/charmbracelet/lipgloss"

// Panel and list colors. Base is also the color faded placeholders blend into.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext  = lipgloss.Color("#a6adc8")
	Overlay  = lipgloss.Color("#6c7086")
	Mauve    = lipgloss.Color("#cba6f7")
	Pink     = lipgloss.Color("#f5c2e7")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Lavender = lipgloss.Color("#b4befe")
)

// Roles.
var (
	AccentColor  = Mauve
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = Overlay
)
