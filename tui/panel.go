package tui

import (
	"fmt"
	"strings"

	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/viewstate"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

// placeholder is a panel the Container can draw.
type placeholder interface {
	viewstate.InsetProvider
	view(width int, opacity float64) string
}

var panelInsets = viewstate.Insets{Top: 1, Left: 2, Bottom: 1, Right: 2}

func faded(c lipgloss.Color, opacity float64) lipgloss.Style {
	return style.New().Foreground(style.Fade(c, opacity))
}

type loadingPanel struct {
	spinner spinner.Model
	status  string
}

func newLoadingPanel() *loadingPanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &loadingPanel{spinner: s}
}

func (p *loadingPanel) PanelInsets() viewstate.Insets {
	return panelInsets
}

func (p *loadingPanel) view(_ int, opacity float64) string {
	return strings.Join([]string{
		faded(style.AccentColor, opacity).Bold(true).Render("Loading"),
		"",
		faded(style.Pink, opacity).Render(p.spinner.View()) + " " + faded(style.Subtext, opacity).Render(p.status),
	}, "\n")
}

type errorPanel struct {
	err error
}

func (p *errorPanel) PanelInsets() viewstate.Insets {
	return panelInsets
}

func (p *errorPanel) view(width int, opacity float64) string {
	msg := "unknown error"
	if p.err != nil {
		msg = p.err.Error()
	}

	return strings.Join([]string{
		faded(style.ErrorColor, opacity).Bold(true).Render(icon.Get(icon.Fail) + " Error"),
		"",
		faded(style.Text, opacity).Render(wrap.String(msg, max(width, 1))),
		"",
		faded(style.FaintColor, opacity).Render("press r to retry"),
	}, "\n")
}

type emptyPanel struct {
	target string
}

func (p *emptyPanel) PanelInsets() viewstate.Insets {
	return panelInsets
}

func (p *emptyPanel) view(width int, opacity float64) string {
	return strings.Join([]string{
		faded(style.WarningColor, opacity).Bold(true).Render(icon.Get(icon.Empty) + " Nothing here"),
		"",
		faded(style.Subtext, opacity).Render(wrap.String(fmt.Sprintf("%q returned no items", p.target), max(width, 1))),
	}, "\n")
}
