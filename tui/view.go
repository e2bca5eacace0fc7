package tui

import (
	"strings"

	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case providersState:
		output = b.viewProviders()
	case targetState:
		output = b.viewTarget()
	case browseState:
		output = b.viewBrowse()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewProviders() string {
	return listExtraPaddingStyle.Render(b.providersC.View())
}

func (b *statefulBubble) viewTarget() string {
	title := "Target"
	if b.selectedSource != nil {
		title += " - " + b.selectedSource.Name()
	}

	lines := []string{
		style.Title(title),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.suggestion.Get(); ok {
		lines = append(lines, "", style.Faint(icon.Get(icon.Search)+" "+suggestion))
	}

	return b.renderLines(true, lines)
}

// viewBrowse draws the placeholder over the content list while one is attached.
func (b *statefulBubble) viewBrowse() string {
	content := listExtraPaddingStyle.Render(b.contentC.View())
	if !b.container.Visible() {
		return content
	}

	return b.renderLines(true, []string{
		style.Title(b.contentC.Title),
		b.container.View(content),
	})
}

func (b *statefulBubble) viewError() string {
	msg := "unknown error"
	if b.lastError != nil {
		msg = b.lastError.Error()
	}

	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " An error occurred:",
		"",
		style.Fg(style.ErrorColor)(wrap.String(msg, max(b.width, 1))),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l); b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
