package tui

import (
	"errors"
	"fmt"

	"github.com/statepane/statepane/history"
	"github.com/statepane/statepane/provider"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errNothingToContinue = errors.New("no saved targets to continue from")

func (b *statefulBubble) Init() tea.Cmd {
	b.setState(providersState)
	cmds := []tea.Cmd{textinput.Blink, b.loadProviders()}

	if b.options.Continue {
		last, ok := history.Last().Get()
		if !ok {
			b.raiseError(errNothingToContinue)
			return tea.Batch(cmds...)
		}

		b.options.Source = last.SourceName
		b.options.Target = last.Target
	}

	if name := b.options.Source; name != "" {
		p, ok := provider.Get(name)
		if !ok {
			b.raiseError(fmt.Errorf("source %s not found", name))
			return tea.Batch(cmds...)
		}

		cmds = append(cmds, b.createSource(p))
	}

	return tea.Batch(cmds...)
}
