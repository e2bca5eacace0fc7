package tui

import (
	"github.com/statepane/statepane/internal/ui"
	"github.com/statepane/statepane/open"
	"github.com/statepane/statepane/provider"
	"github.com/statepane/statepane/query"
	"github.com/statepane/statepane/source"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{b.notifier.Update(msg), b.container.Update(msg)}

	model, cmd := b.update(msg)
	cmds = append(cmds, cmd, b.drain())

	return model, tea.Batch(cmds...)
}

func (b *statefulBubble) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case dispatchMsg, fadeFrameMsg:
		return b, nil
	case spinner.TickMsg:
		b.loadingP.spinner, cmd = b.loadingP.spinner.Update(msg)
		return b, cmd
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case sourceCreatedMsg:
		return b, b.useSource(msg.source)
	case loadedMsg:
		return b, b.finishLoad(msg)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case providersState:
		return b.updateProviders(msg)
	case targetState:
		return b.updateTarget(msg)
	case browseState:
		return b.updateBrowse(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

// useSource moves to the target screen, or straight to browsing when a target was given.
func (b *statefulBubble) useSource(s source.Source) tea.Cmd {
	b.selectedSource = s
	b.contentC.Title = "Content - " + s.Name()

	if target := b.options.Target; target != "" {
		b.options.Target = ""
		b.target = target
		b.inputC.SetValue(target)
		b.newState(targetState)
		b.newState(browseState)
		return b.startLoad()
	}

	b.newState(targetState)
	return nil
}

func (b *statefulBubble) updateProviders(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.providersC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.providersC.Items()); n > 0 && b.providersC.Index() == 0 {
				b.providersC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.providersC.Items()); n > 0 && b.providersC.Index() == n-1 {
				b.providersC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.providersC.SelectedItem().(*listItem)
			if !ok {
				break
			}
			return b, b.createSource(item.internal.(*provider.Provider))
		}
	}

	b.providersC, cmd = b.providersC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateTarget(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			b.target = b.inputC.Value()
			b.suggestion = mo.None[string]()
			b.newState(browseState)
			return b, b.startLoad()
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion) && b.suggestion.IsPresent():
			b.inputC.SetValue(b.suggestion.MustGet())
			b.inputC.CursorEnd()
			b.suggestion = mo.None[string]()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.remove) && b.suggestion.IsPresent():
			_ = query.Forget(b.suggestion.MustGet())
			b.suggestion = mo.None[string]()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			b.suggestion = mo.None[string]()
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != "" {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.suggestion = mo.Some(suggestion)
		} else {
			b.suggestion = mo.None[string]()
		}
	} else {
		b.suggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.contentC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, b.startLoad()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			item, ok := b.contentC.SelectedItem().(*listItem)
			if !ok || b.container.Visible() {
				return b, nil
			}
			if url := item.internal.(*source.Item).URL; url != "" {
				if err := open.Start(url); err != nil {
					b.queue(ui.NotifyError(err))
				}
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back) && b.contentC.FilterState() == list.Unfiltered:
			cmd = b.leaveBrowse()
			b.previousState()
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	if b.container.Visible() {
		return b, nil
	}

	b.contentC, cmd = b.contentC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, nil
}
