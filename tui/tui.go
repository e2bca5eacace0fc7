// Package tui is the interactive terminal front end.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options selects what the program starts with.
type Options struct {
	// Source skips the sources screen when set.
	Source string
	// Target is loaded right away when Source is set.
	Target string
	// Continue reloads the last saved target.
	Continue bool
}

// Run starts the program and blocks until it exits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.close()

	program := tea.NewProgram(bubble, tea.WithAltScreen())
	bubble.container.Bind(program.Send)

	_, err := program.Run()
	return err
}
