// Package ui renders short lived notices under the main view.
package ui

import (
	"strings"
	"time"

	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime is how long a notice stays visible.
const Lifetime = 3 * time.Second

// Model holds the current notice.
type Model struct {
	notice string
	seq    int
}

// NoticeMsg shows a notice.
type NoticeMsg string

// ClearNoticeMsg hides the notice it was scheduled for.
type ClearNoticeMsg struct {
	seq int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg(text)
	}
}

// NotifyError returns a command that shows err as a failure notice.
func NotifyError(err error) tea.Cmd {
	return Notify(icon.Get(icon.Fail) + " " + err.Error())
}

// Update handles notice messages. A clear only hides the notice it was scheduled for.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NoticeMsg:
		m.notice = string(msg)
		m.seq++
		seq := m.seq
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNoticeMsg{seq: seq}
		})
	case ClearNoticeMsg:
		if msg.seq == m.seq {
			m.notice = ""
		}
	}
	return nil
}

// Notice returns the visible notice.
func (m *Model) Notice() string {
	return m.notice
}

// View appends the notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notice == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Fg(style.FaintColor)(m.notice)
	return strings.Join(lines, "\n")
}
