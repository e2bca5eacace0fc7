package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/internal/ui"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/util"
	"github.com/statepane/statepane/viewstate"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	providersC list.Model
	contentC   list.Model
	inputC     textinput.Model
	helpC      help.Model

	container  *Container
	controller *viewstate.Controller
	loadingP   *loadingPanel
	errorP     *errorPanel
	emptyP     *emptyPanel
	animate    bool

	selectedSource source.Source
	target         string
	generation     int
	cancel         context.CancelFunc

	suggestion mo.Option[string]
	lastError  error
	notifier   *ui.Model

	// commands queued outside of Update, drained when it returns
	pending []tea.Cmd

	width, height int

	options *Options
}

// raiseError shows a fatal error screen.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.providersC.SetSize(listWidth, listHeight)
	b.providersC.Help.Width = listWidth

	b.contentC.SetSize(listWidth, listHeight)
	b.contentC.Help.Width = listWidth

	b.inputC.Width = listWidth

	b.container.SetSize(width-x, height-y)

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

// hasContent reports whether the content list has rows. Called from Update only.
func (b *statefulBubble) hasContent() bool {
	return len(b.contentC.Items()) > 0
}

func (b *statefulBubble) queue(cmd tea.Cmd) {
	if cmd != nil {
		b.pending = append(b.pending, cmd)
	}
}

func (b *statefulBubble) drain() tea.Cmd {
	cmds := b.pending
	b.pending = nil
	return tea.Batch(cmds...)
}

// close cancels the running load and stops the scheduler.
func (b *statefulBubble) close() {
	if b.cancel != nil {
		b.cancel()
	}
	b.controller.Scheduler().Close()
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		notifier:      &ui.Model{},
		animate:       viper.GetBool(key.ViewstateAnimate),
		options:       options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.Text)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetShowHelp(viper.GetBool(key.TUIShowHelp))

		return listC
	}

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Target (%s v%s)", constant.App, constant.Version)
	bubble.inputC.CharLimit = 256
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.providersC = makeList("Sources", style.AccentColor)
	bubble.providersC.SetStatusBarItemName("source", "sources")

	bubble.contentC = makeList("Content", style.Lavender)
	bubble.contentC.SetStatusBarItemName("item", "items")

	bubble.container = NewContainer(viper.GetDuration(key.TUIFadeDuration))

	scheduler := viewstate.New(
		bubble.container,
		viewstate.WithToLoadingDelay(viper.GetDuration(key.ViewstateToLoadingDelay)),
		viewstate.WithFromLoadingDelay(viper.GetDuration(key.ViewstateFromLoadingDelay)),
	)

	bubble.loadingP = newLoadingPanel()
	bubble.errorP = &errorPanel{}
	bubble.emptyP = &emptyPanel{}

	bubble.controller = viewstate.NewController(scheduler, bubble.hasContent)
	bubble.controller.SetLoadingPanel(bubble.loadingP)
	bubble.controller.SetErrorPanel(bubble.errorP)
	bubble.controller.SetEmptyPanel(bubble.emptyP)
	bubble.controller.OnErrorWithContent(func(err error) {
		bubble.queue(ui.NotifyError(err))
	})

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
