package tui

import (
	"sync"
	"time"

	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/viewstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const frameInterval = time.Second / 30

// dispatchMsg carries scheduler work onto the Bubble Tea event loop.
type dispatchMsg func()

type fadeFrameMsg struct {
	id int
	at time.Time
}

type layer struct {
	panel   placeholder
	insets  viewstate.Insets
	opacity float64
}

type fade struct {
	start    time.Time
	from, to map[*layer]float64
	onFinish func()
}

// Container is the placeholder overlay drawn above the content list. It implements viewstate.Host;
// everything except Dispatch must be called from the Bubble Tea event loop.
type Container struct {
	ready chan struct{}
	bind  sync.Once
	send  func(tea.Msg)

	duration time.Duration
	width    int
	height   int

	attached bool
	layers   []*layer
	fades    map[int]*fade
	nextID   int
	cmds     []tea.Cmd
}

// NewContainer returns a container whose animations last duration.
func NewContainer(duration time.Duration) *Container {
	return &Container{
		ready:    make(chan struct{}),
		duration: duration,
		fades:    make(map[int]*fade),
	}
}

// Bind sets the function used to post messages to the program, usually tea.Program.Send.
// Dispatch blocks until Bind is called.
func (c *Container) Bind(send func(tea.Msg)) {
	c.bind.Do(func() {
		c.send = send
		close(c.ready)
	})
}

func (c *Container) Dispatch(fn func()) {
	<-c.ready
	c.send(dispatchMsg(fn))
}

func (c *Container) AttachContainer() {
	c.attached = true
}

func (c *Container) DetachContainer() {
	c.attached = false
}

func (c *Container) AttachPanel(p viewstate.Panel, insets viewstate.Insets) {
	ph, ok := p.(placeholder)
	if !ok {
		log.Warnf("tui: cannot attach %T", p)
		return
	}

	if l, ok := c.find(ph); ok {
		l.insets = insets
		return
	}

	c.layers = append(c.layers, &layer{panel: ph, insets: insets, opacity: 1})
}

func (c *Container) DetachPanel(p viewstate.Panel) {
	c.layers = lo.Reject(c.layers, func(l *layer, _ int) bool {
		return l.panel == p
	})
}

func (c *Container) SetOpacity(p viewstate.Panel, opacity float64) {
	if l, ok := c.find(p); ok {
		l.opacity = lo.Clamp(opacity, 0, 1)
	}
}

// Animate fades every attached panel from its current opacity to the one set by mutate.
func (c *Container) Animate(animated bool, mutate func(), onFinish func()) {
	before := c.opacities()
	mutate()

	if !animated || c.duration <= 0 {
		onFinish()
		return
	}

	after := c.opacities()
	from := make(map[*layer]float64, len(after))
	for l, to := range after {
		o, ok := before[l]
		if !ok {
			o = to
		}
		from[l] = o
		l.opacity = o
	}

	c.nextID++
	c.fades[c.nextID] = &fade{
		start:    time.Now(),
		from:     from,
		to:       after,
		onFinish: onFinish,
	}
	c.cmds = append(c.cmds, c.frame(c.nextID))
}

// Update advances fades and runs dispatched work.
func (c *Container) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg()
	case fadeFrameMsg:
		c.step(msg)
	}

	return c.flush()
}

func (c *Container) step(msg fadeFrameMsg) {
	f, ok := c.fades[msg.id]
	if !ok {
		return
	}

	progress := lo.Clamp(float64(msg.at.Sub(f.start))/float64(c.duration), 0, 1)
	for l, to := range f.to {
		from := f.from[l]
		l.opacity = from + (to-from)*progress
	}

	if progress < 1 {
		c.cmds = append(c.cmds, c.frame(msg.id))
		return
	}

	delete(c.fades, msg.id)
	f.onFinish()
}

func (c *Container) frame(id int) tea.Cmd {
	return tea.Tick(min(frameInterval, c.duration), func(t time.Time) tea.Msg {
		return fadeFrameMsg{id: id, at: t}
	})
}

func (c *Container) flush() tea.Cmd {
	if len(c.cmds) == 0 {
		return nil
	}
	cmds := c.cmds
	c.cmds = nil
	return tea.Batch(cmds...)
}

// SetSize sets the area panels are laid out in.
func (c *Container) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Visible reports whether a panel covers the content.
func (c *Container) Visible() bool {
	return c.attached && len(c.layers) > 0
}

// Animating reports whether a fade is running.
func (c *Container) Animating() bool {
	return len(c.fades) > 0
}

// View draws the topmost panel, or content when no panel is attached.
func (c *Container) View(content string) string {
	if !c.Visible() {
		return content
	}

	top := c.layers[len(c.layers)-1]
	in := top.insets

	width := max(c.width-in.Left-in.Right, 0)
	body := top.panel.view(width, top.opacity)

	return lipgloss.NewStyle().
		Margin(in.Top, in.Right, in.Bottom, in.Left).
		Render(body)
}

func (c *Container) find(p viewstate.Panel) (*layer, bool) {
	return lo.Find(c.layers, func(l *layer) bool {
		return l.panel == p
	})
}

func (c *Container) opacities() map[*layer]float64 {
	m := make(map[*layer]float64, len(c.layers))
	for _, l := range c.layers {
		m[l] = l.opacity
	}
	return m
}
