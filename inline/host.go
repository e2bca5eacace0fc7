package inline

import (
	"slices"
	"sync"

	"github.com/statepane/statepane/viewstate"
)

// panel is a headless placeholder.
type panel string

// host applies transitions without a screen. Dispatched work runs serially on the calling goroutine.
type host struct {
	ui sync.Mutex

	mu        sync.Mutex
	container bool
	visible   []panel
}

func (h *host) Dispatch(fn func()) {
	h.ui.Lock()
	defer h.ui.Unlock()
	fn()
}

func (h *host) AttachContainer() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.container = true
}

func (h *host) DetachContainer() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.container = false
}

func (h *host) AttachPanel(p viewstate.Panel, _ viewstate.Insets) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if name, ok := p.(panel); ok && !slices.Contains(h.visible, name) {
		h.visible = append(h.visible, name)
	}
}

func (h *host) DetachPanel(p viewstate.Panel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible = slices.DeleteFunc(h.visible, func(v panel) bool {
		return v == p
	})
}

func (h *host) SetOpacity(viewstate.Panel, float64) {}

// Animate has nothing to draw, so animated changes finish at once.
func (h *host) Animate(_ bool, mutate func(), onFinish func()) {
	mutate()
	onFinish()
}

// Visible returns the attached panels in attach order.
func (h *host) Visible() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, len(h.visible))
	for i, p := range h.visible {
		names[i] = string(p)
	}
	return names
}
