package viewstate

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"
)

type testPanel struct {
	name   string
	insets Insets
}

func (p *testPanel) PanelInsets() Insets {
	return p.insets
}

// fakeHost records structural operations. Dispatched functions are serialized by ui, which stands in
// for a UI thread.
type fakeHost struct {
	ui sync.Mutex

	mu        sync.Mutex
	container bool
	attached  map[*testPanel]Insets
	opacity   map[*testPanel]float64
	ops       []string
	hold      bool
	held      []func()
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		attached: make(map[*testPanel]Insets),
		opacity:  make(map[*testPanel]float64),
	}
}

func (h *fakeHost) record(format string, args ...any) {
	h.ops = append(h.ops, fmt.Sprintf(format, args...))
}

func (h *fakeHost) Dispatch(fn func()) {
	h.ui.Lock()
	defer h.ui.Unlock()
	fn()
}

func (h *fakeHost) AttachContainer() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.container = true
	h.record("attach container")
}

func (h *fakeHost) DetachContainer() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.container = false
	h.record("detach container")
}

func (h *fakeHost) AttachPanel(p Panel, insets Insets) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tp := p.(*testPanel)
	h.attached[tp] = insets
	h.record("attach %s", tp.name)
}

func (h *fakeHost) DetachPanel(p Panel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tp := p.(*testPanel)
	delete(h.attached, tp)
	h.record("detach %s", tp.name)
}

func (h *fakeHost) SetOpacity(p Panel, opacity float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tp := p.(*testPanel)
	h.opacity[tp] = opacity
	h.record("opacity %s %.0f", tp.name, opacity)
}

func (h *fakeHost) Animate(animated bool, mutate func(), onFinish func()) {
	mutate()

	h.mu.Lock()
	if animated && h.hold {
		h.held = append(h.held, onFinish)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	onFinish()
}

// finishAnimations completes held animations on the UI context.
func (h *fakeHost) finishAnimations() {
	h.mu.Lock()
	held := h.held
	h.held = nil
	h.mu.Unlock()

	h.Dispatch(func() {
		for _, fn := range held {
			fn()
		}
	})
}

func (h *fakeHost) heldAnimations() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.held)
}

func (h *fakeHost) visible() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.attached))
	for p := range h.attached {
		names = append(names, p.name)
	}
	slices.Sort(names)
	return names
}

func (h *fakeHost) hasContainer() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.container
}

func (h *fakeHost) opsCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.ops)
}

func (h *fakeHost) opsSince(n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.ops[n:])
}

// fakeTimers fires callbacks only when advanced.
type fakeTimers struct {
	mu         sync.Mutex
	now        time.Duration
	timers     []*fakeTimer
	ignoreStop bool
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimers) AfterFunc(d time.Duration, fn func()) func() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	ft := &fakeTimer{at: t.now + d, fn: fn}
	t.timers = append(t.timers, ft)

	return func() bool {
		t.mu.Lock()
		defer t.mu.Unlock()
		if ft.fired || ft.stopped {
			return false
		}
		if !t.ignoreStop {
			ft.stopped = true
		}
		return true
	}
}

func (t *fakeTimers) Advance(d time.Duration) {
	t.mu.Lock()
	t.now += d
	var due []*fakeTimer
	for _, ft := range t.timers {
		if !ft.fired && !ft.stopped && ft.at <= t.now {
			ft.fired = true
			due = append(due, ft)
		}
	}
	t.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].at < due[j].at
	})

	for _, ft := range due {
		ft.fn()
	}
}

func (t *fakeTimers) active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n int
	for _, ft := range t.timers {
		if !ft.fired && !ft.stopped {
			n++
		}
	}
	return n
}

type recordingObserver struct {
	mu        sync.Mutex
	requested []string
	applied   []string
	finished  []string
}

func (o *recordingObserver) Requested(target Identity, delay time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requested = append(o.requested, fmt.Sprintf("%s %s", target, delay))
}

func (o *recordingObserver) Applied(from, to Identity) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.applied = append(o.applied, fmt.Sprintf("%s->%s", from, to))
}

func (o *recordingObserver) Finished(target Identity, result Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished = append(o.finished, fmt.Sprintf("%s %s", target, result))
}

func (o *recordingObserver) snapshot() (requested, applied, finished []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.requested), slices.Clone(o.applied), slices.Clone(o.finished)
}

const waitTimeout = 2 * time.Second

// noResult is returned by await on timeout.
const noResult Result = -1

func completion() (Completion, <-chan Result) {
	ch := make(chan Result, 1)
	return func(r Result) {
		ch <- r
	}, ch
}

func await(ch <-chan Result) Result {
	select {
	case r := <-ch:
		return r
	case <-time.After(waitTimeout):
		return noResult
	}
}

func eventually(cond func() bool) bool {
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

type fixture struct {
	scheduler *Scheduler
	host      *fakeHost
	timers    *fakeTimers
	panels    map[string]*testPanel
}

func newFixture(opts ...Option) *fixture {
	f := fixture{
		host:   newFakeHost(),
		timers: &fakeTimers{},
		panels: make(map[string]*testPanel),
	}

	f.scheduler = New(f.host, append([]Option{WithTimers(f.timers)}, opts...)...)

	for _, k := range []string{KeyLoading, KeyError, KeyEmpty} {
		p := &testPanel{name: k}
		f.panels[k] = p
		f.scheduler.Register(k, p)
	}

	return &f
}

func (f *fixture) request(target Identity, animated bool) <-chan Result {
	done, ch := completion()
	f.scheduler.RequestTransition(target, animated, done)
	return ch
}

// show requests target and waits for it to be applied.
func (f *fixture) show(target Identity) Result {
	ch := f.request(target, false)
	if target.Is(KeyLoading) {
		f.timers.Advance(f.scheduler.ToLoadingDelay())
	}
	return await(ch)
}
