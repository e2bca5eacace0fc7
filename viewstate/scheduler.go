package viewstate

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/statepane/statepane/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Default debounce delays.
const (
	DefaultToLoadingDelay   = time.Second
	DefaultFromLoadingDelay = time.Second
)

type (
	// Option configures a Scheduler, see New.
	Option func(*Scheduler)

	// Scheduler is the placeholder view state machine. It owns the panel registry, the current and
	// last requested identities, and a serialized queue applying one transition at a time.
	// Instances must be initialized using New, and should be closed using Close.
	Scheduler struct {
		host     Host
		timers   Timers
		observer Observer
		queue    *serialQueue

		mu               sync.Mutex
		panels           map[string]Panel
		current          Identity
		lastRequested    Identity
		pendingLoading   bool
		pending          map[string]*pendingWork // keyed by KeyLoading or keyNone
		toLoadingDelay   time.Duration
		fromLoadingDelay time.Duration
		seq              uint64
		closed           bool
	}

	// pendingWork is a delayed request that has not entered the queue yet.
	pendingWork struct {
		seq        uint64
		target     Identity
		animated   bool
		onComplete Completion
		stop       func() bool
	}
)

// WithTimers replaces the runtime timers used for delayed scheduling.
func WithTimers(t Timers) Option {
	return func(s *Scheduler) {
		if t != nil {
			s.timers = t
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(s *Scheduler) {
		s.observer = o
	}
}

// WithToLoadingDelay sets the time before a requested loading panel is shown.
func WithToLoadingDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		s.toLoadingDelay = d
	}
}

// WithFromLoadingDelay sets the time a visible loading panel is held before it may be hidden.
func WithFromLoadingDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		s.fromLoadingDelay = d
	}
}

// New initializes a Scheduler bound to host. A panic will occur if host is nil.
func New(host Host, opts ...Option) *Scheduler {
	if host == nil {
		panic(`viewstate: nil host`)
	}

	s := Scheduler{
		host:             host,
		timers:           runtimeTimers{},
		panels:           make(map[string]Panel),
		pending:          make(map[string]*pendingWork),
		current:          None,
		lastRequested:    None,
		toLoadingDelay:   DefaultToLoadingDelay,
		fromLoadingDelay: DefaultFromLoadingDelay,
	}

	for _, opt := range opts {
		opt(&s)
	}

	s.queue = newSerialQueue()

	return &s
}

// Register adds or replaces the panel for key. Visibility is not affected.
func (s *Scheduler) Register(key string, p Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panels[key] = p
}

// Unregister removes the panel for key. A visible panel stays visible, but later transitions neither
// detach nor show it.
func (s *Scheduler) Unregister(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.panels, key)
}

// Panel returns the panel registered for key.
func (s *Scheduler) Panel(key string) mo.Option[Panel] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.panels[key]; ok {
		return mo.Some(p)
	}
	return mo.None[Panel]()
}

// SetPanel registers p for key, or unregisters key if p is nil.
func (s *Scheduler) SetPanel(key string, p Panel) {
	if p == nil {
		s.Unregister(key)
		return
	}
	s.Register(key, p)
}

// Keys returns the registered keys, sorted.
func (s *Scheduler) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.panels)
}

// CurrentState returns the identity that is rendered, or being transitioned to.
func (s *Scheduler) CurrentState() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// LastRequestedState returns the identity passed to the most recent RequestTransition call.
func (s *Scheduler) LastRequestedState() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequested
}

// PendingLoading reports the debounce flag set by a delayed loading request. The flag is cleared by the
// next None request even when that request leaves the loading timer running.
func (s *Scheduler) PendingLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLoading
}

// ToLoadingDelay returns the delay applied before showing the loading panel.
func (s *Scheduler) ToLoadingDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toLoadingDelay
}

// SetToLoadingDelay sets the delay applied before showing the loading panel, for later requests.
func (s *Scheduler) SetToLoadingDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toLoadingDelay = d
}

// FromLoadingDelay returns the delay applied before hiding a visible loading panel.
func (s *Scheduler) FromLoadingDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fromLoadingDelay
}

// SetFromLoadingDelay sets the delay applied before hiding a visible loading panel, for later requests.
func (s *Scheduler) SetFromLoadingDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fromLoadingDelay = d
}

// RequestTransition asks for target to become visible. It never blocks: LastRequestedState is updated
// immediately, and the work is enqueued, possibly after a debounce delay. onComplete may be nil.
//
// Completions run on the host UI context, except Discarded, which runs on its own goroutine.
func (s *Scheduler) RequestTransition(target Identity, animated bool, onComplete Completion) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		go s.finish(target, onComplete, Discarded)
		return
	}

	prev := s.lastRequested
	s.lastRequested = target

	var (
		delay      time.Duration
		space      string
		superseded []*pendingWork
	)

	switch {
	case target.IsNone():
		space = keyNone
		if prev.Is(KeyLoading) && s.pendingLoading {
			// loading was never shown, drop it and hide at once
			if w := s.takePendingLocked(KeyLoading); w != nil {
				superseded = append(superseded, w)
			}
		} else if s.current.Is(KeyLoading) {
			delay = s.fromLoadingDelay
		}
		s.pendingLoading = false
	case target.Is(KeyLoading):
		space = KeyLoading
		delay = s.toLoadingDelay
		s.pendingLoading = delay > 0
	}

	if space != "" {
		if w := s.takePendingLocked(space); w != nil {
			superseded = append(superseded, w)
		}
	}

	if delay > 0 {
		s.seq++
		w := &pendingWork{
			seq:        s.seq,
			target:     target,
			animated:   animated,
			onComplete: onComplete,
		}
		s.pending[space] = w
		seq := w.seq
		w.stop = s.timers.AfterFunc(delay, func() {
			s.fire(space, seq)
		})
	} else {
		s.enqueueLocked(target, animated, onComplete)
	}

	s.mu.Unlock()

	log.Debugf("viewstate: requested %s (previous %s, delay %s)", target, prev, delay)

	if s.observer != nil {
		s.observer.Requested(target, delay)
	}

	for _, w := range superseded {
		s.supersede(w)
	}
}

// CancelPendingLoading cancels a loading transition that has not entered the queue yet, reporting
// whether there was one.
func (s *Scheduler) CancelPendingLoading() bool {
	s.mu.Lock()
	w := s.takePendingLocked(KeyLoading)
	s.pendingLoading = false
	s.mu.Unlock()

	if w == nil {
		return false
	}

	s.supersede(w)
	return true
}

// CancelPendingHide cancels a None transition that has not entered the queue yet, reporting whether
// there was one.
func (s *Scheduler) CancelPendingHide() bool {
	s.mu.Lock()
	w := s.takePendingLocked(keyNone)
	s.mu.Unlock()

	if w == nil {
		return false
	}

	s.supersede(w)
	return true
}

// Close cancels delayed requests, discards queued ones, and stops the queue. A transition that is
// being applied is abandoned; its completion still runs if the host finishes it.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	pending := s.pending
	s.pending = make(map[string]*pendingWork)
	s.pendingLoading = false
	s.mu.Unlock()

	for _, w := range pending {
		w.stop()
		go s.finish(w.target, w.onComplete, Discarded)
	}

	s.queue.close()
}

func (s *Scheduler) takePendingLocked(space string) *pendingWork {
	w, ok := s.pending[space]
	if !ok {
		return nil
	}
	delete(s.pending, space)
	return w
}

func (s *Scheduler) supersede(w *pendingWork) {
	w.stop()
	log.Debugf("viewstate: superseded %s", w.target)
	go s.host.Dispatch(func() {
		s.finish(w.target, w.onComplete, Superseded)
	})
}

// fire moves a delayed request into the queue, unless it was cancelled or replaced meanwhile.
func (s *Scheduler) fire(space string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.pending[space]
	if !ok || w.seq != seq {
		return
	}
	delete(s.pending, space)

	if space == KeyLoading {
		s.pendingLoading = false
	}

	s.enqueueLocked(w.target, w.animated, w.onComplete)
}

func (s *Scheduler) enqueueLocked(target Identity, animated bool, onComplete Completion) {
	s.queue.push(job{
		run: func(resume func()) {
			s.execute(target, animated, onComplete, resume)
		},
		discard: func() {
			go s.finish(target, onComplete, Discarded)
		},
	})
}

// execute runs on the queue goroutine.
func (s *Scheduler) execute(target Identity, animated bool, onComplete Completion, resume func()) {
	s.mu.Lock()
	from := s.current
	if from.Equal(target) {
		s.mu.Unlock()
		resume()
		s.host.Dispatch(func() {
			s.finish(target, onComplete, Unchanged)
		})
		return
	}
	s.current = target
	store := maps.Clone(s.panels)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"from":     from.String(),
		"to":       target.String(),
		"animated": animated,
	}).Debug("viewstate: applying transition")

	s.host.Dispatch(func() {
		done := func() {
			resume()
			if s.observer != nil {
				s.observer.Applied(from, target)
			}
			s.finish(target, onComplete, Applied)
		}

		if key, ok := target.Key(); ok {
			s.show(key, store, animated, done)
		} else {
			s.hideAll(store, animated, done)
		}
	})
}

// show runs on the UI context.
func (s *Scheduler) show(key string, store map[string]Panel, animated bool, done func()) {
	s.host.AttachContainer()

	panel, ok := store[key]
	if ok {
		s.host.SetOpacity(panel, lo.Ternary(animated, 0.0, 1.0))
		s.host.AttachPanel(panel, insetsOf(panel))
	} else {
		log.Warnf("viewstate: no panel registered for %q", key)
	}

	s.host.Animate(animated, func() {
		if ok {
			s.host.SetOpacity(panel, 1)
		}
	}, func() {
		for _, k := range sortedKeys(store) {
			if k != key {
				s.host.DetachPanel(store[k])
			}
		}
		done()
	})
}

// hideAll runs on the UI context.
func (s *Scheduler) hideAll(store map[string]Panel, animated bool, done func()) {
	keys := sortedKeys(store)

	s.host.Animate(animated, func() {
		for _, k := range keys {
			s.host.SetOpacity(store[k], 0)
		}
	}, func() {
		for _, k := range keys {
			s.host.DetachPanel(store[k])
		}
		s.host.DetachContainer()
		done()
	})
}

func (s *Scheduler) finish(target Identity, onComplete Completion, result Result) {
	if s.observer != nil {
		s.observer.Finished(target, result)
	}
	if onComplete != nil {
		onComplete(result)
	}
}

func sortedKeys(m map[string]Panel) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
