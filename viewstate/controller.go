package viewstate

import (
	"errors"
	"sync"

	"github.com/statepane/statepane/log"
)

// ViewState is the controller level view of an Identity.
type ViewState string

const (
	Content ViewState = "content"
	Loading ViewState = KeyLoading
	Error   ViewState = KeyError
	Empty   ViewState = KeyEmpty
)

// ErrRestored stands for an error whose placeholder was visible when the view state was set up again.
var ErrRestored = errors.New("viewstate: restored error state")

// StateOf maps an identity to a ViewState. None is Content, custom keys map to themselves.
func StateOf(i Identity) ViewState {
	key, ok := i.Key()
	if !ok {
		return Content
	}
	return ViewState(key)
}

// Identity returns the identity that renders s.
func (s ViewState) Identity() Identity {
	if s == Content || s == "" {
		return None
	}
	return Named(string(s))
}

// Controller picks placeholders for a content view: loading, error and empty are shown only while
// there is no content.
type Controller struct {
	scheduler  *Scheduler
	hasContent func() bool

	mu               sync.Mutex
	errorWithContent func(error)
}

// NewController binds s to the hasContent predicate. hasContent is called on the caller's goroutine.
func NewController(s *Scheduler, hasContent func() bool) *Controller {
	if hasContent == nil {
		hasContent = func() bool { return false }
	}

	return &Controller{
		scheduler:  s,
		hasContent: hasContent,
	}
}

// Scheduler returns the underlying scheduler.
func (c *Controller) Scheduler() *Scheduler {
	return c.scheduler
}

// OnErrorWithContent sets the hook called instead of showing the error panel when content exists.
func (c *Controller) OnErrorWithContent(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorWithContent = fn
}

// SetLoadingPanel registers the loading placeholder. nil unregisters it.
func (c *Controller) SetLoadingPanel(p Panel) {
	c.scheduler.SetPanel(KeyLoading, p)
}

// SetErrorPanel registers the error placeholder. nil unregisters it.
func (c *Controller) SetErrorPanel(p Panel) {
	c.scheduler.SetPanel(KeyError, p)
}

// SetEmptyPanel registers the empty placeholder. nil unregisters it.
func (c *Controller) SetEmptyPanel(p Panel) {
	c.scheduler.SetPanel(KeyEmpty, p)
}

// CurrentState is the state that is rendered, or being transitioned to.
func (c *Controller) CurrentState() ViewState {
	return StateOf(c.scheduler.CurrentState())
}

// LastState is the most recently requested state.
func (c *Controller) LastState() ViewState {
	return StateOf(c.scheduler.LastRequestedState())
}

// StartLoading shows the loading placeholder unless there is content.
func (c *Controller) StartLoading(animated bool, onComplete Completion) {
	c.TransitionViewStates(true, nil, animated, onComplete)
}

// EndLoading shows content, the error placeholder or the empty placeholder.
func (c *Controller) EndLoading(animated bool, err error, onComplete Completion) {
	c.TransitionViewStates(false, err, animated, onComplete)
}

// SetupInitialViewState re-applies the last requested state without animation.
func (c *Controller) SetupInitialViewState(onComplete Completion) {
	last := c.LastState()

	var err error
	if last == Error {
		err = ErrRestored
	}

	c.TransitionViewStates(last == Loading, err, false, onComplete)
}

// TransitionViewStates requests None when there is content, reporting err through the
// OnErrorWithContent hook. Otherwise it requests loading, error or empty, in that order of precedence.
func (c *Controller) TransitionViewStates(loading bool, err error, animated bool, onComplete Completion) {
	if c.hasContent() {
		if err != nil {
			c.mu.Lock()
			hook := c.errorWithContent
			c.mu.Unlock()

			if hook != nil {
				hook(err)
			} else {
				log.Warn("viewstate: error with content: " + err.Error())
			}
		}

		c.scheduler.RequestTransition(None, animated, onComplete)
		return
	}

	target := Empty
	switch {
	case loading:
		target = Loading
	case err != nil:
		target = Error
	}

	if target != Loading {
		if c.scheduler.CancelPendingLoading() {
			log.Debugf("viewstate: loading finished before it was shown, showing %s", target)
		}
		// a delayed hide would remove the placeholder requested below
		if c.scheduler.CancelPendingHide() {
			log.Debugf("viewstate: dropped a pending hide, showing %s", target)
		}
	}

	c.scheduler.RequestTransition(target.Identity(), animated, onComplete)
}

// Show requests a custom placeholder by key.
func (c *Controller) Show(key string, animated bool, onComplete Completion) {
	c.scheduler.RequestTransition(Named(key), animated, onComplete)
}
