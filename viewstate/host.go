package viewstate

import "time"

// Panel is an opaque, host-owned placeholder handle. The scheduler only passes it back to the Host.
type Panel any

// Insets are edge offsets of a panel inside the shared container, in host units.
type Insets struct {
	Top, Left, Bottom, Right int
}

// InsetProvider is implemented by panels that do not fill the whole container.
type InsetProvider interface {
	PanelInsets() Insets
}

// insetsOf returns the declared insets of p, or zero insets.
func insetsOf(p Panel) Insets {
	if ip, ok := p.(InsetProvider); ok {
		return ip.PanelInsets()
	}
	return Insets{}
}

// Host performs structural view operations on behalf of the scheduler.
//
// Every method except Dispatch is only ever called from a function passed to Dispatch, i.e. on the
// host's UI context.
type Host interface {
	// Dispatch runs fn on the UI context. It may block until fn has been accepted.
	Dispatch(fn func())

	// AttachContainer adds the shared invisible container to the host view. It must be idempotent.
	AttachContainer()
	// DetachContainer removes the shared container.
	DetachContainer()
	// AttachPanel adds p to the container with the given insets.
	AttachPanel(p Panel, insets Insets)
	// DetachPanel removes p from the container.
	DetachPanel(p Panel)
	// SetOpacity sets the opacity of p, in [0, 1].
	SetOpacity(p Panel, opacity float64)

	// Animate runs mutate and calls onFinish once the resulting changes are visible. When animated is
	// false both are called synchronously, in order.
	Animate(animated bool, mutate func(), onFinish func())
}

// Timers is the delayed work primitive used for debouncing.
type Timers interface {
	// AfterFunc calls fn after d on its own goroutine. stop prevents the call, reporting false if fn
	// has already been started.
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

type runtimeTimers struct{}

func (runtimeTimers) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Observer receives scheduling events. Methods are called without internal locks held.
type Observer interface {
	Requested(target Identity, delay time.Duration)
	Applied(from, to Identity)
	Finished(target Identity, result Result)
}
