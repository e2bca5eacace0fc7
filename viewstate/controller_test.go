package viewstate

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestController(t *testing.T) {
	Convey("Given a controller without content", t, func() {
		f := newFixture()
		Reset(f.scheduler.Close)

		var content atomic.Bool
		c := NewController(f.scheduler, content.Load)

		var reported []error
		c.OnErrorWithContent(func(err error) {
			reported = append(reported, err)
		})

		run := func(fn func(Completion)) Result {
			done, ch := completion()
			fn(done)
			return await(ch)
		}

		Convey("StartLoading shows loading after the delay", func() {
			done, ch := completion()
			c.StartLoading(false, done)
			So(c.LastState(), ShouldEqual, Loading)
			So(c.CurrentState(), ShouldEqual, Content)

			f.timers.Advance(f.scheduler.ToLoadingDelay())
			So(await(ch), ShouldEqual, Applied)
			So(c.CurrentState(), ShouldEqual, Loading)
		})

		Convey("EndLoading with an error shows the error panel", func() {
			So(run(func(done Completion) { c.EndLoading(false, errors.New("boom"), done) }), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyError})
			So(c.CurrentState(), ShouldEqual, Error)
			So(reported, ShouldBeEmpty)
		})

		Convey("EndLoading without an error shows the empty panel", func() {
			So(run(func(done Completion) { c.EndLoading(false, nil, done) }), ShouldEqual, Applied)
			So(c.CurrentState(), ShouldEqual, Empty)
		})

		Convey("A load that fails before loading is shown never shows loading", func() {
			loading, loadingCh := completion()
			c.StartLoading(true, loading)
			So(run(func(done Completion) { c.EndLoading(false, errors.New("fast"), done) }), ShouldEqual, Applied)
			So(await(loadingCh), ShouldEqual, Superseded)

			f.timers.Advance(time.Minute)
			time.Sleep(10 * time.Millisecond)
			So(f.host.visible(), ShouldResemble, []string{KeyError})
		})

		Convey("Loading takes precedence over an error", func() {
			c.TransitionViewStates(true, errors.New("ignored"), false, nil)
			So(c.LastState(), ShouldEqual, Loading)
		})

		Convey("When content exists", func() {
			f.show(Named(KeyError))
			content.Store(true)

			Convey("EndLoading hides every placeholder", func() {
				So(run(func(done Completion) { c.EndLoading(false, nil, done) }), ShouldEqual, Applied)
				So(f.host.visible(), ShouldBeEmpty)
				So(c.CurrentState(), ShouldEqual, Content)
			})

			Convey("Errors go to the hook", func() {
				err := errors.New("refresh failed")
				So(run(func(done Completion) { c.EndLoading(false, err, done) }), ShouldEqual, Applied)
				So(reported, ShouldResemble, []error{err})
				So(f.host.visible(), ShouldBeEmpty)
			})

			Convey("StartLoading keeps the content visible", func() {
				c.StartLoading(false, nil)
				So(c.LastState(), ShouldEqual, Content)
			})
		})

		Convey("An error after a delayed hide keeps the error panel", func() {
			So(f.show(Named(KeyLoading)), ShouldEqual, Applied)

			content.Store(true)
			hide, hideCh := completion()
			c.EndLoading(false, nil, hide)
			So(f.timers.active(), ShouldEqual, 1)

			content.Store(false)
			c.StartLoading(false, nil)
			So(run(func(done Completion) { c.EndLoading(false, errors.New("boom"), done) }), ShouldEqual, Applied)
			So(await(hideCh), ShouldEqual, Superseded)

			f.timers.Advance(time.Minute)
			time.Sleep(10 * time.Millisecond)
			So(f.host.visible(), ShouldResemble, []string{KeyError})
			So(c.LastState(), ShouldEqual, Error)
			So(c.CurrentState(), ShouldEqual, Error)
		})

		Convey("SetupInitialViewState restores the last state", func() {
			f.show(Named(KeyError))
			So(run(c.SetupInitialViewState), ShouldEqual, Unchanged)
			So(c.CurrentState(), ShouldEqual, Error)
		})

		Convey("Panels can be replaced", func() {
			p := &testPanel{name: "spinner"}
			c.SetLoadingPanel(p)
			So(f.scheduler.Panel(KeyLoading).MustGet(), ShouldEqual, p)

			c.SetEmptyPanel(nil)
			So(f.scheduler.Panel(KeyEmpty).IsAbsent(), ShouldBeTrue)

			c.SetErrorPanel(nil)
			So(f.scheduler.Keys(), ShouldResemble, []string{KeyLoading})
		})

		Convey("Custom placeholders can be shown", func() {
			offline := &testPanel{name: "offline"}
			f.scheduler.Register("offline", offline)

			So(run(func(done Completion) { c.Show("offline", false, done) }), ShouldEqual, Applied)
			So(c.CurrentState(), ShouldEqual, ViewState("offline"))
			So(f.host.visible(), ShouldResemble, []string{"offline"})
		})
	})

	Convey("View states map to identities", t, func() {
		So(Content.Identity(), ShouldResemble, None)
		So(Loading.Identity(), ShouldResemble, Named(KeyLoading))
		So(StateOf(None), ShouldEqual, Content)
		So(StateOf(Named("custom")), ShouldEqual, ViewState("custom"))
	})
}
