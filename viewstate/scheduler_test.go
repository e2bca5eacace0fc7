package viewstate

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecisionTable(t *testing.T) {
	Convey("Given a scheduler with loading, error and empty panels", t, func() {
		f := newFixture()
		Reset(f.scheduler.Close)

		Convey("A loading request is delayed by toLoadingDelay", func() {
			ch := f.request(Named(KeyLoading), false)

			So(f.scheduler.PendingLoading(), ShouldBeTrue)
			So(f.scheduler.LastRequestedState(), ShouldResemble, Named(KeyLoading))
			So(f.scheduler.CurrentState(), ShouldResemble, None)

			f.timers.Advance(f.scheduler.ToLoadingDelay() - time.Millisecond)
			So(f.scheduler.PendingLoading(), ShouldBeTrue)
			So(f.host.visible(), ShouldBeEmpty)

			f.timers.Advance(time.Millisecond)
			So(f.scheduler.PendingLoading(), ShouldBeFalse)
			So(await(ch), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})
			So(f.scheduler.CurrentState(), ShouldResemble, Named(KeyLoading))
		})

		Convey("A second loading request replaces the pending one", func() {
			first := f.request(Named(KeyLoading), false)
			f.timers.Advance(f.scheduler.ToLoadingDelay() / 2)
			second := f.request(Named(KeyLoading), false)

			So(await(first), ShouldEqual, Superseded)
			So(f.scheduler.PendingLoading(), ShouldBeTrue)

			f.timers.Advance(f.scheduler.ToLoadingDelay() / 2)
			So(f.host.visible(), ShouldBeEmpty)

			f.timers.Advance(f.scheduler.ToLoadingDelay() / 2)
			So(await(second), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})
		})

		Convey("Other named keys are applied at once and cancel nothing", func() {
			loading := f.request(Named(KeyLoading), false)
			errCh := f.request(Named(KeyError), false)

			So(await(errCh), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyError})
			So(f.scheduler.PendingLoading(), ShouldBeTrue)
			So(f.timers.active(), ShouldEqual, 1)

			f.timers.Advance(f.scheduler.ToLoadingDelay())
			So(await(loading), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})
		})

		Convey("None after a pending loading request cancels it and is applied at once", func() {
			f.show(Named(KeyError))
			loading := f.request(Named(KeyLoading), false)
			none := f.request(None, false)

			So(f.scheduler.PendingLoading(), ShouldBeFalse)
			So(await(loading), ShouldEqual, Superseded)
			So(await(none), ShouldEqual, Applied)
			So(f.host.visible(), ShouldBeEmpty)
			So(f.host.hasContainer(), ShouldBeFalse)
			So(f.timers.active(), ShouldEqual, 0)
		})

		Convey("None while loading is visible is delayed by fromLoadingDelay", func() {
			So(f.show(Named(KeyLoading)), ShouldEqual, Applied)

			none := f.request(None, false)
			So(f.timers.active(), ShouldEqual, 1)

			f.timers.Advance(f.scheduler.FromLoadingDelay() - time.Millisecond)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})

			f.timers.Advance(time.Millisecond)
			So(await(none), ShouldEqual, Applied)
			So(f.host.visible(), ShouldBeEmpty)
		})

		Convey("A second None request replaces the pending one", func() {
			f.show(Named(KeyLoading))

			first := f.request(None, false)
			second := f.request(None, false)

			So(await(first), ShouldEqual, Superseded)
			f.timers.Advance(f.scheduler.FromLoadingDelay())
			So(await(second), ShouldEqual, Applied)
		})

		Convey("None is applied at once when loading is not involved", func() {
			f.show(Named(KeyEmpty))
			So(await(f.request(None, false)), ShouldEqual, Applied)
			So(f.timers.active(), ShouldEqual, 0)
		})

		Convey("None after another key keeps an earlier pending loading request", func() {
			loading := f.request(Named(KeyLoading), false)
			So(await(f.request(Named(KeyError), false)), ShouldEqual, Applied)
			So(f.scheduler.PendingLoading(), ShouldBeTrue)

			So(await(f.request(None, false)), ShouldEqual, Applied)
			So(f.scheduler.PendingLoading(), ShouldBeFalse)
			So(f.timers.active(), ShouldEqual, 1)
			So(f.host.visible(), ShouldBeEmpty)

			f.timers.Advance(f.scheduler.ToLoadingDelay())
			So(await(loading), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})
			So(f.scheduler.LastRequestedState(), ShouldResemble, None)
			So(f.scheduler.CurrentState(), ShouldResemble, Named(KeyLoading))
		})

		Convey("A zero toLoadingDelay enqueues loading directly", func() {
			f.scheduler.SetToLoadingDelay(0)
			ch := f.request(Named(KeyLoading), false)

			So(f.scheduler.PendingLoading(), ShouldBeFalse)
			So(await(ch), ShouldEqual, Applied)
			So(f.timers.active(), ShouldEqual, 0)
		})

		Convey("A timer that fires after being cancelled is ignored", func() {
			f.timers.ignoreStop = true

			loading := f.request(Named(KeyLoading), false)
			none := f.request(None, false)

			So(await(loading), ShouldEqual, Superseded)
			So(await(none), ShouldEqual, Unchanged)

			f.timers.Advance(f.scheduler.ToLoadingDelay())
			time.Sleep(10 * time.Millisecond)
			So(f.host.visible(), ShouldBeEmpty)
			So(f.scheduler.CurrentState(), ShouldResemble, None)
		})
	})
}

func TestScheduler(t *testing.T) {
	Convey("Given a scheduler with loading, error and empty panels", t, func() {
		f := newFixture()
		Reset(f.scheduler.Close)

		Convey("It leaves at most one registered panel attached", func() {
			targets := []Identity{
				Named(KeyLoading), Named(KeyError), Named(KeyEmpty), None, Named(KeyError), Named(KeyEmpty),
			}
			for _, target := range targets {
				f.show(target)
				So(len(f.host.visible()), ShouldBeLessThanOrEqualTo, 1)
			}
		})

		Convey("Requesting the current identity changes nothing", func() {
			So(f.show(Named(KeyError)), ShouldEqual, Applied)
			before := f.host.opsCount()

			So(f.show(Named(KeyError)), ShouldEqual, Unchanged)
			So(f.host.opsSince(before), ShouldBeEmpty)
			So(f.scheduler.CurrentState(), ShouldResemble, Named(KeyError))

			Convey("Including None when nothing is shown", func() {
				So(f.show(None), ShouldEqual, Applied)
				before := f.host.opsCount()
				So(f.show(None), ShouldEqual, Unchanged)
				So(f.host.opsSince(before), ShouldBeEmpty)
			})
		})

		Convey("Scenario: loading, error, none, empty", func() {
			So(f.show(Named(KeyLoading)), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})

			So(f.show(Named(KeyError)), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyError})

			So(f.show(None), ShouldEqual, Applied)
			So(f.host.visible(), ShouldBeEmpty)
			So(f.host.hasContainer(), ShouldBeFalse)

			So(f.show(Named(KeyEmpty)), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyEmpty})
			So(f.host.hasContainer(), ShouldBeTrue)
		})

		Convey("Scenario: a quick load never shows loading", func() {
			loading := f.request(Named(KeyLoading), true)
			none := f.request(None, true)

			So(await(none), ShouldEqual, Unchanged)
			So(await(loading), ShouldEqual, Superseded)

			f.timers.Advance(time.Minute)
			So(f.host.opsCount(), ShouldEqual, 0)
		})

		Convey("Scenario: visible loading is held before hiding", func() {
			So(f.show(Named(KeyLoading)), ShouldEqual, Applied)

			none := f.request(None, false)
			So(f.scheduler.LastRequestedState(), ShouldResemble, None)
			So(f.scheduler.CurrentState(), ShouldResemble, Named(KeyLoading))

			select {
			case r := <-none:
				So(r, ShouldEqual, noResult)
			case <-time.After(10 * time.Millisecond):
			}

			f.timers.Advance(f.scheduler.FromLoadingDelay())
			So(await(none), ShouldEqual, Applied)
			So(f.scheduler.CurrentState(), ShouldResemble, None)
		})

		Convey("Last requested state is synchronous, current state follows application", func() {
			f.host.hold = true

			ch := f.request(Named(KeyEmpty), true)
			So(f.scheduler.LastRequestedState(), ShouldResemble, Named(KeyEmpty))

			So(eventually(func() bool { return f.host.heldAnimations() == 1 }), ShouldBeTrue)
			So(f.scheduler.CurrentState(), ShouldResemble, Named(KeyEmpty))

			f.host.finishAnimations()
			So(await(ch), ShouldEqual, Applied)
		})

		Convey("Unregistering a visible panel keeps it attached", func() {
			f.show(Named(KeyError))
			f.scheduler.Unregister(KeyError)

			So(f.show(Named(KeyEmpty)), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyEmpty, KeyError})

			So(f.show(None), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyError})

			Convey("And requesting it again shows no panel", func() {
				So(f.show(Named(KeyError)), ShouldEqual, Applied)
				So(f.host.visible(), ShouldResemble, []string{KeyError})
				So(f.host.hasContainer(), ShouldBeTrue)
			})
		})

		Convey("An unregistered key still completes and detaches the others", func() {
			f.show(Named(KeyEmpty))

			So(f.show(Named("offline")), ShouldEqual, Applied)
			So(f.host.visible(), ShouldBeEmpty)
			So(f.host.hasContainer(), ShouldBeTrue)
			So(f.scheduler.CurrentState(), ShouldResemble, Named("offline"))
		})

		Convey("Animated transitions are applied one at a time", func() {
			f.host.hold = true

			first := f.request(Named(KeyError), true)
			So(eventually(func() bool { return f.host.heldAnimations() == 1 }), ShouldBeTrue)

			second := f.request(Named(KeyEmpty), true)
			time.Sleep(10 * time.Millisecond)
			So(f.host.heldAnimations(), ShouldEqual, 1)
			So(f.host.visible(), ShouldResemble, []string{KeyError})

			f.host.finishAnimations()
			So(await(first), ShouldEqual, Applied)

			So(eventually(func() bool { return f.host.heldAnimations() == 1 }), ShouldBeTrue)
			f.host.finishAnimations()
			So(await(second), ShouldEqual, Applied)
			So(f.host.visible(), ShouldResemble, []string{KeyEmpty})
		})

		Convey("An animated show fades the panel in", func() {
			panel := f.panels[KeyEmpty]
			panel.insets = Insets{Top: 2, Left: 1}

			before := f.host.opsCount()
			So(await(f.request(Named(KeyEmpty), true)), ShouldEqual, Applied)
			So(f.host.opsSince(before), ShouldResemble, []string{
				"attach container",
				"opacity empty 0",
				"attach empty",
				"opacity empty 1",
				"detach error",
				"detach loading",
			})
			So(f.host.attached[panel], ShouldResemble, Insets{Top: 2, Left: 1})
		})

		Convey("Hiding fades out and detaches every registered panel", func() {
			f.show(Named(KeyError))
			before := f.host.opsCount()

			So(await(f.request(None, true)), ShouldEqual, Applied)
			So(f.host.opsSince(before), ShouldResemble, []string{
				"opacity empty 0",
				"opacity error 0",
				"opacity loading 0",
				"detach empty",
				"detach error",
				"detach loading",
				"detach container",
			})
		})

		Convey("Requests are applied in order", func() {
			targets := []Identity{Named(KeyError), Named(KeyEmpty), Named("a"), Named("b"), Named(KeyError)}
			var chans []<-chan Result
			for _, target := range targets {
				chans = append(chans, f.request(target, false))
			}
			for _, ch := range chans {
				So(await(ch), ShouldEqual, Applied)
			}
			So(f.scheduler.CurrentState(), ShouldResemble, Named(KeyError))
		})
	})
}

func TestSchedulerLifecycle(t *testing.T) {
	Convey("Given a scheduler with an observer", t, func() {
		obs := &recordingObserver{}
		f := newFixture(WithObserver(obs), WithToLoadingDelay(time.Second), WithFromLoadingDelay(2*time.Second))
		Reset(f.scheduler.Close)

		Convey("Options are applied", func() {
			So(f.scheduler.ToLoadingDelay(), ShouldEqual, time.Second)
			So(f.scheduler.FromLoadingDelay(), ShouldEqual, 2*time.Second)
			So(f.scheduler.Keys(), ShouldResemble, []string{KeyEmpty, KeyError, KeyLoading})
		})

		Convey("It reports every request and its result", func() {
			f.show(Named(KeyLoading))
			none := f.request(None, false)
			f.timers.Advance(2 * time.Second)
			So(await(none), ShouldEqual, Applied)

			requested, applied, finished := obs.snapshot()
			So(requested, ShouldResemble, []string{"loading 1s", "none 2s"})
			So(applied, ShouldResemble, []string{"none->loading", "loading->none"})
			So(finished, ShouldResemble, []string{"loading applied", "none applied"})
		})

		Convey("The registry can be edited", func() {
			custom := &testPanel{name: "custom"}
			f.scheduler.SetPanel("custom", custom)
			So(f.scheduler.Panel("custom").MustGet(), ShouldEqual, custom)

			f.scheduler.SetPanel("custom", nil)
			So(f.scheduler.Panel("custom").IsAbsent(), ShouldBeTrue)
		})

		Convey("CancelPendingLoading drops a loading request that was not started", func() {
			loading := f.request(Named(KeyLoading), false)

			So(f.scheduler.CancelPendingLoading(), ShouldBeTrue)
			So(f.scheduler.PendingLoading(), ShouldBeFalse)
			So(await(loading), ShouldEqual, Superseded)
			So(f.scheduler.CancelPendingLoading(), ShouldBeFalse)

			f.timers.Advance(time.Minute)
			So(f.host.opsCount(), ShouldEqual, 0)
		})

		Convey("CancelPendingHide drops a None request that was not started", func() {
			f.show(Named(KeyLoading))
			none := f.request(None, false)

			So(f.scheduler.CancelPendingHide(), ShouldBeTrue)
			So(await(none), ShouldEqual, Superseded)
			So(f.scheduler.CancelPendingHide(), ShouldBeFalse)

			f.timers.Advance(f.scheduler.FromLoadingDelay())
			time.Sleep(10 * time.Millisecond)
			So(f.host.visible(), ShouldResemble, []string{KeyLoading})
		})

		Convey("When closed", func() {
			f.show(Named(KeyError))
			loading := f.request(Named(KeyLoading), false)
			f.scheduler.Close()

			Convey("Pending requests are discarded", func() {
				So(await(loading), ShouldEqual, Discarded)
				So(f.timers.active(), ShouldEqual, 0)
			})

			Convey("New requests are discarded", func() {
				So(await(f.request(Named(KeyEmpty), false)), ShouldEqual, Discarded)
				So(f.host.visible(), ShouldResemble, []string{KeyError})
			})

			Convey("Closing again is harmless", func() {
				f.scheduler.Close()
				So(f.scheduler.PendingLoading(), ShouldBeFalse)
			})
		})
	})

	Convey("New panics without a host", t, func() {
		So(func() { New(nil) }, ShouldPanic)
	})
}
