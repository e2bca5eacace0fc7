package ui

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("It renders content unchanged without a notice", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("When an error is reported", func() {
			msg := NotifyError(errors.New("refresh failed"))()
			cmd := m.Update(msg)

			Convey("Then the notice is shown and a clear is scheduled", func() {
				So(cmd, ShouldNotBeNil)
				So(m.Notice(), ShouldContainSubstring, "refresh failed")
				So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			})

			Convey("Then a stale clear keeps a newer notice", func() {
				stale := ClearNoticeMsg{seq: m.seq}
				m.Update(NoticeMsg("newer"))
				m.Update(stale)
				So(m.Notice(), ShouldEqual, "newer")

				m.Update(ClearNoticeMsg{seq: m.seq})
				So(m.Notice(), ShouldBeEmpty)
			})
		})
	})
}
