package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestToken(t *testing.T) {
	keyring.MockInit()

	Convey("Given a mocked keyring", t, func() {
		Convey("A missing token is empty", func() {
			token, err := GetToken("nothing")
			So(err, ShouldBeNil)
			So(token, ShouldBeEmpty)
		})

		Convey("Tokens are stored per source", func() {
			So(SetToken("http", "secret"), ShouldBeNil)
			So(SetToken("other", "another"), ShouldBeNil)

			token, err := GetToken("http")
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "secret")

			So(DeleteToken("http"), ShouldBeNil)
			token, err = GetToken("http")
			So(err, ShouldBeNil)
			So(token, ShouldBeEmpty)

			So(DeleteToken("http"), ShouldBeNil)
		})
	})
}
