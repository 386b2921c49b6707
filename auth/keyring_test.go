package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

type brokenStore struct{}

func (brokenStore) Get(string) (string, error) {
	return "", errors.New("dbus unavailable")
}

func TestToken(t *testing.T) {
	Convey("Given a mocked keyring", t, func() {
		keyring.MockInit()
		t.Setenv(EnvToken, "")

		Convey("When no token is stored", func() {
			_, err := Token(Default())

			Convey("Then the credential is missing", func() {
				So(errors.Is(err, ErrMissingCredential), ShouldBeTrue)
			})
		})

		Convey("When a token is stored", func() {
			So(SetToken("  secret-token\n"), ShouldBeNil)

			Convey("Then it is returned trimmed", func() {
				token, err := Token(Default())
				So(err, ShouldBeNil)
				So(token, ShouldEqual, "secret-token")
			})

			Convey("Then the environment overrides it", func() {
				t.Setenv(EnvToken, "from-env")
				token, err := Token(Default())
				So(err, ShouldBeNil)
				So(token, ShouldEqual, "from-env")
			})

			Convey("Then deleting it makes the credential missing again", func() {
				So(DeleteToken(), ShouldBeNil)
				_, err := Token(Default())
				So(errors.Is(err, ErrMissingCredential), ShouldBeTrue)

				Convey("And deleting it twice is harmless", func() {
					So(DeleteToken(), ShouldBeNil)
				})
			})
		})

		Convey("When the store itself fails", func() {
			_, err := Token(brokenStore{})

			Convey("Then the failure is not mistaken for a missing credential", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrMissingCredential), ShouldBeFalse)
			})
		})
	})
}
