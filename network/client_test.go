package network

import (
	"net/http"
	"testing"
	"time"

	"github.com/pikbatch/pikbatch/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNewClient(t *testing.T) {
	Convey("Given the network configuration", t, func() {
		viper.Set(key.NetworkTimeout, 15)
		viper.Set(key.NetworkProxy, "")

		Convey("A direct client uses the configured timeout", func() {
			client, err := NewClient()
			So(err, ShouldBeNil)
			So(client.Timeout, ShouldEqual, 15*time.Second)
		})

		Convey("An http proxy is installed on the transport", func() {
			viper.Set(key.NetworkProxy, "http://127.0.0.1:10101")
			client, err := NewClient()
			So(err, ShouldBeNil)

			req, _ := http.NewRequest(http.MethodPost, "https://example.com", nil)
			u, err := client.Transport.(*http.Transport).Proxy(req)
			So(err, ShouldBeNil)
			So(u.Host, ShouldEqual, "127.0.0.1:10101")
		})

		Convey("A socks5 proxy replaces the dialer", func() {
			viper.Set(key.NetworkProxy, "socks5://127.0.0.1:1080")
			client, err := NewClient()
			So(err, ShouldBeNil)
			So(client.Transport.(*http.Transport).DialContext, ShouldNotBeNil)
		})

		Convey("Unknown schemes are rejected", func() {
			viper.Set(key.NetworkProxy, "ftp://127.0.0.1:21")
			_, err := NewClient()
			So(err, ShouldNotBeNil)
		})

		Reset(func() {
			viper.Set(key.NetworkProxy, "")
		})
	})
}
