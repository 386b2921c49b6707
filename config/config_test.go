package config

import (
	"testing"

	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/filesystem"
	"github.com/pikbatch/pikbatch/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name) || viper.Get(name) != nil, ShouldBeTrue)
			}
			So(viper.GetString(key.DriveEndpoint), ShouldEqual, constant.DriveFilesEndpoint)
			So(viper.GetString(key.DriveParentID), ShouldBeEmpty)
			So(viper.GetInt(key.SubmitDelay), ShouldEqual, 1000)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("submit.delay"), ShouldEqual, "submit_delay")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the submit delay field", t, func() {
		field := Default[key.SubmitDelay]

		Convey("Env should be prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "PIKBATCH_SUBMIT_DELAY")
		})

		Convey("MarshalJSON should report the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
		})
	})
}
