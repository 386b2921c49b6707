package where

import (
	"path/filepath"
	"testing"

	"github.com/pikbatch/pikbatch/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			t.Setenv(EnvConfigPath, "/custom/pikbatch")
			So(Config(), ShouldEqual, "/custom/pikbatch")
			So(Tasks(), ShouldEqual, filepath.Join("/custom/pikbatch", "tasks.txt"))
			So(Failed(), ShouldEqual, filepath.Join("/custom/pikbatch", "failed.txt"))
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
