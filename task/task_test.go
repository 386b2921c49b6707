package task

import (
	"strings"
	"testing"

	"github.com/pikbatch/pikbatch/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestFromURLs(t *testing.T) {
	Convey("Given a bare list of three magnet links", t, func() {
		urls := []string{"magnet:?xt=1", "magnet:?xt=2", "magnet:?xt=3"}

		Convey("Then they are named by position", func() {
			tasks := FromURLs(urls)
			So(tasks, ShouldHaveLength, 3)
			So(tasks[0], ShouldResemble, Task{Name: "任务1", URL: "magnet:?xt=1"})
			So(tasks[1].Name, ShouldEqual, "任务2")
			So(tasks[2].Name, ShouldEqual, "任务3")
		})
	})

	Convey("Given an empty list", t, func() {
		So(FromURLs(nil), ShouldBeEmpty)
	})
}

func TestNormalize(t *testing.T) {
	Convey("Names are kept and gaps filled positionally", t, func() {
		tasks := Normalize([]Task{
			{Name: " A ", URL: "magnet:?xt=1"},
			{URL: " magnet:?xt=2 "},
		})
		So(tasks[0].Name, ShouldEqual, "A")
		So(tasks[1], ShouldResemble, Task{Name: "任务2", URL: "magnet:?xt=2"})
	})

	Convey("Multi-line names are folded onto one line", t, func() {
		tasks := Normalize([]Task{{Name: "Cowboy\nBebop\r\n", URL: "magnet:?xt=1"}})
		So(tasks[0].Name, ShouldEqual, "Cowboy Bebop")
	})
}

func TestValidate(t *testing.T) {
	Convey("Only magnet:? links are accepted", t, func() {
		So(Task{Name: "ok", URL: "magnet:?xt=urn:btih:abc"}.Validate(), ShouldBeNil)
		So(Task{Name: "http", URL: "https://example.com/a.torrent"}.Validate(), ShouldNotBeNil)
		So(Task{Name: "bare", URL: "magnet:xt=1"}.Validate(), ShouldNotBeNil)
	})
}

func TestFilter(t *testing.T) {
	Convey("Given named tasks", t, func() {
		tasks := []Task{
			{Name: "犬夜叉 (2000)", URL: "magnet:?xt=1"},
			{Name: "Cowboy Bebop", URL: "magnet:?xt=2"},
			{Name: "Bleach", URL: "magnet:?xt=3"},
		}

		Convey("An empty query keeps everything", func() {
			So(Filter(tasks, "  "), ShouldHaveLength, 3)
		})

		Convey("A fuzzy query ignores case", func() {
			filtered := Filter(tasks, "bbop")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].Name, ShouldEqual, "Cowboy Bebop")
		})

		Convey("Non-latin names match too", func() {
			So(Filter(tasks, "犬夜"), ShouldHaveLength, 1)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given a task list in the text format", t, func() {
		input := `
# 犬夜叉 (2000)
magnet:?xt=urn:btih:aaa

# Cowboy Bebop
# 原因: quota
magnet:?xt=urn:btih:bbb
magnet:?xt=urn:btih:ccc
`
		tasks, err := Parse(strings.NewReader(input))

		Convey("Then every magnet becomes a task in order", func() {
			So(err, ShouldBeNil)
			So(tasks, ShouldHaveLength, 3)
			So(tasks[0], ShouldResemble, Task{Name: "犬夜叉 (2000)", URL: "magnet:?xt=urn:btih:aaa"})
			So(tasks[1], ShouldResemble, Task{Name: "Cowboy Bebop", URL: "magnet:?xt=urn:btih:bbb"})
		})

		Convey("Then an unnamed magnet gets its positional placeholder", func() {
			So(tasks[2].Name, ShouldEqual, "任务3")
		})
	})

	Convey("Given a header comment separated from the first block by a blank line", t, func() {
		tasks, err := Parse(strings.NewReader("# my anime backlog\n\n# A\nmagnet:?xt=1\n"))

		Convey("Then the header does not name the first magnet", func() {
			So(err, ShouldBeNil)
			So(tasks, ShouldResemble, []Task{{Name: "A", URL: "magnet:?xt=1"}})
		})
	})

	Convey("Given a lone comment before an unnamed magnet", t, func() {
		tasks, err := Parse(strings.NewReader("# notes\n\nmagnet:?xt=1\n"))
		So(err, ShouldBeNil)
		So(tasks[0].Name, ShouldEqual, "任务1")
	})

	Convey("Given a line that is neither comment nor magnet", t, func() {
		_, err := Parse(strings.NewReader("# A\nhttps://example.com\n"))

		Convey("Then the error names the line", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 2")
		})
	})

	Convey("Given a malformed magnet", t, func() {
		_, err := Parse(strings.NewReader("magnet:xt=1\n"))
		So(err, ShouldNotBeNil)
	})

	Convey("Given an empty input", t, func() {
		tasks, err := Parse(strings.NewReader(""))
		So(err, ShouldBeNil)
		So(tasks, ShouldBeEmpty)
	})
}

func TestParseJSON(t *testing.T) {
	Convey("Given named objects", t, func() {
		tasks, err := ParseJSON([]byte(`[{"name":"A","url":"magnet:?xt=1"},{"url":"magnet:?xt=2"}]`))
		So(err, ShouldBeNil)
		So(tasks, ShouldResemble, []Task{
			{Name: "A", URL: "magnet:?xt=1"},
			{Name: "任务2", URL: "magnet:?xt=2"},
		})
	})

	Convey("Given bare links", t, func() {
		tasks, err := ParseJSON([]byte(`["magnet:?xt=1","magnet:?xt=2","magnet:?xt=3"]`))
		So(err, ShouldBeNil)
		So(tasks, ShouldHaveLength, 3)
		So(tasks[2].Name, ShouldEqual, "任务3")
	})

	Convey("Given an empty array", t, func() {
		tasks, err := ParseJSON([]byte(`[]`))
		So(err, ShouldBeNil)
		So(tasks, ShouldBeEmpty)
	})

	Convey("Given invalid entries", t, func() {
		_, err := ParseJSON([]byte(`["magnet:?xt=1","http://nope"]`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "entry 2")
	})

	Convey("Given something other than an array", t, func() {
		_, err := ParseJSON([]byte(`{"name":"A"}`))
		So(err, ShouldNotBeNil)
	})
}

func TestRenderFailures(t *testing.T) {
	Convey("Given two failed tasks", t, func() {
		failed := []Failed{
			{Task: Task{Name: "B", URL: "magnet:?xt=2"}, Reason: "quota"},
			{Task: Task{Name: "C", URL: "magnet:?xt=3"}, Reason: "line one\nline two"},
		}
		text := RenderFailures(failed)

		Convey("Then each block has three lines separated by a blank line", func() {
			So(text, ShouldEqual, "# B\n# 原因: quota\nmagnet:?xt=2\n\n# C\n# 原因: line one line two\nmagnet:?xt=3")
		})

		Convey("Then the text parses back into the same tasks", func() {
			tasks, err := Parse(strings.NewReader(text))
			So(err, ShouldBeNil)
			So(tasks, ShouldResemble, []Task{failed[0].Task, failed[1].Task})
		})
	})

	Convey("Given a failed task whose name spans lines", t, func() {
		failed := []Failed{{Task: Task{Name: "Cowboy\nBebop", URL: "magnet:?xt=1"}, Reason: "quota"}}
		text := RenderFailures(failed)

		Convey("Then the name stays on its comment line and parses back", func() {
			So(text, ShouldStartWith, "# Cowboy Bebop\n")
			tasks, err := Parse(strings.NewReader(text))
			So(err, ShouldBeNil)
			So(tasks, ShouldResemble, []Task{{Name: "Cowboy Bebop", URL: "magnet:?xt=1"}})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given task lists on disk", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/lists/tasks.txt", []byte("# A\nmagnet:?xt=1\n"), 0644), ShouldBeNil)
		So(fs.WriteFile("/lists/tasks.JSON", []byte(`["magnet:?xt=9"]`), 0644), ShouldBeNil)

		Convey("Text files use the text parser", func() {
			tasks, err := Load("/lists/tasks.txt")
			So(err, ShouldBeNil)
			So(tasks[0].Name, ShouldEqual, "A")
		})

		Convey("JSON files use the JSON parser regardless of case", func() {
			tasks, err := Load("/lists/tasks.JSON")
			So(err, ShouldBeNil)
			So(tasks[0].Name, ShouldEqual, "任务1")
		})

		Convey("Missing files are reported", func() {
			_, err := Load("/lists/missing.txt")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Saved failure lists load back", t, func() {
		failed := []Failed{{Task: Task{Name: "B", URL: "magnet:?xt=2"}, Reason: "quota"}}
		So(Save("/out/failed.txt", failed), ShouldBeNil)

		tasks, err := Load("/out/failed.txt")
		So(err, ShouldBeNil)
		So(tasks, ShouldResemble, []Task{failed[0].Task})
	})
}
