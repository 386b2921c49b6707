// Package task models the magnet submissions of a batch run and the text formats they travel in.
package task

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pikbatch/pikbatch/constant"
	"github.com/samber/lo"
)

// Task is one magnet link to submit, labelled for reporting.
type Task struct {
	// Name is the label used in progress lines and failure lists.
	Name string `json:"name" jsonschema:"description=Label used in progress and failure output"`
	// URL is the magnet link, always starting with magnet:?
	URL string `json:"url" jsonschema:"pattern=^magnet:\\?"`
}

func (t Task) String() string {
	return t.Name
}

// Placeholder returns the label given to the unnamed task at the 1-indexed position.
func Placeholder(position int) string {
	return fmt.Sprintf(constant.PlaceholderName, position)
}

// Validate checks the magnet prefix.
func (t Task) Validate() error {
	if !strings.HasPrefix(t.URL, constant.MagnetPrefix) {
		return fmt.Errorf("%s: not a magnet link: %q", t.Name, t.URL)
	}
	return nil
}

// FromURLs turns a bare list of magnet links into tasks named 任务1, 任务2, ...
func FromURLs(urls []string) []Task {
	return lo.Map(urls, func(url string, i int) Task {
		return Task{Name: Placeholder(i + 1), URL: url}
	})
}

// Normalize fills empty names with their positional placeholder, trims whitespace
// and folds multi-line names onto one line.
func Normalize(tasks []Task) []Task {
	return lo.Map(tasks, func(t Task, i int) Task {
		t.Name = strings.TrimSpace(oneLine(t.Name))
		t.URL = strings.TrimSpace(t.URL)
		if t.Name == "" {
			t.Name = Placeholder(i + 1)
		}
		return t
	})
}

// Filter keeps the tasks whose name fuzzy-matches query, ignoring case. An empty query keeps everything.
func Filter(tasks []Task, query string) []Task {
	query = strings.TrimSpace(query)
	if query == "" {
		return tasks
	}
	return lo.Filter(tasks, func(t Task, _ int) bool {
		return fuzzy.MatchFold(query, t.Name)
	})
}
