package task

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/filesystem"
)

const maxLine = 10 * 1024 * 1024

// Parse reads the text task list format:
//
//	# <name>
//	# 原因: <annotation>
//	magnet:?xt=...
//
// The first comment of a block names the next magnet and later comments are ignored.
// A blank line ends the block, so a comment followed by a blank line names nothing.
// A magnet without a name gets its positional placeholder.
func Parse(r io.Reader) ([]Task, error) {
	var (
		tasks   []Task
		name    string
		named   bool
		lineNum int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			name, named = "", false
		case strings.HasPrefix(line, "#"):
			if !named {
				name = strings.TrimSpace(strings.TrimPrefix(line, "#"))
				named = true
			}
		case strings.HasPrefix(line, "magnet:"):
			t := Task{Name: name, URL: line}
			if !named || t.Name == "" {
				t.Name = Placeholder(len(tasks) + 1)
			}
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			tasks = append(tasks, t)
			name, named = "", false
		default:
			return nil, fmt.Errorf("line %d: expected a \"# name\" comment or a magnet link, got %q", lineNum, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task list: %w", err)
	}

	return tasks, nil
}

// ParseJSON accepts either an array of {name, url} objects or an array of bare magnet links.
func ParseJSON(data []byte) ([]Task, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("task list must be a JSON array: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var tasks []Task
	if bytes.HasPrefix(bytes.TrimSpace(raw[0]), []byte(`"`)) {
		var urls []string
		if err := json.Unmarshal(data, &urls); err != nil {
			return nil, fmt.Errorf("mixed task list: %w", err)
		}
		tasks = FromURLs(urls)
	} else {
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("mixed task list: %w", err)
		}
		tasks = Normalize(tasks)
	}

	var errs []error
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return tasks, nil
}

// Load reads a task list from path, choosing the JSON parser for .json files.
func Load(path string) ([]Task, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load task list: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return Parse(bytes.NewReader(data))
}

// Failed pairs a task with the reason its submission failed.
type Failed struct {
	Task
	Reason string `json:"reason"`
}

// RenderFailures formats failed tasks so the text can be pasted back into a task list verbatim.
func RenderFailures(failed []Failed) string {
	blocks := make([]string, len(failed))
	for i, f := range failed {
		blocks[i] = fmt.Sprintf("# %s\n# %s%s\n%s", oneLine(f.Name), constant.ReasonPrefix, oneLine(f.Reason), f.URL)
	}
	return strings.Join(blocks, "\n\n")
}

// Save writes the rendered failure list to path, replacing any previous content.
func Save(path string, failed []Failed) error {
	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save failure list: %w", err)
	}
	if err := fs.WriteFile(path, []byte(RenderFailures(failed)+"\n"), 0644); err != nil {
		return fmt.Errorf("save failure list: %w", err)
	}
	return nil
}

// oneLine keeps a multi-line name or reason inside its comment line.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
