package drive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// object is the part of a file or task object we read. Every field is optional.
type object struct {
	ID     string `json:"id"`
	FileID string `json:"file_id"`
	Name   string `json:"name"`
	Phase  string `json:"phase"`
}

const maxRawReason = 200

// Classify turns a response body into a Result.
//
// A body is a success only when "file" or "task" holds a JSON object. Anything else is a
// failure whose reason is "error", then "error_description", then the compacted body.
func Classify(body []byte) Result {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Failure(KindMalformed, "empty response")
	}
	if !json.Valid(trimmed) {
		return Failure(KindMalformed, "invalid JSON response: "+truncate(string(trimmed)))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil || fields == nil {
		return Failure(KindMalformed, serialized(trimmed))
	}

	if file, ok := asObject(fields["file"]); ok {
		return Success(file.ID)
	}
	if task, ok := asObject(fields["task"]); ok {
		if task.FileID != "" {
			return Success(task.FileID)
		}
		return Success(task.ID)
	}

	for _, name := range []string{"error", "error_description"} {
		if reason, ok := asReason(fields[name]); ok {
			return Failure(KindAPIError, reason)
		}
	}

	return Failure(KindMalformed, serialized(body))
}

func asObject(raw json.RawMessage) (object, bool) {
	var o object
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return o, false
	}
	if err := json.Unmarshal(trimmed, &o); err != nil {
		// ids of an unexpected type don't make the object unrecognizable
		return object{}, true
	}
	return o, true
}

// asReason accepts non-empty strings and, for non-string values, their JSON text.
func asReason(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, s != ""
	}
	return string(trimmed), true
}

func serialized(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxRawReason {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s... (%d bytes)", string(runes[:maxRawReason]), len(s))
}
