package runner

import (
	"fmt"
	"io"

	"github.com/pikbatch/pikbatch/task"
)

// Summary is the aggregate outcome of a run.
type Summary struct {
	// Total is the number of tasks attempted.
	Total int `json:"total"`
	// Succeeded is the number of tasks the drive accepted.
	Succeeded int `json:"succeeded"`
	// Failed lists the rejected tasks in submission order.
	Failed []task.Failed `json:"failed"`
}

// Report writes the closing line and, when anything failed, the failure list and its
// copy-pasteable text.
func (s *Summary) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n完成！成功: %d, 失败: %d\n", s.Succeeded, len(s.Failed)); err != nil {
		return err
	}

	if len(s.Failed) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\n失败列表:"); err != nil {
		return err
	}
	for _, f := range s.Failed {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Name, f.Reason); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n失败列表文本（可复制保存）:\n%s\n", task.RenderFailures(s.Failed))
	return err
}
