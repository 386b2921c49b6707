// Package runner submits a list of magnet tasks to the drive one at a time.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pikbatch/pikbatch/auth"
	"github.com/pikbatch/pikbatch/drive"
	"github.com/pikbatch/pikbatch/log"
	"github.com/pikbatch/pikbatch/task"
)

// DefaultDelay is the pause after every submission.
const DefaultDelay = time.Second

// ErrMissingCredential aborts a run before the first submission.
var ErrMissingCredential = auth.ErrMissingCredential

// Submitter sends one magnet link to the drive.
type Submitter interface {
	Submit(ctx context.Context, token, magnet string) drive.Result
}

// Sleeper waits between submissions.
type Sleeper func(time.Duration)

// Runner holds everything a run needs. Zero values fall back to DefaultDelay,
// stdout, time.Sleep and auth.Default.
type Runner struct {
	Submitter   Submitter
	Credentials auth.Store
	Delay       time.Duration
	Out         io.Writer
	Sleep       Sleeper
}

// Run submits tasks in order and returns the summary.
//
// The only error is a missing or unreadable credential, checked before anything is sent.
// Every per-task failure is recorded in the summary and the run continues. The delay
// follows every task, the last one included.
func (r *Runner) Run(ctx context.Context, tasks []task.Task) (*Summary, error) {
	credentials := r.Credentials
	if credentials == nil {
		credentials = auth.Default()
	}

	token, err := auth.Token(credentials)
	if err != nil {
		return nil, err
	}

	out := r.out()
	sleep := r.sleeper()
	delay := r.delay()

	summary := &Summary{Failed: []task.Failed{}}
	total := len(tasks)

	if total > 0 {
		if _, err := fmt.Fprintf(out, "开始批量添加 %d 个任务...\n", total); err != nil {
			return nil, fmt.Errorf("write progress: %w", err)
		}
	}

	for i, t := range tasks {
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, total, t.Name)

		result := r.Submitter.Submit(ctx, token, t.URL)
		summary.Total++

		entry := log.WithFields(log.Fields{"task": t.Name, "position": i + 1, "kind": result.Kind.String()})
		if result.OK() {
			summary.Succeeded++
			entry.WithField("id", result.ID).Info("submitted")
			fmt.Fprintln(out, "  ✅ 成功")
		} else {
			summary.Failed = append(summary.Failed, task.Failed{Task: t, Reason: result.Reason})
			entry.WithField("reason", result.Reason).Warn("submission failed")
			fmt.Fprintf(out, "  ❌ 失败: %s\n", result.Reason)
		}

		sleep(delay)
	}

	return summary, nil
}

// IsMissingCredential reports whether err aborted a run for lack of a token.
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) sleeper() Sleeper {
	if r.Sleep == nil {
		return time.Sleep
	}
	return r.Sleep
}

func (r *Runner) delay() time.Duration {
	if r.Delay <= 0 {
		return DefaultDelay
	}
	return r.Delay
}
