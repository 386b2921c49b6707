package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pikbatch/pikbatch/auth"
	"github.com/pikbatch/pikbatch/drive"
	"github.com/pikbatch/pikbatch/filesystem"
	"github.com/pikbatch/pikbatch/icon"
	"github.com/pikbatch/pikbatch/key"
	"github.com/pikbatch/pikbatch/network"
	"github.com/pikbatch/pikbatch/runner"
	"github.com/pikbatch/pikbatch/task"
	"github.com/pikbatch/pikbatch/util"
	"github.com/pikbatch/pikbatch/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayP("url", "u", nil, "Submit a bare magnet link instead of a task list; repeatable, named 任务<n>")
	runCmd.Flags().StringP("only", "o", "", "Submit only the tasks whose name fuzzy-matches the query")
	runCmd.Flags().String("failed-out", "", "Path of the failure list (default: failed.txt in the config directory)")
	runCmd.Flags().StringP("json", "j", "", "Also write the run summary as JSON to this path, - for stdout")
	runCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	runCmd.Flags().Int("delay", 1000, "Pause after every submission, in milliseconds")
	lo.Must0(viper.BindPFlag(key.SubmitDelay, runCmd.Flags().Lookup("delay")))

	runCmd.Flags().String("parent-id", "", "Target folder ID (default: drive root)")
	lo.Must0(viper.BindPFlag(key.DriveParentID, runCmd.Flags().Lookup("parent-id")))
}

var runCmd = &cobra.Command{
	Use:   "run [task list]",
	Short: "Submit every task of a task list to the drive's offline download",
	Long: `Submit magnet links one at a time, pausing after each, then report the outcome.

The task list is a text file of "# name" lines each followed by a magnet link,
or a JSON array of {"name","url"} objects or bare magnet links. Without an
argument the configured tasks.file, then tasks.txt in the config directory, is used.

Failed tasks are printed in the same text format and saved so they can be
submitted again with "pikbatch run <failure list>".`,
	Args: cobra.MaximumNArgs(1),
	Example: `  pikbatch run tasks.txt
  pikbatch run --url 'magnet:?xt=urn:btih:...' --url 'magnet:?xt=urn:btih:...'
  pikbatch run "$(pikbatch where --failed)"`,
	Run: func(cmd *cobra.Command, args []string) {
		tasks, err := resolveTasks(cmd, args)
		handleErr(err)

		tasks = task.Filter(tasks, lo.Must(cmd.Flags().GetString("only")))

		credentials := auth.Default()
		if _, err := auth.Token(credentials); runner.IsMissingCredential(err) {
			handleErr(err)
		}

		if len(tasks) > 0 && !lo.Must(cmd.Flags().GetBool("yes")) && util.IsInteractive() {
			var proceed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Submit %s to the drive?", util.Quantify(len(tasks), "task", "tasks")),
				Default: true,
			}, &proceed))
			if !proceed {
				return
			}
		}

		httpClient, err := network.NewClient()
		handleErr(err)

		out := cmd.OutOrStdout()
		r := &runner.Runner{
			Submitter: drive.NewClient(drive.Options{
				Endpoint:   viper.GetString(key.DriveEndpoint),
				ParentID:   viper.GetString(key.DriveParentID),
				UserAgent:  viper.GetString(key.NetworkUserAgent),
				HTTPClient: httpClient,
			}),
			Credentials: credentials,
			Delay:       time.Duration(viper.GetInt(key.SubmitDelay)) * time.Millisecond,
			Out:         out,
		}

		summary, err := r.Run(context.Background(), tasks)
		handleErr(err)
		handleErr(summary.Report(out))

		if len(summary.Failed) > 0 && viper.GetBool(key.FailedWrite) {
			path := failedPath(cmd).OrElse(where.Failed())
			handleErr(task.Save(path, summary.Failed))
			fmt.Fprintf(out, "\n%s 失败列表已保存到 %s\n", icon.Get(icon.Info), path)
		}

		if target := lo.Must(cmd.Flags().GetString("json")); target != "" {
			handleErr(writeJSON(target, summary))
		}
	},
}

func resolveTasks(cmd *cobra.Command, args []string) ([]task.Task, error) {
	if urls := lo.Must(cmd.Flags().GetStringArray("url")); len(urls) > 0 {
		tasks := task.FromURLs(urls)
		for _, t := range tasks {
			if err := t.Validate(); err != nil {
				return nil, err
			}
		}
		return tasks, nil
	}

	return task.Load(taskListPath(args))
}

func taskListPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if path := viper.GetString(key.TasksFile); path != "" {
		return path
	}
	return where.Tasks()
}

func failedPath(cmd *cobra.Command) mo.Option[string] {
	if path := lo.Must(cmd.Flags().GetString("failed-out")); path != "" {
		return mo.Some(path)
	}
	return mo.None[string]()
}

func writeJSON(target string, v any) error {
	var w io.Writer = os.Stdout
	if target != "-" {
		f, err := filesystem.API().Create(target)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
