package cmd

import (
	"fmt"

	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/style"
	"github.com/pikbatch/pikbatch/task"
	"github.com/pikbatch/pikbatch/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.Flags().StringP("only", "o", "", "Only list tasks whose name fuzzy-matches the query")
	tasksCmd.Flags().BoolP("json", "j", false, "Print the tasks as a JSON array")
}

var tasksCmd = &cobra.Command{
	Use:   "tasks [task list]",
	Short: "Validate a task list and show what would be submitted",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tasks, err := task.Load(taskListPath(args))
		handleErr(err)

		tasks = task.Filter(tasks, lo.Must(cmd.Flags().GetString("only")))

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(writeJSON("-", tasks))
			return
		}

		width := len(fmt.Sprint(len(tasks)))
		for i, t := range tasks {
			cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%*d.", width, i+1)), style.Bold(t.Name))
			cmd.Printf("%*s %s\n", width+1, "", style.Fg(color.Cyan)(t.URL))
		}

		cmd.Println(style.Faint(util.Quantify(len(tasks), "task", "tasks")))
	},
}
