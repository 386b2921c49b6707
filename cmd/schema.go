package cmd

import (
	"github.com/invopop/jsonschema"
	"github.com/pikbatch/pikbatch/runner"
	"github.com/pikbatch/pikbatch/task"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("tasks", "t", false, "Print the schema of a JSON task list instead of the run summary")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the run summary or of a JSON task list",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("tasks")) {
			schema = reflector.Reflect([]task.Task{})
		} else {
			schema = reflector.Reflect(&runner.Summary{})
		}

		handleErr(writeJSON("-", schema))
	},
}
