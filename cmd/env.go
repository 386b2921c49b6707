package cmd

import (
	"os"

	"github.com/pikbatch/pikbatch/auth"
	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/config"
	"github.com/pikbatch/pikbatch/style"
	"github.com/pikbatch/pikbatch/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// supportedEnv lists every variable the application reads.
func supportedEnv() []string {
	names := []string{where.EnvConfigPath, auth.EnvToken}
	for _, k := range config.EnvExposed {
		field := config.Default[k]
		names = append(names, field.Env())
	}

	slices.Sort(names)
	return slices.Compact(names)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range supportedEnv() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if env == auth.EnvToken && present {
				value = maskToken(value)
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
