package cmd

import (
	"fmt"

	"github.com/pikbatch/pikbatch/filesystem"
	"github.com/pikbatch/pikbatch/icon"
	"github.com/pikbatch/pikbatch/util"
	"github.com/pikbatch/pikbatch/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"failure list", "failed", mo.Some("f"), where.Failed},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("Remove the %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, logs or the last failure list",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			cleared = true
			handleErr(filesystem.API().RemoveAll(target.location()))
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
