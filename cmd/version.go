package cmd

import (
	"runtime"
	"strings"
	"text/template"

	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/style"
	"github.com/pikbatch/pikbatch/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git Commit" }}   {{ bold .Revision }}
  {{ faint "Build Date" }}   {{ bold .BuiltAt }}
  {{ faint "Built By" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), map[string]string{
			"App":      constant.App,
			"Version":  constant.Version,
			"Revision": constant.Revision,
			"BuiltAt":  strings.TrimSpace(constant.BuiltAt),
			"BuiltBy":  constant.BuiltBy,
			"OS":       runtime.GOOS,
			"Arch":     runtime.GOARCH,
		}))
	},
}
