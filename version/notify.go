package version

import (
	"fmt"

	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/key"
	"github.com/pikbatch/pikbatch/style"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists. Disabled unless cli.version_check is set.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		return
	}
	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/pikbatch/pikbatch/releases/tag/v"+latest),
	)
}
