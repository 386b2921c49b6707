// Package main is the entry point for pikbatch.
package main

import (
	"github.com/pikbatch/pikbatch/cmd"
	"github.com/pikbatch/pikbatch/config"
	"github.com/pikbatch/pikbatch/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
