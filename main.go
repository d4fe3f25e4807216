// Package main is the entry point for the kata application.
package main

import (
	"github.com/kata-cli/kata/cmd"
	"github.com/kata-cli/kata/config"
	"github.com/kata-cli/kata/internal/cache"
	"github.com/kata-cli/kata/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired cache entries without blocking startup.
	go cache.CollectGarbage()

	cmd.Execute()
}
