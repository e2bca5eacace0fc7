package main

import (
	"github.com/statepane/statepane/cmd"
	"github.com/statepane/statepane/config"
	"github.com/statepane/statepane/internal/cache"
	"github.com/statepane/statepane/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
