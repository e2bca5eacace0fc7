package version

import (
	"context"
	"fmt"
	"time"

	"github.com/statepane/statepane/color"
	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists. Failures are only logged.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()

	if err != nil {
		log.Warnf("version check: %v", err)
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
		style.Faint("https://github.com/statepane/statepane/releases/tag/v"+latest),
	)
}
