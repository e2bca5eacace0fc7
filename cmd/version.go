package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/statepane/statepane/color"
	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)(constant.App), style.Bold(constant.Version))

		field := style.New().Faint(true).Width(12).Render
		for _, row := range [][2]string{
			{"commit", constant.Revision},
			{"built", strings.TrimSpace(constant.BuiltAt)},
			{"built by", constant.BuiltBy},
			{"platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			{"go", runtime.Version()},
		} {
			cmd.Printf("  %s%s\n", field(row[0]), row[1])
		}
	},
}
