package cmd

import (
	"os"

	"github.com/statepane/statepane/color"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type location struct {
	flag  string
	label string
	path  func() string
	// listed locations are printed when no flag is given
	listed bool
}

var locations = []location{
	{"config", "Config directory", where.Config, true},
	{"sources", "Lua sources", where.Sources, true},
	{"logs", "Log files", where.Logs, true},
	{"history", "Saved targets", where.History, true},
	{"cache", "Cache directory", where.Cache, false},
	{"queries", "Target suggestions", where.Queries, false},
	{"temp", "Temp directory", where.Temp, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().Bool(l.flag, false, "Print only the "+l.label+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:     "where",
	Short:   "Print the paths statepane reads and writes",
	Example: "  statepane where --sources",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		label := style.New().Bold(true).Foreground(color.HiPurple).Width(20).Render
		for _, l := range lo.Filter(locations, func(l location, _ int) bool { return l.listed }) {
			cmd.Println(label(l.label) + l.path())
		}
		cmd.Println(style.Faint("More with --cache, --queries and --temp"))
	},
}
