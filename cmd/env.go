package cmd

import (
	"os"
	"strings"

	"github.com/statepane/statepane/color"
	"github.com/statepane/statepane/config"
	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set", "s", false, "Only variables that are set")
	envCmd.Flags().BoolP("unset", "u", false, "Only variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set", "unset")
}

// envNames returns every environment variable statepane reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(key string, _ int) string {
		return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(key))
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:     "env",
	Short:   "Show the environment variables that override configuration",
	Example: "  statepane env --set",
	Run: func(cmd *cobra.Command, args []string) {
		onlySet := lo.Must(cmd.Flags().GetBool("set"))
		onlyUnset := lo.Must(cmd.Flags().GetBool("unset"))

		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envNames() {
			value, ok := os.LookupEnv(env)
			if (onlySet && !ok) || (onlyUnset && ok) {
				continue
			}

			if ok {
				cmd.Printf("%s=%s\n", name(env), style.Fg(color.Green)(value))
			} else {
				cmd.Printf("%s %s\n", name(env), style.Faint("(unset)"))
			}
		}
	},
}
