package cmd

import (
	"context"
	"os"

	"github.com/statepane/statepane/inline"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/provider/custom"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Load a target with a local Lua source",
	Long: `Compile a Lua source that is not installed and load --target with it.
Useful while writing a source.`,
	Args:    cobra.ExactArgs(1),
	Example: "  statepane run ./source.lua --target hello",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)

		handleErr(inline.Run(context.Background(), &inline.Options{
			Out:              os.Stdout,
			Source:           src,
			Target:           viper.GetString(key.SourcesTarget),
			ToLoadingDelay:   viper.GetDuration(key.ViewstateToLoadingDelay),
			FromLoadingDelay: viper.GetDuration(key.ViewstateFromLoadingDelay),
		}))
	},
}
