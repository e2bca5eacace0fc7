// Package cmd implements the statepane command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/provider"
	"github.com/statepane/statepane/query"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/tui"
	"github.com/statepane/statepane/util"
	"github.com/statepane/statepane/version"
	"github.com/statepane/statepane/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember targets that loaded content")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Source to load from")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completeSources))
	lo.Must0(viper.BindPFlag(key.SourcesDefault, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.PersistentFlags().StringP("target", "t", "", "Target passed to the source")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("target", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.SourcesTarget, rootCmd.PersistentFlags().Lookup("target")))

	rootCmd.Flags().BoolP("continue", "c", false, "Reload the most recently loaded target")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func completeSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Placeholder panels for content that loads, fails or comes back empty",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.AccentColor).Render("    - Loading, error and empty placeholders without the flicker"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Target:   viper.GetString(key.SourcesTarget),
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}

		// sources.default always has a value, only an explicit choice skips the sources screen
		if cmd.Flags().Changed("source") {
			options.Source = viper.GetString(key.SourcesDefault)
		}

		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
