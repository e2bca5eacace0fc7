package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/inline"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/metrics"
	"github.com/statepane/statepane/provider"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().BoolP("json", "j", false, "Print the outcome as JSON")
	inlineCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")
	inlineCmd.Flags().Bool("metrics", false, "Print transition metrics to stderr in the Prometheus text format")
	inlineCmd.Flags().Bool("no-animate", false, "Apply transitions without animation")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Load a target once without the terminal UI",
	Long: `Load a target through the placeholder scheduler and print the transitions it went through,
the final state and the loaded items.

The command exits with status 1 when the load fails, after printing the output.`,
	Example: `  statepane inline --source demo --target items=5@2s
  statepane inline --source http --target https://example.com/items.json --json`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(inline.Schema()))
			return
		}

		src, err := createSource(viper.GetString(key.SourcesDefault))
		handleErr(err)

		var out io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			out = f
		}

		options := &inline.Options{
			Out:              out,
			Source:           src,
			Target:           viper.GetString(key.SourcesTarget),
			Json:             lo.Must(cmd.Flags().GetBool("json")),
			Animate:          viper.GetBool(key.ViewstateAnimate) && !lo.Must(cmd.Flags().GetBool("no-animate")),
			ToLoadingDelay:   viper.GetDuration(key.ViewstateToLoadingDelay),
			FromLoadingDelay: viper.GetDuration(key.ViewstateFromLoadingDelay),
		}

		var registry *prometheus.Registry
		if lo.Must(cmd.Flags().GetBool("metrics")) {
			registry = prometheus.NewRegistry()
			options.Metrics = registry
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = inline.Run(ctx, options)

		if registry != nil {
			handleErr(metrics.Write(os.Stderr, registry))
		}

		if errors.Is(err, inline.ErrLoad) {
			stop()
			os.Exit(1)
		}
		handleErr(err)
	},
}

func createSource(name string) (source.Source, error) {
	if name == "" {
		return nil, errors.New("source not set, use --source or sources.default")
	}

	p, ok := provider.Get(name)
	if !ok {
		return nil, fmt.Errorf("source not found: %s", name)
	}

	return p.CreateSource()
}
