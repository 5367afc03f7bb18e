// file: cmd/score.go
// version: 1.0.0
// guid: 63c0a195-afb7-4a78-bb20-137bc214924f

package cmd

import (
	"fmt"
	"strconv"

	"github.com/jdfalk/spotlight/internal/config"
	"github.com/jdfalk/spotlight/internal/metrics"
	"github.com/jdfalk/spotlight/internal/similarity"
	"github.com/spf13/cobra"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score METRIC A B",
	Short: "Print the raw score of one pair of strings",
	Long: `Score A against B with the named metric exactly as given. No case folding
is applied, so this shows what the metric itself returns.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(config.AppConfig)
		if err != nil {
			return err
		}

		metric, err := engine.Lookup(args[0])
		if err != nil {
			return err
		}
		if err := similarity.Validate(args[1], args[2]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(metric.Score(args[1], args[2]), 'g', -1, 64))
		return nil
	},
}

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List registered similarity metrics",
	Long: `List the registered similarity metrics. The active one is marked with *.
With --prometheus, dump the process instrumentation in the Prometheus text
format instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(config.AppConfig)
		if err != nil {
			return err
		}

		if dump, _ := cmd.Flags().GetBool("prometheus"); dump {
			return metrics.WriteText(cmd.OutOrStdout())
		}

		active := engine.ActiveMetricName()
		for _, name := range engine.Names() {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	metricsCmd.Flags().Bool("prometheus", false, "print Prometheus metrics instead of the metric names")
}
