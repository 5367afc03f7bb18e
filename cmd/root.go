// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jdfalk/spotlight/internal/config"
	"github.com/jdfalk/spotlight/internal/matcher"
	"github.com/jdfalk/spotlight/internal/metrics"
	"github.com/jdfalk/spotlight/internal/similarity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotlight",
	Short: "Rank strings by similarity to a query",
	Long: `Spotlight scores a list of candidate strings against a query with one of
several similarity metrics (longest common subsequence, normalized Levenshtein,
Smith-Waterman local alignment) and prints the best matches first.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		metrics.Register()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("print_metrics") {
			return nil
		}
		return metrics.WriteText(cmd.ErrOrStderr())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spotlight.yaml)")
	rootCmd.PersistentFlags().String("metric", similarity.NameLCS, "active similarity metric")
	rootCmd.PersistentFlags().Bool("ignore-case", true, "fold case before comparing")
	rootCmd.PersistentFlags().String("units", similarity.CodePoints.String(), "text units compared: codepoints or graphemes")
	rootCmd.PersistentFlags().Bool("extra-metrics", false, "also register the subsequence and fuzzyFind metrics")
	rootCmd.PersistentFlags().Duration("score-cache-ttl", 0, "memoize scores for this long (0 disables the cache)")
	rootCmd.PersistentFlags().Int("score-cache-size", 4096, "maximum number of memoized scores")
	rootCmd.PersistentFlags().Bool("print-metrics", false, "write Prometheus metrics to stderr on exit")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(configCmd)
}

// bindFlags runs on every initialization so a viper.Reset does not lose the bindings.
func bindFlags() {
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))
	viper.BindPFlag("ignore_case", rootCmd.PersistentFlags().Lookup("ignore-case"))
	viper.BindPFlag("units", rootCmd.PersistentFlags().Lookup("units"))
	viper.BindPFlag("extra_metrics", rootCmd.PersistentFlags().Lookup("extra-metrics"))
	viper.BindPFlag("score_cache_ttl", rootCmd.PersistentFlags().Lookup("score-cache-ttl"))
	viper.BindPFlag("score_cache_size", rootCmd.PersistentFlags().Lookup("score-cache-size"))
	viper.BindPFlag("print_metrics", rootCmd.PersistentFlags().Lookup("print-metrics"))
	viper.BindPFlag("limit", searchCmd.Flags().Lookup("limit"))
	viper.BindPFlag("show_scores", searchCmd.Flags().Lookup("scores"))
}

func initConfig() {
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spotlight")
	}

	viper.SetEnvPrefix("spotlight")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("[INFO] Using config file: %s", viper.ConfigFileUsed())
	}

	config.InitConfig()
}

// newEngine builds a ranking engine from the application configuration.
func newEngine(cfg config.Config) (*matcher.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	units, err := similarity.ParseUnits(cfg.Units)
	if err != nil {
		return nil, err
	}

	opts := []matcher.EngineOption{
		matcher.WithUnits(units),
		matcher.WithIgnoreCase(cfg.IgnoreCase),
	}
	if cfg.ExtraMetrics {
		opts = append(opts, matcher.WithExtraMetrics())
	}
	if cfg.ScoreCacheTTL > 0 {
		opts = append(opts, matcher.WithScoreCache(cfg.ScoreCacheTTL, cfg.ScoreCacheSize))
	}

	engine := matcher.New(opts...)
	if err := engine.SetMetric(cfg.Metric); err != nil {
		return nil, fmt.Errorf("invalid metric setting: %w", err)
	}
	return engine, nil
}
