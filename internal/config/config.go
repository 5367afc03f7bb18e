// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"fmt"
	"time"

	"github.com/jdfalk/spotlight/internal/similarity"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Metric         string // registered metric name made active at startup
	IgnoreCase     bool
	Limit          int // 0 returns every candidate
	Units          string
	ExtraMetrics   bool // also register subsequence and fuzzyFind
	ShowScores     bool
	ScoreCacheTTL  time.Duration // 0 disables the score cache
	ScoreCacheSize int
}

var AppConfig Config

// SetDefaults registers default values with viper
func SetDefaults() {
	viper.SetDefault("metric", similarity.NameLCS)
	viper.SetDefault("ignore_case", true)
	viper.SetDefault("limit", 0)
	viper.SetDefault("units", similarity.CodePoints.String())
	viper.SetDefault("extra_metrics", false)
	viper.SetDefault("show_scores", false)
	viper.SetDefault("score_cache_ttl", time.Duration(0))
	viper.SetDefault("score_cache_size", 4096)
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	AppConfig = Config{
		Metric:         viper.GetString("metric"),
		IgnoreCase:     viper.GetBool("ignore_case"),
		Limit:          viper.GetInt("limit"),
		Units:          viper.GetString("units"),
		ExtraMetrics:   viper.GetBool("extra_metrics"),
		ShowScores:     viper.GetBool("show_scores"),
		ScoreCacheTTL:  viper.GetDuration("score_cache_ttl"),
		ScoreCacheSize: viper.GetInt("score_cache_size"),
	}

	if AppConfig.Metric == "" {
		AppConfig.Metric = similarity.NameLCS
	}
}

// Validate checks the values that can be rejected before an engine exists.
// Metric names are checked against the registry when the engine is built.
func (c Config) Validate() error {
	if _, err := similarity.ParseUnits(c.Units); err != nil {
		return fmt.Errorf("invalid units: %w", err)
	}
	if c.Limit < 0 {
		return fmt.Errorf("invalid limit %d: must be >= 0", c.Limit)
	}
	if c.ScoreCacheTTL < 0 {
		return fmt.Errorf("invalid score_cache_ttl %s: must be >= 0", c.ScoreCacheTTL)
	}
	if c.ScoreCacheSize < 0 {
		return fmt.Errorf("invalid score_cache_size %d: must be >= 0", c.ScoreCacheSize)
	}
	return nil
}
