// file: cmd/root_test.go
// version: 2.0.0
// guid: 7eae8d0c-7fda-4f45-8f73-5d1e0c7c9f1a

package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jdfalk/spotlight/internal/config"
	"github.com/jdfalk/spotlight/internal/matcher"
	"github.com/jdfalk/spotlight/internal/similarity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigReadsConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("metric: smithWaterman\nignore_case: false\nunits: graphemes\n"), 0o644))

	origCfgFile := cfgFile
	origConfig := config.AppConfig
	defer func() {
		cfgFile = origCfgFile
		config.AppConfig = origConfig
		viper.Reset()
	}()

	viper.Reset()
	resetFlags(rootCmd)
	cfgFile = cfgPath
	initConfig()

	assert.Equal(t, "smithWaterman", config.AppConfig.Metric)
	assert.False(t, config.AppConfig.IgnoreCase)
	assert.Equal(t, "graphemes", config.AppConfig.Units)
	assert.Equal(t, cfgPath, viper.ConfigFileUsed())
}

func TestNewEngine(t *testing.T) {
	engine, err := newEngine(config.Config{
		Metric:         similarity.NameLevenshtein,
		IgnoreCase:     false,
		Units:          "graphemes",
		ExtraMetrics:   true,
		ScoreCacheTTL:  time.Minute,
		ScoreCacheSize: 16,
	})
	require.NoError(t, err)
	assert.Equal(t, similarity.NameLevenshtein, engine.ActiveMetricName())
	assert.False(t, engine.IgnoreCase())
	assert.Contains(t, engine.Names(), similarity.NameSubsequence)
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := newEngine(config.Config{Metric: "lcs", Units: "words"})
	assert.ErrorIs(t, err, similarity.ErrInvalidInput)

	_, err = newEngine(config.Config{Metric: "lcs", Limit: -1})
	assert.Error(t, err)

	_, err = newEngine(config.Config{Metric: "fuzzyFind"})
	assert.ErrorIs(t, err, matcher.ErrUnknownMetric, "extra metrics need to be enabled")
}
