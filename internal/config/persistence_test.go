// file: internal/config/persistence_test.go
// version: 2.0.0
// guid: 5e6f7a8b-9c0d-1e2f-3a4b-5c6d7e8f9a0b

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveConfigToFile(t *testing.T) {
	resetConfigTestState()
	t.Cleanup(resetConfigTestState)

	path := filepath.Join(t.TempDir(), "nested", "spotlight.yaml")
	AppConfig = Config{
		Metric:         "smithWaterman",
		IgnoreCase:     false,
		Limit:          3,
		Units:          "graphemes",
		ExtraMetrics:   true,
		ScoreCacheTTL:  time.Minute,
		ScoreCacheSize: 10,
	}
	require.NoError(t, SaveConfigToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "smithWaterman", raw["metric"])
	assert.Equal(t, "1m0s", raw["score_cache_ttl"])

	// viper reads the file back into the same settings
	resetConfigTestState()
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
	InitConfig()

	assert.Equal(t, "smithWaterman", AppConfig.Metric)
	assert.False(t, AppConfig.IgnoreCase)
	assert.Equal(t, 3, AppConfig.Limit)
	assert.Equal(t, "graphemes", AppConfig.Units)
	assert.True(t, AppConfig.ExtraMetrics)
	assert.Equal(t, time.Minute, AppConfig.ScoreCacheTTL)
	assert.Equal(t, 10, AppConfig.ScoreCacheSize)
	assert.Equal(t, path, ConfigFilePath())
}

func TestSaveConfigToFile_RejectsInvalid(t *testing.T) {
	resetConfigTestState()
	t.Cleanup(resetConfigTestState)

	path := filepath.Join(t.TempDir(), "spotlight.yaml")
	AppConfig = Config{Metric: "lcs", Units: "words"}
	assert.Error(t, SaveConfigToFile(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigFilePath_DefaultsToHome(t *testing.T) {
	resetConfigTestState()
	t.Cleanup(resetConfigTestState)

	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ConfigFileName), ConfigFilePath())
}

func TestLoadConfigFromFile(t *testing.T) {
	resetConfigTestState()
	t.Cleanup(resetConfigTestState)

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metric: levenshtein\nlimit: 5\n"), 0o644))

	viper.Set("units", "graphemes")
	require.NoError(t, LoadConfigFromFile(path))

	assert.Equal(t, "levenshtein", AppConfig.Metric)
	assert.Equal(t, 5, AppConfig.Limit)
	assert.True(t, AppConfig.IgnoreCase, "keys missing from the file keep their defaults")
	assert.Equal(t, "graphemes", AppConfig.Units)
}

func TestLoadConfigFromFile_Errors(t *testing.T) {
	resetConfigTestState()
	t.Cleanup(resetConfigTestState)

	dir := t.TempDir()
	assert.Error(t, LoadConfigFromFile(filepath.Join(dir, "missing.yaml")))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("metric: [unterminated\n"), 0o644))
	assert.Error(t, LoadConfigFromFile(broken))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("limit: -2\n"), 0o644))
	assert.Error(t, LoadConfigFromFile(invalid))
}
