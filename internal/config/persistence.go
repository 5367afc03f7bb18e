// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the home directory.
const ConfigFileName = ".spotlight.yaml"

// ConfigFilePath returns the config file viper loaded, or the default location
// in the user's home directory.
func ConfigFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigFileName)
}

// LoadConfigFromFile merges the YAML settings in path over the current viper
// state and refreshes AppConfig. Keys absent from the file keep their values.
func LoadConfigFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig map[string]any
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := viper.MergeConfigMap(fileConfig); err != nil {
		return fmt.Errorf("failed to merge config file %s: %w", path, err)
	}

	InitConfig()
	if err := AppConfig.Validate(); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	log.Printf("[INFO] Loaded configuration from file: %s", path)
	return nil
}

// SaveConfigToFile writes the current settings as YAML to path. An empty path
// means ConfigFilePath().
func SaveConfigToFile(path string) error {
	if path == "" {
		path = ConfigFilePath()
	}
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}
	if err := AppConfig.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	fileConfig := map[string]any{
		"metric":           AppConfig.Metric,
		"ignore_case":      AppConfig.IgnoreCase,
		"limit":            AppConfig.Limit,
		"units":            AppConfig.Units,
		"extra_metrics":    AppConfig.ExtraMetrics,
		"show_scores":      AppConfig.ShowScores,
		"score_cache_ttl":  AppConfig.ScoreCacheTTL.String(),
		"score_cache_size": AppConfig.ScoreCacheSize,
	}

	data, err := yaml.Marshal(fileConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("Configuration saved to file: %s", path)
	return nil
}
