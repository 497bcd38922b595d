package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kureharyosuke/DesignPattern/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the configuration using Viper. The result is cached; use
// Reset to clear it (tests mostly).
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: PATTERNS_DEMO_FAMILY etc.
	v.SetEnvPrefix("PATTERNS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Merge config files in precedence order: user < project < env vars
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for patterns.toml by walking up the directory
// tree. Returns the first file found, or empty string if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, "patterns.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files lowest precedence first.
// A missing file is fine; parse errors are ignored the same way so a broken
// config file never blocks the demo from running.
func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	if homeDir != "" {
		userPath := filepath.Join(homeDir, ".patterns", "patterns.toml")
		if _, err := os.Stat(userPath); err == nil {
			v.SetConfigFile(userPath)
			_ = v.MergeInConfig()
		}
	}

	if projectPath := findProjectConfig(); projectPath != "" {
		v.SetConfigFile(projectPath)
		_ = v.MergeInConfig()
	}
}
