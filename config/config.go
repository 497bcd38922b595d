// Package config loads the patterns tool configuration via Viper.
//
// Configuration is read from patterns.toml (found by walking up from the
// working directory, then ~/.patterns/), with PATTERNS_* environment
// variables taking precedence. Everything has a default, so the binary runs
// with no config file at all.
package config

// Config represents the patterns tool configuration
type Config struct {
	Demo DemoConfig `mapstructure:"demo"`
	Log  LogConfig  `mapstructure:"log"`
}

// DemoConfig configures the demonstration commands
type DemoConfig struct {
	Family string `mapstructure:"family"` // default family tag for `patterns run`
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	JSON bool `mapstructure:"json"` // JSON log output instead of console
}
