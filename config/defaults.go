package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Demo defaults
	v.SetDefault("demo.family", "1")

	// Logging defaults
	v.SetDefault("log.json", false)
}
