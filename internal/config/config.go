// Package config loads server configuration from file and environment.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full server configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`

	// Origins allowed for CORS and websocket upgrades; empty allows all
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads configuration from config.yaml and QUESTFORGE_* environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.allowed_origins", []string{})
	viper.SetDefault("redis.endpoint", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetEnvPrefix("QUESTFORGE")
	// Nested keys map to env names with underscores, e.g. redis.endpoint
	// becomes QUESTFORGE_REDIS_ENDPOINT
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env cover it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
