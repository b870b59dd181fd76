package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	ModelPath     string `mapstructure:"MODEL_PATH"`
	MetaPath      string `mapstructure:"META_PATH"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	CacheTTLHours int    `mapstructure:"CACHE_TTL_HOURS"`
	HistoryLimit  int    `mapstructure:"HISTORY_LIMIT"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present.
	// This allows configuration purely through environment variables in production.
	_ = viper.ReadInConfig()

	// Set default values. REDIS_ADDR and POSTGRES_URL default to empty,
	// which disables the verdict cache and the prediction history.
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MODEL_PATH", "model.json")
	viper.SetDefault("META_PATH", "meta.json")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("CACHE_TTL_HOURS", 24)
	viper.SetDefault("HISTORY_LIMIT", 50)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
