// Package config loads server settings from environment variables with
// sensible defaults. Every key is overridable as KPI_<NAME>.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the API server.
type Config struct {
	Addr            string `mapstructure:"addr"`
	DBPath          string `mapstructure:"db_path"`
	MaxUploadBytes  int64  `mapstructure:"max_upload_bytes"`
	MaxPreviewRows  int    `mapstructure:"max_preview_rows"`
	AIEnabled       bool   `mapstructure:"ai_enabled"`
	AIModel         string `mapstructure:"ai_model"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
}

// Load reads configuration from environment variables and defaults.
// Precedence: env > defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KPI")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "kpi.db")
	v.SetDefault("max_upload_bytes", int64(10<<20))
	v.SetDefault("max_preview_rows", 100)
	v.SetDefault("ai_enabled", false)
	v.SetDefault("ai_model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic_api_key", "")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
