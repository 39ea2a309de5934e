package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the comparison service. Values
// come from DOC_COMPARER_* environment variables, falling back to defaults.
type Config struct {
	Port            int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	MaxUploadMB     int64  `mapstructure:"max_upload_mb" validate:"gt=0"`
	StoreTTLMinutes int    `mapstructure:"store_ttl_minutes" validate:"gt=0"`
	StoreCapacity   int    `mapstructure:"store_capacity" validate:"gt=0"`
	LogLevel        string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFile         string `mapstructure:"log_file"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOC_COMPARER")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("max_upload_mb", 16)
	v.SetDefault("store_ttl_minutes", 60)
	v.SetDefault("store_capacity", 100)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// MaxUploadBytes converts the upload cap to bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// StoreTTL converts the store TTL to a duration.
func (c *Config) StoreTTL() time.Duration {
	return time.Duration(c.StoreTTLMinutes) * time.Minute
}
