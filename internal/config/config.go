package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Limits  LimitsConfig  `mapstructure:"limits"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // "debug" or "release"
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LimitsConfig caps request ingestion at the HTTP boundary.
type LimitsConfig struct {
	// MaxUploadBytes bounds a single multipart upload. Default 32 MiB.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// Load reads config.yaml from the given directory with EDUFORGE_* env
// overrides layered on top. A missing config file is not an error — every
// field has a default and deployments may be env-only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("EDUFORGE")
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("limits.max_upload_bytes", int64(32<<20))

	v.BindEnv("server.port", "EDUFORGE_PORT", "PORT")
	v.BindEnv("server.mode", "EDUFORGE_MODE")
	v.BindEnv("logging.level", "EDUFORGE_LOG_LEVEL")
	v.BindEnv("logging.file", "EDUFORGE_LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
