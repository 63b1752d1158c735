// Package config loads server configuration from a YAML file with
// environment overrides (prefix DUEL, dots replaced by underscores).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig configures the websocket listener.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// CatalogConfig selects where card templates come from.
type CatalogConfig struct {
	Source string `mapstructure:"source"` // builtin or postgres
}

// DatabaseConfig configures the optional Postgres connection used by the
// postgres catalog source.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("catalog.source", "builtin")
	v.SetDefault("database.url", "")

	v.SetEnvPrefix("DUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Catalog.Source {
	case "builtin", "postgres":
	default:
		return nil, fmt.Errorf("catalog.source must be builtin or postgres, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Source == "postgres" && cfg.Database.URL == "" {
		return nil, fmt.Errorf("catalog.source is postgres but database.url is empty")
	}

	return &cfg, nil
}
