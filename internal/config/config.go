// Package config loads application configuration and wires the global
// logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Theme   ThemeConfig   `yaml:"theme" mapstructure:"theme"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port            int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins  []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	ExportRateLimit float64  `yaml:"export_rate_limit" mapstructure:"export_rate_limit"`
	ExportBurst     int      `yaml:"export_burst" mapstructure:"export_burst"`
}

// CatalogConfig points at an optional supplemental vertical catalog.
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ThemeConfig holds the persisted theme preference used when a request
// does not specify one.
type ThemeConfig struct {
	Default string `yaml:"default" mapstructure:"default"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads pulseboard.yaml (working directory or /etc/pulseboard)
// and PULSEBOARD_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("pulseboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pulseboard")

	v.SetEnvPrefix("PULSEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.export_rate_limit", 1.0)
	v.SetDefault("server.export_burst", 3)
	v.SetDefault("theme.default", "light")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
