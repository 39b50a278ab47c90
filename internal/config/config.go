// Package config loads storefront settings from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Featured FeaturedConfig `mapstructure:"featured"`
	Cart     CartConfig     `mapstructure:"cart"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
}

type CatalogConfig struct {
	// File is a YAML catalog; empty means the built-in list.
	File            string `mapstructure:"file"`
	SuggestionLimit int    `mapstructure:"suggestion_limit" validate:"min=1"`
}

type FeaturedConfig struct {
	Count    int    `mapstructure:"count" validate:"min=1"`
	Price    string `mapstructure:"price" validate:"required"`
	Currency string `mapstructure:"currency"`
}

type CartConfig struct {
	LimitPerMin int `mapstructure:"limit_per_min" validate:"min=0"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PriceDecimal is only valid after Load has validated the config.
func (c FeaturedConfig) PriceDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(c.Price)
	return d
}

// Load reads path when given (it must exist), otherwise an optional
// config.yaml in the working directory. Env vars like SERVER_PORT win.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	d, err := decimal.NewFromString(c.Featured.Price)
	if err != nil {
		return fmt.Errorf("invalid config: featured.price %q: %w", c.Featured.Price, err)
	}
	if d.IsNegative() {
		return fmt.Errorf("invalid config: featured.price %q is negative", c.Featured.Price)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.token", "")

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.suggestion_limit", 6)

	v.SetDefault("featured.count", 4)
	v.SetDefault("featured.price", "99.99")
	v.SetDefault("featured.currency", "$")

	v.SetDefault("cart.limit_per_min", 120)
}
