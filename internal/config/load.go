package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables that override configuration.
const EnvPrefix = "SCRY"

// Default values for optional settings.
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultDeckPath          = "deck.json"
	DefaultMinEaseFactor     = 1.3
	DefaultInitialEaseFactor = 2.5
)

// Load configuration from environment variables and an optional config file.
// Environment variables take precedence over values from config files.
//
// If configFile is empty, a file named scry.yaml is looked up in the working
// directory and then in $HOME/.config/scry; not finding one is not an error.
// If configFile is set, it must exist and parse.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("deck.path", DefaultDeckPath)
	v.SetDefault("srs.min_ease_factor", DefaultMinEaseFactor)
	v.SetDefault("srs.initial_ease_factor", DefaultInitialEaseFactor)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("scry")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/scry")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
