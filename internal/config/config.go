package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log  LogConfig  `mapstructure:"log" validate:"required"`
	Deck DeckConfig `mapstructure:"deck" validate:"required"`
	SRS  SRSConfig  `mapstructure:"srs" validate:"required"`
}

// LogConfig contains logging settings.
// Logs go to stderr; stdout carries the review dialogue.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// DeckConfig contains deck file settings.
type DeckConfig struct {
	// Path is the deck used when a command is not given one explicitly.
	Path string `mapstructure:"path" validate:"required"`
}

// SRSConfig contains the tunable ease factors. The SM-2 intervals and the
// passing rating are fixed.
type SRSConfig struct {
	MinEaseFactor     float64 `mapstructure:"min_ease_factor" validate:"gte=1.3"`
	InitialEaseFactor float64 `mapstructure:"initial_ease_factor" validate:"gtefield=MinEaseFactor"`
}
