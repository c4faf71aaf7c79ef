package config

// Config holds all tool configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Anki AnkiConfig `mapstructure:"anki" validate:"required"`
	Log  LogConfig  `mapstructure:"log" validate:"required"`
}

// AnkiConfig contains the AnkiConnect endpoint and upload settings.
type AnkiConfig struct {
	URL       string `mapstructure:"url" validate:"required,url"`
	ModelName string `mapstructure:"model_name" validate:"required"`
	BatchSize int    `mapstructure:"batch_size" validate:"required,gt=0,lte=100"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}
