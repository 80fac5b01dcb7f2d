package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings returns console logging at info level.
func DefaultLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// LoggerSettingsFromEnv starts from DefaultLoggerSettings and applies
// EnvLogLevel and EnvLogFile. A log file switches the sink to a rotated JSON
// file. lookup is usually os.LookupEnv. The result is not validated.
func LoggerSettingsFromEnv(lookup func(string) (string, bool)) *LoggerSettings {
	settings := DefaultLoggerSettings()

	if level, ok := lookup(EnvLogLevel); ok && level != "" {
		settings.LogLevel = level
	}
	if path, ok := lookup(EnvLogFile); ok && path != "" {
		settings.LogType = LogTypeFile
		settings.FilePath = path
		settings.MaxSize = DefaultLogMaxSizeMB
		settings.MaxBackups = DefaultLogMaxBackups
		settings.MaxAge = DefaultLogMaxAgeDays
	}

	return settings
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	// Additional validation for file logger
	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}
