package config

// Levels accepted by LoggerSettings.LogLevel. critical is recorded at error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Sinks accepted by LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Environment variables read by LoggerSettingsFromEnv.
const (
	EnvLogLevel = "TEXTBOOK_RSA_LOG_LEVEL"
	EnvLogFile  = "TEXTBOOK_RSA_LOG_FILE"
)

// Rotation applied when logging goes to EnvLogFile.
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)
