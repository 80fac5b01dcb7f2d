//go:build unit
// +build unit

package logger

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stderr := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = stderr })

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{"nil settings", nil, false},
		{"env without overrides", config.LoggerSettingsFromEnv(func(string) (string, bool) { return "", false }), false},
		{"critical level", &config.LoggerSettings{LogLevel: config.LogLevelCritical, LogType: config.LogTypeConsole}, false},
		{"invalid log level", &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}, true},
		{"unsupported log type", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}, true},
		{"file without rotation", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "/tmp/textbook-rsa.log"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &ConsoleLogger{}, logger)
		})
	}
}

func TestNewLogger_ConsoleWritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		logger, err := NewLogger(nil)
		require.NoError(t, err)
		logger.Info("Generated RSA key pair")
	})

	assert.Contains(t, out, "Generated RSA key pair")
	assert.Contains(t, out, "level=INFO")
}

func TestNewLogger_FileFromEnvCarriesRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "textbook-rsa.log")
	settings := config.LoggerSettingsFromEnv(func(key string) (string, bool) {
		if key == config.EnvLogFile {
			return logPath, true
		}
		return "", false
	})

	logger, err := NewLogger(settings)
	require.NoError(t, err)
	require.IsType(t, &FileLogger{}, logger)

	runID := uuid.New().String()
	logger.With("run_id", runID).Info("Key pair ready, modulus has ", 512, " bits")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(content))), &record))
	assert.Equal(t, runID, record["run_id"])
	assert.Equal(t, "Key pair ready, modulus has 512 bits", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := GetLogger()
	assert.Nil(t, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(config.DefaultLoggerSettings()))
	first, err := GetLogger()
	require.NoError(t, err)

	// a later, invalid configuration is ignored
	assert.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInitLogger_InvalidSettings(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"})
	assert.Error(t, err)

	_, err = GetLogger()
	assert.Error(t, err)
}

func TestNewLogger_DoesNotTouchSingleton(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := NewLogger(config.DefaultLoggerSettings())
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = GetLogger()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
