package commands

import (
	"fmt"
	"math/big"
	"os"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	if err := logger.InitLogger(config.LoggerSettingsFromEnv(os.LookupEnv)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newProcessor builds a processor on crypto/rand with settings validated up front.
func newProcessor(settings *config.RSASettings, log logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	processor, err := cryptography.NewTextbookRSAProcessor(nil, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return processor, nil
}

// parseBigInt parses a non-negative decimal integer flag value.
func parseBigInt(name, value string) (*big.Int, error) {
	if value == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("--%s must be a decimal integer, got %q", name, value)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("--%s must not be negative", name)
	}
	return n, nil
}
