package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// RSA defaults
const (
	DefaultKeySize          = 512
	DefaultPrimalityRounds  = 30
	DefaultMaxPrimeAttempts = 100000
	DefaultMaxKeyAttempts   = 16
)

// RSASettings holds the parameters of key generation.
type RSASettings struct {
	KeySize          int `mapstructure:"key_size" validate:"required,keysize"`
	Rounds           int `mapstructure:"rounds" validate:"required,min=1,max=256"`
	MaxPrimeAttempts int `mapstructure:"max_prime_attempts" validate:"required,min=1"`
	MaxKeyAttempts   int `mapstructure:"max_key_attempts" validate:"required,min=1,max=1024"`
}

// DefaultRSASettings returns a 512-bit configuration with 30 Miller-Rabin rounds.
func DefaultRSASettings() *RSASettings {
	return &RSASettings{
		KeySize:          DefaultKeySize,
		Rounds:           DefaultPrimalityRounds,
		MaxPrimeAttempts: DefaultMaxPrimeAttempts,
		MaxKeyAttempts:   DefaultMaxKeyAttempts,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for RSASettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
