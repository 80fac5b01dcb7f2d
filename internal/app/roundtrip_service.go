package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// roundTripService implements the RoundTripService interface
type roundTripService struct {
	rsaProcessor cryptoalg.TextbookRSAProcessor
	logger       logger.Logger
}

// NewRoundTripService creates a new roundTripService instance
func NewRoundTripService(rsaProcessor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (cryptoalg.RoundTripService, error) {
	if rsaProcessor == nil {
		return nil, fmt.Errorf("RSA processor cannot be nil")
	}
	return &roundTripService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Run generates a key pair, encrypts message with the public key, decrypts it
// with the private key and compares both integer and text forms.
func (s *roundTripService) Run(ctx context.Context, keySize int, message string) (*cryptoalg.RoundTripResult, error) {
	result := &cryptoalg.RoundTripResult{
		RunID:   uuid.New().String(),
		Message: message,
	}
	log := s.logger.With("run_id", result.RunID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	privateKey, publicKey, err := s.rsaProcessor.GenerateKeys(keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	result.PrivateKey = privateKey
	result.PublicKey = publicKey
	log.Info("Key pair ready, modulus has ", publicKey.Size(), " bits")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Plain = s.rsaProcessor.Encode(message)
	result.Cipher, err = s.rsaProcessor.EncryptText(message, publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Recovered, err = s.rsaProcessor.Decrypt(result.Cipher, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt message: %w", err)
	}

	result.Decoded, err = s.rsaProcessor.Decode(result.Recovered)
	if err != nil {
		log.Error("Decrypted integer is not valid text: ", err)
		return result, fmt.Errorf("%w: %w", cryptoalg.ErrRoundTripMismatch, err)
	}

	result.Matched = result.Recovered.Cmp(result.Plain) == 0 && result.Decoded == message
	if !result.Matched {
		log.Error("Round trip mismatch")
		return result, cryptoalg.ErrRoundTripMismatch
	}

	log.Info("Round trip succeeded")
	return result, nil
}
