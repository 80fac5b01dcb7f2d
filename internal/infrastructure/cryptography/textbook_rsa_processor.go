package cryptography

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	random cryptoalg.RandomSource
	params keyGenParams
	logger logger.Logger
}

// NewTextbookRSAProcessor creates and returns a new instance of textbookRSAProcessor.
// A nil random source selects crypto/rand.Reader.
func NewTextbookRSAProcessor(random cryptoalg.RandomSource, settings *config.RSASettings, logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	if settings == nil {
		settings = config.DefaultRSASettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}
	if random == nil {
		random = rand.Reader
	}

	return &textbookRSAProcessor{
		random: random,
		params: keyGenParams{
			rounds:           settings.Rounds,
			maxPrimeAttempts: settings.MaxPrimeAttempts,
			maxKeyAttempts:   settings.MaxKeyAttempts,
		},
		logger: logger,
	}, nil
}

// IsProbablyPrime runs Miller-Rabin with the configured number of rounds.
func (r *textbookRSAProcessor) IsProbablyPrime(n *big.Int) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("number cannot be nil")
	}
	return IsProbablyPrime(r.random, n, r.params.rounds)
}

// GeneratePrime returns a probable prime with exactly bits significant bits.
func (r *textbookRSAProcessor) GeneratePrime(bits int) (*big.Int, error) {
	prime, err := GeneratePrime(r.random, bits, r.params.rounds, r.params.maxPrimeAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime: %w", err)
	}
	r.logger.Debug("Generated ", bits, "-bit probable prime")
	return prime, nil
}

// GenerateKeys generates a key pair whose modulus has about keySize bits.
func (r *textbookRSAProcessor) GenerateKeys(keySize int) (*cryptoalg.PrivateKey, *cryptoalg.PublicKey, error) {
	material, err := generateKeyMaterial(r.random, keySize, r.params)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	privateKey, publicKey, err := material.keys()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	r.logger.With("key_size", keySize, "modulus_bits", publicKey.Size()).Info("Generated RSA key pair")
	return privateKey, publicKey, nil
}

// Encrypt computes m^e mod n.
func (r *textbookRSAProcessor) Encrypt(m *big.Int, publicKey *cryptoalg.PublicKey) (*big.Int, error) {
	c, err := Encrypt(m, publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}
	r.logger.Debug("RSA encryption succeeded")
	return c, nil
}

// Decrypt computes c^d mod n.
func (r *textbookRSAProcessor) Decrypt(c *big.Int, privateKey *cryptoalg.PrivateKey) (*big.Int, error) {
	m, err := Decrypt(c, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt message: %w", err)
	}
	r.logger.Debug("RSA decryption succeeded")
	return m, nil
}

// Encode returns text as a big-endian integer.
func (r *textbookRSAProcessor) Encode(text string) *big.Int {
	return EncodeText(text)
}

// Decode returns the UTF-8 text held in m.
func (r *textbookRSAProcessor) Decode(m *big.Int) (string, error) {
	return DecodeText(m)
}

// EncryptText encodes text and encrypts it. The encoded integer must be below n.
func (r *textbookRSAProcessor) EncryptText(text string, publicKey *cryptoalg.PublicKey) (*big.Int, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}

	m := r.Encode(text)
	if m.Cmp(publicKey.N()) >= 0 {
		return nil, fmt.Errorf("%w: %d-byte message, %d-bit modulus", cryptoalg.ErrMessageTooLarge, len(text), publicKey.Size())
	}

	return r.Encrypt(m, publicKey)
}

// DecryptText decrypts c and decodes the result as UTF-8.
func (r *textbookRSAProcessor) DecryptText(c *big.Int, privateKey *cryptoalg.PrivateKey) (string, error) {
	m, err := r.Decrypt(c, privateKey)
	if err != nil {
		return "", err
	}

	text, err := r.Decode(m)
	if err != nil {
		return "", fmt.Errorf("failed to decode decrypted message: %w", err)
	}
	return text, nil
}
