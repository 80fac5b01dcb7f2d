package cryptoalg

import (
	"context"
	"math/big"
)

// RoundTripResult records every stage of one encrypt/decrypt round trip.
type RoundTripResult struct {
	RunID      string
	PublicKey  *PublicKey
	PrivateKey *PrivateKey
	Message    string
	Plain      *big.Int
	Cipher     *big.Int
	Recovered  *big.Int
	Decoded    string
	Matched    bool
}

// RoundTripService generates a key pair and checks that a message survives
// encryption followed by decryption.
type RoundTripService interface {
	// Run returns the result together with ErrRoundTripMismatch when the
	// recovered message differs from the original.
	Run(ctx context.Context, keySize int, message string) (*RoundTripResult, error)
}
