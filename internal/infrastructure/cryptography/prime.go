package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
)

// GeneratePrime samples odd integers with exactly bits significant bits until
// one passes rounds of Miller-Rabin. It gives up with ErrPrimeSearchExhausted
// after maxAttempts candidates; maxAttempts <= 0 selects the default budget.
func GeneratePrime(random cryptoalg.RandomSource, bits, rounds, maxAttempts int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime size %d bits, need at least 2", cryptoalg.ErrInvalidBitSize, bits)
	}
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultMaxPrimeAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := randomCandidate(random, bits)
		if err != nil {
			return nil, err
		}

		prime, err := IsProbablyPrime(random, candidate, rounds)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime in %d candidates", cryptoalg.ErrPrimeSearchExhausted, bits, maxAttempts)
}

// randomCandidate draws uniformly from [2^(bits-1), 2^bits) and forces the low bit.
func randomCandidate(random cryptoalg.RandomSource, bits int) (*big.Int, error) {
	span := new(big.Int).Lsh(one, uint(bits-1))

	candidate, err := randomBelow(random, span)
	if err != nil {
		return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
	}
	candidate.SetBit(candidate, bits-1, 1)
	candidate.SetBit(candidate, 0, 1)

	return candidate, nil
}
