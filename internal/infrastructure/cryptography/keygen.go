package cryptography

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
)

// MinKeySize is the smallest modulus size GenerateKeys accepts. Two distinct
// 10-bit primes give phi >= 520*522, which keeps e = 65537 below phi.
const MinKeySize = 20

var (
	errIdenticalPrimes     = errors.New("p and q are equal")
	errExponentNotBelowPhi = errors.New("public exponent is not below phi")
)

// keyGenParams bundles the search budgets of key generation.
type keyGenParams struct {
	rounds           int
	maxPrimeAttempts int
	maxKeyAttempts   int
}

// keyMaterial is every value derived during key generation. p, q and phi
// never leave this package.
type keyMaterial struct {
	p, q *big.Int
	n    *big.Int
	phi  *big.Int
	e    *big.Int
	d    *big.Int
}

// keys converts the material into the public key pair, dropping the factors.
func (m *keyMaterial) keys() (*cryptoalg.PrivateKey, *cryptoalg.PublicKey, error) {
	publicKey, err := cryptoalg.NewPublicKey(m.n, m.e)
	if err != nil {
		return nil, nil, err
	}
	privateKey, err := cryptoalg.NewPrivateKey(m.n, m.d)
	if err != nil {
		return nil, nil, err
	}
	return privateKey, publicKey, nil
}

// GenerateKeys generates a textbook RSA key pair whose modulus is the product
// of two distinct keySize/2-bit primes and whose public exponent is 65537.
func GenerateKeys(random cryptoalg.RandomSource, keySize int) (*cryptoalg.PrivateKey, *cryptoalg.PublicKey, error) {
	material, err := generateKeyMaterial(random, keySize, keyGenParams{
		rounds:           config.DefaultPrimalityRounds,
		maxPrimeAttempts: config.DefaultMaxPrimeAttempts,
		maxKeyAttempts:   config.DefaultMaxKeyAttempts,
	})
	if err != nil {
		return nil, nil, err
	}
	return material.keys()
}

// generateKeyMaterial draws prime pairs until one yields an invertible e.
// Pairs with p = q, e >= phi or gcd(e, phi) != 1 are discarded and redrawn,
// at most params.maxKeyAttempts times.
func generateKeyMaterial(random cryptoalg.RandomSource, keySize int, params keyGenParams) (*keyMaterial, error) {
	if keySize < MinKeySize || keySize%2 != 0 {
		return nil, fmt.Errorf("%w: key size %d, need an even size of at least %d", cryptoalg.ErrInvalidBitSize, keySize, MinKeySize)
	}
	if params.maxKeyAttempts <= 0 {
		params.maxKeyAttempts = config.DefaultMaxKeyAttempts
	}

	primeBits := keySize / 2
	e := big.NewInt(cryptoalg.PublicExponent)

	var lastErr error
	for attempt := 0; attempt < params.maxKeyAttempts; attempt++ {
		p, err := GeneratePrime(random, primeBits, params.rounds, params.maxPrimeAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to generate p: %w", err)
		}
		q, err := GeneratePrime(random, primeBits, params.rounds, params.maxPrimeAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to generate q: %w", err)
		}

		if p.Cmp(q) == 0 {
			lastErr = errIdenticalPrimes
			continue
		}

		material, err := deriveKeyMaterial(p, q, e)
		if errors.Is(err, cryptoalg.ErrNotInvertible) || errors.Is(err, errExponentNotBelowPhi) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		return material, nil
	}

	return nil, fmt.Errorf("%w: %d prime pairs rejected, last: %w", cryptoalg.ErrKeyGenerationFailed, params.maxKeyAttempts, lastErr)
}

// deriveKeyMaterial computes n = p*q, phi = (p-1)(q-1) and d = e^-1 mod phi.
// Both e and d end up in (0, phi).
func deriveKeyMaterial(p, q, e *big.Int) (*keyMaterial, error) {
	n := new(big.Int).Mul(p, q)

	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	phi := new(big.Int).Mul(pMinusOne, qMinusOne)

	if e.Cmp(phi) >= 0 {
		return nil, fmt.Errorf("%w: e = %s, phi = %s", errExponentNotBelowPhi, e, phi)
	}

	d, err := modInverse(e, phi)
	if err != nil {
		return nil, err
	}

	return &keyMaterial{
		p:   p,
		q:   q,
		n:   n,
		phi: phi,
		e:   new(big.Int).Set(e),
		d:   d,
	}, nil
}

// modInverse returns x in [0, m) with a*x = 1 (mod m).
func modInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, cryptoalg.ErrInvalidModulus
	}

	g, x := extendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", cryptoalg.ErrNotInvertible, a, m, g)
	}

	// Mod is Euclidean, so the result is never negative.
	return x.Mod(x, m), nil
}

// extendedGCD returns g = gcd(a, b) and the Bezout coefficient x with
// a*x + b*y = g. a and b must be non-negative.
func extendedGCD(a, b *big.Int) (g, x *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	quotient := new(big.Int)

	for r.Sign() != 0 {
		quotient.Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(quotient, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(quotient, s))
	}

	return oldR, oldS
}
