//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrime_SixteenBits(t *testing.T) {
	for i := 0; i < 100; i++ {
		prime, err := GeneratePrime(rand.Reader, 16, 30, 0)
		require.NoError(t, err)

		assert.Equal(t, 16, prime.BitLen(), "top bit must be set: %s", prime)

		ok, err := IsProbablyPrime(rand.Reader, prime, 30)
		require.NoError(t, err)
		assert.True(t, ok, "%s failed the primality test", prime)
		assert.True(t, prime.ProbablyPrime(20), "%s is not prime", prime)
	}
}

func TestGeneratePrime_Sizes(t *testing.T) {
	for _, bits := range []int{2, 3, 8, 64, 256} {
		prime, err := GeneratePrime(rand.Reader, bits, 30, 0)
		require.NoError(t, err, "bits=%d", bits)
		assert.Equal(t, bits, prime.BitLen())
		assert.True(t, prime.ProbablyPrime(20))
	}
}

func TestGeneratePrime_InvalidBitSize(t *testing.T) {
	for _, bits := range []int{-1, 0, 1} {
		_, err := GeneratePrime(rand.Reader, bits, 30, 0)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidBitSize, "bits=%d", bits)
	}
}

func TestGeneratePrime_SearchExhausted(t *testing.T) {
	// an all-zero stream only ever proposes 9
	_, err := GeneratePrime(zeroSource{}, 4, 30, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoalg.ErrPrimeSearchExhausted)
	assert.Contains(t, err.Error(), "50 candidates")
}

func TestGeneratePrime_Deterministic(t *testing.T) {
	first, err := GeneratePrime(testutil.DeterministicSource(42), 128, 30, 0)
	require.NoError(t, err)
	second, err := GeneratePrime(testutil.DeterministicSource(42), 128, 30, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Cmp(second))
}

func TestGeneratePrime_RandomSourceFailure(t *testing.T) {
	source := &testutil.MockRandomSource{}
	source.On("Read", mock.Anything).Return(0, errors.New("entropy unavailable"))

	_, err := GeneratePrime(source, 64, 30, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to sample prime candidate")
	assert.NotErrorIs(t, err, cryptoalg.ErrPrimeSearchExhausted)
}
