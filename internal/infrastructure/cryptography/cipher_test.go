//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_KnownVector(t *testing.T) {
	n, e, d := big.NewInt(3233), big.NewInt(17), big.NewInt(2753)

	c, err := Transform(big.NewInt(65), e, n)
	require.NoError(t, err)
	assert.Equal(t, int64(2790), c.Int64())

	m, err := Transform(c, d, n)
	require.NoError(t, err)
	assert.Equal(t, int64(65), m.Int64())
}

func TestTransform_InvalidInput(t *testing.T) {
	_, err := Transform(big.NewInt(5), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidModulus)

	_, err = Transform(big.NewInt(5), big.NewInt(3), nil)
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidModulus)

	_, err = Transform(big.NewInt(-5), big.NewInt(3), big.NewInt(7))
	assert.Error(t, err)

	_, err = Transform(big.NewInt(5), big.NewInt(-3), big.NewInt(7))
	assert.Error(t, err)
}

func TestTransform_MessageAboveModulusDoesNotRoundTrip(t *testing.T) {
	n, e, d := big.NewInt(3233), big.NewInt(17), big.NewInt(2753)
	m := big.NewInt(3233 + 65)

	c, err := Transform(m, e, n)
	require.NoError(t, err)
	back, err := Transform(c, d, n)
	require.NoError(t, err)

	assert.NotEqual(t, 0, back.Cmp(m))
	assert.Equal(t, int64(65), back.Int64())
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	privateKey, publicKey, err := GenerateKeys(rand.Reader, 512)
	require.NoError(t, err)
	n := publicKey.N()

	messages := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		new(big.Int).Sub(n, big.NewInt(1)),
	}
	for i := 0; i < 20; i++ {
		m, err := randomBelow(rand.Reader, n)
		require.NoError(t, err)
		messages = append(messages, m)
	}

	for _, m := range messages {
		c, err := Encrypt(m, publicKey)
		require.NoError(t, err)

		back, err := Decrypt(c, privateKey)
		require.NoError(t, err)
		assert.Equal(t, 0, back.Cmp(m), "round trip failed for %s", m)
	}
}

func TestEncryptDecrypt_NilKeys(t *testing.T) {
	_, err := Encrypt(big.NewInt(1), nil)
	assert.Error(t, err)

	_, err = Decrypt(big.NewInt(1), nil)
	assert.Error(t, err)
}
