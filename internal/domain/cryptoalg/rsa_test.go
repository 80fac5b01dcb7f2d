//go:build unit
// +build unit

package cryptoalg

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicKey(t *testing.T) {
	n := big.NewInt(3233)
	key, err := NewPublicKey(n, big.NewInt(17))
	require.NoError(t, err)

	assert.Equal(t, int64(3233), key.N().Int64())
	assert.Equal(t, int64(17), key.E().Int64())
	assert.Equal(t, 12, key.Size())

	// accessors hand out copies
	key.N().SetInt64(1)
	n.SetInt64(1)
	assert.Equal(t, int64(3233), key.N().Int64())
}

func TestNewPublicKey_Invalid(t *testing.T) {
	_, err := NewPublicKey(big.NewInt(0), big.NewInt(17))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = NewPublicKey(nil, big.NewInt(17))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = NewPublicKey(big.NewInt(3233), big.NewInt(-1))
	assert.Error(t, err)
}

func TestNewPrivateKey_Invalid(t *testing.T) {
	_, err := NewPrivateKey(big.NewInt(-5), big.NewInt(2753))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = NewPrivateKey(big.NewInt(3233), nil)
	assert.Error(t, err)
}

func TestPrivateKey_StringRedactsExponent(t *testing.T) {
	key, err := NewPrivateKey(big.NewInt(3233), big.NewInt(2753))
	require.NoError(t, err)

	for _, s := range []string{key.String(), fmt.Sprintf("%v", key), fmt.Sprint(key)} {
		assert.Contains(t, s, "3233")
		assert.NotContains(t, s, "2753")
	}
	assert.Equal(t, int64(2753), key.D().Int64())
}
