package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// Transform computes x^exponent mod modulus. Encryption and decryption are the
// same operation with e or d as exponent. x is not required to be below modulus,
// but values outside [0, modulus) do not survive a round trip.
func Transform(x, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, cryptoalg.ErrInvalidModulus
	}
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("base must be a non-negative integer")
	}
	if exponent == nil || exponent.Sign() < 0 {
		return nil, fmt.Errorf("exponent must be a non-negative integer")
	}

	return new(big.Int).Exp(x, exponent, modulus), nil
}

// Encrypt computes c = m^e mod n.
func Encrypt(m *big.Int, publicKey *cryptoalg.PublicKey) (*big.Int, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	return Transform(m, publicKey.E(), publicKey.N())
}

// Decrypt computes m = c^d mod n.
func Decrypt(c *big.Int, privateKey *cryptoalg.PrivateKey) (*big.Int, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	return Transform(c, privateKey.D(), privateKey.N())
}
