package cryptoalg

import (
	"fmt"
	"io"
	"math/big"
)

// PublicExponent is the fixed public exponent e.
const PublicExponent = 65537

// RandomSource is the random bit source consumed by primality testing and
// prime generation. Production code passes crypto/rand.Reader.
type RandomSource interface {
	io.Reader
}

// PublicKey is the public half (n, e) of a textbook RSA key pair.
type PublicKey struct {
	n *big.Int
	e *big.Int
}

// NewPublicKey builds a public key from a modulus and exponent. Both must be positive.
func NewPublicKey(n, e *big.Int) (*PublicKey, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("public key: %w", ErrInvalidModulus)
	}
	if e == nil || e.Sign() <= 0 {
		return nil, fmt.Errorf("public key: exponent must be positive")
	}
	return &PublicKey{n: new(big.Int).Set(n), e: new(big.Int).Set(e)}, nil
}

// N returns a copy of the modulus.
func (k *PublicKey) N() *big.Int { return new(big.Int).Set(k.n) }

// E returns a copy of the public exponent.
func (k *PublicKey) E() *big.Int { return new(big.Int).Set(k.e) }

// Size returns the modulus length in bits.
func (k *PublicKey) Size() int { return k.n.BitLen() }

func (k *PublicKey) String() string {
	return fmt.Sprintf("PublicKey{N: %s, E: %s}", k.n, k.e)
}

// PrivateKey is the private half (n, d) of a textbook RSA key pair.
// The prime factors are not retained.
type PrivateKey struct {
	n *big.Int
	d *big.Int
}

// NewPrivateKey builds a private key from a modulus and private exponent.
func NewPrivateKey(n, d *big.Int) (*PrivateKey, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("private key: %w", ErrInvalidModulus)
	}
	if d == nil || d.Sign() <= 0 {
		return nil, fmt.Errorf("private key: exponent must be positive")
	}
	return &PrivateKey{n: new(big.Int).Set(n), d: new(big.Int).Set(d)}, nil
}

// N returns a copy of the modulus.
func (k *PrivateKey) N() *big.Int { return new(big.Int).Set(k.n) }

// D returns a copy of the private exponent. Callers must not log it.
func (k *PrivateKey) D() *big.Int { return new(big.Int).Set(k.d) }

// Size returns the modulus length in bits.
func (k *PrivateKey) Size() int { return k.n.BitLen() }

// String redacts the private exponent.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey{N: %s, D: [redacted]}", k.n)
}

// TextbookRSAProcessor handles unpadded RSA over big integers.
// Messages are single integers in [0, n); there is no padding and no blocking.
type TextbookRSAProcessor interface {
	// IsProbablyPrime runs Miller-Rabin with the configured number of rounds.
	IsProbablyPrime(n *big.Int) (bool, error)

	// GeneratePrime returns a probable prime with exactly bits significant bits.
	GeneratePrime(bits int) (*big.Int, error)

	// GenerateKeys generates a key pair whose modulus has about keySize bits.
	GenerateKeys(keySize int) (*PrivateKey, *PublicKey, error)

	// Encrypt computes m^e mod n. m is not range checked.
	Encrypt(m *big.Int, publicKey *PublicKey) (*big.Int, error)

	// Decrypt computes c^d mod n.
	Decrypt(c *big.Int, privateKey *PrivateKey) (*big.Int, error)

	// Encode returns the UTF-8 bytes of text as a big-endian integer.
	Encode(text string) *big.Int

	// Decode reverses Encode. Returns ErrInvalidUTF8 when the bytes of m are
	// not valid UTF-8.
	Decode(m *big.Int) (string, error)

	// EncryptText encodes text as a big-endian integer and encrypts it.
	// Returns ErrMessageTooLarge when the encoded text is not below n.
	EncryptText(text string, publicKey *PublicKey) (*big.Int, error)

	// DecryptText decrypts c and decodes the result as UTF-8.
	DecryptText(c *big.Int, privateKey *PrivateKey) (string, error)
}
