package cryptography

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// EncodeText reads the UTF-8 bytes of text as a big-endian unsigned integer.
// Leading NUL bytes vanish: "\x00A" and "A" encode to the same integer.
func EncodeText(text string) *big.Int {
	return new(big.Int).SetBytes([]byte(text))
}

// DecodeText turns m back into text. It fails with ErrInvalidUTF8 instead of
// returning an empty string, so a corrupted decryption is distinguishable
// from an empty message.
func DecodeText(m *big.Int) (string, error) {
	if m == nil || m.Sign() < 0 {
		return "", fmt.Errorf("message must be a non-negative integer")
	}

	b := m.Bytes()
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d bytes", cryptoalg.ErrInvalidUTF8, len(b))
	}
	return string(b), nil
}
