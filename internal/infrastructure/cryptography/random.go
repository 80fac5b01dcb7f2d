package cryptography

import (
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// randomBelow returns a uniform integer in [0, bound) read from random.
// Out-of-range draws are rejected and redrawn.
func randomBelow(random cryptoalg.RandomSource, bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return nil, fmt.Errorf("random range must be positive, got %s", bound)
	}

	bitLen := new(big.Int).Sub(bound, one).BitLen()
	if bitLen == 0 {
		return new(big.Int), nil
	}

	buf := make([]byte, (bitLen+7)/8)
	topMask := byte(0xff)
	if rem := bitLen % 8; rem != 0 {
		topMask = byte(1<<uint(rem)) - 1
	}

	n := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[0] &= topMask
		n.SetBytes(buf)
		if n.Cmp(bound) < 0 {
			return n, nil
		}
	}
}
