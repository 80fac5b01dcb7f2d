package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// IsProbablyPrime runs the Miller-Rabin test on n with rounds witnesses drawn
// uniformly from [2, n-2]. A composite verdict is final. A prime verdict is
// wrong with probability at most 4^-rounds. rounds below 1 count as 1.
//
// The only error is a failing random source.
func IsProbablyPrime(random cryptoalg.RandomSource, n *big.Int, rounds int) (bool, error) {
	switch {
	case n.Cmp(one) <= 0:
		return false, nil
	case n.Cmp(three) <= 0:
		// 2 and 3; for 3 the witness range is empty
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}
	if rounds < 1 {
		rounds = 1
	}

	// n-1 = 2^r * d, d odd
	nMinusOne := new(big.Int).Sub(n, one)
	r := nMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinusOne, r)

	witnessSpan := new(big.Int).Sub(n, three)
	x := new(big.Int)

	for i := 0; i < rounds; i++ {
		a, err := randomBelow(random, witnessSpan)
		if err != nil {
			return false, fmt.Errorf("failed to draw Miller-Rabin witness: %w", err)
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		if !squaresToMinusOne(x, r, n, nMinusOne) {
			return false, nil
		}
	}

	return true, nil
}

// squaresToMinusOne squares x modulo n up to r-1 times and reports whether it
// reaches n-1. x is modified.
func squaresToMinusOne(x *big.Int, r uint, n, nMinusOne *big.Int) bool {
	for j := uint(1); j < r; j++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			// 1 stays 1 under squaring
			return false
		}
	}
	return false
}
