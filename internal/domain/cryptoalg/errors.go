package cryptoalg

import "errors"

var (
	// ErrInvalidBitSize is returned for prime or key sizes that are too small or odd.
	ErrInvalidBitSize = errors.New("invalid bit size")

	// ErrInvalidModulus is returned when a modulus is nil, zero or negative.
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrPrimeSearchExhausted is returned when no probable prime was found within the attempt budget.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")

	// ErrNotInvertible is returned when e has no inverse modulo the totient.
	ErrNotInvertible = errors.New("exponent is not invertible modulo totient")

	// ErrKeyGenerationFailed is returned when every prime pair drawn was unusable.
	ErrKeyGenerationFailed = errors.New("key generation failed, retry with different primes")

	// ErrInvalidUTF8 is returned when a decrypted integer is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

	// ErrMessageTooLarge is returned when an encoded message is not below the modulus.
	ErrMessageTooLarge = errors.New("message does not fit in modulus")

	// ErrRoundTripMismatch is returned when decryption does not reproduce the plaintext.
	ErrRoundTripMismatch = errors.New("round trip mismatch")
)
