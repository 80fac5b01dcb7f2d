package validators

import (
	"github.com/go-playground/validator/v10"
)

// Key size bounds in bits for textbook RSA moduli.
const (
	MinRSAKeySize = 32
	MaxRSAKeySize = 4096
)

// KeySizeTag is the struct tag name KeySizeValidation is registered under.
const KeySizeTag = "keysize"

// KeySizeValidation validates an RSA modulus size: even, so both primes get
// the same bit length, and within [MinRSAKeySize, MaxRSAKeySize].
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()

	if keySize%2 != 0 {
		return false
	}
	return keySize >= MinRSAKeySize && keySize <= MaxRSAKeySize
}

// New returns a validator with the custom RSA tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(KeySizeTag, KeySizeValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
