package testutil

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/stretchr/testify/mock"
)

// MockTextbookRSAProcessor is a testify mock of cryptoalg.TextbookRSAProcessor.
type MockTextbookRSAProcessor struct {
	mock.Mock
}

func (m *MockTextbookRSAProcessor) IsProbablyPrime(n *big.Int) (bool, error) {
	args := m.Called(n)
	return args.Bool(0), args.Error(1)
}

func (m *MockTextbookRSAProcessor) GeneratePrime(bits int) (*big.Int, error) {
	args := m.Called(bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTextbookRSAProcessor) GenerateKeys(keySize int) (*cryptoalg.PrivateKey, *cryptoalg.PublicKey, error) {
	args := m.Called(keySize)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*cryptoalg.PrivateKey), args.Get(1).(*cryptoalg.PublicKey), args.Error(2)
}

func (m *MockTextbookRSAProcessor) Encrypt(msg *big.Int, publicKey *cryptoalg.PublicKey) (*big.Int, error) {
	args := m.Called(msg, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTextbookRSAProcessor) Decrypt(c *big.Int, privateKey *cryptoalg.PrivateKey) (*big.Int, error) {
	args := m.Called(c, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTextbookRSAProcessor) Encode(text string) *big.Int {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*big.Int)
}

func (m *MockTextbookRSAProcessor) Decode(msg *big.Int) (string, error) {
	args := m.Called(msg)
	return args.String(0), args.Error(1)
}

func (m *MockTextbookRSAProcessor) EncryptText(text string, publicKey *cryptoalg.PublicKey) (*big.Int, error) {
	args := m.Called(text, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTextbookRSAProcessor) DecryptText(c *big.Int, privateKey *cryptoalg.PrivateKey) (string, error) {
	args := m.Called(c, privateKey)
	return args.String(0), args.Error(1)
}
