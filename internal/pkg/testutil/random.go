package testutil

import (
	"io"
	"math/rand/v2"

	"github.com/stretchr/testify/mock"
)

// DeterministicSource returns a reproducible byte stream keyed by seed.
// Only for tests: the same seed always yields the same witnesses and prime candidates.
func DeterministicSource(seed byte) io.Reader {
	var key [32]byte
	for i := range key {
		key[i] = seed + byte(i)
	}
	return rand.NewChaCha8(key)
}

// MockRandomSource is a testify mock of the random bit source.
type MockRandomSource struct {
	mock.Mock
}

// Read implements io.Reader.
func (m *MockRandomSource) Read(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}
