// Package security provides the randomness used for key generation.
package security

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync"
)

// SecureRandom draws uniformly distributed integers from crypto/rand. It is safe for
// concurrent use.
type SecureRandom struct {
	reader io.Reader
	mutex  sync.Mutex
}

// NewSecureRandom creates a generator reading from crypto/rand.
func NewSecureRandom() *SecureRandom {
	return &SecureRandom{
		reader: rand.Reader,
	}
}

// NewSecureRandomFromReader creates a generator reading from r.
func NewSecureRandomFromReader(r io.Reader) *SecureRandom {
	return &SecureRandom{
		reader: r,
	}
}

// Int returns a uniform integer in [0, n).
func (s *SecureRandom) Int(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid upper bound: %d", n)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("secure random generation failed: %w", err)
	}
	return int(v.Int64()), nil
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0 or the underlying reader
// fails, matching the contract of math/rand/v2.
func (s *SecureRandom) IntN(n int) int {
	v, err := s.Int(n)
	if err != nil {
		panic(err)
	}
	return v
}
