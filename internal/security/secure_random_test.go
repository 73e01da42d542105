package security

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandom_IntRange(t *testing.T) {
	rng := NewSecureRandom()

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v, err := rng.Int(26)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 26)
		seen[v] = true
	}
	// 500 draws over 26 values leave essentially no chance of a tiny spread
	assert.Greater(t, len(seen), 10)
}

func TestSecureRandom_InvalidBound(t *testing.T) {
	rng := NewSecureRandom()

	_, err := rng.Int(0)
	assert.Error(t, err)

	assert.Panics(t, func() { rng.IntN(-1) })
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestSecureRandom_ReaderFailure(t *testing.T) {
	rng := NewSecureRandomFromReader(failingReader{})

	_, err := rng.Int(10)
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestSecureRandom_DeterministicReader(t *testing.T) {
	a := NewSecureRandomFromReader(bytes.NewReader(bytes.Repeat([]byte{7}, 64)))
	b := NewSecureRandomFromReader(bytes.NewReader(bytes.Repeat([]byte{7}, 64)))

	assert.Equal(t, a.IntN(33), b.IntN(33))
}

func TestSecureRandom_Concurrent(t *testing.T) {
	rng := NewSecureRandom()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				v := rng.IntN(16)
				assert.True(t, v >= 0 && v < 16)
			}
		}()
	}
	wg.Wait()
}
