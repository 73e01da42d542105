package classix

import (
	"fmt"
	"strings"

	"github.com/hengadev/classix/internal/matrix"
)

// RandomSource supplies uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

const (
	minVigenereKeyLength = 2
	maxVigenereKeyLength = 16 // exclusive

	maxHillKeyAttempts = 1000
)

// GenerateVigenereKey returns a random keyword of 2 to 15 uppercase letters of the script.
func GenerateVigenereKey(rng RandomSource, script Script) string {
	alphabet := AlphabetFor(script)
	length := minVigenereKeyLength + rng.IntN(maxVigenereKeyLength-minVigenereKeyLength)

	key := make([]rune, length)
	for i := range key {
		key[i] = alphabet.Upper(rng.IntN(alphabet.Size()))
	}
	return string(key)
}

// GenerateHillKey returns a random key of n*n symbols whose matrix is invertible modulo the
// extended alphabet size, so that HillDecrypt can reverse it.
func GenerateHillKey(rng RandomSource, script Script, n int) (string, error) {
	if n < 1 {
		return "", NewInvalidKeyError(Hill, fmt.Sprintf("matrix dimension must be positive, got %d", n))
	}

	alphabet := hillAlphabetFor(script)
	values := make([]int, n*n)
	for attempt := 0; attempt < maxHillKeyAttempts; attempt++ {
		for i := range values {
			values[i] = rng.IntN(alphabet.Size())
		}
		m, err := matrix.FromSlice(values, n)
		if err != nil {
			return "", err
		}
		if _, err := matrix.Inverse(m, alphabet.Size()); err != nil {
			continue
		}

		key := make([]rune, len(values))
		for i, v := range values {
			key[i] = alphabet.symbols[v]
		}
		return string(key), nil
	}
	return "", fmt.Errorf("%w: no invertible %dx%d key after %d attempts", ErrKeyNotInvertible, n, n, maxHillKeyAttempts)
}

// GeneratePassphraseKey joins count random dictionary words written only with letters of the
// script and returns them upper-cased as a single keyword.
func GeneratePassphraseKey(rng RandomSource, dict *Dictionary, count int, script Script) (string, error) {
	if dict == nil {
		return "", fmt.Errorf("%w: no dictionary configured", ErrInvalidConfiguration)
	}
	if count < 1 {
		return "", fmt.Errorf("%w: word count must be positive, got %d", ErrInvalidConfiguration, count)
	}

	candidates := dict.wordsFor(script)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: dictionary has no %s words", ErrInvalidConfiguration, script)
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString(strings.ToUpper(candidates[rng.IntN(len(candidates))]))
	}
	return b.String(), nil
}
