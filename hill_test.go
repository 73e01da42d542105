package classix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHill(t *testing.T) {
	var enc Encoder

	tests := []struct {
		name     string
		text     string
		key      string
		cyrillic bool
		expected string
	}{
		{name: "identity key pads with Z", text: "HELLO", key: "BAAB", expected: "HELLOZ"},
		{name: "scaling key", text: "HI", key: "CAAC", expected: "OQ"},
		{name: "general key", text: "HELP", key: "DCFH", expected: "OPAT"},
		{name: "lowercase and punctuation", text: "he-lp!", key: "dcfh", expected: "OPAT"},
		{name: "space is a symbol", text: "A B", key: "BAAB", expected: "A BZ"},
		{name: "single short block is not padded", text: "B", key: "DCFH", expected: "DC"},
		{name: "three by three identity", text: "ABCDEFG", key: "BAAABAAAB", expected: "ABCDEFGZZ"},
		{name: "cyrillic identity", text: "ПРИВЕТ!", key: "БААБ", cyrillic: true, expected: "ПРИВЕТ"},
		{name: "cyrillic pads with last letter", text: "мир", key: "бааб", cyrillic: true, expected: "МИРЯ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Hill(tt.text, tt.key, tt.cyrillic)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHillKeyValidation(t *testing.T) {
	var enc Encoder

	for _, key := range []string{"BAAB", "BAAABAAAB", "BAAAABAAAABAAAAB"} {
		_, err := enc.Hill("ATTACK", key, false)
		assert.NoError(t, err, "key length %d", len(key))
	}

	for _, key := range []string{"", "AB", "ABCDE", "ABCDEFGH", "AB1C"} {
		_, err := enc.Hill("ATTACK", key, false)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
		assert.True(t, IsKeyError(err))
	}
}

func TestHillErrors(t *testing.T) {
	var enc Encoder

	tests := []struct {
		name     string
		text     string
		key      string
		cyrillic bool
		wantErr  error
	}{
		{name: "empty text", text: "", key: "BAAB", wantErr: ErrInvalidInput},
		{name: "punctuation only", text: "?!.", key: "BAAB", wantErr: ErrInvalidInput},
		{name: "digits", text: "HE11", key: "BAAB", wantErr: ErrUnsupportedAlphabet},
		{name: "greek", text: "ΑΒ", key: "BAAB", wantErr: ErrUnsupportedAlphabet},
		{name: "cyrillic text for latin", text: "МИР", key: "BAAB", wantErr: ErrUnsupportedAlphabet},
		{name: "latin key for cyrillic", text: "МИР", key: "BAAB", cyrillic: true, wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Hill(tt.text, tt.key, tt.cyrillic)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHillOutputLength(t *testing.T) {
	var enc Encoder

	keys := map[int]string{2: "DCFH", 3: "GYBNQKURP", 4: "BAAAABAAAABAAAAB"}
	for n, key := range keys {
		for _, text := range []string{"A", "AB", "ABC", "HELLO WORLD", "The quick brown fox!"} {
			got, err := enc.Hill(text, key, false)
			require.NoError(t, err)

			stripped := 0
			for _, r := range text {
				if !isPunctuation(r) {
					stripped++
				}
			}
			length := len([]rune(got))
			assert.Zero(t, length%n, "key %q text %q", key, text)
			assert.GreaterOrEqual(t, length, stripped)
		}
	}
}

func TestHillDecrypt(t *testing.T) {
	var enc Encoder

	got, err := enc.HillDecrypt("OPAT", "DCFH", false)
	require.NoError(t, err)
	assert.Equal(t, "HELP", got)

	for _, text := range []string{"MEET ME AT NOON", "ATTACKATDAWN", "HELLO"} {
		encrypted, err := enc.Hill(text, "BCAABDAAB", false)
		require.NoError(t, err)

		decrypted, err := enc.HillDecrypt(encrypted, "BCAABDAAB", false)
		require.NoError(t, err)
		assert.Equal(t, text, decrypted[:len(text)])
	}
}

func TestHillDecryptErrors(t *testing.T) {
	var enc Encoder

	_, err := enc.HillDecrypt("COJA", "DDCF", false)
	assert.ErrorIs(t, err, ErrKeyNotInvertible)

	// det 441 shares the factor 3 with 27
	_, err = enc.HillDecrypt("ABC", "GYBNQKURP", false)
	assert.ErrorIs(t, err, ErrKeyNotInvertible)

	_, err = enc.HillDecrypt("OPA", "DCFH", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = enc.HillDecrypt("", "DCFH", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = enc.HillDecrypt("OPAT", "DCF", false)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestIsqrt(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 8: 2, 9: 3, 15: 3, 16: 4, 99: 9, 100: 10} {
		assert.Equal(t, want, isqrt(n), "isqrt(%d)", n)
	}
}
