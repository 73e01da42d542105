package classix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_String(t *testing.T) {
	tests := []struct {
		cipher   Cipher
		expected string
	}{
		{Unknown, "unknown"},
		{Caesar, "caesar"},
		{ROT1, "rot1"},
		{ROT13, "rot13"},
		{A1Z26, "a1z26"},
		{Vigenere, "vigenere"},
		{Hill, "hill"},
		{Cipher(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cipher.String())
		})
	}
}

func TestParseCipher(t *testing.T) {
	for _, c := range []Cipher{Caesar, ROT1, ROT13, A1Z26, Vigenere, Hill} {
		parsed, err := ParseCipher(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	parsed, err := ParseCipher("  Vigenère ")
	require.NoError(t, err)
	assert.Equal(t, Vigenere, parsed)

	_, err = ParseCipher("enigma")
	assert.ErrorIs(t, err, ErrUnknownCipher)
}

func TestCipherText(t *testing.T) {
	var c Cipher
	require.NoError(t, c.UnmarshalText([]byte("HILL")))
	assert.Equal(t, Hill, c)

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hill", string(text))

	_, err = Unknown.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownCipher)
}

func TestParseDirection(t *testing.T) {
	for input, expected := range map[string]Direction{
		"":        Encrypt,
		"encrypt": Encrypt,
		"E":       Encrypt,
		"decrypt": Decrypt,
		"dec":     Decrypt,
	} {
		d, err := ParseDirection(input)
		require.NoError(t, err)
		assert.Equal(t, expected, d, "input %q", input)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("decrypt")))
	assert.Equal(t, "decrypt", d.String())
}
