package classix

import (
	"errors"
	"fmt"
)

var (
	// Input errors
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedAlphabet = errors.New("unsupported alphabet")
	ErrInvalidFormat       = errors.New("invalid format")

	// Key errors
	ErrInvalidKey       = errors.New("invalid key")
	ErrKeyNotInvertible = errors.New("key matrix is not invertible")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownCipher        = errors.New("unknown cipher")
)

func NewEmptyTextError(cipher Cipher) error {
	return fmt.Errorf("%w: text is required to %s", ErrInvalidInput, cipher)
}

func NewUnsupportedLetterError(r rune, cipher Cipher) error {
	return fmt.Errorf("%w: letter %q is neither Latin nor Cyrillic (%s)", ErrUnsupportedAlphabet, r, cipher)
}

func NewForeignCharacterError(r rune, script Script, cipher Cipher) error {
	return fmt.Errorf("%w: character %q is not part of the %s alphabet (%s)", ErrUnsupportedAlphabet, r, script, cipher)
}

func NewInvalidKeyError(cipher Cipher, details string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidKey, cipher, details)
}

func NewKeyNotInvertibleError(cause error) error {
	return fmt.Errorf("%w: %v", ErrKeyNotInvertible, cause)
}

func NewNoEncodableTextError(cipher Cipher) error {
	return fmt.Errorf("%w: no characters left to %s after removing punctuation", ErrInvalidInput, cipher)
}

func NewBlockLengthError(length, blockSize int) error {
	return fmt.Errorf("%w: text length %d is not a multiple of the block size %d", ErrInvalidInput, length, blockSize)
}

func NewInvalidFormatError(token string, details string) error {
	return fmt.Errorf("%w: token %q %s", ErrInvalidFormat, token, details)
}

// IsValidationError returns true if the error was caused by the text handed to a cipher.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUnsupportedAlphabet) ||
		errors.Is(err, ErrInvalidFormat)
}

// IsKeyError returns true if the error was caused by the cipher key.
func IsKeyError(err error) bool {
	return errors.Is(err, ErrInvalidKey) ||
		errors.Is(err, ErrKeyNotInvertible)
}

// IsConfigurationError returns true if the error represents a setup problem rather than bad data.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrUnknownCipher)
}
