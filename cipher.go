package classix

import (
	"fmt"
	"strings"
)

// Cipher names one of the supported transformations.
type Cipher int8

const (
	Unknown Cipher = iota
	Caesar
	ROT1
	ROT13
	A1Z26
	Vigenere
	Hill
)

func (c Cipher) String() string {
	ciphers := map[Cipher]string{
		Unknown:  "unknown",
		Caesar:   "caesar",
		ROT1:     "rot1",
		ROT13:    "rot13",
		A1Z26:    "a1z26",
		Vigenere: "vigenere",
		Hill:     "hill",
	}

	if str, ok := ciphers[c]; ok {
		return str
	}
	return "unknown"
}

// ParseCipher converts a cipher name, case-insensitively, into a Cipher.
func ParseCipher(name string) (Cipher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "caesar":
		return Caesar, nil
	case "rot1":
		return ROT1, nil
	case "rot13":
		return ROT13, nil
	case "a1z26":
		return A1Z26, nil
	case "vigenere", "vigenère":
		return Vigenere, nil
	case "hill":
		return Hill, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Cipher) MarshalText() ([]byte, error) {
	if c == Unknown {
		return nil, fmt.Errorf("%w: cannot marshal unknown cipher", ErrUnknownCipher)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cipher) UnmarshalText(text []byte) error {
	parsed, err := ParseCipher(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Direction selects between encrypting and decrypting.
type Direction int8

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// ParseDirection accepts "encrypt"/"decrypt" and their short forms; the empty string means Encrypt.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "encrypt", "enc", "e":
		return Encrypt, nil
	case "decrypt", "dec", "d":
		return Decrypt, nil
	default:
		return Encrypt, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfiguration, name)
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
