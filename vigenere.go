package classix

import (
	"strings"
)

// VigenereParams parameterises the Vigenère cipher.
type VigenereParams struct {
	// Key is the keyword. Surrounding punctuation and spaces are ignored and it is
	// upper-cased before use. Use GenerateVigenereKey when no keyword is at hand.
	Key string
	// Cyrillic selects the Cyrillic alphabet instead of the Latin one.
	Cyrillic bool
	// IgnoreCase upper-cases the text before encryption.
	IgnoreCase bool
	// Shift, when positive, applies a Caesar shift to the text before the keyword.
	Shift int
}

// Vigenere encrypts text with a repeating keyword. Characters that are not letters are
// copied unchanged and do not consume a key letter.
func (e *Encoder) Vigenere(text string, p VigenereParams) (string, error) {
	if text == "" {
		return "", NewEmptyTextError(Vigenere)
	}

	alphabet := AlphabetFor(scriptOf(p.Cyrillic))
	key, err := normalizeVigenereKey(p.Key, alphabet)
	if err != nil {
		return "", err
	}

	if p.Shift > 0 {
		if text, err = caesar(text, p.Shift, false, Vigenere); err != nil {
			return "", err
		}
	}
	if p.IgnoreCase {
		text = strings.ToUpper(text)
	}

	return applyVigenere(text, key, alphabet, 1)
}

// VigenereDecrypt reverses Vigenere for the same parameters. Text upper-cased by IgnoreCase
// during encryption comes back upper-cased.
func (e *Encoder) VigenereDecrypt(text string, p VigenereParams) (string, error) {
	if text == "" {
		return "", NewEmptyTextError(Vigenere)
	}

	alphabet := AlphabetFor(scriptOf(p.Cyrillic))
	key, err := normalizeVigenereKey(p.Key, alphabet)
	if err != nil {
		return "", err
	}
	if p.IgnoreCase {
		text = strings.ToUpper(text)
	}

	plain, err := applyVigenere(text, key, alphabet, -1)
	if err != nil {
		return "", err
	}
	if p.Shift > 0 {
		return caesar(plain, -p.Shift, false, Vigenere)
	}
	return plain, nil
}

func applyVigenere(text string, key []int, alphabet *Alphabet, sign int) (string, error) {
	runes := []rune(text)
	key = reconcileKey(key, len(runes))

	var b strings.Builder
	b.Grow(len(text))
	keyIndex := 0
	for _, r := range runes {
		l, ok, err := classify(r, Vigenere)
		if err != nil {
			return "", err
		}
		if !ok {
			b.WriteRune(r)
			continue
		}
		if l.alphabet != alphabet {
			return "", NewForeignCharacterError(r, alphabet.Script(), Vigenere)
		}
		index := mod(l.index+sign*key[keyIndex], alphabet.Size())
		b.WriteRune(alphabet.Letter(index, l.upper))
		keyIndex++
	}
	return b.String(), nil
}

// normalizeVigenereKey trims punctuation and spaces from both ends of key, upper-cases it
// and resolves every letter to its index in alphabet.
func normalizeVigenereKey(key string, alphabet *Alphabet) ([]int, error) {
	key = strings.ToUpper(strings.Trim(key, Punctuation+" "))
	if key == "" {
		return nil, NewInvalidKeyError(Vigenere, "key is required, generate one with GenerateVigenereKey")
	}

	indices := make([]int, 0, len(key))
	for _, r := range key {
		i, ok := alphabet.IndexOf(r)
		if !ok || !alphabet.IsUpper(r) {
			return nil, NewInvalidKeyError(Vigenere, "character "+string(r)+" is not a "+alphabet.Script().String()+" letter")
		}
		indices = append(indices, i)
	}
	return indices, nil
}

// reconcileKey truncates key to n entries or repeats it cyclically until it has n entries.
func reconcileKey(key []int, n int) []int {
	if len(key) >= n {
		return key[:n]
	}
	extended := make([]int, n)
	for i := range extended {
		extended[i] = key[i%len(key)]
	}
	return extended
}
