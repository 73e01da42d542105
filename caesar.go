package classix

import "strings"

// DefaultShift is the classic Caesar offset.
const DefaultShift = 3

// Caesar shifts every Latin or Cyrillic letter by shift positions within its own alphabet,
// keeping its case. Other characters are copied unchanged. When ignoreCase is set the text is
// upper-cased first.
func (e *Encoder) Caesar(text string, shift int, ignoreCase bool) (string, error) {
	return caesar(text, shift, ignoreCase, Caesar)
}

// CaesarDecrypt reverses Caesar for the same shift.
func (e *Encoder) CaesarDecrypt(text string, shift int, ignoreCase bool) (string, error) {
	return caesar(text, -shift, ignoreCase, Caesar)
}

// ROT1 is Caesar with a shift of one.
func (e *Encoder) ROT1(text string) (string, error) {
	return caesar(text, 1, false, ROT1)
}

// ROT13 is Caesar with a shift of thirteen.
func (e *Encoder) ROT13(text string) (string, error) {
	return caesar(text, 13, false, ROT13)
}

func caesar(text string, shift int, ignoreCase bool, cipher Cipher) (string, error) {
	if text == "" {
		return "", NewEmptyTextError(cipher)
	}
	if ignoreCase {
		text = strings.ToUpper(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		l, ok, err := classify(r, cipher)
		if err != nil {
			return "", err
		}
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(l.alphabet.Letter(mod(l.index+shift, l.alphabet.Size()), l.upper))
	}
	return b.String(), nil
}
