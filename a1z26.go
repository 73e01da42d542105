package classix

import (
	"strconv"
	"strings"
)

// A1Z26 replaces every letter with its one-based position in its alphabet. Positions are
// separated by single spaces; characters that are not letters are dropped.
func (e *Encoder) A1Z26(text string) (string, error) {
	if text == "" {
		return "", NewEmptyTextError(A1Z26)
	}

	positions := make([]string, 0, len(text))
	for _, r := range text {
		l, ok, err := classify(r, A1Z26)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		positions = append(positions, strconv.Itoa(l.index+1))
	}
	return strings.Join(positions, " "), nil
}

// A1Z26Decode turns whitespace-separated positions back into uppercase letters of the
// selected alphabet.
func (e *Encoder) A1Z26Decode(numbers string, cyrillic bool) (string, error) {
	fields := strings.Fields(numbers)
	if len(fields) == 0 {
		return "", NewEmptyTextError(A1Z26)
	}

	alphabet := AlphabetFor(scriptOf(cyrillic))
	var b strings.Builder
	b.Grow(len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return "", NewInvalidFormatError(field, "is not a decimal position")
		}
		if n < 1 || n > alphabet.Size() {
			return "", NewInvalidFormatError(field, "is outside the "+alphabet.Script().String()+" alphabet")
		}
		b.WriteRune(alphabet.Upper(n - 1))
	}
	return b.String(), nil
}
