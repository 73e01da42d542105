package classix

import (
	"strings"
	"unicode"

	"github.com/hengadev/classix/internal/matrix"
)

// hillAlphabet is an uppercase letter table extended with a trailing space.
type hillAlphabet struct {
	script  Script
	symbols []rune
	index   map[rune]int
	pad     rune
}

var (
	latinHill    = newHillAlphabet(latinAlphabet, 'Z')
	cyrillicHill = newHillAlphabet(cyrillicAlphabet, 'Я')
)

func newHillAlphabet(a *Alphabet, pad rune) *hillAlphabet {
	symbols := append([]rune(a.Uppercase()), ' ')
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		index[r] = i
	}
	return &hillAlphabet{script: a.Script(), symbols: symbols, index: index, pad: pad}
}

func hillAlphabetFor(script Script) *hillAlphabet {
	if script == Cyrillic {
		return cyrillicHill
	}
	return latinHill
}

// Size is the modulus of the Hill arithmetic: the letters plus the space.
func (h *hillAlphabet) Size() int { return len(h.symbols) }

// Hill encrypts text with the square key matrix spelled out by key. Punctuation is removed,
// text and key are upper-cased, and the last block is padded with the alphabet's final letter
// ("Z" for Latin) up to the length of the first block. The output only contains letters of the
// selected alphabet and spaces.
func (e *Encoder) Hill(text, key string, cyrillic bool) (string, error) {
	if text == "" {
		return "", NewEmptyTextError(Hill)
	}

	alphabet := hillAlphabetFor(scriptOf(cyrillic))
	keyMatrix, err := hillKeyMatrix(key, alphabet)
	if err != nil {
		return "", err
	}

	blocks, err := hillBlocks(text, keyMatrix.Size(), alphabet, true)
	if err != nil {
		return "", err
	}
	return hillTransform(blocks, keyMatrix, alphabet), nil
}

// HillDecrypt reverses Hill. The ciphertext length, after punctuation is removed, must be a
// multiple of the key dimension and the key matrix must be invertible modulo the alphabet size.
// Padding added during encryption is kept.
func (e *Encoder) HillDecrypt(text, key string, cyrillic bool) (string, error) {
	if text == "" {
		return "", NewEmptyTextError(Hill)
	}

	alphabet := hillAlphabetFor(scriptOf(cyrillic))
	keyMatrix, err := hillKeyMatrix(key, alphabet)
	if err != nil {
		return "", err
	}
	inverse, err := matrix.Inverse(keyMatrix, alphabet.Size())
	if err != nil {
		return "", NewKeyNotInvertibleError(err)
	}

	blocks, err := hillBlocks(text, keyMatrix.Size(), alphabet, false)
	if err != nil {
		return "", err
	}
	return hillTransform(blocks, inverse, alphabet), nil
}

// hillKeyMatrix upper-cases key and arranges it row-major into an n×n matrix of alphabet
// indices.
func hillKeyMatrix(key string, alphabet *hillAlphabet) (matrix.Matrix, error) {
	runes := []rune(strings.ToUpper(key))
	n := isqrt(len(runes))
	if n == 0 || n*n != len(runes) {
		return nil, NewInvalidKeyError(Hill, "key length must be a perfect square")
	}

	values := make([]int, len(runes))
	for i, r := range runes {
		index, ok := alphabet.index[r]
		if !ok {
			return nil, NewInvalidKeyError(Hill, "character "+string(r)+" is not part of the "+alphabet.script.String()+" alphabet")
		}
		values[i] = index
	}
	return matrix.FromSlice(values, n)
}

// hillBlocks strips punctuation, upper-cases text and cuts it into index vectors of length n.
func hillBlocks(text string, n int, alphabet *hillAlphabet, pad bool) ([][]int, error) {
	runes := []rune(strings.ToUpper(strings.Map(func(r rune) rune {
		if isPunctuation(r) {
			return -1
		}
		return r
	}, text)))
	if len(runes) == 0 {
		return nil, NewNoEncodableTextError(Hill)
	}
	if !pad && len(runes)%n != 0 {
		return nil, NewBlockLengthError(len(runes), n)
	}

	indices := make([]int, len(runes))
	for i, r := range runes {
		index, ok := alphabet.index[r]
		if !ok {
			if unicode.IsLetter(r) {
				if _, _, err := classify(r, Hill); err != nil {
					return nil, err
				}
			}
			return nil, NewForeignCharacterError(r, alphabet.script, Hill)
		}
		indices[i] = index
	}

	blocks := make([][]int, 0, (len(indices)+n-1)/n)
	for i := 0; i < len(indices); i += n {
		end := min(i+n, len(indices))
		block := make([]int, end-i, n)
		copy(block, indices[i:end])
		blocks = append(blocks, block)
	}

	if pad {
		last := len(blocks) - 1
		padIndex := alphabet.index[alphabet.pad]
		for len(blocks[last]) < len(blocks[0]) {
			blocks[last] = append(blocks[last], padIndex)
		}
	}
	return blocks, nil
}

func hillTransform(blocks [][]int, key matrix.Matrix, alphabet *hillAlphabet) string {
	var b strings.Builder
	b.Grow(len(blocks) * key.Size())
	for _, block := range blocks {
		for _, index := range matrix.MulVector(block, key, alphabet.Size()) {
			b.WriteRune(alphabet.symbols[index])
		}
	}
	return b.String()
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
