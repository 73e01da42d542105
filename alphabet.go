package classix

import (
	"strings"
	"unicode"
)

// Script identifies one of the two supported alphabets.
type Script int8

const (
	Latin Script = iota
	Cyrillic
)

func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	default:
		return "unknown"
	}
}

const (
	latinLowercase    = "abcdefghijklmnopqrstuvwxyz"
	latinUppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	cyrillicLowercase = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
	cyrillicUppercase = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

	// Punctuation is the ASCII punctuation set.
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet is an ordered letter table with positionally aligned case variants.
type Alphabet struct {
	script Script
	lower  []rune
	upper  []rune
	index  map[rune]int
}

var (
	latinAlphabet    = newAlphabet(Latin, latinLowercase, latinUppercase)
	cyrillicAlphabet = newAlphabet(Cyrillic, cyrillicLowercase, cyrillicUppercase)
)

func newAlphabet(script Script, lower, upper string) *Alphabet {
	a := &Alphabet{
		script: script,
		lower:  []rune(lower),
		upper:  []rune(upper),
	}
	a.index = make(map[rune]int, 2*len(a.lower))
	for i, r := range a.lower {
		a.index[r] = i
	}
	for i, r := range a.upper {
		a.index[r] = i
	}
	return a
}

// AlphabetFor returns the letter table of the given script.
func AlphabetFor(script Script) *Alphabet {
	if script == Cyrillic {
		return cyrillicAlphabet
	}
	return latinAlphabet
}

func scriptOf(cyrillic bool) Script {
	if cyrillic {
		return Cyrillic
	}
	return Latin
}

func (a *Alphabet) Script() Script { return a.script }

// Size returns the number of letters in one case variant.
func (a *Alphabet) Size() int { return len(a.upper) }

// IndexOf returns the zero-based position of r in either case variant.
func (a *Alphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// IsUpper reports whether r belongs to the uppercase variant.
func (a *Alphabet) IsUpper(r rune) bool {
	i, ok := a.index[r]
	return ok && a.upper[i] == r
}

func (a *Alphabet) Upper(i int) rune { return a.upper[i] }

func (a *Alphabet) Lower(i int) rune { return a.lower[i] }

// Letter returns the letter at position i in the requested case.
func (a *Alphabet) Letter(i int, upper bool) rune {
	if upper {
		return a.upper[i]
	}
	return a.lower[i]
}

// Uppercase returns a copy of the uppercase variant.
func (a *Alphabet) Uppercase() string { return string(a.upper) }

// letter describes a rune that belongs to one of the supported alphabets.
type letter struct {
	alphabet *Alphabet
	index    int
	upper    bool
}

// classify locates r in the Latin or Cyrillic tables. ok is false for runes that are not
// letters at all; letters outside both tables yield ErrUnsupportedAlphabet.
func classify(r rune, cipher Cipher) (letter, bool, error) {
	if !unicode.IsLetter(r) {
		return letter{}, false, nil
	}
	for _, a := range [...]*Alphabet{latinAlphabet, cyrillicAlphabet} {
		if i, found := a.index[r]; found {
			return letter{alphabet: a, index: i, upper: a.upper[i] == r}, true, nil
		}
	}
	return letter{}, false, NewUnsupportedLetterError(r, cipher)
}

func isPunctuation(r rune) bool {
	return r < unicode.MaxASCII && strings.ContainsRune(Punctuation, r)
}

// mod returns the non-negative remainder of a divided by m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
