package classix

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Dictionary is an immutable word list used to build passphrase keys.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// NewDictionary builds a dictionary from words. Surrounding whitespace is trimmed, blank
// entries and duplicates are dropped, and the first-seen order is kept.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// LoadDictionary reads a word list with one word per line.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	d := NewDictionary(words)
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: dictionary %s contains no words", ErrInvalidConfiguration, path)
	}
	return d, nil
}

func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the word list.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

// Random picks a word uniformly.
func (d *Dictionary) Random(rng RandomSource) (string, error) {
	if d.Len() == 0 {
		return "", fmt.Errorf("%w: dictionary is empty", ErrInvalidConfiguration)
	}
	return d.words[rng.IntN(len(d.words))], nil
}

// wordsFor returns the words made only of letters of the given script.
func (d *Dictionary) wordsFor(script Script) []string {
	alphabet := AlphabetFor(script)
	var out []string
	for _, w := range d.words {
		ok := true
		for _, r := range w {
			if _, found := alphabet.IndexOf(r); !found {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}
