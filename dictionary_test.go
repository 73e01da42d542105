package classix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionary(t *testing.T) {
	dict := NewDictionary([]string{" apple ", "", "banana", "apple", "\tcherry"})

	assert.Equal(t, 3, dict.Len())
	assert.Equal(t, []string{"apple", "banana", "cherry"}, dict.Words())
	assert.True(t, dict.Contains("banana"))
	assert.False(t, dict.Contains(" apple "))
}

func TestDictionaryWordsIsACopy(t *testing.T) {
	dict := NewDictionary([]string{"apple"})

	words := dict.Words()
	words[0] = "changed"
	assert.Equal(t, []string{"apple"}, dict.Words())
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbravo\r\n\ncharlie\n"), 0644))

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, dict.Words())
}

func TestLoadDictionaryErrors(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n \n"), 0644))
	_, err = LoadDictionary(empty)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestDictionaryRandom(t *testing.T) {
	dict := NewDictionary([]string{"alpha", "bravo", "charlie"})
	rng := newTestRand()

	for i := 0; i < 20; i++ {
		word, err := dict.Random(rng)
		require.NoError(t, err)
		assert.True(t, dict.Contains(word))
	}

	_, err := NewDictionary(nil).Random(rng)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
