package base58

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabetShape(t *testing.T) {
	assert.Len(t, Alphabet, 58)

	seen := make(map[rune]bool)
	for _, c := range Alphabet {
		assert.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
	}

	for _, ambiguous := range "0OIl+/" {
		assert.False(t, strings.ContainsRune(Alphabet, ambiguous), "alphabet contains %q", ambiguous)
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, byte('1'), symbol(0))
	assert.Equal(t, byte('A'), symbol(9))
	assert.Equal(t, byte('z'), symbol(57))

	assert.Panics(t, func() { symbol(58) })
}

func TestIndexOf(t *testing.T) {
	idx, ok := indexOf('1')
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = indexOf('A')
	assert.True(t, ok)
	assert.Equal(t, 9, idx)

	for _, c := range []byte{'0', 'O', 'I', 'l', ' ', 0} {
		_, ok := indexOf(c)
		assert.False(t, ok, "indexOf(%q)", c)
	}
}

// symbol and indexOf are inverse over the whole digit range.
func TestSymbolIndexRoundTrip(t *testing.T) {
	for d := uint16(0); d < 58; d++ {
		idx, ok := indexOf(symbol(d))
		assert.True(t, ok)
		assert.Equal(t, int(d), idx)
	}
}

func TestIsAlphabet(t *testing.T) {
	assert.True(t, IsAlphabet(""))
	assert.True(t, IsAlphabet("qYPmmAqv"))
	assert.True(t, IsAlphabet(Alphabet))
	assert.False(t, IsAlphabet("qYPmm0qv"))
	assert.False(t, IsAlphabet("hello world"))
}
