package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolIndex(t *testing.T) {
	tests := []struct {
		c    byte
		want int
		ok   bool
	}{
		{'a', 0, true},
		{'m', 12, true},
		{'z', 25, true},
		{'A', 26, true},
		{'M', 38, true},
		{'Z', 51, true},
		{'0', 0, false},
		{'!', 0, false},
		{' ', 0, false},
		{'`', 0, false},
		{'{', 0, false},
		{'@', 0, false},
		{'[', 0, false},
		{0xc3, 0, false},
	}

	for _, tt := range tests {
		got, ok := SymbolIndex(tt.c)
		assert.Equal(t, tt.ok, ok, "SymbolIndex(%q)", tt.c)
		assert.Equal(t, tt.want, got, "SymbolIndex(%q)", tt.c)
	}
}

func TestSymbolIndexCoversAlphabet(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < AlphabetSize; i++ {
		idx, ok := SymbolIndex(symbolAt(i))
		require.True(t, ok)
		require.Equal(t, i, idx)
		seen[idx] = true
	}
	assert.Len(t, seen, AlphabetSize)
}

func TestValidateKey(t *testing.T) {
	require.NoError(t, ValidateKey(""))
	require.NoError(t, ValidateKey("helloWORLD"))

	err := ValidateKey("hello!")
	require.ErrorIs(t, err, ErrInvalidSymbol)

	var symErr *InvalidSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, 5, symErr.Offset)
	assert.Equal(t, byte('!'), symErr.Symbol)
	assert.Equal(t, "hello!", symErr.Key)

	err = ValidateKey("a b")
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, 1, symErr.Offset)
}
