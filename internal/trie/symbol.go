package trie

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of symbols a key may be built from:
// 26 lowercase letters followed by 26 uppercase letters.
const AlphabetSize = 52

// ErrInvalidSymbol is matched by every InvalidSymbolError.
var ErrInvalidSymbol = errors.New("trie: invalid symbol")

// InvalidSymbolError reports a key byte outside [a-zA-Z].
type InvalidSymbolError struct {
	Key    string
	Offset int
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("trie: invalid symbol %q (byte %d) at offset %d in key %q",
		e.Symbol, e.Symbol, e.Offset, e.Key)
}

func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// SymbolIndex maps a lowercase letter to 0-25 and an uppercase letter to 26-51.
// ok is false for any other byte.
func SymbolIndex(c byte) (idx int, ok bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26, true
	}
	return 0, false
}

// ValidateKey returns an *InvalidSymbolError for the first byte of key that is
// not an alphabet symbol. The empty key is valid.
func ValidateKey(key string) error {
	for i := 0; i < len(key); i++ {
		if _, ok := SymbolIndex(key[i]); !ok {
			return &InvalidSymbolError{Key: key, Offset: i, Symbol: key[i]}
		}
	}
	return nil
}

// mustValidate panics on an invalid key. All operations call it before
// touching any node, so a rejected key never leaves partial structure behind.
func mustValidate(key string) {
	if err := ValidateKey(key); err != nil {
		panic(err)
	}
}

// symbolIndex is SymbolIndex for bytes already checked by mustValidate.
func symbolIndex(c byte) int {
	idx, _ := SymbolIndex(c)
	return idx
}
