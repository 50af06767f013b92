// Package trie implements a prefix map from keys over the alphabet [a-zA-Z]
// to int32 identifiers.
//
// Two node-ownership strategies share one contract:
//
//   - Arena keeps every node in a flat pool addressed by index and tracks, per
//     node, how many stored ids live below it (its cover). Delete unlinks a
//     child as soon as its cover drops to zero.
//   - Tree lets each node own its 52 child slots directly. Delete re-checks on
//     the way back up whether a child has become dead weight (no id, no
//     children) and unlinks it.
//
// Keys containing anything other than ASCII letters are a caller error: every
// operation validates the whole key first and panics with an
// *InvalidSymbolError, leaving the map untouched. Use ValidateKey to check
// untrusted input beforehand.
//
// A PrefixMap is not safe for concurrent use.
package trie

import (
	"errors"
	"fmt"
)

// PrefixMap maps keys to identifiers.
type PrefixMap interface {
	// Insert stores id under key, replacing any id already stored there.
	Insert(key string, id int32)
	// Search returns the id stored under exactly key.
	Search(key string) (int32, bool)
	// Delete removes the id stored under key and prunes the branch that
	// existed only for it. It reports whether an id was removed.
	Delete(key string) bool
	// Len returns the number of stored ids.
	Len() int
	// NodeCount returns the number of linked nodes, root included.
	NodeCount() int
}

// Kind selects a PrefixMap implementation.
type Kind string

const (
	KindArena Kind = "arena"
	KindTree  Kind = "tree"
)

// Kinds lists every implementation.
var Kinds = []Kind{KindArena, KindTree}

var ErrUnknownKind = errors.New("trie: unknown kind")

var (
	_ PrefixMap = (*Arena)(nil)
	_ PrefixMap = (*Tree)(nil)
)

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New creates an empty PrefixMap of the given kind.
func New(kind Kind, opts ...Option) (PrefixMap, error) {
	switch kind {
	case KindArena:
		return NewArena(opts...), nil
	case KindTree:
		return NewTree(opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
