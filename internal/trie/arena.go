package trie

import (
	"math"

	"github.com/rs/zerolog"
)

// ref is an index into Arena.nodes.
type ref uint32

const (
	noRef   = ref(math.MaxUint32)
	rootRef = ref(0)
)

type arenaNode struct {
	children [AlphabetSize]ref
	id       int32
	hasID    bool
	// cover counts the ids stored in this node's subtree, its own included.
	cover int32
}

func (n *arenaNode) reset() {
	for i := range n.children {
		n.children[i] = noRef
	}
	n.id = 0
	n.hasID = false
	n.cover = 0
}

// Arena is a PrefixMap whose nodes live in a single slice and refer to each
// other by index. Released slots are kept on a free list and reused.
type Arena struct {
	nodes []arenaNode
	free  []ref
	log   zerolog.Logger
}

// NewArena creates an empty Arena.
func NewArena(opts ...Option) *Arena {
	o := newOptions(opts)
	a := &Arena{
		nodes: make([]arenaNode, 0, max(o.capacity, 1)),
		log:   o.logger,
	}
	a.alloc()
	return a
}

// alloc returns a reset node slot. It may grow a.nodes, so callers must not
// hold *arenaNode across a call.
func (a *Arena) alloc() ref {
	if n := len(a.free); n > 0 {
		r := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[r].reset()
		return r
	}
	if uint64(len(a.nodes)) >= uint64(noRef) {
		panic("trie: arena exhausted")
	}
	a.nodes = append(a.nodes, arenaNode{})
	r := ref(len(a.nodes) - 1)
	a.nodes[r].reset()
	return r
}

func (a *Arena) release(r ref) {
	a.free = append(a.free, r)
}

// Insert stores id under key, creating any missing nodes along the path.
// An existing id for key is overwritten without touching any cover.
func (a *Arena) Insert(key string, id int32) {
	mustValidate(key)

	cur := rootRef
	for i := 0; i < len(key); i++ {
		idx := symbolIndex(key[i])
		next := a.nodes[cur].children[idx]
		if next == noRef {
			next = a.alloc()
			a.nodes[cur].children[idx] = next
			a.log.Trace().Str("prefix", key[:i+1]).Uint32("ref", uint32(next)).Msg("allocated arena node")
		}
		cur = next
	}

	n := &a.nodes[cur]
	if n.hasID {
		n.id = id
		return
	}
	n.id = id
	n.hasID = true

	// One more id now lives below every node on the path.
	cur = rootRef
	a.nodes[cur].cover++
	for i := 0; i < len(key); i++ {
		cur = a.nodes[cur].children[symbolIndex(key[i])]
		a.nodes[cur].cover++
	}
}

// Search returns the id stored under exactly key.
func (a *Arena) Search(key string) (int32, bool) {
	mustValidate(key)

	cur := rootRef
	for i := 0; i < len(key); i++ {
		cur = a.nodes[cur].children[symbolIndex(key[i])]
		if cur == noRef {
			return 0, false
		}
	}
	n := &a.nodes[cur]
	return n.id, n.hasID
}

// Delete removes the id stored under key. Covers are decremented only while
// unwinding a path that ended in a cleared id, and any child whose cover
// reaches zero is unlinked and its slot released.
func (a *Arena) Delete(key string) bool {
	mustValidate(key)
	return a.delete(rootRef, key, 0)
}

func (a *Arena) delete(cur ref, key string, depth int) bool {
	if depth == len(key) {
		n := &a.nodes[cur]
		if !n.hasID {
			return false
		}
		n.id = 0
		n.hasID = false
		n.cover--
		return true
	}

	idx := symbolIndex(key[depth])
	next := a.nodes[cur].children[idx]
	if next == noRef || !a.delete(next, key, depth+1) {
		return false
	}

	if a.nodes[next].cover == 0 {
		a.nodes[cur].children[idx] = noRef
		a.release(next)
		a.log.Debug().Str("prefix", key[:depth+1]).Uint32("ref", uint32(next)).Msg("pruned arena node")
	}
	a.nodes[cur].cover--
	return true
}

// Len returns the number of stored ids.
func (a *Arena) Len() int {
	return int(a.nodes[rootRef].cover)
}

// NodeCount returns the number of linked nodes, root included.
func (a *Arena) NodeCount() int {
	return len(a.nodes) - len(a.free)
}
