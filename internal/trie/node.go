package trie

import "github.com/rs/zerolog"

// Node is a vertex of a Tree. It owns its children directly.
type Node struct {
	// children holds one slot per alphabet symbol; nil means no stored key
	// continues through that symbol.
	children [AlphabetSize]*Node

	// id is meaningful only when hasID is set.
	id    int32
	hasID bool
}

// isLeaf reports whether every child slot is empty.
func (n *Node) isLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// isDead reports whether n holds nothing and can be unlinked from its parent.
func (n *Node) isDead() bool {
	return !n.hasID && n.isLeaf()
}

// Tree is a PrefixMap built from recursively owned nodes.
type Tree struct {
	root  *Node
	size  int
	nodes int
	log   zerolog.Logger
}

// NewTree creates an empty Tree.
func NewTree(opts ...Option) *Tree {
	o := newOptions(opts)
	return &Tree{
		root:  &Node{},
		nodes: 1,
		log:   o.logger,
	}
}

// Len returns the number of stored ids.
func (t *Tree) Len() int {
	return t.size
}

// NodeCount returns the number of linked nodes, root included.
func (t *Tree) NodeCount() int {
	return t.nodes
}
