package trie

// Insert stores id under key, creating any missing nodes along the path.
// An existing id for key is overwritten.
func (t *Tree) Insert(key string, id int32) {
	mustValidate(key)

	node := t.root
	for i := 0; i < len(key); i++ {
		idx := symbolIndex(key[i])
		if node.children[idx] == nil {
			node.children[idx] = &Node{}
			t.nodes++
		}
		node = node.children[idx]
	}
	if !node.hasID {
		t.size++
	}
	node.id = id
	node.hasID = true
}

// Search returns the id stored under exactly key.
func (t *Tree) Search(key string) (int32, bool) {
	mustValidate(key)

	node := t.findNode(key)
	if node == nil || !node.hasID {
		return 0, false
	}
	return node.id, true
}

// findNode returns the node at the end of key's path, or nil if the path is broken.
func (t *Tree) findNode(key string) *Node {
	node := t.root
	for i := 0; i < len(key); i++ {
		node = node.children[symbolIndex(key[i])]
		if node == nil {
			return nil
		}
	}
	return node
}

// Delete removes the id stored under key and unlinks every node on its path
// that no longer leads to a stored id. The root is never unlinked.
func (t *Tree) Delete(key string) bool {
	mustValidate(key)

	deleted, _ := t.delete(t.root, key, 0)
	if deleted {
		t.size--
	}
	return deleted
}

// delete clears key's id below node. It reports whether an id was cleared and,
// separately, whether node itself is now dead weight.
func (t *Tree) delete(node *Node, key string, depth int) (deleted, dead bool) {
	if depth == len(key) {
		if !node.hasID {
			return false, false
		}
		node.id = 0
		node.hasID = false
		return true, node.isLeaf()
	}

	idx := symbolIndex(key[depth])
	child := node.children[idx]
	if child == nil {
		return false, false
	}

	deleted, childDead := t.delete(child, key, depth+1)
	if childDead {
		node.children[idx] = nil
		t.nodes--
		t.log.Debug().Str("prefix", key[:depth+1]).Msg("pruned tree node")
	}
	return deleted, node.isDead()
}
