package patricia

// Lookup searches for a node whose key is bit-for-bit identical to the
// given key, returning (nil, false) if none exists.
func (t *Tree[V]) Lookup(key []byte, bitlen uint16) (*Node[V], bool) {
	node := t.root.child[0]
	opos := t.root.bpos
	for node.bpos > opos {
		opos = node.bpos
		node = node.child[idx(getBit(key, bitlen, node.bpos))]
	}
	if node != t.root && equalKey(key, bitlen, node.data, node.nbit) {
		return node, true
	}
	return nil, false
}

// Prefix searches for the longest key in the tree that is a prefix of the
// given key (including an exact match), returning (nil, false) if even
// the empty key is not present.
//
// The descent doubles as both an exact-match search and a running record
// of the best prefix candidate seen so far, since any node visited along
// the way down whose key is no longer than the search key and matches its
// leading bits is a valid prefix match.
func (t *Tree[V]) Prefix(key []byte, bitlen uint16) (*Node[V], bool) {
	var best *Node[V]
	node := t.root.child[0]
	opos := t.root.bpos
	for node.bpos > opos {
		if node.nbit <= bitlen && equalKey(key, node.nbit, node.data, node.nbit) {
			best = node
		}
		opos = node.bpos
		node = node.child[idx(getBit(key, bitlen, node.bpos))]
	}
	if node != t.root && node.nbit <= bitlen && equalKey(key, node.nbit, node.data, node.nbit) {
		return node, true
	}
	if best != nil {
		return best, true
	}
	return nil, false
}
