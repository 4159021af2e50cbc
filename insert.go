package patricia

// Insert adds key/payload to the tree, returning the node holding that
// key and true if it was newly created. If the key already exists, the
// existing node is returned unchanged and false is returned; Insert never
// overwrites an existing payload.
func (t *Tree[V]) Insert(key []byte, bitlen uint16, payload V) (*Node[V], bool) {
	last := t.root
	next := t.root.child[0]
	for next.bpos > last.bpos {
		last = next
		next = last.child[idx(getBit(key, bitlen, last.bpos))]
	}

	// Duplicates are assumed to be the exception rather than the rule,
	// so we pay for a cheap equality probe up front and only compute the
	// (more expensive) first-difference bit position if it turns out we
	// actually need to insert.
	if equalKey(key, bitlen, next.data, next.nbit) {
		return next, false
	}

	bpos := bitDiff(key, bitlen, next.data, next.nbit)

	node := t.newNode(key, bitlen)
	node.bpos = bpos
	node.payload = payload

	// Second, depth-limited walk to find where the new branch position
	// actually belongs among the existing nodes.
	var pdir bool
	last = t.root
	next = t.root.child[0]
	for next.bpos > last.bpos && next.bpos < bpos {
		last = next
		pdir = getBit(key, bitlen, last.bpos)
		next = last.child[idx(pdir)]
	}

	// The new node's own bit at its branch position decides which child
	// slot loops back to itself (the self-link standing in for its
	// parent pointer); the other slot takes over whatever next was.
	ndir := getBit(key, bitlen, bpos)
	node.child[idx(ndir)] = node
	node.child[idx(!ndir)] = next
	last.child[idx(pdir)] = node

	t.count++
	return node, true
}
