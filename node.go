package patricia

// Node is a single dual-use PATRICIA node: a routing point for the trie's
// bit-branching structure and, whenever it holds a real key, the terminal
// holder of that key's payload.
//
// child[0] and child[1] are not simply "left" and "right" subtrees. An
// edge to child[i] is a genuine downlink only if child[i].bpos > n.bpos;
// otherwise it is a threaded uplink (possibly a self-link, when
// child[i] == n) standing in for the parent pointer this representation
// deliberately omits. Callers outside this package never need to reason
// about this - it is examined only by insert, delete and iteration.
type Node[V any] struct {
	child   [2]*Node[V]
	bpos    uint16
	nbit    uint16
	data    []byte
	payload V
}

// Bpos returns the node's branch (discriminating bit) position, or 0 for
// the synthetic root sentinel.
func (n *Node[V]) Bpos() uint16 { return n.bpos }

// NBit returns the bit length of the key stored at this node.
func (n *Node[V]) NBit() uint16 { return n.nbit }

// Data returns the raw key bytes stored at this node. The returned slice
// must not be retained past the node's removal from the tree, and must
// not be modified.
func (n *Node[V]) Data() []byte { return n.data }

// Payload returns the value associated with this node's key.
func (n *Node[V]) Payload() V { return n.payload }

func isParentOf[V any](p, x *Node[V]) bool {
	return p.child[0] == x || p.child[1] == x
}

// otherIdx yields the slot opposite the one occupied by x in p - the
// surviving subtree when x is spliced out of the path through p.
func otherIdx[V any](p, x *Node[V]) int {
	if p.child[0] == x {
		return 1
	}
	return 0
}

// childIdx yields the slot actually occupied by x in p.
func childIdx[V any](p, x *Node[V]) int {
	if p.child[1] == x {
		return 1
	}
	return 0
}
