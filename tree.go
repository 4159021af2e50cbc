package patricia

// Tree is a mutable PATRICIA trie mapping bit-string keys to a payload of
// type V. The zero value is not usable; construct one with New.
//
// A Tree is not safe for concurrent use.
type Tree[V any] struct {
	root  *Node[V]
	alloc Allocator[V]
	count int
}

// Option configures a Tree at construction time.
type Option[V any] func(*Tree[V])

// WithAllocator selects the node allocator a Tree uses. The default,
// applied when no WithAllocator option is given, is HeapAllocator.
func WithAllocator[V any](a Allocator[V]) Option[V] {
	return func(t *Tree[V]) { t.alloc = a }
}

// New creates an empty Tree. The root is a synthetic sentinel with branch
// position 0, whose two child slots both self-reference: this is what
// lets lookup, insert and iteration treat the real root the same as any
// other node, without a special case for "tree is empty".
func New[V any](opts ...Option[V]) *Tree[V] {
	root := &Node[V]{}
	root.child[0] = root
	root.child[1] = root

	t := &Tree[V]{root: root}
	for _, opt := range opts {
		opt(t)
	}
	if t.alloc == nil {
		t.alloc = NewHeapAllocator[V]()
	}
	return t
}

// Len returns the number of keys currently held in the tree.
func (t *Tree[V]) Len() int {
	return t.count
}

// Close tears the tree down and returns it to its initial, empty state.
// It is equivalent to Destroy(nil).
func (t *Tree[V]) Close() {
	t.Destroy(nil)
}

func (t *Tree[V]) newNode(key []byte, bitlen uint16) *Node[V] {
	n := t.alloc.Alloc(bitlen)
	n.nbit = bitlen
	bytelen := int((bitlen + 7) / 8)
	if cap(n.data) < bytelen {
		n.data = make([]byte, bytelen)
	} else {
		n.data = n.data[:bytelen]
	}
	copy(n.data, key[:bytelen])
	n.child[0] = nil
	n.child[1] = nil
	return n
}

func (t *Tree[V]) free(n *Node[V]) {
	var zero V
	n.payload = zero
	if f, ok := t.alloc.(Freer[V]); ok {
		f.Free(n)
	}
}

// Destroy removes every node from the tree in O(n) time, invoking deleter
// (if non-nil) with the payload of each removed node. It leaves the tree
// empty and ready for reuse, then, if the configured allocator implements
// Killer, calls Kill on it once.
//
// The algorithm funnels the tree into a singly linked list of dead nodes
// before freeing any of them, which avoids recursion and the need for a
// separate stack: each node is visited at most twice while the list is
// built, which keeps teardown linear even though that isn't obvious from
// a first reading of the loop.
func (t *Tree[V]) Destroy(deleter func(V)) {
	hold := t.root.child[0]
	t.root.child[0] = t.root
	t.root.child[1] = t.root

	// Force the rightmost descendant of the right spine to point at the
	// root sentinel, giving the funnel below an unambiguous terminator;
	// the right spine's topology is the first casualty of flattening.
	scan := hold
	for scan.child[1].bpos > scan.bpos {
		scan = scan.child[1]
	}
	scan.child[1] = t.root

	var list *Node[V]
	for hold != t.root {
		next := hold.child[0]
		tail := hold.child[1]
		if next.bpos <= hold.bpos {
			// left child is an uplink; the only way onward is the right.
			next = tail
		} else {
			// graft tail onto the rightmost link of the left subtree's
			// right spine, funnelling everything into one sequence.
			scan = next
			for scan.child[1].bpos > scan.bpos {
				scan = scan.child[1]
			}
			scan.child[1] = tail
		}
		hold.bpos = 0 // seen as an uplink if revisited
		hold.child[0] = list
		list = hold
		hold = next
	}

	for list != nil {
		n := list
		list = n.child[0]
		if deleter != nil {
			deleter(n.payload)
		}
		t.free(n)
	}
	t.count = 0

	if k, ok := t.alloc.(Killer); ok {
		k.Kill()
	}
}
