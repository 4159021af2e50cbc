package patricia

// PoolAllocator is a recycling Allocator: nodes freed by the tree are kept
// around in per-size buckets (keyed by the byte length of their packed
// key) instead of being handed back to the garbage collector, and Alloc
// prefers a recycled node over a fresh allocation whenever one of the
// right size is available.
//
// PoolAllocator carries no epoch tracking, generation counters or
// locking: a PATRICIA tree is single-threaded by design, so there is
// never a concurrent reader that could still be holding a pointer into a
// node being recycled.
//
// A PoolAllocator is not safe for concurrent use, and must not be shared
// between trees.
type PoolAllocator[V any] struct {
	buckets   map[int][]*Node[V]
	allocated int
	recycled  int
}

// NewPoolAllocator returns an empty PoolAllocator.
func NewPoolAllocator[V any]() *PoolAllocator[V] {
	return &PoolAllocator[V]{buckets: make(map[int][]*Node[V])}
}

// Alloc implements Allocator.
func (p *PoolAllocator[V]) Alloc(bitlen uint16) *Node[V] {
	bytelen := int((bitlen + 7) / 8)
	if bucket := p.buckets[bytelen]; len(bucket) > 0 {
		n := bucket[len(bucket)-1]
		p.buckets[bytelen] = bucket[:len(bucket)-1]
		p.recycled++
		return n
	}
	p.allocated++
	return &Node[V]{data: make([]byte, bytelen)}
}

// Free implements Freer. The node is cleared of tree-internal state and
// stashed in the bucket matching its key's byte length for later reuse.
func (p *PoolAllocator[V]) Free(n *Node[V]) {
	bytelen := len(n.data)
	n.child[0] = nil
	n.child[1] = nil
	n.bpos = 0
	n.nbit = 0
	var zero V
	n.payload = zero
	p.buckets[bytelen] = append(p.buckets[bytelen], n)
}

// Kill implements Killer, dropping every recycled node so the garbage
// collector can reclaim them.
func (p *PoolAllocator[V]) Kill() {
	p.buckets = make(map[int][]*Node[V])
}

// Stats reports the lifetime allocation and recycling counts, mirroring
// the accounting a block allocator keeps for diagnostics.
func (p *PoolAllocator[V]) Stats() (allocated, recycled int) {
	return p.allocated, p.recycled
}
