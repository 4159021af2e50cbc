// Package patricia implements a mutable, in-memory PATRICIA tree: a
// compressed radix-2 trie over arbitrary-length bit strings.
//
// The tree uses a "dual-use" node representation. Every node is both an
// internal routing node and a terminal key holder - there are no separate
// leaf and branch node types, and no explicit parent pointers. Instead,
// each node carries exactly two child slots, and the invariant that every
// non-root node is reachable through exactly two references (one downward
// link from its parent, one upward/self-referential link) is used to
// reconstruct the tree's topology on demand, most visibly during deletion
// and iteration.
//
// Keys are bit strings, not byte slices: every operation takes a []byte
// together with an explicit bit length, so keys need not be byte-aligned.
// Bit 1 is the most significant bit of the first byte. Reading past the
// declared length of a key logically returns the complement of its last
// bit (a zero-length key reads as all ones), which guarantees that any two
// distinct keys have a well-defined first point of difference.
//
// Limitations
//
// 1. The tree is not safe for concurrent use. All exported methods on Tree
// and Iterator assume single-threaded access, or external synchronization
// by the caller.
//
// 2. Keys are limited to 65535 bits (uint16 bit length and branch
// position).
//
// 3. Iteration order is a function of the trie's internal bit-branching
// structure, not lexicographic key order.
//
// 4. Deleting a node by predecessor replacement (see Tree.Evict) may move
// a surviving node's identity into the deleted node's former slot; stable
// node addresses across deletions are not guaranteed.
package patricia
