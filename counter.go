package patricia

import (
	"fmt"
	"time"
)

// Stats reports the result of walking and validating a Tree.
type Stats struct {
	Nodes     int
	TotalBits int64
	MaxBpos   uint16
	Elapsed   time.Duration
}

// Validate walks the tree and checks the two-reference invariant the
// whole representation rests on: every real node (branch position > 0)
// must be the target of exactly one downlink (a child slot belonging to
// a node with a strictly smaller branch position) and exactly one
// uplink (a child slot - possibly its own - belonging to a node whose
// branch position is not smaller). A node with two downlinks, a missing
// uplink, or an uplink that nothing threads back through would all
// violate this without necessarily changing how many nodes a plain
// traversal visits, so counting references is done directly rather than
// inferred from visit counts.
//
// It also checks that the number of real nodes found matches the tree's
// own running count of inserted keys, and returns diagnostic Stats
// alongside the first violation found, if any.
func Validate[V any](t *Tree[V]) (Stats, error) {
	start := time.Now()
	var st Stats

	nodes, err := collectNodes(t)
	if err != nil {
		return st, err
	}

	down := make(map[*Node[V]]int, len(nodes))
	up := make(map[*Node[V]]int, len(nodes))

	// The sentinel's entry edge is the real root's one legitimate
	// downlink; nothing else in the tree can supply it, since the root
	// holds the smallest branch position among real nodes.
	if root := t.root.child[0]; root.bpos > t.root.bpos {
		down[root]++
	}
	for _, n := range nodes {
		for i := 0; i < 2; i++ {
			target := n.child[i]
			if target.bpos > n.bpos {
				down[target]++
			} else {
				up[target]++
			}
		}
	}

	for _, n := range nodes {
		if down[n] != 1 || up[n] != 1 {
			return st, fmt.Errorf("patricia: node at branch position %d has %d downlink reference(s) and %d uplink reference(s), want exactly one of each", n.bpos, down[n], up[n])
		}
		if n.bpos > st.MaxBpos {
			st.MaxBpos = n.bpos
		}
		st.Nodes++
		st.TotalBits += int64(n.nbit)
	}

	if st.Nodes != t.count {
		return st, fmt.Errorf("patricia: tree count mismatch: tracked=%d observed=%d", t.count, st.Nodes)
	}

	st.Elapsed = time.Since(start)
	return st, nil
}

// collectNodes gathers every real node in the tree by walking downlinks
// only, which visits each node exactly once if the tree is well-formed;
// a repeat visit means something points at a node as a second downlink,
// which is reported immediately rather than looped on.
func collectNodes[V any](t *Tree[V]) ([]*Node[V], error) {
	var nodes []*Node[V]
	seen := make(map[*Node[V]]bool)

	var walk func(n *Node[V]) error
	walk = func(n *Node[V]) error {
		if seen[n] {
			return fmt.Errorf("patricia: node at branch position %d visited twice during validation", n.bpos)
		}
		seen[n] = true
		nodes = append(nodes, n)
		for i := 0; i < 2; i++ {
			if c := n.child[i]; c.bpos > n.bpos {
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if root := t.root.child[0]; root.bpos > t.root.bpos {
		if err := walk(root); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}
