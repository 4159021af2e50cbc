package patricia

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented text representation of the tree to w, one line
// per node in pre-order. label formats a node's own contribution to its
// line; indentation is the recursion depth of a direct walk over genuine
// downlinks (child[i].bpos > node.bpos), so a node's parent in the
// printed tree is always its real parent - never a node from an unrelated
// subtree that happens to carry a smaller branch position.
func Dump[V any](w io.Writer, t *Tree[V], label func(*Node[V]) string) error {
	root := iterChild(t.root, false)
	if root == nil {
		return nil
	}

	var walk func(n *Node[V], depth int) error
	walk = func(n *Node[V], depth int) error {
		if _, err := fmt.Fprintf(w, "%s+--[%d] %s\n", strings.Repeat("    ", depth), n.Bpos(), label(n)); err != nil {
			return err
		}
		for _, dir := range [2]bool{false, true} {
			if c := iterChild(n, dir); c != nil {
				if err := walk(c, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(root, 0)
}

// DumpDOT writes a GraphViz DOT rendering of the tree to w, walking the
// same genuine downlinks as Dump and emitting each edge as it assigns the
// child's id, rather than trying to recover parentage after the fact from
// a linear node sequence.
func DumpDOT[V any](w io.Writer, t *Tree[V], label func(*Node[V]) string) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}

	next := 0
	var walk func(n *Node[V], parent int) error
	walk = func(n *Node[V], parent int) error {
		id := next
		next++
		if _, err := fmt.Fprintf(w, "  n%d [label=%q];\n", id, label(n)); err != nil {
			return err
		}
		if parent >= 0 {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", parent, id); err != nil {
				return err
			}
		}
		for _, dir := range [2]bool{false, true} {
			if c := iterChild(n, dir); c != nil {
				if err := walk(c, id); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if root := iterChild(t.root, false); root != nil {
		if err := walk(root, -1); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
