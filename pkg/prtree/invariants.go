// pkg/prtree/invariants.go
package prtree

import (
	"github.com/cockroachdb/errors"
)

// CheckInvariants verifies the structural invariants that hold after every
// operation: linkage symmetry (each child's parent pointer refers back to its
// parent, the root has none), weight bookkeeping (every node's weight equals
// the sum of its child weights, absent children counting 1), comparator
// ordering along every in-order adjacency, and count consistency. A non-nil
// error indicates a bug in the tree algorithms, not an input error.
func (t *Tree[K, V]) CheckInvariants() error {
	if t.root == nil {
		if t.count != 0 {
			return errors.AssertionFailedf("empty tree has count %d", t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.AssertionFailedf("root %v has a parent", t.root.key)
	}
	reachable, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if reachable != t.count {
		return errors.AssertionFailedf("count %d but %d nodes reachable from root", t.count, reachable)
	}
	var prev *node[K, V]
	for n := t.root.min(); n != nil; n = n.next() {
		if prev != nil && t.cmp(prev.key, n.key) >= 0 {
			return errors.AssertionFailedf("keys %v and %v out of order", prev.key, n.key)
		}
		prev = n
	}
	return nil
}

// checkNode verifies linkage and weights of n's subtree and returns the
// number of nodes it contains.
func (t *Tree[K, V]) checkNode(n *node[K, V]) (int, error) {
	count := 1
	if want := weight(n.left) + weight(n.right); n.weight != want {
		return 0, errors.AssertionFailedf(
			"node %v has weight %d, children sum to %d", n.key, n.weight, want)
	}
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, errors.AssertionFailedf(
				"child %v of %v has wrong parent link", child.key, n.key)
		}
		sub, err := t.checkNode(child)
		if err != nil {
			return 0, err
		}
		count += sub
	}
	return count, nil
}

// CheckBalance verifies the path-reduction balance condition at every node:
// wherever one side outweighs the other, neither grandchild on the heavy
// side may outweigh the light side, or a rotation would be due.
//
// The condition is maintained through every insertion. Deletions splice
// without running fixup, which can leave bounded local imbalance on the
// spliced path, so callers should only assert this on insertion-only
// histories.
func (t *Tree[K, V]) CheckBalance() error {
	if t.root == nil {
		return nil
	}
	return t.checkBalanceNode(t.root)
}

func (t *Tree[K, V]) checkBalanceNode(n *node[K, V]) error {
	wl := weight(n.left)
	wr := weight(n.right)
	if wr > wl {
		if weight(n.right.right) > wl || weight(n.right.left) > wl {
			return errors.AssertionFailedf(
				"node %v is rotation-due: wl=%d wr=%d wrl=%d wrr=%d",
				n.key, wl, wr, weight(n.right.left), weight(n.right.right))
		}
	} else if wl > wr {
		if weight(n.left.left) > wr || weight(n.left.right) > wr {
			return errors.AssertionFailedf(
				"node %v is rotation-due: wl=%d wr=%d wll=%d wlr=%d",
				n.key, wl, wr, weight(n.left.left), weight(n.left.right))
		}
	}
	if n.left != nil {
		if err := t.checkBalanceNode(n.left); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := t.checkBalanceNode(n.right); err != nil {
			return err
		}
	}
	return nil
}
