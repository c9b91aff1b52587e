// pkg/prtree/node.go
package prtree

// node is the linked unit of the tree: an owned key/value pair, child links,
// a non-owning parent back-reference and the weight counter driving
// rebalancing decisions.
//
// The weight of a subtree counts its external (virtual) leaves: an absent
// child contributes 1, so a freshly created leaf node has weight 2. This is
// deliberately not a subtree-size counter; the rebalancing rule compares
// external-leaf counts two levels apart.
type node[K, V any] struct {
	key    K
	value  V
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	weight int
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, weight: 2}
}

// weight returns the weight of a possibly absent subtree.
func weight[K, V any](n *node[K, V]) int {
	if n == nil {
		return 1
	}
	return n.weight
}

// reweigh recomputes n's weight from its current children.
func (n *node[K, V]) reweigh() {
	n.weight = weight(n.left) + weight(n.right)
}

// min returns the leftmost node of n's subtree. n must not be nil.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of n's subtree. n must not be nil.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil if n holds the maximum.
// When n has no right child the successor is found by parent-chain ascent.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && p.right == n {
		n = p
		p = p.parent
	}
	return p
}

// prev returns the in-order predecessor of n, or nil if n holds the minimum.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && p.left == n {
		n = p
		p = p.parent
	}
	return p
}

// height returns the maximum root-to-leaf edge count of n's subtree.
func (n *node[K, V]) height() int {
	var l, r int
	if n.left != nil {
		l = n.left.height() + 1
	}
	if n.right != nil {
		r = n.right.height() + 1
	}
	return max(l, r)
}

// minHeight returns the minimum root-to-leaf edge count of n's subtree.
func (n *node[K, V]) minHeight() int {
	var l, r int
	if n.left != nil {
		l = n.left.minHeight() + 1
	}
	if n.right != nil {
		r = n.right.minHeight() + 1
	}
	return min(l, r)
}

// pathLength sums the internal path length of n's subtree, with n at the
// given level. Each present child link contributes the parent's level.
func (n *node[K, V]) pathLength(level int) int {
	total := 0
	if n.left != nil {
		total += level + n.left.pathLength(level+1)
	}
	if n.right != nil {
		total += level + n.right.pathLength(level+1)
	}
	return total
}
