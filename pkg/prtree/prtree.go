// pkg/prtree/prtree.go
// Package prtree implements a path-reduction balanced binary search tree:
// a weight-annotated BST that rotates only when a rotation provably shortens
// the tree's total internal path length (cf. Gonnet 1983). Trees of this
// class sit in BB[1/3], but the rotation restriction makes them cheaper in
// practice: the amortized rotation count is about 0.44·lg(n) per insertion
// and 0.42·lg(n) per deletion, against an O(n) single-operation worst case.
//
// A Tree is not safe for concurrent use. Callers that share an instance
// across goroutines must provide their own synchronization.
package prtree

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNilCompare is returned by New when no comparator is supplied.
	ErrNilCompare = errors.New("prtree: nil compare function")
	// ErrKeyExists is returned by Insert when the key is already present
	// and overwriting is disabled.
	ErrKeyExists = errors.New("prtree: key already exists")
)

// Log receives structural tracing from tree mutations. Rotations are logged
// at Debug level, so the default configuration stays silent.
var Log = logrus.New()

// Tree is an ordered key/value index balanced by path reduction.
// Keys are totally ordered by the comparator passed to New; the zero Tree is
// not usable, construct instances through New or NewOrdered.
type Tree[K, V any] struct {
	root  *node[K, V]
	count int
	cmp   func(K, K) int
}

// New creates an empty tree ordered by cmp. cmp must define a total order:
// negative when a sorts before b, zero when equal, positive otherwise.
func New[K, V any](cmp func(a, b K) int) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}
	return &Tree[K, V]{cmp: cmp}, nil
}

// NewOrdered creates an empty tree over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp.Compare[K]}
}

// Count returns the number of key/value pairs in the tree.
func (t *Tree[K, V]) Count() int {
	return t.count
}

// Search returns the value stored under key, or (zero, false) if absent.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	n := t.root
	for n != nil {
		rv := t.cmp(key, n.key)
		switch {
		case rv < 0:
			n = n.left
		case rv > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Insert stores value under key. If the key is already present the stored
// pair is replaced when overwrite is true, otherwise ErrKeyExists is
// returned and the tree is left unchanged.
func (t *Tree[K, V]) Insert(key K, value V, overwrite bool) error {
	rv := 0
	var parent *node[K, V]
	n := t.root
	for n != nil {
		rv = t.cmp(key, n.key)
		switch {
		case rv < 0:
			parent, n = n, n.left
		case rv > 0:
			parent, n = n, n.right
		default:
			if !overwrite {
				return ErrKeyExists
			}
			n.key = key
			n.value = value
			return nil
		}
	}

	n = newNode(key, value)
	n.parent = parent
	if parent == nil {
		t.root = n
		t.count = 1
		return nil
	}
	if rv < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.ascendAfterInsert(parent)
	t.count++
	return nil
}

// Probe is a combined lookup-or-insert. If key is present its current value
// is returned with inserted == false and the tree is untouched; otherwise
// value is stored under key and returned with inserted == true. Callers use
// it to avoid a separate existence check before insertion.
func (t *Tree[K, V]) Probe(key K, value V) (actual V, inserted bool) {
	rv := 0
	var parent *node[K, V]
	n := t.root
	for n != nil {
		rv = t.cmp(key, n.key)
		switch {
		case rv < 0:
			parent, n = n, n.left
		case rv > 0:
			parent, n = n, n.right
		default:
			return n.value, false
		}
	}

	n = newNode(key, value)
	n.parent = parent
	if parent == nil {
		t.root = n
		t.count = 1
		return value, true
	}
	if rv < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.ascendAfterInsert(parent)
	t.count++
	return value, true
}

// ascendAfterInsert walks from the new node's parent up to the root,
// incrementing each ancestor's weight and rebalancing it. The next ancestor
// is captured before fixup because rotations relocate the current node.
func (t *Tree[K, V]) ascendAfterInsert(n *node[K, V]) {
	for n != nil {
		p := n.parent
		n.weight++
		t.fixup(n)
		n = p
	}
}

// Remove deletes the pair stored under key and reports whether it was found.
//
// A node with at most one child is spliced out directly; only ancestor
// weights need adjusting on that path. A node with two children is instead
// rotated toward its lighter side — with one corrective rotation of the
// heavier child first when that child's own children lean the wrong way —
// until it reaches a one-child position. Each step pushes the node strictly
// closer to a splice, so the loop converges.
func (t *Tree[K, V]) Remove(key K) bool {
	n := t.root
	for n != nil {
		rv := t.cmp(key, n.key)
		if rv != 0 {
			if rv < 0 {
				n = n.left
			} else {
				n = n.right
			}
			continue
		}
		switch {
		case n.left == nil:
			t.splice(n, n.right)
			return true
		case n.right == nil:
			t.splice(n, n.left)
			return true
		case weight(n.left) > weight(n.right):
			if weight(n.left.left) < weight(n.left.right) {
				t.rotateLeft(n.left)
			}
			out := n.left
			t.rotateRight(n)
			n = out.right
		default:
			if weight(n.right.right) < weight(n.right.left) {
				t.rotateRight(n.right)
			}
			out := n.right
			t.rotateLeft(n)
			n = out.left
		}
	}
	return false
}

// splice replaces n with its only child (or nil), unlinks n, and walks the
// ancestor chain decrementing weights. No fixup runs on this path.
func (t *Tree[K, V]) splice(n, out *node[K, V]) {
	if out != nil {
		out.parent = n.parent
	}
	if p := n.parent; p != nil {
		if p.left == n {
			p.left = out
		} else {
			p.right = out
		}
	} else {
		t.root = out
	}
	for p := n.parent; p != nil; p = p.parent {
		p.weight--
	}
	n.parent = nil
	n.left = nil
	n.right = nil
	t.count--
}

// Clear removes every pair and returns how many were removed. Nodes are
// unlinked bottom-up, child-free first, so stale cursor references cannot
// keep whole subtrees reachable afterwards.
func (t *Tree[K, V]) Clear() int {
	n := t.root
	for n != nil {
		if n.left != nil || n.right != nil {
			if n.left != nil {
				n = n.left
			} else {
				n = n.right
			}
			continue
		}
		p := n.parent
		if p != nil {
			if p.left == n {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		n.parent = nil
		n = p
	}
	removed := t.count
	t.root = nil
	t.count = 0
	return removed
}

// Walk visits every pair in ascending key order. The visitor returns false
// to stop early; Walk returns the number of pairs visited, including the one
// that stopped it.
func (t *Tree[K, V]) Walk(visit func(key K, value V) bool) int {
	if t.root == nil {
		return 0
	}
	visited := 0
	for n := t.root.min(); n != nil; n = n.next() {
		visited++
		if !visit(n.key, n.value) {
			break
		}
	}
	return visited
}

// All returns an in-order iterator over the tree. The tree must not be
// structurally mutated during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		for n := t.root.min(); n != nil; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Min returns the smallest key in the tree, or (zero, false) when empty.
func (t *Tree[K, V]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.min().key, true
}

// Max returns the largest key in the tree, or (zero, false) when empty.
func (t *Tree[K, V]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.max().key, true
}

// Height returns the maximum root-to-leaf edge count, 0 for an empty or
// single-node tree. Computed by recursive descent in O(n).
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height()
}

// MinHeight returns the minimum root-to-leaf edge count, same cost as Height.
func (t *Tree[K, V]) MinHeight() int {
	if t.root == nil {
		return 0
	}
	return t.root.minHeight()
}

// PathLength returns the tree's internal path length: the sum over all child
// links of the linking node's level, with the root at level 1. The root
// itself contributes nothing, so a single-node tree has path length 0.
func (t *Tree[K, V]) PathLength() int {
	if t.root == nil {
		return 0
	}
	return t.root.pathLength(1)
}

// fixup restores the path-reduction balance condition at n after a weight
// change, then re-examines the same (relocated) position until it is
// balanced. Single rotations only continue the loop; the double-rotation
// branches make one recursive call into a strictly smaller subtree before
// continuing.
func (t *Tree[K, V]) fixup(n *node[K, V]) {
	for {
		wl := weight(n.left)
		wr := weight(n.right)
		if wr > wl {
			// wr >= 2, so n.right is present.
			if weight(n.right.right) > wl {
				t.rotateLeft(n)
				continue
			}
			if weight(n.right.left) > wl {
				r := n.right
				t.rotateRight(r)
				t.rotateLeft(n)
				if r.right != nil {
					t.fixup(r.right)
				}
				continue
			}
		} else if wl > wr {
			if weight(n.left.left) > wr {
				t.rotateRight(n)
				continue
			}
			if weight(n.left.right) > wr {
				l := n.left
				t.rotateLeft(l)
				t.rotateRight(n)
				if l.left != nil {
					t.fixup(l.left)
				}
				continue
			}
		}
		return
	}
}

// rotateLeft rotates n's right child above n:
//
//	    /             /
//	   n             r
//	  / \           / \
//	 A   r   ==>   n   E
//	    / \       / \
//	   C   E     A   C
//
// Only n's and r's weights need recomputation; ancestor weights are
// unaffected by a single rotation.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) {
	r := n.right
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"key":   n.key,
			"pivot": r.key,
		}).Debug("rotate left")
	}
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	p := n.parent
	r.parent = p
	if p != nil {
		if p.left == n {
			p.left = r
		} else {
			p.right = r
		}
	} else {
		t.root = r
	}
	r.left = n
	n.parent = r

	n.reweigh()
	r.reweigh()
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) {
	l := n.left
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"key":   n.key,
			"pivot": l.key,
		}).Debug("rotate right")
	}
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	p := n.parent
	l.parent = p
	if p != nil {
		if p.left == n {
			p.left = l
		} else {
			p.right = l
		}
	} else {
		t.root = l
	}
	l.right = n
	n.parent = l

	n.reweigh()
	l.reweigh()
}

// Dump writes an indented structural dump of the tree to w, one node per
// line with its weight. Right subtrees print above their parent, so the
// output reads left-to-right as top-to-bottom rotated 90 degrees. Intended
// for debugging and test failure output.
func (t *Tree[K, V]) Dump(w io.Writer) {
	if t.root == nil {
		io.WriteString(w, "(empty)\n")
		return
	}
	t.dumpNode(w, t.root, 0)
}

func (t *Tree[K, V]) dumpNode(w io.Writer, n *node[K, V], depth int) {
	if n.right != nil {
		t.dumpNode(w, n.right, depth+1)
	}
	fmt.Fprintf(w, "%s%v (w=%d)\n", strings.Repeat("  ", depth), n.key, n.weight)
	if n.left != nil {
		t.dumpNode(w, n.left, depth+1)
	}
}
