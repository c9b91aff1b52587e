// pkg/prtree/cursor.go
package prtree

// Cursor is a movable position over a tree's in-order key sequence. A cursor
// is either positioned on a node or unbound (no position); stepping past
// either end leaves it unbound, and stepping an unbound cursor restarts from
// the corresponding end.
//
// A cursor holds no ownership and does not detect staleness: any structural
// mutation of the tree (Insert, Remove, Clear) other than through the cursor
// itself invalidates its position, and callers must Seek again before
// further use.
//
// Structural removal at the cursor position is not provided: mutation
// through a cursor is limited to SetValue, which cannot disturb the weight
// and linkage invariants.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	node *node[K, V]
}

// Cursor creates a cursor positioned at the tree's minimum key, or unbound
// if the tree is empty.
func (t *Tree[K, V]) Cursor() *Cursor[K, V] {
	c := &Cursor[K, V]{tree: t}
	c.First()
	return c
}

// Valid reports whether the cursor is positioned on an entry.
func (c *Cursor[K, V]) Valid() bool {
	return c.node != nil
}

// Invalidate unbinds the cursor without touching the tree.
func (c *Cursor[K, V]) Invalidate() {
	c.node = nil
}

// First positions the cursor at the minimum key and reports validity.
func (c *Cursor[K, V]) First() bool {
	if c.tree == nil || c.tree.root == nil {
		c.node = nil
	} else {
		c.node = c.tree.root.min()
	}
	return c.node != nil
}

// Last positions the cursor at the maximum key and reports validity.
func (c *Cursor[K, V]) Last() bool {
	if c.tree == nil || c.tree.root == nil {
		c.node = nil
	} else {
		c.node = c.tree.root.max()
	}
	return c.node != nil
}

// Next advances to the in-order successor. From an unbound cursor it behaves
// as First. Reports validity after the move.
func (c *Cursor[K, V]) Next() bool {
	if c.node == nil {
		return c.First()
	}
	c.node = c.node.next()
	return c.node != nil
}

// Prev steps back to the in-order predecessor. From an unbound cursor it
// behaves as Last. Reports validity after the move.
func (c *Cursor[K, V]) Prev() bool {
	if c.node == nil {
		return c.Last()
	}
	c.node = c.node.prev()
	return c.node != nil
}

// NextN advances n single steps, stopping early (and becoming unbound) if
// the traversal runs off the end. An unbound cursor consumes the first step
// as a First call. Reports validity after the moves.
func (c *Cursor[K, V]) NextN(n int) bool {
	if n > 0 {
		if c.node == nil {
			c.First()
			n--
		}
		for n > 0 && c.node != nil {
			c.node = c.node.next()
			n--
		}
	}
	return c.node != nil
}

// PrevN is the mirror of NextN, consuming the first step as Last when
// unbound.
func (c *Cursor[K, V]) PrevN(n int) bool {
	if n > 0 {
		if c.node == nil {
			c.Last()
			n--
		}
		for n > 0 && c.node != nil {
			c.node = c.node.prev()
			n--
		}
	}
	return c.node != nil
}

// Seek positions the cursor at the entry matching key, or unbinds it when
// the key is absent. Any previous position is discarded.
func (c *Cursor[K, V]) Seek(key K) bool {
	if c.tree == nil {
		c.node = nil
		return false
	}
	n := c.tree.root
	for n != nil {
		rv := c.tree.cmp(key, n.key)
		if rv < 0 {
			n = n.left
		} else if rv > 0 {
			n = n.right
		} else {
			break
		}
	}
	c.node = n
	return c.node != nil
}

// Key returns the key at the current position, or (zero, false) when
// unbound.
func (c *Cursor[K, V]) Key() (K, bool) {
	if c.node == nil {
		var zero K
		return zero, false
	}
	return c.node.key, true
}

// Value returns the value at the current position, or (zero, false) when
// unbound.
func (c *Cursor[K, V]) Value() (V, bool) {
	if c.node == nil {
		var zero V
		return zero, false
	}
	return c.node.value, true
}

// SetValue replaces the value at the current position and returns the
// previous value. It fails with (zero, false) on an unbound cursor.
func (c *Cursor[K, V]) SetValue(value V) (V, bool) {
	if c.node == nil {
		var zero V
		return zero, false
	}
	prev := c.node.value
	c.node.value = value
	return prev, true
}

// Close releases the cursor's references. A closed cursor stays permanently
// unbound.
func (c *Cursor[K, V]) Close() {
	c.node = nil
	c.tree = nil
}
