// pkg/dict/interface.go
// Package dict defines the abstract ordered-dictionary contract shared by
// balancing strategies. Code written against Dict and Cursor is
// variant-agnostic: the concrete tree behind a handle can change without
// touching call sites.
package dict

import "cmp"

// Dict is the abstract handle over an ordered key/value container.
// Implementations are single-threaded building blocks; concurrent access
// needs external synchronization.
type Dict[K, V any] interface {
	// Insert stores value under key. When overwrite is false and the key
	// is present, the implementation's duplicate-key error is returned and
	// the container is unchanged.
	Insert(key K, value V, overwrite bool) error

	// Probe returns the existing value for key with inserted == false, or
	// stores and returns value with inserted == true.
	Probe(key K, value V) (actual V, inserted bool)

	// Search returns the value under key, or (zero, false) if absent.
	Search(key K) (V, bool)

	// Remove deletes the pair under key and reports whether it was found.
	Remove(key K) bool

	// Clear removes all pairs and returns how many were removed.
	Clear() int

	// Walk visits pairs in ascending key order until the visitor returns
	// false, returning the number visited.
	Walk(visit func(key K, value V) bool) int

	// Count returns the number of pairs.
	Count() int

	// Min returns the smallest key, or (zero, false) when empty.
	Min() (K, bool)

	// Max returns the largest key, or (zero, false) when empty.
	Max() (K, bool)

	// Cursor creates a new cursor positioned at the first key, unbound if
	// the container is empty.
	Cursor() Cursor[K, V]
}

// Cursor is the abstract handle over a container position. See the concrete
// implementations for stepping semantics; all of them treat an unbound
// cursor's Next/Prev as First/Last.
type Cursor[K, V any] interface {
	// First moves to the minimum key and reports validity.
	First() bool

	// Last moves to the maximum key and reports validity.
	Last() bool

	// Next moves to the in-order successor.
	Next() bool

	// Prev moves to the in-order predecessor.
	Prev() bool

	// NextN advances n single steps, stopping early at the end.
	NextN(n int) bool

	// PrevN steps back n times, stopping early at the start.
	PrevN(n int) bool

	// Seek positions at the entry matching key, unbound if absent.
	Seek(key K) bool

	// Valid reports whether the cursor is positioned on an entry.
	Valid() bool

	// Invalidate unbinds the cursor.
	Invalidate()

	// Key returns the current key, or (zero, false) when unbound.
	Key() (K, bool)

	// Value returns the current value, or (zero, false) when unbound.
	Value() (V, bool)

	// SetValue replaces the current value, returning the previous one.
	SetValue(value V) (V, bool)

	// Close releases resources held by the cursor.
	Close()
}

// DictWithMetrics is an extension for containers that expose structural
// metrics beyond Count. Implemented by the path-reduction tree.
type DictWithMetrics[K, V any] interface {
	Dict[K, V]

	// Height returns the maximum root-to-leaf edge count.
	Height() int

	// MinHeight returns the minimum root-to-leaf edge count.
	MinHeight() int

	// PathLength returns the sum of node levels over all child links.
	PathLength() int
}

// CursorRemover is an extension for cursors that support structural removal
// at the current position. The path-reduction tree's cursor deliberately
// does not implement it: its rotation rules give no cheap way to delete in
// place, so the capability is absent rather than a no-op.
type CursorRemover[K, V any] interface {
	Cursor[K, V]

	// Remove deletes the entry at the current position, leaving the cursor
	// unbound, and reports whether anything was removed.
	Remove() bool
}

// AsMetrics returns d as a DictWithMetrics, or nil if d does not expose
// metrics.
func AsMetrics[K, V any](d Dict[K, V]) DictWithMetrics[K, V] {
	if m, ok := d.(DictWithMetrics[K, V]); ok {
		return m
	}
	return nil
}

// AsRemover returns c as a CursorRemover, or nil if c does not support
// removal at the cursor.
func AsRemover[K, V any](c Cursor[K, V]) CursorRemover[K, V] {
	if r, ok := c.(CursorRemover[K, V]); ok {
		return r
	}
	return nil
}

// Compare is a ready-made comparator for naturally ordered key types.
func Compare[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}
