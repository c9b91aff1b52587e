// pkg/prtree/cursor_test.go
package prtree

import (
	"slices"
	"testing"
)

func TestCursorEmptyTree(t *testing.T) {
	tree := NewOrdered[int, string]()

	c := tree.Cursor()
	if c.Valid() {
		t.Fatal("cursor on empty tree is positioned")
	}
	// Next from unbound behaves as First; there is no minimum, so the
	// cursor stays unbound.
	if c.Next() {
		t.Fatal("Next on empty tree reported a position")
	}
	if c.Prev() {
		t.Fatal("Prev on empty tree reported a position")
	}
	if _, ok := c.Key(); ok {
		t.Fatal("Key on unbound cursor reported a value")
	}
	if _, ok := c.SetValue("x"); ok {
		t.Fatal("SetValue on unbound cursor succeeded")
	}
}

func TestCursorTraversal(t *testing.T) {
	tree := NewOrdered[int, string]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Insert(key, "v", false)
	}

	c := tree.Cursor()
	if !c.Valid() {
		t.Fatal("fresh cursor on non-empty tree is unbound")
	}

	var forward []int
	for ok := c.First(); ok; ok = c.Next() {
		key, _ := c.Key()
		forward = append(forward, key)
	}
	if want := collect(t, tree); !slices.Equal(forward, want) {
		t.Fatalf("cursor order %v does not match Walk order %v", forward, want)
	}

	var backward []int
	for ok := c.Last(); ok; ok = c.Prev() {
		key, _ := c.Key()
		backward = append(backward, key)
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, forward) {
		t.Fatalf("reverse order %v does not mirror forward order %v", backward, forward)
	}
}

func TestCursorStepN(t *testing.T) {
	tree := NewOrdered[int, string]()
	for i := 1; i <= 9; i++ {
		tree.Insert(i, "v", false)
	}

	c := tree.Cursor()
	c.Invalidate()

	// Unbound + count > 0 consumes the first step as First.
	if !c.NextN(3) {
		t.Fatal("NextN(3) ran off the end")
	}
	if key, _ := c.Key(); key != 3 {
		t.Fatalf("after NextN(3) from unbound, key = %d, want 3", key)
	}

	// NextN(0) is a no-op that just reports validity.
	if !c.NextN(0) {
		t.Fatal("NextN(0) invalidated the cursor")
	}
	if key, _ := c.Key(); key != 3 {
		t.Fatalf("after NextN(0), key = %d, want 3", key)
	}

	if !c.NextN(4) {
		t.Fatal("NextN(4) ran off the end")
	}
	if key, _ := c.Key(); key != 7 {
		t.Fatalf("after NextN(4), key = %d, want 7", key)
	}

	// Stepping past the maximum unbinds the cursor.
	if c.NextN(10) {
		t.Fatal("NextN past the end left the cursor positioned")
	}

	// PrevN from unbound consumes the first step as Last.
	if !c.PrevN(2) {
		t.Fatal("PrevN(2) ran off the start")
	}
	if key, _ := c.Key(); key != 8 {
		t.Fatalf("after PrevN(2) from unbound, key = %d, want 8", key)
	}
	if c.PrevN(8) {
		t.Fatal("PrevN past the start left the cursor positioned")
	}
}

func TestCursorSeek(t *testing.T) {
	tree := NewOrdered[int, string]()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key, "v", false)
	}

	c := tree.Cursor()
	if !c.Seek(20) {
		t.Fatal("Seek(20) missed an existing key")
	}
	if key, _ := c.Key(); key != 20 {
		t.Fatalf("after Seek(20), key = %d", key)
	}
	if c.Seek(25) {
		t.Fatal("Seek(25) reported a hit for an absent key")
	}
	if c.Valid() {
		t.Fatal("cursor still positioned after failed Seek")
	}
	// A failed seek discards the old position entirely; Next restarts.
	if !c.Next() {
		t.Fatal("Next after failed Seek did not restart at First")
	}
	if key, _ := c.Key(); key != 10 {
		t.Fatalf("after restart, key = %d, want 10", key)
	}
}

func TestCursorSetValue(t *testing.T) {
	tree := NewOrdered[int, string]()
	tree.Insert(1, "old", false)

	c := tree.Cursor()
	prev, ok := c.SetValue("new")
	if !ok || prev != "old" {
		t.Fatalf("SetValue = %q, %v, want \"old\", true", prev, ok)
	}
	if v, _ := tree.Search(1); v != "new" {
		t.Fatalf("Search after SetValue = %q, want \"new\"", v)
	}
	if v, _ := c.Value(); v != "new" {
		t.Fatalf("Value after SetValue = %q, want \"new\"", v)
	}
}

func TestCursorInvalidate(t *testing.T) {
	tree := NewOrdered[int, string]()
	for _, key := range []int{1, 2, 3} {
		tree.Insert(key, "v", false)
	}

	c := tree.Cursor()
	c.NextN(2)
	c.Invalidate()
	if c.Valid() {
		t.Fatal("cursor positioned after Invalidate")
	}
	// Next from an invalidated cursor restarts from the minimum.
	if !c.Next() {
		t.Fatal("Next after Invalidate failed")
	}
	if key, _ := c.Key(); key != 1 {
		t.Fatalf("after restart, key = %d, want 1", key)
	}
}

func TestCursorClose(t *testing.T) {
	tree := NewOrdered[int, string]()
	tree.Insert(1, "v", false)

	c := tree.Cursor()
	c.Close()
	if c.Valid() {
		t.Fatal("cursor positioned after Close")
	}
	if c.First() || c.Last() || c.Seek(1) {
		t.Fatal("closed cursor repositioned itself")
	}
}

func TestCursorIndependence(t *testing.T) {
	tree := NewOrdered[int, string]()
	for _, key := range []int{1, 2, 3} {
		tree.Insert(key, "v", false)
	}

	a := tree.Cursor()
	b := tree.Cursor()
	a.Next()
	ka, _ := a.Key()
	kb, _ := b.Key()
	if ka != 2 || kb != 1 {
		t.Fatalf("cursor positions entangled: a=%d b=%d", ka, kb)
	}
}
