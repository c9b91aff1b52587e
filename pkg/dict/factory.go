// pkg/dict/factory.go
package dict

import (
	"errors"
	"fmt"

	"github.com/ashoka-versa/libdict/pkg/prtree"
)

// Kind selects which balancing strategy backs a dictionary handle.
type Kind int

const (
	// KindPathReduction uses the weight-based path-reduction tree.
	KindPathReduction Kind = iota
)

// ErrUnknownKind is returned by New for a Kind with no registered
// implementation.
var ErrUnknownKind = errors.New("dict: unknown dictionary kind")

// New creates a dictionary of the requested kind ordered by cmp.
func New[K, V any](kind Kind, cmp func(a, b K) int) (Dict[K, V], error) {
	switch kind {
	case KindPathReduction:
		t, err := prtree.New[K, V](cmp)
		if err != nil {
			return nil, err
		}
		return &prDict[K, V]{t}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// prDict adapts prtree.Tree to the Dict interface.
type prDict[K, V any] struct {
	tree *prtree.Tree[K, V]
}

func (d *prDict[K, V]) Insert(key K, value V, overwrite bool) error {
	return d.tree.Insert(key, value, overwrite)
}

func (d *prDict[K, V]) Probe(key K, value V) (V, bool) {
	return d.tree.Probe(key, value)
}

func (d *prDict[K, V]) Search(key K) (V, bool) {
	return d.tree.Search(key)
}

func (d *prDict[K, V]) Remove(key K) bool {
	return d.tree.Remove(key)
}

func (d *prDict[K, V]) Clear() int {
	return d.tree.Clear()
}

func (d *prDict[K, V]) Walk(visit func(key K, value V) bool) int {
	return d.tree.Walk(visit)
}

func (d *prDict[K, V]) Count() int {
	return d.tree.Count()
}

func (d *prDict[K, V]) Min() (K, bool) {
	return d.tree.Min()
}

func (d *prDict[K, V]) Max() (K, bool) {
	return d.tree.Max()
}

func (d *prDict[K, V]) Cursor() Cursor[K, V] {
	return &prCursor[K, V]{d.tree.Cursor()}
}

func (d *prDict[K, V]) Height() int {
	return d.tree.Height()
}

func (d *prDict[K, V]) MinHeight() int {
	return d.tree.MinHeight()
}

func (d *prDict[K, V]) PathLength() int {
	return d.tree.PathLength()
}

// prCursor adapts prtree.Cursor to the Cursor interface. It intentionally
// does not implement CursorRemover.
type prCursor[K, V any] struct {
	cursor *prtree.Cursor[K, V]
}

func (c *prCursor[K, V]) First() bool             { return c.cursor.First() }
func (c *prCursor[K, V]) Last() bool              { return c.cursor.Last() }
func (c *prCursor[K, V]) Next() bool              { return c.cursor.Next() }
func (c *prCursor[K, V]) Prev() bool              { return c.cursor.Prev() }
func (c *prCursor[K, V]) NextN(n int) bool        { return c.cursor.NextN(n) }
func (c *prCursor[K, V]) PrevN(n int) bool        { return c.cursor.PrevN(n) }
func (c *prCursor[K, V]) Seek(key K) bool         { return c.cursor.Seek(key) }
func (c *prCursor[K, V]) Valid() bool             { return c.cursor.Valid() }
func (c *prCursor[K, V]) Invalidate()             { c.cursor.Invalidate() }
func (c *prCursor[K, V]) Key() (K, bool)          { return c.cursor.Key() }
func (c *prCursor[K, V]) Value() (V, bool)        { return c.cursor.Value() }
func (c *prCursor[K, V]) SetValue(v V) (V, bool)  { return c.cursor.SetValue(v) }
func (c *prCursor[K, V]) Close()                  { c.cursor.Close() }

var (
	_ DictWithMetrics[int, int] = (*prDict[int, int])(nil)
	_ Cursor[int, int]          = (*prCursor[int, int])(nil)
)
