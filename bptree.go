// Package bptree implements an in-memory B+ tree providing ordered
// key/value storage with logarithmic point operations and efficient
// ordered range scans. It is embedded directly inside a host program: it
// performs no I/O, holds no file handle, and stores opaque item handles
// without ever copying, owning, or freeing them.
package bptree

import (
	"github.com/pkg/errors"
)

// Options configures a Tree at construction time.
type Options[Item any] struct {
	// MaxKeys is the branching factor M: the maximum number of keys per
	// node. Values below 3 are normalized up to 3.
	MaxKeys int

	// Comparator defines the total order over Item. Required.
	Comparator Comparator[Item]

	// Allocator supplies optional allocate/deallocate hooks. The zero
	// value always succeeds.
	Allocator Allocator

	// Debug enables verbose structural logging of splits, merges, and
	// borrows via the package debug logger.
	Debug bool
}

// Tree is an in-memory B+ tree index over Item, ordered by Comparator.
// All data lives in leaves; internal nodes hold only routing keys.
// Leaves are linked in ascending key order to support sequential range
// scans without re-descent.
//
// A Tree provides no internal synchronization: concurrent readers are
// safe only while no mutator is active, and callers must serialize any
// Insert/Delete against every other access.
type Tree[Item any] struct {
	maxKeys int
	minKeys int
	height  int
	count   int

	cmp   Comparator[Item]
	alloc Allocator
	debug bool

	root *node[Item]
}

// New constructs an empty Tree. A Comparator is required; MaxKeys below 3
// is normalized to 3. A nil Allocator.Allocate/Deallocate is treated as
// "always succeeds" / "no observation", matching the process heap default
// the original C API substitutes for nil malloc/free hooks.
func New[Item any](opts Options[Item]) (*Tree[Item], error) {
	if opts.Comparator == nil {
		return nil, errors.New("bptree: Comparator is required")
	}

	maxKeys := opts.MaxKeys
	if maxKeys < 3 {
		maxKeys = 3
	}

	t := &Tree[Item]{
		maxKeys: maxKeys,
		minKeys: maxKeys / 2,
		height:  1,
		cmp:     opts.Comparator,
		alloc:   opts.Allocator,
		debug:   opts.Debug,
	}

	root, err := newLeafNode[Item](maxKeys, t.alloc)
	if err != nil {
		return nil, errors.Wrap(err, "bptree: failed to allocate initial root")
	}
	t.root = root

	t.logf("tree created (max_keys=%d, min_keys=%d)", t.maxKeys, t.minKeys)
	return t, nil
}

// Count returns the number of items currently stored.
func (t *Tree[Item]) Count() int { return t.count }

// Height returns the number of levels in the tree, leaves counted. An
// empty tree (a single leaf root) has height 1.
func (t *Tree[Item]) Height() int { return t.height }

// Lookup returns the item whose key compares equal to key, and whether
// one was found.
func (t *Tree[Item]) Lookup(key Item) (Item, bool) {
	n := t.root
	for !n.isLeaf {
		n = n.children[internalSearch(t.cmp, n.keys, key)]
	}

	idx, found := leafSearch(t.cmp, n.keys, key)
	if !found {
		var zero Item
		return zero, false
	}
	return n.items[idx], true
}
