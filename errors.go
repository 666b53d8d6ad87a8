package bptree

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when an item comparing equal
	// to one already in the tree is inserted. The existing entry is left
	// unchanged.
	ErrDuplicateKey = errors.New("bptree: key already exists")

	// ErrKeyNotFound is returned by Delete when no item with the given
	// key exists.
	ErrKeyNotFound = errors.New("bptree: key not found")

	// ErrEmptyTree is returned by Delete on a Tree with no root. A
	// successfully constructed Tree always has a root, so this is a
	// defensive check rather than a reachable state.
	ErrEmptyTree = errors.New("bptree: tree has no root")
)
