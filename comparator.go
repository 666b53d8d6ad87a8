package bptree

import "golang.org/x/exp/constraints"

// Comparator defines a pure total order over Item: negative, zero, or
// positive as a is less than, equal to, or greater than b. It must be
// antisymmetric, transitive, and deterministic for the lifetime of the
// Tree that uses it.
type Comparator[Item any] func(a, b Item) int

// Ordered builds a Comparator for any type with Go's built-in ordering,
// for callers who don't need a custom one (e.g. a Tree[int] or
// Tree[string]).
func Ordered[Item constraints.Ordered]() Comparator[Item] {
	return func(a, b Item) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
