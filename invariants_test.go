package bptree

import "testing"

// walkInvariants checks the tree's structural invariants (balanced leaf
// depth, ascending keys, min-occupancy outside the root, correct
// child-count/key-count relation, and a correctly ordered, fully-linked
// leaf chain) and fails t if any is violated.
func walkInvariants[Item any](t *testing.T, tree *Tree[Item]) {
	t.Helper()

	leafDepth := -1
	leaves := 0
	var walk func(n *node[Item], depth int, isRoot bool)
	walk = func(n *node[Item], depth int, isRoot bool) {
		if n.isLeaf {
			leaves++
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				t.Fatalf("leaf at depth %d, expected %d (unbalanced tree)", depth, leafDepth)
			}
			if !isRoot && len(n.keys) < tree.minKeys {
				t.Fatalf("leaf underflow: %d keys < min %d", len(n.keys), tree.minKeys)
			}
			for i := 1; i < len(n.keys); i++ {
				if tree.cmp(n.keys[i-1], n.keys[i]) >= 0 {
					t.Fatalf("leaf keys out of order at %d/%d", i-1, i)
				}
			}
			return
		}

		if !isRoot && len(n.keys) < tree.minKeys {
			t.Fatalf("internal underflow: %d keys < min %d", len(n.keys), tree.minKeys)
		}
		if len(n.children) != len(n.keys)+1 {
			t.Fatalf("internal node has %d children but %d keys", len(n.children), len(n.keys))
		}
		for i := 1; i < len(n.keys); i++ {
			if tree.cmp(n.keys[i-1], n.keys[i]) >= 0 {
				t.Fatalf("internal keys out of order at %d/%d", i-1, i)
			}
		}
		for _, c := range n.children {
			walk(c, depth+1, false)
		}
	}
	walk(tree.root, 0, true)

	// leaf chain must visit every leaf exactly once, in ascending order.
	var first *node[Item]
	var find func(n *node[Item])
	find = func(n *node[Item]) {
		if n.isLeaf {
			if first == nil {
				first = n
			}
			return
		}
		find(n.children[0])
	}
	find(tree.root)

	seen := 0
	var prevKey Item
	havePrev := false
	for n := first; n != nil; n = n.next {
		seen++
		if seen > leaves {
			t.Fatalf("leaf chain appears cyclic")
		}
		for _, k := range n.keys {
			if havePrev && tree.cmp(prevKey, k) >= 0 {
				t.Fatalf("leaf chain out of order")
			}
			prevKey, havePrev = k, true
		}
	}
	if seen != leaves {
		t.Fatalf("leaf chain visits %d leaves, tree has %d", seen, leaves)
	}
}
