package bptree

import "github.com/pkg/errors"

// splitResult carries the promoted separator and the new right sibling
// back up the recursion when a child split, or reports no split.
type splitResult[Item any] struct {
	promoted Item
	right    *node[Item]
	split    bool
}

// Insert adds item to the tree. It returns ErrDuplicateKey if an item
// comparing equal already exists, in which case the existing entry is
// left unchanged. An allocation-failure error from the Allocator hook is
// wrapped and returned verbatim with no partial mutation left visible:
// a failed split never advances Count nor alters sibling links.
func (t *Tree[Item]) Insert(item Item) error {
	res, err := t.insert(t.root, item)
	if err != nil {
		return err
	}
	if !res.split {
		t.count++
		return nil
	}

	newRoot, err := newInternalNode[Item](t.maxKeys, t.alloc)
	if err != nil {
		return errors.Wrap(err, "bptree: failed to allocate new root")
	}
	newRoot.appendKey(res.promoted)
	newRoot.appendChild(t.root)
	newRoot.appendChild(res.right)

	t.root = newRoot
	t.height++
	t.count++
	t.logf("root promoted, new height=%d", t.height)
	return nil
}

func (t *Tree[Item]) insert(n *node[Item], item Item) (splitResult[Item], error) {
	if n.isLeaf {
		idx, found := leafSearch(t.cmp, n.keys, item)
		if found {
			return splitResult[Item]{}, ErrDuplicateKey
		}

		if len(n.keys) < t.maxKeys {
			n.insertLeafEntry(idx, item, item)
			return splitResult[Item]{}, nil
		}

		return t.splitLeaf(n, idx, item)
	}

	idx := internalSearch(t.cmp, n.keys, item)
	childRes, err := t.insert(n.children[idx], item)
	if err != nil {
		return splitResult[Item]{}, err
	}
	if !childRes.split {
		return splitResult[Item]{}, nil
	}

	if len(n.keys) < t.maxKeys {
		n.insertKeyAt(idx, childRes.promoted)
		n.insertChildAt(idx+1, childRes.right)
		return splitResult[Item]{}, nil
	}

	return t.splitInternal(n, idx, childRes.promoted, childRes.right)
}

// splitLeaf logically forms the M+1 entries (n's existing entries plus
// item at its sorted position idx), keeps the first ⌊(M+1)/2⌋ in n, and
// moves the remainder to a new right leaf linked in as n's immediate
// successor. The promoted separator is the new leaf's first key.
func (t *Tree[Item]) splitLeaf(n *node[Item], idx int, item Item) (splitResult[Item], error) {
	right, err := newLeafNode[Item](t.maxKeys, t.alloc)
	if err != nil {
		return splitResult[Item]{}, errors.Wrap(err, "bptree: failed to allocate leaf on split")
	}

	total := len(n.keys) + 1
	split := total / 2

	merged := make([]Item, 0, total)
	merged = append(merged, n.keys[:idx]...)
	merged = append(merged, item)
	merged = append(merged, n.keys[idx:]...)

	n.keys = append(n.keys[:0], merged[:split]...)
	n.items = append(n.items[:0], merged[:split]...)

	right.keys = append(right.keys, merged[split:]...)
	right.items = append(right.items, merged[split:]...)

	right.next = n.next
	n.next = right

	t.logf("leaf split: kept=%d moved=%d", len(n.keys), len(right.keys))
	return splitResult[Item]{promoted: right.keys[0], right: right, split: true}, nil
}

// splitInternal logically forms the M+1 key list and M+2 child list
// (n's existing entries plus the child promotion inserted at pos), keeps
// the first ⌊(M+1)/2⌋ keys and ⌊(M+1)/2⌋+1 children in n, pushes the
// middle key upward as the new promoted separator (retained in neither
// half), and places the rest in a new right internal node.
func (t *Tree[Item]) splitInternal(n *node[Item], pos int, promoted Item, newChild *node[Item]) (splitResult[Item], error) {
	right, err := newInternalNode[Item](t.maxKeys, t.alloc)
	if err != nil {
		return splitResult[Item]{}, errors.Wrap(err, "bptree: failed to allocate internal node on split")
	}

	totalKeys := len(n.keys) + 1
	split := totalKeys / 2

	mergedKeys := make([]Item, 0, totalKeys)
	mergedKeys = append(mergedKeys, n.keys[:pos]...)
	mergedKeys = append(mergedKeys, promoted)
	mergedKeys = append(mergedKeys, n.keys[pos:]...)

	mergedChildren := make([]*node[Item], 0, totalKeys+1)
	mergedChildren = append(mergedChildren, n.children[:pos+1]...)
	mergedChildren = append(mergedChildren, newChild)
	mergedChildren = append(mergedChildren, n.children[pos+1:]...)

	n.keys = append(n.keys[:0], mergedKeys[:split]...)
	n.children = append(n.children[:0], mergedChildren[:split+1]...)

	right.keys = append(right.keys, mergedKeys[split+1:]...)
	right.children = append(right.children, mergedChildren[split+1:]...)

	t.logf("internal split: kept=%d moved=%d promoted-to-parent", len(n.keys), len(right.keys))
	return splitResult[Item]{promoted: mergedKeys[split], right: right, split: true}, nil
}
