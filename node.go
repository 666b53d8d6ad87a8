package bptree

// node is the single representation shared by leaf and internal nodes,
// discriminated by isLeaf. A tagged struct rather than an interface
// hierarchy: the component is small, has exactly two variants, and gains
// nothing from dynamic dispatch (see DESIGN.md).
//
// Leaf nodes carry keys, a parallel items array (the same handle is
// stored in both per the key/item aliasing rule), and next, the
// non-owning forward link used for range scans. Internal nodes carry keys
// as routing separators and children, each of which the node exclusively
// owns.
type node[Item any] struct {
	isLeaf bool
	keys   []Item

	// leaf-only
	items []Item
	next  *node[Item]

	// internal-only
	children []*node[Item]
}

func newLeafNode[Item any](maxKeys int, alloc Allocator) (*node[Item], error) {
	if err := alloc.allocate(); err != nil {
		return nil, err
	}
	return &node[Item]{
		isLeaf: true,
		keys:   make([]Item, 0, maxKeys),
		items:  make([]Item, 0, maxKeys),
	}, nil
}

func newInternalNode[Item any](maxKeys int, alloc Allocator) (*node[Item], error) {
	if err := alloc.allocate(); err != nil {
		return nil, err
	}
	return &node[Item]{
		isLeaf:   false,
		keys:     make([]Item, 0, maxKeys),
		children: make([]*node[Item], 0, maxKeys+1),
	}, nil
}

// insertLeafEntry inserts key/item at idx, shifting the tail right.
func (n *node[Item]) insertLeafEntry(idx int, key, item Item) {
	n.keys = append(n.keys, key)
	copy(n.keys[idx+1:], n.keys[idx:])
	n.keys[idx] = key

	n.items = append(n.items, item)
	copy(n.items[idx+1:], n.items[idx:])
	n.items[idx] = item
}

// removeLeafEntry removes the entry at idx, shifting the tail left.
func (n *node[Item]) removeLeafEntry(idx int) {
	n.keys = append(n.keys[:idx], n.keys[idx+1:]...)
	n.items = append(n.items[:idx], n.items[idx+1:]...)
}

func (n *node[Item]) appendLeafEntry(key, item Item) {
	n.keys = append(n.keys, key)
	n.items = append(n.items, item)
}

func (n *node[Item]) prependLeafEntry(key, item Item) {
	n.insertLeafEntry(0, key, item)
}

func (n *node[Item]) popFirstLeafEntry() (key, item Item) {
	key, item = n.keys[0], n.items[0]
	n.removeLeafEntry(0)
	return key, item
}

func (n *node[Item]) popLastLeafEntry() (key, item Item) {
	last := len(n.keys) - 1
	key, item = n.keys[last], n.items[last]
	n.keys = n.keys[:last]
	n.items = n.items[:last]
	return key, item
}

// insertKeyAt inserts a routing key at idx in an internal node.
func (n *node[Item]) insertKeyAt(idx int, key Item) {
	n.keys = append(n.keys, key)
	copy(n.keys[idx+1:], n.keys[idx:])
	n.keys[idx] = key
}

func (n *node[Item]) removeKeyAt(idx int) {
	n.keys = append(n.keys[:idx], n.keys[idx+1:]...)
}

func (n *node[Item]) insertChildAt(idx int, child *node[Item]) {
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
}

func (n *node[Item]) removeChildAt(idx int) {
	n.children = append(n.children[:idx], n.children[idx+1:]...)
}

func (n *node[Item]) appendKey(key Item) {
	n.keys = append(n.keys, key)
}

func (n *node[Item]) prependKey(key Item) {
	n.insertKeyAt(0, key)
}

func (n *node[Item]) appendChild(child *node[Item]) {
	n.children = append(n.children, child)
}

func (n *node[Item]) prependChild(child *node[Item]) {
	n.insertChildAt(0, child)
}

func (n *node[Item]) popFirstKey() Item {
	k := n.keys[0]
	n.removeKeyAt(0)
	return k
}

func (n *node[Item]) popLastKey() Item {
	last := len(n.keys) - 1
	k := n.keys[last]
	n.keys = n.keys[:last]
	return k
}

func (n *node[Item]) popFirstChild() *node[Item] {
	c := n.children[0]
	n.removeChildAt(0)
	return c
}

func (n *node[Item]) popLastChild() *node[Item] {
	last := len(n.children) - 1
	c := n.children[last]
	n.children = n.children[:last]
	return c
}
