package orderedset

// A tree position. The Set's sentinel is a node with end set, it never holds a key, and its left
// child is the real root. Every other node holds exactly one key. Children are owned through the
// left and right links, parent is a back-reference.
type node[K any] struct {
	parent, left, right *node[K]
	key                 K
	end                 bool
}

func (n *node[K]) leftmost() *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K]) rightmost() *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// In-order successor. The maximum's successor is the sentinel, because the climb stops at the
// root, which is its parent's left child.
func (n *node[K]) next() *node[K] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

func (n *node[K]) prev() *node[K] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

// Returns the parent's link that refers to n.
func (n *node[K]) parentSlot() **node[K] {
	if n.parent.left == n {
		return &n.parent.left
	}
	return &n.parent.right
}

func (n *node[K]) unlink() {
	n.parent = nil
	n.left = nil
	n.right = nil
}
