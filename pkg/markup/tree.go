package markup

import "errors"

// ErrCycle is returned by AppendChild when the attachment would make a node
// its own descendant.
var ErrCycle = errors.New("markup: attach would create a cycle")

// AppendChild attaches child as the last child of n. A child that is already
// attached elsewhere is detached from its current parent first, so a node
// has at most one parent at any time. Attaching n itself, or any of n's
// ancestors, is rejected with ErrCycle. A nil child is ignored.
func (n *Node) AppendChild(child *Node) error {
	if child == nil {
		return nil
	}
	for a := n; a != nil; a = a.Parent() {
		if a == child {
			return ErrCycle
		}
	}
	if p := child.Parent(); p != nil {
		p.RemoveChildNode(child)
	}

	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	child.setParent(n)
	return nil
}

// RemoveChild detaches and returns the child at index i, clearing its parent
// reference. The second return value is false if i is out of range.
func (n *Node) RemoveChild(i int) (*Node, bool) {
	n.mu.Lock()
	if i < 0 || i >= len(n.children) {
		n.mu.Unlock()
		return nil, false
	}
	child := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.mu.Unlock()

	child.setParent(nil)
	return child, true
}

// RemoveChildNode detaches the first child identical to child, clearing its
// parent reference. It reports whether a child was removed.
func (n *Node) RemoveChildNode(child *Node) bool {
	n.mu.Lock()
	for i, ch := range n.children {
		if ch == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			n.mu.Unlock()
			child.setParent(nil)
			return true
		}
	}
	n.mu.Unlock()
	return false
}

// RemoveAllChildren detaches every child, clearing each one's parent
// reference.
func (n *Node) RemoveAllChildren() {
	n.mu.Lock()
	children := n.children
	n.children = nil
	n.mu.Unlock()

	for _, ch := range children {
		ch.setParent(nil)
	}
}

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// Children returns a snapshot of the node's children in order. Mutating the
// returned slice does not affect the tree.
func (n *Node) Children() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.children)
}

func (n *Node) setParent(p *Node) {
	n.mu.Lock()
	n.parent = p
	n.mu.Unlock()
}
