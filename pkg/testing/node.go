package testing

import (
	"github.com/go-aria/aria/pkg/core"
)

// Node is an in-memory stand-in for a host framework element. It implements
// core.NodeRef and core.TabIndexer and records the tab-index writes the
// roving primitives perform.
type Node struct {
	label       string
	focusable   bool
	detached    bool
	parent      *Node
	children    []*Node
	tabIndex    int
	tabIndexSet bool
}

// NewNode creates a detachable, non-focusable node with a debug label.
func NewNode(label string) *Node {
	return &Node{label: label}
}

// NewFocusable creates a focusable node with a debug label.
func NewFocusable(label string) *Node {
	return &Node{label: label, focusable: true}
}

// AddChild appends children to the node and returns the node for chaining.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// SetFocusable updates whether the node can receive focus.
func (n *Node) SetFocusable(focusable bool) {
	n.focusable = focusable
}

// Detach simulates removal from the host document. Descendants are
// considered detached through their ancestor.
func (n *Node) Detach() {
	n.detached = true
	if n.parent != nil {
		for i, sibling := range n.parent.children {
			if sibling == n {
				n.parent.children = append(n.parent.children[:i], n.parent.children[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
}

// Contains reports whether other is this node or one of its descendants.
func (n *Node) Contains(other core.NodeRef) bool {
	target, ok := other.(*Node)
	if !ok {
		return false
	}
	for cur := target; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Attached reports whether the node or any ancestor was detached.
func (n *Node) Attached() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.detached {
			return false
		}
	}
	return true
}

// Focusable reports whether the node can receive keyboard focus.
func (n *Node) Focusable() bool {
	return n.focusable
}

// SetTabIndex records a roving-tabindex write.
func (n *Node) SetTabIndex(index int) {
	n.tabIndex = index
	n.tabIndexSet = true
}

// TabIndex returns the last written tab index and whether one was written.
func (n *Node) TabIndex() (int, bool) {
	return n.tabIndex, n.tabIndexSet
}

func (n *Node) String() string {
	return n.label
}
