package testing

import (
	"github.com/go-aria/aria/pkg/core"
)

// Document implements core.Document over a Node tree, tracking the single
// focused node and the history of focus moves.
type Document struct {
	root    *Node
	focused core.NodeRef

	// FocusLog records every RequestFocus target in order.
	FocusLog []core.NodeRef
}

// NewDocument creates a document with the given root node.
func NewDocument(root *Node) *Document {
	return &Document{root: root}
}

// Root returns the document root.
func (d *Document) Root() *Node {
	return d.root
}

// FocusedNode returns the currently focused node, or nil.
func (d *Document) FocusedNode() core.NodeRef {
	return d.focused
}

// RequestFocus moves focus to node and records the move.
func (d *Document) RequestFocus(node core.NodeRef) {
	d.focused = node
	d.FocusLog = append(d.FocusLog, node)
}

// FocusablesWithin returns the focusable descendants of container in
// document order (depth first, pre-order). The container itself is not
// included, matching how a host enumerates tabbable content of a subtree.
func (d *Document) FocusablesWithin(container core.NodeRef) []core.NodeRef {
	root, ok := container.(*Node)
	if !ok || !root.Attached() {
		return nil
	}
	var result []core.NodeRef
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, child := range n.children {
			if child.focusable {
				result = append(result, child)
			}
			walk(child)
		}
	}
	walk(root)
	return result
}
