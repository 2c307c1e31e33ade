package core

// NodeRef is an opaque handle to a renderable element owned by the host
// framework. Handles are lookup-only: holding one never extends the
// element's lifetime, so callers must check Attached before acting on a
// handle captured earlier.
//
// Two NodeRef values are the same element exactly when they compare equal.
type NodeRef interface {
	// Contains reports whether other is this node or one of its descendants.
	Contains(other NodeRef) bool

	// Attached reports whether the node is still part of the host document.
	Attached() bool

	// Focusable reports whether the node can receive keyboard focus.
	Focusable() bool
}

// TabIndexer is implemented by node handles that expose tab-index control.
// Primitives that maintain roving-tabindex discipline type-assert for it and
// silently skip nodes that do not implement it.
type TabIndexer interface {
	SetTabIndex(index int)
}

// Document is the host framework's focus owner. There is exactly one focused
// node per document; all primitives that move focus do so through this
// interface so the shared state stays observable in tests.
type Document interface {
	// FocusedNode returns the currently focused node, or nil when nothing
	// holds focus (for example when the document body has focus).
	FocusedNode() NodeRef

	// RequestFocus moves keyboard focus to node.
	RequestFocus(node NodeRef)

	// FocusablesWithin returns the focusable descendants of container in
	// document order. The result reflects the tree at call time; callers
	// that need fresh data must not cache it.
	FocusablesWithin(container NodeRef) []NodeRef
}
