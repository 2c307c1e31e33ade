package focus

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/errors"
)

// Ring is a focus trap over one container subtree.
//
// Activate captures the node that held focus, moves focus into the
// container, and registers the ring with its manager so Tab cycling stays
// inside the container. Deactivate unregisters the ring and restores the
// captured node, provided it is still attached to the document.
//
// A ring is owned by the widget instance that created it and must only be
// used from the host's event loop.
type Ring struct {
	manager           *Manager
	container         core.NodeRef
	previouslyFocused core.NodeRef
	active            bool
}

// Active reports whether the ring currently traps focus.
func (r *Ring) Active() bool {
	return r.active
}

// Activate begins trapping focus inside container.
//
// The previously focused node is captured exactly once, here, and consumed
// exactly once, by Deactivate. Initial focus goes to initial if it is given
// and focusable, else to the first focusable descendant of container in
// document order, else to container itself if it is focusable. A container
// with no focusable content at all degrades gracefully: no focus move
// happens, the condition is reported, and keyboard users can still
// Escape-close the overlay.
//
// Activating an already active ring is a developer error; it is reported and
// ignored rather than capturing a second restore target.
func (r *Ring) Activate(container, initial core.NodeRef) {
	if r.active {
		errors.Warnf("focus.Ring.Activate", errors.KindConfig,
			"ring already active; ignoring second activation")
		return
	}
	if container == nil {
		errors.Warnf("focus.Ring.Activate", errors.KindConfig,
			"nil container; ring not activated")
		return
	}

	doc := r.manager.doc
	r.previouslyFocused = doc.FocusedNode()
	r.container = container
	r.active = true
	r.manager.push(r)

	// The registry update above must survive a panicking host focus call,
	// otherwise the stack would hold a ring with no consistent state.
	defer errors.Recover("focus.Ring.Activate")

	target := r.initialTarget(initial)
	if target == nil {
		errors.Warnf("focus.Ring.Activate", errors.KindFocus,
			"container has no focusable content; focus not moved")
		return
	}
	doc.RequestFocus(target)
}

// initialTarget resolves where focus should land on activation.
func (r *Ring) initialTarget(initial core.NodeRef) core.NodeRef {
	if initial != nil && initial.Focusable() {
		return initial
	}
	if focusables := r.manager.doc.FocusablesWithin(r.container); len(focusables) > 0 {
		return focusables[0]
	}
	if r.container.Focusable() {
		return r.container
	}
	return nil
}

// Deactivate stops trapping and restores focus to the node captured by
// Activate, if that node is still attached to the document. A restore target
// that has since been removed leaves focus unchanged; forcing a fallback
// would cause surprising jumps. Deactivate is idempotent: a second call is a
// no-op with no double restoration.
func (r *Ring) Deactivate() {
	if !r.active {
		return
	}
	r.active = false
	r.manager.remove(r)

	prev := r.previouslyFocused
	r.previouslyFocused = nil
	r.container = nil

	defer errors.Recover("focus.Ring.Deactivate")
	if prev != nil && prev.Attached() {
		r.manager.doc.RequestFocus(prev)
	}
}

// handleTab redirects Tab from the last focusable element to the first, and
// Shift+Tab from the first to the last. The focusable list is recomputed at
// every keypress; container content can change while the ring is active.
// Tab presses from any interior position pass through unmodified.
func (r *Ring) handleTab(event *core.KeyEvent) {
	doc := r.manager.doc
	focusables := doc.FocusablesWithin(r.container)
	if len(focusables) == 0 {
		// Transient anomaly, not an error: nothing to cycle through.
		return
	}

	current := doc.FocusedNode()
	index := -1
	for i, node := range focusables {
		if node == current {
			index = i
			break
		}
	}

	switch {
	case !event.Shift && index == len(focusables)-1:
		event.Consume()
		doc.RequestFocus(focusables[0])
	case event.Shift && index == 0:
		event.Consume()
		doc.RequestFocus(focusables[len(focusables)-1])
	case index == -1:
		// Focus escaped the container (e.g. the focused node was removed).
		// Pull it back to the first focusable element.
		event.Consume()
		doc.RequestFocus(focusables[0])
	}
}
