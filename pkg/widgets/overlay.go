package widgets

import (
	"github.com/go-aria/aria/pkg/boundary"
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/focus"
	"github.com/go-aria/aria/pkg/state"
)

// overlayOptions carries the dismissal knobs shared by overlay controllers.
type overlayOptions struct {
	initialFocus        core.NodeRef
	disableEscapeClose  bool
	disableOutsideClose bool
}

// overlay is the shared open/dismiss machinery behind dialogs, menus and
// drawers: an open cell, a focus ring, and a boundary watcher whose
// lifetimes track the open state. The embedding controller owns the cell's
// construction; overlay keeps listeners in sync with the value.
type overlay struct {
	router    *Router
	container core.NodeRef
	opts      overlayOptions

	open    *state.Cell[bool]
	ring    *focus.Ring
	watcher *boundary.Watcher
}

func (o *overlay) init(router *Router, container core.NodeRef, opts overlayOptions) {
	o.router = router
	o.container = container
	o.opts = opts
	o.ring = router.Focus.NewRing()
	o.watcher = router.Boundaries.NewWatcher()
}

// request routes an attempted open-state change through the cell. In
// uncontrolled mode the cell accepts the value and the listeners follow
// immediately; in controlled mode the owner decides, and listeners move only
// when the owner pushes the value back through the prop channel.
func (o *overlay) request(open bool) {
	o.open.Write(open)
	o.sync()
}

// sync brings the ring and watcher in line with the cell's current value.
// Attach order matters: the ring activates first so the watcher ends up
// innermost and Escape wins over Tab handling for the same overlay.
func (o *overlay) sync() {
	if o.open.Read() {
		if !o.watcher.Attached() {
			o.ring.Activate(o.container, o.opts.initialFocus)
			o.watcher.Attach(o.container, o.onOutside(), o.onEscape())
		}
		return
	}
	o.teardown()
}

// teardown releases both listeners. Safe to call repeatedly.
func (o *overlay) teardown() {
	o.watcher.Detach()
	o.ring.Deactivate()
}

func (o *overlay) onOutside() func() {
	if o.opts.disableOutsideClose {
		return nil
	}
	return func() { o.request(false) }
}

func (o *overlay) onEscape() func() {
	if o.opts.disableEscapeClose {
		return nil
	}
	return func() { o.request(false) }
}
