package widgets

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/gestures"
	"github.com/go-aria/aria/pkg/state"
)

// Edge names the screen edge a drawer is anchored to.
type Edge int

const (
	// EdgeLeft anchors the drawer to the left edge.
	EdgeLeft Edge = iota
	// EdgeRight anchors the drawer to the right edge.
	EdgeRight
	// EdgeTop anchors the drawer to the top edge.
	EdgeTop
	// EdgeBottom anchors the drawer to the bottom edge.
	EdgeBottom
)

// dismissDirection returns the swipe direction that pushes the drawer back
// into its edge.
func (e Edge) dismissDirection() gestures.Direction {
	switch e {
	case EdgeRight:
		return gestures.DirectionRight
	case EdgeTop:
		return gestures.DirectionUp
	case EdgeBottom:
		return gestures.DirectionDown
	default:
		return gestures.DirectionLeft
	}
}

// DrawerOptions configures a DrawerController.
type DrawerOptions struct {
	// Edge the drawer slides out from. Left by default.
	Edge Edge

	// OnOpenChange observes every attempted open-state change.
	OnOpenChange func(bool)

	// Gestures tunes swipe detection; zero fields use defaults.
	Gestures gestures.Config

	// DisableOutsideClose keeps the drawer open on outside pointer-down.
	DisableOutsideClose bool
}

// DrawerController manages an edge-anchored sliding panel: open state with
// Escape/outside dismissal, focus containment while open, and
// swipe-to-dismiss toward the anchored edge. Bottom sheets use the same
// controller with EdgeBottom.
type DrawerController struct {
	overlay
	tracker *gestures.Tracker
	edge    Edge
}

// NewDrawerController creates a controller for the drawer rendered inside
// container.
func NewDrawerController(router *Router, container core.NodeRef, opts DrawerOptions) *DrawerController {
	d := &DrawerController{edge: opts.Edge}
	d.overlay.init(router, container, overlayOptions{
		disableOutsideClose: opts.DisableOutsideClose,
	})
	d.open = state.NewUncontrolled(false, opts.OnOpenChange)
	d.tracker = gestures.NewTracker(opts.Gestures, d.onSwipe)
	return d
}

// IsOpen reports whether the drawer is open.
func (d *DrawerController) IsOpen() bool {
	return d.open.Read()
}

// Open opens the drawer.
func (d *DrawerController) Open() {
	d.request(true)
}

// Close closes the drawer.
func (d *DrawerController) Close() {
	d.request(false)
}

// OnTouchStart forwards a touch start on the drawer surface.
func (d *DrawerController) OnTouchStart(point gestures.TouchPoint) {
	d.tracker.OnTouchStart(point)
}

// OnTouchMove forwards a touch move on the drawer surface.
func (d *DrawerController) OnTouchMove(point gestures.TouchPoint) {
	d.tracker.OnTouchMove(point)
}

// OnTouchEnd forwards a touch release on the drawer surface.
func (d *DrawerController) OnTouchEnd(point gestures.TouchPoint) {
	d.tracker.OnTouchEnd(point)
}

// OnTouchCancel forwards an OS-level touch cancellation.
func (d *DrawerController) OnTouchCancel() {
	d.tracker.OnTouchCancel()
}

// onSwipe dismisses the drawer when the swipe runs toward the anchored edge.
func (d *DrawerController) onSwipe(s gestures.Swipe) {
	if !d.open.Read() {
		return
	}
	if s.Direction == d.edge.dismissDirection() {
		d.request(false)
	}
}

// Unmount releases all listeners. Call it when the owning widget leaves the
// tree.
func (d *DrawerController) Unmount() {
	d.teardown()
}
