package widgets

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/state"
)

// DialogOptions configures a DialogController.
type DialogOptions struct {
	// Open supplies a controlled open value. When non-nil the caller owns
	// the open state: the controller only reports attempted changes through
	// OnOpenChange, and the caller pushes the decided value back with
	// SetOpen.
	Open *bool

	// DefaultOpen is the initial value in uncontrolled mode.
	DefaultOpen bool

	// OnOpenChange observes every attempted open-state change.
	OnOpenChange func(bool)

	// InitialFocus receives focus when the dialog opens. When nil, focus
	// goes to the first focusable descendant of the container.
	InitialFocus core.NodeRef

	// DisableEscapeClose keeps the dialog open on Escape.
	DisableEscapeClose bool

	// DisableOutsideClose keeps the dialog open on outside pointer-down.
	DisableOutsideClose bool
}

// DialogController manages a modal overlay's lifecycle: open state, focus
// trapping with restoration, and Escape/outside dismissal. While open it
// holds the innermost positions on the focus ring stack and the boundary
// watcher stack, so nested overlays layered above it take precedence
// automatically.
type DialogController struct {
	overlay
	opts DialogOptions
}

// NewDialogController creates a controller for the dialog rendered inside
// container. The router supplies the per-document coordinators.
func NewDialogController(router *Router, container core.NodeRef, opts DialogOptions) *DialogController {
	d := &DialogController{opts: opts}
	d.overlay.init(router, container, overlayOptions{
		initialFocus:        opts.InitialFocus,
		disableEscapeClose:  opts.DisableEscapeClose,
		disableOutsideClose: opts.DisableOutsideClose,
	})
	if opts.Open != nil {
		d.open = state.NewControlled(*opts.Open, opts.OnOpenChange)
	} else {
		d.open = state.NewUncontrolled(opts.DefaultOpen, opts.OnOpenChange)
	}
	d.sync()
	return d
}

// IsOpen reports the current open state.
func (d *DialogController) IsOpen() bool {
	return d.open.Read()
}

// Open requests the dialog to open.
func (d *DialogController) Open() {
	d.request(true)
}

// Close requests the dialog to close.
func (d *DialogController) Close() {
	d.request(false)
}

// Toggle requests the opposite of the current open state.
func (d *DialogController) Toggle() {
	d.request(!d.open.Read())
}

// SetOpen is the prop channel for controlled dialogs: the owner calls it
// when its open value changes, and the controller attaches or releases its
// listeners to match.
func (d *DialogController) SetOpen(open bool) {
	d.open.SetExternal(open)
	d.sync()
}

// Unmount releases all listeners without touching the open value. Call it
// when the owning widget leaves the tree; no listener may outlive its widget.
func (d *DialogController) Unmount() {
	d.teardown()
}
