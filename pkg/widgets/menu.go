package widgets

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/roving"
	"github.com/go-aria/aria/pkg/state"
)

// MenuOptions configures a MenuController.
type MenuOptions struct {
	// OnOpenChange observes every attempted open-state change.
	OnOpenChange func(bool)

	// OnSelect receives the index of the activated item. Activation closes
	// the menu.
	OnSelect func(index int)

	// Wrap controls whether arrow navigation wraps past the ends.
	Wrap bool

	// DisableOutsideClose keeps the menu open on outside pointer-down.
	DisableOutsideClose bool
}

// MenuController manages a dropdown menu: an uncontrolled open state with
// Escape/outside dismissal, and vertical roving navigation over the item
// list while open. Enter activates the highlighted item.
type MenuController struct {
	overlay
	nav  *roving.Navigator
	doc  core.Document
	opts MenuOptions
}

// NewMenuController creates a controller for the menu rendered inside
// container.
func NewMenuController(router *Router, doc core.Document, container core.NodeRef, opts MenuOptions) *MenuController {
	m := &MenuController{
		nav:  roving.New(doc, roving.Vertical, opts.Wrap),
		doc:  doc,
		opts: opts,
	}
	m.overlay.init(router, container, overlayOptions{
		disableOutsideClose: opts.DisableOutsideClose,
	})
	m.open = state.NewUncontrolled(false, opts.OnOpenChange)
	return m
}

// SetItems replaces the menu's item list.
func (m *MenuController) SetItems(items []roving.Item) {
	m.nav.SetItems(items)
}

// IsOpen reports whether the menu is open.
func (m *MenuController) IsOpen() bool {
	return m.open.Read()
}

// Open opens the menu and highlights the first item.
func (m *MenuController) Open() {
	m.request(true)
	m.nav.SetActiveIndex(0)
}

// Close closes the menu.
func (m *MenuController) Close() {
	m.request(false)
}

// HighlightedIndex returns the index arrow navigation currently sits on.
func (m *MenuController) HighlightedIndex() int {
	return m.nav.ActiveIndex()
}

// OnKey forwards a keydown to the menu while it is open: arrow keys move the
// highlight, Enter activates the highlighted item and closes the menu.
// Escape is handled upstream by the boundary coordinator.
func (m *MenuController) OnKey(event *core.KeyEvent) {
	if !m.open.Read() || event.Consumed() {
		return
	}
	if event.Key == core.KeyEnter {
		event.Consume()
		index := m.nav.ActiveIndex()
		m.request(false)
		if m.opts.OnSelect != nil {
			m.opts.OnSelect(index)
		}
		return
	}
	if _, moved := m.nav.OnKey(event.Key); moved {
		event.Consume()
	}
}

// Unmount releases all listeners. Call it when the owning widget leaves the
// tree.
func (m *MenuController) Unmount() {
	m.teardown()
}
