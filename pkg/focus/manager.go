// Package focus provides focus trapping and restoration for overlays.
//
// A [Ring] constrains Tab cycling to one container subtree and restores the
// previously focused node on deactivation. Rings nest: a dialog that opens a
// popover pushes a second ring, and only the innermost active ring traps Tab.
// Outer rings are suspended, not deactivated, and resume trapping exactly
// when the inner ring deactivates.
package focus

import (
	"github.com/go-aria/aria/pkg/core"
)

// Manager owns the stack of active rings for one document. Create exactly
// one per document and pass it to every widget that traps focus; keeping the
// stack an explicit object rather than an ambient global keeps the
// dependency visible and testable in isolation.
type Manager struct {
	doc   core.Document
	rings []*Ring // bottom to top; the last entry is the innermost ring
}

// NewManager creates a Manager for the given document.
func NewManager(doc core.Document) *Manager {
	return &Manager{doc: doc}
}

// NewRing creates an inactive ring bound to this manager.
func (m *Manager) NewRing() *Ring {
	return &Ring{manager: m}
}

// HandleKey intercepts Tab and Shift+Tab for the innermost active ring.
// All other keys, and Tab presses with no active ring, pass through
// untouched. Call it from the host's global keydown dispatch.
func (m *Manager) HandleKey(event *core.KeyEvent) {
	if event == nil || event.Consumed() || event.Key != core.KeyTab {
		return
	}
	if top := m.innermost(); top != nil {
		top.handleTab(event)
	}
}

// innermost returns the most recently activated ring, or nil.
func (m *Manager) innermost() *Ring {
	if len(m.rings) == 0 {
		return nil
	}
	return m.rings[len(m.rings)-1]
}

func (m *Manager) push(r *Ring) {
	m.rings = append(m.rings, r)
}

// remove takes r out of the stack wherever it sits. Rings usually deactivate
// innermost-first, but an outer widget unmounting early must not strand the
// stack.
func (m *Manager) remove(r *Ring) {
	for i, ring := range m.rings {
		if ring == r {
			m.rings = append(m.rings[:i], m.rings[i+1:]...)
			return
		}
	}
}
