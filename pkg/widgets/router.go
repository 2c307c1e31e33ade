package widgets

import (
	"github.com/go-aria/aria/pkg/boundary"
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/focus"
)

// Router fans the host's global input events out to the shared coordinators
// in a fixed order: dismissal first (so Escape closes the innermost overlay
// and is consumed before anything else sees it), then focus trapping.
//
// An application creates one Router per document and hands its coordinators
// to every controller it builds.
type Router struct {
	Focus      *focus.Manager
	Boundaries *boundary.Coordinator
}

// NewRouter creates the per-document coordinator pair for doc.
func NewRouter(doc core.Document) *Router {
	return &Router{
		Focus:      focus.NewManager(doc),
		Boundaries: boundary.NewCoordinator(),
	}
}

// HandleKey dispatches a global keydown.
func (r *Router) HandleKey(event *core.KeyEvent) {
	r.Boundaries.HandleKey(event)
	r.Focus.HandleKey(event)
}

// HandlePointerDown dispatches a global pointer-down.
func (r *Router) HandlePointerDown(event core.PointerEvent) {
	r.Boundaries.HandlePointerDown(event)
}
