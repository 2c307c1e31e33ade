// Package boundary detects input landing outside a tracked element and
// global Escape presses, the two signals overlays use to dismiss themselves.
//
// Outside detection runs on pointer-down rather than click so the dismissal
// fires before any click-triggered side effect on the outside element; a
// single gesture can therefore never close an overlay and immediately reopen
// it through the element underneath.
package boundary

import (
	"github.com/go-aria/aria/pkg/core"
)

// Coordinator owns the stack of attached watchers for one document. There is
// exactly one keyboard and one document at a time, so the registry is shared
// state by necessity; it is an explicit object passed to every watcher
// rather than an ambient global so the dependency stays visible and the
// stack testable in isolation.
//
// Escape dispatch follows the stack: only the most recently attached watcher
// responds to a given press. Outside-pointer detection is evaluated
// independently per watcher, since each has a distinct boundary.
type Coordinator struct {
	watchers []*Watcher // attach order; the last entry wins Escape
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// NewWatcher creates a detached watcher bound to this coordinator.
func (c *Coordinator) NewWatcher() *Watcher {
	return &Watcher{coordinator: c}
}

// HandlePointerDown evaluates every attached watcher against a global
// pointer-down event. Call it from the host's global pointer dispatch.
func (c *Coordinator) HandlePointerDown(event core.PointerEvent) {
	// Callbacks may attach or detach watchers; iterate over a snapshot so
	// dispatch for this event stays consistent.
	snapshot := make([]*Watcher, len(c.watchers))
	copy(snapshot, c.watchers)
	for _, w := range snapshot {
		w.notifyPointerDown(event)
	}
}

// HandleKey dispatches a global keydown. An unconsumed Escape goes to the
// most recently attached watcher only; the event is consumed before the
// callback runs so downstream listeners on the same keydown cannot
// double-fire even if the callback panics.
func (c *Coordinator) HandleKey(event *core.KeyEvent) {
	if event == nil || event.Consumed() || event.Key != core.KeyEscape {
		return
	}
	if len(c.watchers) == 0 {
		return
	}
	top := c.watchers[len(c.watchers)-1]
	event.Consume()
	top.notifyEscape()
}

func (c *Coordinator) push(w *Watcher) {
	c.watchers = append(c.watchers, w)
}

func (c *Coordinator) remove(w *Watcher) {
	for i, watcher := range c.watchers {
		if watcher == w {
			c.watchers = append(c.watchers[:i], c.watchers[i+1:]...)
			return
		}
	}
}
