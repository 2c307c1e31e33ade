package boundary

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/errors"
)

// Watcher observes one element boundary. The owning widget attaches it when
// it opens and detaches it on close or unmount; a listener must never
// outlive its widget.
//
// A watcher is owned by the widget instance that created it and must only be
// used from the host's event loop.
type Watcher struct {
	coordinator *Coordinator
	target      core.NodeRef
	onOutside   func()
	onEscape    func()
	attached    bool
}

// Attached reports whether the watcher is currently listening.
func (w *Watcher) Attached() bool {
	return w.attached
}

// Attach starts watching target. onOutside fires when a global pointer-down
// lands outside target's subtree; onEscape fires when this watcher is the
// innermost attached watcher at the time of an Escape press. Either callback
// may be nil.
//
// Attaching twice without detaching is a developer error: it is reported and
// ignored, so callbacks can never fire twice for one event.
func (w *Watcher) Attach(target core.NodeRef, onOutside, onEscape func()) {
	if w.attached {
		errors.Warnf("boundary.Watcher.Attach", errors.KindConfig,
			"watcher already attached; ignoring second attach")
		return
	}
	if target == nil {
		errors.Warnf("boundary.Watcher.Attach", errors.KindConfig,
			"nil target; watcher not attached")
		return
	}
	w.target = target
	w.onOutside = onOutside
	w.onEscape = onEscape
	w.attached = true
	w.coordinator.push(w)
}

// Detach removes the watcher from the coordinator and drops both callbacks.
// Detach is idempotent: a second call is a no-op.
func (w *Watcher) Detach() {
	if !w.attached {
		return
	}
	w.attached = false
	w.coordinator.remove(w)
	w.target = nil
	w.onOutside = nil
	w.onEscape = nil
}

// notifyPointerDown fires onOutside when the event target is not contained
// within the watched subtree. A nil event target means the press resolved to
// no tracked element, which counts as outside every boundary.
func (w *Watcher) notifyPointerDown(event core.PointerEvent) {
	if !w.attached || w.onOutside == nil {
		return
	}
	if event.Target != nil && w.target.Contains(event.Target) {
		return
	}
	defer errors.Recover("boundary.Watcher.notifyPointerDown")
	w.onOutside()
}

func (w *Watcher) notifyEscape() {
	if !w.attached || w.onEscape == nil {
		return
	}
	defer errors.Recover("boundary.Watcher.notifyEscape")
	w.onEscape()
}
