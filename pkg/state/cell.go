// Package state provides the controlled/uncontrolled value cell widgets use
// for their open, selection, and position state.
//
// A cell is controlled when its source of truth lives outside the widget: the
// owner supplies the value through the prop channel and observes every
// attempted change through the change callback. An uncontrolled cell owns its
// own copy and updates it on every write. The mode is fixed at construction,
// which rules out the illegal state of "controlled but mutating internal
// storage."
package state

import "github.com/go-aria/aria/pkg/errors"

// Cell holds a single widget-facing value of type T.
//
// Each cell is owned exclusively by the widget instance that created it;
// cells are not shared across widget instances and are not safe for
// concurrent use. Every operation runs synchronously inside the input
// handler that triggered it.
type Cell[T any] struct {
	controlled bool
	external   T
	internal   T
	onChange   func(T)
}

// NewControlled creates a cell whose value is owned by the caller. Write
// never mutates the cell; it only invokes onChange, and Read keeps returning
// the externally supplied value until the owner pushes a new one through
// SetExternal.
//
// A controlled cell with a nil onChange is a logic smell: writes would be
// silently dropped from the caller's perspective. It is reported as a warning
// and the cell still works as a read-only view.
func NewControlled[T any](value T, onChange func(T)) *Cell[T] {
	if onChange == nil {
		errors.Warnf("state.NewControlled", errors.KindConfig,
			"controlled cell has no change callback; writes will be dropped")
	}
	return &Cell[T]{controlled: true, external: value, onChange: onChange}
}

// NewUncontrolled creates a cell that owns its own value, starting at
// initial. onChange may be nil; when present it observes every write.
func NewUncontrolled[T any](initial T, onChange func(T)) *Cell[T] {
	return &Cell[T]{internal: initial, onChange: onChange}
}

// Controlled reports whether the cell's value is owned by the caller.
func (c *Cell[T]) Controlled() bool {
	return c.controlled
}

// Read returns the current value: the external value for a controlled cell,
// the internal copy otherwise. Read has no side effects.
func (c *Cell[T]) Read() T {
	if c.controlled {
		return c.external
	}
	return c.internal
}

// Write records an attempted change. onChange is invoked exactly once per
// call regardless of mode, so external state owners observe every attempt
// even if they choose to ignore it. For an uncontrolled cell the internal
// value is updated and a subsequent Read immediately reflects v; for a
// controlled cell the stored value is left untouched.
func (c *Cell[T]) Write(v T) {
	if c.onChange != nil {
		c.onChange(v)
	}
	if !c.controlled {
		c.internal = v
	}
}

// SetExternal is the prop channel for controlled cells: the owner calls it
// when its copy of the value changes. Calling it on an uncontrolled cell is a
// developer error; the call is reported and ignored.
func (c *Cell[T]) SetExternal(v T) {
	if !c.controlled {
		errors.Warnf("state.Cell.SetExternal", errors.KindConfig,
			"SetExternal called on an uncontrolled cell; ignored")
		return
	}
	c.external = v
}
