package testing

import (
	"github.com/go-aria/aria/pkg/core"
)

// KeyDown constructs a keydown event record.
func KeyDown(key core.Key) *core.KeyEvent {
	return &core.KeyEvent{Key: key}
}

// ShiftKeyDown constructs a keydown event record with Shift held.
func ShiftKeyDown(key core.Key) *core.KeyEvent {
	return &core.KeyEvent{Key: key, Shift: true}
}

// PointerDownOn constructs a global pointer-down event whose hit test
// resolved to target. Pass nil for a press that landed on no tracked element.
func PointerDownOn(target core.NodeRef) core.PointerEvent {
	return core.PointerEvent{Target: target}
}
