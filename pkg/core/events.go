package core

// Offset is a position in logical pixels.
type Offset struct {
	X, Y float64
}

// Key identifies a keyboard key by its logical name.
type Key string

// Keys the interaction primitives react to.
const (
	KeyTab        Key = "Tab"
	KeyEscape     Key = "Escape"
	KeyEnter      Key = "Enter"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
)

// KeyEvent is a keyboard event record. Events are mutable so that the first
// primitive to act on a key can mark it consumed; downstream listeners on the
// same keydown check Consumed and stay quiet, which keeps nested overlays
// from double-firing on a single Escape press.
type KeyEvent struct {
	Key   Key
	Shift bool

	consumed bool
}

// Consume marks the event as handled.
func (e *KeyEvent) Consume() {
	e.consumed = true
}

// Consumed reports whether a listener already handled the event.
func (e *KeyEvent) Consumed() bool {
	return e.consumed
}

// PointerEvent is a pointer-down event record. Target is the node the host's
// hit test resolved the press to; it may be nil when the press landed on no
// tracked element at all.
type PointerEvent struct {
	Target   NodeRef
	Position Offset
}
