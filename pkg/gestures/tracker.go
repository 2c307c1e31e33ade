package gestures

import (
	"github.com/go-aria/aria/pkg/errors"
)

// phase is the tracker's state. Commitment is instantaneous: a committed
// gesture emits its swipe and the tracker is back in phaseIdle before
// OnTouchEnd returns, so there is no held "committed" phase to represent.
type phase int

const (
	phaseIdle phase = iota
	phaseTracking
)

// Tracker recognizes swipes on one touch surface.
//
// Feed it the host's raw touch events in delivery order. The tracker is
// single-sequence by design: a second touch starting before the first ends
// resets to idle and discards the gesture in progress. An OS-level cancel
// does the same regardless of state.
//
// A tracker is owned by the widget instance that created it and must only be
// used from the host's event loop.
type Tracker struct {
	config  Config
	onSwipe func(Swipe)

	phase     phase
	start     TouchPoint
	candidate Direction
	classified bool
}

// NewTracker creates a tracker with the given thresholds. Zero fields in
// config fall back to DefaultConfig values. onSwipe receives every committed
// swipe; a nil callback is a developer error since the tracker would have no
// way to deliver its output.
func NewTracker(config Config, onSwipe func(Swipe)) *Tracker {
	if onSwipe == nil {
		errors.Warnf("gestures.NewTracker", errors.KindConfig,
			"nil swipe callback; committed swipes will be dropped")
	}
	return &Tracker{config: config.withDefaults(), onSwipe: onSwipe}
}

// Config returns the effective thresholds after default filling.
func (t *Tracker) Config() Config {
	return t.config
}

// OnTouchStart begins tracking a touch sequence. A start arriving while a
// sequence is already tracked means multi-touch; the in-progress gesture is
// discarded and the tracker returns to idle.
func (t *Tracker) OnTouchStart(point TouchPoint) {
	if t.phase == phaseTracking {
		t.reset()
		return
	}
	t.phase = phaseTracking
	t.start = point
	t.classified = false
}

// OnTouchMove updates the provisional classification. Once the motion leaves
// the slop radius along the dominant axis, the candidate direction is
// recorded; later moves may re-classify if the dominant axis changes.
func (t *Tracker) OnTouchMove(point TouchPoint) {
	if t.phase != phaseTracking {
		return
	}
	dx := point.X - t.start.X
	dy := point.Y - t.start.Y
	if dominantDelta(dx, dy) > t.config.Slop {
		t.candidate = classify(dx, dy)
		t.classified = true
	}
}

// Candidate returns the provisional direction recorded during the current
// sequence, and whether the motion has left the slop radius yet. Widgets use
// it to show drag affordances before the gesture commits.
func (t *Tracker) Candidate() (Direction, bool) {
	if t.phase != phaseTracking || !t.classified {
		return 0, false
	}
	return t.candidate, true
}

// OnTouchEnd finishes the sequence. The gesture commits — emitting exactly
// one Swipe — when the dominant-axis delta reaches MinDistance, the elapsed
// time stays within MaxDuration, and the velocity clears MinVelocity.
// Anything below threshold is a tap or an aborted drag: the tracker returns
// to idle with no event.
func (t *Tracker) OnTouchEnd(point TouchPoint) {
	if t.phase != phaseTracking {
		return
	}
	start := t.start
	t.reset()

	dx := point.X - start.X
	dy := point.Y - start.Y
	distance := dominantDelta(dx, dy)
	duration := start.DurationTo(point)

	if distance < t.config.MinDistance {
		return
	}
	if duration > t.config.MaxDuration {
		return
	}
	velocity := 0.0
	if ms := float64(duration.Milliseconds()); ms > 0 {
		velocity = distance / ms
	}
	if velocity < t.config.MinVelocity {
		return
	}

	swipe := Swipe{
		Direction: classify(dx, dy),
		Distance:  distance,
		Duration:  duration,
		Velocity:  velocity,
	}
	if t.onSwipe != nil {
		// The tracker is already idle; a panicking callback must not be able
		// to wedge the state machine.
		defer errors.Recover("gestures.Tracker.OnTouchEnd")
		t.onSwipe(swipe)
	}
}

// OnTouchCancel forces the tracker to idle with no event, regardless of the
// current state.
func (t *Tracker) OnTouchCancel() {
	t.reset()
}

func (t *Tracker) reset() {
	t.phase = phaseIdle
	t.classified = false
}
