package testing

import (
	"time"

	"github.com/go-aria/aria/pkg/gestures"
)

// TouchSequence drives a gesture tracker with a synthesized touch sequence:
// one start, a series of interpolated moves, and one end, with timestamps
// spread evenly across duration. steps controls how many intermediate move
// samples are emitted.
func TouchSequence(tracker *gestures.Tracker, from, to gestures.TouchPoint, duration time.Duration, steps int) {
	if steps < 1 {
		steps = 1
	}
	start := time.Unix(0, 0)
	if !from.Time.IsZero() {
		start = from.Time
	}

	tracker.OnTouchStart(gestures.TouchPoint{X: from.X, Y: from.Y, Time: start})
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps+1)
		tracker.OnTouchMove(gestures.TouchPoint{
			X:    from.X + (to.X-from.X)*frac,
			Y:    from.Y + (to.Y-from.Y)*frac,
			Time: start.Add(time.Duration(float64(duration) * frac)),
		})
	}
	tracker.OnTouchEnd(gestures.TouchPoint{X: to.X, Y: to.Y, Time: start.Add(duration)})
}

// Swipe drives tracker with a straight horizontal or vertical gesture of the
// given distance and duration. Positive distance moves right or down
// depending on vertical.
func Swipe(tracker *gestures.Tracker, distance float64, vertical bool, duration time.Duration) {
	from := gestures.TouchPoint{X: 100, Y: 100}
	to := from
	if vertical {
		to.Y += distance
	} else {
		to.X += distance
	}
	TouchSequence(tracker, from, to, duration, 5)
}
