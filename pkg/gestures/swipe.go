// Package gestures turns raw touch samples into discrete swipe events.
//
// A [Tracker] is a small state machine fed by the host's touch dispatch. It
// classifies the dominant axis once the motion leaves the slop radius and
// commits a [Swipe] on release when the gesture clears the distance, duration
// and velocity thresholds. Anything else — a tap, a slow drag, a cancelled or
// multi-finger sequence — produces no event at all.
package gestures

import (
	"math"
	"time"
)

// Direction of a committed swipe.
type Direction int

const (
	// DirectionLeft is a swipe toward negative X.
	DirectionLeft Direction = iota
	// DirectionRight is a swipe toward positive X.
	DirectionRight
	// DirectionUp is a swipe toward negative Y.
	DirectionUp
	// DirectionDown is a swipe toward positive Y.
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction runs along the X axis.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Swipe is a discrete gesture event derived from a touch sequence.
type Swipe struct {
	Direction Direction
	// Distance is the absolute delta along the dominant axis, in pixels.
	Distance float64
	// Duration is the elapsed time from touch start to release.
	Duration time.Duration
	// Velocity is the speed along the dominant axis, in pixels per millisecond.
	Velocity float64
}

// Config holds the swipe detection thresholds.
type Config struct {
	// Slop is the movement radius, in pixels, below which the motion is not
	// yet classified as a candidate swipe.
	Slop float64
	// MinDistance is the commit threshold along the dominant axis, in pixels.
	MinDistance float64
	// MaxDuration rejects slow drags: sequences longer than this never commit.
	MaxDuration time.Duration
	// MinVelocity is the commit floor in pixels per millisecond.
	MinVelocity float64
}

// DefaultConfig returns the stock thresholds: 10px slop, 30px commit
// distance, 300ms maximum duration, 0.1 px/ms minimum velocity.
func DefaultConfig() Config {
	return Config{
		Slop:        10,
		MinDistance: 30,
		MaxDuration: 300 * time.Millisecond,
		MinVelocity: 0.1,
	}
}

// withDefaults fills zero fields so a partially specified Config behaves
// sensibly.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Slop <= 0 {
		c.Slop = def.Slop
	}
	if c.MinDistance <= 0 {
		c.MinDistance = def.MinDistance
	}
	if c.MaxDuration <= 0 {
		c.MaxDuration = def.MaxDuration
	}
	if c.MinVelocity <= 0 {
		c.MinVelocity = def.MinVelocity
	}
	return c
}

// TouchPoint is one raw sample from the host's touch dispatch.
type TouchPoint struct {
	X, Y float64
	Time time.Time
}

// DistanceTo returns the straight-line distance to other, in pixels.
func (p TouchPoint) DistanceTo(other TouchPoint) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Hypot(dx, dy)
}

// DurationTo returns the elapsed time to other.
func (p TouchPoint) DurationTo(other TouchPoint) time.Duration {
	d := other.Time.Sub(p.Time)
	if d < 0 {
		return -d
	}
	return d
}

// classify maps a delta to its dominant-axis direction. Ties between the
// axes resolve to horizontal.
func classify(dx, dy float64) Direction {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if dy < 0 {
		return DirectionUp
	}
	return DirectionDown
}

// dominantDelta returns the absolute delta along the dominant axis.
func dominantDelta(dx, dy float64) float64 {
	if math.Abs(dx) >= math.Abs(dy) {
		return math.Abs(dx)
	}
	return math.Abs(dy)
}
