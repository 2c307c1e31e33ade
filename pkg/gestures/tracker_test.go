package gestures

import (
	"testing"
	"time"
)

// drive feeds a straight-line sequence from start by (dx, dy) over duration,
// with a handful of intermediate moves.
func drive(t *Tracker, dx, dy float64, duration time.Duration) {
	start := TouchPoint{X: 100, Y: 100, Time: time.Unix(10, 0)}
	t.OnTouchStart(start)
	const steps = 4
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps+1)
		t.OnTouchMove(TouchPoint{
			X:    start.X + dx*frac,
			Y:    start.Y + dy*frac,
			Time: start.Time.Add(time.Duration(float64(duration) * frac)),
		})
	}
	t.OnTouchEnd(TouchPoint{X: start.X + dx, Y: start.Y + dy, Time: start.Time.Add(duration)})
}

func testConfig() Config {
	return Config{Slop: 10, MinDistance: 30, MaxDuration: 300 * time.Millisecond, MinVelocity: 0.1}
}

func TestHorizontalSwipeCommits(t *testing.T) {
	var swipes []Swipe
	tracker := NewTracker(testConfig(), func(s Swipe) { swipes = append(swipes, s) })

	drive(tracker, 50, 0, 100*time.Millisecond)

	if len(swipes) != 1 {
		t.Fatalf("expected exactly one swipe, got %d", len(swipes))
	}
	s := swipes[0]
	if s.Direction != DirectionRight {
		t.Errorf("expected right, got %s", s.Direction)
	}
	if s.Distance != 50 {
		t.Errorf("expected distance 50, got %v", s.Distance)
	}
	if s.Duration != 100*time.Millisecond {
		t.Errorf("expected duration 100ms, got %v", s.Duration)
	}
}

func TestSlowDragRejected(t *testing.T) {
	fired := 0
	tracker := NewTracker(testConfig(), func(Swipe) { fired++ })

	drive(tracker, 50, 0, 500*time.Millisecond)

	if fired != 0 {
		t.Errorf("a 500ms drag must not commit, got %d", fired)
	}
}

func TestBelowCommitThresholdRejected(t *testing.T) {
	fired := 0
	tracker := NewTracker(testConfig(), func(Swipe) { fired++ })

	drive(tracker, 20, 0, 100*time.Millisecond)

	if fired != 0 {
		t.Errorf("20px is below the commit threshold, got %d", fired)
	}
}

func TestBelowMinVelocityRejected(t *testing.T) {
	fired := 0
	cfg := testConfig()
	cfg.MaxDuration = 2 * time.Second
	tracker := NewTracker(cfg, func(Swipe) { fired++ })

	// 35px over 1s is 0.035 px/ms: inside distance and duration, too slow.
	drive(tracker, 35, 0, time.Second)

	if fired != 0 {
		t.Errorf("below minimum velocity must not commit, got %d", fired)
	}
}

func TestVerticalDominanceClassifiesVertical(t *testing.T) {
	var swipes []Swipe
	tracker := NewTracker(testConfig(), func(s Swipe) { swipes = append(swipes, s) })

	drive(tracker, 10, -60, 100*time.Millisecond)

	if len(swipes) != 1 || swipes[0].Direction != DirectionUp {
		t.Fatalf("expected one upward swipe, got %v", swipes)
	}
	if swipes[0].Distance != 60 {
		t.Errorf("distance is measured along the dominant axis, got %v", swipes[0].Distance)
	}
}

func TestAxisTieResolvesHorizontal(t *testing.T) {
	var swipes []Swipe
	tracker := NewTracker(testConfig(), func(s Swipe) { swipes = append(swipes, s) })

	drive(tracker, 40, 40, 100*time.Millisecond)

	if len(swipes) != 1 || swipes[0].Direction != DirectionRight {
		t.Fatalf("equal deltas must classify horizontal, got %v", swipes)
	}
}

func TestMultiTouchDiscardsGesture(t *testing.T) {
	fired := 0
	tracker := NewTracker(testConfig(), func(Swipe) { fired++ })

	start := TouchPoint{X: 0, Y: 0, Time: time.Unix(10, 0)}
	tracker.OnTouchStart(start)
	tracker.OnTouchMove(TouchPoint{X: 40, Y: 0, Time: start.Time.Add(50 * time.Millisecond)})
	// Second finger lands before the first lifts.
	tracker.OnTouchStart(TouchPoint{X: 10, Y: 10, Time: start.Time.Add(60 * time.Millisecond)})
	tracker.OnTouchEnd(TouchPoint{X: 80, Y: 0, Time: start.Time.Add(100 * time.Millisecond)})

	if fired != 0 {
		t.Errorf("multi-touch must discard the gesture, got %d", fired)
	}
}

func TestTouchCancelForcesIdle(t *testing.T) {
	fired := 0
	tracker := NewTracker(testConfig(), func(Swipe) { fired++ })

	start := TouchPoint{X: 0, Y: 0, Time: time.Unix(10, 0)}
	tracker.OnTouchStart(start)
	tracker.OnTouchMove(TouchPoint{X: 50, Y: 0, Time: start.Time.Add(50 * time.Millisecond)})
	tracker.OnTouchCancel()
	tracker.OnTouchEnd(TouchPoint{X: 60, Y: 0, Time: start.Time.Add(80 * time.Millisecond)})

	if fired != 0 {
		t.Errorf("cancelled gestures must emit nothing, got %d", fired)
	}

	// The tracker is usable again after a cancel.
	drive(tracker, 50, 0, 100*time.Millisecond)
	if fired != 1 {
		t.Errorf("tracker should recover after cancel, got %d", fired)
	}
}

func TestCandidateClassification(t *testing.T) {
	tracker := NewTracker(testConfig(), func(Swipe) {})

	start := TouchPoint{X: 0, Y: 0, Time: time.Unix(10, 0)}
	tracker.OnTouchStart(start)
	if _, ok := tracker.Candidate(); ok {
		t.Error("no candidate before the motion leaves the slop radius")
	}

	tracker.OnTouchMove(TouchPoint{X: 5, Y: 0, Time: start.Time.Add(10 * time.Millisecond)})
	if _, ok := tracker.Candidate(); ok {
		t.Error("5px is inside the 10px slop radius")
	}

	tracker.OnTouchMove(TouchPoint{X: -20, Y: 0, Time: start.Time.Add(30 * time.Millisecond)})
	dir, ok := tracker.Candidate()
	if !ok || dir != DirectionLeft {
		t.Errorf("expected a left candidate, got %v ok=%v", dir, ok)
	}

	tracker.OnTouchEnd(TouchPoint{X: -20, Y: 0, Time: start.Time.Add(60 * time.Millisecond)})
	if _, ok := tracker.Candidate(); ok {
		t.Error("candidate must clear once the sequence ends")
	}
}

func TestMovesWithoutStartIgnored(t *testing.T) {
	fired := 0
	tracker := NewTracker(testConfig(), func(Swipe) { fired++ })

	tracker.OnTouchMove(TouchPoint{X: 50, Y: 0, Time: time.Unix(10, 0)})
	tracker.OnTouchEnd(TouchPoint{X: 100, Y: 0, Time: time.Unix(11, 0)})

	if fired != 0 {
		t.Errorf("samples without a start must be ignored, got %d", fired)
	}
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	tracker := NewTracker(Config{}, func(Swipe) {})
	cfg := tracker.Config()
	def := DefaultConfig()
	if cfg != def {
		t.Errorf("zero config should resolve to defaults, got %+v", cfg)
	}
}

func TestPanickingCallbackLeavesTrackerIdle(t *testing.T) {
	tracker := NewTracker(testConfig(), func(Swipe) { panic("widget bug") })

	drive(tracker, 50, 0, 100*time.Millisecond)

	// The next gesture must track normally.
	ok := false
	tracker.onSwipe = func(Swipe) { ok = true }
	drive(tracker, 50, 0, 100*time.Millisecond)
	if !ok {
		t.Error("tracker must stay usable after a panicking callback")
	}
}
