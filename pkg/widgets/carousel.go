package widgets

import (
	"github.com/go-aria/aria/pkg/gestures"
	"github.com/go-aria/aria/pkg/state"
)

// CarouselOptions configures a CarouselController.
type CarouselOptions struct {
	// Count is the number of slides.
	Count int

	// DefaultIndex is the initial slide.
	DefaultIndex int

	// OnIndexChange observes every attempted slide change.
	OnIndexChange func(int)

	// Wrap advances from the last slide back to the first and vice versa.
	Wrap bool

	// Gestures tunes swipe detection; zero fields use defaults.
	Gestures gestures.Config
}

// CarouselController manages a horizontally swipeable slide index: swiping
// left advances to the next slide, swiping right returns to the previous
// one. Vertical swipes are ignored so the page underneath keeps scrolling.
type CarouselController struct {
	index   *state.Cell[int]
	tracker *gestures.Tracker
	count   int
	wrap    bool
}

// NewCarouselController creates a carousel controller.
func NewCarouselController(opts CarouselOptions) *CarouselController {
	c := &CarouselController{
		index: state.NewUncontrolled(opts.DefaultIndex, opts.OnIndexChange),
		count: opts.Count,
		wrap:  opts.Wrap,
	}
	c.tracker = gestures.NewTracker(opts.Gestures, c.onSwipe)
	return c
}

// Index returns the current slide index.
func (c *CarouselController) Index() int {
	return c.index.Read()
}

// SetCount updates the slide count, clamping the index into range.
func (c *CarouselController) SetCount(count int) {
	c.count = count
	if count > 0 && c.index.Read() >= count {
		c.index.Write(count - 1)
	}
}

// Next advances one slide, wrapping or sticking at the end per the wrap
// policy.
func (c *CarouselController) Next() {
	c.step(+1)
}

// Previous returns one slide.
func (c *CarouselController) Previous() {
	c.step(-1)
}

func (c *CarouselController) step(delta int) {
	if c.count == 0 {
		return
	}
	next := c.index.Read() + delta
	if c.wrap {
		next = (next + c.count) % c.count
	} else if next < 0 || next >= c.count {
		return
	}
	c.index.Write(next)
}

// OnTouchStart forwards a touch start on the carousel surface.
func (c *CarouselController) OnTouchStart(point gestures.TouchPoint) {
	c.tracker.OnTouchStart(point)
}

// OnTouchMove forwards a touch move on the carousel surface.
func (c *CarouselController) OnTouchMove(point gestures.TouchPoint) {
	c.tracker.OnTouchMove(point)
}

// OnTouchEnd forwards a touch release on the carousel surface.
func (c *CarouselController) OnTouchEnd(point gestures.TouchPoint) {
	c.tracker.OnTouchEnd(point)
}

// OnTouchCancel forwards an OS-level touch cancellation.
func (c *CarouselController) OnTouchCancel() {
	c.tracker.OnTouchCancel()
}

// onSwipe maps horizontal swipes to slide steps. Content follows the
// finger: a leftward swipe pulls the next slide in from the right.
func (c *CarouselController) onSwipe(s gestures.Swipe) {
	switch s.Direction {
	case gestures.DirectionLeft:
		c.Next()
	case gestures.DirectionRight:
		c.Previous()
	}
}
