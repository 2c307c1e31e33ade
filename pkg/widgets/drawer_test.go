package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/gestures"
	atest "github.com/go-aria/aria/pkg/testing"
)

type drawerApp struct {
	doc    *atest.Document
	router *Router
	panel  *atest.Node
}

func newDrawerApp(t *testing.T) *drawerApp {
	t.Helper()
	root := atest.NewNode("root")
	doc := atest.NewDocument(root)
	panel := atest.NewNode("drawer")
	panel.AddChild(atest.NewFocusable("close-button"))
	root.AddChild(panel)
	return &drawerApp{doc: doc, router: NewRouter(doc), panel: panel}
}

// swipeDrawer drives the drawer's touch forwarders with an interpolated
// straight-line gesture.
func swipeDrawer(d *DrawerController, dx, dy float64, duration time.Duration) {
	start := time.Unix(0, 0)
	from := gestures.TouchPoint{X: 200, Y: 200, Time: start}
	d.OnTouchStart(from)
	for i := 1; i <= 4; i++ {
		frac := float64(i) / 5
		d.OnTouchMove(gestures.TouchPoint{
			X:    from.X + dx*frac,
			Y:    from.Y + dy*frac,
			Time: start.Add(time.Duration(float64(duration) * frac)),
		})
	}
	d.OnTouchEnd(gestures.TouchPoint{X: from.X + dx, Y: from.Y + dy, Time: start.Add(duration)})
}

func TestDrawerSwipeTowardEdgeCloses(t *testing.T) {
	app := newDrawerApp(t)
	drawer := NewDrawerController(app.router, app.panel, DrawerOptions{Edge: EdgeLeft})

	drawer.Open()
	require.True(t, drawer.IsOpen())

	swipeDrawer(drawer, -80, 0, 150*time.Millisecond)

	assert.False(t, drawer.IsOpen(), "swipe toward the anchored edge dismisses")
}

func TestDrawerSwipeAwayFromEdgeIgnored(t *testing.T) {
	app := newDrawerApp(t)
	drawer := NewDrawerController(app.router, app.panel, DrawerOptions{Edge: EdgeLeft})

	drawer.Open()
	swipeDrawer(drawer, 80, 0, 150*time.Millisecond)

	assert.True(t, drawer.IsOpen())
}

func TestBottomSheetSwipeDownCloses(t *testing.T) {
	app := newDrawerApp(t)
	sheet := NewDrawerController(app.router, app.panel, DrawerOptions{Edge: EdgeBottom})

	sheet.Open()
	swipeDrawer(sheet, 0, 90, 150*time.Millisecond)

	assert.False(t, sheet.IsOpen())
}

func TestDrawerSlowDragIgnored(t *testing.T) {
	app := newDrawerApp(t)
	drawer := NewDrawerController(app.router, app.panel, DrawerOptions{Edge: EdgeLeft})

	drawer.Open()
	swipeDrawer(drawer, -80, 0, 800*time.Millisecond)

	assert.True(t, drawer.IsOpen(), "a drag past the duration cap is not a swipe")
}

func TestDrawerEscapeCloses(t *testing.T) {
	app := newDrawerApp(t)
	drawer := NewDrawerController(app.router, app.panel, DrawerOptions{})

	drawer.Open()
	app.router.HandleKey(atest.KeyDown(core.KeyEscape))

	assert.False(t, drawer.IsOpen())
}

func TestDrawerOutsidePointerCloses(t *testing.T) {
	app := newDrawerApp(t)
	drawer := NewDrawerController(app.router, app.panel, DrawerOptions{})
	scrim := atest.NewNode("scrim")
	app.doc.Root().AddChild(scrim)

	drawer.Open()
	app.router.HandlePointerDown(atest.PointerDownOn(scrim))

	assert.False(t, drawer.IsOpen())
}

func TestDrawerTouchCancelDiscardsGesture(t *testing.T) {
	app := newDrawerApp(t)
	drawer := NewDrawerController(app.router, app.panel, DrawerOptions{Edge: EdgeLeft})

	drawer.Open()
	start := time.Unix(0, 0)
	drawer.OnTouchStart(gestures.TouchPoint{X: 200, Y: 200, Time: start})
	drawer.OnTouchMove(gestures.TouchPoint{X: 160, Y: 200, Time: start.Add(50 * time.Millisecond)})
	drawer.OnTouchCancel()
	drawer.OnTouchEnd(gestures.TouchPoint{X: 120, Y: 200, Time: start.Add(100 * time.Millisecond)})

	assert.True(t, drawer.IsOpen(), "a cancelled gesture never dismisses")
}
