package widgets

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/roving"
	"github.com/go-aria/aria/pkg/state"
)

// TabsOptions configures a TabsController.
type TabsOptions struct {
	// Selected supplies a controlled selection. When non-nil the caller
	// owns the selected index and pushes decided values back with SetSelected.
	Selected *int

	// DefaultSelected is the initial selection in uncontrolled mode.
	DefaultSelected int

	// OnSelectedChange observes every attempted selection change.
	OnSelectedChange func(int)

	// Orientation of the tab list. Horizontal by default.
	Orientation roving.Orientation

	// Wrap controls whether arrow navigation wraps past the ends.
	Wrap bool
}

// TabsController manages a tab bar with selection-follows-focus semantics:
// arrow keys move the roving focus, and every focus move is also an
// attempted selection change. Radio groups use the identical pattern.
type TabsController struct {
	nav      *roving.Navigator
	selected *state.Cell[int]
}

// NewTabsController creates a tabs controller over doc.
func NewTabsController(doc core.Document, opts TabsOptions) *TabsController {
	t := &TabsController{
		nav: roving.New(doc, opts.Orientation, opts.Wrap),
	}
	if opts.Selected != nil {
		t.selected = state.NewControlled(*opts.Selected, opts.OnSelectedChange)
	} else {
		t.selected = state.NewUncontrolled(opts.DefaultSelected, opts.OnSelectedChange)
	}
	return t
}

// SetTabs replaces the tab list and aligns the roving focus with the current
// selection.
func (t *TabsController) SetTabs(items []roving.Item) {
	t.nav.SetItems(items)
	t.nav.SetActiveIndex(t.selected.Read())
}

// SelectedIndex returns the current selection.
func (t *TabsController) SelectedIndex() int {
	return t.selected.Read()
}

// Select requests selection of index directly, for pointer activation.
func (t *TabsController) Select(index int) {
	t.nav.SetActiveIndex(index)
	t.selected.Write(t.nav.ActiveIndex())
}

// SetSelected is the prop channel for controlled tabs.
func (t *TabsController) SetSelected(index int) {
	t.selected.SetExternal(index)
	t.nav.SetActiveIndex(index)
}

// OnKey forwards a keydown to the tab list. A successful focus move becomes
// an attempted selection change.
func (t *TabsController) OnKey(event *core.KeyEvent) {
	if event.Consumed() {
		return
	}
	if index, moved := t.nav.OnKey(event.Key); moved {
		event.Consume()
		t.selected.Write(index)
	}
}
