// Package roving implements keyboard-driven index navigation over an ordered
// set of focusable items, following the roving-tabindex pattern: exactly one
// item in the set is Tab-reachable at any time, and arrow keys move which
// one. Menus, tab bars and radio groups all share this behavior.
package roving

import (
	"github.com/go-aria/aria/pkg/core"
)

// Orientation selects which arrow keys advance the active index.
type Orientation int

const (
	// Horizontal maps ArrowRight/ArrowLeft to next/previous.
	Horizontal Orientation = iota
	// Vertical maps ArrowDown/ArrowUp to next/previous.
	Vertical
)

// Item is one navigable entry. Disabled items remain in the sequence but are
// skipped transparently during navigation.
type Item struct {
	Node     core.NodeRef
	Disabled bool
}

// Navigator tracks the active index over an ordered item set and moves host
// focus on every successful move.
//
// A navigator is owned by the widget instance that created it and must only
// be used from the host's event loop. Navigation on an empty set is a no-op,
// never a fault.
type Navigator struct {
	doc         core.Document
	items       []Item
	active      int
	orientation Orientation
	wrap        bool
}

// New creates a navigator with no items.
func New(doc core.Document, orientation Orientation, wrap bool) *Navigator {
	return &Navigator{doc: doc, orientation: orientation, wrap: wrap}
}

// SetItems replaces the item set. The active index is clamped into range and
// tab indexes are reapplied so the set keeps exactly one Tab stop.
func (n *Navigator) SetItems(items []Item) {
	n.items = make([]Item, len(items))
	copy(n.items, items)
	n.clamp()
	n.applyTabIndexes()
}

// ActiveIndex returns the current active index. It is meaningful only when
// the item set is non-empty.
func (n *Navigator) ActiveIndex() int {
	return n.active
}

// SetActiveIndex moves the active index directly, clamping out-of-range
// values, and updates tab indexes. It does not move host focus; use it to
// seed the initial selection before the user starts navigating.
func (n *Navigator) SetActiveIndex(index int) {
	n.active = index
	n.clamp()
	n.applyTabIndexes()
}

// OnKey handles one navigation key. It returns the new active index and true
// when the key produced a move; unrecognized keys, empty sets, fully
// disabled sets, and moves that land where they started report false.
//
// Every successful move updates the active index, reapplies the roving tab
// indexes, and moves host focus to the new item.
func (n *Navigator) OnKey(key core.Key) (int, bool) {
	if len(n.items) == 0 {
		return 0, false
	}
	n.clamp()

	target := -1
	switch key {
	case n.nextKey():
		target = n.seek(n.active, +1)
	case n.previousKey():
		target = n.seek(n.active, -1)
	case core.KeyHome:
		target = n.firstEnabled()
	case core.KeyEnd:
		target = n.lastEnabled()
	default:
		return n.active, false
	}

	if target < 0 || target == n.active {
		return n.active, false
	}

	n.active = target
	n.applyTabIndexes()
	n.doc.RequestFocus(n.items[target].Node)
	return target, true
}

func (n *Navigator) nextKey() core.Key {
	if n.orientation == Vertical {
		return core.KeyArrowDown
	}
	return core.KeyArrowRight
}

func (n *Navigator) previousKey() core.Key {
	if n.orientation == Vertical {
		return core.KeyArrowUp
	}
	return core.KeyArrowLeft
}

// seek finds the next enabled index from start in the given direction,
// searching circularly at most once around the full set when wrapping, and
// stopping at the boundary otherwise. Returns -1 when no enabled item is
// reachable, which covers both "stay at the end" and fully disabled sets.
func (n *Navigator) seek(start, delta int) int {
	count := len(n.items)
	index := start
	for step := 0; step < count; step++ {
		index += delta
		if n.wrap {
			index = (index + count) % count
		} else if index < 0 || index >= count {
			return -1
		}
		if index == start {
			return -1
		}
		if !n.items[index].Disabled {
			return index
		}
	}
	return -1
}

func (n *Navigator) firstEnabled() int {
	for i := range n.items {
		if !n.items[i].Disabled {
			return i
		}
	}
	return -1
}

func (n *Navigator) lastEnabled() int {
	for i := len(n.items) - 1; i >= 0; i-- {
		if !n.items[i].Disabled {
			return i
		}
	}
	return -1
}

// clamp recovers the activeIndex invariant after external item-set mutation.
func (n *Navigator) clamp() {
	if n.active < 0 {
		n.active = 0
	}
	if len(n.items) > 0 && n.active >= len(n.items) {
		n.active = len(n.items) - 1
	}
}

// applyTabIndexes enforces the roving discipline: tabindex 0 on the active
// item, -1 everywhere else. Nodes without tab-index control are skipped.
func (n *Navigator) applyTabIndexes() {
	for i := range n.items {
		indexer, ok := n.items[i].Node.(core.TabIndexer)
		if !ok {
			continue
		}
		if i == n.active {
			indexer.SetTabIndex(0)
		} else {
			indexer.SetTabIndex(-1)
		}
	}
}
