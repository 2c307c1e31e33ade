// Package widgets provides interaction controllers that compose the
// primitives into the lifecycles the widget catalog needs: open/dismiss for
// overlays, selection for composite controls, and position for swipeable
// surfaces.
//
// Controllers own their primitives exclusively and share no polymorphic
// behavior with each other; a widget picks the controller matching its
// pattern and forwards host events to it. Controllers never touch
// widget-specific markup.
package widgets
