// Package core defines the contracts between the interaction primitives and
// the host rendering framework.
//
// The primitives never reach into widget markup. They see the host through
// two narrow surfaces: [NodeRef], an opaque handle to a renderable element,
// and [Document], the owner of keyboard focus. Input arrives as plain data
// records ([KeyEvent], [PointerEvent]) delivered synchronously on the host's
// event loop; handlers run to completion before the next event is processed.
package core
