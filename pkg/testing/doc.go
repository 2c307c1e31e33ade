// Package testing provides a host-framework double for exercising the
// interaction primitives without a real rendering tree.
//
// [Node] and [Document] implement the core contracts over a plain in-memory
// tree with observable focus and tab-index state. Event constructors and the
// [TouchSequence] driver synthesize the input records a real host would
// deliver, in the same order it would deliver them.
//
// Import it under a distinct name from package tests:
//
//	atest "github.com/go-aria/aria/pkg/testing"
package testing
