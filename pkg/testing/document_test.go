package testing

import "testing"

func TestFocusablesWithinDocumentOrder(t *testing.T) {
	root := NewNode("root")
	doc := NewDocument(root)

	header := NewNode("header")
	link := NewFocusable("link")
	header.AddChild(link)
	button := NewFocusable("button")
	root.AddChild(header)
	root.AddChild(button)

	got := doc.FocusablesWithin(root)
	if len(got) != 2 {
		t.Fatalf("expected 2 focusables, got %d", len(got))
	}
	if got[0] != link || got[1] != button {
		t.Errorf("expected pre-order [link button], got %v", got)
	}
}

func TestFocusablesWithinExcludesContainer(t *testing.T) {
	root := NewNode("root")
	doc := NewDocument(root)

	panel := NewFocusable("panel")
	panel.AddChild(NewFocusable("field"))
	root.AddChild(panel)

	got := doc.FocusablesWithin(panel)
	if len(got) != 1 {
		t.Fatalf("expected only the descendant, got %d nodes", len(got))
	}
}

func TestDetachedNodeHasNoFocusables(t *testing.T) {
	root := NewNode("root")
	doc := NewDocument(root)

	panel := NewNode("panel")
	panel.AddChild(NewFocusable("field"))
	root.AddChild(panel)
	panel.Detach()

	if got := doc.FocusablesWithin(panel); got != nil {
		t.Errorf("expected nil for detached container, got %v", got)
	}
}

func TestContainsIsTransitive(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewFocusable("leaf")
	mid.AddChild(leaf)
	root.AddChild(mid)

	if !root.Contains(leaf) {
		t.Error("root should contain a grandchild")
	}
	if !root.Contains(root) {
		t.Error("a node contains itself")
	}
	if mid.Contains(root) {
		t.Error("containment must not run upward")
	}
}
