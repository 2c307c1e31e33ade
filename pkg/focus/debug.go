package focus

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/go-aria/aria/pkg/core"
)

// DumpScopes renders the active ring stack as a tree, outermost first.
// Intended for debugging stuck-focus reports; returns a minimal summary
// when core.DebugMode is off.
func (m *Manager) DumpScopes() string {
	if !core.DebugMode {
		return fmt.Sprintf("focus rings: %d active", len(m.rings))
	}

	tree := treeprint.NewWithRoot("focus rings (outermost first)")
	branch := tree
	for i, ring := range m.rings {
		label := fmt.Sprintf("[%d] container=%s", i, nodeLabel(ring.container))
		if ring.previouslyFocused != nil {
			label += fmt.Sprintf(" restore=%s", nodeLabel(ring.previouslyFocused))
		}
		if i == len(m.rings)-1 {
			label += " (trapping)"
		}
		branch = branch.AddBranch(label)
	}
	if focused := m.doc.FocusedNode(); focused != nil {
		tree.AddNode(fmt.Sprintf("focused=%s", nodeLabel(focused)))
	}
	return tree.String()
}

// nodeLabel prefers a Stringer on the handle and falls back to its type.
func nodeLabel(node core.NodeRef) string {
	if node == nil {
		return "<nil>"
	}
	if s, ok := node.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", node)
}
