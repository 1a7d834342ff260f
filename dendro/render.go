package dendro

import (
	"fmt"
	"io"
	"strings"
)

// maxLeafItemsShown caps how many item IDs a rendered leaf lists before
// eliding the rest.
const maxLeafItemsShown = 3

// Render writes the forest as ASCII trees, one per root, depth-first with
// box-drawing connectors. Output is deterministic for a given forest.
//
// Example:
//
//	Tree 1 (Group 5):
//	└── Group 5 (100.0) [distance=30.0]
//	    ├── Group 2 (10.0) [f2]
//	    └── Group 4 (90.0) [distance=10.0]
//	        ├── Group 1 (40.0) [f1]
//	        └── Group 3 (50.0) [f3]
func (f *Forest) Render(w io.Writer) error {
	for i, root := range f.Roots {
		if _, err := fmt.Fprintf(w, "Tree %d (Group %d):\n", i+1, root.GroupID); err != nil {
			return err
		}
		if err := renderNode(w, root, "", true); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func renderNode(w io.Writer, n *Node, prefix string, isLast bool) error {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	if n.IsLeaf() {
		label := leafLabel(n)
		if _, err := fmt.Fprintf(w, "%s%sGroup %d (%.1f) [%s]\n", prefix, connector, n.GroupID, n.Weight, label); err != nil {
			return err
		}

		return nil
	}

	if _, err := fmt.Fprintf(w, "%s%sGroup %d (%.1f) [distance=%.1f]\n", prefix, connector, n.GroupID, n.Weight, n.MergeDistance); err != nil {
		return err
	}

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	if n.Left != nil {
		if err := renderNode(w, n.Left, childPrefix, false); err != nil {
			return err
		}
	}
	if n.Right != nil {
		if err := renderNode(w, n.Right, childPrefix, true); err != nil {
			return err
		}
	}

	return nil
}

func leafLabel(n *Node) string {
	shown := len(n.Items)
	if shown > maxLeafItemsShown {
		shown = maxLeafItemsShown
	}
	ids := make([]string, 0, shown)
	for _, it := range n.Items[:shown] {
		ids = append(ids, it.ID)
	}
	label := strings.Join(ids, ", ")
	if rest := len(n.Items) - shown; rest > 0 {
		label += fmt.Sprintf("... (+%d)", rest)
	}

	return label
}
