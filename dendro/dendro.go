package dendro

import (
	"fmt"

	"github.com/katalvlaran/agglo/cluster"
)

// Node is one dendrogram node. A node is a leaf iff both children are nil.
// Leaves built by BuildForest may hold several items (a final group that
// never split is displayed as one leaf); leaves built by BuildHistory hold
// exactly one item each.
type Node struct {
	// GroupID is the engine-assigned group identifier this node represents.
	GroupID int
	// Items are all items reachable from this node, in merge order.
	Items []cluster.Item
	// Left and Right are the merged parents; nil for leaves.
	Left, Right *Node
	// MergeDistance is the single-linkage distance at merge time; 0 for leaves.
	MergeDistance float64
	// Weight is the aggregate item weight under this node.
	Weight float64
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Height returns 1 for a leaf and 1 + max(child heights) otherwise.
func (n *Node) Height() int {
	if n.IsLeaf() {
		return 1
	}
	lh, rh := 0, 0
	if n.Left != nil {
		lh = n.Left.Height()
	}
	if n.Right != nil {
		rh = n.Right.Height()
	}
	if lh < rh {
		lh = rh
	}

	return 1 + lh
}

// LeafItemIDs returns the identifiers of every item under this node,
// depth-first left-to-right.
func (n *Node) LeafItemIDs() []string {
	if n.IsLeaf() {
		ids := make([]string, len(n.Items))
		for i, it := range n.Items {
			ids[i] = it.ID
		}

		return ids
	}
	var ids []string
	if n.Left != nil {
		ids = append(ids, n.Left.LeafItemIDs()...)
	}
	if n.Right != nil {
		ids = append(ids, n.Right.LeafItemIDs()...)
	}

	return ids
}

// Forest is a dendrogram: one root per final group, in the engine's final
// group order, plus the merge log it was annotated with (empty for
// BuildForest).
type Forest struct {
	Roots  []*Node
	Merges []cluster.MergeRecord
}

// Stats summarizes a Forest.
type Stats struct {
	Trees     int
	Merges    int
	MaxHeight int
	Leaves    int
}

// Stats computes tree count, recorded merges, maximum tree height and total
// leaf count.
func (f *Forest) Stats() Stats {
	s := Stats{Trees: len(f.Roots), Merges: len(f.Merges)}
	for _, r := range f.Roots {
		if h := r.Height(); h > s.MaxHeight {
			s.MaxHeight = h
		}
		s.Leaves += countLeaves(r)
	}

	return s
}

func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	if n.Left != nil {
		total += countLeaves(n.Left)
	}
	if n.Right != nil {
		total += countLeaves(n.Right)
	}

	return total
}

// BuildForest constructs the flat reference view: one leaf per final group,
// MergeDistance 0, no internal structure. Building from an empty group list
// yields an empty forest.
func BuildForest(groups []cluster.Group) *Forest {
	roots := make([]*Node, 0, len(groups))
	for _, g := range groups {
		roots = append(roots, &Node{
			GroupID: g.ID,
			Items:   g.Items,
			Weight:  g.Weight,
		})
	}

	return &Forest{Roots: roots}
}

// BuildHistory reconstructs the full binary provenance forest by replaying
// the ordered merge log over the seed items. Seeds take group IDs 1..n in
// input order — the same assignment the engine uses — so a Result's Merges
// replayed over the Result's input items reproduce the exact run history,
// with root order matching the engine's final group order.
//
// Returns ErrUnknownGroup if a record references an ID that is neither a
// seed nor an earlier child (or one already consumed by a previous merge).
func BuildHistory(items []cluster.Item, merges []cluster.MergeRecord) (*Forest, error) {
	// Live nodes in engine order: survivors keep relative order, children
	// append at the end.
	live := make([]*Node, 0, len(items))
	byID := make(map[int]*Node, len(items)+len(merges))
	for i, it := range items {
		leaf := &Node{
			GroupID: i + 1,
			Items:   []cluster.Item{it},
			Weight:  it.Weight,
		}
		live = append(live, leaf)
		byID[leaf.GroupID] = leaf
	}

	for _, m := range merges {
		left, ok := byID[m.ParentA]
		if !ok {
			return nil, fmt.Errorf("parent %d in merge to %d: %w", m.ParentA, m.Child, ErrUnknownGroup)
		}
		right, ok := byID[m.ParentB]
		if !ok {
			return nil, fmt.Errorf("parent %d in merge to %d: %w", m.ParentB, m.Child, ErrUnknownGroup)
		}

		items := make([]cluster.Item, 0, len(left.Items)+len(right.Items))
		items = append(items, left.Items...)
		items = append(items, right.Items...)
		child := &Node{
			GroupID:       m.Child,
			Items:         items,
			Left:          left,
			Right:         right,
			MergeDistance: m.Distance,
			Weight:        left.Weight + right.Weight,
		}

		// Retire both parents from the live set, preserving order.
		next := live[:0]
		for _, n := range live {
			if n != left && n != right {
				next = append(next, n)
			}
		}
		live = append(next, child)
		delete(byID, m.ParentA)
		delete(byID, m.ParentB)
		byID[m.Child] = child
	}

	roots := make([]*Node, len(live))
	copy(roots, live)

	return &Forest{Roots: roots, Merges: merges}, nil
}
