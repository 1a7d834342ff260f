package cluster

import (
	"math"
	"sort"
)

// Pair addresses one unordered pair of live groups by their current index
// in the DistanceIndex, always with I < J, plus the distance between them.
// Indices are positional and invalidated by the next Merge; group identity
// lives in Group.ID.
type Pair struct {
	I, J     int
	Distance float64
}

// DistanceIndex maintains the symmetric single-linkage distance table over
// the currently live groups. It is built once from the seed groups and then
// updated incrementally on every merge: surviving entries are carried over
// untouched, and only the row/column of the new group is (re)computed as the
// min fold of its two parents' rows.
//
// The index also owns the group-ID counter for merge children, initialized
// to one past the highest seed ID, so IDs stay unique and monotone across
// the run without any global state.
type DistanceIndex struct {
	groups []Group
	dist   [][]float64
	nextID int
}

// NewDistanceIndex computes the full pairwise table over the given groups:
// d(i,j) = |weight(i) − weight(j)|, d(i,i) = 0 (never consulted).
// O(n²) time and space.
func NewDistanceIndex(groups []Group) *DistanceIndex {
	n := len(groups)
	gs := make([]Group, n)
	copy(gs, groups)

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Abs(gs[i].Weight - gs[j].Weight)
			dist[i][j], dist[j][i] = d, d
		}
	}

	nextID := 1
	for _, g := range gs {
		if g.ID >= nextID {
			nextID = g.ID + 1
		}
	}

	return &DistanceIndex{groups: gs, dist: dist, nextID: nextID}
}

// Len returns the number of live groups.
func (di *DistanceIndex) Len() int { return len(di.groups) }

// Group returns the live group at index i.
func (di *DistanceIndex) Group(i int) (Group, error) {
	if i < 0 || i >= len(di.groups) {
		return Group{}, ErrMergeIndex
	}

	return di.groups[i], nil
}

// Groups returns a copy of the live group list in index order.
func (di *DistanceIndex) Groups() []Group {
	out := make([]Group, len(di.groups))
	copy(out, di.groups)

	return out
}

// Distance returns the current distance between live indices i and j.
func (di *DistanceIndex) Distance(i, j int) (float64, error) {
	n := len(di.groups)
	if i < 0 || j < 0 || i >= n || j >= n {
		return 0, ErrMergeIndex
	}

	return di.dist[i][j], nil
}

// SortedPairs returns every live unordered pair ascending by distance.
// Ties keep row-major (i, j) enumeration order (stable sort), which fixes
// the deterministic scan order of the merge loop. Capacity is deliberately
// NOT consulted here: "closest" and "mergeable" are orthogonal, and the
// engine owns the feasibility policy.
func (di *DistanceIndex) SortedPairs() []Pair {
	n := len(di.groups)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j, Distance: di.dist[i][j]})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Distance < pairs[b].Distance
	})

	return pairs
}

// Merge fuses the two distinct live groups at indices i and j into a new
// group holding the lower-index group's items followed by the higher-index
// group's items. Both parents leave the live set and the child is appended
// at the end, atomically: the table is never observable half-updated.
//
// Single-linkage update: for every surviving group k,
// d(child, k) = min(d(i, k), d(j, k)) as they stood before the merge.
// Entries between surviving groups are carried over unchanged.
//
// Returns the child group. Fails with ErrSelfMerge when i == j and with
// ErrMergeIndex when either index is out of range; both are programming
// errors when reached through the Engine.
func (di *DistanceIndex) Merge(i, j int) (Group, error) {
	if i == j {
		return Group{}, ErrSelfMerge
	}
	n := len(di.groups)
	if i < 0 || j < 0 || i >= n || j >= n {
		return Group{}, ErrMergeIndex
	}
	if i > j {
		i, j = j, i
	}

	items := make([]Item, 0, len(di.groups[i].Items)+len(di.groups[j].Items))
	items = append(items, di.groups[i].Items...)
	items = append(items, di.groups[j].Items...)
	child := newGroup(di.nextID, items)
	di.nextID++

	// Min-fold the parents' rows; indices are still in the old space.
	folded := make([]float64, n)
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		folded[k] = math.Min(di.dist[i][k], di.dist[j][k])
	}

	// Survivors keep their relative order; the child takes the last slot.
	survivors := make([]int, 0, n-2)
	for k := 0; k < n; k++ {
		if k != i && k != j {
			survivors = append(survivors, k)
		}
	}

	m := n - 1
	next := make([][]float64, m)
	for r := range next {
		next[r] = make([]float64, m)
	}
	for r, oldR := range survivors {
		for c, oldC := range survivors {
			next[r][c] = di.dist[oldR][oldC]
		}
	}
	last := m - 1
	for c, oldC := range survivors {
		next[last][c] = folded[oldC]
		next[c][last] = folded[oldC]
	}

	live := make([]Group, 0, m)
	for _, k := range survivors {
		live = append(live, di.groups[k])
	}
	live = append(live, child)

	di.groups, di.dist = live, next

	return child, nil
}
