package cluster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/agglo/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCluster_ThreeItemTrace replays the full worked trace:
// f1=40, f2=10, f3=50 under ceiling 100.
// Closest pair is (f1,f3) at distance 10 with combined weight 90 ≤ 100, so
// they merge first; the rescan then finds the merged group at distance 30
// from f2 with combined weight exactly 100, so everything ends up in one
// group of weight 100.
func TestCluster_ThreeItemTrace(t *testing.T) {
	items := mustItems(t, [][2]any{{"f1", 40.0}, {"f2", 10.0}, {"f3", 50.0}})

	res, err := cluster.Cluster(items, 100)
	require.NoError(t, err)

	require.Len(t, res.Groups, 1)
	g := res.Groups[0]
	assert.Equal(t, 5, g.ID)
	assert.Equal(t, 100.0, g.Weight)
	assert.Equal(t, []string{"f2", "f1", "f3"}, g.ItemIDs(),
		"second merge concatenates the lower-index parent (f2) first")

	require.Len(t, res.Merges, 2)
	assert.Equal(t, cluster.MergeRecord{ParentA: 1, ParentB: 3, Child: 4, Distance: 10}, res.Merges[0])
	assert.Equal(t, cluster.MergeRecord{ParentA: 2, ParentB: 4, Child: 5, Distance: 30}, res.Merges[1])
}

// TestCluster_CapacityBlocksEverything: two items whose sum exceeds the
// ceiling never merge; the seeds come back untouched with an empty log.
func TestCluster_CapacityBlocksEverything(t *testing.T) {
	items := mustItems(t, [][2]any{{"a", 60.0}, {"b", 60.0}})

	res, err := cluster.Cluster(items, 100)
	require.NoError(t, err)

	require.Len(t, res.Groups, 2)
	assert.Empty(t, res.Merges)
	assert.Equal(t, 1, res.Groups[0].ID)
	assert.Equal(t, 2, res.Groups[1].ID)
	assert.Equal(t, []string{"a"}, res.Groups[0].ItemIDs())
	assert.Equal(t, []string{"b"}, res.Groups[1].ItemIDs())
}

// TestCluster_EmptyInput: not an error; empty result.
func TestCluster_EmptyInput(t *testing.T) {
	res, err := cluster.Cluster(nil, 128)
	require.NoError(t, err)
	assert.Empty(t, res.Groups)
	assert.Empty(t, res.Merges)
}

// TestCluster_BadCapacity rejects non-positive and non-finite ceilings
// before any group is created.
func TestCluster_BadCapacity(t *testing.T) {
	items := mustItems(t, [][2]any{{"a", 1.0}})

	for _, capacity := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := cluster.Cluster(items, capacity)
		assert.ErrorIs(t, err, cluster.ErrNonPositiveCapacity, "capacity %v", capacity)
	}
}

// TestCluster_BadItem rejects the whole batch when any element carries an
// invalid weight, and the error names the offending element.
func TestCluster_BadItem(t *testing.T) {
	items := []cluster.Item{
		{ID: "ok", Weight: 2},
		{ID: "broken", Weight: -1},
	}

	_, err := cluster.Cluster(items, 100)
	require.ErrorIs(t, err, cluster.ErrNonPositiveWeight)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "item 1")
}

// TestCluster_Determinism: identical inputs produce identical groups, IDs
// and merge-log ordering on every invocation.
func TestCluster_Determinism(t *testing.T) {
	items := mustItems(t, [][2]any{
		{"a", 12.0}, {"b", 7.0}, {"c", 31.0}, {"d", 7.0}, {"e", 18.5}, {"f", 44.0},
	})

	first, err := cluster.Cluster(items, 60)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, rerr := cluster.Cluster(items, 60)
		require.NoError(t, rerr)
		assert.Equal(t, first, again, "run %d diverged", i)
	}
}

// TestCluster_Conservation: the multiset of item IDs across final groups is
// exactly the input multiset — nothing lost, duplicated or invented.
func TestCluster_Conservation(t *testing.T) {
	items := mustItems(t, [][2]any{
		{"a", 3.0}, {"b", 9.0}, {"dup", 5.0}, {"dup", 5.0}, {"c", 22.0},
	})

	res, err := cluster.Cluster(items, 25)
	require.NoError(t, err)

	want := map[string]int{}
	for _, it := range items {
		want[it.ID]++
	}
	got := map[string]int{}
	for _, g := range res.Groups {
		for _, id := range g.ItemIDs() {
			got[id]++
		}
	}
	assert.Equal(t, want, got)
}

// TestCluster_CapacityInvariant: no final group ever exceeds the ceiling.
func TestCluster_CapacityInvariant(t *testing.T) {
	const capacity = 50.0
	items := mustItems(t, [][2]any{
		{"a", 10.0}, {"b", 11.0}, {"c", 12.0}, {"d", 13.0},
		{"e", 14.0}, {"f", 15.0}, {"g", 16.0}, {"h", 49.0},
	})

	res, err := cluster.Cluster(items, capacity)
	require.NoError(t, err)
	for _, g := range res.Groups {
		assert.LessOrEqual(t, g.Weight, capacity, "group %d", g.ID)
	}
}

// TestCluster_MonotonicShrink: seeds plus merges account for every group
// ever created: len(finalGroups) + len(mergeLog) == len(items).
func TestCluster_MonotonicShrink(t *testing.T) {
	items := mustItems(t, [][2]any{
		{"a", 5.0}, {"b", 6.0}, {"c", 7.0}, {"d", 30.0}, {"e", 31.0},
	})

	res, err := cluster.Cluster(items, 40)
	require.NoError(t, err)
	assert.Equal(t, len(items), len(res.Groups)+len(res.Merges))
}

// TestCluster_SingleItem: one seed, no pairs, immediate termination.
func TestCluster_SingleItem(t *testing.T) {
	items := mustItems(t, [][2]any{{"only", 3.0}})

	res, err := cluster.Cluster(items, 10)
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Empty(t, res.Merges)
	assert.Equal(t, 1, res.Groups[0].ID)
}

// TestEngine_Phases tracks the forward-only lifecycle.
func TestEngine_Phases(t *testing.T) {
	e := cluster.NewEngine()
	assert.Equal(t, cluster.PhaseInitialized, e.Phase())

	items := mustItems(t, [][2]any{{"a", 1.0}, {"b", 2.0}})
	_, err := e.Run(items, 10)
	require.NoError(t, err)
	assert.Equal(t, cluster.PhaseTerminated, e.Phase())
	assert.Equal(t, "terminated", e.Phase().String())
}

// TestResult_Stats verifies the summary math on a small fixed run.
func TestResult_Stats(t *testing.T) {
	items := mustItems(t, [][2]any{{"a", 60.0}, {"b", 60.0}, {"c", 10.0}})

	// d(a,b)=0 but 120 > 100 is rejected; both c-pairs sit at 50 and the
	// (a,c) pair enumerates first, so c joins a into a group of 70.
	res, err := cluster.Cluster(items, 100)
	require.NoError(t, err)

	s := res.Stats()
	assert.Equal(t, 2, s.Groups)
	assert.Equal(t, 3, s.Items)
	assert.Equal(t, 1, s.Merges)
	assert.Equal(t, 60.0, s.MinWeight)
	assert.Equal(t, 70.0, s.MaxWeight)
	assert.Equal(t, 65.0, s.AvgWeight)

	empty := &cluster.Result{}
	assert.Equal(t, cluster.Stats{}, empty.Stats())
}
