package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/agglo/cluster"
)

// ExampleCluster demonstrates the full three-item trace: the closest pair
// (f1, f3) merges first at distance 10, then the rescan folds f2 in at
// distance 30 — the final group lands exactly on the ceiling.
func ExampleCluster() {
	items := []cluster.Item{
		{ID: "f1", Weight: 40},
		{ID: "f2", Weight: 10},
		{ID: "f3", Weight: 50},
	}

	res, _ := cluster.Cluster(items, 100)
	for _, g := range res.Groups {
		fmt.Printf("group %d: weight=%.0f items=%v\n", g.ID, g.Weight, g.ItemIDs())
	}
	for _, m := range res.Merges {
		fmt.Printf("merge: %d + %d -> %d (distance %.0f)\n", m.ParentA, m.ParentB, m.Child, m.Distance)
	}

	// Output:
	// group 5: weight=100 items=[f2 f1 f3]
	// merge: 1 + 3 -> 4 (distance 10)
	// merge: 2 + 4 -> 5 (distance 30)
}

// ExampleCluster_capacityBound shows the terminal condition where no pair
// fits under the ceiling: the seeds come back unchanged.
func ExampleCluster_capacityBound() {
	items := []cluster.Item{
		{ID: "a", Weight: 60},
		{ID: "b", Weight: 60},
	}

	res, _ := cluster.Cluster(items, 100)
	fmt.Println("groups:", len(res.Groups), "merges:", len(res.Merges))

	// Output:
	// groups: 2 merges: 0
}
