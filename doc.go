// Package agglo groups many small weighted items into few capacity-bounded
// bins using hierarchical agglomerative clustering with single-linkage
// distance and a hard aggregate-weight ceiling per bin.
//
// 🚀 What is agglo?
//
//	A library (plus a small batch CLI) born from the HDFS "small files
//	problem": thousands of tiny files each cost a fixed slice of NameNode
//	memory, so merging them into fewer containers shrinks the metadata
//	footprint. The mechanism is domain-agnostic — any set of weighted
//	items can be packed the same way:
//	  • cluster/  — the engine: distance index, greedy merge loop, merge log
//	  • dendro/   — dendrogram (merge-history forest) construction & rendering
//	  • itemgen/  — deterministic synthetic item generation for experiments
//	  • blob/     — physical concatenation of group members + offset index
//	  • report/   — JSON/text metadata output and memory-reduction accounting
//
// ✨ Why choose agglo?
//
//   - Deterministic — same items, same ceiling, same result, every run
//   - Honest errors — sentinel errors, errors.Is-friendly, fail fast at the boundary
//   - Pure Go core — the engine has no I/O; sinks and sources are separate packages
//   - Introspectable — complete ordered merge log, replayable into a full dendrogram
//
// Quick start:
//
//	items, _ := itemgen.Scenario("mixed")
//	res, err := cluster.Cluster(items, 128.0)
//	if err != nil { ... }
//	for _, g := range res.Groups {
//	  fmt.Printf("group %d: %.2f MB, %d items\n", g.ID, g.Weight, len(g.Items))
//	}
//
// Or from the command line:
//
//	agglo run --capacity 128 --scenario mixed --out output --tree
//
// Dive into each package's doc.go for contracts, complexity and error sets.
package agglo
