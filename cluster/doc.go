// Package cluster implements capacity-bounded hierarchical agglomerative
// clustering with single-linkage distance over one-dimensional item weights.
//
// What:
//
//   - Item: an immutable weighted unit (identifier + positive weight).
//   - Group: an aggregate of items with a cached total weight and a unique,
//     monotonically increasing identifier.
//   - DistanceIndex: the symmetric pairwise distance table over live groups,
//     maintained incrementally across merges (drop-two-add-one with a min
//     fold — the single-linkage rule).
//   - Engine / Cluster: the greedy merge loop. Each iteration scans all live
//     pairs ascending by distance and merges the first pair whose combined
//     weight fits under the capacity ceiling, then rescans. The loop stops
//     when no pair fits or a single group remains.
//
// Why:
//
//   - Storage metadata reduction: pack many small files into few containers
//     no larger than a block (e.g. 128 MB) while merging the closest-sized
//     files first.
//   - Any bin-grouping task where "similar weight" is the affinity signal
//     and bins have a hard aggregate ceiling.
//
// Determinism:
//
//	For a fixed input sequence and ceiling, repeated runs produce identical
//	group membership, identical group IDs and an identical merge log. Ties
//	on distance resolve in row-major (i, j) enumeration order. The group-ID
//	counter is owned by the run, never process-global.
//
// Complexity:
//
//   - NewDistanceIndex: O(n²) time and space.
//   - SortedPairs: O(n² log n) per call.
//   - Merge: O(n²) table carry-over, O(n) min folds.
//   - Full run: up to O(n) merges ⇒ O(n³ log n) worst case. Intended for
//     n in the low thousands.
//
// Errors:
//
//   - ErrNonPositiveWeight: item weight ≤ 0.
//   - ErrWeightNaNInf: item weight is NaN or ±Inf.
//   - ErrNonPositiveCapacity: capacity ceiling ≤ 0 or non-finite.
//   - ErrMergeIndex: DistanceIndex.Merge index out of range.
//   - ErrSelfMerge: DistanceIndex.Merge called with i == j.
//
// All validation happens at the boundary; on error no group is created and
// no table is built. The engine itself never panics on user input.
package cluster
