// Package dendro builds and renders dendrograms (merge-history forests)
// from clustering results produced by package cluster.
//
// What:
//
//   - Node: one dendrogram node — a group ID, the items reachable from it,
//     optional left/right children, the single-linkage distance at merge
//     time (0 for leaves) and the aggregate weight.
//   - Forest: one root per final group. Unrelated groups never merge into
//     each other's history, so the result is a forest, not a single tree.
//   - BuildForest: the flat view — one leaf per FINAL group, no internal
//     structure. This is the reference display shape.
//   - BuildHistory: the faithful view — replays the ordered merge log over
//     the seed items, retaining every subtree, so each root is a full
//     binary provenance tree down to the original items.
//
// Why:
//
//   - Introspection and visualization of how groups formed, at what
//     distances, and in what order.
//   - Post-hoc analysis: tree height, leaf listings, merge statistics.
//
// Rendering:
//
//	Forest.Render writes an ASCII tree per root using box-drawing
//	connectors, depth-first, deterministic for a given forest.
//
// Complexity:
//
//   - BuildForest: O(m) over m final groups.
//   - BuildHistory: O(n·k) worst case over n items and k merges; each
//     merge concatenates its parents' item lists into the child node.
//   - Render / Height / LeafItemIDs: O(nodes) per tree.
//
// Errors:
//
//   - ErrUnknownGroup: a merge record references a group ID that is neither
//     a seed nor a previously recorded child.
//
// Building before any merge occurred is not an error: the forest is simply
// all singleton leaves.
package dendro
