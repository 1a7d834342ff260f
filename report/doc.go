// Package report turns clustering results into human- and machine-readable
// artifacts: a JSON run summary, a plain-text report and a namenode-style
// memory estimate.
//
// What:
//
//   - Summarize — folds a clustering result into a RunSummary value with a
//     unique run ID, per-group breakdowns and a memory estimate.
//   - Writer — persists a RunSummary as summary.json and report.txt under
//     a target directory.
//   - MemoryModel — estimates metadata memory before and after merging at
//     a fixed cost per tracked entry (150 bytes by default, the classic
//     per-object namenode figure).
//
// The JSON artifact is the stable machine interface; the text report is a
// convenience view of the same numbers and carries no extra data.
package report
