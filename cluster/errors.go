package cluster

import "errors"

// Sentinel errors for the cluster package. Callers branch with errors.Is;
// boundary wrapping adds the offending element via fmt.Errorf("...: %w", ...).
var (
	// ErrNonPositiveWeight indicates an item weight ≤ 0.
	ErrNonPositiveWeight = errors.New("cluster: item weight must be positive")
	// ErrWeightNaNInf indicates an item weight that is NaN or ±Inf.
	ErrWeightNaNInf = errors.New("cluster: item weight must be finite")
	// ErrNonPositiveCapacity indicates a capacity ceiling ≤ 0 or non-finite.
	ErrNonPositiveCapacity = errors.New("cluster: capacity ceiling must be a positive finite number")
	// ErrMergeIndex indicates a merge index outside the live-group range.
	// Reaching it through the public Cluster entry point is an engine bug.
	ErrMergeIndex = errors.New("cluster: merge index out of range")
	// ErrSelfMerge indicates a merge of a group with itself.
	ErrSelfMerge = errors.New("cluster: cannot merge a group with itself")
)
