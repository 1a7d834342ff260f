package cluster

import (
	"fmt"
	"math"
)

// Phase names the engine's lifecycle stage. Transitions only move forward:
// Initialized → Seeding → Agglomerating → Terminated.
type Phase int

const (
	// PhaseInitialized: engine constructed, no run started.
	PhaseInitialized Phase = iota
	// PhaseSeeding: inputs validated, one group being created per item.
	PhaseSeeding
	// PhaseAgglomerating: greedy merge loop in progress.
	PhaseAgglomerating
	// PhaseTerminated: run finished; Result is final.
	PhaseTerminated
)

// String implements fmt.Stringer for log/telemetry output.
func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseSeeding:
		return "seeding"
	case PhaseAgglomerating:
		return "agglomerating"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// MergeRecord is one accepted merge: the two retired parent group IDs
// (lower live index first), the child group ID, and the single-linkage
// distance between the parents at merge time.
type MergeRecord struct {
	ParentA  int
	ParentB  int
	Child    int
	Distance float64
}

// Result is the engine's output: the final live groups in index order and
// the complete ordered merge log. Together with the input items these are
// sufficient to reconstruct the full merge provenance (see package dendro).
type Result struct {
	Groups []Group
	Merges []MergeRecord
}

// Stats summarizes a Result.
type Stats struct {
	Groups    int
	Items     int
	Merges    int
	MinWeight float64
	MaxWeight float64
	AvgWeight float64
}

// Stats computes summary statistics over the final groups.
// A nil or empty Result yields the zero Stats.
func (r *Result) Stats() Stats {
	if r == nil || len(r.Groups) == 0 {
		return Stats{}
	}

	s := Stats{
		Groups:    len(r.Groups),
		Merges:    len(r.Merges),
		MinWeight: math.Inf(1),
	}
	var total float64
	for _, g := range r.Groups {
		s.Items += len(g.Items)
		total += g.Weight
		s.MinWeight = math.Min(s.MinWeight, g.Weight)
		s.MaxWeight = math.Max(s.MaxWeight, g.Weight)
	}
	s.AvgWeight = total / float64(len(r.Groups))

	return s
}

// Engine runs greedy constrained single-linkage agglomeration. Engines are
// single-threaded and own all run state (including the group-ID counter);
// two engines never share anything, so independent runs are reproducible
// and safe to execute in parallel.
type Engine struct {
	opts  options
	phase Phase
}

// NewEngine constructs an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...), phase: PhaseInitialized}
}

// Phase returns the engine's current lifecycle stage.
func (e *Engine) Phase() Phase { return e.phase }

// Run clusters items under the capacity ceiling.
//
// Algorithm:
//  1. Validate capacity and every item; fail fast with no state mutated.
//  2. Seed one group per item, IDs 1..n in input order.
//  3. Build the DistanceIndex over the seeds.
//  4. While more than one group lives: fetch all pairs ascending by
//     distance; merge the FIRST pair whose combined weight fits under the
//     ceiling, record it, and restart the scan against the updated index.
//     If no pair fits, stop — feasibility never improves, since a pair's
//     combined weight can only grow.
//  5. Return the live groups and the merge log.
//
// Empty input is not an error: the result is simply empty.
func (e *Engine) Run(items []Item, capacity float64) (*Result, error) {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return nil, fmt.Errorf("capacity %v: %w", capacity, ErrNonPositiveCapacity)
	}
	for i, it := range items {
		if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) {
			return nil, fmt.Errorf("item %d (%q): %w", i, it.ID, ErrWeightNaNInf)
		}
		if it.Weight <= 0 {
			return nil, fmt.Errorf("item %d (%q, weight %v): %w", i, it.ID, it.Weight, ErrNonPositiveWeight)
		}
	}
	if len(items) == 0 {
		e.phase = PhaseTerminated

		return &Result{}, nil
	}

	e.phase = PhaseSeeding
	seeds := make([]Group, len(items))
	for i, it := range items {
		seeds[i] = newGroup(i+1, []Item{it})
	}

	idx := NewDistanceIndex(seeds)
	e.opts.log.Debug().
		Int("items", len(items)).
		Float64("capacity", capacity).
		Msg("seeded groups")

	e.phase = PhaseAgglomerating
	var merges []MergeRecord
	for idx.Len() > 1 {
		merged := false
		for _, p := range idx.SortedPairs() {
			a, b := idx.groups[p.I], idx.groups[p.J]
			if !a.CanMergeWith(b, capacity) {
				continue
			}

			child, err := idx.Merge(p.I, p.J)
			if err != nil {
				// Unreachable through this loop; surfaced rather than hidden.
				return nil, fmt.Errorf("engine merge (%d,%d): %w", p.I, p.J, err)
			}
			merges = append(merges, MergeRecord{
				ParentA:  a.ID,
				ParentB:  b.ID,
				Child:    child.ID,
				Distance: p.Distance,
			})
			e.opts.log.Debug().
				Int("parent_a", a.ID).
				Int("parent_b", b.ID).
				Int("child", child.ID).
				Float64("distance", p.Distance).
				Float64("weight", child.Weight).
				Int("live", idx.Len()).
				Msg("merged groups")
			merged = true

			break
		}
		if !merged {
			e.opts.log.Debug().Int("live", idx.Len()).Msg("no feasible pair left")

			break
		}
	}

	e.phase = PhaseTerminated

	return &Result{Groups: idx.Groups(), Merges: merges}, nil
}

// Cluster is the one-shot entry point: a fresh Engine per call, so group IDs
// always start from 1 and runs never share state.
func Cluster(items []Item, capacity float64, opts ...Option) (*Result, error) {
	return NewEngine(opts...).Run(items, capacity)
}
