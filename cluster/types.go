// Package cluster core types: Item, Group and the functional options
// consumed by the Engine.
package cluster

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Item is an atomic weighted input unit. Items are immutable: construct via
// NewItem and treat the fields as read-only afterwards.
type Item struct {
	// ID identifies the item within a run. Duplicates are permitted; each
	// occurrence seeds its own group.
	ID string
	// Weight is the item's positive, finite scalar weight (e.g. size in MB).
	Weight float64
}

// NewItem validates and constructs an Item.
// Weight must be finite and strictly positive.
func NewItem(id string, weight float64) (Item, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Item{}, fmt.Errorf("item %q: %w", id, ErrWeightNaNInf)
	}
	if weight <= 0 {
		return Item{}, fmt.Errorf("item %q (weight %v): %w", id, weight, ErrNonPositiveWeight)
	}

	return Item{ID: id, Weight: weight}, nil
}

// Group is a set of items treated as one unit after zero or more merges.
// Groups are created by the engine (one per seed item, then one per accepted
// merge) and are never mutated once they appear in a Result.
type Group struct {
	// ID is unique across the run and never reused, even after the group is
	// retired by a later merge. Seed groups take 1..n in input order.
	ID int
	// Items holds the members in merge order (lower-parent-index first).
	// The order is preserved for reproducible reporting and blob layout.
	Items []Item
	// Weight is the cached sum of member weights.
	Weight float64
}

// newGroup builds a Group with its total weight cached.
// The items slice is owned by the new group; callers must not retain it.
func newGroup(id int, items []Item) Group {
	var total float64
	for _, it := range items {
		total += it.Weight
	}

	return Group{ID: id, Items: items, Weight: total}
}

// CanMergeWith reports whether absorbing other keeps the aggregate weight at
// or under the capacity ceiling. The test is inclusive: combined == capacity
// still merges.
func (g Group) CanMergeWith(other Group, capacity float64) bool {
	return g.Weight+other.Weight <= capacity
}

// ItemIDs returns the member identifiers in stored order.
func (g Group) ItemIDs() []string {
	ids := make([]string, len(g.Items))
	for i, it := range g.Items {
		ids[i] = it.ID
	}

	return ids
}

// Option customizes an Engine. Options never change clustering outcomes;
// they attach telemetry and similar side concerns.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// WithLogger attaches a zerolog logger for per-merge debug telemetry.
// The default is zerolog.Nop(): the engine is silent unless asked.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
