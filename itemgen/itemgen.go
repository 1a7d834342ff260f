// SPDX-License-Identifier: MIT
package itemgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/agglo/cluster"
)

// Band is one (weight, count) slot of an exact distribution: Count items of
// exactly Weight each.
type Band struct {
	Weight float64
	Count  int
}

// Uniform generates n items with weights drawn uniformly from the
// configured [min, max] range, rounded to two decimals. Names are
// <prefix>_0001.dat onward, in draw order.
//
// Deterministic for fixed n and options. O(n) time.
func Uniform(n int, opts ...Option) ([]cluster.Item, error) {
	if n < 1 {
		return nil, fmt.Errorf("count %d: %w", n, ErrBadCount)
	}
	cfg := newConfig(opts...)
	if cfg.minSize <= 0 || cfg.maxSize < cfg.minSize {
		return nil, fmt.Errorf("range [%v, %v]: %w", cfg.minSize, cfg.maxSize, ErrBadSizeRange)
	}

	items := make([]cluster.Item, 0, n)
	for i := 1; i <= n; i++ {
		w := cfg.minSize + cfg.rng.Float64()*(cfg.maxSize-cfg.minSize)
		w = math.Round(w*100) / 100

		it, err := cluster.NewItem(fmt.Sprintf("%s_%04d.dat", cfg.prefix, i), w)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}

// FromDistribution emits items exactly as described by the bands, in band
// order, numbering continuing across bands. Weights are validated through
// cluster.NewItem, so a non-positive band weight surfaces as
// cluster.ErrNonPositiveWeight.
func FromDistribution(bands []Band, opts ...Option) ([]cluster.Item, error) {
	cfg := newConfig(opts...)

	total := 0
	for _, b := range bands {
		total += b.Count
	}
	if total < 1 {
		return nil, fmt.Errorf("distribution of %d items: %w", total, ErrBadCount)
	}

	items := make([]cluster.Item, 0, total)
	counter := 1
	for _, b := range bands {
		for k := 0; k < b.Count; k++ {
			it, err := cluster.NewItem(fmt.Sprintf("%s_%04d.dat", cfg.prefix, counter), b.Weight)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
			counter++
		}
	}

	return items, nil
}

// Scenario returns a canned distribution modeling a small-file population:
//
//   - "mixed"  — balanced blend: 15×5, 12×10, 8×20, 5×35, 3×45 MB
//   - "small"  — mostly tiny files: 20×2, 15×5, 10×8, 5×12 MB
//   - "medium" — mid-sized files: 10×15, 10×20, 8×25, 6×30 MB
//   - "large"  — fewer, larger files: 8×30, 6×40, 4×50 MB
//
// Unknown names fail with ErrUnknownScenario.
func Scenario(name string, opts ...Option) ([]cluster.Item, error) {
	bands, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
	}

	return FromDistribution(bands, opts...)
}

// ScenarioNames lists the available scenario names in stable order.
func ScenarioNames() []string {
	return []string{"mixed", "small", "medium", "large"}
}

var scenarios = map[string][]Band{
	"mixed": {
		{Weight: 5, Count: 15},
		{Weight: 10, Count: 12},
		{Weight: 20, Count: 8},
		{Weight: 35, Count: 5},
		{Weight: 45, Count: 3},
	},
	"small": {
		{Weight: 2, Count: 20},
		{Weight: 5, Count: 15},
		{Weight: 8, Count: 10},
		{Weight: 12, Count: 5},
	},
	"medium": {
		{Weight: 15, Count: 10},
		{Weight: 20, Count: 10},
		{Weight: 25, Count: 8},
		{Weight: 30, Count: 6},
	},
	"large": {
		{Weight: 30, Count: 8},
		{Weight: 40, Count: 6},
		{Weight: 50, Count: 4},
	},
}
