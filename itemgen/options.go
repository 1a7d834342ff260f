// SPDX-License-Identifier: MIT
// Package itemgen: functional options resolving into an immutable config.
// Option constructors validate and panic on meaningless inputs; generators
// never panic and return sentinel errors instead.
package itemgen

import "math/rand"

// Defaults — single source of truth for zero-option behavior.
const (
	// DefaultSeed seeds the generator RNG when neither WithSeed nor
	// WithRand is given, keeping bare calls reproducible.
	DefaultSeed int64 = 42
	// DefaultMinSize is the default lower weight bound (MB).
	DefaultMinSize = 0.5
	// DefaultMaxSize is the default upper weight bound (MB).
	DefaultMaxSize = 50.0
	// DefaultPrefix names generated items <prefix>_NNNN.dat.
	DefaultPrefix = "file"
)

// Option customizes generation by mutating the resolved config.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	minSize float64
	maxSize float64
	prefix  string
}

// WithSeed locks the RNG to a deterministic seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("itemgen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSizeRange sets the inclusive weight bounds for Uniform.
// Cross-field validity (0 < min ≤ max) is checked by the generator so that
// callers get ErrBadSizeRange, not a panic, on bad runtime data.
func WithSizeRange(minSize, maxSize float64) Option {
	return func(c *config) {
		c.minSize, c.maxSize = minSize, maxSize
	}
}

// WithPrefix sets the item name prefix. Panics on an empty prefix.
func WithPrefix(prefix string) Option {
	if prefix == "" {
		panic(`itemgen: WithPrefix("")`)
	}

	return func(c *config) { c.prefix = prefix }
}

func newConfig(opts ...Option) config {
	c := config{
		rng:     rand.New(rand.NewSource(DefaultSeed)),
		minSize: DefaultMinSize,
		maxSize: DefaultMaxSize,
		prefix:  DefaultPrefix,
	}
	for _, set := range opts {
		set(&c)
	}

	return c
}
