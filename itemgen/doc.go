// Package itemgen generates deterministic synthetic weighted items for
// feeding the clustering engine in experiments, examples and benchmarks.
//
// What:
//
//   - Uniform(n): n items with weights drawn uniformly from a configurable
//     range, rounded to two decimals, named <prefix>_0001.dat onward.
//   - FromDistribution(bands): exact (weight, count) bands emitted in band
//     order — full control for reproducing published scenarios.
//   - Scenario(name): canned distributions ("mixed", "small", "medium",
//     "large") that model typical small-file populations.
//
// Determinism:
//
//	All randomness flows through one RNG resolved from the options:
//	WithRand > WithSeed > the package default seed. The same options always
//	produce the same items, which keeps clustering runs reproducible
//	end to end.
//
// Errors:
//
//   - ErrBadCount: requested item count < 1.
//   - ErrBadSizeRange: min ≤ 0 or max < min.
//   - ErrUnknownScenario: Scenario called with an unrecognized name.
//
// Option constructors panic on nonsensical arguments (programmer error);
// generators themselves never panic and return sentinel errors.
package itemgen
