// Package height samples tile heights from a discrete weighted distribution.
//
// # Overview
//
// A [Distribution] is a static table of [Weighted] entries: each pairs a
// height value with a positive weight. Weights need not sum to 1; they are
// normalized at sampling time, so an entry is drawn with probability
// weight / TotalWeight.
//
// Heights are abstract units. The presentation layer decides what they mean
// (the original page rendered them as a percentage of viewport height).
//
// # Randomness
//
// Samplers never touch a global generator. They draw from a [Source], an
// interface with a single Float64 method returning a value in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it; [NewSource] builds a seeded PCG
// generator and [NewSequence] replays a fixed list of draws, which lets tests
// assert exact heights.
//
// # Sampling Policies
//
//   - [NewWeighted]: canonical. Biases layouts toward shorter tiles, which
//     yields denser grids.
//   - [NewUniform]: every value equally likely, ignoring weights.
//   - [Fixed]: always the same height.
//
// Sampling never fails. If floating-point rounding lets the cumulative walk
// run past the last entry, the weighted sampler falls back to [Distribution.Min].
package height
