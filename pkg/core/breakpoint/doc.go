// Package breakpoint maps viewport widths to column counts.
//
// # Overview
//
// A [Table] is an ordered set of [Breakpoint] entries, each pairing a minimum
// viewport width with a column count. Resolving a width selects the entry with
// the highest threshold that the width satisfies, mirroring mobile-first
// responsive design: a breakpoint applies at its width and above.
//
// # Validation
//
// Tables are built with [New], which rejects malformed input up front so that
// [Table.Resolve] can never silently produce an undefined count:
//
//   - At least one entry
//   - Every column count is at least 1
//   - Thresholds are finite, non-negative and unique
//   - An entry at width 0 covers everything below the lowest real threshold
//
// # Defaults
//
// [Default] is the canonical table (1440→7, 1024→5, 768→4, otherwise 2).
// [Legacy] reproduces the thresholds of the first masonry page (1024→7,
// 768→5, 450→4, otherwise 2).
//
//	t := breakpoint.Default()
//	cols, err := t.Resolve(1024) // 5
package breakpoint
