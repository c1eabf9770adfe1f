// Package masonry distributes tiles across columns of roughly equal height.
//
// # Overview
//
// A masonry layout places an ordered collection of [Tile] values into a fixed
// number of columns. Each tile receives a height from a [height.Sampler], is
// appended to the currently shortest column, and finally every column is
// stretched toward the tallest one. The result is a [Layout]:
//
//	tiles → Assign → Normalize → Layout
//
// # Assignment
//
// [Assign] walks tiles in input order and places each one in the column with
// the smallest running total, breaking ties by lowest column index. Tiles are
// not sorted by height first: input order carries meaning (presentation
// order), so the heuristic trades optimality for order preservation.
//
// # Normalization
//
// [Normalize] computes the tallest column total and spreads each shorter
// column's deficit evenly over its tiles. With [WithClamp], every adjusted
// height is clamped to the configured range, which stops a column holding a
// few short tiles from growing them without bound. Clamping can leave a
// residual gap; [Layout.Spread] reports it.
//
// Empty columns are never touched, so no division by zero can occur.
//
// # Building a Layout
//
// [Build] runs both steps:
//
//	d := height.Default()
//	l, err := masonry.Build(tiles, 5,
//	    masonry.WithSampler(height.NewWeighted(d, height.NewSource(42))),
//	    masonry.WithClamp(d.Min(), d.Max()),
//	)
//
// # Immutability
//
// Input tiles are copied. Assign, Normalize and Build never modify the
// caller's slices or the Layout passed to Normalize.
package masonry
