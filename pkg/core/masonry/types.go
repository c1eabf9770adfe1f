package masonry

import (
	"math"
	"slices"

	errs "github.com/matzehuels/masonry/pkg/errors"
)

// heightEpsilon is the tolerance used when comparing column totals
// against the sum of their tiles.
const heightEpsilon = 1e-9

// Tile is a single item to lay out. Height is zero until a layout assigns it.
type Tile struct {
	ID      string  `json:"id"`
	Content any     `json:"content,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

// Column is an ordered run of tiles. TotalHeight always equals the sum of
// the tiles' heights.
type Column struct {
	Tiles       []Tile  `json:"tiles"`
	TotalHeight float64 `json:"total_height"`
}

// Len returns the number of tiles in the column.
func (c Column) Len() int { return len(c.Tiles) }

// Sum recomputes the total height from the tiles.
func (c Column) Sum() float64 {
	var sum float64
	for _, t := range c.Tiles {
		sum += t.Height
	}
	return sum
}

func (c Column) clone() Column {
	return Column{Tiles: slices.Clone(c.Tiles), TotalHeight: c.TotalHeight}
}

// Layout is the result of one pipeline run: one Column per slot, left to right.
type Layout struct {
	Columns []Column `json:"columns"`
}

// Len returns the number of columns.
func (l Layout) Len() int { return len(l.Columns) }

// TileCount returns the number of tiles across all columns.
func (l Layout) TileCount() int {
	n := 0
	for _, c := range l.Columns {
		n += len(c.Tiles)
	}
	return n
}

// Tiles returns every tile, column by column.
func (l Layout) Tiles() []Tile {
	out := make([]Tile, 0, l.TileCount())
	for _, c := range l.Columns {
		out = append(out, c.Tiles...)
	}
	return out
}

// MaxHeight returns the tallest column total, or 0 for an empty layout.
func (l Layout) MaxHeight() float64 {
	var h float64
	for _, c := range l.Columns {
		h = max(h, c.TotalHeight)
	}
	return h
}

// MinHeight returns the shortest column total, or 0 for an empty layout.
func (l Layout) MinHeight() float64 {
	if len(l.Columns) == 0 {
		return 0
	}
	h := math.Inf(1)
	for _, c := range l.Columns {
		h = min(h, c.TotalHeight)
	}
	return h
}

// Spread returns the gap between the tallest and shortest non-empty columns.
// After unclamped normalization it is zero up to rounding.
func (l Layout) Spread() float64 {
	lo, hi := math.Inf(1), 0.0
	for _, c := range l.Columns {
		if len(c.Tiles) == 0 {
			continue
		}
		lo = min(lo, c.TotalHeight)
		hi = max(hi, c.TotalHeight)
	}
	if math.IsInf(lo, 1) {
		return 0
	}
	return hi - lo
}

// Clone returns a deep copy of the layout's columns and tile slices.
// Tile contents are shared.
func (l Layout) Clone() Layout {
	cols := make([]Column, len(l.Columns))
	for i, c := range l.Columns {
		cols[i] = c.clone()
	}
	return Layout{Columns: cols}
}

// Check verifies the layout against the tiles it was built from: every input
// tile appears exactly once (by ID) and every column total equals the sum of
// its tiles. A violation is an internal error.
func (l Layout) Check(input []Tile) error {
	want := make(map[string]int, len(input))
	for _, t := range input {
		want[t.ID]++
	}

	seen := make(map[string]int, len(input))
	for i, c := range l.Columns {
		if math.Abs(c.Sum()-c.TotalHeight) > heightEpsilon*max(1, c.TotalHeight) {
			return errs.New(errs.ErrCodeInternal,
				"column %d: total height %g does not match tile sum %g", i, c.TotalHeight, c.Sum())
		}
		for _, t := range c.Tiles {
			seen[t.ID]++
			if seen[t.ID] > want[t.ID] {
				return errs.New(errs.ErrCodeInternal, "tile %q placed more often than supplied", t.ID)
			}
		}
	}

	for id, n := range want {
		if seen[id] != n {
			return errs.New(errs.ErrCodeInternal, "tile %q missing from layout", id)
		}
	}
	return nil
}
