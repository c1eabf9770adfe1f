package masonry

import (
	"github.com/matzehuels/masonry/pkg/core/height"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

// Assign places tiles into columns, shortest column first. Each tile is
// copied with a height drawn from s before placement. Ties go to the lowest
// column index.
func Assign(tiles []Tile, columns int, s height.Sampler) (Layout, error) {
	if s == nil {
		return Layout{}, errs.New(errs.ErrCodeInvalidInput, "sampler is nil")
	}
	return assign(tiles, columns, func(Tile) float64 { return s.Sample() })
}

// AssignHeights is like Assign but keeps the heights already set on tiles.
func AssignHeights(tiles []Tile, columns int) (Layout, error) {
	return assign(tiles, columns, func(t Tile) float64 { return t.Height })
}

func assign(tiles []Tile, columns int, heightOf func(Tile) float64) (Layout, error) {
	if columns < 1 {
		return Layout{}, errs.New(errs.ErrCodeInvalidColumns, "column count must be >= 1, got %d", columns)
	}
	if err := checkUniqueIDs(tiles); err != nil {
		return Layout{}, err
	}

	cols := make([]Column, columns)
	for _, t := range tiles {
		t.Height = heightOf(t)
		i := shortest(cols)
		cols[i].Tiles = append(cols[i].Tiles, t)
		cols[i].TotalHeight += t.Height
	}
	return Layout{Columns: cols}, nil
}

// shortest returns the index of the column with the smallest total.
func shortest(cols []Column) int {
	best := 0
	for i := 1; i < len(cols); i++ {
		if cols[i].TotalHeight < cols[best].TotalHeight {
			best = i
		}
	}
	return best
}

func checkUniqueIDs(tiles []Tile) error {
	seen := make(map[string]struct{}, len(tiles))
	for _, t := range tiles {
		if _, dup := seen[t.ID]; dup {
			return errs.New(errs.ErrCodeInvalidInput, "duplicate tile id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
