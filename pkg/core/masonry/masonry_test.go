package masonry

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/masonry/pkg/core/height"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

func makeTiles(n int) []Tile {
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = Tile{ID: fmt.Sprintf("t%d", i+1), Content: fmt.Sprintf("Song %d", i+1)}
	}
	return tiles
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAssignBalancedUniformLoad(t *testing.T) {
	l, err := Assign(makeTiles(8), 4, height.Fixed(50))
	if err != nil {
		t.Fatalf("Assign() error: %v", err)
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	for i, c := range l.Columns {
		if c.Len() != 2 {
			t.Errorf("column %d has %d tiles, want 2", i, c.Len())
		}
		if c.TotalHeight != 100 {
			t.Errorf("column %d total = %v, want 100", i, c.TotalHeight)
		}
	}

	// Normalization has nothing to do
	n := Normalize(l, WithClamp(30, 70))
	for i, c := range n.Columns {
		if c.TotalHeight != 100 {
			t.Errorf("normalized column %d total = %v, want 100", i, c.TotalHeight)
		}
		for _, tile := range c.Tiles {
			if tile.Height != 50 {
				t.Errorf("tile %s height = %v, want 50", tile.ID, tile.Height)
			}
		}
	}
}

func TestAssignRoundRobinOrder(t *testing.T) {
	// Equal heights fill columns left to right, preserving input order.
	l, _ := Assign(makeTiles(8), 4, height.Fixed(50))
	want := [][]string{{"t1", "t5"}, {"t2", "t6"}, {"t3", "t7"}, {"t4", "t8"}}
	for i, c := range l.Columns {
		for j, tile := range c.Tiles {
			if tile.ID != want[i][j] {
				t.Errorf("column %d slot %d = %s, want %s", i, j, tile.ID, want[i][j])
			}
		}
	}
}

func TestAssignEmptyInput(t *testing.T) {
	l, err := Build(nil, 5)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	for i, c := range l.Columns {
		if c.Len() != 0 || c.TotalHeight != 0 {
			t.Errorf("column %d = %d tiles / %v height, want empty", i, c.Len(), c.TotalHeight)
		}
	}
	if l.Spread() != 0 || l.MaxHeight() != 0 || l.MinHeight() != 0 {
		t.Error("empty layout should have zero heights")
	}
}

func TestSingleTileManyColumns(t *testing.T) {
	d := height.Default()
	l, err := Build(makeTiles(1), 7,
		WithSampler(height.NewWeighted(d, height.NewSequence(0.7))),
		WithHeightClamp(d.Min(), d.Max()),
	)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", l.Len())
	}
	if l.Columns[0].Len() != 1 {
		t.Fatalf("column 0 has %d tiles, want 1", l.Columns[0].Len())
	}
	if got := l.Columns[0].Tiles[0].Height; got != 50 {
		t.Errorf("tile height = %v, want unchanged 50", got)
	}
	for i := 1; i < 7; i++ {
		if l.Columns[i].Len() != 0 || l.Columns[i].TotalHeight != 0 {
			t.Errorf("column %d should be empty", i)
		}
	}
}

func TestAssignExactSequence(t *testing.T) {
	// Draws map to 30, 70, 40, 30, 50 under the default distribution.
	s := height.NewWeighted(height.Default(), height.NewSequence(0.1, 0.95, 0.5, 0.1, 0.7))
	l, err := Assign(makeTiles(5), 2, s)
	if err != nil {
		t.Fatalf("Assign() error: %v", err)
	}

	assertColumn(t, l.Columns[0], []string{"t1", "t3", "t4"}, []float64{30, 40, 30}, 100)
	assertColumn(t, l.Columns[1], []string{"t2", "t5"}, []float64{70, 50}, 120)

	n := Normalize(l)
	third := 20.0 / 3
	assertColumn(t, n.Columns[0], []string{"t1", "t3", "t4"}, []float64{30 + third, 40 + third, 30 + third}, 120)
	assertColumn(t, n.Columns[1], []string{"t2", "t5"}, []float64{70, 50}, 120)
	if !approx(n.Spread(), 0) {
		t.Errorf("Spread() = %v, want 0", n.Spread())
	}
}

func TestNormalizeClampLeavesResidual(t *testing.T) {
	l := Layout{Columns: []Column{
		{Tiles: []Tile{{ID: "a", Height: 30}}, TotalHeight: 30},
		{Tiles: []Tile{{ID: "b", Height: 70}, {ID: "c", Height: 70}, {ID: "d", Height: 70}}, TotalHeight: 210},
		{},
	}}

	unclamped := Normalize(l)
	if got := unclamped.Columns[0].Tiles[0].Height; got != 210 {
		t.Errorf("unclamped height = %v, want 210", got)
	}
	if unclamped.Columns[0].TotalHeight != 210 {
		t.Errorf("unclamped total = %v, want 210", unclamped.Columns[0].TotalHeight)
	}

	clamped := Normalize(l, WithClamp(30, 70))
	if got := clamped.Columns[0].Tiles[0].Height; got != 70 {
		t.Errorf("clamped height = %v, want 70", got)
	}
	if clamped.Columns[0].TotalHeight != 70 {
		t.Errorf("clamped total = %v, want 70", clamped.Columns[0].TotalHeight)
	}
	if clamped.Spread() != 140 {
		t.Errorf("Spread() = %v, want residual 140", clamped.Spread())
	}

	// Empty column untouched
	if clamped.Columns[2].Len() != 0 || clamped.Columns[2].TotalHeight != 0 {
		t.Error("empty column should be untouched")
	}

	// Input layout untouched
	if l.Columns[0].Tiles[0].Height != 30 || l.Columns[0].TotalHeight != 30 {
		t.Error("Normalize() modified its input")
	}
}

func TestWithClampSwapsBounds(t *testing.T) {
	l := Layout{Columns: []Column{
		{Tiles: []Tile{{ID: "a", Height: 30}}, TotalHeight: 30},
		{Tiles: []Tile{{ID: "b", Height: 100}}, TotalHeight: 100},
	}}
	n := Normalize(l, WithClamp(70, 30))
	if got := n.Columns[0].Tiles[0].Height; got != 70 {
		t.Errorf("height = %v, want 70", got)
	}
}

func TestAssignErrors(t *testing.T) {
	tests := []struct {
		name    string
		tiles   []Tile
		columns int
		sampler height.Sampler
		code    errs.Code
	}{
		{"zero columns", makeTiles(3), 0, height.Fixed(30), errs.ErrCodeInvalidColumns},
		{"negative columns", nil, -2, height.Fixed(30), errs.ErrCodeInvalidColumns},
		{"duplicate ids", []Tile{{ID: "a"}, {ID: "b"}, {ID: "a"}}, 2, height.Fixed(30), errs.ErrCodeInvalidInput},
		{"nil sampler", makeTiles(1), 2, nil, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Assign(tt.tiles, tt.columns, tt.sampler)
			if err == nil {
				t.Fatalf("Assign() = %d columns, want error", l.Len())
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errs.GetCode(err), tt.code)
			}
		})
	}

	if _, err := Build(makeTiles(2), 0); !errs.IsConfig(err) {
		t.Errorf("Build() with 0 columns error = %v, want configuration error", err)
	}
}

func TestAssignHeights(t *testing.T) {
	tiles := []Tile{
		{ID: "a", Height: 60},
		{ID: "b", Height: 30},
		{ID: "c", Height: 30},
		{ID: "d", Height: 40},
	}
	l, err := AssignHeights(tiles, 2)
	if err != nil {
		t.Fatalf("AssignHeights() error: %v", err)
	}
	assertColumn(t, l.Columns[0], []string{"a", "d"}, []float64{60, 40}, 100)
	assertColumn(t, l.Columns[1], []string{"b", "c"}, []float64{30, 30}, 60)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	tiles := makeTiles(10)
	l, err := Build(tiles, 3, WithSampler(height.NewWeighted(height.Default(), height.NewSource(1))))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, tile := range tiles {
		if tile.Height != 0 {
			t.Fatalf("input tile %s was given height %v", tile.ID, tile.Height)
		}
	}
	if l.TileCount() != 10 {
		t.Errorf("TileCount() = %d, want 10", l.TileCount())
	}
}

func TestBuildWithoutNormalize(t *testing.T) {
	s := height.NewWeighted(height.Default(), height.NewSequence(0.1, 0.95))
	l, _ := Build(makeTiles(2), 2, WithSampler(s), WithoutNormalize())
	if l.Columns[0].TotalHeight != 30 || l.Columns[1].TotalHeight != 70 {
		t.Errorf("totals = %v/%v, want 30/70", l.Columns[0].TotalHeight, l.Columns[1].TotalHeight)
	}
}

func TestLayoutProperties(t *testing.T) {
	d := height.Default()

	for seed := uint64(1); seed <= 40; seed++ {
		for _, k := range []int{1, 2, 4, 5, 7} {
			n := int(seed*7) % 60
			tiles := makeTiles(n)
			src := height.NewSource(seed)

			assigned, err := Assign(tiles, k, height.NewWeighted(d, src))
			if err != nil {
				t.Fatalf("seed %d k %d: Assign() error: %v", seed, k, err)
			}
			if err := assigned.Check(tiles); err != nil {
				t.Fatalf("seed %d k %d: assigned layout: %v", seed, k, err)
			}

			normalized := Normalize(assigned, WithClamp(d.Min(), d.Max()))
			if normalized.Len() != k {
				t.Fatalf("seed %d: Len() = %d, want %d", seed, normalized.Len(), k)
			}
			if err := normalized.Check(tiles); err != nil {
				t.Fatalf("seed %d k %d: normalized layout: %v", seed, k, err)
			}
			for _, tile := range normalized.Tiles() {
				if tile.Height < d.Min() || tile.Height > d.Max() {
					t.Fatalf("seed %d k %d: tile %s height %v outside [%v, %v]",
						seed, k, tile.ID, tile.Height, d.Min(), d.Max())
				}
			}
			if !approx(normalized.MaxHeight(), assigned.MaxHeight()) {
				t.Fatalf("seed %d k %d: normalization changed the tallest column", seed, k)
			}
		}
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	tiles := []Tile{{ID: "a"}, {ID: "b"}}

	tests := []struct {
		name   string
		layout Layout
	}{
		{"missing", Layout{Columns: []Column{{Tiles: []Tile{{ID: "a", Height: 1}}, TotalHeight: 1}}}},
		{"duplicated", Layout{Columns: []Column{
			{Tiles: []Tile{{ID: "a", Height: 1}, {ID: "b", Height: 1}}, TotalHeight: 2},
			{Tiles: []Tile{{ID: "a", Height: 1}}, TotalHeight: 1},
		}}},
		{"bad total", Layout{Columns: []Column{{Tiles: []Tile{{ID: "a", Height: 1}, {ID: "b", Height: 1}}, TotalHeight: 5}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.layout.Check(tiles); !errs.Is(err, errs.ErrCodeInternal) {
				t.Errorf("Check() = %v, want internal error", err)
			}
		})
	}
}

func assertColumn(t *testing.T, c Column, ids []string, heights []float64, total float64) {
	t.Helper()
	if c.Len() != len(ids) {
		t.Fatalf("column has %d tiles, want %d", c.Len(), len(ids))
	}
	for i, tile := range c.Tiles {
		if tile.ID != ids[i] {
			t.Errorf("slot %d = %s, want %s", i, tile.ID, ids[i])
		}
		if !approx(tile.Height, heights[i]) {
			t.Errorf("tile %s height = %v, want %v", tile.ID, tile.Height, heights[i])
		}
	}
	if !approx(c.TotalHeight, total) {
		t.Errorf("total = %v, want %v", c.TotalHeight, total)
	}
}
