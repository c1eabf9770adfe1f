package masonry

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizer)

type normalizer struct {
	clamp    bool
	min, max float64
}

// WithClamp bounds every adjusted tile height to [lo, hi]. Arguments given
// in the wrong order are swapped.
func WithClamp(lo, hi float64) NormalizeOption {
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(n *normalizer) {
		n.clamp = true
		n.min, n.max = lo, hi
	}
}

// Normalize stretches every non-empty column shorter than the tallest one by
// spreading the gap evenly over its tiles. It returns a new Layout; l is not
// modified.
//
// Columns that are already the tallest keep their heights, even under
// clamping. With clamping, columns may not reach the tallest total.
func Normalize(l Layout, opts ...NormalizeOption) Layout {
	n := &normalizer{}
	for _, opt := range opts {
		opt(n)
	}

	out := l.Clone()
	maxHeight := out.MaxHeight()

	for i := range out.Columns {
		col := &out.Columns[i]
		gap := maxHeight - col.TotalHeight
		if gap <= 0 || len(col.Tiles) == 0 {
			continue
		}

		adjustment := gap / float64(len(col.Tiles))
		for j := range col.Tiles {
			h := col.Tiles[j].Height + adjustment
			if n.clamp {
				h = max(n.min, min(h, n.max))
			}
			col.Tiles[j].Height = h
		}
		col.TotalHeight = col.Sum()
	}
	return out
}
