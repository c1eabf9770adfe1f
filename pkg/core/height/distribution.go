package height

import (
	"slices"

	errs "github.com/matzehuels/masonry/pkg/errors"
)

// Weighted pairs a height value with its selection weight.
type Weighted struct {
	Value  float64 `json:"value" toml:"value"`
	Weight float64 `json:"weight" toml:"weight"`
}

// Distribution is a validated, immutable set of weighted heights in table order.
type Distribution struct {
	entries []Weighted
	total   float64
	min     float64
	max     float64
}

// NewDistribution validates entries and returns a Distribution.
// Table order is preserved; it determines the sampling walk.
func NewDistribution(entries ...Weighted) (*Distribution, error) {
	if len(entries) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidHeights, "height distribution is empty")
	}

	d := &Distribution{entries: slices.Clone(entries)}
	for i, e := range entries {
		if !errs.Finite(e.Value) || e.Value < 0 {
			return nil, errs.New(errs.ErrCodeInvalidHeights,
				"height value must be finite and non-negative, got %g", e.Value)
		}
		if !errs.Finite(e.Weight) || e.Weight <= 0 {
			return nil, errs.New(errs.ErrCodeInvalidHeights,
				"height %g: weight must be positive, got %g", e.Value, e.Weight)
		}
		d.total += e.Weight
		if i == 0 {
			d.min, d.max = e.Value, e.Value
			continue
		}
		d.min = min(d.min, e.Value)
		d.max = max(d.max, e.Value)
	}
	if !errs.Finite(d.total) {
		return nil, errs.New(errs.ErrCodeInvalidHeights, "total weight overflows")
	}
	return d, nil
}

// MustDistribution is like NewDistribution but panics on error.
func MustDistribution(entries ...Weighted) *Distribution {
	d, err := NewDistribution(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

// Default returns the canonical distribution:
// 30 (weight 3), 40 (2), 50 (1.5), 60 (1), 70 (0.5).
func Default() *Distribution {
	return MustDistribution(
		Weighted{Value: 30, Weight: 3},
		Weighted{Value: 40, Weight: 2},
		Weighted{Value: 50, Weight: 1.5},
		Weighted{Value: 60, Weight: 1},
		Weighted{Value: 70, Weight: 0.5},
	)
}

// Entries returns a copy of the entries in table order.
func (d *Distribution) Entries() []Weighted { return slices.Clone(d.entries) }

// Values returns the height values in table order.
func (d *Distribution) Values() []float64 {
	out := make([]float64, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Value
	}
	return out
}

// TotalWeight returns the sum of all weights.
func (d *Distribution) TotalWeight() float64 { return d.total }

// Min returns the smallest height value; it bounds normalization from below.
func (d *Distribution) Min() float64 { return d.min }

// Max returns the largest height value; it bounds normalization from above.
func (d *Distribution) Max() float64 { return d.max }

// Len returns the number of entries.
func (d *Distribution) Len() int { return len(d.entries) }

// Probability returns the probability that weighted sampling yields value.
// Entries sharing a value are summed.
func (d *Distribution) Probability(value float64) float64 {
	var w float64
	for _, e := range d.entries {
		if e.Value == value {
			w += e.Weight
		}
	}
	return w / d.total
}
