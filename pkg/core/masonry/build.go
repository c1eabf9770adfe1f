package masonry

import (
	"github.com/matzehuels/masonry/pkg/core/height"
)

// Option configures Build.
type Option func(*builder)

type builder struct {
	sampler   height.Sampler
	normalize bool
	norm      []NormalizeOption
}

// WithSampler sets the height sampler. The default draws from
// height.Default() with a fresh entropy source.
func WithSampler(s height.Sampler) Option {
	return func(b *builder) { b.sampler = s }
}

// WithHeightClamp clamps normalized heights to [lo, hi].
func WithHeightClamp(lo, hi float64) Option {
	return func(b *builder) { b.norm = append(b.norm, WithClamp(lo, hi)) }
}

// WithoutNormalize skips the normalization step.
func WithoutNormalize() Option {
	return func(b *builder) { b.normalize = false }
}

// Build assigns tiles to columns and normalizes the result.
func Build(tiles []Tile, columns int, opts ...Option) (Layout, error) {
	b := &builder{normalize: true}
	for _, opt := range opts {
		opt(b)
	}
	if b.sampler == nil {
		b.sampler = height.NewWeighted(height.Default(), nil)
	}

	l, err := Assign(tiles, columns, b.sampler)
	if err != nil {
		return Layout{}, err
	}
	if !b.normalize {
		return l, nil
	}
	return Normalize(l, b.norm...), nil
}
