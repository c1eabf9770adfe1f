package height

import (
	"math/rand/v2"
	"strings"
	"sync"

	errs "github.com/matzehuels/masonry/pkg/errors"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a PCG generator seeded from seed.
// The same seed always produces the same sequence.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// NewEntropySource returns a generator seeded from the runtime's entropy,
// so every call yields a different sequence.
func NewEntropySource() Source {
	return NewSource(rand.Uint64())
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// It is safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence returns a Source that yields values in order, then repeats.
// Values outside [0, 1) are clamped into range. An empty sequence yields 0.
func NewSequence(values ...float64) *Sequence {
	vs := make([]float64, len(values))
	for i, v := range values {
		vs[i] = clampUnit(v)
	}
	return &Sequence{values: vs}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws returns how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

func clampUnit(v float64) float64 {
	if !(v >= 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 0.9999999999999999
	}
	return v
}

// Sampler produces one height per call. Sampling always succeeds.
type Sampler interface {
	Sample() float64
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() float64

// Sample calls f.
func (f SamplerFunc) Sample() float64 { return f() }

// weighted implements the canonical cumulative-walk sampler.
type weighted struct {
	dist *Distribution
	src  Source
}

// NewWeighted returns a sampler that draws value v with probability
// weight(v) / TotalWeight. A nil src uses a fresh entropy source.
func NewWeighted(d *Distribution, src Source) Sampler {
	if src == nil {
		src = NewEntropySource()
	}
	return &weighted{dist: d, src: src}
}

func (w *weighted) Sample() float64 {
	draw := w.src.Float64() * w.dist.total
	var cumulative float64
	for _, e := range w.dist.entries {
		cumulative += e.Weight
		if cumulative > draw {
			return e.Value
		}
	}
	// Rounding let the walk run past the end.
	return w.dist.min
}

// uniform picks every entry with equal probability, ignoring weights.
type uniform struct {
	dist *Distribution
	src  Source
}

// NewUniform returns a sampler that ignores weights and picks each entry
// with probability 1/Len. A nil src uses a fresh entropy source.
func NewUniform(d *Distribution, src Source) Sampler {
	if src == nil {
		src = NewEntropySource()
	}
	return &uniform{dist: d, src: src}
}

func (u *uniform) Sample() float64 {
	n := len(u.dist.entries)
	i := int(u.src.Float64() * float64(n))
	i = max(0, min(i, n-1))
	return u.dist.entries[i].Value
}

// Fixed returns a sampler that always yields v.
func Fixed(v float64) Sampler {
	return SamplerFunc(func() float64 { return v })
}

// Policy names a sampling policy.
type Policy string

// Sampling policies.
const (
	PolicyWeighted Policy = "weighted"
	PolicyUniform  Policy = "uniform"
)

// DefaultPolicy is the canonical policy.
const DefaultPolicy = PolicyWeighted

// ParsePolicy parses a policy name. The empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultPolicy, nil
	case PolicyWeighted, PolicyUniform:
		return p, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidPolicy,
			"invalid policy: %q (must be one of: weighted, uniform)", s)
	}
}

// NewSampler returns the sampler for policy p.
func NewSampler(p Policy, d *Distribution, src Source) (Sampler, error) {
	switch p {
	case PolicyWeighted, "":
		return NewWeighted(d, src), nil
	case PolicyUniform:
		return NewUniform(d, src), nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidPolicy, "unknown policy %q", string(p))
	}
}

// String implements fmt.Stringer.
func (p Policy) String() string { return string(p) }
