package breakpoint

import (
	"cmp"
	"math"
	"slices"

	errs "github.com/matzehuels/masonry/pkg/errors"
)

// Breakpoint pairs a minimum viewport width with a column count.
type Breakpoint struct {
	MinWidth float64 `json:"min_width" toml:"min_width"`
	Columns  int     `json:"columns" toml:"columns"`
}

// Table is a validated breakpoint table, sorted by descending MinWidth.
// The zero value is empty and fails to resolve.
type Table struct {
	entries []Breakpoint
}

// New validates entries and returns a Table. Entries may be given in any order.
func New(entries ...Breakpoint) (Table, error) {
	if len(entries) == 0 {
		return Table{}, errs.New(errs.ErrCodeInvalidBreakpoints, "breakpoint table is empty")
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Breakpoint) int {
		return cmp.Compare(b.MinWidth, a.MinWidth)
	})

	for i, bp := range sorted {
		if !errs.Finite(bp.MinWidth) || bp.MinWidth < 0 {
			return Table{}, errs.New(errs.ErrCodeInvalidBreakpoints,
				"breakpoint width must be finite and non-negative, got %g", bp.MinWidth)
		}
		if bp.Columns < 1 {
			return Table{}, errs.New(errs.ErrCodeInvalidBreakpoints,
				"breakpoint %g: column count must be >= 1, got %d", bp.MinWidth, bp.Columns)
		}
		if i > 0 && sorted[i-1].MinWidth == bp.MinWidth {
			return Table{}, errs.New(errs.ErrCodeInvalidBreakpoints,
				"duplicate breakpoint width %g", bp.MinWidth)
		}
	}

	if sorted[len(sorted)-1].MinWidth != 0 {
		return Table{}, errs.New(errs.ErrCodeInvalidBreakpoints,
			"breakpoint table has no fallback entry at width 0 (lowest is %g)", sorted[len(sorted)-1].MinWidth)
	}

	return Table{entries: sorted}, nil
}

// MustNew is like New but panics on error. Intended for package-level tables.
func MustNew(entries ...Breakpoint) Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the canonical table: ≥1440 → 7, ≥1024 → 5, ≥768 → 4, otherwise 2.
func Default() Table {
	return MustNew(
		Breakpoint{MinWidth: 1440, Columns: 7},
		Breakpoint{MinWidth: 1024, Columns: 5},
		Breakpoint{MinWidth: 768, Columns: 4},
		Breakpoint{MinWidth: 0, Columns: 2},
	)
}

// Legacy returns the thresholds used by the first masonry page:
// ≥1024 → 7, ≥768 → 5, ≥450 → 4, otherwise 2.
func Legacy() Table {
	return MustNew(
		Breakpoint{MinWidth: 1024, Columns: 7},
		Breakpoint{MinWidth: 768, Columns: 5},
		Breakpoint{MinWidth: 450, Columns: 4},
		Breakpoint{MinWidth: 0, Columns: 2},
	)
}

// Resolve returns the column count of the highest threshold <= width.
// Negative and NaN widths resolve like width 0.
func (t Table) Resolve(width float64) (int, error) {
	if len(t.entries) == 0 {
		return 0, errs.New(errs.ErrCodeInvalidBreakpoints, "breakpoint table is empty")
	}
	if math.IsNaN(width) || width < 0 {
		width = 0
	}
	for _, bp := range t.entries {
		if width >= bp.MinWidth {
			return bp.Columns, nil
		}
	}
	// Unreachable for tables built by New: the last entry is at width 0.
	return 0, errs.New(errs.ErrCodeInvalidBreakpoints, "no breakpoint matches width %g", width)
}

// Entries returns a copy of the table entries, widest first.
func (t Table) Entries() []Breakpoint {
	return slices.Clone(t.entries)
}

// Thresholds returns the minimum widths in ascending order.
func (t Table) Thresholds() []float64 {
	out := make([]float64, len(t.entries))
	for i, bp := range t.entries {
		out[len(t.entries)-1-i] = bp.MinWidth
	}
	return out
}

// MaxColumns returns the largest column count in the table.
func (t Table) MaxColumns() int {
	n := 0
	for _, bp := range t.entries {
		n = max(n, bp.Columns)
	}
	return n
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.entries) }
