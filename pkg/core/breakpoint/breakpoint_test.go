package breakpoint

import (
	"math"
	"slices"
	"testing"

	errs "github.com/matzehuels/masonry/pkg/errors"
)

func TestResolveDefault(t *testing.T) {
	table := Default()

	tests := []struct {
		width float64
		want  int
	}{
		{0, 2},
		{320, 2},
		{767, 2},
		{768, 4},
		{1023, 4},
		{1023.99, 4},
		{1024, 5},
		{1439, 5},
		{1440, 7},
		{3840, 7},
	}

	for _, tt := range tests {
		got, err := table.Resolve(tt.width)
		if err != nil {
			t.Fatalf("Resolve(%v) error: %v", tt.width, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestResolveLegacy(t *testing.T) {
	table := Legacy()

	tests := []struct {
		width float64
		want  int
	}{
		{449, 2},
		{450, 4},
		{768, 5},
		{1024, 7},
	}

	for _, tt := range tests {
		got, _ := table.Resolve(tt.width)
		if got != tt.want {
			t.Errorf("Resolve(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestResolveDegenerateWidths(t *testing.T) {
	table := Default()

	for _, w := range []float64{-1, -1000, math.NaN(), math.Inf(-1)} {
		got, err := table.Resolve(w)
		if err != nil {
			t.Fatalf("Resolve(%v) error: %v", w, err)
		}
		if got != 2 {
			t.Errorf("Resolve(%v) = %d, want fallback 2", w, got)
		}
	}

	if got, _ := table.Resolve(math.Inf(1)); got != 7 {
		t.Errorf("Resolve(+Inf) = %d, want 7", got)
	}
}

func TestResolveZeroTable(t *testing.T) {
	var table Table
	n, err := table.Resolve(1024)
	if err == nil {
		t.Fatalf("Resolve on empty table returned %d, want error", n)
	}
	if !errs.Is(err, errs.ErrCodeInvalidBreakpoints) {
		t.Errorf("error code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidBreakpoints)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Breakpoint
	}{
		{"empty", nil},
		{"no fallback", []Breakpoint{{MinWidth: 768, Columns: 4}, {MinWidth: 1024, Columns: 5}}},
		{"zero columns", []Breakpoint{{MinWidth: 0, Columns: 0}}},
		{"negative columns", []Breakpoint{{MinWidth: 0, Columns: 2}, {MinWidth: 500, Columns: -3}}},
		{"negative width", []Breakpoint{{MinWidth: 0, Columns: 2}, {MinWidth: -10, Columns: 1}}},
		{"nan width", []Breakpoint{{MinWidth: 0, Columns: 2}, {MinWidth: math.NaN(), Columns: 3}}},
		{"duplicate", []Breakpoint{{MinWidth: 0, Columns: 2}, {MinWidth: 768, Columns: 4}, {MinWidth: 768, Columns: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if !errs.IsConfig(err) {
				t.Errorf("New() error should be a configuration error: %v", err)
			}
		})
	}
}

func TestNewSortsAndCopies(t *testing.T) {
	in := []Breakpoint{
		{MinWidth: 0, Columns: 1},
		{MinWidth: 1200, Columns: 3},
		{MinWidth: 600, Columns: 2},
	}
	table, err := New(in...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Caller's slice is untouched
	if in[0].MinWidth != 0 || in[1].MinWidth != 1200 {
		t.Error("New() should not reorder the caller's entries")
	}

	entries := table.Entries()
	if entries[0].MinWidth != 1200 || entries[2].MinWidth != 0 {
		t.Errorf("Entries() = %v, want widest first", entries)
	}

	if got := table.Thresholds(); !slices.Equal(got, []float64{0, 600, 1200}) {
		t.Errorf("Thresholds() = %v", got)
	}
	if table.MaxColumns() != 3 {
		t.Errorf("MaxColumns() = %d, want 3", table.MaxColumns())
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}

	// Mutating the returned entries does not affect the table
	entries[0].Columns = 99
	if n, _ := table.Resolve(5000); n != 3 {
		t.Errorf("Resolve after mutating Entries() = %d, want 3", n)
	}
}

func TestSingleEntryTable(t *testing.T) {
	table, err := New(Breakpoint{MinWidth: 0, Columns: 3})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, w := range []float64{0, 500, 5000} {
		if n, _ := table.Resolve(w); n != 3 {
			t.Errorf("Resolve(%v) = %d, want 3", w, n)
		}
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() should panic on invalid table")
		}
	}()
	MustNew()
}
