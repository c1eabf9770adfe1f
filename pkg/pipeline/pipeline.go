// Package pipeline keeps a masonry layout in sync with its inputs.
//
// This package implements the resolve → sample → assign → normalize pipeline
// behind a single [Orchestrator] that CLI and terminal UI components share.
// By centralizing the wiring here, every entry point resolves breakpoints,
// samples heights and normalizes columns the same way.
//
// # Architecture
//
// The orchestrator owns two inputs, the tile collection and the viewport
// width, and recomputes the whole layout from scratch when either changes in
// a way that matters:
//
//  1. Width change: resolve the column count; recompute only if it changed
//  2. Tile change: always recompute
//
// There is no incremental update. Every run draws fresh heights, so the same
// tiles get different heights across runs unless a fixed seed is configured.
//
// # Usage
//
//	opts := pipeline.Options{Seed: 42}
//	opts.SetWidth(1280)
//
//	o, err := pipeline.New(opts)
//	if err != nil {
//	    return err // configuration error, no layout produced
//	}
//	defer o.Close()
//
//	stop := o.OnLayout(func(l masonry.Layout) { render(l) })
//	defer stop()
//
//	detach := o.Attach(viewportSignal)
//	defer detach()
//
//	if err := o.SetTiles(tiles); err != nil {
//	    return err
//	}
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/masonry/pkg/core/breakpoint"
	"github.com/matzehuels/masonry/pkg/core/height"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and TUI
// =============================================================================

const (
	// DefaultWidth is the viewport width assumed before the first resize
	// signal arrives. It resolves to the widest column count of the default
	// table, as the original page did before mounting.
	DefaultWidth = 1440.0

	// DefaultClamp enables clamped normalization.
	DefaultClamp = true
)

// DefaultPolicy is the default sampling policy.
const DefaultPolicy = height.DefaultPolicy

// Recompute reasons reported to hooks, logs and Stats.
const (
	ReasonInit      = "init"
	ReasonTiles     = "tiles"
	ReasonColumns   = "columns"
	ReasonReshuffle = "reshuffle"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization so layouts can record how they
// were produced.
type Options struct {
	// Configuration tables
	Breakpoints []breakpoint.Breakpoint `json:"breakpoints,omitempty"`
	Heights     []height.Weighted       `json:"heights,omitempty"`

	// Sampling and normalization
	Policy string `json:"policy,omitempty"`
	Clamp  *bool  `json:"clamp,omitempty"`
	Seed   uint64 `json:"seed,omitempty"` // 0 draws a fresh seed for every run

	// Initial viewport width, DefaultWidth when nil
	Width *float64 `json:"width,omitempty"`

	// Runtime options (not serialized)
	Logger        *log.Logger          `json:"-"`
	SourceFactory func() height.Source `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults applies defaults and checks values that can be
// checked without building tables. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if _, err := height.ParsePolicy(o.Policy); err != nil {
		return err
	}
	if err := errs.ValidateWidth(*o.Width); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields with the package defaults.
func (o *Options) SetDefaults() {
	if len(o.Breakpoints) == 0 {
		o.Breakpoints = breakpoint.Default().Entries()
	}
	if len(o.Heights) == 0 {
		o.Heights = height.Default().Entries()
	}
	if o.Policy == "" {
		o.Policy = string(DefaultPolicy)
	}
	if o.Clamp == nil {
		clamp := DefaultClamp
		o.Clamp = &clamp
	}
	if o.Width == nil {
		width := DefaultWidth
		o.Width = &width
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ClampEnabled reports whether normalization clamps heights.
func (o *Options) ClampEnabled() bool {
	return o.Clamp == nil || *o.Clamp
}

// SetClamp sets the clamp flag.
func (o *Options) SetClamp(v bool) {
	o.Clamp = &v
}

// InitialWidth returns the configured initial width or DefaultWidth.
func (o *Options) InitialWidth() float64 {
	if o.Width == nil {
		return DefaultWidth
	}
	return *o.Width
}

// SetWidth sets the initial viewport width. Zero is a valid width.
func (o *Options) SetWidth(v float64) {
	o.Width = &v
}

// Tables builds the validated breakpoint table and height distribution.
func (o *Options) Tables() (breakpoint.Table, *height.Distribution, error) {
	table, err := breakpoint.New(o.Breakpoints...)
	if err != nil {
		return breakpoint.Table{}, nil, err
	}
	dist, err := height.NewDistribution(o.Heights...)
	if err != nil {
		return breakpoint.Table{}, nil, err
	}
	return table, dist, nil
}
