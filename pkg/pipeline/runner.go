package pipeline

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/masonry/pkg/core/breakpoint"
	"github.com/matzehuels/masonry/pkg/core/height"
	"github.com/matzehuels/masonry/pkg/core/masonry"
	"github.com/matzehuels/masonry/pkg/observability"
	"github.com/matzehuels/masonry/pkg/viewport"
)

// Stats describes the most recent pipeline run.
type Stats struct {
	Recomputes   int
	LastReason   string
	LastDuration time.Duration
	LastSeed     uint64 // 0 when a custom SourceFactory is used
	Width        float64
	Columns      int
	Tiles        int
	MaxHeight    float64
	Spread       float64
}

// Orchestrator owns the pipeline inputs and the current Layout.
//
// All recomputation happens synchronously inside SetTiles, SetWidth and
// Reshuffle. State is guarded by a mutex because terminal UIs deliver resize
// events from their own goroutine. Observability hooks and layout listeners
// are always called with the lock released, so they may read the
// orchestrator.
type Orchestrator struct {
	mu sync.Mutex

	table  breakpoint.Table
	dist   *height.Distribution
	policy height.Policy
	clamp  bool
	seed   uint64
	newSrc func() height.Source
	logger *log.Logger

	tiles   []masonry.Tile
	width   float64
	columns int
	layout  masonry.Layout
	stats   Stats

	listeners map[int]func(masonry.Layout)
	nextID    int
	subs      []*viewport.Subscription

	// pending holds hook events raised under mu, emitted by release.
	pending []func()
}

// New validates opts, builds the configuration tables and computes the
// initial (empty) layout for the initial width. Configuration errors are returned
// before any layout exists.
func New(opts Options) (*Orchestrator, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	table, dist, err := opts.Tables()
	if err != nil {
		return nil, err
	}
	policy, _ := height.ParsePolicy(opts.Policy)

	width := opts.InitialWidth()
	columns, err := table.Resolve(width)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		table:     table,
		dist:      dist,
		policy:    policy,
		clamp:     opts.ClampEnabled(),
		seed:      opts.Seed,
		newSrc:    opts.SourceFactory,
		logger:    opts.Logger,
		width:     width,
		columns:   columns,
		listeners: make(map[int]func(masonry.Layout)),
	}

	o.mu.Lock()
	err = o.recompute(ReasonInit)
	o.release()
	if err != nil {
		return nil, err
	}

	o.logger.Debug("layout orchestrator ready",
		"width", o.width,
		"columns", o.columns,
		"policy", o.policy,
		"clamp", o.clamp,
		"seed", o.seed)
	return o, nil
}

// SetTiles replaces the tile collection and recomputes the layout.
// The slice is copied. On error the previous tiles and layout are kept.
func (o *Orchestrator) SetTiles(tiles []masonry.Tile) error {
	o.mu.Lock()
	prev := o.tiles
	o.tiles = slices.Clone(tiles)
	if err := o.recompute(ReasonTiles); err != nil {
		o.tiles = prev
		o.release()
		return err
	}
	l, fns := o.layout, o.snapshotListeners()
	o.release()

	notify(fns, l)
	return nil
}

// SetWidth records a new viewport width. The layout is recomputed only when
// the resolved column count changes. It reports whether a recompute happened.
func (o *Orchestrator) SetWidth(width float64) (bool, error) {
	o.mu.Lock()
	prevWidth := o.width
	o.width = width
	o.emit(func() { observability.Layout().OnResize(width) })

	columns, err := o.table.Resolve(width)
	if err != nil {
		o.width = prevWidth
		o.release()
		return false, err
	}
	if columns == o.columns {
		o.stats.Width = width
		o.release()
		return false, nil
	}

	prev := o.columns
	o.columns = columns
	o.emit(func() { observability.Layout().OnColumnsChanged(prev, columns) })
	o.logger.Debug("column count changed", "width", width, "from", prev, "to", columns)

	if err := o.recompute(ReasonColumns); err != nil {
		o.width, o.columns = prevWidth, prev
		o.release()
		return false, err
	}
	l, fns := o.layout, o.snapshotListeners()
	o.release()

	notify(fns, l)
	return true, nil
}

// Reshuffle recomputes the layout with unchanged inputs, drawing fresh heights.
func (o *Orchestrator) Reshuffle() error {
	o.mu.Lock()
	if err := o.recompute(ReasonReshuffle); err != nil {
		o.release()
		return err
	}
	l, fns := o.layout, o.snapshotListeners()
	o.release()

	notify(fns, l)
	return nil
}

// Attach subscribes to sig and applies its current width immediately.
// The returned function detaches; it is safe to call more than once.
func (o *Orchestrator) Attach(sig *viewport.Signal) (detach func()) {
	sub := sig.Subscribe(func(width float64) {
		if _, err := o.SetWidth(width); err != nil {
			o.logger.Error("resize failed", "width", width, "err", err)
		}
	})

	o.mu.Lock()
	o.subs = append(o.subs, sub)
	o.mu.Unlock()

	if _, err := o.SetWidth(sig.Width()); err != nil {
		o.logger.Error("initial resize failed", "width", sig.Width(), "err", err)
	}

	return func() {
		if sub.Unsubscribe() {
			o.logger.Debug("detached from viewport", "subscription", sub.ID)
		}
	}
}

// OnLayout registers fn to receive every new layout. fn is not called with
// the current layout; read Layout for that. The returned function removes fn.
func (o *Orchestrator) OnLayout(fn func(masonry.Layout)) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// Close detaches from every attached signal and drops all listeners.
func (o *Orchestrator) Close() error {
	o.mu.Lock()
	subs := o.subs
	o.subs = nil
	clear(o.listeners)
	o.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
	return nil
}

// Layout returns a copy of the current layout.
func (o *Orchestrator) Layout() masonry.Layout {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.layout.Clone()
}

// Columns returns the current column count.
func (o *Orchestrator) Columns() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.columns
}

// Width returns the last viewport width seen.
func (o *Orchestrator) Width() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.width
}

// Stats returns statistics about the most recent run.
func (o *Orchestrator) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}

// Distribution returns the height distribution in use.
func (o *Orchestrator) Distribution() *height.Distribution { return o.dist }

// Breakpoints returns the breakpoint table in use.
func (o *Orchestrator) Breakpoints() breakpoint.Table { return o.table }

// recompute runs the full pipeline for the current inputs. Callers hold o.mu.
func (o *Orchestrator) recompute(reason string) error {
	start := time.Now()

	src, seed := o.source()
	sampler, err := height.NewSampler(o.policy, o.dist, src)
	if err != nil {
		return err
	}

	opts := []masonry.Option{masonry.WithSampler(sampler)}
	if o.clamp {
		opts = append(opts, masonry.WithHeightClamp(o.dist.Min(), o.dist.Max()))
	}
	l, err := masonry.Build(o.tiles, o.columns, opts...)

	elapsed := time.Since(start)
	columns, tiles := o.columns, len(o.tiles)
	o.emit(func() { observability.Layout().OnRecompute(reason, columns, tiles, elapsed, err) })
	if err != nil {
		o.logger.Warn("layout failed", "reason", reason, "err", err)
		return err
	}

	o.layout = l
	o.stats = Stats{
		Recomputes:   o.stats.Recomputes + 1,
		LastReason:   reason,
		LastDuration: elapsed,
		LastSeed:     seed,
		Width:        o.width,
		Columns:      o.columns,
		Tiles:        len(o.tiles),
		MaxHeight:    l.MaxHeight(),
		Spread:       l.Spread(),
	}

	o.logger.Debug("computed layout",
		"reason", reason,
		"columns", o.columns,
		"tiles", len(o.tiles),
		"spread", l.Spread(),
		"duration", elapsed)
	return nil
}

// source returns a fresh random source for one run. A configured seed
// reseeds identically every run; otherwise every run gets a new seed.
func (o *Orchestrator) source() (height.Source, uint64) {
	if o.newSrc != nil {
		return o.newSrc(), 0
	}
	seed := o.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	o.emit(func() { observability.Sampling().OnReseed(seed) })
	return height.NewSource(seed), seed
}

// emit queues a hook event. Callers hold o.mu.
func (o *Orchestrator) emit(event func()) {
	o.pending = append(o.pending, event)
}

// release unlocks o.mu, then runs the hook events queued while it was held.
func (o *Orchestrator) release() {
	events := o.pending
	o.pending = nil
	o.mu.Unlock()
	for _, event := range events {
		event()
	}
}

// snapshotListeners returns the registered listeners in registration order.
// Callers hold o.mu.
func (o *Orchestrator) snapshotListeners() []func(masonry.Layout) {
	ids := make([]int, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(masonry.Layout), len(ids))
	for i, id := range ids {
		fns[i] = o.listeners[id]
	}
	return fns
}

func notify(fns []func(masonry.Layout), l masonry.Layout) {
	for _, fn := range fns {
		fn(l.Clone())
	}
}
