// Package pkg provides the core libraries for masonry layouts.
//
// # Overview
//
// Masonry distributes an ordered collection of tiles across a viewport
// dependent number of columns so that every column reaches roughly the same
// height. The pkg directory is organized into three areas:
//
//  1. [core] - Layout algorithms (breakpoints, heights, column assignment)
//  2. [pipeline] - Orchestration (viewport width → columns → layout)
//  3. Support packages for configuration, serialization, and observability
//
// # Architecture
//
// The data flow for one layout:
//
//	Viewport width
//	      ↓
//	 [core/breakpoint] (resolve the column count)
//	      ↓
//	 [core/height] (draw a height for each tile)
//	      ↓
//	 [core/masonry] (shortest-column assignment, then normalization)
//	      ↓
//	 Layout → listeners, JSON, terminal grid
//
// [pipeline] drives this flow and re-runs it when tiles change, when the
// width crosses a breakpoint, or on an explicit reshuffle. Width changes
// arrive through a [viewport] signal.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/masonry/pkg/core/breakpoint"
//	    "github.com/matzehuels/masonry/pkg/core/height"
//	    "github.com/matzehuels/masonry/pkg/core/masonry"
//	)
//
//	// 1. Resolve the column count
//	columns, _ := breakpoint.Default().Resolve(1280)
//
//	// 2. Pick a height sampler
//	s := height.NewWeighted(height.Default(), height.NewSource(42))
//
//	// 3. Build the layout
//	l, _ := masonry.Build(tiles, columns, masonry.WithSampler(s))
//
// # Main Packages
//
// ## Core Layout Logic
//
// [core/breakpoint] - Ordered width thresholds mapped to column counts. The
// default table is 1440→7, 1024→5, 768→4 with a fallback of 2 columns.
//
// [core/height] - Discrete height distributions and samplers. The weighted
// sampler favours short tiles (30 is six times as likely as 70); the uniform
// sampler ignores weights.
//
// [core/masonry] - Tiles, columns, and layouts. [masonry.Assign] places each
// tile on the currently shortest column; [masonry.Normalize] stretches short
// columns toward the tallest one.
//
// ## Orchestration
//
// [pipeline] - The stateful orchestrator used by the CLI. Holds the tile
// collection and current width, recomputes when needed, and notifies layout
// listeners with independent copies.
//
// [viewport] - Observable viewport width with subscribe/unsubscribe.
//
// ## Support
//
// [config] - TOML configuration file (breakpoints, heights, policy, seed).
//
// [io] - JSON import of tile collections and export of layouts.
//
// [errors] - Structured errors with stable codes.
//
// [observability] - Hooks for recompute, resize, and reseed events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/masonry/...       # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/core
// [core/breakpoint]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/core/breakpoint
// [core/height]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/core/height
// [core/masonry]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/core/masonry
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/pipeline
// [viewport]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/viewport
// [config]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/buildinfo
// [masonry.Assign]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/core/masonry#Assign
// [masonry.Normalize]: https://pkg.go.dev/github.com/matzehuels/masonry/pkg/core/masonry#Normalize
package pkg
