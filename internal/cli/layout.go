package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/core/masonry"
	errs "github.com/matzehuels/masonry/pkg/errors"
	mio "github.com/matzehuels/masonry/pkg/io"
	"github.com/matzehuels/masonry/pkg/pipeline"
)

// Output formats for the layout command.
const (
	formatGrid = "grid"
	formatJSON = "json"
)

// tileSource selects where tiles come from: a file, or generated demo tiles.
type tileSource struct {
	file    string
	count   int
	useUUID bool
}

func (s *tileSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "tiles", "t", "", "tile collection JSON file (default: generated demo tiles)")
	cmd.Flags().IntVarP(&s.count, "count", "n", defaultTileCount, "number of demo tiles to generate")
	cmd.Flags().BoolVar(&s.useUUID, "uuid", false, "identify generated tiles with random UUIDs")
}

func (s *tileSource) load() ([]masonry.Tile, error) {
	if s.file != "" {
		return mio.ImportTiles(s.file)
	}
	if s.count < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "invalid tile count: %d", s.count)
	}
	scheme := mio.IDSequential
	if s.useUUID {
		scheme = mio.IDRandom
	}
	return mio.GenerateTiles(s.count, scheme), nil
}

// layoutCommand creates the layout command for computing a masonry layout.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		pf     pipelineFlags
		tiles  tileSource
		output string
		format string
		rows   int
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a masonry layout for a tile collection",
		Long: `Compute a masonry layout for a tile collection.

Tiles are read from a JSON file (-t) or generated ("Song 1" .. "Song N").
The column count is resolved from --width using the breakpoint table, each
tile gets a height from the weighted height distribution, and columns are
balanced toward the tallest one.

The result is drawn as a grid of columns (default) or written as JSON
(-f json), the format presentation layers consume.`,
		Example: `  masonry layout --width 1280
  masonry layout -t tiles.json -f json -o layout.json
  masonry layout --seed 42 --policy uniform --clamp=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &pf)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts, tiles, format, output, rows)
		},
	}

	pf.register(cmd, true)
	tiles.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON output to file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", formatGrid, "output format: grid (default), json")
	cmd.Flags().IntVar(&rows, "rows", defaultViewportRows, "viewport height in lines for grid output")

	return cmd
}

// runLayout computes the layout and writes it in the requested format.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts pipeline.Options, src tileSource, format, output string, rows int) error {
	format = strings.ToLower(format)
	if format != formatGrid && format != formatJSON {
		return errs.New(errs.ErrCodeInvalidInput, "invalid format: %q (must be one of: grid, json)", format)
	}
	if output != "" && format != formatJSON {
		format = formatJSON
	}

	logger := loggerFromContext(ctx)
	tiles, err := src.load()
	if err != nil {
		return fmt.Errorf("load tiles: %w", err)
	}

	prog := newProgress(logger)
	o, err := pipeline.New(opts)
	if err != nil {
		return err
	}
	defer o.Close()

	if err := o.SetTiles(tiles); err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	l, stats := o.Layout(), o.Stats()
	prog.done(fmt.Sprintf("Computed layout: %d tiles in %d columns", stats.Tiles, stats.Columns))
	if ctx.Err() != nil {
		return ctx.Err()
	}

	meta := mio.Meta{Width: opts.InitialWidth(), Policy: opts.Policy, Clamp: opts.ClampEnabled(), Seed: stats.LastSeed}

	switch {
	case format == formatJSON && output == "":
		return mio.WriteLayout(l, meta, w)
	case format == formatJSON:
		if err := mio.ExportLayout(l, meta, output); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess(w, "Layout complete")
		printFile(w, output)
		printStats(w, stats)
		return nil
	}

	termWidth := int(opts.InitialWidth() / defaultCellWidth)
	fmt.Fprintln(w, renderGrid(l, gridOptions{
		ColumnWidth:  columnWidth(termWidth, l.Len()),
		ViewportRows: rows,
	}))
	printStats(w, stats)
	if stats.Spread > 0 && opts.ClampEnabled() {
		printInfo(w, "columns differ by %.1f after clamping", stats.Spread)
	}
	if len(tiles) == 0 {
		printWarning(w, "no tiles to lay out")
		printNextStep(w, "Generate demo tiles", appName+" layout -n 37")
	}
	return nil
}
