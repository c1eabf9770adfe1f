package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/pipeline"
)

// watchCommand creates the watch command, an interactive view that follows
// terminal resizes the way a page follows browser resizes.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		pf        pipelineFlags
		tiles     tileSource
		cellWidth float64
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live layout that reflows as the terminal resizes",
		Long: `Show a live masonry layout in the terminal.

The terminal width times --cell-width is the viewport width. Resizing the
terminal re-resolves the column count; the layout is recomputed whenever the
column count changes. Press r to draw fresh heights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &pf)
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), opts, tiles, cellWidth)
		},
	}

	pf.register(cmd, false)
	tiles.register(cmd)
	cmd.Flags().Float64Var(&cellWidth, "cell-width", defaultCellWidth, "pixels per terminal column")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options, src tileSource, cellWidth float64) error {
	if cellWidth <= 0 || !errs.Finite(cellWidth) {
		return errs.New(errs.ErrCodeInvalidInput, "invalid cell width: %v", cellWidth)
	}
	tiles, err := src.load()
	if err != nil {
		return fmt.Errorf("load tiles: %w", err)
	}

	o, err := pipeline.New(opts)
	if err != nil {
		return err
	}
	defer o.Close()
	if err := o.SetTiles(tiles); err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	model, stop := NewWatchModel(o, cellWidth)
	defer stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run watch: %w", err)
	}
	return nil
}
