package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/core/breakpoint"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

// columnsCommand creates the columns command for inspecting breakpoints.
func (c *CLI) columnsCommand() *cobra.Command {
	var pf pipelineFlags

	cmd := &cobra.Command{
		Use:   "columns [width...]",
		Short: "Show the breakpoint table and resolve widths to column counts",
		Example: `  masonry columns
  masonry columns 1023 1024 1440
  masonry columns --legacy 449 450`,
		RunE: func(cmd *cobra.Command, args []string) error {
			widths := make([]float64, len(args))
			for i, a := range args {
				w, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return errs.Wrap(errs.ErrCodeInvalidWidth, err, "invalid width %q", a)
				}
				if err := errs.ValidateWidth(w); err != nil {
					return err
				}
				widths[i] = w
			}

			opts, err := c.options(cmd, &pf)
			if err != nil {
				return err
			}
			bt, _, err := opts.Tables()
			if err != nil {
				return err
			}
			return writeColumns(cmd.OutOrStdout(), bt, widths)
		},
	}

	cmd.Flags().BoolVar(&pf.legacy, "legacy", false, "use the legacy breakpoint table (1024/768/450)")
	return cmd
}

// writeColumns prints the breakpoint table, then one row per width.
func writeColumns(w io.Writer, bt breakpoint.Table, widths []float64) error {
	rows := make([][]string, 0, bt.Len())
	for _, e := range bt.Entries() {
		rows = append(rows, []string{fmt.Sprintf("≥ %gpx", e.MinWidth), strconv.Itoa(e.Columns)})
	}
	fmt.Fprintln(w, StyleTitle.Render("Breakpoints"))
	fmt.Fprintln(w, newTable("Min width", "Columns").Rows(rows...).Render())

	if len(widths) == 0 {
		return nil
	}

	resolved := make([][]string, 0, len(widths))
	for _, width := range widths {
		n, err := bt.Resolve(width)
		if err != nil {
			return err
		}
		resolved = append(resolved, []string{fmt.Sprintf("%gpx", width), strconv.Itoa(n)})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Resolved"))
	fmt.Fprintln(w, newTable("Width", "Columns").Rows(resolved...).Render())
	return nil
}

// newTable returns a table with the CLI's border and header styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == len(headers)-1 {
				return StyleNumber.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
