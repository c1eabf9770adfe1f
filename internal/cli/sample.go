package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/core/height"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

// histogramWidth is the bar length for a frequency of 100%.
const histogramWidth = 40

// sampleCommand creates the sample command, which draws heights and
// compares observed frequencies with the configured weights.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		pf pipelineFlags
		n  int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw heights and compare frequencies with their weights",
		Example: `  masonry sample -n 100000
  masonry sample --policy uniform --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return errs.New(errs.ErrCodeInvalidInput, "sample count must be positive, got %d", n)
			}
			opts, err := c.options(cmd, &pf)
			if err != nil {
				return err
			}
			_, dist, err := opts.Tables()
			if err != nil {
				return err
			}
			policy, err := height.ParsePolicy(opts.Policy)
			if err != nil {
				return err
			}

			seed := opts.Seed
			if seed == 0 {
				seed = rand.Uint64()
			}
			c.Logger.Debug("sampling heights", "n", n, "policy", policy, "seed", seed)

			s, err := height.NewSampler(policy, dist, height.NewSource(seed))
			if err != nil {
				return err
			}
			counts := drawCounts(s, n)
			return writeHistogram(cmd.OutOrStdout(), dist, policy, counts, n)
		},
	}

	pf.register(cmd, false)
	cmd.Flags().IntVarP(&n, "count", "n", 10000, "number of heights to draw")
	return cmd
}

// drawCounts samples n heights and counts each value.
func drawCounts(s height.Sampler, n int) map[float64]int {
	counts := make(map[float64]int)
	for range n {
		counts[s.Sample()]++
	}
	return counts
}

// expected returns the probability of value under policy.
func expected(d *height.Distribution, p height.Policy, value float64) float64 {
	if p == height.PolicyUniform {
		return 1 / float64(d.Len())
	}
	return d.Probability(value)
}

// writeHistogram prints one row per distribution entry.
func writeHistogram(w io.Writer, d *height.Distribution, p height.Policy, counts map[float64]int, n int) error {
	rows := make([][]string, 0, d.Len())
	for _, e := range d.Entries() {
		observed := float64(counts[e.Value]) / float64(n)
		bar := strings.Repeat("█", int(observed*histogramWidth+0.5))
		rows = append(rows, []string{
			fmt.Sprintf("%g", e.Value),
			fmt.Sprintf("%g", e.Weight),
			fmt.Sprintf("%.2f%%", expected(d, p, e.Value)*100),
			fmt.Sprintf("%.2f%%", observed*100),
			styleBar.Render(bar),
		})
	}

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d draws, %s policy", n, p)))
	fmt.Fprintln(w, newTable("Height", "Weight", "Expected", "Observed", "").Rows(rows...).Render())
	return nil
}
