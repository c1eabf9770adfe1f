// Package cli implements the masonry command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/buildinfo"
	"github.com/matzehuels/masonry/pkg/config"
	"github.com/matzehuels/masonry/pkg/core/height"
	"github.com/matzehuels/masonry/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "masonry"

	// defaultTileCount matches the demo page, which lists 37 songs.
	defaultTileCount = 37

	// defaultViewportRows is the terminal height assumed when rendering a
	// layout outside of watch mode. Tile heights are percentages of it.
	defaultViewportRows = 40

	// defaultCellWidth converts terminal columns to viewport pixels.
	defaultCellWidth = 8.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Masonry arranges tiles into balanced responsive columns",
		Long: `Masonry distributes an ordered collection of tiles across a viewport-dependent
number of columns so that every column reaches about the same height.

Column counts come from a breakpoint table, tile heights are drawn from a
weighted distribution, tiles go to the shortest column first, and short
columns are stretched toward the tallest one.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/masonry/config.toml)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.columnsCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config Loading
// =============================================================================

// loadConfig reads the --config file, or the default file when the flag is
// unset. A missing default file is not an error.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	return config.LoadDefault()
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineFlags are the flags shared by commands that run the pipeline.
// Values only override the config file when the flag was set explicitly.
type pipelineFlags struct {
	width  float64
	seed   uint64
	policy string
	clamp  bool
	legacy bool
}

func (f *pipelineFlags) register(cmd *cobra.Command, withWidth bool) {
	if withWidth {
		cmd.Flags().Float64VarP(&f.width, "width", "w", pipeline.DefaultWidth, "viewport width in pixels")
	}
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0: fresh heights on every run)")
	cmd.Flags().StringVar(&f.policy, "policy", string(pipeline.DefaultPolicy), "sampling policy: weighted (default), uniform")
	cmd.Flags().BoolVar(&f.clamp, "clamp", pipeline.DefaultClamp, "clamp normalized heights to the height range")
	cmd.Flags().BoolVar(&f.legacy, "legacy", false, "use the legacy breakpoint table (1024/768/450)")

	_ = cmd.RegisterFlagCompletionFunc("policy", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(height.PolicyWeighted), string(height.PolicyUniform)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// options merges the config file with explicitly set flags.
func (c *CLI) options(cmd *cobra.Command, f *pipelineFlags) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	if cmd.Flags().Changed("legacy") && f.legacy {
		cfg.Preset = config.PresetLegacy
		cfg.Breakpoints = nil
	}

	opts := cfg.Options()
	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.SetWidth(f.width)
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
	if flags.Changed("policy") {
		opts.Policy = f.policy
	}
	if flags.Changed("clamp") {
		opts.SetClamp(f.clamp)
	}
	opts.Logger = c.Logger

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}
