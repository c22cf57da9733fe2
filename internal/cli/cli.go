package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/point"
)

// appName is the application name used for display.
const appName = "circuits"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer

	// settings resolved in PersistentPreRunE
	input   string
	budget  *int
	workers int
}

// New creates a CLI that writes answers to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Circuits connects junction boxes closest-first",
		Long: `Circuits reads 3-D junction box positions (one "x,y,z" per line) and
connects the closest unconnected pairs, tracking which boxes end up in the
same circuit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := Config{}
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if !flags.Changed("input") && cfg.Input != "" {
				c.input = cfg.Input
			}
			if !flags.Changed("workers") && cfg.Workers > 0 {
				c.workers = cfg.Workers
			}
			if flags.Changed("budget") {
				b, err := flags.GetInt("budget")
				if err != nil {
					return err
				}
				c.budget = &b
			} else if cfg.Budget != nil {
				c.budget = cfg.Budget
			}
			if verbose || (!flags.Changed("verbose") && cfg.Verbose) {
				c.SetLogLevel(LogDebug)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.input, "input", "i", defaultInput, "junction box coordinates file")
	pf.IntVar(&c.workers, "workers", 0, "goroutines computing pairwise distances (default: GOMAXPROCS)")
	pf.StringVar(&configPath, "config", "", "TOML configuration file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.boundedCommand())
	root.AddCommand(c.singleCommand())
	root.AddCommand(c.solveCommand())

	return root
}

// loadPoints parses the configured input file.
func (c *CLI) loadPoints(ctx context.Context) ([]point.Point, error) {
	logger := loggerFromContext(ctx)
	pts, err := point.ParseFile(c.input)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded junction boxes", "file", c.input, "count", len(pts))
	return pts, nil
}

// runnerOptions returns the circuit options shared by every command: the
// command context, so an interrupt stops the run, worker count and step hooks.
func (c *CLI) runnerOptions(ctx context.Context, rl *runLog) []circuit.Option {
	opts := append(rl.hooks(), circuit.WithContext(ctx))
	if c.workers > 0 {
		opts = append(opts, circuit.WithWorkers(c.workers))
	}
	return opts
}

// runBounded executes the bounded-attempts policy and prints its answer.
func (c *CLI) runBounded(ctx context.Context, pts []point.Point) error {
	logger := loggerFromContext(ctx)
	budget := resolveBudget(c.budget, len(pts))

	rl := newRunLog(logger, "bounded")
	res, err := circuit.RunBounded(pts, budget, c.runnerOptions(ctx, rl)...)
	if err != nil {
		if res.Sizes != nil {
			logger.Warn("Circuits after budget", "count", len(res.Sizes), "sizes", res.Sizes)
		}
		return fmt.Errorf("bounded: %w", err)
	}
	rl.done(res.Attempts, res.Merges)
	logger.Debug("Circuit sizes", "count", len(res.Sizes), "sizes", res.Sizes)

	fmt.Fprintf(c.out, "Product of three largest circuits: %d × %d × %d = %d\n",
		res.Sizes[0], res.Sizes[1], res.Sizes[2], res.Product)
	return nil
}

// runSingle executes the full-connectivity policy and prints its answer.
func (c *CLI) runSingle(ctx context.Context, pts []point.Point) error {
	logger := loggerFromContext(ctx)

	rl := newRunLog(logger, "single")
	res, err := circuit.RunUntilSingle(pts, c.runnerOptions(ctx, rl)...)
	if err != nil {
		return fmt.Errorf("single: %w", err)
	}
	rl.done(res.Attempts, res.Merges)
	logger.Debug("Final connection", "a", res.PointA.String(), "b", res.PointB.String())

	xp, err := res.XProduct()
	if err != nil {
		return fmt.Errorf("single: %w", err)
	}
	fmt.Fprintf(c.out, "Product of X coordinates of last connected junction boxes: %d × %d = %d\n",
		res.PointA.X, res.PointB.X, xp)
	return nil
}
