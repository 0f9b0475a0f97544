package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/config"
	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/watch"
)

// watchCommand creates the watch command, which re-solves a config file
// every time it is saved.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		render  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "watch <config.toml|config.yaml>",
		Short: "Re-solve a config file whenever it changes",
		Long: `Watch a config file and re-solve it on every save.

Each change reloads the file, solves the grid and prints the result. With
--render the configured formats are also written to the configured output.
A file that fails to parse is reported and the watch continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), args[0], render, noCache)
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "write the configured formats on every change")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, path string, render, noCache bool) error {
	if !config.IsConfigFile(path) {
		return errors.New(errors.ErrCodeUnsupported, "%s is not a .toml or .yaml file", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	w, err := watch.New(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	c.solveConfig(ctx, runner, cfg, render)
	printInfo("Watching %s %s", path, StyleDim.Render("(ctrl+c to stop)"))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			printNewline()
			cfg, err := config.Load(path)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				continue
			}
			c.solveConfig(ctx, runner, cfg, render)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("watch error", "error", err)
		}
	}
}

// solveConfig solves (and optionally renders) cfg, printing failures
// instead of returning them so the watch loop keeps going.
func (c *CLI) solveConfig(ctx context.Context, runner *pipeline.Runner, cfg *config.Config, render bool) {
	opts := cfg.Options()
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	l, hit, err := runner.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return
	}
	prog.done("solved", "tiles", len(l.Tiles), "pass", l.Pass, "cached", hit)
	printLayout(l)
	printLayoutStats(l, hit)

	if render {
		if err := c.renderWith(ctx, runner, opts, cfg.Output); err != nil {
			printError("%s", errors.UserMessage(err))
		}
	}
}
