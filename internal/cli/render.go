package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/config"
	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
)

// renderCommand creates the render command, which writes the layout in one
// or more output formats.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   optionFlags
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the tile grid to SVG, PNG, PDF, JSON or text",
		Long: `Render the tile grid to one or more files.

With a single format, -o names the output file ("-" writes to stdout). With
several formats, -o is a base path and each format gets its own extension.
PNG and PDF output requires rsvg-convert on the PATH.`,
		Example: `  tilegrid render -n 7 -o grid.svg
  tilegrid render -n 12 --style cards -f svg,png,json -o out/grid
  tilegrid render -n 5 -f txt -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := flags.resolve(cmd, cfg)
			opts.Refresh = refresh
			if output == "" {
				output = cfg.Output
			}
			return c.runRender(cmd.Context(), cfg, opts, output, noCache)
		},
	}

	flags.bindLayout(cmd.Flags())
	flags.bindRender(cmd.Flags())
	registerValueCompletions(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (default: tilegrid)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cfg *config.Config, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	return c.renderWith(ctx, runner, opts, output)
}

// renderWith runs the full pipeline and writes every artifact.
func (c *CLI) renderWith(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	paths, err := outputPaths(output, opts.Formats)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Rendering "+strings.Join(opts.Formats, ", "))
	spinner.Start()
	defer spinner.Stop()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "-" {
		spinner.Stop()
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	spinner.StopWithSuccess("Rendered %d tiles", result.Stats.Tiles)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printLayoutStats(result.Layout, result.CacheInfo.LayoutHit)
	return nil
}

// outputPaths maps each format to its output file.
func outputPaths(output string, formats []string) (map[string]string, error) {
	if output == "-" {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "-o - needs exactly one format, got %d", len(formats))
		}
		return map[string]string{formats[0]: "-"}, nil
	}

	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths, nil
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// basePath strips a known format extension from output; an empty output
// yields the app name.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "%s is a directory; pass a file name or base path with -o", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
