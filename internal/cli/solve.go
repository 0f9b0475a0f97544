package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/render/sink"
)

// solveCommand creates the solve command, which prints the grid for a
// container, count and aspect ratio.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags   optionFlags
		asJSON  bool
		preview bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the tile grid for a container",
		Long: `Compute the grid (columns x rows) and tile size for a number of tiles.

In best mode the solver tries a column-driven and a row-driven search and
keeps the one with the larger tiles. In columns or rows mode the given axis
is fixed and the tile size shrinks until the grid fits.`,
		Example: `  tilegrid solve -n 7
  tilegrid solve -n 10 --width 1024 --height 768 --aspect 16:9
  tilegrid solve -n 7 --mode columns --fixed 2 --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := flags.resolve(cmd, cfg)

			runner, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			l, hit, err := runner.LayoutWithCacheInfo(cmd.Context(), opts)
			if err != nil {
				return err
			}
			c.Logger.Debug("solve done", "pass", l.Pass, "cached", hit)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}

			if l.Empty() {
				printWarning("No tiles placed: the container or count is empty")
				return nil
			}
			printLayout(l)
			printLayoutStats(l, hit)
			if preview {
				cols, rows := pipeline.TextCanvas(l, min(terminalWidth()-2, 2*pipeline.DefaultTextColumns))
				printNewline()
				fmt.Fprintln(stdout, sink.RenderText(l, cols, rows))
			}
			printNewline()
			printNextStep("Render it", fmt.Sprintf("tilegrid render -n %d -o grid.svg", l.Spec.Count))
			return nil
		},
	}

	flags.bindLayout(cmd.Flags())
	registerValueCompletions(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "draw the grid in the terminal")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
