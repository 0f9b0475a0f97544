package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/tilegrid/pkg/config"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/render/styles"
)

// optionFlags collects the flag values shared by solve, render and demo.
// Only flags the user actually set override the config file.
type optionFlags struct {
	opts    pipeline.Options
	formats string
}

func (f *optionFlags) bindLayout(fs *pflag.FlagSet) {
	fs.Float64Var(&f.opts.Width, "width", pipeline.DefaultWidth, "container width")
	fs.Float64Var(&f.opts.Height, "height", pipeline.DefaultHeight, "container height")
	fs.IntVarP(&f.opts.Count, "count", "n", 1, "number of tiles")
	fs.StringVarP(&f.opts.Aspect, "aspect", "a", pipeline.DefaultAspect, "tile aspect ratio W:H")
	fs.StringVarP(&f.opts.Mode, "mode", "m", "best", "grid mode: best, columns, rows")
	fs.IntVar(&f.opts.Fixed, "fixed", 0, "column or row count for --mode columns|rows")
	fs.StringVar(&f.opts.Order, "order", "", "placement order: row, column (default follows mode)")
	fs.Float64Var(&f.opts.Margin, "margin", 0, "inset of the grid from the container edge")
	fs.Float64Var(&f.opts.Padding, "padding", 0, "inset of each tile's content from its frame")
	fs.BoolVar(&f.opts.Centered, "center", false, "center the grid in the container")
}

func (f *optionFlags) bindRender(fs *pflag.FlagSet) {
	fs.StringVarP(&f.formats, "format", "f", pipeline.FormatSVG, "output format(s): "+strings.Join(pipeline.ValidFormats, ", ")+" (comma-separated)")
	fs.StringVar(&f.opts.Style, "style", pipeline.DefaultStyle, "visual style: "+strings.Join(styles.Names(), ", "))
	fs.BoolVar(&f.opts.NoLabels, "no-labels", false, "omit tile labels")
	fs.BoolVar(&f.opts.Outline, "outline", false, "outline the packed grid bounds")
	fs.Float64Var(&f.opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
}

// resolve layers the flags the user set over the config file's settings.
func (f *optionFlags) resolve(cmd *cobra.Command, cfg *config.Config) pipeline.Options {
	opts := cfg.Options()
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "width":
			opts.Width = f.opts.Width
		case "height":
			opts.Height = f.opts.Height
		case "count":
			opts.Count = f.opts.Count
		case "aspect":
			opts.Aspect = f.opts.Aspect
		case "mode":
			opts.Mode = f.opts.Mode
			if !cmd.Flags().Changed("order") {
				opts.Order = ""
			}
		case "fixed":
			opts.Fixed = f.opts.Fixed
		case "order":
			opts.Order = f.opts.Order
		case "margin":
			opts.Margin = f.opts.Margin
		case "padding":
			opts.Padding = f.opts.Padding
		case "center":
			opts.Centered = f.opts.Centered
		case "format":
			opts.Formats = pipeline.ParseFormats(f.formats)
		case "style":
			opts.Style = f.opts.Style
		case "no-labels":
			opts.NoLabels = f.opts.NoLabels
		case "outline":
			opts.Outline = f.opts.Outline
		case "scale":
			opts.Scale = f.opts.Scale
		}
	})
	return opts
}
