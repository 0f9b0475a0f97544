package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/render/sink"
	"github.com/matzehuels/tilegrid/pkg/render/styles"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(ctx context.Context, l grid.Layout, opts Options) (map[string][]byte, error) {
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := buildSVGOptions(style, opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, sink.WithSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sink.WithSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
		case FormatText:
			cols, rows := TextCanvas(l, DefaultTextColumns)
			data = []byte(sink.RenderText(l, cols, rows) + "\n")
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// TextCanvas returns a character canvas cols wide whose height keeps the
// frame's proportions, assuming terminal cells twice as tall as wide.
func TextCanvas(l grid.Layout, cols int) (int, int) {
	frame := l.Frame()
	if !frame.Valid() || cols <= 0 {
		return cols, 1
	}
	rows := int(math.Round(float64(cols) * frame.Height / frame.Width / 2))
	return cols, max(1, rows)
}

func buildSVGOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	}
	if opts.Outline {
		svgOpts = append(svgOpts, sink.WithOutline())
	}
	return svgOpts
}
