package sink

import (
	"context"

	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/render"
)

// RasterOption configures [RenderPNG] and [RenderPDF].
type RasterOption func(*raster)

type raster struct {
	svg   []SVGOption
	scale float64
	conv  render.Converter
}

// WithSVGOptions is applied to the intermediate SVG.
func WithSVGOptions(opts ...SVGOption) RasterOption {
	return func(r *raster) { r.svg = opts }
}

// WithScale zooms the output; PNG defaults to 2 (retina), PDF to 1.
func WithScale(s float64) RasterOption {
	return func(r *raster) { r.scale = s }
}

// WithConverter replaces [render.DefaultConverter].
func WithConverter(c render.Converter) RasterOption {
	return func(r *raster) { r.conv = c }
}

func renderRaster(ctx context.Context, l grid.Layout, format string, scale float64, opts []RasterOption) ([]byte, error) {
	r := raster{scale: scale, conv: render.DefaultConverter}
	for _, opt := range opts {
		opt(&r)
	}
	return r.conv.Convert(ctx, RenderSVG(l, r.svg...), format, r.scale)
}

// RenderPNG renders l to SVG and converts it with rsvg-convert.
func RenderPNG(ctx context.Context, l grid.Layout, opts ...RasterOption) ([]byte, error) {
	return renderRaster(ctx, l, "png", 2, opts)
}

// RenderPDF renders l to SVG and converts it with rsvg-convert.
func RenderPDF(ctx context.Context, l grid.Layout, opts ...RasterOption) ([]byte, error) {
	return renderRaster(ctx, l, "pdf", 1, opts)
}
