// Package render turns solved grid layouts into files.
//
// # Overview
//
// Rendering is split in three layers:
//
//   - [styles]: how one tile is drawn in SVG (simple, cards)
//   - [sink]: output formats (SVG, PNG, PDF, JSON, terminal text)
//   - this package: generic SVG conversion shared by the sinks
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). When it is not installed they return an UNSUPPORTED error
// and SVG, JSON and text output keep working.
//
//	svg := sink.RenderSVG(layout)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [styles]: github.com/matzehuels/tilegrid/pkg/render/styles
// [sink]: github.com/matzehuels/tilegrid/pkg/render/sink
package render
