// Package sink renders a [grid.Layout] to output formats.
//
// SVG is the primary format; PNG and PDF are converted from it with
// rsvg-convert. JSON is the layout itself (plus render metadata) and can be
// read back with [grid.UnmarshalLayout]. Text draws the grid with box
// characters for terminals.
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Cards{}))
//	png, err := sink.RenderPNG(ctx, l, sink.WithScale(3))
//	txt := sink.RenderText(l, 60, 30)
//
// [grid.Layout]: github.com/matzehuels/tilegrid/pkg/grid.Layout
// [grid.UnmarshalLayout]: github.com/matzehuels/tilegrid/pkg/grid.UnmarshalLayout
package sink
