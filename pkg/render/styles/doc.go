// Package styles defines how a single tile is drawn in SVG.
//
// Two styles ship with tilegrid:
//
//   - [Simple]: flat outlined rectangles filling the whole cell
//   - [Cards]: rounded, shaded cards drawn in the padded content rect
//
// Both draw the item's 1-based label centered in the tile. Use [Lookup] to
// resolve a style by name from flags or config.
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Cards{}))
package styles
