package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	labels     bool
	outline    bool
	background string
}

// WithStyle selects the tile style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithoutLabels omits item labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithOutline draws a dashed outline around the packed grid's inner bounds.
func WithOutline() SVGOption { return func(r *svgRenderer) { r.outline = true } }

// WithBackground fills the frame with color (default none).
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// RenderSVG renders the layout as a standalone SVG document sized to the
// layout's frame. An empty layout renders as an empty frame.
func RenderSVG(l grid.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	frame := l.Frame()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frame.Width, frame.Height, frame.Width, frame.Height)

	r.style.RenderDefs(&buf)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="frame" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			frame.Width, frame.Height, styles.EscapeXML(r.background))
	}

	tiles := buildTiles(l)
	for _, t := range tiles {
		r.style.RenderTile(&buf, t)
	}
	if r.labels {
		for _, t := range tiles {
			r.style.RenderLabel(&buf, t)
		}
	}
	if r.outline && !l.Empty() {
		fmt.Fprintf(&buf, `  <rect class="inner" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#c33" stroke-width="1" stroke-dasharray="4,3"/>`+"\n",
			l.OffsetX, l.OffsetY, l.InnerWidth, l.InnerHeight)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func buildTiles(l grid.Layout) []styles.Tile {
	tiles := make([]styles.Tile, len(l.Tiles))
	for i, t := range l.Tiles {
		tiles[i] = styles.Tile{
			ID:    fmt.Sprintf("tile-%d", t.Index),
			Index: t.Index,
			Label: t.Label,
			X:     t.X, Y: t.Y, W: t.Width, H: t.Height,
			CX: t.Content.X, CY: t.Content.Y, CW: t.Content.Width, CH: t.Content.Height,
		}
	}
	return tiles
}
