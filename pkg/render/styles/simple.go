package styles

import (
	"bytes"
	"fmt"
)

// Simple draws each cell as a flat outlined rectangle.
type Simple struct{}

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderTile(buf *bytes.Buffer, t Tile) {
	r := min(t.W, t.H) * 0.04
	fmt.Fprintf(buf, `  <rect id="%s" class="tile" %s %s %s %s rx="%.2f" ry="%.2f" fill="white" stroke="#333" stroke-width="1"/>`+"\n",
		EscapeXML(t.ID), attr("x", t.X), attr("y", t.Y), attr("width", t.W), attr("height", t.H), r, r)
}

func (Simple) RenderLabel(buf *bytes.Buffer, t Tile) {
	if !ShouldLabel(t) {
		return
	}
	fmt.Fprintf(buf, `  <text class="tile-label" data-tile="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="Helvetica,Arial,sans-serif" font-size="%.1f" fill="#333">%s</text>`+"\n",
		EscapeXML(t.ID), t.CenterX(), t.CenterY(), FontSize(t), EscapeXML(t.Label))
}
