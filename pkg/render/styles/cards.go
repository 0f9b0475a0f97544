package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
)

// Cards draws each item as a rounded, shaded card inside its padded content
// rect, leaving the gutter between cards visible.
type Cards struct{}

const cardsDefs = `  <defs>
    <filter id="card-shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="1" stdDeviation="1.2" flood-color="#000" flood-opacity="0.25"/>
    </filter>
  </defs>
`

func (Cards) RenderDefs(buf *bytes.Buffer) { buf.WriteString(cardsDefs) }

func (Cards) RenderTile(buf *bytes.Buffer, t Tile) {
	r := min(t.CW, t.CH) * 0.08
	fmt.Fprintf(buf, `  <rect id="%s" class="tile card" %s %s %s %s rx="%.2f" ry="%.2f" fill="%s" stroke="#555" stroke-width="0.75" filter="url(#card-shadow)"/>`+"\n",
		EscapeXML(t.ID), attr("x", t.CX), attr("y", t.CY), attr("width", t.CW), attr("height", t.CH), r, r, CardFill(t.Index))
}

func (Cards) RenderLabel(buf *bytes.Buffer, t Tile) {
	if !ShouldLabel(t) {
		return
	}
	fmt.Fprintf(buf, `  <text class="tile-label" data-tile="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="Helvetica,Arial,sans-serif" font-weight="bold" font-size="%.1f" fill="#222">%s</text>`+"\n",
		EscapeXML(t.ID), t.CenterX(), t.CenterY(), FontSize(t), EscapeXML(t.Label))
}

// cardPalette holds light fills that keep dark labels readable.
var cardPalette = [...]string{
	"#f2e8cf", "#dde5b6", "#cde7f0", "#f6d6d6",
	"#e4d9f5", "#fde2b8", "#d3f0e0", "#ececec",
}

// CardFill returns a stable fill color for item index i.
func CardFill(i int) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d", i)
	return cardPalette[h.Sum32()%uint32(len(cardPalette))]
}
