package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.5
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 48.0
)

// FontSize picks a label size that fits the tile's content rect.
func FontSize(t Tile) float64 {
	return fontSizeFor(t.CW, t.CH, len(t.Label))
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// ShouldLabel reports whether a tile is large enough for a readable label.
func ShouldLabel(t Tile) bool {
	return t.CH >= fontSizeMin*1.5 && t.CW >= fontSizeMin
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
