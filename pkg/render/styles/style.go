package styles

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/matzehuels/tilegrid/pkg/errors"
)

// Style defines the visual appearance of a rendered grid.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderTile writes the SVG for one tile's shape.
	RenderTile(buf *bytes.Buffer, t Tile)
	// RenderLabel writes the SVG for one tile's label.
	RenderLabel(buf *bytes.Buffer, t Tile)
}

// Tile contains everything needed to draw one item.
type Tile struct {
	ID         string  // Stable element id ("tile-<index>")
	Index      int     // Zero-based item index
	Label      string  // Display text
	X, Y, W, H float64 // Full cell
	// Content rect (cell minus padding); equal to the cell when unpadded.
	CX, CY, CW, CH float64
}

// CenterX returns the horizontal center of the content rect.
func (t Tile) CenterX() float64 { return t.CX + t.CW/2 }

// CenterY returns the vertical center of the content rect.
func (t Tile) CenterY() float64 { return t.CY + t.CH/2 }

var registry = map[string]Style{
	"simple": Simple{},
	"cards":  Cards{},
}

// Lookup returns the style registered under name. An empty name selects
// the simple style.
func Lookup(name string) (Style, error) {
	if name == "" {
		return Simple{}, nil
	}
	s, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (valid: %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered style names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func attr(name string, v float64) string {
	return fmt.Sprintf(`%s="%.2f"`, name, v)
}
