package grid

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/tilegrid/pkg/tile"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visual styles for rendering.
const (
	StyleSimple = "simple" // flat rectangles
	StyleCards  = "cards"  // padded rounded cards with index labels
)

// =============================================================================
// Layout - Unified Serialization Format
// =============================================================================

// Spec holds the inputs a Layout was solved from.
type Spec struct {
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Count    int     `json:"count" bson:"count"`
	Aspect   string  `json:"aspect" bson:"aspect"`
	Mode     string  `json:"mode" bson:"mode"`
	Fixed    int     `json:"fixed,omitempty" bson:"fixed,omitempty"`
	Order    string  `json:"order" bson:"order"`
	Margin   float64 `json:"margin,omitempty" bson:"margin,omitempty"`
	Padding  float64 `json:"padding,omitempty" bson:"padding,omitempty"`
	Centered bool    `json:"centered,omitempty" bson:"centered,omitempty"`
}

// Layout is a solved grid plus every tile's frame.
//
// An empty layout (Columns == 0) is the no-op result for zero items or a
// degenerate container; it carries the Spec but no tiles.
type Layout struct {
	ID   string `json:"id,omitempty" bson:"_id,omitempty"`
	Spec Spec   `json:"spec" bson:"spec"`

	Pass       string  `json:"pass" bson:"pass"`
	Columns    int     `json:"columns" bson:"columns"`
	Rows       int     `json:"rows" bson:"rows"`
	TileWidth  float64 `json:"tile_width" bson:"tile_width"`
	TileHeight float64 `json:"tile_height" bson:"tile_height"`

	// Inner bounds of the packed grid and its offset inside the frame.
	InnerWidth  float64 `json:"inner_width" bson:"inner_width"`
	InnerHeight float64 `json:"inner_height" bson:"inner_height"`
	OffsetX     float64 `json:"offset_x,omitempty" bson:"offset_x,omitempty"`
	OffsetY     float64 `json:"offset_y,omitempty" bson:"offset_y,omitempty"`

	Tiles []Tile `json:"tiles,omitempty" bson:"tiles,omitempty"`
}

// Tile is one positioned item.
type Tile struct {
	Index  int     `json:"index" bson:"index"`
	Label  string  `json:"label" bson:"label"`
	Column int     `json:"column" bson:"column"`
	Row    int     `json:"row" bson:"row"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	Content tile.Rect `json:"content" bson:"content"`
}

// Frame returns the tile's full cell.
func (t Tile) Frame() tile.Rect {
	return tile.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Empty reports whether the layout places nothing.
func (l Layout) Empty() bool { return l.Columns == 0 || len(l.Tiles) == 0 }

// Frame returns the outer frame size (container plus margins).
func (l Layout) Frame() tile.Size {
	return tile.Size{Width: l.Spec.Width, Height: l.Spec.Height}
}

// Result recovers the solver result the layout was built from.
func (l Layout) Result() tile.Result {
	if l.Columns == 0 {
		return tile.Result{}
	}
	return tile.Result{
		Columns: l.Columns,
		Rows:    l.Rows,
		Tile:    tile.Size{Width: l.TileWidth, Height: l.TileHeight},
		Pass:    parsePass(l.Pass),
	}
}

// FromResult builds a Layout from a solver result and its placements.
// Labels are 1-based to match how items are numbered on screen.
func FromResult(spec Spec, r tile.Result, placements []tile.Placement) Layout {
	l := Layout{Spec: spec, Pass: r.Pass.String()}
	if r.Empty() {
		return l
	}

	inner := r.Inner()
	l.Columns = r.Columns
	l.Rows = r.Rows
	l.TileWidth = r.Tile.Width
	l.TileHeight = r.Tile.Height
	l.InnerWidth = inner.Width
	l.InnerHeight = inner.Height

	l.Tiles = make([]Tile, len(placements))
	for i, p := range placements {
		l.Tiles[i] = Tile{
			Index:   p.Index,
			Label:   fmt.Sprintf("%d", p.Index+1),
			Column:  p.Column,
			Row:     p.Row,
			X:       p.Frame.X,
			Y:       p.Frame.Y,
			Width:   p.Frame.Width,
			Height:  p.Frame.Height,
			Content: p.Content,
		}
	}
	if len(placements) > 0 {
		first := placements[0].Frame
		l.OffsetX = first.X - float64(placements[0].Column)*r.Tile.Width
		l.OffsetY = first.Y - float64(placements[0].Row)*r.Tile.Height
	}
	return l
}

func parsePass(s string) tile.Pass {
	for p := tile.PassNone; p <= tile.PassFixed; p++ {
		if p.String() == s {
			return p
		}
	}
	return tile.PassNone
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// It rejects layouts whose tile list disagrees with the grid.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the structural consistency of l.
func (l Layout) Validate() error {
	if l.Columns < 0 || l.Rows < 0 {
		return fmt.Errorf("layout grid %dx%d is negative", l.Columns, l.Rows)
	}
	if l.Columns == 0 {
		if len(l.Tiles) > 0 {
			return fmt.Errorf("empty layout must not contain tiles")
		}
		return nil
	}
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("layout tile size %gx%g must be positive", l.TileWidth, l.TileHeight)
	}
	if len(l.Tiles) != l.Spec.Count {
		return fmt.Errorf("layout has %d tiles, spec count is %d", len(l.Tiles), l.Spec.Count)
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
