package tile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is a width/height pair in user units (points, pixels, cells).
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Container is the rectangular space tiles are packed into.
type Container = Size

// Valid reports whether both dimensions are positive and finite.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0 && !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Area returns Width × Height.
func (s Size) Area() float64 { return s.Width * s.Height }

// Shrink returns s reduced by d on every side. Dimensions never go below zero.
func (s Size) Shrink(d float64) Size {
	return Size{Width: math.Max(0, s.Width-2*d), Height: math.Max(0, s.Height-2*d)}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// AspectRatio is a width:height proportion, e.g. 5:8 for portrait cards.
type AspectRatio struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultAspect is the 5:8 portrait ratio (height = width × 8/5).
var DefaultAspect = AspectRatio{Width: 5, Height: 8}

// Valid reports whether both terms are positive and finite.
func (a AspectRatio) Valid() bool {
	return Size(a).Valid()
}

// Ratio returns width divided by height.
func (a AspectRatio) Ratio() float64 { return a.Width / a.Height }

// HeightFor returns the tile height matching width w.
func (a AspectRatio) HeightFor(w float64) float64 { return w * a.Height / a.Width }

// WidthFor returns the tile width matching height h.
func (a AspectRatio) WidthFor(h float64) float64 { return h * a.Width / a.Height }

func (a AspectRatio) String() string {
	return strconv.FormatFloat(a.Width, 'g', -1, 64) + ":" + strconv.FormatFloat(a.Height, 'g', -1, 64)
}

// ParseAspectRatio parses "W:H" (or "W/H") into an AspectRatio.
func ParseAspectRatio(s string) (AspectRatio, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "/"
	}
	w, h, ok := strings.Cut(strings.TrimSpace(s), sep)
	if !ok {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: want W:H", s)
	}
	wf, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: width: %w", s, err)
	}
	hf, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: height: %w", s, err)
	}
	a := AspectRatio{Width: wf, Height: hf}
	if !a.Valid() {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: terms must be positive", s)
	}
	return a, nil
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Inset shrinks r by d on every side. A rect smaller than 2d collapses to its center.
func (r Rect) Inset(d float64) Rect {
	w := r.Width - 2*d
	h := r.Height - 2*d
	if w < 0 || h < 0 {
		return Rect{X: r.CenterX(), Y: r.CenterY()}
	}
	return Rect{X: r.X + d, Y: r.Y + d, Width: w, Height: h}
}
