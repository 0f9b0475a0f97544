package sink

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tilegrid/pkg/grid"
)

// TextOption configures terminal rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	frame lipgloss.Style
	tiles lipgloss.Style
}

// WithFrameStyle overrides the lipgloss style of the outer frame.
func WithFrameStyle(s lipgloss.Style) TextOption { return func(r *textRenderer) { r.frame = s } }

// WithTileStyle overrides the lipgloss style applied to the tile canvas.
func WithTileStyle(s lipgloss.Style) TextOption { return func(r *textRenderer) { r.tiles = s } }

var (
	defaultFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))
	defaultTileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// RenderText draws the layout scaled into a cols x rows character canvas,
// each tile as a box with its label centered, inside a rounded frame. The
// result is rows+2 lines tall. Terminal cells are roughly twice as tall as
// they are wide, so callers usually pass rows close to cols/2 for a square
// container.
func RenderText(l grid.Layout, cols, rows int, opts ...TextOption) string {
	r := textRenderer{frame: defaultFrameStyle, tiles: defaultTileStyle}
	for _, opt := range opts {
		opt(&r)
	}
	if cols <= 0 || rows <= 0 {
		return ""
	}

	c := newCanvas(cols, rows)
	frame := l.Frame()
	if frame.Valid() {
		sx := float64(cols) / frame.Width
		sy := float64(rows) / frame.Height
		for _, t := range l.Tiles {
			c.box(
				int(math.Floor(t.X*sx)), int(math.Floor(t.Y*sy)),
				int(math.Ceil((t.X+t.Width)*sx))-1, int(math.Ceil((t.Y+t.Height)*sy))-1,
				t.Label,
			)
		}
	}
	return r.frame.Render(r.tiles.Render(c.String()))
}

type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", w))
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *canvas) box(x0, y0, x1, y1 int, label string) {
	x1 = min(x1, c.w-1)
	y1 = min(y1, c.h-1)
	if x0 >= c.w || y0 >= c.h {
		return
	}
	if x1-x0 < 1 || y1-y0 < 1 {
		c.set(x0, y0, '▪')
		return
	}

	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')

	inner := x1 - x0 - 1
	if y1-y0 < 2 || inner < len(label) {
		return
	}
	lx := x0 + 1 + (inner-len(label))/2
	ly := y0 + (y1-y0)/2
	for i, ch := range label {
		c.set(lx+i, ly, ch)
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
