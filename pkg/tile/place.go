package tile

// Placement is the frame assigned to one item.
type Placement struct {
	// Index is the item's zero-based position in the input sequence.
	Index int `json:"index"`
	// Column and Row locate the item's cell in the grid.
	Column int `json:"column"`
	Row    int `json:"row"`
	// Frame is the full cell.
	Frame Rect `json:"frame"`
	// Content is Frame inset by the placement padding.
	Content Rect `json:"content"`
}

// PlaceOption configures Place.
type PlaceOption func(*placer)

type placer struct {
	padding float64
	dx, dy  float64
	center  *Container
}

// WithPadding insets each tile's content rect by p on every side. Two
// neighbouring tiles end up with 2p between their contents.
func WithPadding(p float64) PlaceOption { return func(pl *placer) { pl.padding = p } }

// WithOffset shifts every frame by (x, y).
func WithOffset(x, y float64) PlaceOption {
	return func(pl *placer) { pl.dx, pl.dy = x, y }
}

// Centered shifts every frame so the packed grid is centered inside c.
// It is applied on top of WithOffset.
func Centered(c Container) PlaceOption { return func(pl *placer) { pl.center = &c } }

// Place assigns a frame to each of count items using grid r, filling cells in
// the given order. Item k lands in column k mod Columns and row k div Columns
// for OrderRowMajor, and in row k mod Rows and column k div Rows for
// OrderColumnMajor. It returns nil for an empty result or count <= 0.
//
// Items beyond r.Capacity() continue past the last row (or column) rather
// than being dropped.
func Place(r Result, count int, order Order, opts ...PlaceOption) []Placement {
	if r.Empty() || count <= 0 {
		return nil
	}
	var pl placer
	for _, opt := range opts {
		opt(&pl)
	}
	dx, dy := pl.dx, pl.dy
	if pl.center != nil {
		inner := r.Inner()
		dx += (pl.center.Width - inner.Width) / 2
		dy += (pl.center.Height - inner.Height) / 2
	}

	out := make([]Placement, count)
	for k := range out {
		col, row := cell(r, k, order)
		frame := Rect{
			X:      dx + float64(col)*r.Tile.Width,
			Y:      dy + float64(row)*r.Tile.Height,
			Width:  r.Tile.Width,
			Height: r.Tile.Height,
		}
		out[k] = Placement{
			Index:   k,
			Column:  col,
			Row:     row,
			Frame:   frame,
			Content: frame.Inset(pl.padding),
		}
	}
	return out
}

func cell(r Result, k int, order Order) (col, row int) {
	if order == OrderColumnMajor {
		return k / r.Rows, k % r.Rows
	}
	return k % r.Columns, k / r.Columns
}

// Arrange solves and places in one call. For ModeBest n is ignored.
func Arrange(c Container, count int, a AspectRatio, mode Mode, n int, order Order, opts ...PlaceOption) (Result, []Placement) {
	r := SolveFixed(c, count, a, mode, n)
	return r, Place(r, count, order, opts...)
}
