package tile

// Solve packs count tiles of aspect ratio a into container c, maximizing tile
// area. It returns the zero Result when count is zero or c or a is degenerate;
// callers should skip applying the layout in that case.
//
// Both searches run and the one with the strictly larger tile area wins. On a
// tie the column search is kept.
func Solve(c Container, count int, a AspectRatio) Result {
	if count <= 0 || !c.Valid() || !a.Valid() {
		return Result{}
	}
	byCols := SearchColumns(c, count, a)
	byRows := SearchRows(c, count, a)
	if byRows.Area() > byCols.Area() {
		return byRows
	}
	return byCols
}

// SearchColumns runs the columns-to-rows search. It starts with every item in
// one row, clamping the tile to the container height if the row would be too
// tall, then removes one column at a time while the grid stays strictly
// shorter than the container. The returned candidate is the last one that
// passed that check.
func SearchColumns(c Container, count int, a AspectRatio) Result {
	if count <= 0 || !c.Valid() || !a.Valid() {
		return Result{}
	}

	cur := Result{Columns: count, Rows: 1, Pass: PassColumns}
	cur.Tile.Width = c.Width / float64(cur.Columns)
	cur.Tile.Height = a.HeightFor(cur.Tile.Width)
	if cur.Tile.Height > c.Height {
		cur.Tile.Height = c.Height
		cur.Tile.Width = a.WidthFor(cur.Tile.Height)
	}

	last := cur
	for cur.Tile.Height*float64(cur.Rows) < c.Height && cur.Columns > 1 {
		last = cur
		cur.Columns--
		cur.Rows = ceilDiv(count, cur.Columns)
		cur.Tile.Width = c.Width / float64(cur.Columns)
		cur.Tile.Height = a.HeightFor(cur.Tile.Width)
	}
	return last
}

// SearchRows is the transpose of SearchColumns: it starts with every item in
// one column and removes one row at a time while the grid stays strictly
// narrower than the container.
func SearchRows(c Container, count int, a AspectRatio) Result {
	if count <= 0 || !c.Valid() || !a.Valid() {
		return Result{}
	}

	cur := Result{Columns: 1, Rows: count, Pass: PassRows}
	cur.Tile.Height = c.Height / float64(cur.Rows)
	cur.Tile.Width = a.WidthFor(cur.Tile.Height)
	if cur.Tile.Width > c.Width {
		cur.Tile.Width = c.Width / float64(cur.Columns)
		cur.Tile.Height = a.HeightFor(cur.Tile.Width)
	}

	last := cur
	for cur.Tile.Width*float64(cur.Columns) < c.Width && cur.Rows > 1 {
		last = cur
		cur.Rows--
		cur.Columns = ceilDiv(count, cur.Rows)
		cur.Tile.Height = c.Height / float64(cur.Rows)
		cur.Tile.Width = a.WidthFor(cur.Tile.Height)
	}
	return last
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
