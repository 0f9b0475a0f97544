package tile

// SolveFixed lays out count tiles with one axis pinned to n: n columns for
// ModeFixedColumns, n rows for ModeFixedRows. The pinned axis never exceeds
// count. The tile is sized to fill the pinned axis and then clamped if the
// resulting grid would overflow the other axis.
//
// ModeBest falls through to Solve and ignores n. Degenerate input, including
// n <= 0 for a fixed mode, yields the zero Result.
func SolveFixed(c Container, count int, a AspectRatio, mode Mode, n int) Result {
	if mode == ModeBest {
		return Solve(c, count, a)
	}
	if count <= 0 || n <= 0 || !c.Valid() || !a.Valid() {
		return Result{}
	}
	n = min(n, count)

	r := Result{Pass: PassFixed}
	switch mode {
	case ModeFixedColumns:
		r.Columns = n
		r.Rows = ceilDiv(count, n)
		r.Tile.Width = c.Width / float64(r.Columns)
		r.Tile.Height = a.HeightFor(r.Tile.Width)
		if r.Tile.Height*float64(r.Rows) > c.Height {
			r.Tile.Height = c.Height / float64(r.Rows)
			r.Tile.Width = a.WidthFor(r.Tile.Height)
		}
	case ModeFixedRows:
		r.Rows = n
		r.Columns = ceilDiv(count, n)
		r.Tile.Height = c.Height / float64(r.Rows)
		r.Tile.Width = a.WidthFor(r.Tile.Height)
		if r.Tile.Width*float64(r.Columns) > c.Width {
			r.Tile.Width = c.Width / float64(r.Columns)
			r.Tile.Height = a.HeightFor(r.Tile.Width)
		}
	default:
		return Result{}
	}
	return r
}
