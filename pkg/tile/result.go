package tile

// Pass identifies which search produced a Result.
type Pass int

const (
	PassNone    Pass = iota // degenerate input, nothing to lay out
	PassColumns             // columns-to-rows search
	PassRows                // rows-to-columns search
	PassFixed               // constrained-axis layout
)

var passNames = [...]string{"none", "columns", "rows", "fixed"}

func (p Pass) String() string {
	if p < 0 || int(p) >= len(passNames) {
		return "unknown"
	}
	return passNames[p]
}

// Result is a solved grid: how many columns and rows, and the size of one tile.
// The zero Result is the no-op layout returned for degenerate input.
type Result struct {
	Columns int  `json:"columns"`
	Rows    int  `json:"rows"`
	Tile    Size `json:"tile"`
	Pass    Pass `json:"pass"`
}

// Empty reports whether r describes no layout at all.
func (r Result) Empty() bool {
	return r.Columns <= 0 || r.Rows <= 0 || r.Tile.Width <= 0 || r.Tile.Height <= 0
}

// Area returns the area of a single tile.
func (r Result) Area() float64 { return r.Tile.Area() }

// Capacity returns Columns × Rows.
func (r Result) Capacity() int { return r.Columns * r.Rows }

// Inner returns the bounds occupied by the packed grid.
func (r Result) Inner() Size {
	return Size{
		Width:  float64(r.Columns) * r.Tile.Width,
		Height: float64(r.Rows) * r.Tile.Height,
	}
}
