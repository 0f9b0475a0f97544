package tile

import "fmt"

// Mode selects how the grid shape is chosen.
type Mode int

const (
	// ModeBest searches both directions and keeps the larger tiles.
	ModeBest Mode = iota
	// ModeFixedColumns always uses a caller-supplied number of columns.
	ModeFixedColumns
	// ModeFixedRows always uses a caller-supplied number of rows.
	ModeFixedRows
)

var modeNames = map[Mode]string{
	ModeBest:         "best",
	ModeFixedColumns: "columns",
	ModeFixedRows:    "rows",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// Fixed reports whether m pins one axis.
func (m Mode) Fixed() bool { return m == ModeFixedColumns || m == ModeFixedRows }

// DefaultOrder returns the fill order that matches the pinned axis: fixed rows
// fill column by column, everything else fills row by row.
func (m Mode) DefaultOrder() Order {
	if m == ModeFixedRows {
		return OrderColumnMajor
	}
	return OrderRowMajor
}

// ParseMode parses "best", "columns" or "rows". The empty string is ModeBest.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "best", "auto":
		return ModeBest, nil
	case "columns", "cols":
		return ModeFixedColumns, nil
	case "rows":
		return ModeFixedRows, nil
	}
	return ModeBest, fmt.Errorf("invalid mode %q (must be best, columns or rows)", s)
}

// Order is the sequence in which items fill grid cells.
type Order int

const (
	// OrderRowMajor fills a row left to right, then wraps to the next row.
	OrderRowMajor Order = iota
	// OrderColumnMajor fills a column top to bottom, then wraps to the next column.
	OrderColumnMajor
)

func (o Order) String() string {
	switch o {
	case OrderRowMajor:
		return "row"
	case OrderColumnMajor:
		return "column"
	}
	return "unknown"
}

// ParseOrder parses "row" or "column". The empty string is OrderRowMajor.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "row", "row-major":
		return OrderRowMajor, nil
	case "column", "col", "column-major":
		return OrderColumnMajor, nil
	}
	return OrderRowMajor, fmt.Errorf("invalid order %q (must be row or column)", s)
}
