// Package tile computes grid layouts for fixed-aspect-ratio tiles.
//
// Given a container size, an item count and an aspect ratio, [Solve] finds the
// grid (columns × rows) and tile size that makes the tiles as large as possible
// while every item still fits inside the container.
//
// # Search
//
// Two greedy searches run independently:
//
//   - [SearchColumns] starts with every item in a single row and trades
//     columns for rows while the grid stays shorter than the container.
//   - [SearchRows] starts with every item in a single column and trades
//     rows for columns while the grid stays narrower than the container.
//
// Each search keeps the last candidate that was verified to fit before the
// next step was taken. [Solve] returns whichever candidate has the larger tile
// area; the column search wins ties.
//
// Both loops stop on an exact edge-to-edge fit (the guards are strict "<"),
// so a grid that would fill the container exactly is not taken as the next
// step.
//
// # Fixed axis
//
// [SolveFixed] skips the search and pins either the column count or the row
// count to a caller-supplied value.
//
// # Placement
//
// [Place] turns a [Result] into per-item frames in row-major or column-major
// order:
//
//	r := tile.Solve(tile.Size{Width: 300, Height: 500}, 7, tile.DefaultAspect)
//	for _, p := range tile.Place(r, 7, tile.OrderRowMajor) {
//	    fmt.Println(p.Index, p.Frame)
//	}
//
// Everything in this package is a pure function of its inputs and safe for
// concurrent use.
package tile
