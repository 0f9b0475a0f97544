// Package grid provides the serialization format for solved tile layouts.
//
// A [Layout] is the canonical wire format used for JSON files, API responses,
// the layout cache and the layout store. It carries both the inputs that
// produced it (container, aspect ratio, count, mode) and the solved grid with
// one positioned [Tile] per item, so a layout can be rendered again without
// re-solving.
//
// # Constants
//
// This package is the single source of truth for rendering constants:
//
//	grid.StyleSimple // "simple"
//	grid.StyleCards  // "cards"
//
// # Serialization
//
//	l := grid.FromResult(spec, result, placements)
//	data, _ := grid.MarshalLayout(l)
//	back, _ := grid.UnmarshalLayout(data)
//	grid.WriteLayoutFile(l, "layout.json")
//
// Use [Layout.Result] to recover the [tile.Result] a layout was built from.
package grid
