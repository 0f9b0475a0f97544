// Package pkg provides the core libraries for tilegrid.
//
// # Overview
//
// Tilegrid packs a number of equally sized, fixed-aspect-ratio tiles into a
// rectangular container so that every tile fits and the tiles are as large as
// possible. The pkg directory is organized into four areas:
//
//  1. [tile] - The solver: grid search, fixed-axis mode, placement
//  2. [grid] - The serializable layout (solved grid plus every tile frame)
//  3. [pipeline] - Orchestration (solve → place → render) with caching
//  4. Infrastructure: [cache], [store], [config], [watch], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	container size, count, aspect ratio
//	         ↓
//	    [tile] package (Solve or SolveFixed, then Place)
//	         ↓
//	    [grid] package (Layout with 1-based labels)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON, text)
//
// # Quick Start
//
// Solve and place seven 5:8 tiles in a 300 x 500 container:
//
//	c := tile.Container{Width: 300, Height: 500}
//	r := tile.Solve(c, 7, tile.DefaultAspect)
//	// r.Columns == 3, r.Rows == 3, r.Tile == {100, 160}
//	frames := tile.Place(r, 7, tile.OrderRowMajor)
//
// Or go through the pipeline, which validates, caches and renders:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Count: 7, Formats: []string{"svg"}})
//
// # Main Packages
//
// [tile] - Pure geometry. [tile.Solve] runs a columns-to-rows and a
// rows-to-columns search and keeps the larger tile; [tile.SolveFixed] pins
// one axis. [tile.Place] turns a result into frames in row- or column-major
// order.
//
// [grid] - [grid.Layout] is what every consumer sees: the CLI prints it, the
// server stores and returns it, the sinks draw it.
//
// [render] - SVG to PDF/PNG conversion. [render/sink] holds the output
// formats and [render/styles] the SVG tile styles.
//
// [cache] - File and Redis caches keyed by a hash of the inputs.
//
// [store] - Saved layouts by ID: memory, file and MongoDB backends.
//
// [config] - TOML/YAML settings shared by the CLI and the watch loop.
//
// [errors] - Coded errors; the CLI and HTTP server map codes to exit codes
// and statuses.
//
// [tile]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/tile
// [tile.Solve]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/tile#Solve
// [tile.SolveFixed]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/tile#SolveFixed
// [tile.Place]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/tile#Place
// [grid]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/grid
// [grid.Layout]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/grid#Layout
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/render/styles
// [cache]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/config
// [watch]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/watch
// [observability]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tilegrid/pkg/errors
package pkg
