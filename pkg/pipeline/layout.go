package pipeline

import (
	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/tile"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout solves and places the grid described by opts.
//
// The margin is removed from every side of the container before solving and
// every frame is then shifted back by it. With Centered the packed grid is
// centered inside the remaining area. Degenerate input produces an empty
// layout, not an error; only invalid options fail.
func GenerateLayout(opts Options) (grid.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return grid.Layout{}, err
	}
	a, _ := opts.aspect()
	mode, _ := opts.mode()
	order, _ := opts.order()

	inner := tile.Container{Width: opts.Width, Height: opts.Height}.Shrink(opts.Margin)

	placeOpts := []tile.PlaceOption{
		tile.WithPadding(opts.Padding),
		tile.WithOffset(opts.Margin, opts.Margin),
	}
	if opts.Centered {
		placeOpts = append(placeOpts, tile.Centered(inner))
	}

	r, placements := tile.Arrange(inner, opts.Count, a, mode, opts.Fixed, order, placeOpts...)
	return grid.FromResult(opts.Spec(), r, placements), nil
}
