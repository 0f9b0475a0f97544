package tile

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func TestSolveTable(t *testing.T) {
	c := Size{Width: 300, Height: 500}

	tests := []struct {
		name    string
		count   int
		columns int
		rows    int
		w, h    float64
		pass    Pass
	}{
		{name: "single tile", count: 1, columns: 1, rows: 1, w: 300, h: 480, pass: PassColumns},
		{name: "seven tiles", count: 7, columns: 3, rows: 3, w: 100, h: 160, pass: PassColumns},
		{name: "ten tiles", count: 10, columns: 3, rows: 4, w: 78.125, h: 125, pass: PassRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(c, tt.count, DefaultAspect)
			if got.Columns != tt.columns || got.Rows != tt.rows {
				t.Errorf("Solve() grid = %dx%d, want %dx%d", got.Columns, got.Rows, tt.columns, tt.rows)
			}
			if !approx(got.Tile.Width, tt.w) || !approx(got.Tile.Height, tt.h) {
				t.Errorf("Solve() tile = %v, want %gx%g", got.Tile, tt.w, tt.h)
			}
			if got.Pass != tt.pass {
				t.Errorf("Solve() pass = %v, want %v", got.Pass, tt.pass)
			}
		})
	}
}

func TestSearchPasses(t *testing.T) {
	c := Size{Width: 300, Height: 500}

	tests := []struct {
		name   string
		search func(Container, int, AspectRatio) Result
		count  int
		want   Result
	}{
		{
			name:   "columns seven",
			search: SearchColumns,
			count:  7,
			want:   Result{Columns: 3, Rows: 3, Tile: Size{100, 160}, Pass: PassColumns},
		},
		{
			name:   "rows seven",
			search: SearchRows,
			count:  7,
			want:   Result{Columns: 2, Rows: 4, Tile: Size{78.125, 125}, Pass: PassRows},
		},
		{
			name:   "columns ten",
			search: SearchColumns,
			count:  10,
			want:   Result{Columns: 4, Rows: 3, Tile: Size{75, 120}, Pass: PassColumns},
		},
		{
			name:   "rows ten",
			search: SearchRows,
			count:  10,
			want:   Result{Columns: 3, Rows: 4, Tile: Size{78.125, 125}, Pass: PassRows},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.search(c, tt.count, DefaultAspect)
			if got.Columns != tt.want.Columns || got.Rows != tt.want.Rows || got.Pass != tt.want.Pass {
				t.Errorf("got %dx%d (%v), want %dx%d (%v)",
					got.Columns, got.Rows, got.Pass, tt.want.Columns, tt.want.Rows, tt.want.Pass)
			}
			if !approx(got.Tile.Width, tt.want.Tile.Width) || !approx(got.Tile.Height, tt.want.Tile.Height) {
				t.Errorf("tile = %v, want %v", got.Tile, tt.want.Tile)
			}
		})
	}
}

func TestSolveDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		c     Container
		count int
		a     AspectRatio
	}{
		{"zero items", Size{300, 500}, 0, DefaultAspect},
		{"negative items", Size{300, 500}, -3, DefaultAspect},
		{"zero width", Size{0, 500}, 4, DefaultAspect},
		{"negative height", Size{300, -1}, 4, DefaultAspect},
		{"zero aspect", Size{300, 500}, 4, AspectRatio{}},
		{"infinite width", Size{math.Inf(1), 500}, 4, DefaultAspect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.c, tt.count, tt.a)
			if !got.Empty() {
				t.Errorf("Solve() = %+v, want empty", got)
			}
			if got != (Result{}) {
				t.Errorf("Solve() = %+v, want zero Result", got)
			}
			if got.Pass != PassNone {
				t.Errorf("Pass = %v, want none", got.Pass)
			}
		})
	}
}

func TestSolveProperties(t *testing.T) {
	containers := []Container{
		{300, 500}, {500, 300}, {1024, 768}, {40, 900}, {900, 40}, {1, 1}, {333.3, 211.7},
	}
	aspects := []AspectRatio{DefaultAspect, {1, 1}, {16, 9}, {3, 2}}

	for _, c := range containers {
		for _, a := range aspects {
			for n := 1; n <= 60; n++ {
				r := Solve(c, n, a)
				if r.Empty() {
					t.Fatalf("Solve(%v, %d, %v) returned empty result", c, n, a)
				}
				if r.Capacity() < n {
					t.Errorf("Solve(%v, %d, %v): %dx%d holds fewer than %d", c, n, a, r.Columns, r.Rows, n)
				}
				if !approx(r.Tile.Height, a.HeightFor(r.Tile.Width)) {
					t.Errorf("Solve(%v, %d, %v): tile %v breaks aspect ratio", c, n, a, r.Tile)
				}
				inner := r.Inner()
				if inner.Width > c.Width*(1+eps) || inner.Height > c.Height*(1+eps) {
					t.Errorf("Solve(%v, %d, %v): inner %v overflows container", c, n, a, inner)
				}
				best := math.Max(SearchColumns(c, n, a).Area(), SearchRows(c, n, a).Area())
				if r.Area() < best {
					t.Errorf("Solve(%v, %d, %v): area %g below best pass %g", c, n, a, r.Area(), best)
				}
			}
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	c := Size{Width: 333.3, Height: 517.9}
	for n := 1; n <= 40; n++ {
		a := Solve(c, n, DefaultAspect)
		b := Solve(c, n, DefaultAspect)
		if a != b {
			t.Errorf("Solve(%d) not repeatable: %+v vs %+v", n, a, b)
		}
	}
}

func TestSolveTieFavorsColumns(t *testing.T) {
	// A square container and square tiles make both searches symmetric.
	c := Size{Width: 400, Height: 400}
	a := AspectRatio{Width: 1, Height: 1}
	for _, n := range []int{1, 4, 9} {
		byCols := SearchColumns(c, n, a)
		byRows := SearchRows(c, n, a)
		if byCols.Area() != byRows.Area() {
			continue
		}
		if got := Solve(c, n, a); got.Pass != PassColumns {
			t.Errorf("Solve(%d) pass = %v on a tie, want columns", n, got.Pass)
		}
	}
}

func TestSolveExactFitStops(t *testing.T) {
	// With four 5:8 tiles in 200x320 a 2x2 grid fills the container exactly.
	// The strict guard treats that as an overflow, so a 3-wide grid is kept.
	c := Size{Width: 200, Height: 320}
	r := Solve(c, 4, DefaultAspect)
	if r.Columns == 2 && r.Rows == 2 {
		t.Fatalf("Solve() took the exact-fit 2x2 grid, want the strict-guard result")
	}
	if r.Capacity() != 6 {
		t.Errorf("Solve() capacity = %d, want 6", r.Capacity())
	}
	if !approx(r.Area(), (200.0/3)*(320.0/3)) {
		t.Errorf("Solve() area = %g, want %g", r.Area(), (200.0/3)*(320.0/3))
	}
}

func TestSolveClampsWideContainer(t *testing.T) {
	// One row of 5:8 tiles in a very wide strip must be clamped to the height.
	c := Size{Width: 2000, Height: 80}
	r := SearchColumns(c, 3, DefaultAspect)
	if r.Columns != 3 || r.Rows != 1 {
		t.Fatalf("SearchColumns() grid = %dx%d, want 3x1", r.Columns, r.Rows)
	}
	if r.Tile.Height != 80 || r.Tile.Width != 50 {
		t.Errorf("SearchColumns() tile = %v, want 50x80", r.Tile)
	}
}

func TestSolveClampsTallContainer(t *testing.T) {
	c := Size{Width: 50, Height: 5000}
	r := SearchRows(c, 3, DefaultAspect)
	if r.Columns != 1 || r.Rows != 3 {
		t.Fatalf("SearchRows() grid = %dx%d, want 1x3", r.Columns, r.Rows)
	}
	if r.Tile.Width != 50 || r.Tile.Height != 80 {
		t.Errorf("SearchRows() tile = %v, want 50x80", r.Tile)
	}
}

func TestSolveShrinkDoesNotAddColumns(t *testing.T) {
	before := Solve(Size{Width: 300, Height: 500}, 10, DefaultAspect)
	after := Solve(Size{Width: 150, Height: 500}, 10, DefaultAspect)
	if after.Columns > before.Columns {
		t.Errorf("columns grew from %d to %d after halving width", before.Columns, after.Columns)
	}
	if after.Area() > before.Area() {
		t.Errorf("tile area grew from %g to %g after halving width", before.Area(), after.Area())
	}
	if after.Columns != 2 || after.Rows != 5 {
		t.Errorf("Solve(150x500, 10) = %dx%d, want 2x5", after.Columns, after.Rows)
	}
}

func TestSolveShrinkBothNeverGrows(t *testing.T) {
	for n := 1; n <= 30; n++ {
		big := Solve(Size{Width: 600, Height: 900}, n, DefaultAspect)
		small := Solve(Size{Width: 300, Height: 450}, n, DefaultAspect)
		if small.Area() > big.Area()*(1+eps) {
			t.Errorf("n=%d: area grew from %g to %g on shrink", n, big.Area(), small.Area())
		}
	}
}
