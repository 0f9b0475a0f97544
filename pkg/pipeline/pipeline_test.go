package pipeline

import (
	"testing"

	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/grid"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"txt", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, PNG,,json ")
	want := []string{"svg", "png", "json"}
	if len(got) != len(want) {
		t.Fatalf("ParseFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()

	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("container = %gx%g, want %gx%g", o.Width, o.Height, DefaultWidth, DefaultHeight)
	}
	if o.Aspect != "5:8" || o.Mode != "best" || o.Order != "row" {
		t.Errorf("aspect/mode/order = %s/%s/%s, want 5:8/best/row", o.Aspect, o.Mode, o.Order)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Style != DefaultStyle || o.Scale != DefaultScale || o.Logger == nil {
		t.Error("render defaults not applied")
	}

	// Fixed rows fill column-major by default.
	rows := Options{Mode: "rows", Fixed: 2}
	rows.SetDefaults()
	if rows.Order != "column" {
		t.Errorf("rows mode Order = %q, want column", rows.Order)
	}

	// One zero side is kept: it is a degenerate container, not an unset one.
	flat := Options{Width: 300}
	flat.SetDefaults()
	if flat.Height != 0 {
		t.Errorf("Height = %g, want 0", flat.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"defaults", Options{Count: 7}, ""},
		{"zero count", Options{}, ""},
		{"negative width", Options{Width: -1, Height: 10}, errors.ErrCodeInvalidDimensions},
		{"negative count", Options{Count: -1}, errors.ErrCodeInvalidCount},
		{"too many", Options{Count: errors.MaxCount + 1}, errors.ErrCodeInvalidCount},
		{"bad aspect", Options{Aspect: "wide"}, errors.ErrCodeInvalidAspect},
		{"zero aspect", Options{Aspect: "0:8"}, errors.ErrCodeInvalidAspect},
		{"bad mode", Options{Mode: "spiral"}, errors.ErrCodeInvalidMode},
		{"fixed without n", Options{Mode: "columns"}, errors.ErrCodeInvalidInput},
		{"bad order", Options{Order: "diagonal"}, errors.ErrCodeInvalidOrder},
		{"negative padding", Options{Padding: -1}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{Style: "handdrawn"}, errors.ErrCodeInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Errorf("ValidateAndSetDefaults() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGenerateLayout(t *testing.T) {
	l, err := GenerateLayout(Options{Count: 7})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if l.Columns != 3 || l.Rows != 3 {
		t.Errorf("grid = %dx%d, want 3x3", l.Columns, l.Rows)
	}
	if !approx(l.TileWidth, 100) || !approx(l.TileHeight, 160) {
		t.Errorf("tile = %gx%g, want 100x160", l.TileWidth, l.TileHeight)
	}
	if len(l.Tiles) != 7 || l.Spec.Count != 7 {
		t.Errorf("tiles = %d, want 7", len(l.Tiles))
	}
}

func TestGenerateLayoutMargin(t *testing.T) {
	l, err := GenerateLayout(Options{Count: 7, Margin: 10, Centered: true})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if l.Columns != 3 || l.Rows != 3 {
		t.Fatalf("grid = %dx%d, want 3x3", l.Columns, l.Rows)
	}
	// 280x480 inner area, 3 columns of 93.33 wide tiles, 448 tall grid.
	first := l.Tiles[0]
	if !approx(first.X, 10) || !approx(first.Y, 26) {
		t.Errorf("first tile at (%g,%g), want (10,26)", first.X, first.Y)
	}
	for _, tl := range l.Tiles {
		if tl.X < 10-1e-9 || tl.Y < 10-1e-9 || tl.X+tl.Width > 290+1e-9 || tl.Y+tl.Height > 490+1e-9 {
			t.Errorf("tile %d %+v leaves the margin box", tl.Index, tl.Frame())
		}
	}
}

func TestGenerateLayoutFixed(t *testing.T) {
	l, err := GenerateLayout(Options{Count: 7, Mode: "columns", Fixed: 2})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if l.Columns != 2 || l.Rows != 4 {
		t.Errorf("grid = %dx%d, want 2x4", l.Columns, l.Rows)
	}
	if l.Pass != "fixed" {
		t.Errorf("pass = %q, want fixed", l.Pass)
	}
	if l.InnerHeight > 500+1e-9 || l.InnerWidth > 300+1e-9 {
		t.Errorf("inner %gx%g overflows the container", l.InnerWidth, l.InnerHeight)
	}
}

func TestGenerateLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero count", Options{Count: 0}},
		{"zero height", Options{Width: 300, Count: 4}},
		{"margin eats container", Options{Width: 10, Height: 10, Margin: 5, Count: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := GenerateLayout(tt.opts)
			if err != nil {
				t.Fatalf("GenerateLayout: %v", err)
			}
			if !l.Empty() {
				t.Errorf("layout = %dx%d with %d tiles, want empty", l.Columns, l.Rows, len(l.Tiles))
			}
		})
	}
}

func TestTextCanvas(t *testing.T) {
	l := grid.Layout{Spec: grid.Spec{Width: 300, Height: 500}}
	cols, rows := TextCanvas(l, 60)
	if cols != 60 || rows != 50 {
		t.Errorf("TextCanvas() = %d,%d, want 60,50", cols, rows)
	}
	if _, rows := TextCanvas(grid.Layout{}, 60); rows != 1 {
		t.Errorf("TextCanvas(empty) rows = %d, want 1", rows)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
