package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/tilegrid/pkg/errors"
)

func testTile() Tile {
	return Tile{
		ID: "tile-0", Index: 0, Label: "1",
		X: 10, Y: 20, W: 100, H: 160,
		CX: 15, CY: 25, CW: 90, CH: 150,
	}
}

func TestSimpleRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderDefs(&buf)
	if buf.Len() != 0 {
		t.Errorf("RenderDefs() wrote %d bytes, want 0", buf.Len())
	}
}

func TestSimpleRenderTile(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderTile(&buf, testTile())
	output := buf.String()

	for _, want := range []string{
		`<rect`,
		`id="tile-0"`,
		`class="tile"`,
		`x="10.00"`,
		`y="20.00"`,
		`width="100.00"`,
		`height="160.00"`,
		`fill="white"`,
		`stroke="#333"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderTile() output missing %q\nGot: %s", want, output)
		}
	}
}

func TestCardsRenderTileUsesContentRect(t *testing.T) {
	var buf bytes.Buffer
	Cards{}.RenderTile(&buf, testTile())
	output := buf.String()

	for _, want := range []string{
		`class="tile card"`,
		`x="15.00"`,
		`y="25.00"`,
		`width="90.00"`,
		`height="150.00"`,
		`filter="url(#card-shadow)"`,
		`fill="` + CardFill(0) + `"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderTile() output missing %q\nGot: %s", want, output)
		}
	}

	var defs bytes.Buffer
	Cards{}.RenderDefs(&defs)
	if !strings.Contains(defs.String(), `id="card-shadow"`) {
		t.Error("Cards.RenderDefs() should define the shadow filter")
	}
}

func TestRenderLabel(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		tile     Tile
		contains []string
		empty    bool
	}{
		{
			name:  "simple",
			style: Simple{},
			tile:  testTile(),
			contains: []string{
				`<text class="tile-label"`,
				`data-tile="tile-0"`,
				`x="60.00"`,
				`y="100.00"`,
				`text-anchor="middle"`,
				`>1</text>`,
			},
		},
		{
			name:     "cards",
			style:    Cards{},
			tile:     testTile(),
			contains: []string{`font-weight="bold"`, `>1</text>`},
		},
		{
			name:  "escaped label",
			style: Simple{},
			tile: Tile{
				ID: "tile-1", Label: "<b>",
				W: 100, H: 100, CW: 100, CH: 100,
			},
			contains: []string{`&lt;b&gt;`},
		},
		{
			name:  "tiny tile has no label",
			style: Simple{},
			tile:  Tile{ID: "tile-2", Label: "3", W: 4, H: 4, CW: 4, CH: 4},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.style.RenderLabel(&buf, tt.tile)
			output := buf.String()
			if tt.empty {
				if output != "" {
					t.Errorf("RenderLabel() = %q, want empty", output)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("RenderLabel() output missing %q\nGot: %s", want, output)
				}
			}
		})
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want float64
	}{
		{"clamped to max", Tile{Label: "1", CW: 1000, CH: 1000}, fontSizeMax},
		{"clamped to min", Tile{Label: "1", CW: 2, CH: 2}, fontSizeMin},
		{"height bound", Tile{Label: "1", CW: 100, CH: 40}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontSize(tt.tile); got != tt.want {
				t.Errorf("FontSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    Style
		wantErr bool
	}{
		{"", Simple{}, false},
		{"simple", Simple{}, false},
		{"cards", Cards{}, false},
		{"handdrawn", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("Lookup(%q) error code = %v", tt.name, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %T, want %T", tt.name, got, tt.want)
			}
		})
	}
}

func TestCardFillStable(t *testing.T) {
	for i := 0; i < 20; i++ {
		if CardFill(i) != CardFill(i) {
			t.Fatalf("CardFill(%d) not deterministic", i)
		}
	}
}
