package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tilegrid/pkg/errors"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "tilegrid"},
		{"grid.svg", "grid"},
		{"out/grid.json", "out/grid"},
		{"out/grid", "out/grid"},
		{"grid.v2", "grid.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
		wantErr bool
	}{
		{"single with ext", "grid.svg", []string{"svg"}, map[string]string{"svg": "grid.svg"}, false},
		{"single any ext", "out.image", []string{"png"}, map[string]string{"png": "out.image"}, false},
		{"single no output", "", []string{"pdf"}, map[string]string{"pdf": "tilegrid.pdf"}, false},
		{"multiple", "out/grid.svg", []string{"svg", "json"}, map[string]string{"svg": "out/grid.svg", "json": "out/grid.json"}, false},
		{"stdout", "-", []string{"txt"}, map[string]string{"txt": "-"}, false},
		{"stdout multiple", "-", []string{"svg", "txt"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPaths(tt.output, tt.formats)
			if (err != nil) != tt.wantErr {
				t.Fatalf("outputPaths() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	c, status := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "out", "grid")

	if _, err := execute(t, c, "render", "-n", "5", "-f", "svg,json,txt", "-o", base, "--style", "cards"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(svg), `class="tile card"`); n != 5 {
		t.Errorf("svg tiles = %d, want 5", n)
	}

	js, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), `"style": "cards"`) {
		t.Errorf("json missing style: %s", js)
	}

	if _, err := os.Stat(base + ".txt"); err != nil {
		t.Errorf("txt not written: %v", err)
	}

	out := status.String()
	if !strings.Contains(out, "Rendered 5 tiles") || !strings.Contains(out, base+".svg") {
		t.Errorf("status output = %q", out)
	}
}

func TestRenderSingleFile(t *testing.T) {
	c, _ := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "grid.svg")

	if _, err := execute(t, c, "render", "-n", "3", "-o", path, "--no-labels", "--outline"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if strings.Contains(svg, "tile-label") {
		t.Error("--no-labels still drew labels")
	}
	if !strings.Contains(svg, `class="inner"`) {
		t.Error("--outline did not draw the inner bounds")
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	if _, err := execute(t, c, "render", "-f", "gif", "-o", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Error("render -f gif succeeded, want error")
	}
}

func TestRenderOntoDirectory(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := filepath.Join(t.TempDir(), "grid.svg")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, c, "render", "-n", "3", "-o", dir)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("render onto a directory: err = %v, want INVALID_PATH", err)
	}
}
