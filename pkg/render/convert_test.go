package render

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/tilegrid/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestConvertWithoutRsvg(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if Available() {
		t.Fatal("Available() = true with empty PATH")
	}

	tests := []struct {
		name string
		fn   func() ([]byte, error)
	}{
		{"pdf", func() ([]byte, error) { return ToPDF(context.Background(), []byte(tinySVG)) }},
		{"png", func() ([]byte, error) { return ToPNG(context.Background(), []byte(tinySVG), 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("error = %v, want UNSUPPORTED", err)
			}
		})
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	out, err := ToPNG(context.Background(), []byte(tinySVG), 1)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if len(out) < 8 || string(out[1:4]) != "PNG" {
		t.Errorf("ToPNG output is not a PNG (len %d)", len(out))
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	out, err := ToPDF(context.Background(), []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if len(out) < 5 || string(out[:5]) != "%PDF-" {
		t.Errorf("ToPDF output is not a PDF")
	}
}

// fakeConverter writes a shell script standing in for rsvg-convert.
func fakeConverter(t *testing.T, script string) Converter {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	path := filepath.Join(t.TempDir(), "fake-rsvg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return Converter{Binary: path, Timeout: 5 * time.Second}
}

func TestConverterArgs(t *testing.T) {
	conv := fakeConverter(t, `echo "$@"`)

	tests := []struct {
		format string
		scale  float64
		want   string
	}{
		{"png", 2, "-f png -z 2"},
		{"png", 1.5, "-f png -z 1.5"},
		{"pdf", 0, "-f pdf -z 1"},
	}
	for _, tt := range tests {
		out, err := conv.Convert(context.Background(), []byte(tinySVG), tt.format, tt.scale)
		if err != nil {
			t.Fatalf("Convert(%s, %v): %v", tt.format, tt.scale, err)
		}
		if got := strings.TrimSpace(string(out)); got != tt.want {
			t.Errorf("Convert(%s, %v) args = %q, want %q", tt.format, tt.scale, got, tt.want)
		}
	}
}

func TestConverterFailure(t *testing.T) {
	conv := fakeConverter(t, "echo 'bad svg' >&2; exit 3")

	_, err := conv.Convert(context.Background(), []byte(tinySVG), "png", 1)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Fatalf("error = %v, want INTERNAL_ERROR", err)
	}
	if !strings.Contains(errors.UserMessage(err), "bad svg") {
		t.Errorf("message = %q, want stderr included", errors.UserMessage(err))
	}
}

func TestConverterTimeout(t *testing.T) {
	conv := fakeConverter(t, "exec sleep 5")
	conv.Timeout = 50 * time.Millisecond

	_, err := conv.Convert(context.Background(), []byte(tinySVG), "pdf", 1)
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("error = %v, want TIMEOUT", err)
	}
}
