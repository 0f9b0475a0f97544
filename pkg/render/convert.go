package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/tilegrid/pkg/errors"
)

// Converter shells out to rsvg-convert (librsvg).
type Converter struct {
	// Binary is the executable name or path. Empty means "rsvg-convert".
	Binary string
	// Timeout bounds one conversion. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// DefaultConverter is used by [ToPNG] and [ToPDF].
var DefaultConverter = Converter{Timeout: 30 * time.Second}

func (c Converter) binary() string {
	if c.Binary == "" {
		return "rsvg-convert"
	}
	return c.Binary
}

// Available reports whether the converter binary can be found.
func (c Converter) Available() bool {
	_, err := exec.LookPath(c.binary())
	return err == nil
}

// Convert turns svg into format ("png" or "pdf"), zoomed by scale. A scale
// of zero or less is treated as 1.
func (c Converter) Convert(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	if !c.Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}
	if scale <= 0 {
		scale = 1
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.binary(), "-f", format, "-z", strconv.FormatFloat(scale, 'f', -1, 64))
	cmd.Stdin = bytes.NewReader(svg)
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "%s conversion", format)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// ToPNG converts svg to PNG; scale 2 doubles the pixel size.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return DefaultConverter.Convert(ctx, svg, "png", scale)
}

// ToPDF converts svg to PDF at its natural size.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return DefaultConverter.Convert(ctx, svg, "pdf", 1)
}

// Available reports whether rsvg-convert is on PATH.
func Available() bool { return DefaultConverter.Available() }
