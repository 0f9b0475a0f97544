// Package pipeline provides the solve → place → render pipeline for tilegrid.
//
// The CLI, the HTTP server and the watch loop all go through this package so
// that a given set of options always produces the same layout and the same
// artifacts, cached the same way.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Layout: shrink the container by the margin, solve the grid (best fit or
//     a fixed axis), place every item and convert to a [grid.Layout]
//  2. Render: produce artifacts (SVG, PNG, PDF, JSON, text) from the layout
//
// Each stage can run on its own and each is cached through a [cache.Cache].
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.Options{
//	    Width: 300, Height: 500, Count: 7,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [grid.Layout]: github.com/matzehuels/tilegrid/pkg/grid.Layout
// [cache.Cache]: github.com/matzehuels/tilegrid/pkg/cache.Cache
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilegrid/pkg/cache"
	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/render/styles"
	"github.com/matzehuels/tilegrid/pkg/tile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Watch
// =============================================================================

const (
	// DefaultWidth and DefaultHeight describe a portrait phone screen.
	DefaultWidth  = 300.0
	DefaultHeight = 500.0

	// DefaultAspect is the 5:8 tile aspect ratio.
	DefaultAspect = "5:8"

	// DefaultStyle is the default visual style.
	DefaultStyle = grid.StyleSimple

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultTextColumns is the canvas width for text output.
	DefaultTextColumns = 60
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Count    int     `json:"count"`
	Aspect   string  `json:"aspect,omitempty"`
	Mode     string  `json:"mode,omitempty"`
	Fixed    int     `json:"fixed,omitempty"`
	Order    string  `json:"order,omitempty"`
	Margin   float64 `json:"margin,omitempty"`
	Padding  float64 `json:"padding,omitempty"`
	Centered bool    `json:"centered,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	Outline  bool     `json:"outline,omitempty"`
	Scale    float64  `json:"scale,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the solved and placed grid.
	Layout grid.Layout

	// LayoutHash is the content hash of the layout, used for artifact keys.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tiles      int
	Capacity   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields. A container with both sides zero is
// treated as unset; one zero side is kept and yields an empty layout.
func (o *Options) SetDefaults() {
	if o.Width == 0 && o.Height == 0 {
		o.Width = DefaultWidth
		o.Height = DefaultHeight
	}
	if o.Aspect == "" {
		o.Aspect = DefaultAspect
	}
	if o.Mode == "" {
		o.Mode = tile.ModeBest.String()
	}
	if o.Order == "" {
		if m, err := tile.ParseMode(o.Mode); err == nil {
			o.Order = m.DefaultOrder().String()
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks every option. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateCount(o.Count); err != nil {
		return err
	}
	if err := errors.ValidateInset("margin", o.Margin); err != nil {
		return err
	}
	if err := errors.ValidateInset("padding", o.Padding); err != nil {
		return err
	}
	if _, err := o.aspect(); err != nil {
		return err
	}
	mode, err := o.mode()
	if err != nil {
		return err
	}
	if mode.Fixed() && o.Fixed <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "mode %s requires fixed > 0", mode)
	}
	if _, err := o.order(); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := styles.Lookup(o.Style); err != nil {
		return err
	}
	return nil
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

func (o *Options) aspect() (tile.AspectRatio, error) {
	a, err := tile.ParseAspectRatio(o.Aspect)
	if err != nil {
		return tile.AspectRatio{}, errors.Wrap(errors.ErrCodeInvalidAspect, err, "invalid aspect %q", o.Aspect)
	}
	return a, nil
}

func (o *Options) mode() (tile.Mode, error) {
	m, err := tile.ParseMode(o.Mode)
	if err != nil {
		return tile.ModeBest, errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid mode %q", o.Mode)
	}
	return m, nil
}

func (o *Options) order() (tile.Order, error) {
	ord, err := tile.ParseOrder(o.Order)
	if err != nil {
		return tile.OrderRowMajor, errors.Wrap(errors.ErrCodeInvalidOrder, err, "invalid order %q", o.Order)
	}
	return ord, nil
}

// Spec returns the layout inputs recorded in the resulting grid.Layout.
func (o *Options) Spec() grid.Spec {
	return grid.Spec{
		Width:    o.Width,
		Height:   o.Height,
		Count:    o.Count,
		Aspect:   o.Aspect,
		Mode:     o.Mode,
		Fixed:    o.Fixed,
		Order:    o.Order,
		Margin:   o.Margin,
		Padding:  o.Padding,
		Centered: o.Centered,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:    o.Width,
		Height:   o.Height,
		Count:    o.Count,
		Aspect:   o.Aspect,
		Mode:     o.Mode,
		Fixed:    o.Fixed,
		Order:    o.Order,
		Margin:   o.Margin,
		Padding:  o.Padding,
		Centered: o.Centered,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering. Scale
// only reaches the PNG sink, so other formats leave it out of the key.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:  format,
		Style:   o.Style,
		Labels:  !o.NoLabels,
		Outline: o.Outline,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
