package sink

import (
	"encoding/json"

	"github.com/matzehuels/tilegrid/pkg/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	compact bool
}

// WithJSONStyle records the style name in the output so a renderer can
// reproduce the same picture later.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	grid.Layout
	Style string `json:"style,omitempty"`
}

// RenderJSON renders the layout as JSON. The output is a superset of the
// layout format and reads back with grid.UnmarshalLayout.
func RenderJSON(l grid.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Layout: l, Style: r.style}
	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
