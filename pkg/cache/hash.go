package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey identifies a solved and placed layout.
	LayoutKey(opts LayoutKeyOpts) string
	// ArtifactKey identifies one rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists every input that can change a layout.
type LayoutKeyOpts struct {
	Width    float64 `json:"w"`
	Height   float64 `json:"h"`
	Count    int     `json:"n"`
	Aspect   string  `json:"aspect"`
	Mode     string  `json:"mode"`
	Fixed    int     `json:"fixed,omitempty"`
	Order    string  `json:"order,omitempty"`
	Margin   float64 `json:"margin,omitempty"`
	Padding  float64 `json:"padding,omitempty"`
	Centered bool    `json:"centered,omitempty"`
}

// ArtifactKeyOpts lists the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	Style   string  `json:"style,omitempty"`
	Labels  bool    `json:"labels,omitempty"`
	Outline bool    `json:"outline,omitempty"`
	Scale   float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
