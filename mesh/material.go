package mesh

import (
	"math"
	"strings"

	"github.com/gogpu/gputypes"
)

// Side selects which faces of the fill are rendered.
type Side uint8

const (
	// SideFront renders front faces only.
	SideFront Side = iota
	SideBack
	SideDouble
)

// String returns the attribute spelling of the side.
func (s Side) String() string {
	switch s {
	case SideBack:
		return "back"
	case SideDouble:
		return "double"
	default:
		return "front"
	}
}

// ParseSide parses a side name. An empty string is the default, front;
// any other unrecognised value renders both sides.
func ParseSide(s string) Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "front":
		return SideFront
	case "back":
		return SideBack
	default:
		return SideDouble
	}
}

// CullMode returns the face culling that realises the side with
// counter-clockwise front faces.
func (s Side) CullMode() gputypes.CullMode {
	switch s {
	case SideFront:
		return gputypes.CullModeBack
	case SideBack:
		return gputypes.CullModeFront
	default:
		return gputypes.CullModeNone
	}
}

// Material describes how a mesh is shaded.
type Material struct {
	Color   gputypes.Color
	Opacity float64
	Side    Side
}

// NewMaterial creates a material, clamping opacity to [0, 1].
func NewMaterial(color gputypes.Color, opacity float64, side Side) Material {
	switch {
	case opacity < 0 || math.IsNaN(opacity):
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	return Material{Color: color, Opacity: opacity, Side: side}
}

// Transparent reports whether the material needs blending.
func (m Material) Transparent() bool {
	return m.Opacity < 1 || m.Color.A < 1
}

// Blend returns the blend state for the material, or nil when opaque.
func (m Material) Blend() *gputypes.BlendState {
	if !m.Transparent() {
		return nil
	}
	b := gputypes.BlendStateAlpha()
	return &b
}

// RGBA returns the final color with opacity folded into alpha.
func (m Material) RGBA() [4]float32 {
	return [4]float32{
		float32(m.Color.R),
		float32(m.Color.G),
		float32(m.Color.B),
		float32(m.Color.A * m.Opacity),
	}
}
