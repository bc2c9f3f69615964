// Package mask implements the feathered circular reveal mask.
package mask

import (
	"math"

	"github.com/f3rmion/spotlight/internal/spotlight"
)

// Default mask settings.
const (
	DefaultRadius   = 80.0
	DefaultSoftEdge = 20.0

	// DefaultFeatherOpacity is the opacity at the inner edge of the feather
	// band. The fall-off to transparent starts from here, not from 1.
	DefaultFeatherOpacity = 0.85
)

// Geometry holds the two radii of the mask.
type Geometry struct {
	Inner float64
	Outer float64
}

// NewGeometry derives the inner and outer radii. Both are clamped at zero and
// a negative soft edge counts as none, so Inner <= Outer holds for any input.
func NewGeometry(radius, softEdge float64) Geometry {
	softEdge = math.Max(0, softEdge)
	return Geometry{
		Inner: math.Max(0, radius-softEdge),
		Outer: math.Max(0, radius),
	}
}

// Band returns the width of the feather band.
func (g Geometry) Band() float64 {
	return g.Outer - g.Inner
}

// Zone classifies a distance from the mask centre.
type Zone int

const (
	Solid Zone = iota
	Feathered
	Hidden
)

func (z Zone) String() string {
	switch z {
	case Solid:
		return "solid"
	case Feathered:
		return "feathered"
	default:
		return "hidden"
	}
}

// Mask is the reveal mask centred on a pointer position.
type Mask struct {
	Center spotlight.Point
	Geometry
	// Feather is the opacity at the inner edge of the feather band.
	Feather float64
}

// New returns a mask with the default feather opacity.
func New(center spotlight.Point, g Geometry) Mask {
	return Mask{Center: center, Geometry: g, Feather: DefaultFeatherOpacity}
}

// Classify returns the zone a distance d falls in.
func (m Mask) Classify(d float64) Zone {
	switch {
	case d <= m.Inner:
		return Solid
	case d <= m.Outer:
		return Feathered
	default:
		return Hidden
	}
}

// Opacity returns the highlight opacity at distance d from the centre.
func (m Mask) Opacity(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	switch m.Classify(d) {
	case Solid:
		return 1
	case Feathered:
		band := m.Band()
		if band <= 0 {
			return 0
		}
		return clamp01(m.Feather) * (m.Outer - d) / band
	default:
		return 0
	}
}

// At returns the highlight opacity at p. A mask without a present centre
// reveals nothing.
func (m Mask) At(p spotlight.Point) float64 {
	if !m.Center.Present() {
		return 0
	}
	return m.Opacity(m.Center.Dist(p))
}

// Intersects reports whether the solid inner disc reaches r.
func (m Mask) Intersects(r spotlight.Rect) bool {
	return r.IntersectsCircle(m.Center, m.Inner)
}

// Touches reports whether any part of the mask, feather included, reaches r.
func (m Mask) Touches(r spotlight.Rect) bool {
	return r.IntersectsCircle(m.Center, m.Outer)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
