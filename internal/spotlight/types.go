// Package spotlight provides the core types shared by the reveal pipeline.
package spotlight

import (
	"math"
	"strings"
)

// Point is a coordinate in pixel-equivalent units.
type Point struct {
	X float64
	Y float64
}

// Sentinel is the position used when no pointer is active. It lies outside
// every realistic layout so no mask centred on it can reach a glyph.
var Sentinel = Point{X: math.Inf(-1), Y: math.Inf(-1)}

// Present reports whether p is a real pointer position.
func (p Point) Present() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width and height in pixel-equivalent units.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the centre of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Offset returns r translated by d.
func (r Rect) Offset(d Point) Rect {
	o := r.Origin().Add(d)
	return Rect{X: o.X, Y: o.Y, W: r.W, H: r.H}
}

// NearestTo returns the point of r closest to p.
func (r Rect) NearestTo(p Point) Point {
	return Point{
		X: math.Max(r.X, math.Min(p.X, r.X+r.W)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	}
}

// IntersectsCircle reports whether a circle of the given radius around c
// overlaps r. A zero radius still intersects when c lies on r.
func (r Rect) IntersectsCircle(c Point, radius float64) bool {
	if !c.Present() || radius < 0 {
		return false
	}
	return r.NearestTo(c).Dist(c) <= radius
}

// Glyph is one character of the title.
type Glyph struct {
	Index int
	Rune  rune
}

// String returns the glyph as text.
func (g Glyph) String() string {
	return string(g.Rune)
}

// GlyphSequence is the immutable, ordered list of glyphs of a title.
type GlyphSequence struct {
	glyphs []Glyph
}

// NewGlyphSequence splits text into one glyph per rune. Whitespace runes are
// glyphs too and take part in indexing.
func NewGlyphSequence(text string) GlyphSequence {
	runes := []rune(text)
	glyphs := make([]Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = Glyph{Index: i, Rune: r}
	}
	return GlyphSequence{glyphs: glyphs}
}

// Len returns the number of glyphs.
func (s GlyphSequence) Len() int {
	return len(s.glyphs)
}

// At returns glyph i. It panics when i is out of range.
func (s GlyphSequence) At(i int) Glyph {
	return s.glyphs[i]
}

// Glyphs returns a copy of the glyphs in order.
func (s GlyphSequence) Glyphs() []Glyph {
	out := make([]Glyph, len(s.glyphs))
	copy(out, s.glyphs)
	return out
}

// String joins the glyphs back into text.
func (s GlyphSequence) String() string {
	var b strings.Builder
	for _, g := range s.glyphs {
		b.WriteRune(g.Rune)
	}
	return b.String()
}
