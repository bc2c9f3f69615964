package reveal

import (
	"math"

	"github.com/f3rmion/spotlight/internal/spotlight"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Layout places glyphs left to right and returns one box per glyph in
// container-local pixel-equivalents, plus the size of the whole row.
type Layout interface {
	Place(seq spotlight.GlyphSequence) ([]spotlight.Rect, spotlight.Size)
}

// Metrics maps terminal cells to pixel-equivalents.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultMetrics approximates a common terminal cell.
var DefaultMetrics = Metrics{CellWidth: 8, CellHeight: 16}

// DotWidth and DotHeight are the size of one half-block dot.
func (m Metrics) DotWidth() float64  { return m.CellWidth }
func (m Metrics) DotHeight() float64 { return m.CellHeight / 2 }

// CellCenter returns the viewport point at the centre of cell (col, row).
func (m Metrics) CellCenter(col, row int) spotlight.Point {
	return spotlight.Point{
		X: (float64(col) + 0.5) * m.CellWidth,
		Y: (float64(row) + 0.5) * m.CellHeight,
	}
}

// CellRect returns the viewport box covering cols×rows cells from (col, row).
func (m Metrics) CellRect(col, row, cols, rows int) spotlight.Rect {
	return spotlight.Rect{
		X: float64(col) * m.CellWidth,
		Y: float64(row) * m.CellHeight,
		W: float64(cols) * m.CellWidth,
		H: float64(rows) * m.CellHeight,
	}
}

// CellLayout gives each glyph its display width in terminal cells.
type CellLayout struct {
	Metrics Metrics
	// Gap is the number of blank columns between glyphs.
	Gap int
}

// Place implements Layout.
func (l CellLayout) Place(seq spotlight.GlyphSequence) ([]spotlight.Rect, spotlight.Size) {
	boxes := make([]spotlight.Rect, seq.Len())
	col := 0
	for i, g := range seq.Glyphs() {
		w := cellWidth(g.Rune)
		boxes[i] = l.Metrics.CellRect(col, 0, w, 1)
		col += w
		if i < seq.Len()-1 {
			col += max(0, l.Gap)
		}
	}
	return boxes, spotlight.Size{W: float64(col) * l.Metrics.CellWidth, H: l.Metrics.CellHeight}
}

// cellWidth returns the columns a rune occupies. Zero-width runes still get a
// column so every glyph has a place of its own.
func cellWidth(r rune) int {
	return max(1, runewidth.RuneWidth(r))
}

// FaceLayout places glyphs by their advance in a font face. Face units are
// multiplied by Scale to get pixel-equivalents.
type FaceLayout struct {
	Face  font.Face
	Scale spotlight.Point
	// Gap is added after every glyph but the last, in face units.
	Gap float64
}

// Place implements Layout.
func (l FaceLayout) Place(seq spotlight.GlyphSequence) ([]spotlight.Rect, spotlight.Size) {
	origins, advances, height := l.origins(seq)
	boxes := make([]spotlight.Rect, len(origins))
	width := 0.0
	for i, o := range origins {
		x := fixedToFloat(o.X)
		boxes[i] = spotlight.Rect{
			X: x * l.Scale.X,
			Y: 0,
			W: advances[i] * l.Scale.X,
			H: height * l.Scale.Y,
		}
		width = math.Max(width, (x+advances[i])*l.Scale.X)
	}
	return boxes, spotlight.Size{W: width, H: height * l.Scale.Y}
}

// origins returns each glyph's baseline origin, its advance and the line height,
// all in face units.
func (l FaceLayout) origins(seq spotlight.GlyphSequence) ([]fixed.Point26_6, []float64, float64) {
	m := l.Face.Metrics()
	ascent := m.Ascent.Ceil()
	height := float64(ascent + m.Descent.Ceil())
	gap := fixed.Int26_6(math.Round(l.Gap * 64))

	origins := make([]fixed.Point26_6, seq.Len())
	advances := make([]float64, seq.Len())
	x := fixed.I(0)
	for i, g := range seq.Glyphs() {
		adv := glyphAdvance(l.Face, g.Rune)
		origins[i] = fixed.Point26_6{X: x, Y: fixed.I(ascent)}
		advances[i] = fixedToFloat(adv)
		x += adv
		if i < seq.Len()-1 {
			x += gap
		}
	}
	return origins, advances, height
}

// glyphAdvance returns the advance of r, falling back to the replacement
// character and then to half the face height for runes the face lacks.
func glyphAdvance(face font.Face, r rune) fixed.Int26_6 {
	if adv, ok := face.GlyphAdvance(r); ok {
		return adv
	}
	if adv, ok := face.GlyphAdvance('\uFFFD'); ok {
		return adv
	}
	return face.Metrics().Height / 2
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
