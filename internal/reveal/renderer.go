package reveal

import (
	"fmt"

	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/f3rmion/spotlight/internal/mask"
	"github.com/f3rmion/spotlight/internal/palette"
	"github.com/f3rmion/spotlight/internal/spotlight"
)

// LayerRole tells the two glyph layers apart.
type LayerRole int

const (
	// BaseLayer is always fully visible.
	BaseLayer LayerRole = iota
	// HighlightLayer sits on top and is shown only through the mask.
	HighlightLayer
)

func (r LayerRole) String() string {
	if r == HighlightLayer {
		return "highlight"
	}
	return "base"
}

// GlyphVisual is one coloured glyph of a layer.
type GlyphVisual struct {
	Glyph spotlight.Glyph
	Box   spotlight.Rect
	Color string
}

// Layer is one full copy of the title in a single palette.
type Layer struct {
	Role   LayerRole
	Glyphs []GlyphVisual
}

// Renderer owns the base and highlight layers of a title. Both layers are
// built from the same box slice, so every glyph sits at the same position in
// each of them.
type Renderer struct {
	seq      spotlight.GlyphSequence
	palette  *palette.Palette
	geometry mask.Geometry
	feather  float64

	boxes []spotlight.Rect
	size  spotlight.Size

	base      Layer
	highlight Layer
}

// New lays out opts.Text with layout and builds both layers.
func New(opts Options, layout Layout) (*Renderer, error) {
	pal, err := palette.New(opts.BaseColors, opts.HighlightColors)
	if err != nil {
		return nil, fmt.Errorf("building palette: %w", err)
	}

	seq := spotlight.NewGlyphSequence(opts.Text)
	boxes, size := layout.Place(seq)

	r := &Renderer{
		seq:      seq,
		palette:  pal,
		geometry: mask.NewGeometry(opts.Radius, opts.SoftEdge),
		feather:  opts.FeatherOpacity,
		boxes:    boxes,
		size:     size,
	}
	r.base = r.buildLayer(BaseLayer, pal.Base)
	r.highlight = r.buildLayer(HighlightLayer, pal.Highlight)

	logging.Logger().Debug("renderer built",
		"glyphs", seq.Len(),
		"width", size.W,
		"height", size.H,
		"inner", r.geometry.Inner,
		"outer", r.geometry.Outer,
	)
	return r, nil
}

func (r *Renderer) buildLayer(role LayerRole, color func(int) string) Layer {
	glyphs := make([]GlyphVisual, r.seq.Len())
	for i, g := range r.seq.Glyphs() {
		glyphs[i] = GlyphVisual{Glyph: g, Box: r.boxes[i], Color: color(i)}
	}
	return Layer{Role: role, Glyphs: glyphs}
}

// Sequence returns the glyphs of the title.
func (r *Renderer) Sequence() spotlight.GlyphSequence { return r.seq }

// Palette returns the colour assignment.
func (r *Renderer) Palette() *palette.Palette { return r.palette }

// Geometry returns the mask radii.
func (r *Renderer) Geometry() mask.Geometry { return r.geometry }

// Feather returns the opacity at the inner edge of the feather band.
func (r *Renderer) Feather() float64 { return r.feather }

// Size returns the size of the laid out title.
func (r *Renderer) Size() spotlight.Size { return r.size }

// Base returns the base layer.
func (r *Renderer) Base() Layer { return r.base }

// Highlight returns the highlight layer.
func (r *Renderer) Highlight() Layer { return r.highlight }

// Box returns the local box of glyph i.
func (r *Renderer) Box(i int) spotlight.Rect { return r.boxes[i] }

// Bounds returns the container box when its top-left corner is at origin.
func (r *Renderer) Bounds(origin spotlight.Point) spotlight.Rect {
	return spotlight.Rect{W: r.size.W, H: r.size.H}.Offset(origin)
}

// WithMask returns a copy of r using new mask radii. Layers are shared.
func (r *Renderer) WithMask(radius, softEdge float64) *Renderer {
	c := *r
	c.geometry = mask.NewGeometry(radius, softEdge)
	return &c
}

// Mask returns the reveal mask centred on a local pointer position.
func (r *Renderer) Mask(center spotlight.Point) mask.Mask {
	return mask.Mask{Center: center, Geometry: r.geometry, Feather: r.feather}
}

// GlyphOpacity returns the highlight opacity at the centre of glyph i.
func (r *Renderer) GlyphOpacity(i int, center spotlight.Point) float64 {
	return r.Mask(center).At(r.boxes[i].Center())
}

// Composite returns the visible colour of every glyph, evaluating the mask at
// each glyph's centre.
func (r *Renderer) Composite(center spotlight.Point) []string {
	m := r.Mask(center)
	out := make([]string, r.seq.Len())
	for i := range out {
		out[i] = r.palette.Composite(i, m.At(r.boxes[i].Center()))
	}
	return out
}

// ColorAt returns the visible colour of glyph i at local point p.
func (r *Renderer) ColorAt(i int, p, center spotlight.Point) string {
	return r.palette.Composite(i, r.Mask(center).At(p))
}

// Revealed returns the glyphs whose box the solid part of the mask reaches.
func (r *Renderer) Revealed(center spotlight.Point) []int {
	m := r.Mask(center)
	var out []int
	for i, box := range r.boxes {
		if m.Intersects(box) {
			out = append(out, i)
		}
	}
	return out
}

// Touched returns the glyphs whose box any part of the mask reaches,
// feather included.
func (r *Renderer) Touched(center spotlight.Point) []int {
	m := r.Mask(center)
	var out []int
	for i, box := range r.boxes {
		if m.Touches(box) {
			out = append(out, i)
		}
	}
	return out
}
