package reveal

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/f3rmion/spotlight/internal/mask"
	"github.com/f3rmion/spotlight/internal/spotlight"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageOptions controls image export.
type ImageOptions struct {
	// Background fills the image before the layers are drawn. Nil leaves it transparent.
	Background color.Color
	// Padding is added around the title on every side, in pixels.
	Padding int
}

// Image is a rendered title with its two layers kept apart.
type Image struct {
	Renderer *Renderer
	// Base and Highlight hold each layer drawn alone on a transparent image.
	Base      *image.RGBA
	Highlight *image.RGBA
	padding   int
	bg        color.Color
}

// NewImage draws both layers of opts.Text at opts.FontSize pixels.
func NewImage(opts Options, f *Font, iopts ImageOptions) (*Image, error) {
	face, err := f.Face(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	layout := FaceLayout{Face: face, Scale: spotlight.Point{X: 1, Y: 1}, Gap: opts.Gap}
	r, err := New(opts, layout)
	if err != nil {
		return nil, err
	}

	pad := max(0, iopts.Padding)
	w := int(math.Ceil(r.Size().W)) + 2*pad
	h := int(math.Ceil(r.Size().H)) + 2*pad
	bounds := image.Rect(0, 0, w, h)

	img := &Image{
		Renderer:  r,
		Base:      image.NewRGBA(bounds),
		Highlight: image.NewRGBA(bounds),
		padding:   pad,
		bg:        iopts.Background,
	}

	origins, _, _ := layout.origins(r.Sequence())
	offset := image.Pt(pad, pad)
	pal := r.Palette()
	for i, g := range r.Sequence().Glyphs() {
		dot := origins[i].Add(fixed.P(offset.X, offset.Y))
		drawGlyph(img.Base, face, g.Rune, dot, pal.BaseColor(i))
		drawGlyph(img.Highlight, face, g.Rune, dot, pal.HighlightColor(i))
	}
	return img, nil
}

// Composite returns the final image with the mask centred on a local pointer
// position. The base layer is drawn in full; the highlight layer is drawn
// over it scaled by the mask opacity at each pixel centre.
func (img *Image) Composite(center spotlight.Point) *image.RGBA {
	bounds := img.Base.Bounds()
	out := image.NewRGBA(bounds)
	if img.bg != nil {
		draw.Draw(out, bounds, image.NewUniform(img.bg), image.Point{}, draw.Src)
	}
	draw.Draw(out, bounds, img.Base, image.Point{}, draw.Over)

	m := img.Mask(center)
	if !center.Present() {
		return out
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hi := img.Highlight.RGBAAt(x, y)
			if hi.A == 0 {
				continue
			}
			a := m.At(img.local(x, y))
			if a == 0 {
				continue
			}
			out.SetRGBA(x, y, over(scale(hi, a), out.RGBAAt(x, y)))
		}
	}
	return out
}

// local converts a pixel to container-local coordinates.
func (img *Image) local(x, y int) spotlight.Point {
	return spotlight.Point{
		X: float64(x-img.padding) + 0.5,
		Y: float64(y-img.padding) + 0.5,
	}
}

// Padding returns the padding around the title.
func (img *Image) Padding() int { return img.padding }

// Mask returns the reveal mask for a local pointer position.
func (img *Image) Mask(center spotlight.Point) mask.Mask {
	return img.Renderer.Mask(center)
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, m image.Image) error {
	if err := png.Encode(w, m); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func drawGlyph(dst *image.RGBA, face font.Face, r rune, dot fixed.Point26_6, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(string(r))
}

// scale multiplies a premultiplied colour by a.
func scale(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: uint8(math.Round(float64(c.A) * a)),
	}
}

// over composites premultiplied src over dst.
func over(src, dst color.RGBA) color.RGBA {
	k := 255 - uint32(src.A)
	return color.RGBA{
		R: uint8(uint32(src.R) + (uint32(dst.R)*k+127)/255),
		G: uint8(uint32(src.G) + (uint32(dst.G)*k+127)/255),
		B: uint8(uint32(src.B) + (uint32(dst.B)*k+127)/255),
		A: uint8(uint32(src.A) + (uint32(dst.A)*k+127)/255),
	}
}
