// Package palette assigns colours to glyphs by cycling through configured lists.
package palette

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyPalette is returned when a colour list has no entries.
	ErrEmptyPalette = errors.New("palette: colour list is empty")
	// ErrInvalidColor is returned when a colour is not a #rgb or #rrggbb hex value.
	ErrInvalidColor = errors.New("palette: invalid colour")
)

// Cycle returns list[i mod len(list)]. It panics on an empty list, the same
// way a modulo by zero would.
func Cycle[T any](list []T, i int) T {
	n := len(list)
	return list[((i%n)+n)%n]
}

// Palette holds the base and highlight colour lists of a title.
type Palette struct {
	base      []string
	highlight []string

	baseRGB      []colorful.Color
	highlightRGB []colorful.Color
}

// New validates both lists and returns a Palette.
func New(base, highlight []string) (*Palette, error) {
	baseRGB, err := parseList("base", base)
	if err != nil {
		return nil, err
	}
	highlightRGB, err := parseList("highlight", highlight)
	if err != nil {
		return nil, err
	}

	return &Palette{
		base:         append([]string(nil), base...),
		highlight:    append([]string(nil), highlight...),
		baseRGB:      baseRGB,
		highlightRGB: highlightRGB,
	}, nil
}

// Base returns the base colour of glyph i.
func (p *Palette) Base(i int) string {
	return Cycle(p.base, i)
}

// Highlight returns the highlight colour of glyph i.
func (p *Palette) Highlight(i int) string {
	return Cycle(p.highlight, i)
}

// BaseColor returns the parsed base colour of glyph i.
func (p *Palette) BaseColor(i int) colorful.Color {
	return Cycle(p.baseRGB, i)
}

// HighlightColor returns the parsed highlight colour of glyph i.
func (p *Palette) HighlightColor(i int) colorful.Color {
	return Cycle(p.highlightRGB, i)
}

// Blend returns the colour seen for glyph i when the highlight layer is drawn
// at opacity alpha over the fully visible base layer.
func (p *Palette) Blend(i int, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return p.BaseColor(i)
	case alpha >= 1:
		return p.HighlightColor(i)
	}
	return p.BaseColor(i).BlendRgb(p.HighlightColor(i), alpha).Clamped()
}

// Composite is Blend rendered as a #rrggbb string. The configured strings
// are returned verbatim at the two ends so callers can compare them directly.
func (p *Palette) Composite(i int, alpha float64) string {
	switch {
	case alpha <= 0:
		return p.Base(i)
	case alpha >= 1:
		return p.Highlight(i)
	}
	return p.Blend(i, alpha).Hex()
}

// Len returns the lengths of the base and highlight lists.
func (p *Palette) Len() (base, highlight int) {
	return len(p.base), len(p.highlight)
}

func parseList(name string, list []string) ([]colorful.Color, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%s colours: %w", name, ErrEmptyPalette)
	}
	out := make([]colorful.Color, len(list))
	for i, s := range list {
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%s colours[%d]: %w", name, i, err)
		}
		out[i] = c
	}
	return out, nil
}

// Parse parses a #rgb or #rrggbb colour.
func Parse(s string) (colorful.Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return c, nil
}
