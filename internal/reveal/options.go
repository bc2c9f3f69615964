// Package reveal builds the two stacked glyph layers of a spotlight title and
// composites them through the pointer-centred reveal mask.
package reveal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/spotlight/internal/mask"
)

var (
	// ErrInvalidMode is returned by ParseMode for an unknown mode name.
	ErrInvalidMode = errors.New("reveal: invalid mode")
	// ErrInvalidFontSize is returned for a font size that is not positive.
	ErrInvalidFontSize = errors.New("reveal: font size must be positive")
)

// Options configures a renderer. Values are used as given; defaults for
// omitted settings are applied by the config layer.
type Options struct {
	Text            string
	BaseColors      []string
	HighlightColors []string

	Radius         float64
	SoftEdge       float64
	FeatherOpacity float64

	// FontSize and Gap only affect layout, in pixel-equivalents.
	FontSize float64
	Gap      float64
}

// DefaultOptions returns options with the default mask settings.
func DefaultOptions(text string, base, highlight []string) Options {
	return Options{
		Text:            text,
		BaseColors:      base,
		HighlightColors: highlight,
		Radius:          mask.DefaultRadius,
		SoftEdge:        mask.DefaultSoftEdge,
		FeatherOpacity:  mask.DefaultFeatherOpacity,
		FontSize:        DefaultFontSize,
		Gap:             0,
	}
}

// DefaultFontSize is the glyph height in pixel-equivalents.
const DefaultFontSize = 96.0

// Mode selects how glyphs are drawn in a terminal.
type Mode int

const (
	// ModeBlock rasterises each glyph from a font into half-block cells.
	ModeBlock Mode = iota
	// ModeCell draws each glyph as a single terminal character.
	ModeCell
)

func (m Mode) String() string {
	if m == ModeCell {
		return "cell"
	}
	return "block"
}

// ParseMode parses "block" or "cell".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "block":
		return ModeBlock, nil
	case "cell":
		return ModeCell, nil
	}
	return ModeBlock, fmt.Errorf("%w %q", ErrInvalidMode, s)
}
