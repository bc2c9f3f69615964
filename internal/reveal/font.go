package reveal

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontSystem asks LoadFont to search the usual system locations.
const FontSystem = "system"

// ErrNoFont is returned when a font file cannot be parsed.
var ErrNoFont = errors.New("reveal: no usable font")

// systemFontPaths are tried in order for FontSystem. CJK faces come first so
// Han titles render without romanisation.
var systemFontPaths = []string{
	// macOS
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/STHeiti Medium.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Bold.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Bold.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyhbd.ttc",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// Font is a parsed font that can produce faces at any size.
type Font struct {
	name string
	tt   *truetype.Font
	ot   *opentype.Font
}

// Name returns where the font was loaded from.
func (f *Font) Name() string {
	return f.name
}

// Face returns a face of the given pixel size at 72 DPI.
func (f *Font) Face(size float64) (font.Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("face size %v: %w", size, ErrInvalidFontSize)
	}
	if f.tt != nil {
		return truetype.NewFace(f.tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		}), nil
	}
	face, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return face, nil
}

// DefaultFont returns the embedded Go Bold font.
func DefaultFont() *Font {
	tt, err := truetype.Parse(gobold.TTF)
	if err != nil {
		// The embedded font is known good.
		panic(fmt.Sprintf("parsing embedded font: %v", err))
	}
	return &Font{name: "gobold", tt: tt}
}

// LoadFont loads the font at path. An empty path selects the embedded font and
// FontSystem searches the system font directories, falling back to the
// embedded font when none can be read.
func LoadFont(path string) (*Font, error) {
	switch path {
	case "":
		return DefaultFont(), nil
	case FontSystem:
		for _, p := range systemFontPaths {
			f, err := LoadFont(p)
			if err == nil {
				return f, nil
			}
		}
		logging.Logger().Warn("no system font found, using embedded font")
		return DefaultFont(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	f, err := parseFont(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.name = path
	return f, nil
}

func parseFont(data []byte) (*Font, error) {
	// Collections (.ttc) only parse through opentype; the first face is used.
	if bytes.HasPrefix(data, []byte("ttcf")) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
		}
		if coll.NumFonts() == 0 {
			return nil, ErrNoFont
		}
		fnt, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
		}
		return &Font{ot: fnt}, nil
	}

	if tt, err := truetype.Parse(data); err == nil {
		return &Font{tt: tt}, nil
	}

	// CFF outlines are not supported by freetype
	if fnt, err := opentype.Parse(data); err == nil {
		return &Font{ot: fnt}, nil
	}

	return nil, ErrNoFont
}
