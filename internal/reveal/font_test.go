package reveal

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

// singleFaceCollection wraps one TrueType font in a TTC header. Table offsets
// in a collection count from the start of the file, so each table record is
// shifted by the header size.
func singleFaceCollection(ttf []byte) []byte {
	const header = 16
	out := make([]byte, header+len(ttf))
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], 1)
	binary.BigEndian.PutUint32(out[12:], header)
	copy(out[header:], ttf)

	font := out[header:]
	numTables := int(binary.BigEndian.Uint16(font[4:]))
	for i := 0; i < numTables; i++ {
		rec := font[12+16*i:]
		off := binary.BigEndian.Uint32(rec[8:])
		binary.BigEndian.PutUint32(rec[8:], off+header)
	}
	return out
}

func TestLoadFontSingleFaceCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobold.ttc")
	if err := os.WriteFile(path, singleFaceCollection(gobold.TTF), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont(ttc) error = %v", err)
	}
	if f.ot == nil {
		t.Fatal("collection was not parsed through opentype")
	}
	face, err := f.Face(24)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	defer face.Close()
	if _, ok := face.GlyphAdvance('A'); !ok {
		t.Error("collection face has no glyph for A")
	}
}

func TestLoadFontPlainTTFUsesTruetype(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobold.ttf")
	if err := os.WriteFile(path, gobold.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont(ttf) error = %v", err)
	}
	if f.tt == nil {
		t.Error("single font was not parsed through truetype")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttc")
	if err := os.WriteFile(path, []byte("ttcf not really a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(path); !errors.Is(err, ErrNoFont) {
		t.Errorf("LoadFont(garbage) error = %v, want ErrNoFont", err)
	}
}
