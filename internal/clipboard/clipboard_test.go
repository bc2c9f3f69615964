package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestWriteNative(t *testing.T) {
	var got string
	w := &Writer{native: func(s string) error { got = s; return nil }}

	method, err := w.Write("hello")
	if err != nil || method != Native {
		t.Fatalf("Write() = %q, %v", method, err)
	}
	if got != "hello" {
		t.Errorf("native got %q", got)
	}
}

func TestWriteFallsBackToOSC52(t *testing.T) {
	var term bytes.Buffer
	w := &Writer{
		Terminal: &term,
		native:   func(string) error { return errors.New("no xclip") },
	}

	method, err := w.Write("hello")
	if err != nil || method != OSC52 {
		t.Fatalf("Write() = %q, %v", method, err)
	}
	enc := base64.StdEncoding.EncodeToString([]byte("hello"))
	if !strings.Contains(term.String(), enc) {
		t.Errorf("terminal output %q lacks payload %q", term.String(), enc)
	}
}

func TestWriteUnavailable(t *testing.T) {
	w := &Writer{native: func(string) error { return ErrUnavailable }}
	if _, err := w.Write("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Write() error = %v, want ErrUnavailable", err)
	}
}
