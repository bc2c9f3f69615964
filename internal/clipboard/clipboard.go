// Package clipboard copies rendered frames to the system clipboard.
package clipboard

import (
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when neither a native clipboard nor a terminal
// to send an OSC 52 sequence to is available.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Method reports how text reached the clipboard.
type Method string

const (
	Native Method = "native"
	OSC52  Method = "osc52"
)

// Writer copies text, preferring the native clipboard and falling back to an
// OSC 52 escape on Terminal, which also works over SSH.
type Writer struct {
	Terminal io.Writer
	// native is swapped out in tests.
	native func(string) error
}

// New returns a Writer that falls back to stderr.
func New() *Writer {
	return &Writer{Terminal: os.Stderr, native: nativeWrite}
}

func nativeWrite(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Write copies text to the clipboard.
func (w *Writer) Write(text string) (Method, error) {
	if w.native != nil {
		if err := w.native(text); err == nil {
			return Native, nil
		}
	}
	if w.Terminal == nil {
		return "", ErrUnavailable
	}
	if _, err := osc52.New(text).WriteTo(w.Terminal); err != nil {
		return "", err
	}
	return OSC52, nil
}

// Available reports whether a native clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}
