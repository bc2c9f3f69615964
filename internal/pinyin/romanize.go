// Package pinyin transliterates Han characters in a title to pinyin so they
// can be drawn with faces that carry no CJK glyphs.
package pinyin

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Style selects how syllables are written.
type Style string

const (
	// StyleOff leaves the text untouched.
	StyleOff Style = ""
	// StyleTone writes tone marks: zhōng.
	StyleTone Style = "tone"
	// StylePlain writes bare letters: zhong.
	StylePlain Style = "plain"
)

// ErrInvalidStyle is returned by ParseStyle for an unknown style.
var ErrInvalidStyle = errors.New("pinyin: invalid romanize style")

// ParseStyle parses "", "off", "tone" or "plain".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return StyleOff, nil
	case "tone":
		return StyleTone, nil
	case "plain":
		return StylePlain, nil
	}
	return StyleOff, fmt.Errorf("%w %q", ErrInvalidStyle, s)
}

// Romanizer handles pinyin conversion of titles.
type Romanizer struct {
	style Style
	args  gopinyin.Args
}

// NewRomanizer creates a romanizer for the given style.
func NewRomanizer(style Style) *Romanizer {
	args := gopinyin.NewArgs()
	args.Heteronym = false // First reading only
	if style == StyleTone {
		args.Style = gopinyin.Tone
	} else {
		args.Style = gopinyin.Normal
	}
	return &Romanizer{style: style, args: args}
}

// Style returns the configured style.
func (r *Romanizer) Style() Style {
	return r.style
}

// Syllable returns the first pinyin reading of a Han rune, or "" when the
// dictionary has none.
func (r *Romanizer) Syllable(c rune) string {
	result := gopinyin.Pinyin(string(c), r.args)
	if len(result) == 0 || len(result[0]) == 0 {
		return ""
	}
	return result[0][0]
}

// Romanize replaces every Han rune with its syllable. Other runes, and Han
// runes without a reading, are kept as they are.
func (r *Romanizer) Romanize(text string) string {
	if r.style == StyleOff {
		return text
	}

	var b strings.Builder
	for _, c := range text {
		if !unicode.Is(unicode.Han, c) {
			b.WriteRune(c)
			continue
		}
		if s := r.Syllable(c); s != "" {
			b.WriteString(s)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// HasHan reports whether text contains any Han rune.
func HasHan(text string) bool {
	for _, c := range text {
		if unicode.Is(unicode.Han, c) {
			return true
		}
	}
	return false
}
