package spotlight

import (
	"math"
	"testing"
)

func TestNewGlyphSequence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		runes []rune
	}{
		{"empty", "", nil},
		{"ascii", "AB", []rune{'A', 'B'}},
		{"whitespace counts", "a b", []rune{'a', ' ', 'b'}},
		{"multibyte", "漢字!", []rune{'漢', '字', '!'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewGlyphSequence(tt.text)
			if seq.Len() != len(tt.runes) {
				t.Fatalf("Len() = %d, want %d", seq.Len(), len(tt.runes))
			}
			for i, r := range tt.runes {
				g := seq.At(i)
				if g.Index != i || g.Rune != r {
					t.Errorf("At(%d) = %+v, want {%d %q}", i, g, i, r)
				}
			}
			if seq.String() != tt.text {
				t.Errorf("String() = %q, want %q", seq.String(), tt.text)
			}
		})
	}
}

func TestGlyphSequenceImmutable(t *testing.T) {
	seq := NewGlyphSequence("abc")
	glyphs := seq.Glyphs()
	glyphs[0].Rune = 'z'

	if seq.At(0).Rune != 'a' {
		t.Errorf("mutating Glyphs() result changed the sequence: %q", seq.At(0).Rune)
	}
}

func TestSentinelNotPresent(t *testing.T) {
	if Sentinel.Present() {
		t.Error("Sentinel.Present() = true, want false")
	}
	if !(Point{X: -5, Y: 3}).Present() {
		t.Error("ordinary point reported absent")
	}
	if (Point{X: math.NaN(), Y: 0}).Present() {
		t.Error("NaN point reported present")
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	tests := []struct {
		name   string
		c      Point
		radius float64
		want   bool
	}{
		{"centre inside", Point{X: 15, Y: 15}, 1, true},
		{"touching edge", Point{X: 0, Y: 15}, 10, true},
		{"short of edge", Point{X: 0, Y: 15}, 9.9, false},
		{"corner diagonal", Point{X: 7, Y: 6}, 5, true},
		{"zero radius inside", Point{X: 20, Y: 12}, 0, true},
		{"zero radius outside", Point{X: 40, Y: 12}, 0, false},
		{"sentinel", Sentinel, 1e12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IntersectsCircle(tt.c, tt.radius); got != tt.want {
				t.Errorf("IntersectsCircle(%v, %v) = %v, want %v", tt.c, tt.radius, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 2}
	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("origin should be inside")
	}
	if r.Contains(Point{X: 4, Y: 1}) {
		t.Error("right edge should be exclusive")
	}
	if r.Contains(Sentinel) {
		t.Error("sentinel should never be inside")
	}
}
