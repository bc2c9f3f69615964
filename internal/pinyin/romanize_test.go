package pinyin

import (
	"errors"
	"testing"
)

func TestRomanize(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		in    string
		want  string
	}{
		{"off", StyleOff, "中文", "中文"},
		{"tone", StyleTone, "中文", "zhōngwén"},
		{"plain", StylePlain, "中文", "zhongwen"},
		{"mixed", StylePlain, "hi 中", "hi zhong"},
		{"latin untouched", StyleTone, "storymaster.ai", "storymaster.ai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRomanizer(tt.style).Romanize(tt.in); got != tt.want {
				t.Errorf("Romanize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{"": StyleOff, "off": StyleOff, "Tone": StyleTone, "plain": StylePlain} {
		got, err := ParseStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseStyle(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseStyle("wade-giles"); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("ParseStyle(wade-giles) error = %v", err)
	}
}

func TestHasHan(t *testing.T) {
	if !HasHan("a漢") {
		t.Error("HasHan(a漢) = false")
	}
	if HasHan("abc") {
		t.Error("HasHan(abc) = true")
	}
}
