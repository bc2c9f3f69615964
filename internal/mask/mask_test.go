package mask

import (
	"math"
	"testing"

	"github.com/f3rmion/spotlight/internal/spotlight"
)

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		name             string
		radius, softEdge float64
		inner, outer     float64
	}{
		{"defaults", DefaultRadius, DefaultSoftEdge, 60, 80},
		{"scenario B", 100, 30, 70, 100},
		{"scenario C soft edge exceeds radius", 10, 50, 0, 10},
		{"soft edge equals radius", 40, 40, 0, 40},
		{"zero radius", 0, 20, 0, 0},
		{"negative radius", -15, 5, 0, 0},
		{"negative soft edge", 50, -10, 50, 50},
		{"no feather", 50, 0, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(tt.radius, tt.softEdge)
			if tt.softEdge >= 0 && g.Inner != math.Max(0, tt.radius-tt.softEdge) {
				t.Errorf("Inner = %v, want max(0, radius-softEdge)", g.Inner)
			}
			if g.Outer != math.Max(0, tt.radius) {
				t.Errorf("Outer = %v, want max(0, radius)", g.Outer)
			}
			if g.Inner != tt.inner || g.Outer != tt.outer {
				t.Errorf("NewGeometry(%v, %v) = %+v, want {%v %v}", tt.radius, tt.softEdge, g, tt.inner, tt.outer)
			}
			if g.Inner > g.Outer {
				t.Errorf("Inner %v > Outer %v", g.Inner, g.Outer)
			}
		})
	}
}

func TestScenarioB(t *testing.T) {
	m := New(spotlight.Point{}, NewGeometry(100, 30))

	if got := m.Opacity(50); got != 1 {
		t.Errorf("Opacity(50) = %v, want 1", got)
	}
	if z := m.Classify(85); z != Feathered {
		t.Errorf("Classify(85) = %v, want feathered", z)
	}
	if got := m.Opacity(85); got <= 0 || got >= 1 {
		t.Errorf("Opacity(85) = %v, want strictly between 0 and 1", got)
	}
	if got := m.Opacity(150); got != 0 {
		t.Errorf("Opacity(150) = %v, want 0", got)
	}
}

func TestScenarioCNoSolidCore(t *testing.T) {
	m := New(spotlight.Point{}, NewGeometry(10, 50))

	if m.Inner != 0 {
		t.Fatalf("Inner = %v, want 0", m.Inner)
	}
	for _, d := range []float64{0.5, 2, 5, 9.99, 10} {
		if z := m.Classify(d); z != Feathered {
			t.Errorf("Classify(%v) = %v, want feathered", d, z)
		}
		if got := m.Opacity(d); got >= 1 {
			t.Errorf("Opacity(%v) = %v, want < 1", d, got)
		}
	}
}

func TestFeatherFalloff(t *testing.T) {
	m := New(spotlight.Point{}, NewGeometry(100, 40))

	// Just past the inner edge the opacity starts at the feather value.
	if got := m.Opacity(60.0001); math.Abs(got-DefaultFeatherOpacity) > 1e-3 {
		t.Errorf("Opacity just past inner = %v, want about %v", got, DefaultFeatherOpacity)
	}
	if got := m.Opacity(80); math.Abs(got-DefaultFeatherOpacity/2) > 1e-9 {
		t.Errorf("Opacity(80) = %v, want %v", got, DefaultFeatherOpacity/2)
	}
	if got := m.Opacity(100); got != 0 {
		t.Errorf("Opacity(100) = %v, want 0", got)
	}

	prev := 1.0
	for d := 0.0; d <= 120; d += 0.5 {
		got := m.Opacity(d)
		if got > prev {
			t.Fatalf("Opacity not monotonic at %v: %v > %v", d, got, prev)
		}
		prev = got
	}
}

func TestFeatherConfigurable(t *testing.T) {
	m := New(spotlight.Point{}, NewGeometry(100, 40))
	m.Feather = 1

	if got := m.Opacity(80); got != 0.5 {
		t.Errorf("Opacity(80) with feather 1 = %v, want 0.5", got)
	}
}

func TestNonPositiveRadius(t *testing.T) {
	m := New(spotlight.Point{X: 10, Y: 10}, NewGeometry(0, 20))

	if got := m.At(spotlight.Point{X: 10, Y: 10}); got != 1 {
		t.Errorf("At(center) = %v, want 1", got)
	}
	if got := m.At(spotlight.Point{X: 10.5, Y: 10}); got != 0 {
		t.Errorf("At(near center) = %v, want 0", got)
	}
}

func TestSentinelRevealsNothing(t *testing.T) {
	m := New(spotlight.Sentinel, NewGeometry(1e6, 10))

	glyph := spotlight.Rect{X: 0, Y: 0, W: 4000, H: 2000}
	if m.Intersects(glyph) || m.Touches(glyph) {
		t.Error("mask at sentinel intersects a glyph")
	}
	if got := m.At(glyph.Center()); got != 0 {
		t.Errorf("At() = %v, want 0", got)
	}
}

func TestIdempotentEvaluation(t *testing.T) {
	g := NewGeometry(100, 30)
	a := New(spotlight.Point{X: 42, Y: 7}, g)
	b := New(spotlight.Point{X: 42, Y: 7}, g)

	p := spotlight.Point{X: 120, Y: 40}
	if a.At(p) != b.At(p) {
		t.Errorf("same centre produced different opacities: %v, %v", a.At(p), b.At(p))
	}
}
