package tracker

import (
	"testing"

	"github.com/f3rmion/spotlight/internal/mask"
	"github.com/f3rmion/spotlight/internal/spotlight"
)

func fixedBounds(r spotlight.Rect) BoundsFunc {
	return func() (spotlight.Rect, bool) { return r, true }
}

func mounted(bounds BoundsFunc) *Tracker {
	tr := New(bounds)
	tr.Mount()
	return tr
}

func TestMountStartsAtSentinel(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{W: 100, H: 50}))
	if tr.Position() != spotlight.Sentinel {
		t.Errorf("Position() = %v, want sentinel", tr.Position())
	}
	if tr.Active() {
		t.Error("Active() = true before any event")
	}
}

func TestPointerMoveTranslates(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{X: 40, Y: 16, W: 200, H: 64}))

	tests := []struct {
		name   string
		vx, vy float64
		want   spotlight.Point
	}{
		{"inside", 60, 30, spotlight.Point{X: 20, Y: 14}},
		{"at origin", 40, 16, spotlight.Point{X: 0, Y: 0}},
		{"left of container", 10, 20, spotlight.Point{X: -30, Y: 4}},
		{"below container", 100, 500, spotlight.Point{X: 60, Y: 484}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr.OnPointerMove(tt.vx, tt.vy)
			if got := tr.Position(); got != tt.want {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointerMoveIdempotent(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{X: 5, Y: 5, W: 100, H: 100}))

	if !tr.OnPointerMove(50, 50) {
		t.Fatal("first move reported no change")
	}
	first := tr.Position()
	g := mask.NewGeometry(100, 30)
	firstMask := mask.New(first, g)

	if tr.OnPointerMove(50, 50) {
		t.Error("repeated move reported a change")
	}
	if tr.Position() != first {
		t.Errorf("Position drifted: %v -> %v", first, tr.Position())
	}
	if mask.New(tr.Position(), g) != firstMask {
		t.Error("mask geometry drifted on repeated move")
	}
}

func TestLeaveResetsToSentinel(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{W: 300, H: 80}))
	tr.OnPointerMove(100, 40)

	if !tr.OnLeaveOrEnd() {
		t.Error("leave reported no change")
	}
	if tr.Position() != spotlight.Sentinel {
		t.Fatalf("Position() = %v, want sentinel", tr.Position())
	}

	// Nothing in any realistic container may be reached by the mask.
	m := mask.New(tr.Position(), mask.NewGeometry(10000, 0))
	for _, size := range []spotlight.Size{{W: 1, H: 1}, {W: 3840, H: 2160}, {W: 100000, H: 100000}} {
		glyph := spotlight.Rect{W: size.W, H: size.H}
		if m.Intersects(glyph) {
			t.Errorf("mask intersects container of size %v after leave", size)
		}
	}
}

func TestTouchFirstContactOnly(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{X: 10, Y: 10, W: 100, H: 100}))

	tr.OnTouchMove([]spotlight.Point{{X: 30, Y: 40}, {X: 90, Y: 90}})
	if got, want := tr.Position(), (spotlight.Point{X: 20, Y: 30}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestScenarioDEmptyTouchIgnored(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{W: 100, H: 100}))
	tr.OnPointerMove(12, 34)
	before := tr.Position()

	if tr.OnTouchMove(nil) {
		t.Error("empty touch list reported a change")
	}
	if tr.Handle(Event{Kind: TouchMove, Touches: []spotlight.Point{}}) {
		t.Error("empty touch event reported a change")
	}
	if tr.Position() != before {
		t.Errorf("Position() = %v, want unchanged %v", tr.Position(), before)
	}
}

func TestMissingBoundsKeepsState(t *testing.T) {
	laidOut := false
	box := spotlight.Rect{X: 100, Y: 0, W: 50, H: 50}
	tr := mounted(func() (spotlight.Rect, bool) { return box, laidOut })

	tr.OnPointerMove(5, 5)
	if tr.Position() != spotlight.Sentinel {
		t.Errorf("move before layout changed state: %v", tr.Position())
	}

	laidOut = true
	tr.OnPointerMove(120, 10)
	prior := tr.Position()

	laidOut = false
	tr.OnPointerMove(140, 20)
	if tr.Position() != prior {
		t.Errorf("move without bounds changed state: %v, want %v", tr.Position(), prior)
	}
}

func TestBoundsReadFreshPerEvent(t *testing.T) {
	box := spotlight.Rect{X: 0, Y: 0, W: 100, H: 100}
	calls := 0
	tr := mounted(func() (spotlight.Rect, bool) {
		calls++
		return box, true
	})

	tr.OnPointerMove(50, 50)
	box.X, box.Y = 30, 10 // container moved, e.g. after a resize
	tr.OnPointerMove(50, 50)

	if calls != 2 {
		t.Errorf("bounds queried %d times, want 2", calls)
	}
	if got, want := tr.Position(), (spotlight.Point{X: 20, Y: 40}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestHandleDispatch(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{X: 1, Y: 1, W: 10, H: 10}))

	tr.Handle(Event{Kind: PointerMove, Pos: spotlight.Point{X: 4, Y: 6}})
	if got := tr.Position(); got != (spotlight.Point{X: 3, Y: 5}) {
		t.Errorf("after move Position() = %v", got)
	}
	tr.Handle(Event{Kind: TouchEnd})
	if tr.Active() {
		t.Error("touch end left pointer active")
	}
	tr.Handle(Event{Kind: TouchMove, Touches: []spotlight.Point{{X: 2, Y: 2}}})
	tr.Handle(Event{Kind: PointerLeave})
	if tr.Active() {
		t.Error("pointer leave left pointer active")
	}
}

func TestLastWriteWins(t *testing.T) {
	tr := mounted(fixedBounds(spotlight.Rect{}))
	tr.OnPointerMove(10, 10)
	tr.OnTouchMove([]spotlight.Point{{X: 70, Y: 80}})
	tr.OnPointerMove(1, 2)

	if got := tr.Position(); got != (spotlight.Point{X: 1, Y: 2}) {
		t.Errorf("Position() = %v, want last event", got)
	}
}

func TestUnmountedIgnoresEvents(t *testing.T) {
	tr := New(fixedBounds(spotlight.Rect{}))
	if tr.OnPointerMove(5, 5) {
		t.Error("unmounted tracker accepted a move")
	}

	tr.Mount()
	tr.OnPointerMove(5, 5)
	tr.Unmount()
	if tr.Position() != spotlight.Sentinel {
		t.Errorf("Unmount kept state %v", tr.Position())
	}
	if tr.OnPointerMove(9, 9) || tr.OnLeaveOrEnd() {
		t.Error("events accepted after Unmount")
	}
}

func TestInstancesIndependent(t *testing.T) {
	a := mounted(fixedBounds(spotlight.Rect{X: 0, Y: 0, W: 100, H: 20}))
	b := mounted(fixedBounds(spotlight.Rect{X: 0, Y: 100, W: 100, H: 20}))

	a.OnPointerMove(10, 10)
	b.OnPointerMove(10, 110)
	if a.Position() != b.Position() {
		t.Errorf("container-relative positions differ: %v vs %v", a.Position(), b.Position())
	}

	a.OnLeaveOrEnd()
	if !b.Active() {
		t.Error("leave on one instance reset the other")
	}
}
