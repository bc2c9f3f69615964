// Package tracker keeps the pointer position of one reveal container in the
// container's local coordinate space.
package tracker

import (
	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/f3rmion/spotlight/internal/spotlight"
)

// BoundsFunc returns the container's current bounding box in viewport
// coordinates. ok is false when the container has not been laid out yet.
type BoundsFunc func() (bounds spotlight.Rect, ok bool)

// EventKind identifies an input event.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerLeave
	TouchMove
	TouchEnd
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerLeave:
		return "pointer-leave"
	case TouchMove:
		return "touch-move"
	case TouchEnd:
		return "touch-end"
	default:
		return "unknown"
	}
}

// Event is a raw input event in viewport coordinates.
type Event struct {
	Kind EventKind
	// Pos is the pointer position for PointerMove.
	Pos spotlight.Point
	// Touches are the active contacts for TouchMove, in contact order.
	Touches []spotlight.Point
}

// Tracker owns the single pointer state slot of a mounted container.
// It is not safe for concurrent use; events are expected to arrive from one
// dispatch loop.
type Tracker struct {
	bounds  BoundsFunc
	pos     spotlight.Point
	mounted bool
}

// New returns an unmounted tracker reading container bounds from bounds.
func New(bounds BoundsFunc) *Tracker {
	return &Tracker{bounds: bounds, pos: spotlight.Sentinel}
}

// Mount starts tracking with no pointer present.
func (t *Tracker) Mount() {
	t.mounted = true
	t.pos = spotlight.Sentinel
	logging.Logger().Debug("tracker mounted")
}

// Unmount discards the state. Events are ignored until the next Mount.
func (t *Tracker) Unmount() {
	t.mounted = false
	t.pos = spotlight.Sentinel
	logging.Logger().Debug("tracker unmounted")
}

// Mounted reports whether the tracker accepts events.
func (t *Tracker) Mounted() bool {
	return t.mounted
}

// Position returns the last known local pointer position, or
// spotlight.Sentinel when no pointer is active.
func (t *Tracker) Position() spotlight.Point {
	return t.pos
}

// Active reports whether a pointer is currently tracked.
func (t *Tracker) Active() bool {
	return t.pos.Present()
}

// Handle applies one event and reports whether the position changed.
func (t *Tracker) Handle(ev Event) bool {
	switch ev.Kind {
	case PointerMove:
		return t.OnPointerMove(ev.Pos.X, ev.Pos.Y)
	case TouchMove:
		return t.OnTouchMove(ev.Touches)
	case PointerLeave, TouchEnd:
		return t.OnLeaveOrEnd()
	}
	return false
}

// OnPointerMove translates a viewport position into container-local
// coordinates. The bounding box is read fresh on every call. Positions
// outside the container are kept as they are.
func (t *Tracker) OnPointerMove(viewportX, viewportY float64) bool {
	if !t.mounted {
		return false
	}
	if t.bounds == nil {
		return false
	}
	box, ok := t.bounds()
	if !ok {
		logging.Logger().Debug("pointer move ignored, container has no bounds")
		return false
	}

	local := spotlight.Point{X: viewportX, Y: viewportY}.Sub(box.Origin())
	return t.set(local)
}

// OnTouchMove tracks the first contact only. An empty contact list is ignored.
func (t *Tracker) OnTouchMove(touches []spotlight.Point) bool {
	if len(touches) == 0 {
		return false
	}
	return t.OnPointerMove(touches[0].X, touches[0].Y)
}

// OnLeaveOrEnd resets the position to the sentinel so nothing is revealed.
func (t *Tracker) OnLeaveOrEnd() bool {
	if !t.mounted {
		return false
	}
	return t.set(spotlight.Sentinel)
}

func (t *Tracker) set(p spotlight.Point) bool {
	if p == t.pos {
		return false
	}
	t.pos = p
	return true
}
