package gesture

import "github.com/go-gl/mathgl/mgl64"

// Touch is one active contact point in screen coordinates.
type Touch struct {
	ID      int
	ClientX float64
	ClientY float64
}

// TouchEventType distinguishes the phase of a raw touch event. The detector
// treats all phases identically; the phase only matters for listener routing.
type TouchEventType uint8

const (
	TouchStart TouchEventType = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// TouchEvent is a raw multi-touch input event.
type TouchEvent struct {
	Type TouchEventType
	// Touches lists every contact still active after this event, oldest
	// first. Index 0 is always valid when the slice is non-empty.
	Touches []Touch
	// Changed lists the contacts that started, moved or ended in this event.
	Changed []Touch
}

// TouchState is an immutable snapshot of a touch event used for diffing.
// A nil *TouchState means no touches were active.
type TouchState struct {
	TouchCount     int
	ScreenPosition mgl64.Vec2 // position of touch 0
	Spread         float64    // distance between touch 0 and 1; 0 unless TouchCount == 2
}

// Sample converts a raw touch event into a TouchState. It returns nil when
// the event has no active touches.
func Sample(ev *TouchEvent) *TouchState {
	if ev == nil || len(ev.Touches) == 0 {
		return nil
	}
	t0 := touchPoint(ev.Touches[0])
	st := &TouchState{
		TouchCount:     len(ev.Touches),
		ScreenPosition: t0,
	}
	if st.TouchCount == 2 {
		st.Spread = touchPoint(ev.Touches[1]).Sub(t0).Len()
	}
	return st
}

func touchPoint(t Touch) mgl64.Vec2 {
	return mgl64.Vec2{t.ClientX, t.ClientY}
}
