package gesture

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// DragSensitivity converts a one-finger screen delta in pixels into world
// units on the X/Z plane.
const DragSensitivity = 0.005

var (
	// ErrNilNode is returned when a detector or handler is attached without
	// a scene node to operate on.
	ErrNilNode = errors.New("gesture: nil node")

	// ErrDetachedNode is returned when a handler is created for a node
	// that has not been added to a scene yet.
	ErrDetachedNode = errors.New("gesture: node has no parent")

	// ErrInvalidConfig is returned (wrapped) when a configuration fails
	// validation.
	ErrInvalidConfig = errors.New("gesture: invalid config")
)

// Transform is the mutable part of a scene object that gestures act on.
// Y is up; one-finger drags move along X and Z only.
type Transform struct {
	Position mgl64.Vec3
	Scale    mgl64.Vec3
}

// EventKind names a published gesture. The bus is keyed by it.
type EventKind string

const (
	OneFingerMove EventKind = "onefingermove" // a single active touch moved, started or ended
	TwoFingerMove EventKind = "twofingermove" // two active touches; carries SpreadChange
)

// EventType identifies a kind of raw input listener on a Node.
type EventType uint8

const (
	EventPointerDown EventType = iota // pointer pressed over the node (bubbles)
	EventPointerUp                    // pointer released over the node (bubbles)
	EventTouchStart                   // a touch began in the node's session
	EventTouchMove                    // a touch moved in the node's session
	EventTouchEnd                     // a touch ended in the node's session
	EventTouchCancel                  // the platform cancelled a touch
)

// String returns the DOM-style event name.
func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventTouchCancel:
		return "touchcancel"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
