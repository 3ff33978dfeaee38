// Package ebitengine feeds live Ebitengine touch and mouse input into a
// gesture.Scene.
//
//	src := ebitengine.NewSource(scene)
//
//	func (g *Game) Update() error {
//		g.src.Update()
//		g.scene.Update()
//		return nil
//	}
package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gesture"
)

// inputReader is the slice of the ebiten input API the source polls.
type inputReader interface {
	AppendTouchIDs(buf []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
}

type ebitenReader struct{}

func (ebitenReader) AppendTouchIDs(buf []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(buf)
}

func (ebitenReader) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenReader) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenReader) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

type activeTouch struct {
	id   ebiten.TouchID
	x, y float64
}

// Source polls touch IDs and the mouse every frame and turns the frame-to-
// frame differences into TouchEvents and PointerEvents on a Scene.
type Source struct {
	scene *gesture.Scene
	in    inputReader

	active []activeTouch // oldest first, so index 0 is the primary finger
	idBuf  []ebiten.TouchID

	mouseDown   bool
	mouseButton gesture.MouseButton
}

// NewSource creates a source that dispatches into scene.
func NewSource(scene *gesture.Scene) *Source {
	return &Source{scene: scene, in: ebitenReader{}}
}

// Update polls input once. Call it from ebiten.Game.Update before
// Scene.Update.
func (s *Source) Update() {
	s.processTouches()
	s.processMouse()
}

// ActiveTouches returns the number of touches currently tracked.
func (s *Source) ActiveTouches() int {
	return len(s.active)
}

func (s *Source) processTouches() {
	s.idBuf = s.in.AppendTouchIDs(s.idBuf[:0])

	// Ended touches.
	var ended []gesture.Touch
	kept := s.active[:0]
	for _, at := range s.active {
		if containsID(s.idBuf, at.id) {
			kept = append(kept, at)
			continue
		}
		ended = append(ended, toTouch(at))
	}
	s.active = kept
	if len(ended) > 0 {
		s.scene.DispatchTouch(&gesture.TouchEvent{
			Type:    gesture.TouchEnd,
			Touches: s.snapshot(),
			Changed: ended,
		})
	}

	// Moved touches.
	var moved []gesture.Touch
	for i := range s.active {
		at := &s.active[i]
		x, y := s.in.TouchPosition(at.id)
		fx, fy := float64(x), float64(y)
		if fx != at.x || fy != at.y {
			at.x, at.y = fx, fy
			moved = append(moved, toTouch(*at))
		}
	}
	if len(moved) > 0 {
		s.scene.DispatchTouch(&gesture.TouchEvent{
			Type:    gesture.TouchMove,
			Touches: s.snapshot(),
			Changed: moved,
		})
	}

	// New touches.
	var started []gesture.Touch
	for _, id := range s.idBuf {
		if s.indexOf(id) >= 0 {
			continue
		}
		x, y := s.in.TouchPosition(id)
		at := activeTouch{id: id, x: float64(x), y: float64(y)}
		s.active = append(s.active, at)
		started = append(started, toTouch(at))
	}
	if len(started) > 0 {
		s.scene.DispatchTouch(&gesture.TouchEvent{
			Type:    gesture.TouchStart,
			Touches: s.snapshot(),
			Changed: started,
		})
	}
}

// processMouse emits pointer down/up on button transitions. The button is
// captured at press time and reused for the release.
func (s *Source) processMouse() {
	var pressed bool
	var button gesture.MouseButton
	switch {
	case s.in.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, gesture.MouseButtonLeft
	case s.in.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, gesture.MouseButtonRight
	case s.in.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, gesture.MouseButtonMiddle
	}
	if pressed == s.mouseDown {
		return
	}

	mx, my := s.in.CursorPosition()
	ev := gesture.PointerEvent{X: float64(mx), Y: float64(my)}
	if pressed {
		s.mouseButton = button
		ev.Type = gesture.EventPointerDown
	} else {
		ev.Type = gesture.EventPointerUp
	}
	ev.Button = s.mouseButton
	s.mouseDown = pressed
	s.scene.DispatchPointer(ev)
}

// snapshot copies the active touches so dispatched events never alias the
// source's internal state.
func (s *Source) snapshot() []gesture.Touch {
	if len(s.active) == 0 {
		return nil
	}
	out := make([]gesture.Touch, len(s.active))
	for i, at := range s.active {
		out[i] = toTouch(at)
	}
	return out
}

func (s *Source) indexOf(id ebiten.TouchID) int {
	for i, at := range s.active {
		if at.id == id {
			return i
		}
	}
	return -1
}

func containsID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func toTouch(at activeTouch) gesture.Touch {
	return gesture.Touch{ID: int(at.id), ClientX: at.x, ClientY: at.y}
}
