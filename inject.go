package gesture

// Injected touch IDs start high so they never collide with platform IDs.
const (
	injectTouchID0 = 1000
	injectTouchID1 = 1001
)

// InjectTouchEvent queues a raw touch event. Queued events are dispatched
// one per Scene.Update, in order.
func (s *Scene) InjectTouchEvent(ev *TouchEvent) {
	s.injectQueue = append(s.injectQueue, ev)
}

// InjectTap queues a single-finger touch start and end at (x, y).
// Consumes two frames.
func (s *Scene) InjectTap(x, y float64) {
	t := Touch{ID: injectTouchID0, ClientX: x, ClientY: y}
	s.InjectTouchEvent(&TouchEvent{Type: TouchStart, Touches: []Touch{t}, Changed: []Touch{t}})
	s.InjectTouchEvent(&TouchEvent{Type: TouchEnd, Changed: []Touch{t}})
}

// InjectDrag queues a one-finger drag: touch start at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and touch
// end at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (start + end).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	start := Touch{ID: injectTouchID0, ClientX: fromX, ClientY: fromY}
	s.InjectTouchEvent(&TouchEvent{Type: TouchStart, Touches: []Touch{start}, Changed: []Touch{start}})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		mv := Touch{
			ID:      injectTouchID0,
			ClientX: fromX + (toX-fromX)*t,
			ClientY: fromY + (toY-fromY)*t,
		}
		s.InjectTouchEvent(&TouchEvent{Type: TouchMove, Touches: []Touch{mv}, Changed: []Touch{mv}})
	}
	end := Touch{ID: injectTouchID0, ClientX: toX, ClientY: toY}
	s.InjectTouchEvent(&TouchEvent{Type: TouchEnd, Changed: []Touch{end}})
}

// InjectPinch queues a two-finger pinch centered on (cx, cy). The fingers sit
// on a horizontal line and their spread goes linearly from fromSpread to
// toSpread. The first frame puts both fingers down, the last lifts both;
// moves fill the frames in between. Minimum frames is 2.
func (s *Scene) InjectPinch(cx, cy, fromSpread, toSpread float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	pair := func(spread float64) []Touch {
		return []Touch{
			{ID: injectTouchID0, ClientX: cx - spread/2, ClientY: cy},
			{ID: injectTouchID1, ClientX: cx + spread/2, ClientY: cy},
		}
	}

	down := pair(fromSpread)
	s.InjectTouchEvent(&TouchEvent{Type: TouchStart, Touches: down, Changed: down})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		mv := pair(fromSpread + (toSpread-fromSpread)*t)
		s.InjectTouchEvent(&TouchEvent{Type: TouchMove, Touches: mv, Changed: mv})
	}
	s.InjectTouchEvent(&TouchEvent{Type: TouchEnd, Changed: pair(toSpread)})
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue[len(s.injectQueue)-1] = nil
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.DispatchTouch(ev)
	return true
}

// PendingInjections returns the number of queued events not yet dispatched.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}
