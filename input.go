package gesture

// PointerEvent is a raw mouse or pen press/release in screen coordinates.
type PointerEvent struct {
	Type      EventType // EventPointerDown or EventPointerUp
	X, Y      float64
	Button    MouseButton
	PointerID int
}

// PointerContext carries pointer event data to node listeners.
type PointerContext struct {
	Node      *Node // node whose listener is running
	Target    *Node // topmost node under the pointer, or the scene root
	X, Y      float64
	Button    MouseButton
	PointerID int
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type touchHandler struct {
	id uint32
	fn func(*TouchEvent)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	touchStart  []touchHandler
	touchMove   []touchHandler
	touchEnd    []touchHandler
	touchCancel []touchHandler
	nextID      uint32
}

func (r *handlerRegistry) addPointer(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch event {
	case EventPointerDown:
		r.pointerDown = append(r.pointerDown, h)
	case EventPointerUp:
		r.pointerUp = append(r.pointerUp, h)
	default:
		panic("gesture: not a pointer event: " + event.String())
	}
	return CallbackHandle{id: h.id, reg: r}
}

func (r *handlerRegistry) addTouch(event EventType, fn func(*TouchEvent)) CallbackHandle {
	r.nextID++
	h := touchHandler{id: r.nextID, fn: fn}
	switch event {
	case EventTouchStart:
		r.touchStart = append(r.touchStart, h)
	case EventTouchMove:
		r.touchMove = append(r.touchMove, h)
	case EventTouchEnd:
		r.touchEnd = append(r.touchEnd, h)
	case EventTouchCancel:
		r.touchCancel = append(r.touchCancel, h)
	default:
		panic("gesture: not a touch event: " + event.String())
	}
	return CallbackHandle{id: h.id, reg: r}
}

func (r *handlerRegistry) removeHandler(id uint32) {
	var ok bool
	if r.pointerDown, ok = removePointerHandler(r.pointerDown, id); ok {
		return
	}
	if r.pointerUp, ok = removePointerHandler(r.pointerUp, id); ok {
		return
	}
	if r.touchStart, ok = removeTouchHandler(r.touchStart, id); ok {
		return
	}
	if r.touchMove, ok = removeTouchHandler(r.touchMove, id); ok {
		return
	}
	if r.touchEnd, ok = removeTouchHandler(r.touchEnd, id); ok {
		return
	}
	r.touchCancel, _ = removeTouchHandler(r.touchCancel, id)
}

func (r *handlerRegistry) len() int {
	return len(r.pointerDown) + len(r.pointerUp) +
		len(r.touchStart) + len(r.touchMove) + len(r.touchEnd) + len(r.touchCancel)
}

// Removal never writes into the old backing array, so a dispatch loop that
// is ranging over it keeps its snapshot.
func removePointerHandler(s []pointerHandler, id uint32) ([]pointerHandler, bool) {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...), true
		}
	}
	return s, false
}

func removeTouchHandler(s []touchHandler, id uint32) ([]touchHandler, bool) {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...), true
		}
	}
	return s, false
}

func (r *handlerRegistry) touchList(t TouchEventType) []touchHandler {
	switch t {
	case TouchStart:
		return r.touchStart
	case TouchMove:
		return r.touchMove
	case TouchEnd:
		return r.touchEnd
	case TouchCancel:
		return r.touchCancel
	}
	return nil
}

// --- Node-level registration ---

// OnPointerDown registers a callback for pointer presses on this node or any
// descendant.
func (n *Node) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return n.handlers.addPointer(EventPointerDown, fn)
}

// OnPointerUp registers a callback for pointer releases on this node or any
// descendant. Registered on the scene root it fires for every release.
func (n *Node) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return n.handlers.addPointer(EventPointerUp, fn)
}

// OnTouchStart registers a callback for touch starts in sessions targeting
// this node or any descendant.
func (n *Node) OnTouchStart(fn func(*TouchEvent)) CallbackHandle {
	return n.handlers.addTouch(EventTouchStart, fn)
}

// OnTouchMove registers a callback for touch moves.
func (n *Node) OnTouchMove(fn func(*TouchEvent)) CallbackHandle {
	return n.handlers.addTouch(EventTouchMove, fn)
}

// OnTouchEnd registers a callback for touch ends.
func (n *Node) OnTouchEnd(fn func(*TouchEvent)) CallbackHandle {
	return n.handlers.addTouch(EventTouchEnd, fn)
}

// OnTouchCancel registers a callback for cancelled touches.
func (n *Node) OnTouchCancel(fn func(*TouchEvent)) CallbackHandle {
	return n.handlers.addTouch(EventTouchCancel, fn)
}

// NumListeners returns the number of raw input callbacks registered on this
// node.
func (n *Node) NumListeners() int {
	return n.handlers.len()
}

// --- Hit testing ---

// collectInteractable walks the tree depth-first in child order, appending
// nodes with a HitShape to buf. Skips Visible=false or Interactable=false
// subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at screen position (x, y).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Later children draw on top, so walk backward.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if n.HitShape.Contains(x, y) {
			return n
		}
	}
	return nil
}

// --- Dispatch ---

// DispatchTouch routes a raw touch event through the scene. Each touch is
// hit-tested when it starts (falling back to the root) and keeps that target
// until it ends or is cancelled. The event bubbles from the target of every
// changed touch up to the root; a node on more than one of those paths fires
// once, so root listeners see each event exactly once.
func (s *Scene) DispatchTouch(ev *TouchEvent) {
	if ev == nil {
		return
	}
	path := s.touchPath(ev)
	if ev.Type == TouchEnd || ev.Type == TouchCancel {
		for _, t := range ev.Changed {
			delete(s.touchTargets, t.ID)
		}
	}
	if len(ev.Touches) == 0 {
		clear(s.touchTargets)
	}

	for _, n := range path {
		for _, h := range n.handlers.touchList(ev.Type) {
			h.fn(ev)
		}
	}
	clear(path)
}

// touchPath returns the deduplicated bubbling path for ev, deepest targets
// first. The returned slice aliases s.pathBuf.
func (s *Scene) touchPath(ev *TouchEvent) []*Node {
	path := s.pathBuf[:0]
	add := func(target *Node) {
		for n := target; n != nil; n = n.Parent {
			if containsNode(path, n) {
				// Every ancestor of n is already on the path too.
				return
			}
			path = append(path, n)
		}
	}

	if len(ev.Changed) == 0 {
		// No changed touches (e.g. a platform cancel): notify every live
		// target, or the root when none are known.
		for _, t := range ev.Touches {
			add(s.touchTarget(t, false))
		}
		if len(path) == 0 {
			for _, n := range s.touchTargets {
				if !n.disposed {
					add(n)
				}
			}
		}
		if len(path) == 0 {
			add(s.root)
		}
	} else {
		for _, t := range ev.Changed {
			add(s.touchTarget(t, ev.Type == TouchStart))
		}
	}
	s.pathBuf = path
	return path
}

// touchTarget returns the node owning touch t. Starting touches are always
// hit-tested; other touches reuse their stored target unless it was disposed
// or never recorded.
func (s *Scene) touchTarget(t Touch, start bool) *Node {
	if !start {
		if n, ok := s.touchTargets[t.ID]; ok && !n.disposed {
			return n
		}
	}
	target := s.root
	if hit := s.hitTest(t.ClientX, t.ClientY); hit != nil {
		target = hit
	}
	s.touchTargets[t.ID] = target
	return target
}

func containsNode(nodes []*Node, n *Node) bool {
	for _, c := range nodes {
		if c == n {
			return true
		}
	}
	return false
}

// DispatchPointer routes a pointer press or release. The topmost node under
// the pointer (or the root) is the target, and the event bubbles to the root,
// so root-level pointer-up listeners observe every release.
func (s *Scene) DispatchPointer(ev PointerEvent) {
	target := s.hitTest(ev.X, ev.Y)
	if target == nil {
		target = s.root
	}
	ctx := PointerContext{
		Target: target,
		X:      ev.X, Y: ev.Y,
		Button:    ev.Button,
		PointerID: ev.PointerID,
	}
	for n := target; n != nil; n = n.Parent {
		ctx.Node = n
		var list []pointerHandler
		switch ev.Type {
		case EventPointerDown:
			list = n.handlers.pointerDown
		case EventPointerUp:
			list = n.handlers.pointerUp
		default:
			return
		}
		for _, h := range list {
			h.fn(ctx)
		}
	}
}
