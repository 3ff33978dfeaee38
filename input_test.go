package gesture

import "testing"

func newHitNode(name string, r HitRect) *Node {
	n := NewNode(name)
	n.Interactable = true
	n.HitShape = r
	return n
}

// --- Hit test traversal ---

func TestHitTest_TopmostNode(t *testing.T) {
	s := NewScene()
	a := newHitNode("a", HitRect{Width: 100, Height: 100})
	b := newHitNode("b", HitRect{Width: 100, Height: 100})
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	if hit := s.hitTest(50, 50); hit != b {
		t.Errorf("expected topmost node b, got %v", hit)
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	s := NewScene()
	a := newHitNode("a", HitRect{Width: 100, Height: 100})
	b := newHitNode("b", HitRect{Width: 100, Height: 100})
	b.Visible = false
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	if hit := s.hitTest(50, 50); hit != a {
		t.Errorf("expected node a (b is invisible), got %v", hit)
	}
}

func TestHitTest_SkipsNonInteractableSubtree(t *testing.T) {
	s := NewScene()
	group := NewNode("group") // Interactable defaults to false
	child := newHitNode("child", HitRect{Width: 100, Height: 100})
	group.AddChild(child)
	s.Root().AddChild(group)

	if hit := s.hitTest(50, 50); hit != nil {
		t.Errorf("expected no hit inside a non-interactable group, got %v", hit.Name)
	}
}

func TestHitTest_Miss(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(newHitNode("a", HitRect{Width: 10, Height: 10}))

	if hit := s.hitTest(500, 500); hit != nil {
		t.Errorf("expected nil, got %v", hit.Name)
	}
}

// --- Dispatch ---

func TestDispatchTouchBubblesToRoot(t *testing.T) {
	s := NewScene()
	parent := NewNode("parent")
	parent.Interactable = true
	child := newHitNode("child", HitRect{Width: 100, Height: 100})
	parent.AddChild(child)
	s.Root().AddChild(parent)

	var order []string
	child.OnTouchStart(func(*TouchEvent) { order = append(order, "child") })
	parent.OnTouchStart(func(*TouchEvent) { order = append(order, "parent") })
	s.Root().OnTouchStart(func(*TouchEvent) { order = append(order, "root") })

	s.DispatchTouch(touchEvent(TouchStart, 10, 10))

	want := []string{"child", "parent", "root"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestDispatchTouchKeepsSessionTarget(t *testing.T) {
	s := NewScene()
	node := newHitNode("node", HitRect{Width: 100, Height: 100})
	s.Root().AddChild(node)

	var moves int
	node.OnTouchMove(func(*TouchEvent) { moves++ })

	s.DispatchTouch(touchEvent(TouchStart, 10, 10))
	// Finger leaves the hit area; the session still targets node.
	s.DispatchTouch(touchEvent(TouchMove, 400, 400))
	if moves != 1 {
		t.Fatalf("moves = %d, want 1", moves)
	}

	s.DispatchTouch(&TouchEvent{Type: TouchEnd, Changed: touches(400, 400)})
	// New session starting outside the node goes to the root.
	s.DispatchTouch(touchEvent(TouchStart, 400, 400))
	s.DispatchTouch(touchEvent(TouchMove, 50, 50))
	if moves != 1 {
		t.Errorf("moves = %d, want 1 (new session targets root)", moves)
	}
}

func TestDispatchTouchRoutesByType(t *testing.T) {
	s := NewScene()
	counts := map[string]int{}
	s.Root().OnTouchStart(func(*TouchEvent) { counts["start"]++ })
	s.Root().OnTouchMove(func(*TouchEvent) { counts["move"]++ })
	s.Root().OnTouchEnd(func(*TouchEvent) { counts["end"]++ })
	s.Root().OnTouchCancel(func(*TouchEvent) { counts["cancel"]++ })

	s.DispatchTouch(touchEvent(TouchStart, 1, 1))
	s.DispatchTouch(touchEvent(TouchMove, 2, 2))
	s.DispatchTouch(touchEvent(TouchMove, 3, 3))
	s.DispatchTouch(&TouchEvent{Type: TouchCancel})
	s.DispatchTouch(nil)

	if counts["start"] != 1 || counts["move"] != 2 || counts["end"] != 0 || counts["cancel"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestDispatchPointerContext(t *testing.T) {
	s := NewScene()
	node := newHitNode("node", HitRect{Width: 100, Height: 100})
	s.Root().AddChild(node)

	var ctxs []PointerContext
	node.OnPointerDown(func(ctx PointerContext) { ctxs = append(ctxs, ctx) })
	s.Root().OnPointerDown(func(ctx PointerContext) { ctxs = append(ctxs, ctx) })

	s.DispatchPointer(PointerEvent{Type: EventPointerDown, X: 30, Y: 40, Button: MouseButtonRight, PointerID: 2})

	if len(ctxs) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(ctxs))
	}
	if ctxs[0].Node != node || ctxs[1].Node != s.Root() {
		t.Error("Node should be the listening node during bubbling")
	}
	for _, ctx := range ctxs {
		if ctx.Target != node {
			t.Errorf("Target = %v, want node", ctx.Target)
		}
		if ctx.X != 30 || ctx.Y != 40 || ctx.Button != MouseButtonRight || ctx.PointerID != 2 {
			t.Errorf("ctx = %+v", ctx)
		}
	}
}

func TestRemoveListenerDuringDispatch(t *testing.T) {
	s := NewScene()
	var calls []string
	var second CallbackHandle
	s.Root().OnPointerUp(func(PointerContext) {
		calls = append(calls, "first")
		second.Remove()
	})
	second = s.Root().OnPointerUp(func(PointerContext) { calls = append(calls, "second") })

	s.DispatchPointer(PointerEvent{Type: EventPointerUp})
	s.DispatchPointer(PointerEvent{Type: EventPointerUp})

	want := []string{"first", "second", "first"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventPointerDown: "pointerdown",
		EventPointerUp:   "pointerup",
		EventTouchStart:  "touchstart",
		EventTouchMove:   "touchmove",
		EventTouchEnd:    "touchend",
		EventTouchCancel: "touchcancel",
		EventType(200):   "unknown",
	}
	for ev, want := range tests {
		if got := ev.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", ev, got, want)
		}
	}
}

func TestDispatchTouchSecondFingerTargetsItsOwnNode(t *testing.T) {
	s := NewScene()
	node := newHitNode("node", HitRect{Width: 100, Height: 100})
	s.Root().AddChild(node)

	var nodeStarts, rootStarts, nodeMoves int
	node.OnTouchStart(func(*TouchEvent) { nodeStarts++ })
	node.OnTouchMove(func(*TouchEvent) { nodeMoves++ })
	s.Root().OnTouchStart(func(*TouchEvent) { rootStarts++ })

	first := Touch{ID: 0, ClientX: 500, ClientY: 500}
	second := Touch{ID: 1, ClientX: 50, ClientY: 50}
	s.DispatchTouch(&TouchEvent{Type: TouchStart, Touches: []Touch{first}, Changed: []Touch{first}})
	if nodeStarts != 0 || rootStarts != 1 {
		t.Fatalf("first finger: nodeStarts=%d rootStarts=%d", nodeStarts, rootStarts)
	}

	s.DispatchTouch(&TouchEvent{Type: TouchStart, Touches: []Touch{first, second}, Changed: []Touch{second}})
	if nodeStarts != 1 {
		t.Errorf("second finger on node: nodeStarts = %d, want 1", nodeStarts)
	}
	if rootStarts != 2 {
		t.Errorf("rootStarts = %d, want 2", rootStarts)
	}

	// The second finger keeps its target after sliding off the node.
	second.ClientX = 700
	s.DispatchTouch(&TouchEvent{Type: TouchMove, Touches: []Touch{first, second}, Changed: []Touch{second}})
	if nodeMoves != 1 {
		t.Errorf("nodeMoves = %d, want 1", nodeMoves)
	}

	// Moving only the first finger stays on the root.
	first.ClientX = 40
	first.ClientY = 40
	s.DispatchTouch(&TouchEvent{Type: TouchMove, Touches: []Touch{first, second}, Changed: []Touch{first}})
	if nodeMoves != 1 {
		t.Errorf("nodeMoves = %d after first-finger move, want 1", nodeMoves)
	}
}

func TestDispatchTouchSharedAncestorFiresOnce(t *testing.T) {
	s := NewScene()
	a := newHitNode("a", HitRect{Width: 100, Height: 100})
	b := newHitNode("b", HitRect{X: 200, Width: 100, Height: 100})
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var order []string
	a.OnTouchStart(func(*TouchEvent) { order = append(order, "a") })
	b.OnTouchStart(func(*TouchEvent) { order = append(order, "b") })
	s.Root().OnTouchStart(func(*TouchEvent) { order = append(order, "root") })

	s.DispatchTouch(touchEvent(TouchStart, 50, 50, 250, 50))

	want := []string{"a", "root", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestDispatchTouchEndForgetsTarget(t *testing.T) {
	s := NewScene()
	node := newHitNode("node", HitRect{Width: 100, Height: 100})
	s.Root().AddChild(node)

	var nodeMoves int
	node.OnTouchMove(func(*TouchEvent) { nodeMoves++ })

	keep := Touch{ID: 0, ClientX: 500, ClientY: 500}
	lift := Touch{ID: 1, ClientX: 50, ClientY: 50}
	s.DispatchTouch(&TouchEvent{Type: TouchStart, Touches: []Touch{keep, lift}, Changed: []Touch{keep, lift}})
	s.DispatchTouch(&TouchEvent{Type: TouchEnd, Touches: []Touch{keep}, Changed: []Touch{lift}})
	if _, ok := s.touchTargets[lift.ID]; ok {
		t.Error("ended touch should drop its target")
	}

	// A new touch reusing ID 1 outside the node is not routed to it.
	lift.ClientX, lift.ClientY = 600, 600
	s.DispatchTouch(&TouchEvent{Type: TouchMove, Touches: []Touch{keep, lift}, Changed: []Touch{lift}})
	if nodeMoves != 0 {
		t.Errorf("nodeMoves = %d, want 0", nodeMoves)
	}
}
