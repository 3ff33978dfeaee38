package gesture

import "github.com/sirupsen/logrus"

// Scene is the top-level object that owns the node tree, the gesture bus and
// the raw input routing state.
type Scene struct {
	root  *Node
	bus   *Bus
	debug bool

	// Input state
	touchTargets map[int]*Node // touch ID -> node the touch started on
	hitBuf       []*Node
	pathBuf      []*Node

	// Scripted input
	injectQueue []*TouchEvent
	testRunner  *TestRunner
}

// NewScene creates a new scene with a pre-created root node and an empty
// gesture bus.
func NewScene() *Scene {
	root := NewNode("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		bus:          NewBus(),
		touchTargets: make(map[int]*Node),
	}
}

// Root returns the scene's root node. Listeners on the root observe every
// input event in the scene.
func (s *Scene) Root() *Node {
	return s.root
}

// Bus returns the scene's gesture bus.
func (s *Scene) Bus() *Bus {
	return s.bus
}

// Update advances the test runner and dispatches at most one injected touch
// event. Call it once per frame.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and the
// default logger emits debug entries for gesture decisions.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		defaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		defaultLogger.SetLevel(logrus.InfoLevel)
	}
}
