// Package gesture turns raw multi-touch input into drag and pinch gestures
// and applies them to objects in a 3D scene.
//
// The pipeline has four stages:
//
//   - [Sample] reduces a [TouchEvent] to a [TouchState]: touch count, the
//     primary finger's screen position and, for two fingers, their spread.
//   - A [Detector] compares each sample with the previous one and publishes
//     [OneFingerMove] or [TwoFingerMove] on a [Bus].
//   - The [Bus] delivers each [GestureEvent] synchronously to every
//     subscriber, and optionally to an [EntityStore].
//   - A [Handler] per object scales it on pinch (clamped to a configured
//     range) and slides it across the X/Z plane on drag.
//
// # Quick start
//
//	scene := gesture.NewScene()
//	model := gesture.NewNode("model")
//	model.Interactable = true
//	model.HitShape = gesture.HitRect{X: 100, Y: 100, Width: 200, Height: 200}
//	scene.Root().AddChild(model)
//
//	det := gesture.NewDetector(scene.Bus(), gesture.DetectorConfig{})
//	det.Attach(scene.Root())
//	h, err := gesture.NewHandler(model, scene.Bus(), gesture.DefaultHandlerConfig())
//
// Feed input with [Scene.DispatchTouch] and [Scene.DispatchPointer], or use
// the ebitengine subpackage to poll Ebitengine's touch and mouse state.
//
// # Selection
//
// Handlers react only while their object is engaged. A pointer-down or
// touch-start on the node selects it; any pointer-up or touch-end in the
// scene deselects it. Drags require selection. Pinches apply when the object
// is selected or its handler's Visible flag is set.
//
// # Touch routing
//
// Each touch is hit-tested against every interactable node's [HitShape] when
// it starts and keeps that node as its target until it ends. Events bubble
// from the target of every changed touch up to [Scene.Root], firing each
// node once, so a second finger landing on an object selects it and a
// detector attached to the root sees every event exactly once.
//
// # Configuration
//
// [LoadConfig] reads TOML with [handler], [detector] and per-object
// [objects.<name>] tables, then applies GESTURE_* environment overrides:
//
//	[handler]
//	min_scale = 0.5
//	max_scale = 4.0
//
//	[objects.cube]
//	max_scale = 2.0
//
// # Scripted input
//
// [Scene.InjectTap], [Scene.InjectDrag] and [Scene.InjectPinch] queue
// synthetic touch sessions that replay one event per [Scene.Update].
// [LoadTestScript] builds a [TestRunner] from a JSON list of such actions.
//
// # Logging
//
// The package logs through logrus. Replace the logger with [SetLogger];
// [Scene.SetDebugMode] turns on debug entries and tree sanity checks.
package gesture
