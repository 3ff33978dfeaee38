package gesture

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// Handler applies published gestures to one node's Transform: pinch scales
// it around the scale captured at creation, one-finger drag slides it on the
// X/Z plane.
//
// Gating:
//   - TwoFingerMove applies when Selected || Visible.
//   - OneFingerMove applies only when Selected.
//
// Selected is set by a pointer-down or touch-start on the node and cleared
// by any pointer-up or touch-end anywhere in the scene, so a drag that
// leaves the node's hit area still ends cleanly.
type Handler struct {
	// Selected is true while the node is being pressed.
	Selected bool
	// Visible lets pinch gestures apply without a press, e.g. while the
	// node is the only thing on screen.
	Visible bool

	node        *Node
	cfg         HandlerConfig
	scaleFactor float64
	baseScale   mgl64.Vec3
	handles     []CallbackHandle
}

// NewHandler attaches a handler to node. Gestures arrive through bus;
// selection listeners go on node (press) and on its scene root (release).
// The node must already be in its scene: a parentless node returns
// ErrDetachedNode, since release listeners on it would never see releases
// elsewhere in the scene.
func NewHandler(node *Node, bus Subscriber, cfg HandlerConfig) (*Handler, error) {
	if node == nil {
		return nil, ErrNilNode
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new handler %q: %w", node.Name, err)
	}
	if node.Parent == nil {
		return nil, fmt.Errorf("new handler %q: %w", node.Name, ErrDetachedNode)
	}
	h := &Handler{
		node:        node,
		cfg:         cfg,
		scaleFactor: 1,
		baseScale:   node.Transform.Scale,
	}

	root := node.Root()
	h.handles = append(h.handles,
		bus.Subscribe(TwoFingerMove, h.OnTwoFingerMove),
		bus.Subscribe(OneFingerMove, h.OnOneFingerMove),
		node.OnPointerDown(h.selectPointer),
		node.OnTouchStart(h.selectTouch),
		root.OnPointerUp(h.releasePointer),
		root.OnTouchEnd(h.releaseTouch),
	)
	return h, nil
}

// Detach removes every listener NewHandler registered. The node keeps its
// current transform.
func (h *Handler) Detach() {
	for _, cb := range h.handles {
		cb.Remove()
	}
	h.handles = h.handles[:0]
	h.Selected = false
}

// Node returns the node this handler drives.
func (h *Handler) Node() *Node { return h.node }

// Config returns the handler configuration.
func (h *Handler) Config() HandlerConfig { return h.cfg }

// SetEnabled turns gesture handling on or off.
func (h *Handler) SetEnabled(enabled bool) { h.cfg.Enabled = enabled }

// ScaleFactor returns the accumulated pinch factor, in [MinScale, MaxScale].
func (h *Handler) ScaleFactor() float64 { return h.scaleFactor }

// BaseScale returns the node scale captured when the handler was created.
func (h *Handler) BaseScale() mgl64.Vec3 { return h.baseScale }

// OnTwoFingerMove scales the node by the relative spread change, clamped to
// the configured bounds.
func (h *Handler) OnTwoFingerMove(ev GestureEvent) {
	if !h.cfg.Enabled || !(h.Selected || h.Visible) {
		return
	}
	if ev.Current == nil || ev.Current.Spread == 0 {
		logger.WithField("node", h.node.Name).Debug("skipping pinch with zero spread")
		return
	}

	factor := h.scaleFactor * (1 + ev.SpreadChange/ev.Current.Spread)
	clamped := mgl64.Clamp(factor, h.cfg.MinScale, h.cfg.MaxScale)
	if clamped != factor {
		logger.WithFields(logrus.Fields{
			"node":   h.node.Name,
			"factor": factor,
			"min":    h.cfg.MinScale,
			"max":    h.cfg.MaxScale,
		}).Debug("scale factor clamped")
	}
	h.scaleFactor = clamped
	h.node.Transform.Scale = h.baseScale.Mul(h.scaleFactor)
}

// OnOneFingerMove moves the node on the X/Z plane by the screen delta since
// the previous sample. Screen X maps to world X and screen Y to world Z,
// regardless of camera orientation; world Y is never touched.
func (h *Handler) OnOneFingerMove(ev GestureEvent) {
	if !h.cfg.Enabled || !h.Selected {
		return
	}
	if ev.Previous == nil || ev.Current == nil {
		return
	}
	delta := ev.Current.ScreenPosition.Sub(ev.Previous.ScreenPosition)
	h.node.Transform.Position[0] += delta.X() * DragSensitivity
	h.node.Transform.Position[2] += delta.Y() * DragSensitivity
}

func (h *Handler) selectPointer(PointerContext) { h.Selected = true }
func (h *Handler) selectTouch(*TouchEvent)      { h.Selected = true }
func (h *Handler) releasePointer(PointerContext) { h.Selected = false }
func (h *Handler) releaseTouch(*TouchEvent)      { h.Selected = false }
