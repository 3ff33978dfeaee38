package gesture

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates the three components of a Transform vector
// simultaneously. Create one with TweenPosition or TweenScale and call
// Update(dt) each frame. If the target node is disposed, the group stops
// immediately.
//
// There is no global animation manager; callers run Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	fields [3]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := range g.tweens {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func newVec3Tween(node *Node, v *mgl64.Vec3, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	for i := range g.tweens {
		g.tweens[i] = gween.New(float32(v[i]), float32(to[i]), duration, fn)
		g.fields[i] = &v[i]
	}
	return g
}

// TweenPosition creates a TweenGroup that animates node.Transform.Position
// to the target over the specified duration using the easing function.
func TweenPosition(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec3Tween(node, &node.Transform.Position, to, duration, fn)
}

// TweenScale creates a TweenGroup that animates node.Transform.Scale to the
// target over the specified duration using the easing function.
func TweenScale(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec3Tween(node, &node.Transform.Scale, to, duration, fn)
}

// Reset drops the accumulated pinch factor and returns a tween that eases
// the node back to its base scale. Gestures arriving while the tween runs
// start from factor 1.
func (h *Handler) Reset(duration float32, fn ease.TweenFunc) *TweenGroup {
	h.scaleFactor = 1
	return TweenScale(h.node, h.baseScale, duration, fn)
}
