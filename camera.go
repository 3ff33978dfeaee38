package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned rectangle. Viewports use screen pixels; camera
// bounds use world X (across) and world Z (down).
type Rect struct {
	X, Y, Width, Height float64
}

// scrollAnim holds active scroll-to tweens for camera X and Z.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneZ  bool
}

// Camera looks straight down the world Y axis onto the X/Z plane and maps
// world positions into a screen viewport. World X runs right and world Z
// runs down at zero rotation.
//
// The camera only affects projection and hit shapes. Drag gestures always
// move objects along world X and Z by the raw screen delta.
type Camera struct {
	// X and Z are the world-space point the camera centers on.
	X, Z float64
	// Zoom is screen pixels per world unit.
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followTarget *Node
	followLerp   float64

	// BoundsEnabled clamps the camera center into Bounds.
	BoundsEnabled bool
	Bounds        Rect

	view    mgl64.Mat3
	invView mgl64.Mat3
	dirty   bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the world origin. The default zoom
// is 1/DragSensitivity, so a dragged object stays under the finger.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1 / DragSensitivity,
		Viewport: viewport,
		dirty:    true,
	}
}

// Follow makes the camera track a node's X/Z position. A lerp of 1.0 snaps
// immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, lerp float64) {
	c.followTarget = node
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera center to (x, z) over duration seconds.
func (c *Camera) ScrollTo(x, z float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenZ: gween.New(float32(c.Z), float32(z), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow, scroll and bounds clamping. Call once per frame.
func (c *Camera) Update(dt float32) {
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		p := c.followTarget.Transform.Position
		c.X += (p.X() - c.X) * c.followLerp
		c.Z += (p.Z() - c.Z) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneZ {
			val, done := c.scrollTween.tweenZ.Update(dt)
			c.Z = float64(val)
			c.scrollTween.doneZ = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneZ {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.X = math.Max(c.Bounds.X, math.Min(c.X, c.Bounds.X+c.Bounds.Width))
		c.Z = math.Max(c.Bounds.Y, math.Min(c.Z, c.Bounds.Y+c.Bounds.Height))
	}
	c.dirty = true
}

// MarkDirty forces a recomputation of the view matrix after X, Z, Zoom,
// Rotation or Viewport were changed directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Z)
// where cx, cy = viewport center.
func (c *Camera) viewMatrix() mgl64.Mat3 {
	if !c.dirty {
		return c.view
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	c.view = mgl64.Translate2D(cx, cy).
		Mul3(mgl64.Scale2D(c.Zoom, c.Zoom)).
		Mul3(mgl64.HomogRotate2D(-c.Rotation)).
		Mul3(mgl64.Translate2D(-c.X, -c.Z))
	c.invView = c.view.Inv()
	return c.view
}

// WorldToScreen projects a world position onto the screen. World Y is
// ignored.
func (c *Camera) WorldToScreen(p mgl64.Vec3) mgl64.Vec2 {
	s := c.viewMatrix().Mul3x1(mgl64.Vec3{p.X(), p.Z(), 1})
	return mgl64.Vec2{s.X(), s.Y()}
}

// ScreenToWorld returns the point on the ground plane (Y = 0) under a screen
// position.
func (c *Camera) ScreenToWorld(sx, sy float64) mgl64.Vec3 {
	c.viewMatrix()
	w := c.invView.Mul3x1(mgl64.Vec3{sx, sy, 1})
	return mgl64.Vec3{w.X(), 0, w.Y()}
}

// SyncHitShape sets n.HitShape to the screen outline of a square footprint
// size world units wide, centered on the node and scaled by its X and Z
// scale. Call after the node or the camera moves.
func (c *Camera) SyncHitShape(n *Node, size float64) {
	pos := n.Transform.Position
	hx := size * n.Transform.Scale.X() / 2
	hz := size * n.Transform.Scale.Z() / 2

	poly, ok := n.HitShape.(HitPolygon)
	if !ok || len(poly.Points) != 4 {
		poly = HitPolygon{Points: make([]mgl64.Vec2, 4)}
	}
	poly.Points[0] = c.WorldToScreen(mgl64.Vec3{pos.X() - hx, 0, pos.Z() - hz})
	poly.Points[1] = c.WorldToScreen(mgl64.Vec3{pos.X() + hx, 0, pos.Z() - hz})
	poly.Points[2] = c.WorldToScreen(mgl64.Vec3{pos.X() + hx, 0, pos.Z() + hz})
	poly.Points[3] = c.WorldToScreen(mgl64.Vec3{pos.X() - hx, 0, pos.Z() + hz})
	n.HitShape = poly
}
