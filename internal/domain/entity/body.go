package entity

import "math"

// Vec2 is a 2D vector in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Body is the physically simulated body a controller drives.
// The physics engine owns integration; the controller only reads and writes velocity.
type Body interface {
	Position() Vec2
	Velocity() Vec2
	SetVelocity(v Vec2)
}

// PointBody is a minimal Body with no collision shape.
// Used when the host does not provide a body of its own.
type PointBody struct {
	Pos Vec2
	Vel Vec2
}

// NewPointBody creates a point body at the given position
func NewPointBody(x, y float64) *PointBody {
	return &PointBody{Pos: Vec2{X: x, Y: y}}
}

// Position returns the body position
func (b *PointBody) Position() Vec2 {
	return b.Pos
}

// Velocity returns the body velocity
func (b *PointBody) Velocity() Vec2 {
	return b.Vel
}

// SetVelocity replaces the body velocity
func (b *PointBody) SetVelocity(v Vec2) {
	b.Vel = v
}

// Integrate applies gravity and advances position by dt (semi-implicit Euler)
func (b *PointBody) Integrate(gravity Vec2, dt float64) {
	b.Vel = b.Vel.Add(gravity.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Anchor is a reference point attached to a body, e.g. the ground check point at the feet.
type Anchor interface {
	Position() Vec2
}

// OffsetAnchor follows a body at a fixed offset
type OffsetAnchor struct {
	Body   Body
	Offset Vec2
}

// Position returns the anchor's world position
func (a OffsetAnchor) Position() Vec2 {
	return a.Body.Position().Add(a.Offset)
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// ApproxZero reports whether |x| is within eps
func ApproxZero(x, eps float64) bool {
	return math.Abs(x) <= eps
}
