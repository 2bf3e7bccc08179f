package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

// bodyCategory keeps dynamic bodies out of level queries
const bodyCategory uint = 1 << 16

// ChipmunkWorld is a rigid-body world backed by a cp space.
// Stage tiles become static boxes whose filter categories are their layers.
type ChipmunkWorld struct {
	space   *cp.Space
	gravity entity.Vec2
}

// ChipmunkBody is a rotation-locked box body
type ChipmunkBody struct {
	body  *cp.Body
	shape *cp.Shape
	size  entity.Vec2
}

// NewChipmunkWorld builds a space with static geometry for every solid tile
func NewChipmunkWorld(stage *entity.Stage, gravity float64) *ChipmunkWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &ChipmunkWorld{space: space, gravity: entity.Vec2{Y: gravity}}
	if stage != nil {
		stage.EachSolid(func(tx, ty int, tile entity.Tile) {
			x, y, tw, th := stage.TileRect(tx, ty)
			shape := cp.NewBox2(space.StaticBody, cp.BB{L: x, B: y, R: x + tw, T: y + th}, 0)
			shape.SetFriction(0)
			shape.SetElasticity(0)
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(tile.Layers), cp.ALL_CATEGORIES))
			space.AddShape(shape)
		})
	}
	return w
}

// AddBody creates a dynamic box centered at (x, y)
func (w *ChipmunkWorld) AddBody(x, y, width, height float64) *ChipmunkBody {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	// The controller owns horizontal speed; friction would fight it on the ground
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, bodyCategory, cp.ALL_CATEGORIES))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	return &ChipmunkBody{body: body, shape: shape, size: entity.Vec2{X: width, Y: height}}
}

// Step advances the simulation by dt seconds
func (w *ChipmunkWorld) Step(dt float64) {
	w.space.Step(dt)
}

// Gravity returns the space gravity
func (w *ChipmunkWorld) Gravity() entity.Vec2 {
	return w.gravity
}

// OverlapCircle reports whether a static shape on mask lies within radius of center
func (w *ChipmunkWorld) OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) bool {
	info := w.space.PointQueryNearest(toVector(center), radius, queryFilter(mask))
	return info != nil && info.Shape != nil
}

// BoxCast reports whether a static shape on mask lies in the cast region
func (w *ChipmunkWorld) BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool {
	r := castRegion(origin, size, dir, distance)
	hit := false
	w.space.BBQuery(cp.BB{L: r.minX, B: r.minY, R: r.maxX, T: r.maxY}, queryFilter(mask), func(shape *cp.Shape, data interface{}) {
		hit = true
	}, nil)
	return hit
}

func queryFilter(mask entity.LayerMask) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask)&^bodyCategory)
}

// Position returns the body center
func (b *ChipmunkBody) Position() entity.Vec2 {
	return fromVector(b.body.Position())
}

// Velocity returns the body velocity
func (b *ChipmunkBody) Velocity() entity.Vec2 {
	return fromVector(b.body.Velocity())
}

// SetVelocity replaces the body velocity
func (b *ChipmunkBody) SetVelocity(v entity.Vec2) {
	b.body.SetVelocityVector(toVector(v))
}

// Size returns the collider size
func (b *ChipmunkBody) Size() entity.Vec2 {
	return b.size
}

// Teleport moves the body and clears its velocity
func (b *ChipmunkBody) Teleport(x, y float64) {
	b.body.SetPosition(cp.Vector{X: x, Y: y})
	b.body.SetVelocityVector(cp.Vector{})
}

func toVector(v entity.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) entity.Vec2 {
	return entity.Vec2{X: v.X, Y: v.Y}
}
