package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

// gridScale is resolv units per world unit. resolv treats coordinates as pixels,
// so the world is scaled up to keep sub-tile precision.
const gridScale = 16

const tagSolid = "solid"

// GridWorld is a deterministic kinematic world over a resolv space.
// Bodies are axis-aligned boxes moved one axis at a time against solid tiles.
type GridWorld struct {
	space   *resolv.Space
	probe   *resolv.Object
	gravity entity.Vec2
	bodies  []*GridBody
}

// GridBody is a box body in a GridWorld
type GridBody struct {
	world *GridWorld
	pos   entity.Vec2 // center
	vel   entity.Vec2
	size  entity.Vec2

	onGround bool
}

// NewGridWorld builds a resolv space with one object per solid tile
func NewGridWorld(stage *entity.Stage, gravity float64) *GridWorld {
	ww, wh := stage.WorldSize()
	cell := int(stage.TileSize * gridScale)
	if cell <= 0 {
		cell = gridScale
	}
	space := resolv.NewSpace(int(math.Ceil(ww*gridScale)), int(math.Ceil(wh*gridScale)), cell, cell)

	stage.EachSolid(func(tx, ty int, tile entity.Tile) {
		x, y, w, h := stage.TileRect(tx, ty)
		tags := append([]string{tagSolid}, tile.Layers.Tags()...)
		obj := resolv.NewObject(x*gridScale, y*gridScale, w*gridScale, h*gridScale, tags...)
		obj.SetShape(resolv.NewRectangle(0, 0, w*gridScale, h*gridScale))
		space.Add(obj)
	})

	probe := resolv.NewObject(0, 0, 1, 1, "probe")
	space.Add(probe)

	return &GridWorld{
		space:   space,
		probe:   probe,
		gravity: entity.Vec2{Y: gravity},
	}
}

// AddBody creates a box body centered at (x, y)
func (w *GridWorld) AddBody(x, y, width, height float64) *GridBody {
	b := &GridBody{
		world: w,
		pos:   entity.Vec2{X: x, Y: y},
		size:  entity.Vec2{X: width, Y: height},
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Gravity returns the world gravity
func (w *GridWorld) Gravity() entity.Vec2 {
	return w.gravity
}

// Step integrates every body by dt: gravity first, then movement with collision
func (w *GridWorld) Step(dt float64) {
	for _, b := range w.bodies {
		b.vel = b.vel.Add(w.gravity.Scale(dt))
		b.move(b.vel.Scale(dt))
	}
}

// OverlapCircle reports whether a solid on mask lies within radius of center
func (w *GridWorld) OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) bool {
	area := boxAround(center, entity.Vec2{X: 2 * radius, Y: 2 * radius})
	for _, solid := range w.solidsNear(area, mask) {
		if circleTouches(center, radius, solid) {
			return true
		}
	}
	return false
}

// BoxCast reports whether a solid on mask lies in the cast region
func (w *GridWorld) BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool {
	region := castRegion(origin, size, dir, distance)
	for _, solid := range w.solidsNear(region, mask) {
		if region.overlaps(solid) {
			return true
		}
	}
	return false
}

// solidsNear returns the bounds of solid objects sharing cells with area.
// The probe is grown by one resolv unit so touching neighbours are included.
func (w *GridWorld) solidsNear(area aabb, mask entity.LayerMask) []aabb {
	w.probe.X = area.minX*gridScale - 1
	w.probe.Y = area.minY*gridScale - 1
	w.probe.W = (area.maxX-area.minX)*gridScale + 2
	w.probe.H = (area.maxY-area.minY)*gridScale + 2
	w.probe.Update()

	tags := mask.Tags()
	if mask == entity.LayerAll {
		tags = []string{tagSolid}
	}
	if len(tags) == 0 {
		return nil
	}

	check := w.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	solids := make([]aabb, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if !obj.HasTags(tagSolid) {
			continue
		}
		solids = append(solids, boxAt(obj.X/gridScale, obj.Y/gridScale, obj.W/gridScale, obj.H/gridScale))
	}
	return solids
}

// move slides the body by delta, X first then Y, stopping at solids
func (b *GridBody) move(delta entity.Vec2) {
	if delta.X != 0 {
		dx := b.clampX(delta.X)
		if dx != delta.X {
			b.vel.X = 0
		}
		b.pos.X += dx
	}

	b.onGround = false
	if delta.Y != 0 {
		dy := b.clampY(delta.Y)
		if dy != delta.Y {
			if delta.Y < 0 {
				b.onGround = true
			}
			b.vel.Y = 0
		}
		b.pos.Y += dy
	}
}

func (b *GridBody) clampX(dx float64) float64 {
	box := b.bounds()
	swept := box
	if dx > 0 {
		swept.maxX += dx
	} else {
		swept.minX += dx
	}
	for _, s := range b.world.solidsNear(swept, entity.LayerAll) {
		if !box.overlapsY(s) {
			continue
		}
		switch {
		case dx > 0 && s.minX >= box.maxX-contactEps:
			dx = math.Min(dx, s.minX-box.maxX)
		case dx < 0 && s.maxX <= box.minX+contactEps:
			dx = math.Max(dx, s.maxX-box.minX)
		}
	}
	return dx
}

func (b *GridBody) clampY(dy float64) float64 {
	box := b.bounds()
	swept := box
	if dy > 0 {
		swept.maxY += dy
	} else {
		swept.minY += dy
	}
	for _, s := range b.world.solidsNear(swept, entity.LayerAll) {
		if !box.overlapsX(s) {
			continue
		}
		switch {
		case dy > 0 && s.minY >= box.maxY-contactEps:
			dy = math.Min(dy, s.minY-box.maxY)
		case dy < 0 && s.maxY <= box.minY+contactEps:
			dy = math.Max(dy, s.maxY-box.minY)
		}
	}
	return dy
}

func (b *GridBody) bounds() aabb {
	return boxAround(b.pos, b.size)
}

// Position returns the body center
func (b *GridBody) Position() entity.Vec2 {
	return b.pos
}

// Velocity returns the body velocity
func (b *GridBody) Velocity() entity.Vec2 {
	return b.vel
}

// SetVelocity replaces the body velocity
func (b *GridBody) SetVelocity(v entity.Vec2) {
	b.vel = v
}

// Size returns the collider size
func (b *GridBody) Size() entity.Vec2 {
	return b.size
}

// OnGround reports whether the last step ended on a solid below
func (b *GridBody) OnGround() bool {
	return b.onGround
}

// Teleport moves the body and clears its velocity
func (b *GridBody) Teleport(x, y float64) {
	b.pos = entity.Vec2{X: x, Y: y}
	b.vel = entity.Vec2{}
}
