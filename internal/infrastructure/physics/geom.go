package physics

import "github.com/younwookim/motionctl/internal/domain/entity"

// contactEps absorbs float drift when a box rests exactly against another
const contactEps = 1e-6

// aabb is an axis-aligned box in world units
type aabb struct {
	minX, minY, maxX, maxY float64
}

func boxAround(center, size entity.Vec2) aabb {
	hw, hh := size.X/2, size.Y/2
	return aabb{center.X - hw, center.Y - hh, center.X + hw, center.Y + hh}
}

func boxAt(x, y, w, h float64) aabb {
	return aabb{x, y, x + w, y + h}
}

// overlaps is inclusive: boxes sharing an edge touch
func (b aabb) overlaps(o aabb) bool {
	return b.minX <= o.maxX && o.minX <= b.maxX && b.minY <= o.maxY && o.minY <= b.maxY
}

// overlapsX/overlapsY ignore mere edge contact, so a body sliding along a floor
// is not blocked by it
func (b aabb) overlapsX(o aabb) bool {
	return b.minX < o.maxX-contactEps && o.minX < b.maxX-contactEps
}

func (b aabb) overlapsY(o aabb) bool {
	return b.minY < o.maxY-contactEps && o.minY < b.maxY-contactEps
}

// castRegion returns the area a box cast covers: the half of the box ahead of
// origin along dir, extended by distance. A zero dir covers the whole box.
func castRegion(origin, size, dir entity.Vec2, distance float64) aabb {
	r := boxAround(origin, size)
	d := dir.Scale(distance)
	switch {
	case dir.X > 0:
		r.minX = origin.X
		r.maxX += d.X
	case dir.X < 0:
		r.maxX = origin.X
		r.minX += d.X
	}
	switch {
	case dir.Y > 0:
		r.minY = origin.Y
		r.maxY += d.Y
	case dir.Y < 0:
		r.maxY = origin.Y
		r.minY += d.Y
	}
	return r
}

// circleTouches reports whether a circle reaches the box (boundary included)
func circleTouches(center entity.Vec2, radius float64, b aabb) bool {
	cx := clamp(center.X, b.minX, b.maxX)
	cy := clamp(center.Y, b.minY, b.maxY)
	dx, dy := center.X-cx, center.Y-cy
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
