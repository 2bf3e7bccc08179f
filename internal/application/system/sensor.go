package system

import (
	"errors"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

var (
	// ErrAnchorUnset is reported when no ground check anchor was supplied
	ErrAnchorUnset = errors.New("ground check anchor is not set")
	// ErrNoContactWorld is reported when the sensor has nothing to query
	ErrNoContactWorld = errors.New("contact world is not set")
)

// ContactWorld answers overlap and cast queries against level geometry.
// Shapes not matching mask are ignored.
type ContactWorld interface {
	OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) bool
	BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool
}

// PhysicsWorld is a ContactWorld that also exposes its gravity
type PhysicsWorld interface {
	ContactWorld
	Gravity() entity.Vec2
}

// Sensor probes ground and wall contacts around a body
type Sensor struct {
	config *config.MotionSettings
	world  ContactWorld
	body   entity.Body
	anchor entity.Anchor
}

// NewSensor creates a sensor. Missing collaborators are reported by Validate
// and make every query return false.
func NewSensor(cfg *config.MotionSettings, world ContactWorld, body entity.Body, anchor entity.Anchor) *Sensor {
	return &Sensor{
		config: cfg,
		world:  world,
		body:   body,
		anchor: anchor,
	}
}

// Validate reports configuration problems found at startup
func (s *Sensor) Validate() error {
	var errs []error
	if s.anchor == nil {
		errs = append(errs, ErrAnchorUnset)
	}
	if s.world == nil {
		errs = append(errs, ErrNoContactWorld)
	}
	return errors.Join(errs...)
}

// Grounded reports whether a ground-layer shape overlaps the circle at the anchor
func (s *Sensor) Grounded() bool {
	if s.world == nil || s.anchor == nil {
		return false
	}
	return s.world.OverlapCircle(s.anchor.Position(), s.config.GroundCheckRadius, s.config.GroundMask())
}

// TouchingWallLeft reports a wall-layer contact on the left side
func (s *Sensor) TouchingWallLeft() bool {
	return s.wallCast(-1)
}

// TouchingWallRight reports a wall-layer contact on the right side
func (s *Sensor) TouchingWallRight() bool {
	return s.wallCast(1)
}

// TouchingWall reports a wall contact on the side given by sign(dir)
func (s *Sensor) TouchingWall(dir float64) bool {
	switch entity.Sign(dir) {
	case 1:
		return s.TouchingWallRight()
	case -1:
		return s.TouchingWallLeft()
	}
	return false
}

func (s *Sensor) wallCast(dir float64) bool {
	if s.world == nil || s.body == nil {
		return false
	}
	size := entity.Vec2{X: s.config.WallCheckBox.X, Y: s.config.WallCheckBox.Y}
	return s.world.BoxCast(s.body.Position(), size, entity.Vec2{X: dir}, s.config.WallCheckRadius, s.config.WallMask())
}
