package system

import "github.com/younwookim/motionctl/internal/domain/entity"

// FixedUpdate shapes the fall once per physics step of dt seconds.
// It only adds the extra gravity; the physics engine applies the base 1x itself.
// A body the controller created has no engine, so it is integrated here.
func (c *MotionController) FixedUpdate(dt float64) {
	if !c.enabled {
		return
	}
	vel := c.body.Velocity()
	if extra := c.extraGravity(vel.Y); extra != 0 {
		vel.Y += c.gravity().Y * extra * dt
		c.body.SetVelocity(vel)
	}
	if c.ownBody != nil {
		c.ownBody.Integrate(c.gravity(), dt)
	}
}

// extraGravity returns the gravity multiplier added on top of the base gravity
func (c *MotionController) extraGravity(vy float64) float64 {
	switch {
	case vy < 0:
		return c.config.FallMultiplier - 1
	case vy > 0 && !c.input.JumpHeld():
		return c.config.LowFallMultiplier - 1
	}
	return 0
}

func (c *MotionController) gravity() entity.Vec2 {
	if c.world == nil {
		return entity.Vec2{}
	}
	return c.world.Gravity()
}
