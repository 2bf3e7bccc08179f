package system

import (
	"errors"
	"log/slog"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// JumpKind tells which rule fired a jump on the last tick
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpDouble
)

// String returns the string representation of the jump kind
func (k JumpKind) String() string {
	switch k {
	case JumpNone:
		return "none"
	case JumpGround:
		return "ground"
	case JumpDouble:
		return "double"
	default:
		return "unknown"
	}
}

// MotionController drives a single body: horizontal movement, jumps and fall shaping.
// Update runs once per rendered frame, FixedUpdate once per physics step.
// Both must be called from the same goroutine.
type MotionController struct {
	config *config.MotionSettings
	body   entity.Body
	world  PhysicsWorld
	sensor *Sensor
	input  *InputSampler
	timers TimerBank
	anchor entity.Anchor
	logger *slog.Logger

	state    entity.MotionState
	enabled  bool
	lastJump JumpKind

	// Set when no body was supplied; FixedUpdate then integrates it
	ownBody *entity.PointBody
}

// Option configures a MotionController
type Option func(*MotionController)

// WithLogger sets the logger used for configuration diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *MotionController) {
		c.logger = l
	}
}

// WithGroundAnchor sets the point the ground check is centered on
func WithGroundAnchor(a entity.Anchor) Option {
	return func(c *MotionController) {
		c.anchor = a
	}
}

// NewMotionController creates a controller for body in world, reading src.
// A nil body is replaced by a PointBody at the origin, which FixedUpdate integrates itself.
// The controller does not receive input edges until Activate is called.
func NewMotionController(cfg *config.MotionSettings, body entity.Body, world PhysicsWorld, src InputSource, opts ...Option) *MotionController {
	var own *entity.PointBody
	if body == nil {
		own = entity.NewPointBody(0, 0)
		body = own
	}
	c := &MotionController{
		config:  cfg,
		body:    body,
		world:   world,
		input:   NewInputSampler(src),
		timers:  NewTimerBank(cfg),
		logger:  slog.Default(),
		state:   entity.NewMotionState(cfg.MoveSpeed),
		enabled: cfg.ControlEnabled,
		ownBody: own,
	}
	for _, opt := range opts {
		opt(c)
	}

	var contacts ContactWorld
	if world != nil {
		contacts = world
	}
	c.sensor = NewSensor(cfg, contacts, body, c.anchor)

	if err := c.Validate(); err != nil {
		c.logger.Warn("motion controller misconfigured", "error", err)
	}
	return c
}

// Validate reports settings and collaborator problems
func (c *MotionController) Validate() error {
	return errors.Join(c.config.Validate(), c.sensor.Validate())
}

// Activate subscribes to input edges. Idempotent.
func (c *MotionController) Activate() {
	c.input.Attach()
}

// Deactivate unsubscribes from input edges. Idempotent.
func (c *MotionController) Deactivate() {
	c.input.Detach()
}

// Active reports whether the controller is subscribed to input
func (c *MotionController) Active() bool {
	return c.input.Attached()
}

// SetControlEnabled gates both Update and FixedUpdate
func (c *MotionController) SetControlEnabled(enabled bool) {
	c.enabled = enabled
}

// ControlEnabled reports whether the controller is processing ticks
func (c *MotionController) ControlEnabled() bool {
	return c.enabled
}

// Reconfigure swaps in new settings between ticks.
// Timers and flags are kept; the new values apply from the next tick.
func (c *MotionController) Reconfigure(cfg *config.MotionSettings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.config = cfg
	c.timers = NewTimerBank(cfg)
	c.sensor.config = cfg
	return nil
}

// Settings returns the active settings
func (c *MotionController) Settings() *config.MotionSettings {
	return c.config
}

// Update runs one logic tick of dt seconds
func (c *MotionController) Update(dt float64) {
	c.lastJump = JumpNone
	edges := c.input.Drain()

	// Sprint is a held level, so it is tracked even while control is off
	switch edges.Sprint {
	case entity.EdgeSprintOn:
		c.state.IsRunning = true
	case entity.EdgeSprintOff:
		c.state.IsRunning = false
	}

	if !c.enabled {
		return
	}

	grounded := c.sensor.Grounded()
	c.state.IsGrounded = grounded
	if grounded {
		c.state.CurrentSpeed = c.config.SpeedFor(c.state.IsRunning)
		c.state.HasDoubleJumped = false
	}

	if edges.JumpPressed {
		c.timers.ArmJumpBuffer(&c.state)
	}
	if edges.JumpReleased {
		c.cutJump()
	}
	c.timers.Tick(&c.state, grounded, edges.JumpPressed, dt)

	axis := c.input.Axis()
	vel := c.body.Velocity()

	// Facing follows the velocity the physics step produced, one tick behind the input
	c.state.UpdateFacing(vel.X)

	vel.X = c.horizontalVelocity(axis, grounded)
	vel = c.resolveJump(vel)
	c.body.SetVelocity(vel)

	c.state.IsJumping = vel.Y != 0 && !grounded
}

// cutJump shortens a rising jump when the button is released
func (c *MotionController) cutJump() {
	vel := c.body.Velocity()
	if vel.Y > 0 {
		vel.Y *= c.config.JumpCutMultiplier
		c.body.SetVelocity(vel)
	}
}

func (c *MotionController) horizontalVelocity(axis float64, grounded bool) float64 {
	vx := axis * c.state.CurrentSpeed
	// Airborne bodies pushing into a wall stop instead of sticking to it
	if !grounded && c.sensor.TouchingWall(axis) {
		return 0
	}
	return vx
}

func (c *MotionController) resolveJump(vel entity.Vec2) entity.Vec2 {
	st := &c.state
	if !st.JumpBuffered() {
		return vel
	}

	switch {
	case st.CoyoteOpen():
		st.CoyoteTimer = 0
		st.HasDoubleJumped = false
		c.lastJump = JumpGround
	case c.config.CanDoubleJump && !st.HasDoubleJumped:
		st.HasDoubleJumped = true
		c.lastJump = JumpDouble
	default:
		// Not eligible yet; the buffer keeps counting down
		return vel
	}

	vel.Y = c.config.JumpForce
	st.JumpBufferTimer = 0
	return vel
}

// State returns a copy of the motion state
func (c *MotionController) State() entity.MotionState {
	return c.state
}

// IsGrounded reports the ground contact sampled on the last tick
func (c *MotionController) IsGrounded() bool {
	return c.state.IsGrounded
}

// IsJumping reports whether the body is airborne with vertical velocity
func (c *MotionController) IsJumping() bool {
	return c.state.IsJumping
}

// IsRunning reports whether sprint is held
func (c *MotionController) IsRunning() bool {
	return c.state.IsRunning
}

// Facing returns the sprite direction
func (c *MotionController) Facing() entity.Facing {
	return c.state.Facing
}

// FacingSign returns +1 facing right and -1 facing left, for mirroring sprites
func (c *MotionController) FacingSign() float64 {
	return c.state.Facing.Sign()
}

// LastJump returns the jump that fired on the last Update, if any
func (c *MotionController) LastJump() JumpKind {
	return c.lastJump
}

// Body returns the driven body
func (c *MotionController) Body() entity.Body {
	return c.body
}

// Sensor returns the contact sensor
func (c *MotionController) Sensor() *Sensor {
	return c.sensor
}
