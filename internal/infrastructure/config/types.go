package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

var (
	// ErrNegativeValue is returned when a time, speed or force setting is below zero
	ErrNegativeValue = errors.New("value must be >= 0")
	// ErrUnknownLayer is returned for a collision layer name that does not exist
	ErrUnknownLayer = errors.New("unknown collision layer")
)

// MotionConfig is the root config for motion.json / motion.yaml
type MotionConfig struct {
	Display DisplayConfig   `json:"display" yaml:"display"`
	Physics PhysicsSettings `json:"physics" yaml:"physics"`
	Motion  MotionSettings  `json:"motion" yaml:"motion"`
	Body    BodyConfig      `json:"body" yaml:"body"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screenHeight"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"`
}

// PhysicsSettings configures the host physics world the controller runs against
type PhysicsSettings struct {
	Gravity  float64 `json:"gravity" yaml:"gravity"`   // world units/s^2 along Y, negative is down
	Substeps int     `json:"substeps" yaml:"substeps"` // fixed physics steps per logical tick
}

// MotionSettings holds the controller tuning. Immutable while a controller runs.
type MotionSettings struct {
	MoveSpeed         float64  `json:"moveSpeed" yaml:"moveSpeed"`
	RunSpeed          float64  `json:"runSpeed" yaml:"runSpeed"`
	JumpForce         float64  `json:"jumpForce" yaml:"jumpForce"`
	JumpCutMultiplier float64  `json:"jumpCutMultiplier" yaml:"jumpCutMultiplier"`
	CoyoteTime        float64  `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBufferTime    float64  `json:"jumpBufferTime" yaml:"jumpBufferTime"`
	FallMultiplier    float64  `json:"fallMultiplier" yaml:"fallMultiplier"`
	LowFallMultiplier float64  `json:"lowFallMultiplier" yaml:"lowFallMultiplier"`
	GroundCheckRadius float64  `json:"groundCheckRadius" yaml:"groundCheckRadius"`
	WallCheckRadius   float64  `json:"wallCheckRadius" yaml:"wallCheckRadius"`
	WallCheckBox      SizeXY   `json:"wallCheckBox" yaml:"wallCheckBox"`
	GroundLayers      []string `json:"groundLayers" yaml:"groundLayers"`
	WallLayers        []string `json:"wallLayers" yaml:"wallLayers"`
	CanDoubleJump     bool     `json:"canDoubleJump" yaml:"canDoubleJump"`
	ControlEnabled    bool     `json:"controlEnabled" yaml:"controlEnabled"`
}

// BodyConfig describes the controlled body's collider (world units)
type BodyConfig struct {
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
	GroundAnchor SizeXY  `json:"groundAnchor" yaml:"groundAnchor"` // offset from body center
}

type SizeXY struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DefaultMotionSettings returns the stock platformer tuning
func DefaultMotionSettings() MotionSettings {
	return MotionSettings{
		MoveSpeed:         3,
		RunSpeed:          5,
		JumpForce:         10,
		JumpCutMultiplier: 0.5,
		CoyoteTime:        0.15,
		JumpBufferTime:    0.2,
		FallMultiplier:    3,
		LowFallMultiplier: 2,
		GroundCheckRadius: 0.6,
		WallCheckRadius:   0.02,
		WallCheckBox:      SizeXY{X: 1, Y: 1},
		GroundLayers:      []string{"ground"},
		WallLayers:        []string{"wall"},
		CanDoubleJump:     true,
		ControlEnabled:    true,
	}
}

// DefaultMotionConfig returns a complete config; loaded files override it field by field
func DefaultMotionConfig() *MotionConfig {
	return &MotionConfig{
		Display: DisplayConfig{
			ScreenWidth:   320,
			ScreenHeight:  240,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 16,
		},
		Physics: PhysicsSettings{
			Gravity:  -9.81,
			Substeps: 2,
		},
		Motion: DefaultMotionSettings(),
		Body: BodyConfig{
			Width:        0.8,
			Height:       1,
			GroundAnchor: SizeXY{X: 0, Y: -0.5},
		},
	}
}

// Validate checks the non-negative invariants and layer names
func (m *MotionSettings) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"moveSpeed", m.MoveSpeed},
		{"runSpeed", m.RunSpeed},
		{"jumpForce", m.JumpForce},
		{"jumpCutMultiplier", m.JumpCutMultiplier},
		{"coyoteTime", m.CoyoteTime},
		{"jumpBufferTime", m.JumpBufferTime},
		{"groundCheckRadius", m.GroundCheckRadius},
		{"wallCheckRadius", m.WallCheckRadius},
		{"wallCheckBox.x", m.WallCheckBox.X},
		{"wallCheckBox.y", m.WallCheckBox.Y},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%s=%v: %w", c.name, c.value, ErrNegativeValue)
		}
	}
	if _, err := parseLayers(m.GroundLayers); err != nil {
		return fmt.Errorf("groundLayers: %w", err)
	}
	if _, err := parseLayers(m.WallLayers); err != nil {
		return fmt.Errorf("wallLayers: %w", err)
	}
	return nil
}

// GroundMask returns the collision mask for the ground check.
// Unknown names are ignored here; Validate reports them.
func (m *MotionSettings) GroundMask() entity.LayerMask {
	mask, _ := parseLayers(m.GroundLayers)
	return mask
}

// WallMask returns the collision mask for the wall checks
func (m *MotionSettings) WallMask() entity.LayerMask {
	mask, _ := parseLayers(m.WallLayers)
	return mask
}

// SpeedFor returns the run or walk speed
func (m *MotionSettings) SpeedFor(running bool) float64 {
	if running {
		return m.RunSpeed
	}
	return m.MoveSpeed
}

// FixedStep returns the physics sub-step duration
func (c *MotionConfig) FixedStep() float64 {
	fps := c.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	steps := c.Physics.Substeps
	if steps <= 0 {
		steps = 1
	}
	return 1.0 / float64(fps*steps)
}

func parseLayers(names []string) (entity.LayerMask, error) {
	var mask entity.LayerMask
	var unknown error
	for _, name := range names {
		layer, ok := entity.ParseLayer(name)
		if !ok {
			if unknown == nil {
				unknown = fmt.Errorf("%q: %w", name, ErrUnknownLayer)
			}
			continue
		}
		mask |= layer
	}
	return mask, unknown
}
