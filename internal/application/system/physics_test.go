package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

func TestMotionController_FixedUpdate(t *testing.T) {
	const fixedDt = 0.02

	tests := []struct {
		name     string
		vy       float64
		held     bool
		expected float64
	}{
		{"falling gets extra pull", -5, false, -5 + -9.81*2*fixedDt},
		{"falling ignores jump button", -5, true, -5 + -9.81*2*fixedDt},
		{"rising without button gets low jump pull", 2, false, 2 + -9.81*1*fixedDt},
		{"rising with button held is untouched", 2, true, 2},
		{"at rest is untouched", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig()
			r.src.held = tt.held
			r.body.Vel = entity.Vec2{X: 1.5, Y: tt.vy}

			r.ctrl.FixedUpdate(fixedDt)

			assert.InDelta(t, tt.expected, r.body.Vel.Y, 1e-9)
			assert.Equal(t, 1.5, r.body.Vel.X, "horizontal velocity is untouched")
		})
	}
}

func TestMotionController_FixedUpdateMultipliers(t *testing.T) {
	r := newTestRig(func(m *config.MotionSettings) {
		m.FallMultiplier = 1
		m.LowFallMultiplier = 1
	})
	r.body.Vel.Y = -4

	r.ctrl.FixedUpdate(0.02)

	assert.Equal(t, -4.0, r.body.Vel.Y, "multiplier 1 adds nothing on top of base gravity")
}

func TestMotionController_FixedUpdateDisabled(t *testing.T) {
	r := newTestRig()
	r.ctrl.SetControlEnabled(false)
	r.body.Vel.Y = -5

	r.ctrl.FixedUpdate(0.02)

	assert.Equal(t, -5.0, r.body.Vel.Y)
}

func TestMotionController_FixedUpdateWithoutWorld(t *testing.T) {
	cfg := config.DefaultMotionSettings()
	body := entity.NewPointBody(0, 0)
	body.Vel.Y = -5
	c := NewMotionController(&cfg, body, nil, nil, WithLogger(discardLogger()))

	c.FixedUpdate(0.02)

	assert.Equal(t, -5.0, body.Vel.Y)
}

func TestMotionController_FixedUpdateIntegratesOwnBody(t *testing.T) {
	cfg := config.DefaultMotionSettings()
	c := NewMotionController(&cfg, nil, newFakeWorld(), nil, WithLogger(discardLogger()))
	c.Body().SetVelocity(entity.Vec2{X: 2})

	c.FixedUpdate(0.1)

	assert.InDelta(t, -0.981, c.Body().Velocity().Y, 1e-9)
	assert.InDelta(t, 0.2, c.Body().Position().X, 1e-9)
	assert.InDelta(t, -0.0981, c.Body().Position().Y, 1e-9)
}

func TestMotionController_FixedUpdateLeavesHostBody(t *testing.T) {
	r := newTestRig()
	r.body.Vel = entity.Vec2{X: 2}

	r.ctrl.FixedUpdate(0.1)

	assert.Equal(t, entity.Vec2{}, r.body.Pos, "host bodies are stepped by their engine")
}
