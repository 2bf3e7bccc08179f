package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMotionState(t *testing.T) {
	s := NewMotionState(3)

	assert.Equal(t, FacingRight, s.Facing)
	assert.Equal(t, 3.0, s.CurrentSpeed)
	assert.False(t, s.IsGrounded)
	assert.False(t, s.HasDoubleJumped)
	assert.Zero(t, s.CoyoteTimer)
	assert.Zero(t, s.JumpBufferTimer)
}

func TestFacing_String(t *testing.T) {
	assert.Equal(t, "Right", FacingRight.String())
	assert.Equal(t, "Left", FacingLeft.String())
	assert.Equal(t, "Unknown", Facing(42).String())
}

func TestFacing_Sign(t *testing.T) {
	assert.Equal(t, 1.0, FacingRight.Sign())
	assert.Equal(t, -1.0, FacingLeft.Sign())
}

func TestMotionState_UpdateFacing(t *testing.T) {
	tests := []struct {
		name  string
		start Facing
		vx    float64
		want  Facing
	}{
		{"moving right", FacingLeft, 2, FacingRight},
		{"moving left", FacingRight, -2, FacingLeft},
		{"inside deadzone keeps right", FacingRight, -0.01, FacingRight},
		{"inside deadzone keeps left", FacingLeft, 0.005, FacingLeft},
		{"just outside deadzone", FacingRight, -0.011, FacingLeft},
		{"stopped", FacingLeft, 0, FacingLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MotionState{Facing: tt.start}
			s.UpdateFacing(tt.vx)
			assert.Equal(t, tt.want, s.Facing)
		})
	}
}

func TestMotionState_Windows(t *testing.T) {
	s := MotionState{CoyoteTimer: 0.05, JumpBufferTimer: 0}
	assert.True(t, s.CoyoteOpen())
	assert.False(t, s.JumpBuffered())

	s.CoyoteTimer = -0.01
	s.JumpBufferTimer = 0.1
	assert.False(t, s.CoyoteOpen())
	assert.True(t, s.JumpBuffered())
}
