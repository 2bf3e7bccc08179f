package entity

// FacingDeadzone is the horizontal speed a body must exceed before its facing flips
const FacingDeadzone = 0.01

// Facing is the direction a sprite faces
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing direction
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Sign returns +1 for right and -1 for left (for mirroring sprites by scale)
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// MotionState is the per-body record owned by a motion controller.
// IsGrounded, IsRunning and IsJumping are observable flags, recomputed each tick.
type MotionState struct {
	IsGrounded bool
	IsRunning  bool
	IsJumping  bool
	Facing     Facing

	// Timers (seconds). CoyoteTimer may go negative; a window is open while > 0.
	CoyoteTimer     float64
	JumpBufferTimer float64

	HasDoubleJumped bool

	// CurrentSpeed is resampled from walk/run speed only while grounded,
	// so the speed at takeoff carries through the jump.
	CurrentSpeed float64
}

// NewMotionState creates a state facing right with the given initial speed
func NewMotionState(initialSpeed float64) MotionState {
	return MotionState{
		Facing:       FacingRight,
		CurrentSpeed: initialSpeed,
	}
}

// CoyoteOpen reports whether a ground jump is still allowed
func (s MotionState) CoyoteOpen() bool {
	return s.CoyoteTimer > 0
}

// JumpBuffered reports whether a jump press is waiting to resolve
func (s MotionState) JumpBuffered() bool {
	return s.JumpBufferTimer > 0
}

// UpdateFacing flips facing from a horizontal velocity outside the deadzone
func (s *MotionState) UpdateFacing(vx float64) {
	if ApproxZero(vx, FacingDeadzone) {
		return
	}
	if vx > 0 {
		s.Facing = FacingRight
	} else {
		s.Facing = FacingLeft
	}
}
