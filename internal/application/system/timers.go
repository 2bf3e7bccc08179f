package system

import (
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

// TimerBank runs the coyote-time and jump-buffer countdowns
type TimerBank struct {
	config *config.MotionSettings
}

// NewTimerBank creates a timer bank
func NewTimerBank(cfg *config.MotionSettings) TimerBank {
	return TimerBank{config: cfg}
}

// ArmJumpBuffer starts the jump buffer window. Re-arming just restarts it.
func (b TimerBank) ArmJumpBuffer(st *entity.MotionState) {
	st.JumpBufferTimer = b.config.JumpBufferTime
}

// Tick advances both timers by dt.
// armed is true when the buffer was armed this tick; it is not decayed until the next one.
func (b TimerBank) Tick(st *entity.MotionState, grounded, armed bool, dt float64) {
	// Coyote time has no floor; the window is open while > 0
	if grounded {
		st.CoyoteTimer = b.config.CoyoteTime
	} else {
		st.CoyoteTimer -= dt
	}

	if !armed && st.JumpBufferTimer > 0 {
		st.JumpBufferTimer -= dt
		if st.JumpBufferTimer < 0 {
			st.JumpBufferTimer = 0
		}
	}
}
