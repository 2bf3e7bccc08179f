package state

// SessionState represents the current state of a play session
type SessionState int

const (
	StatePlaying SessionState = iota
	StatePaused
	StateReplaying
	StateReplayFinished
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateReplayFinished:
		return "ReplayFinished"
	default:
		return "Unknown"
	}
}

// ControlEnabled reports whether the motion controller should process ticks
func (s SessionState) ControlEnabled() bool {
	return s == StatePlaying || s == StateReplaying
}

// TogglePause switches between Playing and Paused; other states are unchanged
func (s SessionState) TogglePause() SessionState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	}
	return s
}
