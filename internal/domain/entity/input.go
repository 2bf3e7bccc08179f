package entity

// InputEdge is a discrete input transition
type InputEdge uint32

const (
	EdgeJumpPressed InputEdge = 1 << iota
	EdgeJumpReleased
	EdgeSprintOn
	EdgeSprintOff
)

// String returns the string representation of the edge
func (e InputEdge) String() string {
	switch e {
	case EdgeJumpPressed:
		return "JumpPressed"
	case EdgeJumpReleased:
		return "JumpReleased"
	case EdgeSprintOn:
		return "SprintOn"
	case EdgeSprintOff:
		return "SprintOff"
	default:
		return "Unknown"
	}
}

// InputHandler receives edges as they happen
type InputHandler func(edge InputEdge)
