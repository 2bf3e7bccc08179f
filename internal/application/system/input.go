package system

import (
	"math"
	"sync/atomic"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

// InputSource is the external input collaborator.
// Edges are pushed to subscribers; the axis and the jump button level are polled.
type InputSource interface {
	Subscribe(h entity.InputHandler) (unsubscribe func())
	HorizontalAxis() float64
	JumpHeld() bool
}

// EdgeSet is what arrived since the previous drain
type EdgeSet struct {
	JumpPressed  bool
	JumpReleased bool
	// Sprint is the last sprint edge received (entity.EdgeSprintOn or entity.EdgeSprintOff), or 0
	Sprint entity.InputEdge
}

// InputSampler collects edges between ticks and samples the continuous axis.
// Handle may be called from any goroutine; everything else belongs to the tick loop.
type InputSampler struct {
	source      InputSource
	unsubscribe func()

	jump   atomic.Uint32
	sprint atomic.Uint32
}

// NewInputSampler creates a sampler reading from src (src may be nil)
func NewInputSampler(src InputSource) *InputSampler {
	return &InputSampler{source: src}
}

// Handle records an edge. Repeated edges before the next drain coalesce.
func (s *InputSampler) Handle(edge entity.InputEdge) {
	switch edge {
	case entity.EdgeJumpPressed, entity.EdgeJumpReleased:
		s.jump.Or(uint32(edge))
	case entity.EdgeSprintOn, entity.EdgeSprintOff:
		s.sprint.Store(uint32(edge))
	}
}

// Drain returns and clears the pending edges
func (s *InputSampler) Drain() EdgeSet {
	jump := entity.InputEdge(s.jump.Swap(0))
	return EdgeSet{
		JumpPressed:  jump&entity.EdgeJumpPressed != 0,
		JumpReleased: jump&entity.EdgeJumpReleased != 0,
		Sprint:       entity.InputEdge(s.sprint.Swap(0)),
	}
}

// Axis samples the horizontal axis, clamped to [-1, 1]
func (s *InputSampler) Axis() float64 {
	if s.source == nil {
		return 0
	}
	x := s.source.HorizontalAxis()
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(-1, math.Min(1, x))
}

// JumpHeld reports whether the jump button is currently down
func (s *InputSampler) JumpHeld() bool {
	return s.source != nil && s.source.JumpHeld()
}

// Attach subscribes to the source. Calling it twice is a no-op.
func (s *InputSampler) Attach() {
	if s.source == nil || s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.source.Subscribe(s.Handle)
}

// Detach unsubscribes and drops edges that have not been drained
func (s *InputSampler) Detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.jump.Store(0)
	s.sprint.Store(0)
}

// Attached reports whether the sampler is subscribed
func (s *InputSampler) Attached() bool {
	return s.unsubscribe != nil
}
