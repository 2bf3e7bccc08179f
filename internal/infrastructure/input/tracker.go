package input

import (
	"sync"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

// State is one frame of input levels
type State struct {
	Axis   float64 `json:"axis"`
	Jump   bool    `json:"jump"`
	Sprint bool    `json:"sprint"`
}

// Edges returns the transitions from prev to next, jump before sprint
func Edges(prev, next State) []entity.InputEdge {
	var edges []entity.InputEdge
	if next.Jump != prev.Jump {
		if next.Jump {
			edges = append(edges, entity.EdgeJumpPressed)
		} else {
			edges = append(edges, entity.EdgeJumpReleased)
		}
	}
	if next.Sprint != prev.Sprint {
		if next.Sprint {
			edges = append(edges, entity.EdgeSprintOn)
		} else {
			edges = append(edges, entity.EdgeSprintOff)
		}
	}
	return edges
}

// Broadcaster fans edges out to subscribers. Safe for concurrent use.
type Broadcaster struct {
	mu       sync.Mutex
	handlers map[uint64]entity.InputHandler
	nextID   uint64
}

// Subscribe registers h. The returned func removes it and may be called more than once.
func (b *Broadcaster) Subscribe(h entity.InputHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers == nil {
		b.handlers = make(map[uint64]entity.InputHandler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Emit delivers edge to every subscriber
func (b *Broadcaster) Emit(edge entity.InputEdge) {
	b.mu.Lock()
	handlers := make([]entity.InputHandler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(edge)
	}
}

// Subscribers returns the number of registered handlers
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Tracker turns per-frame input levels into edges and polled values.
// Apply and the getters belong to the frame loop goroutine.
type Tracker struct {
	Broadcaster
	state State
}

// Apply records the frame's levels and emits the edges since the last frame
func (t *Tracker) Apply(next State) {
	prev := t.state
	t.state = next
	for _, e := range Edges(prev, next) {
		t.Emit(e)
	}
}

// State returns the last applied levels
func (t *Tracker) State() State {
	return t.state
}

// HorizontalAxis returns the last applied axis
func (t *Tracker) HorizontalAxis() float64 {
	return t.state.Axis
}

// JumpHeld reports whether jump was down in the last applied frame
func (t *Tracker) JumpHeld() bool {
	return t.state.Jump
}
