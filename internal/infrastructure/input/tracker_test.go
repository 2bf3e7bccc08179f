package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

func TestEdges(t *testing.T) {
	tests := []struct {
		name     string
		prev     State
		next     State
		expected []entity.InputEdge
	}{
		{"no change", State{}, State{Axis: 1}, nil},
		{"jump press", State{}, State{Jump: true}, []entity.InputEdge{entity.EdgeJumpPressed}},
		{"jump release", State{Jump: true}, State{}, []entity.InputEdge{entity.EdgeJumpReleased}},
		{"sprint on", State{}, State{Sprint: true}, []entity.InputEdge{entity.EdgeSprintOn}},
		{"sprint off", State{Sprint: true}, State{}, []entity.InputEdge{entity.EdgeSprintOff}},
		{
			"both",
			State{Sprint: true},
			State{Jump: true},
			[]entity.InputEdge{entity.EdgeJumpPressed, entity.EdgeSprintOff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Edges(tt.prev, tt.next))
		})
	}
}

func TestBroadcaster(t *testing.T) {
	var b Broadcaster
	var got []entity.InputEdge

	unsubscribe := b.Subscribe(func(e entity.InputEdge) { got = append(got, e) })
	assert.Equal(t, 1, b.Subscribers())

	b.Emit(entity.EdgeJumpPressed)
	unsubscribe()
	unsubscribe()
	b.Emit(entity.EdgeJumpReleased)

	assert.Equal(t, []entity.InputEdge{entity.EdgeJumpPressed}, got)
	assert.Zero(t, b.Subscribers())
}

func TestBroadcaster_ConcurrentSubscribe(t *testing.T) {
	var b Broadcaster
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := b.Subscribe(func(entity.InputEdge) {})
			b.Emit(entity.EdgeSprintOn)
			unsubscribe()
		}()
	}
	wg.Wait()

	assert.Zero(t, b.Subscribers())
}

func TestTracker_Apply(t *testing.T) {
	var tr Tracker
	var got []entity.InputEdge
	tr.Subscribe(func(e entity.InputEdge) { got = append(got, e) })

	tr.Apply(State{Axis: -1, Jump: true})
	assert.Equal(t, -1.0, tr.HorizontalAxis())
	assert.True(t, tr.JumpHeld())

	tr.Apply(State{Axis: -1, Jump: true})
	tr.Apply(State{Axis: 0})

	assert.Equal(t, []entity.InputEdge{entity.EdgeJumpPressed, entity.EdgeJumpReleased}, got)
	assert.Equal(t, State{}, tr.State())
}
