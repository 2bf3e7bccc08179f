package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/motionctl/internal/domain/entity"
)

func TestChipmunkWorld_Queries(t *testing.T) {
	w := NewChipmunkWorld(roomStage(), -9.81)

	assert.Equal(t, entity.Vec2{Y: -9.81}, w.Gravity())

	feet := entity.Vec2{X: 2, Y: 1.1}
	assert.True(t, w.OverlapCircle(feet, 0.2, entity.LayerGround))
	assert.False(t, w.OverlapCircle(feet, 0.2, entity.LayerWall))
	assert.False(t, w.OverlapCircle(entity.Vec2{X: 2, Y: 2}, 0.2, entity.LayerGround))

	size := entity.Vec2{X: 0.8, Y: 0.9}
	touching := entity.Vec2{X: 6.6, Y: 3}
	assert.True(t, w.BoxCast(touching, size, entity.Vec2{X: 1}, 0.02, entity.LayerWall))
	assert.False(t, w.BoxCast(touching, size, entity.Vec2{X: -1}, 0.02, entity.LayerWall))
	assert.False(t, w.BoxCast(touching, size, entity.Vec2{X: 1}, 0.02, entity.LayerGround))
}

func TestChipmunkWorld_BodiesAreNotLevelGeometry(t *testing.T) {
	w := NewChipmunkWorld(roomStage(), -9.81)
	w.AddBody(3, 3, 0.8, 1)

	assert.False(t, w.OverlapCircle(entity.Vec2{X: 3, Y: 3}, 0.2, entity.LayerAll))
}

func TestChipmunkWorld_FallAndLand(t *testing.T) {
	w := NewChipmunkWorld(roomStage(), -9.81)
	body := w.AddBody(2, 4, 0.8, 1)

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 120)
	}

	assert.InDelta(t, 1.5, body.Position().Y, 0.1)
	assert.InDelta(t, 0, body.Velocity().Y, 0.5)
	assert.Equal(t, entity.Vec2{X: 0.8, Y: 1}, body.Size())
}

func TestChipmunkBody_SetVelocity(t *testing.T) {
	w := NewChipmunkWorld(nil, -9.81)
	body := w.AddBody(0, 0, 1, 1)

	body.SetVelocity(entity.Vec2{X: 2, Y: 3})
	assert.Equal(t, entity.Vec2{X: 2, Y: 3}, body.Velocity())

	body.Teleport(5, 6)
	assert.Equal(t, entity.Vec2{X: 5, Y: 6}, body.Position())
	assert.Equal(t, entity.Vec2{}, body.Velocity())
}
