package system

import (
	"io"
	"log/slog"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
)

const testDt = 0.04

type circleQuery struct {
	center entity.Vec2
	radius float64
	mask   entity.LayerMask
}

type castQuery struct {
	origin, size, dir entity.Vec2
	distance          float64
	mask              entity.LayerMask
}

// fakeWorld reports whatever contacts the test sets
type fakeWorld struct {
	ground    bool
	wallLeft  bool
	wallRight bool
	gravity   entity.Vec2

	circles []circleQuery
	casts   []castQuery
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{gravity: entity.Vec2{Y: -9.81}}
}

func (w *fakeWorld) OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) bool {
	w.circles = append(w.circles, circleQuery{center, radius, mask})
	return w.ground && mask.Has(entity.LayerGround)
}

func (w *fakeWorld) BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool {
	w.casts = append(w.casts, castQuery{origin, size, dir, distance, mask})
	if !mask.Has(entity.LayerWall) {
		return false
	}
	switch {
	case dir.X < 0:
		return w.wallLeft
	case dir.X > 0:
		return w.wallRight
	}
	return false
}

func (w *fakeWorld) Gravity() entity.Vec2 {
	return w.gravity
}

// fakeSource is a scripted input device
type fakeSource struct {
	axis     float64
	held     bool
	handlers map[int]entity.InputHandler
	nextID   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{handlers: make(map[int]entity.InputHandler)}
}

func (s *fakeSource) Subscribe(h entity.InputHandler) func() {
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}

func (s *fakeSource) HorizontalAxis() float64 { return s.axis }
func (s *fakeSource) JumpHeld() bool { return s.held }

func (s *fakeSource) emit(edges ...entity.InputEdge) {
	for _, e := range edges {
		for _, h := range s.handlers {
			h(e)
		}
	}
}

func (s *fakeSource) press() {
	s.held = true
	s.emit(entity.EdgeJumpPressed)
}

func (s *fakeSource) release() {
	s.held = false
	s.emit(entity.EdgeJumpReleased)
}

type testRig struct {
	cfg   *config.MotionSettings
	body  *entity.PointBody
	world *fakeWorld
	src   *fakeSource
	ctrl  *MotionController
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRig(mutate ...func(*config.MotionSettings)) *testRig {
	cfg := config.DefaultMotionSettings()
	for _, m := range mutate {
		m(&cfg)
	}
	r := &testRig{
		cfg:   &cfg,
		body:  entity.NewPointBody(0, 0),
		world: newFakeWorld(),
		src:   newFakeSource(),
	}
	anchor := entity.OffsetAnchor{Body: r.body, Offset: entity.Vec2{Y: -0.5}}
	r.ctrl = NewMotionController(r.cfg, r.body, r.world, r.src,
		WithGroundAnchor(anchor),
		WithLogger(discardLogger()),
	)
	r.ctrl.Activate()
	return r
}

// tick runs n updates of testDt
func (r *testRig) tick(n int) {
	for i := 0; i < n; i++ {
		r.ctrl.Update(testDt)
	}
}
