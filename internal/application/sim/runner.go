// Package sim runs a motion controller headless against the grid world.
package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/application/system"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
	"github.com/younwookim/motionctl/internal/infrastructure/physics"
)

// Frame is the observable result of one tick
type Frame struct {
	Tick     int             `json:"tick"`
	Pos      entity.Vec2     `json:"pos"`
	Vel      entity.Vec2     `json:"vel"`
	Grounded bool            `json:"grounded"`
	Jumping  bool            `json:"jumping"`
	Running  bool            `json:"running"`
	Facing   entity.Facing   `json:"facing"`
	Jump     system.JumpKind `json:"jump"`
}

// Trace is the frame history of a run
type Trace []Frame

// Jumps counts ground and double jumps in the trace
func (t Trace) Jumps() (ground, double int) {
	for _, f := range t {
		switch f.Jump {
		case system.JumpGround:
			ground++
		case system.JumpDouble:
			double++
		}
	}
	return ground, double
}

// Last returns the final frame
func (t Trace) Last() Frame {
	if len(t) == 0 {
		return Frame{}
	}
	return t[len(t)-1]
}

// MaxHeight returns the highest body Y from the first grounded frame on,
// so the drop from the spawn point is not counted. A trace that never
// touches ground is measured whole.
func (t Trace) MaxHeight() float64 {
	return t[t.firstGrounded():].maxY()
}

func (t Trace) firstGrounded() int {
	for i, f := range t {
		if f.Grounded {
			return i
		}
	}
	return 0
}

func (t Trace) maxY() float64 {
	h := 0.0
	for i, f := range t {
		if i == 0 || f.Pos.Y > h {
			h = f.Pos.Y
		}
	}
	return h
}

// Runner owns a grid world with one controlled body
type Runner struct {
	config     *config.MotionConfig
	world      *physics.GridWorld
	body       *physics.GridBody
	controller *system.MotionController
	logger     *slog.Logger
	tick       int
}

// NewRunner spawns a body at the stage spawn point, driven by src
func NewRunner(cfg *config.MotionConfig, stage *entity.Stage, src system.InputSource, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	world := physics.NewGridWorld(stage, cfg.Physics.Gravity)
	body := world.AddBody(stage.SpawnX, stage.SpawnY, cfg.Body.Width, cfg.Body.Height)
	anchor := entity.OffsetAnchor{
		Body:   body,
		Offset: entity.Vec2{X: cfg.Body.GroundAnchor.X, Y: cfg.Body.GroundAnchor.Y},
	}

	motion := cfg.Motion
	controller := system.NewMotionController(&motion, body, world, src,
		system.WithGroundAnchor(anchor),
		system.WithLogger(logger),
	)
	controller.Activate()

	return &Runner{
		config:     cfg,
		world:      world,
		body:       body,
		controller: controller,
		logger:     logger,
	}
}

// Controller returns the motion controller
func (r *Runner) Controller() *system.MotionController {
	return r.controller
}

// Body returns the controlled body
func (r *Runner) Body() *physics.GridBody {
	return r.body
}

// Step runs one logic tick followed by the physics sub-steps
func (r *Runner) Step(dt float64) Frame {
	r.controller.Update(dt)

	substeps := r.config.Physics.Substeps
	if substeps <= 0 {
		substeps = 1
	}
	fixedDt := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		r.controller.FixedUpdate(fixedDt)
		r.world.Step(fixedDt)
	}

	st := r.controller.State()
	f := Frame{
		Tick:     r.tick,
		Pos:      r.body.Position(),
		Vel:      r.body.Velocity(),
		Grounded: st.IsGrounded,
		Jumping:  st.IsJumping,
		Running:  st.IsRunning,
		Facing:   st.Facing,
		Jump:     r.controller.LastJump(),
	}
	if f.Jump != system.JumpNone {
		r.logger.Debug("jump", "tick", f.Tick, "kind", f.Jump, "x", f.Pos.X, "y", f.Pos.Y)
	}
	r.tick++
	return f
}

// Replay plays data through a fresh runner and returns the trace
func Replay(ctx context.Context, cfg *config.MotionConfig, stage *entity.Stage, data replay.ReplayData, logger *slog.Logger) (Trace, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	dt := data.TickDt
	if dt <= 0 {
		dt = cfg.FixedStep() * float64(max(cfg.Physics.Substeps, 1))
	}

	src := replay.NewSource(data)
	runner := NewRunner(cfg, stage, src, logger)

	trace := make(Trace, 0, len(data.Frames))
	for src.Advance() {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		trace = append(trace, runner.Step(dt))
	}

	last := trace.Last()
	ground, double := trace.Jumps()
	runner.logger.Info("replay finished",
		"frames", len(trace),
		"x", last.Pos.X,
		"y", last.Pos.Y,
		"groundJumps", ground,
		"doubleJumps", double,
	)
	return trace, nil
}
