// Package playing provides the interactive motion demo scene.
package playing

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/motionctl/internal/application/replay"
	"github.com/younwookim/motionctl/internal/application/scene"
	"github.com/younwookim/motionctl/internal/application/state"
	"github.com/younwookim/motionctl/internal/application/system"
	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/infrastructure/config"
	"github.com/younwookim/motionctl/internal/infrastructure/input/keyboard"
	"github.com/younwookim/motionctl/internal/infrastructure/physics"
)

// Playing drives one character through a stage in a chipmunk world
type Playing struct {
	config     *config.MotionConfig
	stage      *entity.Stage
	stageName  string
	state      state.SessionState
	world      *physics.ChipmunkWorld
	body       *physics.ChipmunkBody
	controller *system.MotionController
	keyboard   *keyboard.Device
	logger     *slog.Logger
	screenW    int
	screenH    int

	// Replay playback (nil when playing live)
	source *replay.Source

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Hot reload
	reloads <-chan *config.MotionConfig
}

// Option configures the scene
type Option func(*Playing)

// WithRecording records live input and saves it to path on exit or F5
func WithRecording(path string) Option {
	return func(p *Playing) {
		p.recordFilename = path
	}
}

// WithReplay plays data instead of reading the keyboard
func WithReplay(data replay.ReplayData) Option {
	return func(p *Playing) {
		p.source = replay.NewSource(data)
	}
}

// WithReloads applies motion configs received on ch between ticks
func WithReloads(ch <-chan *config.MotionConfig) Option {
	return func(p *Playing) {
		p.reloads = ch
	}
}

// WithLogger sets the scene logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Playing) {
		p.logger = l
	}
}

// New creates a new Playing scene
func New(cfg *config.MotionConfig, stageName string, stage *entity.Stage, opts ...Option) *Playing {
	p := &Playing{
		config:    cfg,
		stage:     stage,
		stageName: stageName,
		state:     state.StatePlaying,
		keyboard:  keyboard.New(keyboard.DefaultBindings()),
		logger:    slog.Default(),
		screenW:   cfg.Display.ScreenWidth,
		screenH:   cfg.Display.ScreenHeight,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.world = physics.NewChipmunkWorld(stage, cfg.Physics.Gravity)
	p.body = p.world.AddBody(stage.SpawnX, stage.SpawnY, cfg.Body.Width, cfg.Body.Height)

	var src system.InputSource = p.keyboard
	if p.source != nil {
		src = p.source
	}

	motion := cfg.Motion
	p.controller = system.NewMotionController(&motion, p.body, p.world, src,
		system.WithGroundAnchor(entity.OffsetAnchor{
			Body:   p.body,
			Offset: entity.Vec2{X: cfg.Body.GroundAnchor.X, Y: cfg.Body.GroundAnchor.Y},
		}),
		system.WithLogger(p.logger),
	)

	p.setState(initialState(cfg.Motion.ControlEnabled, p.source != nil))

	if p.recordFilename != "" && p.source == nil {
		p.recorder = replay.NewRecorder(stageName, 1.0/float64(cfg.Display.Framerate))
		p.logger.Info("recording enabled", "file", p.recordFilename)
	}

	return p
}

// initialState picks the starting session state. A replay always runs; a live
// session whose settings start with control off opens paused, so physics and
// the controller stay frozen together until the player resumes.
func initialState(controlEnabled, replaying bool) state.SessionState {
	switch {
	case replaying:
		return state.StateReplaying
	case !controlEnabled:
		return state.StatePaused
	}
	return state.StatePlaying
}

// Update advances the scene by one tick (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		p.respawn()
	}

	p.tick(dt)
	return nil, nil // nil = stay on this scene
}

// tick feeds input, runs the controller and, unless frozen, the physics sub-steps
func (p *Playing) tick(dt float64) {
	switch p.state {
	case state.StateReplaying:
		if !p.source.Advance() {
			p.finishReplay()
		}
	case state.StateReplayFinished:
	default:
		p.keyboard.Poll()
		if p.recorder != nil && p.state == state.StatePlaying {
			p.recorder.RecordFrame(p.keyboard.State())
		}
	}

	// Runs while paused too, so edges pressed during the pause are drained and dropped
	p.controller.Update(dt)
	if !p.state.ControlEnabled() {
		return
	}

	substeps := max(p.config.Physics.Substeps, 1)
	fixedDt := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		p.controller.FixedUpdate(fixedDt)
		p.world.Step(fixedDt)
	}
}

func (p *Playing) togglePause() {
	p.setState(p.state.TogglePause())
}

func (p *Playing) finishReplay() {
	p.setState(state.StateReplayFinished)
	r := p.source.Replayer()
	pos := p.body.Position()
	p.logger.Info("replay finished", "frames", r.TotalFrames(), "x", pos.X, "y", pos.Y)
}

func (p *Playing) setState(s state.SessionState) {
	p.state = s
	p.controller.SetControlEnabled(s.ControlEnabled())
}

// applyReload swaps in the newest motion settings, if any arrived
func (p *Playing) applyReload() {
	if p.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-p.reloads:
		if !ok {
			p.reloads = nil
			return
		}
		motion := cfg.Motion
		if err := p.controller.Reconfigure(&motion); err != nil {
			p.logger.Warn("rejected motion config", "error", err)
			return
		}
		p.config.Motion = motion
		p.logger.Info("motion config applied", "moveSpeed", motion.MoveSpeed, "jumpForce", motion.JumpForce)
	default:
	}
}

func (p *Playing) respawn() {
	p.body.Teleport(p.stage.SpawnX, p.stage.SpawnY)
	if p.recorder != nil {
		p.recorder = replay.NewRecorder(p.stageName, 1.0/float64(p.config.Display.Framerate))
		p.logger.Info("recording restarted")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// OnEnter subscribes the controller to input (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.controller.Activate()
}

// OnExit unsubscribes and saves any recording (implements scene.Scene)
func (p *Playing) OnExit() {
	p.controller.Deactivate()
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Controller returns the motion controller
func (p *Playing) Controller() *system.MotionController {
	return p.controller
}

// State returns the session state
func (p *Playing) State() state.SessionState {
	return p.state
}
