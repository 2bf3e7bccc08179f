package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/motionctl/internal/application/state"
	"github.com/younwookim/motionctl/internal/domain/entity"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorWall     = color.RGBA{110, 90, 70, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorAirborne = color.RGBA{100, 160, 220, 255}
	colorFacing   = color.RGBA{255, 215, 0, 255}
	colorAnchor   = color.RGBA{200, 200, 100, 160}
)

// camera is the world-space bottom-left corner of the view
type camera struct {
	x, y float64
	ppu  float64
}

// toScreen maps a world point to screen pixels (world Y points up)
func (c camera) toScreen(screenH int, wx, wy float64) (float64, float64) {
	return (wx - c.x) * c.ppu, float64(screenH) - (wy-c.y)*c.ppu
}

// camera centers on the body and clamps to the stage bounds
func (p *Playing) camera() camera {
	ppu := p.config.Display.PixelsPerUnit
	if ppu <= 0 {
		ppu = 16
	}
	viewW := float64(p.screenW) / ppu
	viewH := float64(p.screenH) / ppu
	worldW, worldH := p.stage.WorldSize()

	pos := p.body.Position()
	return camera{
		x:   clampView(pos.X-viewW/2, worldW-viewW),
		y:   clampView(pos.Y-viewH/2, worldH-viewH),
		ppu: ppu,
	}
}

func clampView(v, maxV float64) float64 {
	if v > maxV {
		v = maxV
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.camera()
	p.drawTiles(screen, cam)
	p.drawPlayer(screen, cam)
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateReplayFinished:
		p.drawReplayOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, cam camera) {
	p.stage.EachSolid(func(tx, ty int, tile entity.Tile) {
		x, y, w, h := p.stage.TileRect(tx, ty)
		// Rect origin is bottom-left in world space, top-left on screen
		sx, sy := cam.toScreen(p.screenH, x, y+h)
		if sx+w*cam.ppu < 0 || sy+h*cam.ppu < 0 || sx > float64(p.screenW) || sy > float64(p.screenH) {
			return
		}

		c := colorGround
		if tile.Type == entity.TileWall {
			c = colorWall
		}
		ebitenutil.DrawRect(screen, sx, sy, w*cam.ppu, h*cam.ppu, c)
	})
}

func (p *Playing) drawPlayer(screen *ebiten.Image, cam camera) {
	pos := p.body.Position()
	size := p.body.Size()

	c := colorPlayer
	if !p.controller.IsGrounded() {
		c = colorAirborne
	}
	sx, sy := cam.toScreen(p.screenH, pos.X-size.X/2, pos.Y+size.Y/2)
	w, h := size.X*cam.ppu, size.Y*cam.ppu
	ebitenutil.DrawRect(screen, sx, sy, w, h, c)

	// Eye on the facing side
	eyeX := sx + w*0.5 + p.controller.FacingSign()*w*0.25 - 1
	ebitenutil.DrawRect(screen, eyeX, sy+h*0.2, 3, 3, colorFacing)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		anchor := pos.Add(entity.Vec2{X: p.config.Body.GroundAnchor.X, Y: p.config.Body.GroundAnchor.Y})
		r := p.config.Motion.GroundCheckRadius
		ax, ay := cam.toScreen(p.screenH, anchor.X-r, anchor.Y+r)
		ebitenutil.DrawRect(screen, ax, ay, 2*r*cam.ppu, 2*r*cam.ppu, colorAnchor)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	st := p.controller.State()
	vel := p.body.Velocity()
	text := fmt.Sprintf("%s  %s\nvel %.2f, %.2f\ngrounded %v  jumping %v  running %v\nfacing %s  doubleJumped %v\ncoyote %.2f  buffer %.2f\nFPS %.0f",
		p.state, p.stageName,
		vel.X, vel.Y,
		st.IsGrounded, st.IsJumping, st.IsRunning,
		st.Facing, st.HasDoubleJumped,
		st.CoyoteTimer, st.JumpBufferTimer,
		ebiten.ActualFPS(),
	)
	if p.recorder != nil {
		text += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	if p.source != nil {
		r := p.source.Replayer()
		text += fmt.Sprintf("\nREPLAY %d/%d", r.CurrentFrame(), r.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawReplayOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 60, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, "REPLAY FINISHED", p.screenW/2-45, p.screenH/2-10)
}
