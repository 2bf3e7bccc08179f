// Package scene defines the screen abstraction the ebiten loop drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the demo (live play, replay playback).
//
// The loop calls Update once per tick with a fixed dt, then Draw.
// Returning a non-nil Scene from Update switches to it; OnExit runs on the
// old scene before OnEnter runs on the new one.
type Scene interface {
	// Update advances one tick. A non-nil error stops the loop.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter attaches input sources and other per-visit resources
	OnEnter()

	// OnExit releases what OnEnter acquired and flushes recordings
	OnExit()
}
