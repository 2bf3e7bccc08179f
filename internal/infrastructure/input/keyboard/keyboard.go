// Package keyboard reads ebiten keyboard and gamepad state into an input tracker.
package keyboard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/motionctl/internal/infrastructure/input"
)

const stickDeadzone = 0.2

// Bindings maps actions to keys
type Bindings struct {
	Left   []ebiten.Key
	Right  []ebiten.Key
	Jump   []ebiten.Key
	Sprint []ebiten.Key
}

// DefaultBindings returns arrows/WASD movement, Space/Z jump and Shift sprint
func DefaultBindings() Bindings {
	return Bindings{
		Left:   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:  []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:   []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		Sprint: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	}
}

// Device polls ebiten's keyboard and the first standard gamepad once per frame
type Device struct {
	input.Tracker
	bindings Bindings

	keyPressed func(ebiten.Key) bool
	gamepad    func() (input.State, bool)
}

// New creates a keyboard and gamepad source with the given bindings
func New(bindings Bindings) *Device {
	return &Device{
		bindings:   bindings,
		keyPressed: ebiten.IsKeyPressed,
		gamepad:    readGamepad,
	}
}

// Poll samples the devices and emits edges. Call once per ebiten Update.
func (k *Device) Poll() {
	k.Apply(k.read())
}

func (k *Device) read() input.State {
	var s input.State
	if k.anyPressed(k.bindings.Left) {
		s.Axis -= 1
	}
	if k.anyPressed(k.bindings.Right) {
		s.Axis += 1
	}
	s.Jump = k.anyPressed(k.bindings.Jump)
	s.Sprint = k.anyPressed(k.bindings.Sprint)

	if k.gamepad != nil {
		if pad, ok := k.gamepad(); ok {
			if pad.Axis != 0 {
				s.Axis = pad.Axis
			}
			s.Jump = s.Jump || pad.Jump
			s.Sprint = s.Sprint || pad.Sprint
		}
	}
	return s
}

func (k *Device) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.keyPressed(key) {
			return true
		}
	}
	return false
}

func readGamepad() (input.State, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return input.State{}, false
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return input.State{}, false
	}

	var s input.State
	leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if math.Abs(leftX) > stickDeadzone {
		s.Axis = leftX
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
		s.Axis = -1
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
		s.Axis = 1
	}
	s.Jump = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	s.Sprint = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	return s, true
}
