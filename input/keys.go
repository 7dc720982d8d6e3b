package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiltmaze/maze"
)

const (
	keyTilt       = 0.4
	stickDeadZone = 0.15
)

// KeyTilt emulates a tilted device with the arrow keys, WASD, or the left
// stick of the first standard gamepad. With nothing held it reports no
// sample, so gravity stays as it was.
type KeyTilt struct {
	gamepads []ebiten.GamepadID
}

func NewKeyTilt() *KeyTilt { return &KeyTilt{} }

func (k *KeyTilt) Sample() (maze.Sample, bool) {
	h, v := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		h -= keyTilt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		h += keyTilt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		v += keyTilt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		v -= keyTilt
	}

	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		sh := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sv := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if abs(sh) > stickDeadZone || abs(sv) > stickDeadZone {
			h += sh * keyTilt
			// stick y grows downward
			v -= sv * keyTilt
		}
		break
	}

	if h == 0 && v == 0 {
		return maze.Sample{}, false
	}
	return TiltFor(h, v), true
}

// TiltFor returns the device sample that pulls the ball toward the
// horizontal h and vertical v screen directions.
func TiltFor(h, v float64) maze.Sample {
	return maze.Sample{X: v, Y: -h}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
