package maze

// Mode selects how the player steers.
type Mode int

const (
	// ModeTilt reads the accelerometer.
	ModeTilt Mode = iota
	// ModePointer pulls the ball toward the last touch, for simulators and
	// desktop builds without a sensor.
	ModePointer
)

func (m Mode) String() string {
	if m == ModePointer {
		return "pointer"
	}
	return "tilt"
}

// Sample is one horizontal accelerometer reading in g.
type Sample struct {
	X float64
	Y float64
}

// Gravity maps the current input to a world gravity vector in m/s². ok is
// false when gravity should be left as it is: during game-over, or when the
// active mode has no input this frame.
func Gravity(s Session, cfg Config, mode Mode, player Vec, tilt *Sample) (g Vec, ok bool) {
	if s.GameOver {
		return Vec{}, false
	}

	switch mode {
	case ModePointer:
		if s.Touch == nil || cfg.PointerDivisor == 0 {
			return Vec{}, false
		}
		diff := s.Touch.Sub(player)
		return Vec{X: diff.X / cfg.PointerDivisor, Y: diff.Y / cfg.PointerDivisor}, true
	default:
		if tilt == nil {
			return Vec{}, false
		}
		// The device is held in landscape: the sensor's y axis runs along
		// the screen's x axis and is inverted.
		return Vec{X: tilt.Y * -cfg.TiltScale, Y: tilt.X * cfg.TiltScale}, true
	}
}
