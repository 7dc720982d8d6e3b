package maze

import "time"

// Config holds gameplay tuning the controller needs. The scene fills it from
// the tuning prefab; DefaultConfig matches the shipped tuning.
type Config struct {
	Start Vec

	DeathMove   time.Duration
	DeathShrink time.Duration
	ShrinkScale float64

	TeleportFadeOut time.Duration
	TeleportMove    time.Duration
	TeleportFadeIn  time.Duration

	// PointerDivisor scales the touch-to-player offset in pointer mode.
	PointerDivisor float64
	// TiltScale scales accelerometer readings in tilt mode.
	TiltScale float64
}

func DefaultConfig() Config {
	return Config{
		Start:           Vec{X: 96, Y: 672},
		DeathMove:       250 * time.Millisecond,
		DeathShrink:     250 * time.Millisecond,
		ShrinkScale:     0.0001,
		TeleportFadeOut: 250 * time.Millisecond,
		TeleportMove:    500 * time.Millisecond,
		TeleportFadeIn:  250 * time.Millisecond,
		PointerDivisor:  100,
		TiltScale:       50,
	}
}
