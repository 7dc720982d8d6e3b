package prefabs

import (
	"time"

	"github.com/milk9111/tiltmaze/maze"
)

const TuningFile = "tuning.yaml"

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type DeathTuningSpec struct {
	Move        time.Duration `yaml:"move"`
	Shrink      time.Duration `yaml:"shrink"`
	ShrinkScale float64       `yaml:"shrink_scale"`
}

type TeleportTuningSpec struct {
	FadeOut time.Duration `yaml:"fade_out"`
	Move    time.Duration `yaml:"move"`
	FadeIn  time.Duration `yaml:"fade_in"`
}

type SteeringTuningSpec struct {
	PointerDivisor float64 `yaml:"pointer_divisor"`
	TiltScale      float64 `yaml:"tilt_scale"`
	// Curve names a script under scripts/ that reshapes raw tilt samples.
	Curve string `yaml:"curve"`
}

type PhysicsTuningSpec struct {
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
}

// TuningSpec is the gameplay tuning prefab.
type TuningSpec struct {
	Start      PointSpec          `yaml:"start"`
	Death      DeathTuningSpec    `yaml:"death"`
	Teleport   TeleportTuningSpec `yaml:"teleport"`
	Steering   SteeringTuningSpec `yaml:"steering"`
	Physics    PhysicsTuningSpec  `yaml:"physics"`
	Background *YAMLColor         `yaml:"background"`
}

func LoadTuning() (TuningSpec, error) {
	return LoadSpec[TuningSpec](TuningFile)
}

// Config converts the tuning into controller configuration. Zero fields
// keep their defaults.
func (t TuningSpec) Config() maze.Config {
	cfg := maze.DefaultConfig()
	if t.Start != (PointSpec{}) {
		cfg.Start = maze.Vec{X: t.Start.X, Y: t.Start.Y}
	}
	setDuration(&cfg.DeathMove, t.Death.Move)
	setDuration(&cfg.DeathShrink, t.Death.Shrink)
	if t.Death.ShrinkScale > 0 {
		cfg.ShrinkScale = t.Death.ShrinkScale
	}
	setDuration(&cfg.TeleportFadeOut, t.Teleport.FadeOut)
	setDuration(&cfg.TeleportMove, t.Teleport.Move)
	setDuration(&cfg.TeleportFadeIn, t.Teleport.FadeIn)
	if t.Steering.PointerDivisor > 0 {
		cfg.PointerDivisor = t.Steering.PointerDivisor
	}
	if t.Steering.TiltScale > 0 {
		cfg.TiltScale = t.Steering.TiltScale
	}
	return cfg
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}
