package system

import (
	"math"

	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
)

type SpinSystem struct{}

func NewSpinSystem() *SpinSystem { return &SpinSystem{} }

func (s *SpinSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.SpinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, spin *component.Spin, t *component.Transform) {
		t.Rotation = math.Mod(t.Rotation+spin.RadiansPerSecond*common.FrameSeconds, 2*math.Pi)
	})
}
