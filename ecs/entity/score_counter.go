package entity

import (
	"fmt"

	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
)

const (
	scoreCounterX = 16
	scoreCounterY = 16
)

// NewScoreCounter creates the HUD score readout in the top-left corner.
func NewScoreCounter(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreCounterComponent.Kind(), &component.ScoreCounter{}); err != nil {
		return 0, fmt.Errorf("score counter: add counter component: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("score counter: add screen-space: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: scoreCounterX, Y: scoreCounterY, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("score counter: add transform: %w", err)
	}
	return e, nil
}

// NewBackground creates the full-screen backdrop sprite.
func NewBackground(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return 0, fmt.Errorf("background: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("background: add screen-space: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("background: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: "background", Alpha: 1}); err != nil {
		return 0, fmt.Errorf("background: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: -1}); err != nil {
		return 0, fmt.Errorf("background: add layer: %w", err)
	}
	return e, nil
}
