package system

import (
	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"github.com/milk9111/tiltmaze/maze"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenSystem advances Tween components one frame at a time.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem { return &TweenSystem{} }

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TweenComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tw *component.Tween, t *component.Transform) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		dt := float32(common.FrameSeconds)

		for tw.Index < len(tw.Steps) {
			step := tw.Steps[tw.Index]
			if !tw.Started {
				startStep(tw, step, t, sprite)
			}
			if !advanceStep(tw, step, t, sprite, dt) {
				return
			}
			tw.Index++
			tw.Started = false
			// the leftover of a finished step is not carried into the next
			dt = 0
		}

		task := tw.Task
		ecs.Remove(w, e, component.TweenComponent.Kind())
		w.Events().Push(ecs.Event{Type: EventTweenDone, Data: TweenDoneEvent{Entity: e, Task: task}})
	})
}

func startStep(tw *component.Tween, step maze.Step, t *component.Transform, sprite *component.Sprite) {
	tw.Started = true
	tw.X, tw.Y, tw.Value = nil, nil, nil
	d := float32(step.Duration.Seconds())

	switch step.Kind {
	case maze.StepMove:
		tw.X = gween.New(float32(t.X), float32(step.To.X), d, ease.Linear)
		tw.Y = gween.New(float32(t.Y), float32(step.To.Y), d, ease.Linear)
	case maze.StepScale:
		tw.Value = gween.New(float32(t.ScaleX), float32(step.Value), d, ease.Linear)
	case maze.StepFade:
		from := 1.0
		if sprite != nil {
			from = sprite.Alpha
		}
		tw.Value = gween.New(float32(from), float32(step.Value), d, ease.Linear)
	}
}

// advanceStep applies dt of the current step and reports whether it ended.
func advanceStep(tw *component.Tween, step maze.Step, t *component.Transform, sprite *component.Sprite, dt float32) bool {
	if step.Duration <= 0 {
		applyStepEnd(step, t, sprite)
		return true
	}

	switch step.Kind {
	case maze.StepMove:
		x, doneX := tw.X.Update(dt)
		y, doneY := tw.Y.Update(dt)
		t.X, t.Y = float64(x), float64(y)
		if doneX && doneY {
			applyStepEnd(step, t, sprite)
			return true
		}
		return false
	case maze.StepScale:
		v, done := tw.Value.Update(dt)
		t.ScaleX, t.ScaleY = float64(v), float64(v)
		if done {
			applyStepEnd(step, t, sprite)
		}
		return done
	case maze.StepFade:
		v, done := tw.Value.Update(dt)
		if sprite != nil {
			sprite.Alpha = float64(v)
		}
		if done {
			applyStepEnd(step, t, sprite)
		}
		return done
	}
	return true
}

// applyStepEnd snaps to the exact target of step.
func applyStepEnd(step maze.Step, t *component.Transform, sprite *component.Sprite) {
	switch step.Kind {
	case maze.StepMove:
		t.X, t.Y = step.To.X, step.To.Y
	case maze.StepScale:
		t.ScaleX, t.ScaleY = step.Value, step.Value
	case maze.StepFade:
		if sprite != nil {
			sprite.Alpha = step.Value
		}
	}
}
