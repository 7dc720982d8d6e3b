package scene

import (
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"github.com/milk9111/tiltmaze/ecs/entity"
	"github.com/milk9111/tiltmaze/maze"
	log "github.com/sirupsen/logrus"
)

func (s *Scene) Place(p maze.Placement) maze.Handle {
	e, err := entity.NewTileAt(s.world, p.Role, p.Pos)
	if err != nil {
		s.fail(err)
		return 0
	}
	return handle(e)
}

func (s *Scene) SpawnPlayer(pos maze.Vec) maze.Handle {
	e, err := entity.NewPlayerAt(s.world, pos.X, pos.Y)
	if err != nil {
		s.fail(err)
		return 0
	}
	return handle(e)
}

func (s *Scene) Remove(h maze.Handle) {
	e := entityOf(h)
	if !s.world.IsAlive(e) {
		return
	}
	if tw, ok := ecs.Get(s.world, e, component.TweenComponent.Kind()); ok {
		delete(s.tasks, tw.Task)
	}
	s.physics.Remove(e)
	s.world.DestroyEntity(e)
}

func (s *Scene) Alive(h maze.Handle) bool {
	return s.world.IsAlive(entityOf(h))
}

func (s *Scene) Position(h maze.Handle) maze.Vec {
	t, ok := ecs.Get(s.world, entityOf(h), component.TransformComponent.Kind())
	if !ok {
		return maze.Vec{}
	}
	return maze.Vec{X: t.X, Y: t.Y}
}

func (s *Scene) Freeze(h maze.Handle) {
	e := entityOf(h)
	body, ok := ecs.Get(s.world, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	body.Frozen = true
	s.physics.StopMotion(e)
}

func (s *Scene) StopMotion(h maze.Handle) {
	s.physics.StopMotion(entityOf(h))
}

// Animate attaches seq as a Tween. The body follows the tween instead of
// physics until the sequence ends.
func (s *Scene) Animate(h maze.Handle, seq maze.Sequence, done func()) maze.TaskID {
	e := entityOf(h)
	if !s.world.IsAlive(e) {
		return 0
	}
	if old, ok := ecs.Get(s.world, e, component.TweenComponent.Kind()); ok {
		delete(s.tasks, old.Task)
		log.WithField("task", old.Task).Debug("scene: animation replaced")
	}

	s.nextTask++
	id := s.nextTask
	if err := ecs.Add(s.world, e, component.TweenComponent.Kind(), &component.Tween{Task: id, Steps: seq, Hold: true}); err != nil {
		s.fail(err)
		return 0
	}
	s.tasks[id] = done
	return id
}

func (s *Scene) ShowScore(score int) {
	e, ok := ecs.First(s.world, component.ScoreCounterComponent.Kind())
	if !ok {
		return
	}
	if c, ok := ecs.Get(s.world, e, component.ScoreCounterComponent.Kind()); ok {
		c.Score = score
	}
}

func (s *Scene) ShowPrompt(p maze.Prompt) {
	s.prompt = &p
	if !s.opts.Headless {
		s.promptUI = newPromptUI(p, s.RequestRestart)
	}
	log.WithFields(log.Fields{
		"score": p.Score,
		"next":  p.Level,
	}).Info("scene: level complete")
}

func (s *Scene) Subscribe(fn func(maze.Contact)) {
	s.onContact = fn
}
