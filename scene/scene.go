// Package scene runs one attempt at a maze level on top of the ECS world.
package scene

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiltmaze/assets"
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"github.com/milk9111/tiltmaze/ecs/entity"
	"github.com/milk9111/tiltmaze/ecs/system"
	"github.com/milk9111/tiltmaze/input"
	"github.com/milk9111/tiltmaze/levels"
	"github.com/milk9111/tiltmaze/maze"
	"github.com/milk9111/tiltmaze/prefabs"
	log "github.com/sirupsen/logrus"
)

var defaultBackground = color.RGBA{R: 0x1b, G: 0x1d, B: 0x2a, A: 0xff}

// PointerSource reports the active pointer in world coordinates, or nil.
type PointerSource interface {
	Update() *maze.Vec
}

type Options struct {
	Level int
	// Text replaces the embedded level file when set.
	Text   string
	Tuning prefabs.TuningSpec
	Mode   maze.Mode

	Tilt    input.TiltSource
	Pointer PointerSource

	// Rand picks teleport destinations. nil seeds from the clock.
	Rand *rand.Rand
	// Headless skips everything that needs a graphics context.
	Headless bool
}

// Scene is the maze screen. It implements maze.Host.
type Scene struct {
	opts       Options
	background color.Color

	world    *ecs.World
	physics  *system.PhysicsSystem
	dispatch *system.EventDispatchSystem
	ctrl     *maze.Controller

	onContact func(maze.Contact)
	tasks     map[maze.TaskID]func()
	nextTask  maze.TaskID

	prompt   *maze.Prompt
	promptUI *ebitenui.UI
	restart  bool

	err error
}

var _ maze.Host = (*Scene)(nil)

// New loads the level and builds its world. Level and prefab errors are
// returned as is; they mean the build is broken.
func New(opts Options) (*Scene, error) {
	text := opts.Text
	if text == "" {
		var err error
		if text, err = levels.Load(opts.Level); err != nil {
			return nil, err
		}
	}
	layout, err := maze.ParseLevel(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", levels.Name(opts.Level), err)
	}

	s := &Scene{
		opts:       opts,
		background: opts.Tuning.Background.Or(defaultBackground),
		world:      ecs.NewWorld(),
		physics:    system.NewPhysicsSystem(opts.Tuning.Physics.PixelsPerMeter),
		dispatch:   system.NewEventDispatchSystem(),
		tasks:      make(map[maze.TaskID]func()),
	}

	s.dispatch.On(system.EventContact, s.handleContact)
	s.dispatch.On(system.EventTweenDone, s.handleTweenDone)

	s.world.AddSystem(system.NewTweenSystem())
	s.world.AddSystem(system.NewSpinSystem())
	s.world.AddSystem(s.physics)
	s.world.AddSystem(s.dispatch)
	s.world.AddSystem(system.NewRenderSystem(assets.Image))
	s.world.AddSystem(system.NewScoreCounterSystem())

	if _, err := entity.NewBackground(s.world); err != nil {
		return nil, err
	}
	if _, err := entity.NewScoreCounter(s.world); err != nil {
		return nil, err
	}

	s.ctrl = maze.NewController(s, opts.Tuning.Config(), opts.Mode, opts.Level, opts.Rand)
	s.ctrl.Load(layout)
	if s.err != nil {
		return nil, s.err
	}

	log.WithFields(log.Fields{
		"level": opts.Level,
		"mode":  opts.Mode,
	}).Debug("scene: ready")
	return s, nil
}

// Update advances one frame.
func (s *Scene) Update() error {
	if s.err != nil {
		return s.err
	}

	if s.promptUI != nil {
		s.promptUI.Update()
	}
	if s.prompt != nil && !s.opts.Headless && startPressed() {
		s.RequestRestart()
	}

	if s.ctrl.Mode() == maze.ModePointer && s.opts.Pointer != nil {
		s.ctrl.SetTouch(s.opts.Pointer.Update())
	}

	var tilt *maze.Sample
	if s.opts.Tilt != nil {
		if smp, ok := s.opts.Tilt.Sample(); ok {
			tilt = &smp
		}
	}
	if g, ok := s.ctrl.Steer(tilt); ok {
		s.physics.SetGravity(g)
	}

	s.world.Update()
	return s.err
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.world.Draw(screen)
	if s.promptUI != nil {
		s.promptUI.Draw(screen)
	}
}

// Level returns the level index, already advanced once the level is won.
func (s *Scene) Level() int { return s.ctrl.Session().Level }

func (s *Scene) Session() maze.Session { return s.ctrl.Session() }

// Prompt returns the end-of-level prompt once it is shown.
func (s *Scene) Prompt() (maze.Prompt, bool) {
	if s.prompt == nil {
		return maze.Prompt{}, false
	}
	return *s.prompt, true
}

// RequestRestart asks for the next scene. It is ignored until the prompt is
// shown.
func (s *Scene) RequestRestart() {
	if s.prompt == nil {
		return
	}
	s.restart = true
}

func (s *Scene) RestartRequested() bool { return s.restart }

// Gravity returns the current world gravity in m/s².
func (s *Scene) Gravity() maze.Vec { return s.physics.Gravity() }

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) handleContact(evt ecs.Event) {
	c, ok := evt.Data.(system.ContactEvent)
	if !ok || s.onContact == nil {
		return
	}
	role := maze.RoleNone
	if r, ok := ecs.Get(s.world, c.Other, component.RoleComponent.Kind()); ok {
		role = r.Kind
	}
	s.onContact(maze.Contact{Player: handle(c.Player), Other: handle(c.Other), Role: role})
}

func (s *Scene) handleTweenDone(evt ecs.Event) {
	d, ok := evt.Data.(system.TweenDoneEvent)
	if !ok {
		return
	}
	done, ok := s.tasks[d.Task]
	if !ok {
		return
	}
	delete(s.tasks, d.Task)
	if done != nil {
		done()
	}
}

func (s *Scene) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func handle(e ecs.Entity) maze.Handle { return maze.Handle(e) }

func entityOf(h maze.Handle) ecs.Entity { return ecs.Entity(h) }
