package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/input"
	"github.com/milk9111/tiltmaze/levels"
	"github.com/milk9111/tiltmaze/maze"
	"github.com/milk9111/tiltmaze/prefabs"
	"github.com/milk9111/tiltmaze/scene"
	log "github.com/sirupsen/logrus"
)

type GameConfig struct {
	Level     int
	Simulator bool
	Debug     bool
	Watch     bool
	// Headless skips device input and drawing setup.
	Headless bool
}

type Game struct {
	cfg    GameConfig
	frames int

	tuning  prefabs.TuningSpec
	tilt    input.TiltSource
	pointer *input.Pointer
	accel   *input.Accelerometer
	watcher *prefabs.Watcher
	rng     *rand.Rand

	scene      *scene.Scene
	transition *Transition
	err        error
}

func NewGame(cfg GameConfig) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		tuning:     tuning,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		transition: NewTransition(),
	}

	if !cfg.Headless {
		g.setupInput()
	}
	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.WithError(err).Warn("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}

	sc, err := scene.New(g.sceneOptions(cfg.Level))
	if err != nil {
		return nil, err
	}
	g.scene = sc
	return g, nil
}

func (g *Game) setupInput() {
	g.pointer = input.NewPointer()

	sources := input.Chain{}
	if accel, err := input.NewAccelerometer(); err != nil {
		log.WithError(err).Debug("falling back to keyboard and gamepad tilt")
	} else {
		g.accel = accel
		sources = append(sources, accel)
	}
	sources = append(sources, input.NewKeyTilt())

	g.tilt = input.Curved{Source: sources, Curve: g.loadCurve()}
}

func (g *Game) loadCurve() *input.Curve {
	name := g.tuning.Steering.Curve
	if name == "" {
		return nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		log.WithError(err).WithField("script", name).Warn("tilt curve not loaded")
		return nil
	}
	curve, err := input.NewCurve(src)
	if err != nil {
		log.WithError(err).WithField("script", name).Warn("tilt curve not loaded")
		return nil
	}
	return curve
}

func (g *Game) mode() maze.Mode {
	if g.cfg.Simulator {
		return maze.ModePointer
	}
	return maze.ModeTilt
}

func (g *Game) sceneOptions(level int) scene.Options {
	opts := scene.Options{
		Level:    level,
		Tuning:   g.tuning,
		Mode:     g.mode(),
		Tilt:     g.tilt,
		Rand:     g.rng,
		Headless: g.cfg.Headless,
	}
	if g.pointer != nil {
		opts.Pointer = g.pointer
	}
	return opts
}

// restart replaces the scene, carrying over only the level index. A level
// past the last bundled one stops the game.
func (g *Game) restart() {
	level := g.scene.Level()
	if !levels.Exists(level) {
		g.err = fmt.Errorf("restart at level %d: %w", level, levels.ErrLevelNotFound)
		return
	}

	sc, err := scene.New(g.sceneOptions(level))
	if err != nil {
		g.err = fmt.Errorf("restart at level %d: %w", level, err)
		return
	}
	g.scene = sc
	log.WithField("level", level).Info("new game")
}

func (g *Game) reloadTuning(changed []string) {
	if len(changed) == 0 {
		return
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.WithError(err).WithField("files", changed).Warn("tuning reload failed")
		return
	}
	g.tuning = tuning
	if g.tilt != nil {
		g.setupCurve()
	}
	log.WithField("files", changed).Info("tuning reloaded, applies on next level")
}

func (g *Game) setupCurve() {
	if c, ok := g.tilt.(input.Curved); ok {
		c.Curve = g.loadCurve()
		g.tilt = c
	}
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.frames++

	if g.watcher != nil {
		g.reloadTuning(g.watcher.Poll())
	}

	if g.transition.Update() {
		return g.err
	}

	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.scene.RestartRequested() {
		g.transition.Start(g.restart)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	g.transition.Draw(screen)

	if g.cfg.Debug {
		sess := g.scene.Session()
		grav := g.scene.Gravity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  level %d  gravity (%.2f, %.2f)", ebiten.ActualFPS(), sess.Level, grav.X, grav.Y), 16, common.ScreenHeight-24)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.accel != nil {
		_ = g.accel.Close()
	}
}
