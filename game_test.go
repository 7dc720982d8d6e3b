package main

import (
	"errors"
	"testing"

	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"github.com/milk9111/tiltmaze/ecs/system"
	"github.com/milk9111/tiltmaze/levels"
	"github.com/milk9111/tiltmaze/maze"
)

func newHeadlessGame(t *testing.T, level int) *Game {
	t.Helper()
	g, err := NewGame(GameConfig{Level: level, Headless: true})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

func step(t *testing.T, g *Game, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}
}

// touchRole raises a contact between the player and the first entity
// with role.
func touchRole(t *testing.T, g *Game, role maze.Role) {
	t.Helper()
	w := g.scene.World()
	var other ecs.Entity
	ecs.ForEach(w, component.RoleComponent.Kind(), func(e ecs.Entity, r *component.Role) {
		if r.Kind == role && other == 0 {
			other = e
		}
	})
	if other == 0 {
		t.Fatalf("no %s in level", role)
	}
	player := ecs.Entity(g.scene.Session().Player)
	w.Events().Push(ecs.Event{Type: system.EventContact, Data: system.ContactEvent{Player: player, Other: other}})
	step(t, g, 1)
}

func finishLevel(t *testing.T, g *Game) {
	t.Helper()
	touchRole(t, g, maze.RoleFinish)
	step(t, g, 60)
	if _, shown := g.scene.Prompt(); !shown {
		t.Fatal("expected the end-of-level prompt")
	}
	g.scene.RequestRestart()
	step(t, g, 2*transitionFrames+2)
}

func TestRestartPreservesLevelAndResetsScore(t *testing.T) {
	g := newHeadlessGame(t, 1)
	first := g.scene

	touchRole(t, g, maze.RoleStar)
	if got := g.scene.Session().Score; got != 1 {
		t.Fatalf("expected score 1 before finishing, got %d", got)
	}
	finishLevel(t, g)

	if g.scene == first {
		t.Fatal("expected a new scene after restart")
	}
	sess := g.scene.Session()
	if sess.Level != 2 {
		t.Fatalf("expected level 2, got %d", sess.Level)
	}
	if sess.Score != 0 || sess.GameOver {
		t.Fatalf("expected a fresh session, got %+v", sess)
	}
	if len(sess.Free) == 0 {
		t.Fatal("expected free cells from the new level")
	}
}

func TestRestartPastLastLevelFails(t *testing.T) {
	last := levels.Count()
	g := newHeadlessGame(t, last)
	touchRole(t, g, maze.RoleFinish)
	step(t, g, 60)
	g.scene.RequestRestart()

	var err error
	for i := 0; i < 2*transitionFrames+2 && err == nil; i++ {
		err = g.Update()
	}
	if !errors.Is(err, levels.ErrLevelNotFound) {
		t.Fatalf("expected ErrLevelNotFound, got %v", err)
	}
	if got := g.scene.Level(); got != last+1 {
		t.Fatalf("level must not decrease, got %d", got)
	}
	if err2 := g.Update(); !errors.Is(err2, levels.ErrLevelNotFound) {
		t.Fatalf("expected the error to stick, got %v", err2)
	}
}

func TestTransitionPhases(t *testing.T) {
	tr := NewTransition()
	swapped := 0
	tr.Start(func() { swapped++ })
	tr.Start(func() { swapped += 10 })

	for i := 0; i < transitionFrames-1; i++ {
		if !tr.Update() {
			t.Fatalf("frame %d: expected transition active", i)
		}
	}
	if swapped != 0 {
		t.Fatal("swapped before the screen was black")
	}
	if a := tr.Alpha(); a <= 0.9 {
		t.Fatalf("expected near-black before swap, got alpha %.2f", a)
	}
	tr.Update()
	if swapped != 1 {
		t.Fatalf("expected one swap, got %d", swapped)
	}
	for i := 0; i < transitionFrames; i++ {
		tr.Update()
	}
	if tr.Active() {
		t.Fatal("expected transition to end")
	}
	if tr.Update() {
		t.Fatal("idle transition should not pause the scene")
	}
}
