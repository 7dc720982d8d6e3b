package entity

import (
	"testing"

	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"github.com/milk9111/tiltmaze/maze"
)

func TestNewTileAt(t *testing.T) {
	tests := []struct {
		role   maze.Role
		sprite string
		static bool
		spin   bool
	}{
		{maze.RoleWall, "block", true, false},
		{maze.RoleStar, "star", true, false},
		{maze.RoleVortex, "vortex", true, true},
		{maze.RoleFinish, "finish", true, false},
		{maze.RoleTeleporter, "teleport", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.role.String(), func(t *testing.T) {
			w := ecs.NewWorld()
			pos := maze.CellCenter(2, 3)
			e, err := NewTileAt(w, tc.role, pos)
			if err != nil {
				t.Fatalf("NewTileAt: %v", err)
			}

			role, ok := ecs.Get(w, e, component.RoleComponent.Kind())
			if !ok || role.Kind != tc.role {
				t.Fatalf("expected role %s, got %+v", tc.role, role)
			}
			tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok || tr.X != pos.X || tr.Y != pos.Y {
				t.Fatalf("expected transform at %v, got %+v", pos, tr)
			}
			sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !ok || sp.Name != tc.sprite || sp.Alpha != 1 {
				t.Fatalf("unexpected sprite %+v", sp)
			}
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok || body.Static != tc.static {
				t.Fatalf("unexpected body %+v", body)
			}
			if got := ecs.Has(w, e, component.SpinComponent.Kind()); got != tc.spin {
				t.Fatalf("spin: expected %v, got %v", tc.spin, got)
			}

			layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
			want := maze.ColliderFor(tc.role)
			if !ok || maze.Category(layer.Category) != want.Category || maze.Category(layer.Contact) != want.Contact || maze.Category(layer.Collide) != want.Collide {
				t.Fatalf("expected layer %+v, got %+v", want, layer)
			}
		})
	}
}

func TestNewTileAtRejectsPlayerAndNone(t *testing.T) {
	w := ecs.NewWorld()
	for _, role := range []maze.Role{maze.RoleNone, maze.RolePlayer} {
		if _, err := NewTileAt(w, role, maze.Vec{}); err == nil {
			t.Fatalf("expected error for role %s", role)
		}
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("expected no entities left behind, got %d", n)
	}
}

func TestNewPlayerAt(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 96, 672)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatalf("player tag missing")
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Static || body.Radius <= 0 || !body.FixedRotation || body.LinearDamping != 0.5 {
		t.Fatalf("unexpected player body %+v", body)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 96 || tr.Y != 672 {
		t.Fatalf("expected player at (96, 672), got (%v, %v)", tr.X, tr.Y)
	}
}

func TestScoreCounterAndBackground(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewScoreCounter(w); err != nil {
		t.Fatal(err)
	}
	bg, err := NewBackground(w)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ecs.First(w, component.ScoreCounterComponent.Kind()); !ok {
		t.Fatalf("score counter missing")
	}
	layer, _ := ecs.Get(w, bg, component.RenderLayerComponent.Kind())
	if layer.Index >= 0 {
		t.Fatalf("background should draw below the level, got layer %d", layer.Index)
	}
}
